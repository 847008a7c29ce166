// Code generated by ent, DO NOT EDIT.

package structuredfields

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/scanworks/scanvault/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v int) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldDocumentID, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldFormat, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldDocumentType, v))
}

// CountryCode applies equality check predicate on the "country_code" field. It's identical to CountryCodeEQ.
func CountryCode(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldCountryCode, v))
}

// Surname applies equality check predicate on the "surname" field. It's identical to SurnameEQ.
func Surname(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldSurname, v))
}

// GivenNames applies equality check predicate on the "given_names" field. It's identical to GivenNamesEQ.
func GivenNames(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldGivenNames, v))
}

// DocumentNumber applies equality check predicate on the "document_number" field. It's identical to DocumentNumberEQ.
func DocumentNumber(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldDocumentNumber, v))
}

// Nationality applies equality check predicate on the "nationality" field. It's identical to NationalityEQ.
func Nationality(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldNationality, v))
}

// BirthDate applies equality check predicate on the "birth_date" field. It's identical to BirthDateEQ.
func BirthDate(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldBirthDate, v))
}

// Sex applies equality check predicate on the "sex" field. It's identical to SexEQ.
func Sex(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldSex, v))
}

// ExpiryDate applies equality check predicate on the "expiry_date" field. It's identical to ExpiryDateEQ.
func ExpiryDate(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldExpiryDate, v))
}

// PersonalNumber applies equality check predicate on the "personal_number" field. It's identical to PersonalNumberEQ.
func PersonalNumber(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldPersonalNumber, v))
}

// ChecksumValid applies equality check predicate on the "checksum_valid" field. It's identical to ChecksumValidEQ.
func ChecksumValid(v bool) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldChecksumValid, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v int) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v int) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...int) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...int) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotIn(FieldDocumentID, vs...))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContainsFold(FieldFormat, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeIsNil applies the IsNil predicate on the "document_type" field.
func DocumentTypeIsNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIsNull(FieldDocumentType))
}

// DocumentTypeNotNil applies the NotNil predicate on the "document_type" field.
func DocumentTypeNotNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotNull(FieldDocumentType))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContainsFold(FieldDocumentType, v))
}

// CountryCodeEQ applies the EQ predicate on the "country_code" field.
func CountryCodeEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldCountryCode, v))
}

// CountryCodeNEQ applies the NEQ predicate on the "country_code" field.
func CountryCodeNEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNEQ(FieldCountryCode, v))
}

// CountryCodeIn applies the In predicate on the "country_code" field.
func CountryCodeIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIn(FieldCountryCode, vs...))
}

// CountryCodeNotIn applies the NotIn predicate on the "country_code" field.
func CountryCodeNotIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotIn(FieldCountryCode, vs...))
}

// CountryCodeGT applies the GT predicate on the "country_code" field.
func CountryCodeGT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGT(FieldCountryCode, v))
}

// CountryCodeGTE applies the GTE predicate on the "country_code" field.
func CountryCodeGTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGTE(FieldCountryCode, v))
}

// CountryCodeLT applies the LT predicate on the "country_code" field.
func CountryCodeLT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLT(FieldCountryCode, v))
}

// CountryCodeLTE applies the LTE predicate on the "country_code" field.
func CountryCodeLTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLTE(FieldCountryCode, v))
}

// CountryCodeContains applies the Contains predicate on the "country_code" field.
func CountryCodeContains(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContains(FieldCountryCode, v))
}

// CountryCodeHasPrefix applies the HasPrefix predicate on the "country_code" field.
func CountryCodeHasPrefix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasPrefix(FieldCountryCode, v))
}

// CountryCodeHasSuffix applies the HasSuffix predicate on the "country_code" field.
func CountryCodeHasSuffix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasSuffix(FieldCountryCode, v))
}

// CountryCodeIsNil applies the IsNil predicate on the "country_code" field.
func CountryCodeIsNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIsNull(FieldCountryCode))
}

// CountryCodeNotNil applies the NotNil predicate on the "country_code" field.
func CountryCodeNotNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotNull(FieldCountryCode))
}

// CountryCodeEqualFold applies the EqualFold predicate on the "country_code" field.
func CountryCodeEqualFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEqualFold(FieldCountryCode, v))
}

// CountryCodeContainsFold applies the ContainsFold predicate on the "country_code" field.
func CountryCodeContainsFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContainsFold(FieldCountryCode, v))
}

// SurnameEQ applies the EQ predicate on the "surname" field.
func SurnameEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldSurname, v))
}

// SurnameNEQ applies the NEQ predicate on the "surname" field.
func SurnameNEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNEQ(FieldSurname, v))
}

// SurnameIn applies the In predicate on the "surname" field.
func SurnameIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIn(FieldSurname, vs...))
}

// SurnameNotIn applies the NotIn predicate on the "surname" field.
func SurnameNotIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotIn(FieldSurname, vs...))
}

// SurnameGT applies the GT predicate on the "surname" field.
func SurnameGT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGT(FieldSurname, v))
}

// SurnameGTE applies the GTE predicate on the "surname" field.
func SurnameGTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGTE(FieldSurname, v))
}

// SurnameLT applies the LT predicate on the "surname" field.
func SurnameLT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLT(FieldSurname, v))
}

// SurnameLTE applies the LTE predicate on the "surname" field.
func SurnameLTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLTE(FieldSurname, v))
}

// SurnameContains applies the Contains predicate on the "surname" field.
func SurnameContains(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContains(FieldSurname, v))
}

// SurnameHasPrefix applies the HasPrefix predicate on the "surname" field.
func SurnameHasPrefix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasPrefix(FieldSurname, v))
}

// SurnameHasSuffix applies the HasSuffix predicate on the "surname" field.
func SurnameHasSuffix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasSuffix(FieldSurname, v))
}

// SurnameIsNil applies the IsNil predicate on the "surname" field.
func SurnameIsNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIsNull(FieldSurname))
}

// SurnameNotNil applies the NotNil predicate on the "surname" field.
func SurnameNotNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotNull(FieldSurname))
}

// SurnameEqualFold applies the EqualFold predicate on the "surname" field.
func SurnameEqualFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEqualFold(FieldSurname, v))
}

// SurnameContainsFold applies the ContainsFold predicate on the "surname" field.
func SurnameContainsFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContainsFold(FieldSurname, v))
}

// GivenNamesEQ applies the EQ predicate on the "given_names" field.
func GivenNamesEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldGivenNames, v))
}

// GivenNamesNEQ applies the NEQ predicate on the "given_names" field.
func GivenNamesNEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNEQ(FieldGivenNames, v))
}

// GivenNamesIn applies the In predicate on the "given_names" field.
func GivenNamesIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIn(FieldGivenNames, vs...))
}

// GivenNamesNotIn applies the NotIn predicate on the "given_names" field.
func GivenNamesNotIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotIn(FieldGivenNames, vs...))
}

// GivenNamesGT applies the GT predicate on the "given_names" field.
func GivenNamesGT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGT(FieldGivenNames, v))
}

// GivenNamesGTE applies the GTE predicate on the "given_names" field.
func GivenNamesGTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGTE(FieldGivenNames, v))
}

// GivenNamesLT applies the LT predicate on the "given_names" field.
func GivenNamesLT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLT(FieldGivenNames, v))
}

// GivenNamesLTE applies the LTE predicate on the "given_names" field.
func GivenNamesLTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLTE(FieldGivenNames, v))
}

// GivenNamesContains applies the Contains predicate on the "given_names" field.
func GivenNamesContains(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContains(FieldGivenNames, v))
}

// GivenNamesHasPrefix applies the HasPrefix predicate on the "given_names" field.
func GivenNamesHasPrefix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasPrefix(FieldGivenNames, v))
}

// GivenNamesHasSuffix applies the HasSuffix predicate on the "given_names" field.
func GivenNamesHasSuffix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasSuffix(FieldGivenNames, v))
}

// GivenNamesIsNil applies the IsNil predicate on the "given_names" field.
func GivenNamesIsNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIsNull(FieldGivenNames))
}

// GivenNamesNotNil applies the NotNil predicate on the "given_names" field.
func GivenNamesNotNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotNull(FieldGivenNames))
}

// GivenNamesEqualFold applies the EqualFold predicate on the "given_names" field.
func GivenNamesEqualFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEqualFold(FieldGivenNames, v))
}

// GivenNamesContainsFold applies the ContainsFold predicate on the "given_names" field.
func GivenNamesContainsFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContainsFold(FieldGivenNames, v))
}

// DocumentNumberEQ applies the EQ predicate on the "document_number" field.
func DocumentNumberEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldDocumentNumber, v))
}

// DocumentNumberNEQ applies the NEQ predicate on the "document_number" field.
func DocumentNumberNEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNEQ(FieldDocumentNumber, v))
}

// DocumentNumberIn applies the In predicate on the "document_number" field.
func DocumentNumberIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIn(FieldDocumentNumber, vs...))
}

// DocumentNumberNotIn applies the NotIn predicate on the "document_number" field.
func DocumentNumberNotIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotIn(FieldDocumentNumber, vs...))
}

// DocumentNumberGT applies the GT predicate on the "document_number" field.
func DocumentNumberGT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGT(FieldDocumentNumber, v))
}

// DocumentNumberGTE applies the GTE predicate on the "document_number" field.
func DocumentNumberGTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGTE(FieldDocumentNumber, v))
}

// DocumentNumberLT applies the LT predicate on the "document_number" field.
func DocumentNumberLT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLT(FieldDocumentNumber, v))
}

// DocumentNumberLTE applies the LTE predicate on the "document_number" field.
func DocumentNumberLTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLTE(FieldDocumentNumber, v))
}

// DocumentNumberContains applies the Contains predicate on the "document_number" field.
func DocumentNumberContains(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContains(FieldDocumentNumber, v))
}

// DocumentNumberHasPrefix applies the HasPrefix predicate on the "document_number" field.
func DocumentNumberHasPrefix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasPrefix(FieldDocumentNumber, v))
}

// DocumentNumberHasSuffix applies the HasSuffix predicate on the "document_number" field.
func DocumentNumberHasSuffix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasSuffix(FieldDocumentNumber, v))
}

// DocumentNumberIsNil applies the IsNil predicate on the "document_number" field.
func DocumentNumberIsNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIsNull(FieldDocumentNumber))
}

// DocumentNumberNotNil applies the NotNil predicate on the "document_number" field.
func DocumentNumberNotNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotNull(FieldDocumentNumber))
}

// DocumentNumberEqualFold applies the EqualFold predicate on the "document_number" field.
func DocumentNumberEqualFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEqualFold(FieldDocumentNumber, v))
}

// DocumentNumberContainsFold applies the ContainsFold predicate on the "document_number" field.
func DocumentNumberContainsFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContainsFold(FieldDocumentNumber, v))
}

// NationalityEQ applies the EQ predicate on the "nationality" field.
func NationalityEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldNationality, v))
}

// NationalityNEQ applies the NEQ predicate on the "nationality" field.
func NationalityNEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNEQ(FieldNationality, v))
}

// NationalityIn applies the In predicate on the "nationality" field.
func NationalityIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIn(FieldNationality, vs...))
}

// NationalityNotIn applies the NotIn predicate on the "nationality" field.
func NationalityNotIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotIn(FieldNationality, vs...))
}

// NationalityGT applies the GT predicate on the "nationality" field.
func NationalityGT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGT(FieldNationality, v))
}

// NationalityGTE applies the GTE predicate on the "nationality" field.
func NationalityGTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGTE(FieldNationality, v))
}

// NationalityLT applies the LT predicate on the "nationality" field.
func NationalityLT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLT(FieldNationality, v))
}

// NationalityLTE applies the LTE predicate on the "nationality" field.
func NationalityLTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLTE(FieldNationality, v))
}

// NationalityContains applies the Contains predicate on the "nationality" field.
func NationalityContains(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContains(FieldNationality, v))
}

// NationalityHasPrefix applies the HasPrefix predicate on the "nationality" field.
func NationalityHasPrefix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasPrefix(FieldNationality, v))
}

// NationalityHasSuffix applies the HasSuffix predicate on the "nationality" field.
func NationalityHasSuffix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasSuffix(FieldNationality, v))
}

// NationalityIsNil applies the IsNil predicate on the "nationality" field.
func NationalityIsNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIsNull(FieldNationality))
}

// NationalityNotNil applies the NotNil predicate on the "nationality" field.
func NationalityNotNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotNull(FieldNationality))
}

// NationalityEqualFold applies the EqualFold predicate on the "nationality" field.
func NationalityEqualFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEqualFold(FieldNationality, v))
}

// NationalityContainsFold applies the ContainsFold predicate on the "nationality" field.
func NationalityContainsFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContainsFold(FieldNationality, v))
}

// BirthDateEQ applies the EQ predicate on the "birth_date" field.
func BirthDateEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldBirthDate, v))
}

// BirthDateNEQ applies the NEQ predicate on the "birth_date" field.
func BirthDateNEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNEQ(FieldBirthDate, v))
}

// BirthDateIn applies the In predicate on the "birth_date" field.
func BirthDateIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIn(FieldBirthDate, vs...))
}

// BirthDateNotIn applies the NotIn predicate on the "birth_date" field.
func BirthDateNotIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotIn(FieldBirthDate, vs...))
}

// BirthDateGT applies the GT predicate on the "birth_date" field.
func BirthDateGT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGT(FieldBirthDate, v))
}

// BirthDateGTE applies the GTE predicate on the "birth_date" field.
func BirthDateGTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGTE(FieldBirthDate, v))
}

// BirthDateLT applies the LT predicate on the "birth_date" field.
func BirthDateLT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLT(FieldBirthDate, v))
}

// BirthDateLTE applies the LTE predicate on the "birth_date" field.
func BirthDateLTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLTE(FieldBirthDate, v))
}

// BirthDateContains applies the Contains predicate on the "birth_date" field.
func BirthDateContains(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContains(FieldBirthDate, v))
}

// BirthDateHasPrefix applies the HasPrefix predicate on the "birth_date" field.
func BirthDateHasPrefix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasPrefix(FieldBirthDate, v))
}

// BirthDateHasSuffix applies the HasSuffix predicate on the "birth_date" field.
func BirthDateHasSuffix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasSuffix(FieldBirthDate, v))
}

// BirthDateIsNil applies the IsNil predicate on the "birth_date" field.
func BirthDateIsNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIsNull(FieldBirthDate))
}

// BirthDateNotNil applies the NotNil predicate on the "birth_date" field.
func BirthDateNotNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotNull(FieldBirthDate))
}

// BirthDateEqualFold applies the EqualFold predicate on the "birth_date" field.
func BirthDateEqualFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEqualFold(FieldBirthDate, v))
}

// BirthDateContainsFold applies the ContainsFold predicate on the "birth_date" field.
func BirthDateContainsFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContainsFold(FieldBirthDate, v))
}

// SexEQ applies the EQ predicate on the "sex" field.
func SexEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldSex, v))
}

// SexNEQ applies the NEQ predicate on the "sex" field.
func SexNEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNEQ(FieldSex, v))
}

// SexIn applies the In predicate on the "sex" field.
func SexIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIn(FieldSex, vs...))
}

// SexNotIn applies the NotIn predicate on the "sex" field.
func SexNotIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotIn(FieldSex, vs...))
}

// SexGT applies the GT predicate on the "sex" field.
func SexGT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGT(FieldSex, v))
}

// SexGTE applies the GTE predicate on the "sex" field.
func SexGTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGTE(FieldSex, v))
}

// SexLT applies the LT predicate on the "sex" field.
func SexLT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLT(FieldSex, v))
}

// SexLTE applies the LTE predicate on the "sex" field.
func SexLTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLTE(FieldSex, v))
}

// SexContains applies the Contains predicate on the "sex" field.
func SexContains(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContains(FieldSex, v))
}

// SexHasPrefix applies the HasPrefix predicate on the "sex" field.
func SexHasPrefix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasPrefix(FieldSex, v))
}

// SexHasSuffix applies the HasSuffix predicate on the "sex" field.
func SexHasSuffix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasSuffix(FieldSex, v))
}

// SexIsNil applies the IsNil predicate on the "sex" field.
func SexIsNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIsNull(FieldSex))
}

// SexNotNil applies the NotNil predicate on the "sex" field.
func SexNotNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotNull(FieldSex))
}

// SexEqualFold applies the EqualFold predicate on the "sex" field.
func SexEqualFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEqualFold(FieldSex, v))
}

// SexContainsFold applies the ContainsFold predicate on the "sex" field.
func SexContainsFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContainsFold(FieldSex, v))
}

// ExpiryDateEQ applies the EQ predicate on the "expiry_date" field.
func ExpiryDateEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldExpiryDate, v))
}

// ExpiryDateNEQ applies the NEQ predicate on the "expiry_date" field.
func ExpiryDateNEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNEQ(FieldExpiryDate, v))
}

// ExpiryDateIn applies the In predicate on the "expiry_date" field.
func ExpiryDateIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIn(FieldExpiryDate, vs...))
}

// ExpiryDateNotIn applies the NotIn predicate on the "expiry_date" field.
func ExpiryDateNotIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotIn(FieldExpiryDate, vs...))
}

// ExpiryDateGT applies the GT predicate on the "expiry_date" field.
func ExpiryDateGT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGT(FieldExpiryDate, v))
}

// ExpiryDateGTE applies the GTE predicate on the "expiry_date" field.
func ExpiryDateGTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGTE(FieldExpiryDate, v))
}

// ExpiryDateLT applies the LT predicate on the "expiry_date" field.
func ExpiryDateLT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLT(FieldExpiryDate, v))
}

// ExpiryDateLTE applies the LTE predicate on the "expiry_date" field.
func ExpiryDateLTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLTE(FieldExpiryDate, v))
}

// ExpiryDateContains applies the Contains predicate on the "expiry_date" field.
func ExpiryDateContains(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContains(FieldExpiryDate, v))
}

// ExpiryDateHasPrefix applies the HasPrefix predicate on the "expiry_date" field.
func ExpiryDateHasPrefix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasPrefix(FieldExpiryDate, v))
}

// ExpiryDateHasSuffix applies the HasSuffix predicate on the "expiry_date" field.
func ExpiryDateHasSuffix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasSuffix(FieldExpiryDate, v))
}

// ExpiryDateIsNil applies the IsNil predicate on the "expiry_date" field.
func ExpiryDateIsNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIsNull(FieldExpiryDate))
}

// ExpiryDateNotNil applies the NotNil predicate on the "expiry_date" field.
func ExpiryDateNotNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotNull(FieldExpiryDate))
}

// ExpiryDateEqualFold applies the EqualFold predicate on the "expiry_date" field.
func ExpiryDateEqualFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEqualFold(FieldExpiryDate, v))
}

// ExpiryDateContainsFold applies the ContainsFold predicate on the "expiry_date" field.
func ExpiryDateContainsFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContainsFold(FieldExpiryDate, v))
}

// PersonalNumberEQ applies the EQ predicate on the "personal_number" field.
func PersonalNumberEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldPersonalNumber, v))
}

// PersonalNumberNEQ applies the NEQ predicate on the "personal_number" field.
func PersonalNumberNEQ(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNEQ(FieldPersonalNumber, v))
}

// PersonalNumberIn applies the In predicate on the "personal_number" field.
func PersonalNumberIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIn(FieldPersonalNumber, vs...))
}

// PersonalNumberNotIn applies the NotIn predicate on the "personal_number" field.
func PersonalNumberNotIn(vs ...string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotIn(FieldPersonalNumber, vs...))
}

// PersonalNumberGT applies the GT predicate on the "personal_number" field.
func PersonalNumberGT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGT(FieldPersonalNumber, v))
}

// PersonalNumberGTE applies the GTE predicate on the "personal_number" field.
func PersonalNumberGTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGTE(FieldPersonalNumber, v))
}

// PersonalNumberLT applies the LT predicate on the "personal_number" field.
func PersonalNumberLT(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLT(FieldPersonalNumber, v))
}

// PersonalNumberLTE applies the LTE predicate on the "personal_number" field.
func PersonalNumberLTE(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLTE(FieldPersonalNumber, v))
}

// PersonalNumberContains applies the Contains predicate on the "personal_number" field.
func PersonalNumberContains(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContains(FieldPersonalNumber, v))
}

// PersonalNumberHasPrefix applies the HasPrefix predicate on the "personal_number" field.
func PersonalNumberHasPrefix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasPrefix(FieldPersonalNumber, v))
}

// PersonalNumberHasSuffix applies the HasSuffix predicate on the "personal_number" field.
func PersonalNumberHasSuffix(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldHasSuffix(FieldPersonalNumber, v))
}

// PersonalNumberIsNil applies the IsNil predicate on the "personal_number" field.
func PersonalNumberIsNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIsNull(FieldPersonalNumber))
}

// PersonalNumberNotNil applies the NotNil predicate on the "personal_number" field.
func PersonalNumberNotNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotNull(FieldPersonalNumber))
}

// PersonalNumberEqualFold applies the EqualFold predicate on the "personal_number" field.
func PersonalNumberEqualFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEqualFold(FieldPersonalNumber, v))
}

// PersonalNumberContainsFold applies the ContainsFold predicate on the "personal_number" field.
func PersonalNumberContainsFold(v string) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldContainsFold(FieldPersonalNumber, v))
}

// ChecksumValidEQ applies the EQ predicate on the "checksum_valid" field.
func ChecksumValidEQ(v bool) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldChecksumValid, v))
}

// ChecksumValidNEQ applies the NEQ predicate on the "checksum_valid" field.
func ChecksumValidNEQ(v bool) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNEQ(FieldChecksumValid, v))
}

// RawLinesIsNil applies the IsNil predicate on the "raw_lines" field.
func RawLinesIsNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIsNull(FieldRawLines))
}

// RawLinesNotNil applies the NotNil predicate on the "raw_lines" field.
func RawLinesNotNil() predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotNull(FieldRawLines))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StructuredFields {
	return predicate.StructuredFields(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.StructuredFields {
	return predicate.StructuredFields(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.StructuredFields {
	return predicate.StructuredFields(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StructuredFields) predicate.StructuredFields {
	return predicate.StructuredFields(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StructuredFields) predicate.StructuredFields {
	return predicate.StructuredFields(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StructuredFields) predicate.StructuredFields {
	return predicate.StructuredFields(sql.NotPredicates(p))
}
