// Code generated by ent, DO NOT EDIT.

package extractionattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/scanworks/scanvault/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldDocumentID, v))
}

// AttemptNumber applies equality check predicate on the "attempt_number" field. It's identical to AttemptNumberEQ.
func AttemptNumber(v int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldAttemptNumber, v))
}

// Succeeded applies equality check predicate on the "succeeded" field. It's identical to SucceededEQ.
func Succeeded(v bool) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldSucceeded, v))
}

// FullText applies equality check predicate on the "full_text" field. It's identical to FullTextEQ.
func FullText(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldFullText, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldLanguage, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldConfidence, v))
}

// Engine applies equality check predicate on the "engine" field. It's identical to EngineEQ.
func Engine(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldEngine, v))
}

// ElapsedMs applies equality check predicate on the "elapsed_ms" field. It's identical to ElapsedMsEQ.
func ElapsedMs(v int64) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldElapsedMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNotIn(FieldDocumentID, vs...))
}

// AttemptNumberEQ applies the EQ predicate on the "attempt_number" field.
func AttemptNumberEQ(v int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldAttemptNumber, v))
}

// AttemptNumberNEQ applies the NEQ predicate on the "attempt_number" field.
func AttemptNumberNEQ(v int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNEQ(FieldAttemptNumber, v))
}

// AttemptNumberIn applies the In predicate on the "attempt_number" field.
func AttemptNumberIn(vs ...int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldIn(FieldAttemptNumber, vs...))
}

// AttemptNumberNotIn applies the NotIn predicate on the "attempt_number" field.
func AttemptNumberNotIn(vs ...int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNotIn(FieldAttemptNumber, vs...))
}

// AttemptNumberGT applies the GT predicate on the "attempt_number" field.
func AttemptNumberGT(v int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGT(FieldAttemptNumber, v))
}

// AttemptNumberGTE applies the GTE predicate on the "attempt_number" field.
func AttemptNumberGTE(v int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGTE(FieldAttemptNumber, v))
}

// AttemptNumberLT applies the LT predicate on the "attempt_number" field.
func AttemptNumberLT(v int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLT(FieldAttemptNumber, v))
}

// AttemptNumberLTE applies the LTE predicate on the "attempt_number" field.
func AttemptNumberLTE(v int) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLTE(FieldAttemptNumber, v))
}

// SucceededEQ applies the EQ predicate on the "succeeded" field.
func SucceededEQ(v bool) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldSucceeded, v))
}

// SucceededNEQ applies the NEQ predicate on the "succeeded" field.
func SucceededNEQ(v bool) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNEQ(FieldSucceeded, v))
}

// FullTextEQ applies the EQ predicate on the "full_text" field.
func FullTextEQ(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldFullText, v))
}

// FullTextNEQ applies the NEQ predicate on the "full_text" field.
func FullTextNEQ(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNEQ(FieldFullText, v))
}

// FullTextIn applies the In predicate on the "full_text" field.
func FullTextIn(vs ...string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldIn(FieldFullText, vs...))
}

// FullTextNotIn applies the NotIn predicate on the "full_text" field.
func FullTextNotIn(vs ...string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNotIn(FieldFullText, vs...))
}

// FullTextGT applies the GT predicate on the "full_text" field.
func FullTextGT(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGT(FieldFullText, v))
}

// FullTextGTE applies the GTE predicate on the "full_text" field.
func FullTextGTE(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGTE(FieldFullText, v))
}

// FullTextLT applies the LT predicate on the "full_text" field.
func FullTextLT(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLT(FieldFullText, v))
}

// FullTextLTE applies the LTE predicate on the "full_text" field.
func FullTextLTE(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLTE(FieldFullText, v))
}

// FullTextContains applies the Contains predicate on the "full_text" field.
func FullTextContains(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldContains(FieldFullText, v))
}

// FullTextHasPrefix applies the HasPrefix predicate on the "full_text" field.
func FullTextHasPrefix(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldHasPrefix(FieldFullText, v))
}

// FullTextHasSuffix applies the HasSuffix predicate on the "full_text" field.
func FullTextHasSuffix(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldHasSuffix(FieldFullText, v))
}

// FullTextIsNil applies the IsNil predicate on the "full_text" field.
func FullTextIsNil() predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldIsNull(FieldFullText))
}

// FullTextNotNil applies the NotNil predicate on the "full_text" field.
func FullTextNotNil() predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNotNull(FieldFullText))
}

// FullTextEqualFold applies the EqualFold predicate on the "full_text" field.
func FullTextEqualFold(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEqualFold(FieldFullText, v))
}

// FullTextContainsFold applies the ContainsFold predicate on the "full_text" field.
func FullTextContainsFold(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldContainsFold(FieldFullText, v))
}

// BlocksIsNil applies the IsNil predicate on the "blocks" field.
func BlocksIsNil() predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldIsNull(FieldBlocks))
}

// BlocksNotNil applies the NotNil predicate on the "blocks" field.
func BlocksNotNil() predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNotNull(FieldBlocks))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldContainsFold(FieldLanguage, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLTE(FieldConfidence, v))
}

// EngineEQ applies the EQ predicate on the "engine" field.
func EngineEQ(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldEngine, v))
}

// EngineNEQ applies the NEQ predicate on the "engine" field.
func EngineNEQ(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNEQ(FieldEngine, v))
}

// EngineIn applies the In predicate on the "engine" field.
func EngineIn(vs ...string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldIn(FieldEngine, vs...))
}

// EngineNotIn applies the NotIn predicate on the "engine" field.
func EngineNotIn(vs ...string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNotIn(FieldEngine, vs...))
}

// EngineGT applies the GT predicate on the "engine" field.
func EngineGT(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGT(FieldEngine, v))
}

// EngineGTE applies the GTE predicate on the "engine" field.
func EngineGTE(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGTE(FieldEngine, v))
}

// EngineLT applies the LT predicate on the "engine" field.
func EngineLT(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLT(FieldEngine, v))
}

// EngineLTE applies the LTE predicate on the "engine" field.
func EngineLTE(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLTE(FieldEngine, v))
}

// EngineContains applies the Contains predicate on the "engine" field.
func EngineContains(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldContains(FieldEngine, v))
}

// EngineHasPrefix applies the HasPrefix predicate on the "engine" field.
func EngineHasPrefix(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldHasPrefix(FieldEngine, v))
}

// EngineHasSuffix applies the HasSuffix predicate on the "engine" field.
func EngineHasSuffix(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldHasSuffix(FieldEngine, v))
}

// EngineEqualFold applies the EqualFold predicate on the "engine" field.
func EngineEqualFold(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEqualFold(FieldEngine, v))
}

// EngineContainsFold applies the ContainsFold predicate on the "engine" field.
func EngineContainsFold(v string) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldContainsFold(FieldEngine, v))
}

// ElapsedMsEQ applies the EQ predicate on the "elapsed_ms" field.
func ElapsedMsEQ(v int64) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldElapsedMs, v))
}

// ElapsedMsNEQ applies the NEQ predicate on the "elapsed_ms" field.
func ElapsedMsNEQ(v int64) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNEQ(FieldElapsedMs, v))
}

// ElapsedMsIn applies the In predicate on the "elapsed_ms" field.
func ElapsedMsIn(vs ...int64) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldIn(FieldElapsedMs, vs...))
}

// ElapsedMsNotIn applies the NotIn predicate on the "elapsed_ms" field.
func ElapsedMsNotIn(vs ...int64) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNotIn(FieldElapsedMs, vs...))
}

// ElapsedMsGT applies the GT predicate on the "elapsed_ms" field.
func ElapsedMsGT(v int64) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGT(FieldElapsedMs, v))
}

// ElapsedMsGTE applies the GTE predicate on the "elapsed_ms" field.
func ElapsedMsGTE(v int64) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGTE(FieldElapsedMs, v))
}

// ElapsedMsLT applies the LT predicate on the "elapsed_ms" field.
func ElapsedMsLT(v int64) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLT(FieldElapsedMs, v))
}

// ElapsedMsLTE applies the LTE predicate on the "elapsed_ms" field.
func ElapsedMsLTE(v int64) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLTE(FieldElapsedMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionAttempt) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionAttempt) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionAttempt) predicate.ExtractionAttempt {
	return predicate.ExtractionAttempt(sql.NotPredicates(p))
}
