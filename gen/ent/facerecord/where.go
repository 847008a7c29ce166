// Code generated by ent, DO NOT EDIT.

package facerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/scanworks/scanvault/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldDocumentID, v))
}

// PageNumber applies equality check predicate on the "page_number" field. It's identical to PageNumberEQ.
func PageNumber(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldPageNumber, v))
}

// BoxX applies equality check predicate on the "box_x" field. It's identical to BoxXEQ.
func BoxX(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldBoxX, v))
}

// BoxY applies equality check predicate on the "box_y" field. It's identical to BoxYEQ.
func BoxY(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldBoxY, v))
}

// BoxW applies equality check predicate on the "box_w" field. It's identical to BoxWEQ.
func BoxW(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldBoxW, v))
}

// BoxH applies equality check predicate on the "box_h" field. It's identical to BoxHEQ.
func BoxH(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldBoxH, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldConfidence, v))
}

// Quality applies equality check predicate on the "quality" field. It's identical to QualityEQ.
func Quality(v float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldQuality, v))
}

// IndexID applies equality check predicate on the "index_id" field. It's identical to IndexIDEQ.
func IndexID(v string) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldIndexID, v))
}

// DetectedAt applies equality check predicate on the "detected_at" field. It's identical to DetectedAtEQ.
func DetectedAt(v time.Time) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldDetectedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNotIn(FieldDocumentID, vs...))
}

// PageNumberEQ applies the EQ predicate on the "page_number" field.
func PageNumberEQ(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldPageNumber, v))
}

// PageNumberNEQ applies the NEQ predicate on the "page_number" field.
func PageNumberNEQ(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNEQ(FieldPageNumber, v))
}

// PageNumberIn applies the In predicate on the "page_number" field.
func PageNumberIn(vs ...int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldIn(FieldPageNumber, vs...))
}

// PageNumberNotIn applies the NotIn predicate on the "page_number" field.
func PageNumberNotIn(vs ...int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNotIn(FieldPageNumber, vs...))
}

// PageNumberGT applies the GT predicate on the "page_number" field.
func PageNumberGT(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGT(FieldPageNumber, v))
}

// PageNumberGTE applies the GTE predicate on the "page_number" field.
func PageNumberGTE(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGTE(FieldPageNumber, v))
}

// PageNumberLT applies the LT predicate on the "page_number" field.
func PageNumberLT(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLT(FieldPageNumber, v))
}

// PageNumberLTE applies the LTE predicate on the "page_number" field.
func PageNumberLTE(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLTE(FieldPageNumber, v))
}

// BoxXEQ applies the EQ predicate on the "box_x" field.
func BoxXEQ(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldBoxX, v))
}

// BoxXNEQ applies the NEQ predicate on the "box_x" field.
func BoxXNEQ(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNEQ(FieldBoxX, v))
}

// BoxXIn applies the In predicate on the "box_x" field.
func BoxXIn(vs ...int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldIn(FieldBoxX, vs...))
}

// BoxXNotIn applies the NotIn predicate on the "box_x" field.
func BoxXNotIn(vs ...int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNotIn(FieldBoxX, vs...))
}

// BoxXGT applies the GT predicate on the "box_x" field.
func BoxXGT(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGT(FieldBoxX, v))
}

// BoxXGTE applies the GTE predicate on the "box_x" field.
func BoxXGTE(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGTE(FieldBoxX, v))
}

// BoxXLT applies the LT predicate on the "box_x" field.
func BoxXLT(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLT(FieldBoxX, v))
}

// BoxXLTE applies the LTE predicate on the "box_x" field.
func BoxXLTE(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLTE(FieldBoxX, v))
}

// BoxYEQ applies the EQ predicate on the "box_y" field.
func BoxYEQ(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldBoxY, v))
}

// BoxYNEQ applies the NEQ predicate on the "box_y" field.
func BoxYNEQ(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNEQ(FieldBoxY, v))
}

// BoxYIn applies the In predicate on the "box_y" field.
func BoxYIn(vs ...int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldIn(FieldBoxY, vs...))
}

// BoxYNotIn applies the NotIn predicate on the "box_y" field.
func BoxYNotIn(vs ...int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNotIn(FieldBoxY, vs...))
}

// BoxYGT applies the GT predicate on the "box_y" field.
func BoxYGT(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGT(FieldBoxY, v))
}

// BoxYGTE applies the GTE predicate on the "box_y" field.
func BoxYGTE(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGTE(FieldBoxY, v))
}

// BoxYLT applies the LT predicate on the "box_y" field.
func BoxYLT(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLT(FieldBoxY, v))
}

// BoxYLTE applies the LTE predicate on the "box_y" field.
func BoxYLTE(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLTE(FieldBoxY, v))
}

// BoxWEQ applies the EQ predicate on the "box_w" field.
func BoxWEQ(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldBoxW, v))
}

// BoxWNEQ applies the NEQ predicate on the "box_w" field.
func BoxWNEQ(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNEQ(FieldBoxW, v))
}

// BoxWIn applies the In predicate on the "box_w" field.
func BoxWIn(vs ...int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldIn(FieldBoxW, vs...))
}

// BoxWNotIn applies the NotIn predicate on the "box_w" field.
func BoxWNotIn(vs ...int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNotIn(FieldBoxW, vs...))
}

// BoxWGT applies the GT predicate on the "box_w" field.
func BoxWGT(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGT(FieldBoxW, v))
}

// BoxWGTE applies the GTE predicate on the "box_w" field.
func BoxWGTE(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGTE(FieldBoxW, v))
}

// BoxWLT applies the LT predicate on the "box_w" field.
func BoxWLT(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLT(FieldBoxW, v))
}

// BoxWLTE applies the LTE predicate on the "box_w" field.
func BoxWLTE(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLTE(FieldBoxW, v))
}

// BoxHEQ applies the EQ predicate on the "box_h" field.
func BoxHEQ(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldBoxH, v))
}

// BoxHNEQ applies the NEQ predicate on the "box_h" field.
func BoxHNEQ(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNEQ(FieldBoxH, v))
}

// BoxHIn applies the In predicate on the "box_h" field.
func BoxHIn(vs ...int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldIn(FieldBoxH, vs...))
}

// BoxHNotIn applies the NotIn predicate on the "box_h" field.
func BoxHNotIn(vs ...int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNotIn(FieldBoxH, vs...))
}

// BoxHGT applies the GT predicate on the "box_h" field.
func BoxHGT(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGT(FieldBoxH, v))
}

// BoxHGTE applies the GTE predicate on the "box_h" field.
func BoxHGTE(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGTE(FieldBoxH, v))
}

// BoxHLT applies the LT predicate on the "box_h" field.
func BoxHLT(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLT(FieldBoxH, v))
}

// BoxHLTE applies the LTE predicate on the "box_h" field.
func BoxHLTE(v int) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLTE(FieldBoxH, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLTE(FieldConfidence, v))
}

// QualityEQ applies the EQ predicate on the "quality" field.
func QualityEQ(v float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldQuality, v))
}

// QualityNEQ applies the NEQ predicate on the "quality" field.
func QualityNEQ(v float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNEQ(FieldQuality, v))
}

// QualityIn applies the In predicate on the "quality" field.
func QualityIn(vs ...float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldIn(FieldQuality, vs...))
}

// QualityNotIn applies the NotIn predicate on the "quality" field.
func QualityNotIn(vs ...float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNotIn(FieldQuality, vs...))
}

// QualityGT applies the GT predicate on the "quality" field.
func QualityGT(v float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGT(FieldQuality, v))
}

// QualityGTE applies the GTE predicate on the "quality" field.
func QualityGTE(v float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGTE(FieldQuality, v))
}

// QualityLT applies the LT predicate on the "quality" field.
func QualityLT(v float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLT(FieldQuality, v))
}

// QualityLTE applies the LTE predicate on the "quality" field.
func QualityLTE(v float32) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLTE(FieldQuality, v))
}

// IndexIDEQ applies the EQ predicate on the "index_id" field.
func IndexIDEQ(v string) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldIndexID, v))
}

// IndexIDNEQ applies the NEQ predicate on the "index_id" field.
func IndexIDNEQ(v string) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNEQ(FieldIndexID, v))
}

// IndexIDIn applies the In predicate on the "index_id" field.
func IndexIDIn(vs ...string) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldIn(FieldIndexID, vs...))
}

// IndexIDNotIn applies the NotIn predicate on the "index_id" field.
func IndexIDNotIn(vs ...string) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNotIn(FieldIndexID, vs...))
}

// IndexIDGT applies the GT predicate on the "index_id" field.
func IndexIDGT(v string) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGT(FieldIndexID, v))
}

// IndexIDGTE applies the GTE predicate on the "index_id" field.
func IndexIDGTE(v string) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGTE(FieldIndexID, v))
}

// IndexIDLT applies the LT predicate on the "index_id" field.
func IndexIDLT(v string) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLT(FieldIndexID, v))
}

// IndexIDLTE applies the LTE predicate on the "index_id" field.
func IndexIDLTE(v string) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLTE(FieldIndexID, v))
}

// IndexIDContains applies the Contains predicate on the "index_id" field.
func IndexIDContains(v string) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldContains(FieldIndexID, v))
}

// IndexIDHasPrefix applies the HasPrefix predicate on the "index_id" field.
func IndexIDHasPrefix(v string) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldHasPrefix(FieldIndexID, v))
}

// IndexIDHasSuffix applies the HasSuffix predicate on the "index_id" field.
func IndexIDHasSuffix(v string) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldHasSuffix(FieldIndexID, v))
}

// IndexIDIsNil applies the IsNil predicate on the "index_id" field.
func IndexIDIsNil() predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldIsNull(FieldIndexID))
}

// IndexIDNotNil applies the NotNil predicate on the "index_id" field.
func IndexIDNotNil() predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNotNull(FieldIndexID))
}

// IndexIDEqualFold applies the EqualFold predicate on the "index_id" field.
func IndexIDEqualFold(v string) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEqualFold(FieldIndexID, v))
}

// IndexIDContainsFold applies the ContainsFold predicate on the "index_id" field.
func IndexIDContainsFold(v string) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldContainsFold(FieldIndexID, v))
}

// DetectedAtEQ applies the EQ predicate on the "detected_at" field.
func DetectedAtEQ(v time.Time) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldEQ(FieldDetectedAt, v))
}

// DetectedAtNEQ applies the NEQ predicate on the "detected_at" field.
func DetectedAtNEQ(v time.Time) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNEQ(FieldDetectedAt, v))
}

// DetectedAtIn applies the In predicate on the "detected_at" field.
func DetectedAtIn(vs ...time.Time) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldIn(FieldDetectedAt, vs...))
}

// DetectedAtNotIn applies the NotIn predicate on the "detected_at" field.
func DetectedAtNotIn(vs ...time.Time) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldNotIn(FieldDetectedAt, vs...))
}

// DetectedAtGT applies the GT predicate on the "detected_at" field.
func DetectedAtGT(v time.Time) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGT(FieldDetectedAt, v))
}

// DetectedAtGTE applies the GTE predicate on the "detected_at" field.
func DetectedAtGTE(v time.Time) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldGTE(FieldDetectedAt, v))
}

// DetectedAtLT applies the LT predicate on the "detected_at" field.
func DetectedAtLT(v time.Time) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLT(FieldDetectedAt, v))
}

// DetectedAtLTE applies the LTE predicate on the "detected_at" field.
func DetectedAtLTE(v time.Time) predicate.FaceRecord {
	return predicate.FaceRecord(sql.FieldLTE(FieldDetectedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.FaceRecord {
	return predicate.FaceRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.FaceRecord {
	return predicate.FaceRecord(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FaceRecord) predicate.FaceRecord {
	return predicate.FaceRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FaceRecord) predicate.FaceRecord {
	return predicate.FaceRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FaceRecord) predicate.FaceRecord {
	return predicate.FaceRecord(sql.NotPredicates(p))
}
