// Code generated by ent, DO NOT EDIT.

package searchlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/scanworks/scanvault/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLTE(FieldID, id))
}

// SearchType applies equality check predicate on the "search_type" field. It's identical to SearchTypeEQ.
func SearchType(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldSearchType, v))
}

// QueryHash applies equality check predicate on the "query_hash" field. It's identical to QueryHashEQ.
func QueryHash(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldQueryHash, v))
}

// Scope applies equality check predicate on the "scope" field. It's identical to ScopeEQ.
func Scope(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldScope, v))
}

// Threshold applies equality check predicate on the "threshold" field. It's identical to ThresholdEQ.
func Threshold(v float32) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldThreshold, v))
}

// ResultCount applies equality check predicate on the "result_count" field. It's identical to ResultCountEQ.
func ResultCount(v int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldResultCount, v))
}

// ElapsedMs applies equality check predicate on the "elapsed_ms" field. It's identical to ElapsedMsEQ.
func ElapsedMs(v int64) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldElapsedMs, v))
}

// ExecutedAt applies equality check predicate on the "executed_at" field. It's identical to ExecutedAtEQ.
func ExecutedAt(v time.Time) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldExecutedAt, v))
}

// SearchTypeEQ applies the EQ predicate on the "search_type" field.
func SearchTypeEQ(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldSearchType, v))
}

// SearchTypeNEQ applies the NEQ predicate on the "search_type" field.
func SearchTypeNEQ(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNEQ(FieldSearchType, v))
}

// SearchTypeIn applies the In predicate on the "search_type" field.
func SearchTypeIn(vs ...string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldIn(FieldSearchType, vs...))
}

// SearchTypeNotIn applies the NotIn predicate on the "search_type" field.
func SearchTypeNotIn(vs ...string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNotIn(FieldSearchType, vs...))
}

// SearchTypeGT applies the GT predicate on the "search_type" field.
func SearchTypeGT(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGT(FieldSearchType, v))
}

// SearchTypeGTE applies the GTE predicate on the "search_type" field.
func SearchTypeGTE(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGTE(FieldSearchType, v))
}

// SearchTypeLT applies the LT predicate on the "search_type" field.
func SearchTypeLT(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLT(FieldSearchType, v))
}

// SearchTypeLTE applies the LTE predicate on the "search_type" field.
func SearchTypeLTE(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLTE(FieldSearchType, v))
}

// SearchTypeContains applies the Contains predicate on the "search_type" field.
func SearchTypeContains(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldContains(FieldSearchType, v))
}

// SearchTypeHasPrefix applies the HasPrefix predicate on the "search_type" field.
func SearchTypeHasPrefix(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldHasPrefix(FieldSearchType, v))
}

// SearchTypeHasSuffix applies the HasSuffix predicate on the "search_type" field.
func SearchTypeHasSuffix(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldHasSuffix(FieldSearchType, v))
}

// SearchTypeEqualFold applies the EqualFold predicate on the "search_type" field.
func SearchTypeEqualFold(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEqualFold(FieldSearchType, v))
}

// SearchTypeContainsFold applies the ContainsFold predicate on the "search_type" field.
func SearchTypeContainsFold(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldContainsFold(FieldSearchType, v))
}

// QueryHashEQ applies the EQ predicate on the "query_hash" field.
func QueryHashEQ(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldQueryHash, v))
}

// QueryHashNEQ applies the NEQ predicate on the "query_hash" field.
func QueryHashNEQ(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNEQ(FieldQueryHash, v))
}

// QueryHashIn applies the In predicate on the "query_hash" field.
func QueryHashIn(vs ...string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldIn(FieldQueryHash, vs...))
}

// QueryHashNotIn applies the NotIn predicate on the "query_hash" field.
func QueryHashNotIn(vs ...string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNotIn(FieldQueryHash, vs...))
}

// QueryHashGT applies the GT predicate on the "query_hash" field.
func QueryHashGT(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGT(FieldQueryHash, v))
}

// QueryHashGTE applies the GTE predicate on the "query_hash" field.
func QueryHashGTE(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGTE(FieldQueryHash, v))
}

// QueryHashLT applies the LT predicate on the "query_hash" field.
func QueryHashLT(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLT(FieldQueryHash, v))
}

// QueryHashLTE applies the LTE predicate on the "query_hash" field.
func QueryHashLTE(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLTE(FieldQueryHash, v))
}

// QueryHashContains applies the Contains predicate on the "query_hash" field.
func QueryHashContains(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldContains(FieldQueryHash, v))
}

// QueryHashHasPrefix applies the HasPrefix predicate on the "query_hash" field.
func QueryHashHasPrefix(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldHasPrefix(FieldQueryHash, v))
}

// QueryHashHasSuffix applies the HasSuffix predicate on the "query_hash" field.
func QueryHashHasSuffix(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldHasSuffix(FieldQueryHash, v))
}

// QueryHashEqualFold applies the EqualFold predicate on the "query_hash" field.
func QueryHashEqualFold(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEqualFold(FieldQueryHash, v))
}

// QueryHashContainsFold applies the ContainsFold predicate on the "query_hash" field.
func QueryHashContainsFold(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldContainsFold(FieldQueryHash, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNotIn(FieldScope, vs...))
}

// ScopeGT applies the GT predicate on the "scope" field.
func ScopeGT(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGT(FieldScope, v))
}

// ScopeGTE applies the GTE predicate on the "scope" field.
func ScopeGTE(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGTE(FieldScope, v))
}

// ScopeLT applies the LT predicate on the "scope" field.
func ScopeLT(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLT(FieldScope, v))
}

// ScopeLTE applies the LTE predicate on the "scope" field.
func ScopeLTE(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLTE(FieldScope, v))
}

// ScopeContains applies the Contains predicate on the "scope" field.
func ScopeContains(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldContains(FieldScope, v))
}

// ScopeHasPrefix applies the HasPrefix predicate on the "scope" field.
func ScopeHasPrefix(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldHasPrefix(FieldScope, v))
}

// ScopeHasSuffix applies the HasSuffix predicate on the "scope" field.
func ScopeHasSuffix(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldHasSuffix(FieldScope, v))
}

// ScopeIsNil applies the IsNil predicate on the "scope" field.
func ScopeIsNil() predicate.SearchLog {
	return predicate.SearchLog(sql.FieldIsNull(FieldScope))
}

// ScopeNotNil applies the NotNil predicate on the "scope" field.
func ScopeNotNil() predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNotNull(FieldScope))
}

// ScopeEqualFold applies the EqualFold predicate on the "scope" field.
func ScopeEqualFold(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEqualFold(FieldScope, v))
}

// ScopeContainsFold applies the ContainsFold predicate on the "scope" field.
func ScopeContainsFold(v string) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldContainsFold(FieldScope, v))
}

// ThresholdEQ applies the EQ predicate on the "threshold" field.
func ThresholdEQ(v float32) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldThreshold, v))
}

// ThresholdNEQ applies the NEQ predicate on the "threshold" field.
func ThresholdNEQ(v float32) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNEQ(FieldThreshold, v))
}

// ThresholdIn applies the In predicate on the "threshold" field.
func ThresholdIn(vs ...float32) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldIn(FieldThreshold, vs...))
}

// ThresholdNotIn applies the NotIn predicate on the "threshold" field.
func ThresholdNotIn(vs ...float32) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNotIn(FieldThreshold, vs...))
}

// ThresholdGT applies the GT predicate on the "threshold" field.
func ThresholdGT(v float32) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGT(FieldThreshold, v))
}

// ThresholdGTE applies the GTE predicate on the "threshold" field.
func ThresholdGTE(v float32) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGTE(FieldThreshold, v))
}

// ThresholdLT applies the LT predicate on the "threshold" field.
func ThresholdLT(v float32) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLT(FieldThreshold, v))
}

// ThresholdLTE applies the LTE predicate on the "threshold" field.
func ThresholdLTE(v float32) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLTE(FieldThreshold, v))
}

// ThresholdIsNil applies the IsNil predicate on the "threshold" field.
func ThresholdIsNil() predicate.SearchLog {
	return predicate.SearchLog(sql.FieldIsNull(FieldThreshold))
}

// ThresholdNotNil applies the NotNil predicate on the "threshold" field.
func ThresholdNotNil() predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNotNull(FieldThreshold))
}

// ResultCountEQ applies the EQ predicate on the "result_count" field.
func ResultCountEQ(v int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldResultCount, v))
}

// ResultCountNEQ applies the NEQ predicate on the "result_count" field.
func ResultCountNEQ(v int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNEQ(FieldResultCount, v))
}

// ResultCountIn applies the In predicate on the "result_count" field.
func ResultCountIn(vs ...int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldIn(FieldResultCount, vs...))
}

// ResultCountNotIn applies the NotIn predicate on the "result_count" field.
func ResultCountNotIn(vs ...int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNotIn(FieldResultCount, vs...))
}

// ResultCountGT applies the GT predicate on the "result_count" field.
func ResultCountGT(v int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGT(FieldResultCount, v))
}

// ResultCountGTE applies the GTE predicate on the "result_count" field.
func ResultCountGTE(v int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGTE(FieldResultCount, v))
}

// ResultCountLT applies the LT predicate on the "result_count" field.
func ResultCountLT(v int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLT(FieldResultCount, v))
}

// ResultCountLTE applies the LTE predicate on the "result_count" field.
func ResultCountLTE(v int) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLTE(FieldResultCount, v))
}

// ElapsedMsEQ applies the EQ predicate on the "elapsed_ms" field.
func ElapsedMsEQ(v int64) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldElapsedMs, v))
}

// ElapsedMsNEQ applies the NEQ predicate on the "elapsed_ms" field.
func ElapsedMsNEQ(v int64) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNEQ(FieldElapsedMs, v))
}

// ElapsedMsIn applies the In predicate on the "elapsed_ms" field.
func ElapsedMsIn(vs ...int64) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldIn(FieldElapsedMs, vs...))
}

// ElapsedMsNotIn applies the NotIn predicate on the "elapsed_ms" field.
func ElapsedMsNotIn(vs ...int64) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNotIn(FieldElapsedMs, vs...))
}

// ElapsedMsGT applies the GT predicate on the "elapsed_ms" field.
func ElapsedMsGT(v int64) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGT(FieldElapsedMs, v))
}

// ElapsedMsGTE applies the GTE predicate on the "elapsed_ms" field.
func ElapsedMsGTE(v int64) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGTE(FieldElapsedMs, v))
}

// ElapsedMsLT applies the LT predicate on the "elapsed_ms" field.
func ElapsedMsLT(v int64) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLT(FieldElapsedMs, v))
}

// ElapsedMsLTE applies the LTE predicate on the "elapsed_ms" field.
func ElapsedMsLTE(v int64) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLTE(FieldElapsedMs, v))
}

// ExecutedAtEQ applies the EQ predicate on the "executed_at" field.
func ExecutedAtEQ(v time.Time) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldEQ(FieldExecutedAt, v))
}

// ExecutedAtNEQ applies the NEQ predicate on the "executed_at" field.
func ExecutedAtNEQ(v time.Time) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNEQ(FieldExecutedAt, v))
}

// ExecutedAtIn applies the In predicate on the "executed_at" field.
func ExecutedAtIn(vs ...time.Time) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldIn(FieldExecutedAt, vs...))
}

// ExecutedAtNotIn applies the NotIn predicate on the "executed_at" field.
func ExecutedAtNotIn(vs ...time.Time) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldNotIn(FieldExecutedAt, vs...))
}

// ExecutedAtGT applies the GT predicate on the "executed_at" field.
func ExecutedAtGT(v time.Time) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGT(FieldExecutedAt, v))
}

// ExecutedAtGTE applies the GTE predicate on the "executed_at" field.
func ExecutedAtGTE(v time.Time) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldGTE(FieldExecutedAt, v))
}

// ExecutedAtLT applies the LT predicate on the "executed_at" field.
func ExecutedAtLT(v time.Time) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLT(FieldExecutedAt, v))
}

// ExecutedAtLTE applies the LTE predicate on the "executed_at" field.
func ExecutedAtLTE(v time.Time) predicate.SearchLog {
	return predicate.SearchLog(sql.FieldLTE(FieldExecutedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SearchLog) predicate.SearchLog {
	return predicate.SearchLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SearchLog) predicate.SearchLog {
	return predicate.SearchLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SearchLog) predicate.SearchLog {
	return predicate.SearchLog(sql.NotPredicates(p))
}
