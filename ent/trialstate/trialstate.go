// Code generated by ent, DO NOT EDIT.

package trialstate

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the trialstate type in the database.
	Label = "trial_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStartedAtMs holds the string denoting the started_at_ms field in the database.
	FieldStartedAtMs = "started_at_ms"
	// Table holds the table name of the trialstate in the database.
	Table = "trial_states"
)

// Columns holds all SQL columns for trialstate fields.
var Columns = []string{
	FieldID,
	FieldStartedAtMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the TrialState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStartedAtMs orders the results by the started_at_ms field.
func ByStartedAtMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAtMs, opts...).ToFunc()
}
