// Code generated by ent, DO NOT EDIT.

package entrainement

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the entrainement type in the database.
	Label = "entrainement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVolume holds the string denoting the volume field in the database.
	FieldVolume = "volume"
	// FieldTentative holds the string denoting the tentative field in the database.
	FieldTentative = "tentative"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the entrainement in the database.
	Table = "entrainements"
)

// Columns holds all SQL columns for entrainement fields.
var Columns = []string{
	FieldID,
	FieldVolume,
	FieldTentative,
	FieldCreatedAt,
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

var (
	// VolumeValidator is a validator for the "volume" field. It is called by the builders before save.
	VolumeValidator func(int) error
	// DefaultTentative holds the default value on creation for the "tentative" field.
	DefaultTentative int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Entrainement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVolume orders the results by the volume field.
func ByVolume(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVolume, opts...).ToFunc()
}

// ByTentative orders the results by the tentative field.
func ByTentative(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTentative, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
