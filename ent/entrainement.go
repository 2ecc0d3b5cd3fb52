// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Tnecniv1/Calcul-Pixel/ent/entrainement"
)

// Entrainement is the model entity for the Entrainement schema.
type Entrainement struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Requested exercise count
	Volume int `json:"volume,omitempty"`
	// Correction attempt counter, incremented per completed review round
	Tentative int `json:"tentative,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Entrainement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entrainement.FieldID, entrainement.FieldVolume, entrainement.FieldTentative:
			values[i] = new(sql.NullInt64)
		case entrainement.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Entrainement fields.
func (_m *Entrainement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entrainement.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case entrainement.FieldVolume:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field volume", values[i])
			} else if value.Valid {
				_m.Volume = int(value.Int64)
			}
		case entrainement.FieldTentative:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tentative", values[i])
			} else if value.Valid {
				_m.Tentative = int(value.Int64)
			}
		case entrainement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Entrainement.
// This includes values selected through modifiers, order, etc.
func (_m *Entrainement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Entrainement.
// Note that you need to call Entrainement.Unwrap() before calling this method if this Entrainement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Entrainement) Update() *EntrainementUpdateOne {
	return NewEntrainementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Entrainement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Entrainement) Unwrap() *Entrainement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Entrainement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Entrainement) String() string {
	var builder strings.Builder
	builder.WriteString("Entrainement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("volume=")
	builder.WriteString(fmt.Sprintf("%v", _m.Volume))
	builder.WriteString(", ")
	builder.WriteString("tentative=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tentative))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Entrainements is a parsable slice of Entrainement.
type Entrainements []*Entrainement
