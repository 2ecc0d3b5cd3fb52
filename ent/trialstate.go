// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Tnecniv1/Calcul-Pixel/ent/trialstate"
)

// TrialState is the model entity for the TrialState schema.
type TrialState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Epoch milliseconds of the trial start
	StartedAtMs  int64 `json:"started_at_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrialState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trialstate.FieldID, trialstate.FieldStartedAtMs:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrialState fields.
func (_m *TrialState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trialstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case trialstate.FieldStartedAtMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field started_at_ms", values[i])
			} else if value.Valid {
				_m.StartedAtMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TrialState.
// This includes values selected through modifiers, order, etc.
func (_m *TrialState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TrialState.
// Note that you need to call TrialState.Unwrap() before calling this method if this TrialState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrialState) Update() *TrialStateUpdateOne {
	return NewTrialStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrialState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrialState) Unwrap() *TrialState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrialState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrialState) String() string {
	var builder strings.Builder
	builder.WriteString("TrialState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("started_at_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartedAtMs))
	builder.WriteByte(')')
	return builder.String()
}

// TrialStates is a parsable slice of TrialState.
type TrialStates []*TrialState
