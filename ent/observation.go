// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Tnecniv1/Calcul-Pixel/ent/observation"
)

// Observation is the model entity for the Observation schema.
type Observation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning session
	EntrainementID int `json:"entrainement_id,omitempty"`
	// Course/track identifier
	ParcoursID int `json:"parcours_id,omitempty"`
	// OperateurUn holds the value of the "operateur_un" field.
	OperateurUn float64 `json:"operateur_un,omitempty"`
	// OperateurDeux holds the value of the "operateur_deux" field.
	OperateurDeux float64 `json:"operateur_deux,omitempty"`
	// Addition, Soustraction, or Multiplication
	Operation string `json:"operation,omitempty"`
	// User's parsed answer, 0 when unparseable
	Proposition float64 `json:"proposition,omitempty"`
	// Solution holds the value of the "solution" field.
	Solution float64 `json:"solution,omitempty"`
	// VRAI or FAUX
	Etat string `json:"etat,omitempty"`
	// TempsSeconds holds the value of the "temps_seconds" field.
	TempsSeconds int `json:"temps_seconds,omitempty"`
	// Percent distance from the solution
	MargeErreur float64 `json:"marge_erreur,omitempty"`
	// Base score, +1 or -1
	Score float64 `json:"score,omitempty"`
	// BonusVitesse holds the value of the "bonus_vitesse" field.
	BonusVitesse float64 `json:"bonus_vitesse,omitempty"`
	// BonusMarge holds the value of the "bonus_marge" field.
	BonusMarge float64 `json:"bonus_marge,omitempty"`
	// score + bonus_vitesse + bonus_marge
	ScoreGlobal float64 `json:"score_global,omitempty"`
	// NON until a correction round touches the session
	Correction string `json:"correction,omitempty"`
	// Client-generated flush nonce; duplicate batches are dropped
	BatchID string `json:"batch_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Observation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case observation.FieldOperateurUn, observation.FieldOperateurDeux, observation.FieldProposition, observation.FieldSolution, observation.FieldMargeErreur, observation.FieldScore, observation.FieldBonusVitesse, observation.FieldBonusMarge, observation.FieldScoreGlobal:
			values[i] = new(sql.NullFloat64)
		case observation.FieldID, observation.FieldEntrainementID, observation.FieldParcoursID, observation.FieldTempsSeconds:
			values[i] = new(sql.NullInt64)
		case observation.FieldOperation, observation.FieldEtat, observation.FieldCorrection, observation.FieldBatchID:
			values[i] = new(sql.NullString)
		case observation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Observation fields.
func (_m *Observation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case observation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case observation.FieldEntrainementID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field entrainement_id", values[i])
			} else if value.Valid {
				_m.EntrainementID = int(value.Int64)
			}
		case observation.FieldParcoursID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field parcours_id", values[i])
			} else if value.Valid {
				_m.ParcoursID = int(value.Int64)
			}
		case observation.FieldOperateurUn:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field operateur_un", values[i])
			} else if value.Valid {
				_m.OperateurUn = value.Float64
			}
		case observation.FieldOperateurDeux:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field operateur_deux", values[i])
			} else if value.Valid {
				_m.OperateurDeux = value.Float64
			}
		case observation.FieldOperation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation", values[i])
			} else if value.Valid {
				_m.Operation = value.String
			}
		case observation.FieldProposition:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field proposition", values[i])
			} else if value.Valid {
				_m.Proposition = value.Float64
			}
		case observation.FieldSolution:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field solution", values[i])
			} else if value.Valid {
				_m.Solution = value.Float64
			}
		case observation.FieldEtat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field etat", values[i])
			} else if value.Valid {
				_m.Etat = value.String
			}
		case observation.FieldTempsSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field temps_seconds", values[i])
			} else if value.Valid {
				_m.TempsSeconds = int(value.Int64)
			}
		case observation.FieldMargeErreur:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field marge_erreur", values[i])
			} else if value.Valid {
				_m.MargeErreur = value.Float64
			}
		case observation.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case observation.FieldBonusVitesse:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field bonus_vitesse", values[i])
			} else if value.Valid {
				_m.BonusVitesse = value.Float64
			}
		case observation.FieldBonusMarge:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field bonus_marge", values[i])
			} else if value.Valid {
				_m.BonusMarge = value.Float64
			}
		case observation.FieldScoreGlobal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_global", values[i])
			} else if value.Valid {
				_m.ScoreGlobal = value.Float64
			}
		case observation.FieldCorrection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correction", values[i])
			} else if value.Valid {
				_m.Correction = value.String
			}
		case observation.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				_m.BatchID = value.String
			}
		case observation.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Observation.
// This includes values selected through modifiers, order, etc.
func (_m *Observation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Observation.
// Note that you need to call Observation.Unwrap() before calling this method if this Observation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Observation) Update() *ObservationUpdateOne {
	return NewObservationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Observation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Observation) Unwrap() *Observation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Observation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Observation) String() string {
	var builder strings.Builder
	builder.WriteString("Observation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("entrainement_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntrainementID))
	builder.WriteString(", ")
	builder.WriteString("parcours_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParcoursID))
	builder.WriteString(", ")
	builder.WriteString("operateur_un=")
	builder.WriteString(fmt.Sprintf("%v", _m.OperateurUn))
	builder.WriteString(", ")
	builder.WriteString("operateur_deux=")
	builder.WriteString(fmt.Sprintf("%v", _m.OperateurDeux))
	builder.WriteString(", ")
	builder.WriteString("operation=")
	builder.WriteString(_m.Operation)
	builder.WriteString(", ")
	builder.WriteString("proposition=")
	builder.WriteString(fmt.Sprintf("%v", _m.Proposition))
	builder.WriteString(", ")
	builder.WriteString("solution=")
	builder.WriteString(fmt.Sprintf("%v", _m.Solution))
	builder.WriteString(", ")
	builder.WriteString("etat=")
	builder.WriteString(_m.Etat)
	builder.WriteString(", ")
	builder.WriteString("temps_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TempsSeconds))
	builder.WriteString(", ")
	builder.WriteString("marge_erreur=")
	builder.WriteString(fmt.Sprintf("%v", _m.MargeErreur))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("bonus_vitesse=")
	builder.WriteString(fmt.Sprintf("%v", _m.BonusVitesse))
	builder.WriteString(", ")
	builder.WriteString("bonus_marge=")
	builder.WriteString(fmt.Sprintf("%v", _m.BonusMarge))
	builder.WriteString(", ")
	builder.WriteString("score_global=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoreGlobal))
	builder.WriteString(", ")
	builder.WriteString("correction=")
	builder.WriteString(_m.Correction)
	builder.WriteString(", ")
	builder.WriteString("batch_id=")
	builder.WriteString(_m.BatchID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Observations is a parsable slice of Observation.
type Observations []*Observation
