package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Observation is one durable attempt row, written only by the batched
// session flush. Derived columns (etat, marge_erreur, score, bonuses)
// are computed at insert time; the client reads them back as the
// authoritative truth.
type Observation struct {
	ent.Schema
}

func (Observation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("entrainement_id").
			Comment("Owning session"),
		field.Int("parcours_id").
			Comment("Course/track identifier"),
		field.Float("operateur_un"),
		field.Float("operateur_deux"),
		field.String("operation").
			NotEmpty().
			Comment("Addition, Soustraction, or Multiplication"),
		field.Float("proposition").
			Comment("User's parsed answer, 0 when unparseable"),
		field.Float("solution"),
		field.String("etat").
			Comment("VRAI or FAUX"),
		field.Int("temps_seconds").
			NonNegative(),
		field.Float("marge_erreur").
			Default(0).
			Comment("Percent distance from the solution"),
		field.Float("score").
			Comment("Base score, +1 or -1"),
		field.Float("bonus_vitesse").
			Default(0),
		field.Float("bonus_marge").
			Default(0),
		field.Float("score_global").
			Default(0).
			Comment("score + bonus_vitesse + bonus_marge"),
		field.String("correction").
			Default("NON").
			Comment("NON until a correction round touches the session"),
		field.String("batch_id").
			NotEmpty().
			Comment("Client-generated flush nonce; duplicate batches are dropped"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Observation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entrainement_id"),
		index.Fields("batch_id"),
		index.Fields("etat"),
	}
}
