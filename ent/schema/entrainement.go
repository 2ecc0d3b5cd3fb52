package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Entrainement is one training session. Every observation row references
// its session, and the review flow increments its correction attempt
// counter.
type Entrainement struct {
	ent.Schema
}

func (Entrainement) Fields() []ent.Field {
	return []ent.Field{
		field.Int("volume").
			Positive().
			Comment("Requested exercise count"),
		field.Int("tentative").
			Default(0).
			Comment("Correction attempt counter, incremented per completed review round"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
