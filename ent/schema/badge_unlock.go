package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// BadgeUnlock records one unlocked badge. The badge definitions
// themselves are static; only the unlock fact is stored.
type BadgeUnlock struct {
	ent.Schema
}

func (BadgeUnlock) Fields() []ent.Field {
	return []ent.Field{
		field.String("badge_id").
			NotEmpty().
			Unique(),
		field.Time("unlocked_at").
			Default(time.Now).
			Immutable(),
	}
}
