package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message is one global-chat row. The string id doubles as the merge
// key for the optimistic-echo/realtime dedup.
type Message struct {
	ent.Schema
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Int("sender_id"),
		field.String("sender_name").
			NotEmpty(),
		field.String("display_name").
			Optional(),
		field.String("avatar_url").
			Optional(),
		field.String("content").
			NotEmpty().
			MaxLen(500),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
