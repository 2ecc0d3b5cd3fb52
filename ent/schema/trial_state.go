package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// TrialState is the single-row trial record: when the free trial
// started, in epoch milliseconds. Legacy installs stored seconds; the
// entitlement gate heals the unit on read.
type TrialState struct {
	ent.Schema
}

func (TrialState) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("started_at_ms").
			Comment("Epoch milliseconds of the trial start"),
	}
}
