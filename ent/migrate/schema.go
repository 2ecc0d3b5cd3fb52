// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BadgeUnlocksColumns holds the columns for the "badge_unlocks" table.
	BadgeUnlocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "badge_id", Type: field.TypeString, Unique: true},
		{Name: "unlocked_at", Type: field.TypeTime},
	}
	// BadgeUnlocksTable holds the schema information for the "badge_unlocks" table.
	BadgeUnlocksTable = &schema.Table{
		Name:       "badge_unlocks",
		Columns:    BadgeUnlocksColumns,
		PrimaryKey: []*schema.Column{BadgeUnlocksColumns[0]},
	}
	// EntrainementsColumns holds the columns for the "entrainements" table.
	EntrainementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "volume", Type: field.TypeInt},
		{Name: "tentative", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EntrainementsTable holds the schema information for the "entrainements" table.
	EntrainementsTable = &schema.Table{
		Name:       "entrainements",
		Columns:    EntrainementsColumns,
		PrimaryKey: []*schema.Column{EntrainementsColumns[0]},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "sender_id", Type: field.TypeInt},
		{Name: "sender_name", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "avatar_url", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 500},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[6]},
			},
		},
	}
	// ObservationsColumns holds the columns for the "observations" table.
	ObservationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "entrainement_id", Type: field.TypeInt},
		{Name: "parcours_id", Type: field.TypeInt},
		{Name: "operateur_un", Type: field.TypeFloat64},
		{Name: "operateur_deux", Type: field.TypeFloat64},
		{Name: "operation", Type: field.TypeString},
		{Name: "proposition", Type: field.TypeFloat64},
		{Name: "solution", Type: field.TypeFloat64},
		{Name: "etat", Type: field.TypeString},
		{Name: "temps_seconds", Type: field.TypeInt},
		{Name: "marge_erreur", Type: field.TypeFloat64, Default: 0},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "bonus_vitesse", Type: field.TypeFloat64, Default: 0},
		{Name: "bonus_marge", Type: field.TypeFloat64, Default: 0},
		{Name: "score_global", Type: field.TypeFloat64, Default: 0},
		{Name: "correction", Type: field.TypeString, Default: "NON"},
		{Name: "batch_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ObservationsTable holds the schema information for the "observations" table.
	ObservationsTable = &schema.Table{
		Name:       "observations",
		Columns:    ObservationsColumns,
		PrimaryKey: []*schema.Column{ObservationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "observation_entrainement_id",
				Unique:  false,
				Columns: []*schema.Column{ObservationsColumns[1]},
			},
			{
				Name:    "observation_batch_id",
				Unique:  false,
				Columns: []*schema.Column{ObservationsColumns[16]},
			},
			{
				Name:    "observation_etat",
				Unique:  false,
				Columns: []*schema.Column{ObservationsColumns[8]},
			},
		},
	}
	// TrialStatesColumns holds the columns for the "trial_states" table.
	TrialStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "started_at_ms", Type: field.TypeInt64},
	}
	// TrialStatesTable holds the schema information for the "trial_states" table.
	TrialStatesTable = &schema.Table{
		Name:       "trial_states",
		Columns:    TrialStatesColumns,
		PrimaryKey: []*schema.Column{TrialStatesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BadgeUnlocksTable,
		EntrainementsTable,
		MessagesTable,
		ObservationsTable,
		TrialStatesTable,
	}
)

func init() {
}
