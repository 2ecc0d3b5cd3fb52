// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BadgeUnlock is the predicate function for badgeunlock builders.
type BadgeUnlock func(*sql.Selector)

// Entrainement is the predicate function for entrainement builders.
type Entrainement func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Observation is the predicate function for observation builders.
type Observation func(*sql.Selector)

// TrialState is the predicate function for trialstate builders.
type TrialState func(*sql.Selector)
