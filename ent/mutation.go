// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Tnecniv1/Calcul-Pixel/ent/badgeunlock"
	"github.com/Tnecniv1/Calcul-Pixel/ent/entrainement"
	"github.com/Tnecniv1/Calcul-Pixel/ent/message"
	"github.com/Tnecniv1/Calcul-Pixel/ent/observation"
	"github.com/Tnecniv1/Calcul-Pixel/ent/predicate"
	"github.com/Tnecniv1/Calcul-Pixel/ent/trialstate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBadgeUnlock  = "BadgeUnlock"
	TypeEntrainement = "Entrainement"
	TypeMessage      = "Message"
	TypeObservation  = "Observation"
	TypeTrialState   = "TrialState"
)

// BadgeUnlockMutation represents an operation that mutates the BadgeUnlock nodes in the graph.
type BadgeUnlockMutation struct {
	config
	op            Op
	typ           string
	id            *int
	badge_id      *string
	unlocked_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BadgeUnlock, error)
	predicates    []predicate.BadgeUnlock
}

var _ ent.Mutation = (*BadgeUnlockMutation)(nil)

// badgeunlockOption allows management of the mutation configuration using functional options.
type badgeunlockOption func(*BadgeUnlockMutation)

// newBadgeUnlockMutation creates new mutation for the BadgeUnlock entity.
func newBadgeUnlockMutation(c config, op Op, opts ...badgeunlockOption) *BadgeUnlockMutation {
	m := &BadgeUnlockMutation{
		config:        c,
		op:            op,
		typ:           TypeBadgeUnlock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBadgeUnlockID sets the ID field of the mutation.
func withBadgeUnlockID(id int) badgeunlockOption {
	return func(m *BadgeUnlockMutation) {
		var (
			err   error
			once  sync.Once
			value *BadgeUnlock
		)
		m.oldValue = func(ctx context.Context) (*BadgeUnlock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BadgeUnlock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBadgeUnlock sets the old BadgeUnlock of the mutation.
func withBadgeUnlock(node *BadgeUnlock) badgeunlockOption {
	return func(m *BadgeUnlockMutation) {
		m.oldValue = func(context.Context) (*BadgeUnlock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BadgeUnlockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BadgeUnlockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BadgeUnlockMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BadgeUnlockMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BadgeUnlock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBadgeID sets the "badge_id" field.
func (m *BadgeUnlockMutation) SetBadgeID(s string) {
	m.badge_id = &s
}

// BadgeID returns the value of the "badge_id" field in the mutation.
func (m *BadgeUnlockMutation) BadgeID() (r string, exists bool) {
	v := m.badge_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBadgeID returns the old "badge_id" field's value of the BadgeUnlock entity.
// If the BadgeUnlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeUnlockMutation) OldBadgeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBadgeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBadgeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBadgeID: %w", err)
	}
	return oldValue.BadgeID, nil
}

// ResetBadgeID resets all changes to the "badge_id" field.
func (m *BadgeUnlockMutation) ResetBadgeID() {
	m.badge_id = nil
}

// SetUnlockedAt sets the "unlocked_at" field.
func (m *BadgeUnlockMutation) SetUnlockedAt(t time.Time) {
	m.unlocked_at = &t
}

// UnlockedAt returns the value of the "unlocked_at" field in the mutation.
func (m *BadgeUnlockMutation) UnlockedAt() (r time.Time, exists bool) {
	v := m.unlocked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlockedAt returns the old "unlocked_at" field's value of the BadgeUnlock entity.
// If the BadgeUnlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BadgeUnlockMutation) OldUnlockedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlockedAt: %w", err)
	}
	return oldValue.UnlockedAt, nil
}

// ResetUnlockedAt resets all changes to the "unlocked_at" field.
func (m *BadgeUnlockMutation) ResetUnlockedAt() {
	m.unlocked_at = nil
}

// Where appends a list predicates to the BadgeUnlockMutation builder.
func (m *BadgeUnlockMutation) Where(ps ...predicate.BadgeUnlock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BadgeUnlockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BadgeUnlockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BadgeUnlock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BadgeUnlockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BadgeUnlockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BadgeUnlock).
func (m *BadgeUnlockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BadgeUnlockMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.badge_id != nil {
		fields = append(fields, badgeunlock.FieldBadgeID)
	}
	if m.unlocked_at != nil {
		fields = append(fields, badgeunlock.FieldUnlockedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BadgeUnlockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case badgeunlock.FieldBadgeID:
		return m.BadgeID()
	case badgeunlock.FieldUnlockedAt:
		return m.UnlockedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BadgeUnlockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case badgeunlock.FieldBadgeID:
		return m.OldBadgeID(ctx)
	case badgeunlock.FieldUnlockedAt:
		return m.OldUnlockedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BadgeUnlock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeUnlockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case badgeunlock.FieldBadgeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBadgeID(v)
		return nil
	case badgeunlock.FieldUnlockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlockedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BadgeUnlock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BadgeUnlockMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BadgeUnlockMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BadgeUnlockMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BadgeUnlock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BadgeUnlockMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BadgeUnlockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BadgeUnlockMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BadgeUnlock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BadgeUnlockMutation) ResetField(name string) error {
	switch name {
	case badgeunlock.FieldBadgeID:
		m.ResetBadgeID()
		return nil
	case badgeunlock.FieldUnlockedAt:
		m.ResetUnlockedAt()
		return nil
	}
	return fmt.Errorf("unknown BadgeUnlock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BadgeUnlockMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BadgeUnlockMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BadgeUnlockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BadgeUnlockMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BadgeUnlockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BadgeUnlockMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BadgeUnlockMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BadgeUnlock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BadgeUnlockMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BadgeUnlock edge %s", name)
}

// EntrainementMutation represents an operation that mutates the Entrainement nodes in the graph.
type EntrainementMutation struct {
	config
	op            Op
	typ           string
	id            *int
	volume        *int
	addvolume     *int
	tentative     *int
	addtentative  *int
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Entrainement, error)
	predicates    []predicate.Entrainement
}

var _ ent.Mutation = (*EntrainementMutation)(nil)

// entrainementOption allows management of the mutation configuration using functional options.
type entrainementOption func(*EntrainementMutation)

// newEntrainementMutation creates new mutation for the Entrainement entity.
func newEntrainementMutation(c config, op Op, opts ...entrainementOption) *EntrainementMutation {
	m := &EntrainementMutation{
		config:        c,
		op:            op,
		typ:           TypeEntrainement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntrainementID sets the ID field of the mutation.
func withEntrainementID(id int) entrainementOption {
	return func(m *EntrainementMutation) {
		var (
			err   error
			once  sync.Once
			value *Entrainement
		)
		m.oldValue = func(ctx context.Context) (*Entrainement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Entrainement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntrainement sets the old Entrainement of the mutation.
func withEntrainement(node *Entrainement) entrainementOption {
	return func(m *EntrainementMutation) {
		m.oldValue = func(context.Context) (*Entrainement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntrainementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntrainementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntrainementMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntrainementMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Entrainement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVolume sets the "volume" field.
func (m *EntrainementMutation) SetVolume(i int) {
	m.volume = &i
	m.addvolume = nil
}

// Volume returns the value of the "volume" field in the mutation.
func (m *EntrainementMutation) Volume() (r int, exists bool) {
	v := m.volume
	if v == nil {
		return
	}
	return *v, true
}

// OldVolume returns the old "volume" field's value of the Entrainement entity.
// If the Entrainement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntrainementMutation) OldVolume(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVolume is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVolume requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVolume: %w", err)
	}
	return oldValue.Volume, nil
}

// AddVolume adds i to the "volume" field.
func (m *EntrainementMutation) AddVolume(i int) {
	if m.addvolume != nil {
		*m.addvolume += i
	} else {
		m.addvolume = &i
	}
}

// AddedVolume returns the value that was added to the "volume" field in this mutation.
func (m *EntrainementMutation) AddedVolume() (r int, exists bool) {
	v := m.addvolume
	if v == nil {
		return
	}
	return *v, true
}

// ResetVolume resets all changes to the "volume" field.
func (m *EntrainementMutation) ResetVolume() {
	m.volume = nil
	m.addvolume = nil
}

// SetTentative sets the "tentative" field.
func (m *EntrainementMutation) SetTentative(i int) {
	m.tentative = &i
	m.addtentative = nil
}

// Tentative returns the value of the "tentative" field in the mutation.
func (m *EntrainementMutation) Tentative() (r int, exists bool) {
	v := m.tentative
	if v == nil {
		return
	}
	return *v, true
}

// OldTentative returns the old "tentative" field's value of the Entrainement entity.
// If the Entrainement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntrainementMutation) OldTentative(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTentative is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTentative requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTentative: %w", err)
	}
	return oldValue.Tentative, nil
}

// AddTentative adds i to the "tentative" field.
func (m *EntrainementMutation) AddTentative(i int) {
	if m.addtentative != nil {
		*m.addtentative += i
	} else {
		m.addtentative = &i
	}
}

// AddedTentative returns the value that was added to the "tentative" field in this mutation.
func (m *EntrainementMutation) AddedTentative() (r int, exists bool) {
	v := m.addtentative
	if v == nil {
		return
	}
	return *v, true
}

// ResetTentative resets all changes to the "tentative" field.
func (m *EntrainementMutation) ResetTentative() {
	m.tentative = nil
	m.addtentative = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EntrainementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EntrainementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Entrainement entity.
// If the Entrainement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntrainementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EntrainementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EntrainementMutation builder.
func (m *EntrainementMutation) Where(ps ...predicate.Entrainement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntrainementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntrainementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Entrainement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntrainementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntrainementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Entrainement).
func (m *EntrainementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntrainementMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.volume != nil {
		fields = append(fields, entrainement.FieldVolume)
	}
	if m.tentative != nil {
		fields = append(fields, entrainement.FieldTentative)
	}
	if m.created_at != nil {
		fields = append(fields, entrainement.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntrainementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entrainement.FieldVolume:
		return m.Volume()
	case entrainement.FieldTentative:
		return m.Tentative()
	case entrainement.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntrainementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entrainement.FieldVolume:
		return m.OldVolume(ctx)
	case entrainement.FieldTentative:
		return m.OldTentative(ctx)
	case entrainement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Entrainement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntrainementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entrainement.FieldVolume:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVolume(v)
		return nil
	case entrainement.FieldTentative:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTentative(v)
		return nil
	case entrainement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Entrainement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntrainementMutation) AddedFields() []string {
	var fields []string
	if m.addvolume != nil {
		fields = append(fields, entrainement.FieldVolume)
	}
	if m.addtentative != nil {
		fields = append(fields, entrainement.FieldTentative)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntrainementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entrainement.FieldVolume:
		return m.AddedVolume()
	case entrainement.FieldTentative:
		return m.AddedTentative()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntrainementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entrainement.FieldVolume:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVolume(v)
		return nil
	case entrainement.FieldTentative:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTentative(v)
		return nil
	}
	return fmt.Errorf("unknown Entrainement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntrainementMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntrainementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntrainementMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Entrainement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntrainementMutation) ResetField(name string) error {
	switch name {
	case entrainement.FieldVolume:
		m.ResetVolume()
		return nil
	case entrainement.FieldTentative:
		m.ResetTentative()
		return nil
	case entrainement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Entrainement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntrainementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntrainementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntrainementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntrainementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntrainementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntrainementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntrainementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Entrainement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntrainementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Entrainement edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	sender_id     *int
	addsender_id  *int
	sender_name   *string
	display_name  *string
	avatar_url    *string
	content       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Message, error)
	predicates    []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSenderID sets the "sender_id" field.
func (m *MessageMutation) SetSenderID(i int) {
	m.sender_id = &i
	m.addsender_id = nil
}

// SenderID returns the value of the "sender_id" field in the mutation.
func (m *MessageMutation) SenderID() (r int, exists bool) {
	v := m.sender_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderID returns the old "sender_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSenderID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderID: %w", err)
	}
	return oldValue.SenderID, nil
}

// AddSenderID adds i to the "sender_id" field.
func (m *MessageMutation) AddSenderID(i int) {
	if m.addsender_id != nil {
		*m.addsender_id += i
	} else {
		m.addsender_id = &i
	}
}

// AddedSenderID returns the value that was added to the "sender_id" field in this mutation.
func (m *MessageMutation) AddedSenderID() (r int, exists bool) {
	v := m.addsender_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSenderID resets all changes to the "sender_id" field.
func (m *MessageMutation) ResetSenderID() {
	m.sender_id = nil
	m.addsender_id = nil
}

// SetSenderName sets the "sender_name" field.
func (m *MessageMutation) SetSenderName(s string) {
	m.sender_name = &s
}

// SenderName returns the value of the "sender_name" field in the mutation.
func (m *MessageMutation) SenderName() (r string, exists bool) {
	v := m.sender_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderName returns the old "sender_name" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSenderName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderName: %w", err)
	}
	return oldValue.SenderName, nil
}

// ResetSenderName resets all changes to the "sender_name" field.
func (m *MessageMutation) ResetSenderName() {
	m.sender_name = nil
}

// SetDisplayName sets the "display_name" field.
func (m *MessageMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *MessageMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *MessageMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[message.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *MessageMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[message.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *MessageMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, message.FieldDisplayName)
}

// SetAvatarURL sets the "avatar_url" field.
func (m *MessageMutation) SetAvatarURL(s string) {
	m.avatar_url = &s
}

// AvatarURL returns the value of the "avatar_url" field in the mutation.
func (m *MessageMutation) AvatarURL() (r string, exists bool) {
	v := m.avatar_url
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatarURL returns the old "avatar_url" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldAvatarURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatarURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatarURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatarURL: %w", err)
	}
	return oldValue.AvatarURL, nil
}

// ClearAvatarURL clears the value of the "avatar_url" field.
func (m *MessageMutation) ClearAvatarURL() {
	m.avatar_url = nil
	m.clearedFields[message.FieldAvatarURL] = struct{}{}
}

// AvatarURLCleared returns if the "avatar_url" field was cleared in this mutation.
func (m *MessageMutation) AvatarURLCleared() bool {
	_, ok := m.clearedFields[message.FieldAvatarURL]
	return ok
}

// ResetAvatarURL resets all changes to the "avatar_url" field.
func (m *MessageMutation) ResetAvatarURL() {
	m.avatar_url = nil
	delete(m.clearedFields, message.FieldAvatarURL)
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sender_id != nil {
		fields = append(fields, message.FieldSenderID)
	}
	if m.sender_name != nil {
		fields = append(fields, message.FieldSenderName)
	}
	if m.display_name != nil {
		fields = append(fields, message.FieldDisplayName)
	}
	if m.avatar_url != nil {
		fields = append(fields, message.FieldAvatarURL)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldSenderID:
		return m.SenderID()
	case message.FieldSenderName:
		return m.SenderName()
	case message.FieldDisplayName:
		return m.DisplayName()
	case message.FieldAvatarURL:
		return m.AvatarURL()
	case message.FieldContent:
		return m.Content()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldSenderID:
		return m.OldSenderID(ctx)
	case message.FieldSenderName:
		return m.OldSenderName(ctx)
	case message.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case message.FieldAvatarURL:
		return m.OldAvatarURL(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldSenderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderID(v)
		return nil
	case message.FieldSenderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderName(v)
		return nil
	case message.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case message.FieldAvatarURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatarURL(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addsender_id != nil {
		fields = append(fields, message.FieldSenderID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldSenderID:
		return m.AddedSenderID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldSenderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSenderID(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldDisplayName) {
		fields = append(fields, message.FieldDisplayName)
	}
	if m.FieldCleared(message.FieldAvatarURL) {
		fields = append(fields, message.FieldAvatarURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	case message.FieldAvatarURL:
		m.ClearAvatarURL()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldSenderID:
		m.ResetSenderID()
		return nil
	case message.FieldSenderName:
		m.ResetSenderName()
		return nil
	case message.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case message.FieldAvatarURL:
		m.ResetAvatarURL()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Message edge %s", name)
}

// ObservationMutation represents an operation that mutates the Observation nodes in the graph.
type ObservationMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	entrainement_id    *int
	addentrainement_id *int
	parcours_id        *int
	addparcours_id     *int
	operateur_un       *float64
	addoperateur_un    *float64
	operateur_deux     *float64
	addoperateur_deux  *float64
	operation          *string
	proposition        *float64
	addproposition     *float64
	solution           *float64
	addsolution        *float64
	etat               *string
	temps_seconds      *int
	addtemps_seconds   *int
	marge_erreur       *float64
	addmarge_erreur    *float64
	score              *float64
	addscore           *float64
	bonus_vitesse      *float64
	addbonus_vitesse   *float64
	bonus_marge        *float64
	addbonus_marge     *float64
	score_global       *float64
	addscore_global    *float64
	correction         *string
	batch_id           *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Observation, error)
	predicates         []predicate.Observation
}

var _ ent.Mutation = (*ObservationMutation)(nil)

// observationOption allows management of the mutation configuration using functional options.
type observationOption func(*ObservationMutation)

// newObservationMutation creates new mutation for the Observation entity.
func newObservationMutation(c config, op Op, opts ...observationOption) *ObservationMutation {
	m := &ObservationMutation{
		config:        c,
		op:            op,
		typ:           TypeObservation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withObservationID sets the ID field of the mutation.
func withObservationID(id int) observationOption {
	return func(m *ObservationMutation) {
		var (
			err   error
			once  sync.Once
			value *Observation
		)
		m.oldValue = func(ctx context.Context) (*Observation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Observation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withObservation sets the old Observation of the mutation.
func withObservation(node *Observation) observationOption {
	return func(m *ObservationMutation) {
		m.oldValue = func(context.Context) (*Observation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ObservationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ObservationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ObservationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ObservationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Observation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntrainementID sets the "entrainement_id" field.
func (m *ObservationMutation) SetEntrainementID(i int) {
	m.entrainement_id = &i
	m.addentrainement_id = nil
}

// EntrainementID returns the value of the "entrainement_id" field in the mutation.
func (m *ObservationMutation) EntrainementID() (r int, exists bool) {
	v := m.entrainement_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntrainementID returns the old "entrainement_id" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldEntrainementID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntrainementID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntrainementID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntrainementID: %w", err)
	}
	return oldValue.EntrainementID, nil
}

// AddEntrainementID adds i to the "entrainement_id" field.
func (m *ObservationMutation) AddEntrainementID(i int) {
	if m.addentrainement_id != nil {
		*m.addentrainement_id += i
	} else {
		m.addentrainement_id = &i
	}
}

// AddedEntrainementID returns the value that was added to the "entrainement_id" field in this mutation.
func (m *ObservationMutation) AddedEntrainementID() (r int, exists bool) {
	v := m.addentrainement_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetEntrainementID resets all changes to the "entrainement_id" field.
func (m *ObservationMutation) ResetEntrainementID() {
	m.entrainement_id = nil
	m.addentrainement_id = nil
}

// SetParcoursID sets the "parcours_id" field.
func (m *ObservationMutation) SetParcoursID(i int) {
	m.parcours_id = &i
	m.addparcours_id = nil
}

// ParcoursID returns the value of the "parcours_id" field in the mutation.
func (m *ObservationMutation) ParcoursID() (r int, exists bool) {
	v := m.parcours_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParcoursID returns the old "parcours_id" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldParcoursID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParcoursID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParcoursID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParcoursID: %w", err)
	}
	return oldValue.ParcoursID, nil
}

// AddParcoursID adds i to the "parcours_id" field.
func (m *ObservationMutation) AddParcoursID(i int) {
	if m.addparcours_id != nil {
		*m.addparcours_id += i
	} else {
		m.addparcours_id = &i
	}
}

// AddedParcoursID returns the value that was added to the "parcours_id" field in this mutation.
func (m *ObservationMutation) AddedParcoursID() (r int, exists bool) {
	v := m.addparcours_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetParcoursID resets all changes to the "parcours_id" field.
func (m *ObservationMutation) ResetParcoursID() {
	m.parcours_id = nil
	m.addparcours_id = nil
}

// SetOperateurUn sets the "operateur_un" field.
func (m *ObservationMutation) SetOperateurUn(f float64) {
	m.operateur_un = &f
	m.addoperateur_un = nil
}

// OperateurUn returns the value of the "operateur_un" field in the mutation.
func (m *ObservationMutation) OperateurUn() (r float64, exists bool) {
	v := m.operateur_un
	if v == nil {
		return
	}
	return *v, true
}

// OldOperateurUn returns the old "operateur_un" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldOperateurUn(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperateurUn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperateurUn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperateurUn: %w", err)
	}
	return oldValue.OperateurUn, nil
}

// AddOperateurUn adds f to the "operateur_un" field.
func (m *ObservationMutation) AddOperateurUn(f float64) {
	if m.addoperateur_un != nil {
		*m.addoperateur_un += f
	} else {
		m.addoperateur_un = &f
	}
}

// AddedOperateurUn returns the value that was added to the "operateur_un" field in this mutation.
func (m *ObservationMutation) AddedOperateurUn() (r float64, exists bool) {
	v := m.addoperateur_un
	if v == nil {
		return
	}
	return *v, true
}

// ResetOperateurUn resets all changes to the "operateur_un" field.
func (m *ObservationMutation) ResetOperateurUn() {
	m.operateur_un = nil
	m.addoperateur_un = nil
}

// SetOperateurDeux sets the "operateur_deux" field.
func (m *ObservationMutation) SetOperateurDeux(f float64) {
	m.operateur_deux = &f
	m.addoperateur_deux = nil
}

// OperateurDeux returns the value of the "operateur_deux" field in the mutation.
func (m *ObservationMutation) OperateurDeux() (r float64, exists bool) {
	v := m.operateur_deux
	if v == nil {
		return
	}
	return *v, true
}

// OldOperateurDeux returns the old "operateur_deux" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldOperateurDeux(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperateurDeux is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperateurDeux requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperateurDeux: %w", err)
	}
	return oldValue.OperateurDeux, nil
}

// AddOperateurDeux adds f to the "operateur_deux" field.
func (m *ObservationMutation) AddOperateurDeux(f float64) {
	if m.addoperateur_deux != nil {
		*m.addoperateur_deux += f
	} else {
		m.addoperateur_deux = &f
	}
}

// AddedOperateurDeux returns the value that was added to the "operateur_deux" field in this mutation.
func (m *ObservationMutation) AddedOperateurDeux() (r float64, exists bool) {
	v := m.addoperateur_deux
	if v == nil {
		return
	}
	return *v, true
}

// ResetOperateurDeux resets all changes to the "operateur_deux" field.
func (m *ObservationMutation) ResetOperateurDeux() {
	m.operateur_deux = nil
	m.addoperateur_deux = nil
}

// SetOperation sets the "operation" field.
func (m *ObservationMutation) SetOperation(s string) {
	m.operation = &s
}

// Operation returns the value of the "operation" field in the mutation.
func (m *ObservationMutation) Operation() (r string, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldOperation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *ObservationMutation) ResetOperation() {
	m.operation = nil
}

// SetProposition sets the "proposition" field.
func (m *ObservationMutation) SetProposition(f float64) {
	m.proposition = &f
	m.addproposition = nil
}

// Proposition returns the value of the "proposition" field in the mutation.
func (m *ObservationMutation) Proposition() (r float64, exists bool) {
	v := m.proposition
	if v == nil {
		return
	}
	return *v, true
}

// OldProposition returns the old "proposition" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldProposition(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposition: %w", err)
	}
	return oldValue.Proposition, nil
}

// AddProposition adds f to the "proposition" field.
func (m *ObservationMutation) AddProposition(f float64) {
	if m.addproposition != nil {
		*m.addproposition += f
	} else {
		m.addproposition = &f
	}
}

// AddedProposition returns the value that was added to the "proposition" field in this mutation.
func (m *ObservationMutation) AddedProposition() (r float64, exists bool) {
	v := m.addproposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetProposition resets all changes to the "proposition" field.
func (m *ObservationMutation) ResetProposition() {
	m.proposition = nil
	m.addproposition = nil
}

// SetSolution sets the "solution" field.
func (m *ObservationMutation) SetSolution(f float64) {
	m.solution = &f
	m.addsolution = nil
}

// Solution returns the value of the "solution" field in the mutation.
func (m *ObservationMutation) Solution() (r float64, exists bool) {
	v := m.solution
	if v == nil {
		return
	}
	return *v, true
}

// OldSolution returns the old "solution" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldSolution(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolution: %w", err)
	}
	return oldValue.Solution, nil
}

// AddSolution adds f to the "solution" field.
func (m *ObservationMutation) AddSolution(f float64) {
	if m.addsolution != nil {
		*m.addsolution += f
	} else {
		m.addsolution = &f
	}
}

// AddedSolution returns the value that was added to the "solution" field in this mutation.
func (m *ObservationMutation) AddedSolution() (r float64, exists bool) {
	v := m.addsolution
	if v == nil {
		return
	}
	return *v, true
}

// ResetSolution resets all changes to the "solution" field.
func (m *ObservationMutation) ResetSolution() {
	m.solution = nil
	m.addsolution = nil
}

// SetEtat sets the "etat" field.
func (m *ObservationMutation) SetEtat(s string) {
	m.etat = &s
}

// Etat returns the value of the "etat" field in the mutation.
func (m *ObservationMutation) Etat() (r string, exists bool) {
	v := m.etat
	if v == nil {
		return
	}
	return *v, true
}

// OldEtat returns the old "etat" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldEtat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEtat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEtat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEtat: %w", err)
	}
	return oldValue.Etat, nil
}

// ResetEtat resets all changes to the "etat" field.
func (m *ObservationMutation) ResetEtat() {
	m.etat = nil
}

// SetTempsSeconds sets the "temps_seconds" field.
func (m *ObservationMutation) SetTempsSeconds(i int) {
	m.temps_seconds = &i
	m.addtemps_seconds = nil
}

// TempsSeconds returns the value of the "temps_seconds" field in the mutation.
func (m *ObservationMutation) TempsSeconds() (r int, exists bool) {
	v := m.temps_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTempsSeconds returns the old "temps_seconds" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldTempsSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTempsSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTempsSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTempsSeconds: %w", err)
	}
	return oldValue.TempsSeconds, nil
}

// AddTempsSeconds adds i to the "temps_seconds" field.
func (m *ObservationMutation) AddTempsSeconds(i int) {
	if m.addtemps_seconds != nil {
		*m.addtemps_seconds += i
	} else {
		m.addtemps_seconds = &i
	}
}

// AddedTempsSeconds returns the value that was added to the "temps_seconds" field in this mutation.
func (m *ObservationMutation) AddedTempsSeconds() (r int, exists bool) {
	v := m.addtemps_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTempsSeconds resets all changes to the "temps_seconds" field.
func (m *ObservationMutation) ResetTempsSeconds() {
	m.temps_seconds = nil
	m.addtemps_seconds = nil
}

// SetMargeErreur sets the "marge_erreur" field.
func (m *ObservationMutation) SetMargeErreur(f float64) {
	m.marge_erreur = &f
	m.addmarge_erreur = nil
}

// MargeErreur returns the value of the "marge_erreur" field in the mutation.
func (m *ObservationMutation) MargeErreur() (r float64, exists bool) {
	v := m.marge_erreur
	if v == nil {
		return
	}
	return *v, true
}

// OldMargeErreur returns the old "marge_erreur" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldMargeErreur(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMargeErreur is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMargeErreur requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMargeErreur: %w", err)
	}
	return oldValue.MargeErreur, nil
}

// AddMargeErreur adds f to the "marge_erreur" field.
func (m *ObservationMutation) AddMargeErreur(f float64) {
	if m.addmarge_erreur != nil {
		*m.addmarge_erreur += f
	} else {
		m.addmarge_erreur = &f
	}
}

// AddedMargeErreur returns the value that was added to the "marge_erreur" field in this mutation.
func (m *ObservationMutation) AddedMargeErreur() (r float64, exists bool) {
	v := m.addmarge_erreur
	if v == nil {
		return
	}
	return *v, true
}

// ResetMargeErreur resets all changes to the "marge_erreur" field.
func (m *ObservationMutation) ResetMargeErreur() {
	m.marge_erreur = nil
	m.addmarge_erreur = nil
}

// SetScore sets the "score" field.
func (m *ObservationMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ObservationMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *ObservationMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ObservationMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ObservationMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetBonusVitesse sets the "bonus_vitesse" field.
func (m *ObservationMutation) SetBonusVitesse(f float64) {
	m.bonus_vitesse = &f
	m.addbonus_vitesse = nil
}

// BonusVitesse returns the value of the "bonus_vitesse" field in the mutation.
func (m *ObservationMutation) BonusVitesse() (r float64, exists bool) {
	v := m.bonus_vitesse
	if v == nil {
		return
	}
	return *v, true
}

// OldBonusVitesse returns the old "bonus_vitesse" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldBonusVitesse(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBonusVitesse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBonusVitesse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBonusVitesse: %w", err)
	}
	return oldValue.BonusVitesse, nil
}

// AddBonusVitesse adds f to the "bonus_vitesse" field.
func (m *ObservationMutation) AddBonusVitesse(f float64) {
	if m.addbonus_vitesse != nil {
		*m.addbonus_vitesse += f
	} else {
		m.addbonus_vitesse = &f
	}
}

// AddedBonusVitesse returns the value that was added to the "bonus_vitesse" field in this mutation.
func (m *ObservationMutation) AddedBonusVitesse() (r float64, exists bool) {
	v := m.addbonus_vitesse
	if v == nil {
		return
	}
	return *v, true
}

// ResetBonusVitesse resets all changes to the "bonus_vitesse" field.
func (m *ObservationMutation) ResetBonusVitesse() {
	m.bonus_vitesse = nil
	m.addbonus_vitesse = nil
}

// SetBonusMarge sets the "bonus_marge" field.
func (m *ObservationMutation) SetBonusMarge(f float64) {
	m.bonus_marge = &f
	m.addbonus_marge = nil
}

// BonusMarge returns the value of the "bonus_marge" field in the mutation.
func (m *ObservationMutation) BonusMarge() (r float64, exists bool) {
	v := m.bonus_marge
	if v == nil {
		return
	}
	return *v, true
}

// OldBonusMarge returns the old "bonus_marge" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldBonusMarge(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBonusMarge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBonusMarge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBonusMarge: %w", err)
	}
	return oldValue.BonusMarge, nil
}

// AddBonusMarge adds f to the "bonus_marge" field.
func (m *ObservationMutation) AddBonusMarge(f float64) {
	if m.addbonus_marge != nil {
		*m.addbonus_marge += f
	} else {
		m.addbonus_marge = &f
	}
}

// AddedBonusMarge returns the value that was added to the "bonus_marge" field in this mutation.
func (m *ObservationMutation) AddedBonusMarge() (r float64, exists bool) {
	v := m.addbonus_marge
	if v == nil {
		return
	}
	return *v, true
}

// ResetBonusMarge resets all changes to the "bonus_marge" field.
func (m *ObservationMutation) ResetBonusMarge() {
	m.bonus_marge = nil
	m.addbonus_marge = nil
}

// SetScoreGlobal sets the "score_global" field.
func (m *ObservationMutation) SetScoreGlobal(f float64) {
	m.score_global = &f
	m.addscore_global = nil
}

// ScoreGlobal returns the value of the "score_global" field in the mutation.
func (m *ObservationMutation) ScoreGlobal() (r float64, exists bool) {
	v := m.score_global
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreGlobal returns the old "score_global" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldScoreGlobal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreGlobal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreGlobal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreGlobal: %w", err)
	}
	return oldValue.ScoreGlobal, nil
}

// AddScoreGlobal adds f to the "score_global" field.
func (m *ObservationMutation) AddScoreGlobal(f float64) {
	if m.addscore_global != nil {
		*m.addscore_global += f
	} else {
		m.addscore_global = &f
	}
}

// AddedScoreGlobal returns the value that was added to the "score_global" field in this mutation.
func (m *ObservationMutation) AddedScoreGlobal() (r float64, exists bool) {
	v := m.addscore_global
	if v == nil {
		return
	}
	return *v, true
}

// ResetScoreGlobal resets all changes to the "score_global" field.
func (m *ObservationMutation) ResetScoreGlobal() {
	m.score_global = nil
	m.addscore_global = nil
}

// SetCorrection sets the "correction" field.
func (m *ObservationMutation) SetCorrection(s string) {
	m.correction = &s
}

// Correction returns the value of the "correction" field in the mutation.
func (m *ObservationMutation) Correction() (r string, exists bool) {
	v := m.correction
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrection returns the old "correction" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldCorrection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrection: %w", err)
	}
	return oldValue.Correction, nil
}

// ResetCorrection resets all changes to the "correction" field.
func (m *ObservationMutation) ResetCorrection() {
	m.correction = nil
}

// SetBatchID sets the "batch_id" field.
func (m *ObservationMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *ObservationMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *ObservationMutation) ResetBatchID() {
	m.batch_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ObservationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ObservationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Observation entity.
// If the Observation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ObservationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ObservationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ObservationMutation builder.
func (m *ObservationMutation) Where(ps ...predicate.Observation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ObservationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ObservationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Observation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ObservationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ObservationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Observation).
func (m *ObservationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ObservationMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.entrainement_id != nil {
		fields = append(fields, observation.FieldEntrainementID)
	}
	if m.parcours_id != nil {
		fields = append(fields, observation.FieldParcoursID)
	}
	if m.operateur_un != nil {
		fields = append(fields, observation.FieldOperateurUn)
	}
	if m.operateur_deux != nil {
		fields = append(fields, observation.FieldOperateurDeux)
	}
	if m.operation != nil {
		fields = append(fields, observation.FieldOperation)
	}
	if m.proposition != nil {
		fields = append(fields, observation.FieldProposition)
	}
	if m.solution != nil {
		fields = append(fields, observation.FieldSolution)
	}
	if m.etat != nil {
		fields = append(fields, observation.FieldEtat)
	}
	if m.temps_seconds != nil {
		fields = append(fields, observation.FieldTempsSeconds)
	}
	if m.marge_erreur != nil {
		fields = append(fields, observation.FieldMargeErreur)
	}
	if m.score != nil {
		fields = append(fields, observation.FieldScore)
	}
	if m.bonus_vitesse != nil {
		fields = append(fields, observation.FieldBonusVitesse)
	}
	if m.bonus_marge != nil {
		fields = append(fields, observation.FieldBonusMarge)
	}
	if m.score_global != nil {
		fields = append(fields, observation.FieldScoreGlobal)
	}
	if m.correction != nil {
		fields = append(fields, observation.FieldCorrection)
	}
	if m.batch_id != nil {
		fields = append(fields, observation.FieldBatchID)
	}
	if m.created_at != nil {
		fields = append(fields, observation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ObservationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case observation.FieldEntrainementID:
		return m.EntrainementID()
	case observation.FieldParcoursID:
		return m.ParcoursID()
	case observation.FieldOperateurUn:
		return m.OperateurUn()
	case observation.FieldOperateurDeux:
		return m.OperateurDeux()
	case observation.FieldOperation:
		return m.Operation()
	case observation.FieldProposition:
		return m.Proposition()
	case observation.FieldSolution:
		return m.Solution()
	case observation.FieldEtat:
		return m.Etat()
	case observation.FieldTempsSeconds:
		return m.TempsSeconds()
	case observation.FieldMargeErreur:
		return m.MargeErreur()
	case observation.FieldScore:
		return m.Score()
	case observation.FieldBonusVitesse:
		return m.BonusVitesse()
	case observation.FieldBonusMarge:
		return m.BonusMarge()
	case observation.FieldScoreGlobal:
		return m.ScoreGlobal()
	case observation.FieldCorrection:
		return m.Correction()
	case observation.FieldBatchID:
		return m.BatchID()
	case observation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ObservationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case observation.FieldEntrainementID:
		return m.OldEntrainementID(ctx)
	case observation.FieldParcoursID:
		return m.OldParcoursID(ctx)
	case observation.FieldOperateurUn:
		return m.OldOperateurUn(ctx)
	case observation.FieldOperateurDeux:
		return m.OldOperateurDeux(ctx)
	case observation.FieldOperation:
		return m.OldOperation(ctx)
	case observation.FieldProposition:
		return m.OldProposition(ctx)
	case observation.FieldSolution:
		return m.OldSolution(ctx)
	case observation.FieldEtat:
		return m.OldEtat(ctx)
	case observation.FieldTempsSeconds:
		return m.OldTempsSeconds(ctx)
	case observation.FieldMargeErreur:
		return m.OldMargeErreur(ctx)
	case observation.FieldScore:
		return m.OldScore(ctx)
	case observation.FieldBonusVitesse:
		return m.OldBonusVitesse(ctx)
	case observation.FieldBonusMarge:
		return m.OldBonusMarge(ctx)
	case observation.FieldScoreGlobal:
		return m.OldScoreGlobal(ctx)
	case observation.FieldCorrection:
		return m.OldCorrection(ctx)
	case observation.FieldBatchID:
		return m.OldBatchID(ctx)
	case observation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Observation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObservationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case observation.FieldEntrainementID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntrainementID(v)
		return nil
	case observation.FieldParcoursID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParcoursID(v)
		return nil
	case observation.FieldOperateurUn:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperateurUn(v)
		return nil
	case observation.FieldOperateurDeux:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperateurDeux(v)
		return nil
	case observation.FieldOperation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case observation.FieldProposition:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposition(v)
		return nil
	case observation.FieldSolution:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolution(v)
		return nil
	case observation.FieldEtat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEtat(v)
		return nil
	case observation.FieldTempsSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTempsSeconds(v)
		return nil
	case observation.FieldMargeErreur:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMargeErreur(v)
		return nil
	case observation.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case observation.FieldBonusVitesse:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBonusVitesse(v)
		return nil
	case observation.FieldBonusMarge:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBonusMarge(v)
		return nil
	case observation.FieldScoreGlobal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreGlobal(v)
		return nil
	case observation.FieldCorrection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrection(v)
		return nil
	case observation.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case observation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Observation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ObservationMutation) AddedFields() []string {
	var fields []string
	if m.addentrainement_id != nil {
		fields = append(fields, observation.FieldEntrainementID)
	}
	if m.addparcours_id != nil {
		fields = append(fields, observation.FieldParcoursID)
	}
	if m.addoperateur_un != nil {
		fields = append(fields, observation.FieldOperateurUn)
	}
	if m.addoperateur_deux != nil {
		fields = append(fields, observation.FieldOperateurDeux)
	}
	if m.addproposition != nil {
		fields = append(fields, observation.FieldProposition)
	}
	if m.addsolution != nil {
		fields = append(fields, observation.FieldSolution)
	}
	if m.addtemps_seconds != nil {
		fields = append(fields, observation.FieldTempsSeconds)
	}
	if m.addmarge_erreur != nil {
		fields = append(fields, observation.FieldMargeErreur)
	}
	if m.addscore != nil {
		fields = append(fields, observation.FieldScore)
	}
	if m.addbonus_vitesse != nil {
		fields = append(fields, observation.FieldBonusVitesse)
	}
	if m.addbonus_marge != nil {
		fields = append(fields, observation.FieldBonusMarge)
	}
	if m.addscore_global != nil {
		fields = append(fields, observation.FieldScoreGlobal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ObservationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case observation.FieldEntrainementID:
		return m.AddedEntrainementID()
	case observation.FieldParcoursID:
		return m.AddedParcoursID()
	case observation.FieldOperateurUn:
		return m.AddedOperateurUn()
	case observation.FieldOperateurDeux:
		return m.AddedOperateurDeux()
	case observation.FieldProposition:
		return m.AddedProposition()
	case observation.FieldSolution:
		return m.AddedSolution()
	case observation.FieldTempsSeconds:
		return m.AddedTempsSeconds()
	case observation.FieldMargeErreur:
		return m.AddedMargeErreur()
	case observation.FieldScore:
		return m.AddedScore()
	case observation.FieldBonusVitesse:
		return m.AddedBonusVitesse()
	case observation.FieldBonusMarge:
		return m.AddedBonusMarge()
	case observation.FieldScoreGlobal:
		return m.AddedScoreGlobal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ObservationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case observation.FieldEntrainementID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEntrainementID(v)
		return nil
	case observation.FieldParcoursID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParcoursID(v)
		return nil
	case observation.FieldOperateurUn:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOperateurUn(v)
		return nil
	case observation.FieldOperateurDeux:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOperateurDeux(v)
		return nil
	case observation.FieldProposition:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProposition(v)
		return nil
	case observation.FieldSolution:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSolution(v)
		return nil
	case observation.FieldTempsSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTempsSeconds(v)
		return nil
	case observation.FieldMargeErreur:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMargeErreur(v)
		return nil
	case observation.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case observation.FieldBonusVitesse:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBonusVitesse(v)
		return nil
	case observation.FieldBonusMarge:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBonusMarge(v)
		return nil
	case observation.FieldScoreGlobal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScoreGlobal(v)
		return nil
	}
	return fmt.Errorf("unknown Observation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ObservationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ObservationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ObservationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Observation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ObservationMutation) ResetField(name string) error {
	switch name {
	case observation.FieldEntrainementID:
		m.ResetEntrainementID()
		return nil
	case observation.FieldParcoursID:
		m.ResetParcoursID()
		return nil
	case observation.FieldOperateurUn:
		m.ResetOperateurUn()
		return nil
	case observation.FieldOperateurDeux:
		m.ResetOperateurDeux()
		return nil
	case observation.FieldOperation:
		m.ResetOperation()
		return nil
	case observation.FieldProposition:
		m.ResetProposition()
		return nil
	case observation.FieldSolution:
		m.ResetSolution()
		return nil
	case observation.FieldEtat:
		m.ResetEtat()
		return nil
	case observation.FieldTempsSeconds:
		m.ResetTempsSeconds()
		return nil
	case observation.FieldMargeErreur:
		m.ResetMargeErreur()
		return nil
	case observation.FieldScore:
		m.ResetScore()
		return nil
	case observation.FieldBonusVitesse:
		m.ResetBonusVitesse()
		return nil
	case observation.FieldBonusMarge:
		m.ResetBonusMarge()
		return nil
	case observation.FieldScoreGlobal:
		m.ResetScoreGlobal()
		return nil
	case observation.FieldCorrection:
		m.ResetCorrection()
		return nil
	case observation.FieldBatchID:
		m.ResetBatchID()
		return nil
	case observation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Observation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ObservationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ObservationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ObservationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ObservationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ObservationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ObservationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ObservationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Observation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ObservationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Observation edge %s", name)
}

// TrialStateMutation represents an operation that mutates the TrialState nodes in the graph.
type TrialStateMutation struct {
	config
	op               Op
	typ              string
	id               *int
	started_at_ms    *int64
	addstarted_at_ms *int64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*TrialState, error)
	predicates       []predicate.TrialState
}

var _ ent.Mutation = (*TrialStateMutation)(nil)

// trialstateOption allows management of the mutation configuration using functional options.
type trialstateOption func(*TrialStateMutation)

// newTrialStateMutation creates new mutation for the TrialState entity.
func newTrialStateMutation(c config, op Op, opts ...trialstateOption) *TrialStateMutation {
	m := &TrialStateMutation{
		config:        c,
		op:            op,
		typ:           TypeTrialState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrialStateID sets the ID field of the mutation.
func withTrialStateID(id int) trialstateOption {
	return func(m *TrialStateMutation) {
		var (
			err   error
			once  sync.Once
			value *TrialState
		)
		m.oldValue = func(ctx context.Context) (*TrialState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrialState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrialState sets the old TrialState of the mutation.
func withTrialState(node *TrialState) trialstateOption {
	return func(m *TrialStateMutation) {
		m.oldValue = func(context.Context) (*TrialState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrialStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrialStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrialStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrialStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrialState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStartedAtMs sets the "started_at_ms" field.
func (m *TrialStateMutation) SetStartedAtMs(i int64) {
	m.started_at_ms = &i
	m.addstarted_at_ms = nil
}

// StartedAtMs returns the value of the "started_at_ms" field in the mutation.
func (m *TrialStateMutation) StartedAtMs() (r int64, exists bool) {
	v := m.started_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAtMs returns the old "started_at_ms" field's value of the TrialState entity.
// If the TrialState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrialStateMutation) OldStartedAtMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAtMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAtMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAtMs: %w", err)
	}
	return oldValue.StartedAtMs, nil
}

// AddStartedAtMs adds i to the "started_at_ms" field.
func (m *TrialStateMutation) AddStartedAtMs(i int64) {
	if m.addstarted_at_ms != nil {
		*m.addstarted_at_ms += i
	} else {
		m.addstarted_at_ms = &i
	}
}

// AddedStartedAtMs returns the value that was added to the "started_at_ms" field in this mutation.
func (m *TrialStateMutation) AddedStartedAtMs() (r int64, exists bool) {
	v := m.addstarted_at_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartedAtMs resets all changes to the "started_at_ms" field.
func (m *TrialStateMutation) ResetStartedAtMs() {
	m.started_at_ms = nil
	m.addstarted_at_ms = nil
}

// Where appends a list predicates to the TrialStateMutation builder.
func (m *TrialStateMutation) Where(ps ...predicate.TrialState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrialStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrialStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrialState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrialStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrialStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrialState).
func (m *TrialStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrialStateMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.started_at_ms != nil {
		fields = append(fields, trialstate.FieldStartedAtMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrialStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trialstate.FieldStartedAtMs:
		return m.StartedAtMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrialStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trialstate.FieldStartedAtMs:
		return m.OldStartedAtMs(ctx)
	}
	return nil, fmt.Errorf("unknown TrialState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrialStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trialstate.FieldStartedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown TrialState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrialStateMutation) AddedFields() []string {
	var fields []string
	if m.addstarted_at_ms != nil {
		fields = append(fields, trialstate.FieldStartedAtMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrialStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trialstate.FieldStartedAtMs:
		return m.AddedStartedAtMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrialStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trialstate.FieldStartedAtMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartedAtMs(v)
		return nil
	}
	return fmt.Errorf("unknown TrialState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrialStateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrialStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrialStateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TrialState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrialStateMutation) ResetField(name string) error {
	switch name {
	case trialstate.FieldStartedAtMs:
		m.ResetStartedAtMs()
		return nil
	}
	return fmt.Errorf("unknown TrialState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrialStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrialStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrialStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrialStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrialStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrialStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrialStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TrialState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrialStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TrialState edge %s", name)
}
