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
	"github.com/openintent-io/openintent/ent/agent"
	"github.com/openintent-io/openintent/ent/attachment"
	"github.com/openintent-io/openintent/ent/costentry"
	"github.com/openintent-io/openintent/ent/credential"
	"github.com/openintent-io/openintent/ent/failurerecord"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/ent/intentevent"
	"github.com/openintent-io/openintent/ent/lease"
	"github.com/openintent-io/openintent/ent/portfolio"
	"github.com/openintent-io/openintent/ent/portfoliomember"
	"github.com/openintent-io/openintent/ent/predicate"
	"github.com/openintent-io/openintent/ent/tooldefinition"
	"github.com/openintent-io/openintent/ent/toolgrant"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent           = "Agent"
	TypeAttachment      = "Attachment"
	TypeCostEntry       = "CostEntry"
	TypeCredential      = "Credential"
	TypeFailureRecord   = "FailureRecord"
	TypeIntent          = "Intent"
	TypeIntentEvent     = "IntentEvent"
	TypeLease           = "Lease"
	TypePortfolio       = "Portfolio"
	TypePortfolioMember = "PortfolioMember"
	TypeToolDefinition  = "ToolDefinition"
	TypeToolGrant       = "ToolGrant"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	display_name  *string
	role          *agent.Role
	key_hash      *string
	created_at    *time.Time
	last_seen_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Agent, error)
	predicates    []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDisplayName sets the "display_name" field.
func (m *AgentMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *AgentMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldDisplayName(ctx context.Context) (v string, err error) {
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

// ResetDisplayName resets all changes to the "display_name" field.
func (m *AgentMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetRole sets the "role" field.
func (m *AgentMutation) SetRole(a agent.Role) {
	m.role = &a
}

// Role returns the value of the "role" field in the mutation.
func (m *AgentMutation) Role() (r agent.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRole(ctx context.Context) (v agent.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AgentMutation) ResetRole() {
	m.role = nil
}

// SetKeyHash sets the "key_hash" field.
func (m *AgentMutation) SetKeyHash(s string) {
	m.key_hash = &s
}

// KeyHash returns the value of the "key_hash" field in the mutation.
func (m *AgentMutation) KeyHash() (r string, exists bool) {
	v := m.key_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyHash returns the old "key_hash" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldKeyHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyHash: %w", err)
	}
	return oldValue.KeyHash, nil
}

// ResetKeyHash resets all changes to the "key_hash" field.
func (m *AgentMutation) ResetKeyHash() {
	m.key_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *AgentMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *AgentMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastSeenAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (m *AgentMutation) ClearLastSeenAt() {
	m.last_seen_at = nil
	m.clearedFields[agent.FieldLastSeenAt] = struct{}{}
}

// LastSeenAtCleared returns if the "last_seen_at" field was cleared in this mutation.
func (m *AgentMutation) LastSeenAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldLastSeenAt]
	return ok
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *AgentMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
	delete(m.clearedFields, agent.FieldLastSeenAt)
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.display_name != nil {
		fields = append(fields, agent.FieldDisplayName)
	}
	if m.role != nil {
		fields = append(fields, agent.FieldRole)
	}
	if m.key_hash != nil {
		fields = append(fields, agent.FieldKeyHash)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, agent.FieldLastSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldDisplayName:
		return m.DisplayName()
	case agent.FieldRole:
		return m.Role()
	case agent.FieldKeyHash:
		return m.KeyHash()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldLastSeenAt:
		return m.LastSeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case agent.FieldRole:
		return m.OldRole(ctx)
	case agent.FieldKeyHash:
		return m.OldKeyHash(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case agent.FieldRole:
		v, ok := value.(agent.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case agent.FieldKeyHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyHash(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldLastSeenAt) {
		fields = append(fields, agent.FieldLastSeenAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldLastSeenAt:
		m.ClearLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case agent.FieldRole:
		m.ResetRole()
		return nil
	case agent.FieldKeyHash:
		m.ResetKeyHash()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AttachmentMutation represents an operation that mutates the Attachment nodes in the graph.
type AttachmentMutation struct {
	config
	op            Op
	typ           string
	id            *string
	filename      *string
	content_type  *string
	size          *int64
	addsize       *int64
	sha256        *string
	blob          *[]byte
	metadata      *map[string]interface{}
	created_by    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	intent        *string
	clearedintent bool
	done          bool
	oldValue      func(context.Context) (*Attachment, error)
	predicates    []predicate.Attachment
}

var _ ent.Mutation = (*AttachmentMutation)(nil)

// attachmentOption allows management of the mutation configuration using functional options.
type attachmentOption func(*AttachmentMutation)

// newAttachmentMutation creates new mutation for the Attachment entity.
func newAttachmentMutation(c config, op Op, opts ...attachmentOption) *AttachmentMutation {
	m := &AttachmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAttachment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttachmentID sets the ID field of the mutation.
func withAttachmentID(id string) attachmentOption {
	return func(m *AttachmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Attachment
		)
		m.oldValue = func(ctx context.Context) (*Attachment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attachment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttachment sets the old Attachment of the mutation.
func withAttachment(node *Attachment) attachmentOption {
	return func(m *AttachmentMutation) {
		m.oldValue = func(context.Context) (*Attachment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttachmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttachmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Attachment entities.
func (m *AttachmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttachmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttachmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attachment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIntentID sets the "intent_id" field.
func (m *AttachmentMutation) SetIntentID(s string) {
	m.intent = &s
}

// IntentID returns the value of the "intent_id" field in the mutation.
func (m *AttachmentMutation) IntentID() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentID returns the old "intent_id" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldIntentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentID: %w", err)
	}
	return oldValue.IntentID, nil
}

// ResetIntentID resets all changes to the "intent_id" field.
func (m *AttachmentMutation) ResetIntentID() {
	m.intent = nil
}

// SetFilename sets the "filename" field.
func (m *AttachmentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *AttachmentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *AttachmentMutation) ResetFilename() {
	m.filename = nil
}

// SetContentType sets the "content_type" field.
func (m *AttachmentMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *AttachmentMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *AttachmentMutation) ResetContentType() {
	m.content_type = nil
}

// SetSize sets the "size" field.
func (m *AttachmentMutation) SetSize(i int64) {
	m.size = &i
	m.addsize = nil
}

// Size returns the value of the "size" field in the mutation.
func (m *AttachmentMutation) Size() (r int64, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// AddSize adds i to the "size" field.
func (m *AttachmentMutation) AddSize(i int64) {
	if m.addsize != nil {
		*m.addsize += i
	} else {
		m.addsize = &i
	}
}

// AddedSize returns the value that was added to the "size" field in this mutation.
func (m *AttachmentMutation) AddedSize() (r int64, exists bool) {
	v := m.addsize
	if v == nil {
		return
	}
	return *v, true
}

// ResetSize resets all changes to the "size" field.
func (m *AttachmentMutation) ResetSize() {
	m.size = nil
	m.addsize = nil
}

// SetSha256 sets the "sha256" field.
func (m *AttachmentMutation) SetSha256(s string) {
	m.sha256 = &s
}

// Sha256 returns the value of the "sha256" field in the mutation.
func (m *AttachmentMutation) Sha256() (r string, exists bool) {
	v := m.sha256
	if v == nil {
		return
	}
	return *v, true
}

// OldSha256 returns the old "sha256" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldSha256(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSha256 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSha256 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSha256: %w", err)
	}
	return oldValue.Sha256, nil
}

// ResetSha256 resets all changes to the "sha256" field.
func (m *AttachmentMutation) ResetSha256() {
	m.sha256 = nil
}

// SetBlob sets the "blob" field.
func (m *AttachmentMutation) SetBlob(b []byte) {
	m.blob = &b
}

// Blob returns the value of the "blob" field in the mutation.
func (m *AttachmentMutation) Blob() (r []byte, exists bool) {
	v := m.blob
	if v == nil {
		return
	}
	return *v, true
}

// OldBlob returns the old "blob" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldBlob(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlob is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlob requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlob: %w", err)
	}
	return oldValue.Blob, nil
}

// ResetBlob resets all changes to the "blob" field.
func (m *AttachmentMutation) ResetBlob() {
	m.blob = nil
}

// SetMetadata sets the "metadata" field.
func (m *AttachmentMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AttachmentMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AttachmentMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[attachment.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AttachmentMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[attachment.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AttachmentMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, attachment.FieldMetadata)
}

// SetCreatedBy sets the "created_by" field.
func (m *AttachmentMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *AttachmentMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *AttachmentMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AttachmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttachmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Attachment entity.
// If the Attachment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttachmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AttachmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearIntent clears the "intent" edge to the Intent entity.
func (m *AttachmentMutation) ClearIntent() {
	m.clearedintent = true
	m.clearedFields[attachment.FieldIntentID] = struct{}{}
}

// IntentCleared reports if the "intent" edge to the Intent entity was cleared.
func (m *AttachmentMutation) IntentCleared() bool {
	return m.clearedintent
}

// IntentIDs returns the "intent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IntentID instead. It exists only for internal usage by the builders.
func (m *AttachmentMutation) IntentIDs() (ids []string) {
	if id := m.intent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIntent resets all changes to the "intent" edge.
func (m *AttachmentMutation) ResetIntent() {
	m.intent = nil
	m.clearedintent = false
}

// Where appends a list predicates to the AttachmentMutation builder.
func (m *AttachmentMutation) Where(ps ...predicate.Attachment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttachmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttachmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attachment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttachmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttachmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attachment).
func (m *AttachmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttachmentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.intent != nil {
		fields = append(fields, attachment.FieldIntentID)
	}
	if m.filename != nil {
		fields = append(fields, attachment.FieldFilename)
	}
	if m.content_type != nil {
		fields = append(fields, attachment.FieldContentType)
	}
	if m.size != nil {
		fields = append(fields, attachment.FieldSize)
	}
	if m.sha256 != nil {
		fields = append(fields, attachment.FieldSha256)
	}
	if m.blob != nil {
		fields = append(fields, attachment.FieldBlob)
	}
	if m.metadata != nil {
		fields = append(fields, attachment.FieldMetadata)
	}
	if m.created_by != nil {
		fields = append(fields, attachment.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, attachment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttachmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attachment.FieldIntentID:
		return m.IntentID()
	case attachment.FieldFilename:
		return m.Filename()
	case attachment.FieldContentType:
		return m.ContentType()
	case attachment.FieldSize:
		return m.Size()
	case attachment.FieldSha256:
		return m.Sha256()
	case attachment.FieldBlob:
		return m.Blob()
	case attachment.FieldMetadata:
		return m.Metadata()
	case attachment.FieldCreatedBy:
		return m.CreatedBy()
	case attachment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttachmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attachment.FieldIntentID:
		return m.OldIntentID(ctx)
	case attachment.FieldFilename:
		return m.OldFilename(ctx)
	case attachment.FieldContentType:
		return m.OldContentType(ctx)
	case attachment.FieldSize:
		return m.OldSize(ctx)
	case attachment.FieldSha256:
		return m.OldSha256(ctx)
	case attachment.FieldBlob:
		return m.OldBlob(ctx)
	case attachment.FieldMetadata:
		return m.OldMetadata(ctx)
	case attachment.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case attachment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Attachment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attachment.FieldIntentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentID(v)
		return nil
	case attachment.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case attachment.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case attachment.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case attachment.FieldSha256:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSha256(v)
		return nil
	case attachment.FieldBlob:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlob(v)
		return nil
	case attachment.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case attachment.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case attachment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Attachment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttachmentMutation) AddedFields() []string {
	var fields []string
	if m.addsize != nil {
		fields = append(fields, attachment.FieldSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttachmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attachment.FieldSize:
		return m.AddedSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttachmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attachment.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSize(v)
		return nil
	}
	return fmt.Errorf("unknown Attachment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttachmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attachment.FieldMetadata) {
		fields = append(fields, attachment.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttachmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttachmentMutation) ClearField(name string) error {
	switch name {
	case attachment.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Attachment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttachmentMutation) ResetField(name string) error {
	switch name {
	case attachment.FieldIntentID:
		m.ResetIntentID()
		return nil
	case attachment.FieldFilename:
		m.ResetFilename()
		return nil
	case attachment.FieldContentType:
		m.ResetContentType()
		return nil
	case attachment.FieldSize:
		m.ResetSize()
		return nil
	case attachment.FieldSha256:
		m.ResetSha256()
		return nil
	case attachment.FieldBlob:
		m.ResetBlob()
		return nil
	case attachment.FieldMetadata:
		m.ResetMetadata()
		return nil
	case attachment.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case attachment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Attachment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttachmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.intent != nil {
		edges = append(edges, attachment.EdgeIntent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttachmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attachment.EdgeIntent:
		if id := m.intent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttachmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttachmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttachmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedintent {
		edges = append(edges, attachment.EdgeIntent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttachmentMutation) EdgeCleared(name string) bool {
	switch name {
	case attachment.EdgeIntent:
		return m.clearedintent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttachmentMutation) ClearEdge(name string) error {
	switch name {
	case attachment.EdgeIntent:
		m.ClearIntent()
		return nil
	}
	return fmt.Errorf("unknown Attachment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttachmentMutation) ResetEdge(name string) error {
	switch name {
	case attachment.EdgeIntent:
		m.ResetIntent()
		return nil
	}
	return fmt.Errorf("unknown Attachment edge %s", name)
}

// CostEntryMutation represents an operation that mutates the CostEntry nodes in the graph.
type CostEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	agent_id      *string
	cost_type     *costentry.CostType
	amount        *float64
	addamount     *float64
	currency      *string
	description   *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	intent        *string
	clearedintent bool
	done          bool
	oldValue      func(context.Context) (*CostEntry, error)
	predicates    []predicate.CostEntry
}

var _ ent.Mutation = (*CostEntryMutation)(nil)

// costentryOption allows management of the mutation configuration using functional options.
type costentryOption func(*CostEntryMutation)

// newCostEntryMutation creates new mutation for the CostEntry entity.
func newCostEntryMutation(c config, op Op, opts ...costentryOption) *CostEntryMutation {
	m := &CostEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeCostEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCostEntryID sets the ID field of the mutation.
func withCostEntryID(id int) costentryOption {
	return func(m *CostEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *CostEntry
		)
		m.oldValue = func(ctx context.Context) (*CostEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CostEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCostEntry sets the old CostEntry of the mutation.
func withCostEntry(node *CostEntry) costentryOption {
	return func(m *CostEntryMutation) {
		m.oldValue = func(context.Context) (*CostEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CostEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CostEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CostEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CostEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CostEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIntentID sets the "intent_id" field.
func (m *CostEntryMutation) SetIntentID(s string) {
	m.intent = &s
}

// IntentID returns the value of the "intent_id" field in the mutation.
func (m *CostEntryMutation) IntentID() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentID returns the old "intent_id" field's value of the CostEntry entity.
// If the CostEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostEntryMutation) OldIntentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentID: %w", err)
	}
	return oldValue.IntentID, nil
}

// ResetIntentID resets all changes to the "intent_id" field.
func (m *CostEntryMutation) ResetIntentID() {
	m.intent = nil
}

// SetAgentID sets the "agent_id" field.
func (m *CostEntryMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *CostEntryMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the CostEntry entity.
// If the CostEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostEntryMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *CostEntryMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetCostType sets the "cost_type" field.
func (m *CostEntryMutation) SetCostType(ct costentry.CostType) {
	m.cost_type = &ct
}

// CostType returns the value of the "cost_type" field in the mutation.
func (m *CostEntryMutation) CostType() (r costentry.CostType, exists bool) {
	v := m.cost_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCostType returns the old "cost_type" field's value of the CostEntry entity.
// If the CostEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostEntryMutation) OldCostType(ctx context.Context) (v costentry.CostType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostType: %w", err)
	}
	return oldValue.CostType, nil
}

// ResetCostType resets all changes to the "cost_type" field.
func (m *CostEntryMutation) ResetCostType() {
	m.cost_type = nil
}

// SetAmount sets the "amount" field.
func (m *CostEntryMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *CostEntryMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the CostEntry entity.
// If the CostEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostEntryMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *CostEntryMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *CostEntryMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *CostEntryMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetCurrency sets the "currency" field.
func (m *CostEntryMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *CostEntryMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the CostEntry entity.
// If the CostEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostEntryMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *CostEntryMutation) ResetCurrency() {
	m.currency = nil
}

// SetDescription sets the "description" field.
func (m *CostEntryMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CostEntryMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CostEntry entity.
// If the CostEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostEntryMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CostEntryMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[costentry.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CostEntryMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[costentry.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CostEntryMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, costentry.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *CostEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CostEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CostEntry entity.
// If the CostEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CostEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearIntent clears the "intent" edge to the Intent entity.
func (m *CostEntryMutation) ClearIntent() {
	m.clearedintent = true
	m.clearedFields[costentry.FieldIntentID] = struct{}{}
}

// IntentCleared reports if the "intent" edge to the Intent entity was cleared.
func (m *CostEntryMutation) IntentCleared() bool {
	return m.clearedintent
}

// IntentIDs returns the "intent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IntentID instead. It exists only for internal usage by the builders.
func (m *CostEntryMutation) IntentIDs() (ids []string) {
	if id := m.intent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIntent resets all changes to the "intent" edge.
func (m *CostEntryMutation) ResetIntent() {
	m.intent = nil
	m.clearedintent = false
}

// Where appends a list predicates to the CostEntryMutation builder.
func (m *CostEntryMutation) Where(ps ...predicate.CostEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CostEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CostEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CostEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CostEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CostEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CostEntry).
func (m *CostEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CostEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.intent != nil {
		fields = append(fields, costentry.FieldIntentID)
	}
	if m.agent_id != nil {
		fields = append(fields, costentry.FieldAgentID)
	}
	if m.cost_type != nil {
		fields = append(fields, costentry.FieldCostType)
	}
	if m.amount != nil {
		fields = append(fields, costentry.FieldAmount)
	}
	if m.currency != nil {
		fields = append(fields, costentry.FieldCurrency)
	}
	if m.description != nil {
		fields = append(fields, costentry.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, costentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CostEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case costentry.FieldIntentID:
		return m.IntentID()
	case costentry.FieldAgentID:
		return m.AgentID()
	case costentry.FieldCostType:
		return m.CostType()
	case costentry.FieldAmount:
		return m.Amount()
	case costentry.FieldCurrency:
		return m.Currency()
	case costentry.FieldDescription:
		return m.Description()
	case costentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CostEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case costentry.FieldIntentID:
		return m.OldIntentID(ctx)
	case costentry.FieldAgentID:
		return m.OldAgentID(ctx)
	case costentry.FieldCostType:
		return m.OldCostType(ctx)
	case costentry.FieldAmount:
		return m.OldAmount(ctx)
	case costentry.FieldCurrency:
		return m.OldCurrency(ctx)
	case costentry.FieldDescription:
		return m.OldDescription(ctx)
	case costentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CostEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CostEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case costentry.FieldIntentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentID(v)
		return nil
	case costentry.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case costentry.FieldCostType:
		v, ok := value.(costentry.CostType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostType(v)
		return nil
	case costentry.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case costentry.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case costentry.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case costentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CostEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CostEntryMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, costentry.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CostEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case costentry.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CostEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case costentry.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown CostEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CostEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(costentry.FieldDescription) {
		fields = append(fields, costentry.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CostEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CostEntryMutation) ClearField(name string) error {
	switch name {
	case costentry.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown CostEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CostEntryMutation) ResetField(name string) error {
	switch name {
	case costentry.FieldIntentID:
		m.ResetIntentID()
		return nil
	case costentry.FieldAgentID:
		m.ResetAgentID()
		return nil
	case costentry.FieldCostType:
		m.ResetCostType()
		return nil
	case costentry.FieldAmount:
		m.ResetAmount()
		return nil
	case costentry.FieldCurrency:
		m.ResetCurrency()
		return nil
	case costentry.FieldDescription:
		m.ResetDescription()
		return nil
	case costentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CostEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CostEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.intent != nil {
		edges = append(edges, costentry.EdgeIntent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CostEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case costentry.EdgeIntent:
		if id := m.intent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CostEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CostEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CostEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedintent {
		edges = append(edges, costentry.EdgeIntent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CostEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case costentry.EdgeIntent:
		return m.clearedintent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CostEntryMutation) ClearEdge(name string) error {
	switch name {
	case costentry.EdgeIntent:
		m.ClearIntent()
		return nil
	}
	return fmt.Errorf("unknown CostEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CostEntryMutation) ResetEdge(name string) error {
	switch name {
	case costentry.EdgeIntent:
		m.ResetIntent()
		return nil
	}
	return fmt.Errorf("unknown CostEntry edge %s", name)
}

// CredentialMutation represents an operation that mutates the Credential nodes in the graph.
type CredentialMutation struct {
	config
	op            Op
	typ           string
	id            *string
	auth_type     *credential.AuthType
	metadata      *map[string]interface{}
	secret        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Credential, error)
	predicates    []predicate.Credential
}

var _ ent.Mutation = (*CredentialMutation)(nil)

// credentialOption allows management of the mutation configuration using functional options.
type credentialOption func(*CredentialMutation)

// newCredentialMutation creates new mutation for the Credential entity.
func newCredentialMutation(c config, op Op, opts ...credentialOption) *CredentialMutation {
	m := &CredentialMutation{
		config:        c,
		op:            op,
		typ:           TypeCredential,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCredentialID sets the ID field of the mutation.
func withCredentialID(id string) credentialOption {
	return func(m *CredentialMutation) {
		var (
			err   error
			once  sync.Once
			value *Credential
		)
		m.oldValue = func(ctx context.Context) (*Credential, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Credential.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCredential sets the old Credential of the mutation.
func withCredential(node *Credential) credentialOption {
	return func(m *CredentialMutation) {
		m.oldValue = func(context.Context) (*Credential, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CredentialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CredentialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Credential entities.
func (m *CredentialMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CredentialMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CredentialMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Credential.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuthType sets the "auth_type" field.
func (m *CredentialMutation) SetAuthType(ct credential.AuthType) {
	m.auth_type = &ct
}

// AuthType returns the value of the "auth_type" field in the mutation.
func (m *CredentialMutation) AuthType() (r credential.AuthType, exists bool) {
	v := m.auth_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthType returns the old "auth_type" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldAuthType(ctx context.Context) (v credential.AuthType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthType: %w", err)
	}
	return oldValue.AuthType, nil
}

// ResetAuthType resets all changes to the "auth_type" field.
func (m *CredentialMutation) ResetAuthType() {
	m.auth_type = nil
}

// SetMetadata sets the "metadata" field.
func (m *CredentialMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *CredentialMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *CredentialMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[credential.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *CredentialMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[credential.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *CredentialMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, credential.FieldMetadata)
}

// SetSecret sets the "secret" field.
func (m *CredentialMutation) SetSecret(s string) {
	m.secret = &s
}

// Secret returns the value of the "secret" field in the mutation.
func (m *CredentialMutation) Secret() (r string, exists bool) {
	v := m.secret
	if v == nil {
		return
	}
	return *v, true
}

// OldSecret returns the old "secret" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldSecret(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecret: %w", err)
	}
	return oldValue.Secret, nil
}

// ResetSecret resets all changes to the "secret" field.
func (m *CredentialMutation) ResetSecret() {
	m.secret = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CredentialMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CredentialMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Credential entity.
// If the Credential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CredentialMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CredentialMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CredentialMutation builder.
func (m *CredentialMutation) Where(ps ...predicate.Credential) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CredentialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CredentialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Credential, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CredentialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CredentialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Credential).
func (m *CredentialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CredentialMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.auth_type != nil {
		fields = append(fields, credential.FieldAuthType)
	}
	if m.metadata != nil {
		fields = append(fields, credential.FieldMetadata)
	}
	if m.secret != nil {
		fields = append(fields, credential.FieldSecret)
	}
	if m.created_at != nil {
		fields = append(fields, credential.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CredentialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case credential.FieldAuthType:
		return m.AuthType()
	case credential.FieldMetadata:
		return m.Metadata()
	case credential.FieldSecret:
		return m.Secret()
	case credential.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CredentialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case credential.FieldAuthType:
		return m.OldAuthType(ctx)
	case credential.FieldMetadata:
		return m.OldMetadata(ctx)
	case credential.FieldSecret:
		return m.OldSecret(ctx)
	case credential.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Credential field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CredentialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case credential.FieldAuthType:
		v, ok := value.(credential.AuthType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthType(v)
		return nil
	case credential.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case credential.FieldSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecret(v)
		return nil
	case credential.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Credential field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CredentialMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CredentialMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CredentialMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Credential numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CredentialMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(credential.FieldMetadata) {
		fields = append(fields, credential.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CredentialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CredentialMutation) ClearField(name string) error {
	switch name {
	case credential.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Credential nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CredentialMutation) ResetField(name string) error {
	switch name {
	case credential.FieldAuthType:
		m.ResetAuthType()
		return nil
	case credential.FieldMetadata:
		m.ResetMetadata()
		return nil
	case credential.FieldSecret:
		m.ResetSecret()
		return nil
	case credential.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Credential field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CredentialMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CredentialMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CredentialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CredentialMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CredentialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CredentialMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CredentialMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Credential unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CredentialMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Credential edge %s", name)
}

// FailureRecordMutation represents an operation that mutates the FailureRecord nodes in the graph.
type FailureRecordMutation struct {
	config
	op                Op
	typ               string
	id                *int
	error_type        *string
	error_message     *string
	recoverable       *bool
	context           *map[string]interface{}
	attempt_number    *int
	addattempt_number *int
	created_at        *time.Time
	clearedFields     map[string]struct{}
	intent            *string
	clearedintent     bool
	done              bool
	oldValue          func(context.Context) (*FailureRecord, error)
	predicates        []predicate.FailureRecord
}

var _ ent.Mutation = (*FailureRecordMutation)(nil)

// failurerecordOption allows management of the mutation configuration using functional options.
type failurerecordOption func(*FailureRecordMutation)

// newFailureRecordMutation creates new mutation for the FailureRecord entity.
func newFailureRecordMutation(c config, op Op, opts ...failurerecordOption) *FailureRecordMutation {
	m := &FailureRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeFailureRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFailureRecordID sets the ID field of the mutation.
func withFailureRecordID(id int) failurerecordOption {
	return func(m *FailureRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *FailureRecord
		)
		m.oldValue = func(ctx context.Context) (*FailureRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FailureRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFailureRecord sets the old FailureRecord of the mutation.
func withFailureRecord(node *FailureRecord) failurerecordOption {
	return func(m *FailureRecordMutation) {
		m.oldValue = func(context.Context) (*FailureRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FailureRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FailureRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FailureRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FailureRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FailureRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIntentID sets the "intent_id" field.
func (m *FailureRecordMutation) SetIntentID(s string) {
	m.intent = &s
}

// IntentID returns the value of the "intent_id" field in the mutation.
func (m *FailureRecordMutation) IntentID() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentID returns the old "intent_id" field's value of the FailureRecord entity.
// If the FailureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureRecordMutation) OldIntentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentID: %w", err)
	}
	return oldValue.IntentID, nil
}

// ResetIntentID resets all changes to the "intent_id" field.
func (m *FailureRecordMutation) ResetIntentID() {
	m.intent = nil
}

// SetErrorType sets the "error_type" field.
func (m *FailureRecordMutation) SetErrorType(s string) {
	m.error_type = &s
}

// ErrorType returns the value of the "error_type" field in the mutation.
func (m *FailureRecordMutation) ErrorType() (r string, exists bool) {
	v := m.error_type
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorType returns the old "error_type" field's value of the FailureRecord entity.
// If the FailureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureRecordMutation) OldErrorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorType: %w", err)
	}
	return oldValue.ErrorType, nil
}

// ResetErrorType resets all changes to the "error_type" field.
func (m *FailureRecordMutation) ResetErrorType() {
	m.error_type = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *FailureRecordMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *FailureRecordMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the FailureRecord entity.
// If the FailureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureRecordMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *FailureRecordMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRecoverable sets the "recoverable" field.
func (m *FailureRecordMutation) SetRecoverable(b bool) {
	m.recoverable = &b
}

// Recoverable returns the value of the "recoverable" field in the mutation.
func (m *FailureRecordMutation) Recoverable() (r bool, exists bool) {
	v := m.recoverable
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoverable returns the old "recoverable" field's value of the FailureRecord entity.
// If the FailureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureRecordMutation) OldRecoverable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoverable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoverable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoverable: %w", err)
	}
	return oldValue.Recoverable, nil
}

// ResetRecoverable resets all changes to the "recoverable" field.
func (m *FailureRecordMutation) ResetRecoverable() {
	m.recoverable = nil
}

// SetContext sets the "context" field.
func (m *FailureRecordMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *FailureRecordMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the FailureRecord entity.
// If the FailureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureRecordMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *FailureRecordMutation) ClearContext() {
	m.context = nil
	m.clearedFields[failurerecord.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *FailureRecordMutation) ContextCleared() bool {
	_, ok := m.clearedFields[failurerecord.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *FailureRecordMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, failurerecord.FieldContext)
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *FailureRecordMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *FailureRecordMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the FailureRecord entity.
// If the FailureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureRecordMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *FailureRecordMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *FailureRecordMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *FailureRecordMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FailureRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FailureRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FailureRecord entity.
// If the FailureRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FailureRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FailureRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearIntent clears the "intent" edge to the Intent entity.
func (m *FailureRecordMutation) ClearIntent() {
	m.clearedintent = true
	m.clearedFields[failurerecord.FieldIntentID] = struct{}{}
}

// IntentCleared reports if the "intent" edge to the Intent entity was cleared.
func (m *FailureRecordMutation) IntentCleared() bool {
	return m.clearedintent
}

// IntentIDs returns the "intent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IntentID instead. It exists only for internal usage by the builders.
func (m *FailureRecordMutation) IntentIDs() (ids []string) {
	if id := m.intent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIntent resets all changes to the "intent" edge.
func (m *FailureRecordMutation) ResetIntent() {
	m.intent = nil
	m.clearedintent = false
}

// Where appends a list predicates to the FailureRecordMutation builder.
func (m *FailureRecordMutation) Where(ps ...predicate.FailureRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FailureRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FailureRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FailureRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FailureRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FailureRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FailureRecord).
func (m *FailureRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FailureRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.intent != nil {
		fields = append(fields, failurerecord.FieldIntentID)
	}
	if m.error_type != nil {
		fields = append(fields, failurerecord.FieldErrorType)
	}
	if m.error_message != nil {
		fields = append(fields, failurerecord.FieldErrorMessage)
	}
	if m.recoverable != nil {
		fields = append(fields, failurerecord.FieldRecoverable)
	}
	if m.context != nil {
		fields = append(fields, failurerecord.FieldContext)
	}
	if m.attempt_number != nil {
		fields = append(fields, failurerecord.FieldAttemptNumber)
	}
	if m.created_at != nil {
		fields = append(fields, failurerecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FailureRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case failurerecord.FieldIntentID:
		return m.IntentID()
	case failurerecord.FieldErrorType:
		return m.ErrorType()
	case failurerecord.FieldErrorMessage:
		return m.ErrorMessage()
	case failurerecord.FieldRecoverable:
		return m.Recoverable()
	case failurerecord.FieldContext:
		return m.Context()
	case failurerecord.FieldAttemptNumber:
		return m.AttemptNumber()
	case failurerecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FailureRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case failurerecord.FieldIntentID:
		return m.OldIntentID(ctx)
	case failurerecord.FieldErrorType:
		return m.OldErrorType(ctx)
	case failurerecord.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case failurerecord.FieldRecoverable:
		return m.OldRecoverable(ctx)
	case failurerecord.FieldContext:
		return m.OldContext(ctx)
	case failurerecord.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case failurerecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FailureRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FailureRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case failurerecord.FieldIntentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentID(v)
		return nil
	case failurerecord.FieldErrorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorType(v)
		return nil
	case failurerecord.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case failurerecord.FieldRecoverable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoverable(v)
		return nil
	case failurerecord.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case failurerecord.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case failurerecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FailureRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FailureRecordMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_number != nil {
		fields = append(fields, failurerecord.FieldAttemptNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FailureRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case failurerecord.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FailureRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case failurerecord.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	}
	return fmt.Errorf("unknown FailureRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FailureRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(failurerecord.FieldContext) {
		fields = append(fields, failurerecord.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FailureRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FailureRecordMutation) ClearField(name string) error {
	switch name {
	case failurerecord.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown FailureRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FailureRecordMutation) ResetField(name string) error {
	switch name {
	case failurerecord.FieldIntentID:
		m.ResetIntentID()
		return nil
	case failurerecord.FieldErrorType:
		m.ResetErrorType()
		return nil
	case failurerecord.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case failurerecord.FieldRecoverable:
		m.ResetRecoverable()
		return nil
	case failurerecord.FieldContext:
		m.ResetContext()
		return nil
	case failurerecord.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case failurerecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FailureRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FailureRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.intent != nil {
		edges = append(edges, failurerecord.EdgeIntent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FailureRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case failurerecord.EdgeIntent:
		if id := m.intent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FailureRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FailureRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FailureRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedintent {
		edges = append(edges, failurerecord.EdgeIntent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FailureRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case failurerecord.EdgeIntent:
		return m.clearedintent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FailureRecordMutation) ClearEdge(name string) error {
	switch name {
	case failurerecord.EdgeIntent:
		m.ClearIntent()
		return nil
	}
	return fmt.Errorf("unknown FailureRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FailureRecordMutation) ResetEdge(name string) error {
	switch name {
	case failurerecord.EdgeIntent:
		m.ResetIntent()
		return nil
	}
	return fmt.Errorf("unknown FailureRecord edge %s", name)
}

// IntentMutation represents an operation that mutates the Intent nodes in the graph.
type IntentMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	title              *string
	description        *string
	creator_agent_id   *string
	status             *intent.Status
	state              *map[string]interface{}
	version            *int64
	addversion         *int64
	constraints        *[]string
	appendconstraints  []string
	parent_id          *string
	depends_on         *[]string
	appenddepends_on   []string
	retry_policy       *map[string]interface{}
	attempt_count      *int
	addattempt_count   *int
	aggregate          *map[string]interface{}
	idempotency_key    *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	events             map[int]struct{}
	removedevents      map[int]struct{}
	clearedevents      bool
	leases             map[string]struct{}
	removedleases      map[string]struct{}
	clearedleases      bool
	costs              map[int]struct{}
	removedcosts       map[int]struct{}
	clearedcosts       bool
	attachments        map[string]struct{}
	removedattachments map[string]struct{}
	clearedattachments bool
	failures           map[int]struct{}
	removedfailures    map[int]struct{}
	clearedfailures    bool
	memberships        map[int]struct{}
	removedmemberships map[int]struct{}
	clearedmemberships bool
	done               bool
	oldValue           func(context.Context) (*Intent, error)
	predicates         []predicate.Intent
}

var _ ent.Mutation = (*IntentMutation)(nil)

// intentOption allows management of the mutation configuration using functional options.
type intentOption func(*IntentMutation)

// newIntentMutation creates new mutation for the Intent entity.
func newIntentMutation(c config, op Op, opts ...intentOption) *IntentMutation {
	m := &IntentMutation{
		config:        c,
		op:            op,
		typ:           TypeIntent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntentID sets the ID field of the mutation.
func withIntentID(id string) intentOption {
	return func(m *IntentMutation) {
		var (
			err   error
			once  sync.Once
			value *Intent
		)
		m.oldValue = func(ctx context.Context) (*Intent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Intent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntent sets the old Intent of the mutation.
func withIntent(node *Intent) intentOption {
	return func(m *IntentMutation) {
		m.oldValue = func(context.Context) (*Intent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Intent entities.
func (m *IntentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Intent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *IntentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *IntentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *IntentMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *IntentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *IntentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *IntentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[intent.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *IntentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[intent.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *IntentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, intent.FieldDescription)
}

// SetCreatorAgentID sets the "creator_agent_id" field.
func (m *IntentMutation) SetCreatorAgentID(s string) {
	m.creator_agent_id = &s
}

// CreatorAgentID returns the value of the "creator_agent_id" field in the mutation.
func (m *IntentMutation) CreatorAgentID() (r string, exists bool) {
	v := m.creator_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatorAgentID returns the old "creator_agent_id" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldCreatorAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatorAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatorAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatorAgentID: %w", err)
	}
	return oldValue.CreatorAgentID, nil
}

// ResetCreatorAgentID resets all changes to the "creator_agent_id" field.
func (m *IntentMutation) ResetCreatorAgentID() {
	m.creator_agent_id = nil
}

// SetStatus sets the "status" field.
func (m *IntentMutation) SetStatus(i intent.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IntentMutation) Status() (r intent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldStatus(ctx context.Context) (v intent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IntentMutation) ResetStatus() {
	m.status = nil
}

// SetState sets the "state" field.
func (m *IntentMutation) SetState(value map[string]interface{}) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *IntentMutation) State() (r map[string]interface{}, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *IntentMutation) ClearState() {
	m.state = nil
	m.clearedFields[intent.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *IntentMutation) StateCleared() bool {
	_, ok := m.clearedFields[intent.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *IntentMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, intent.FieldState)
}

// SetVersion sets the "version" field.
func (m *IntentMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *IntentMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *IntentMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *IntentMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *IntentMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetConstraints sets the "constraints" field.
func (m *IntentMutation) SetConstraints(s []string) {
	m.constraints = &s
	m.appendconstraints = nil
}

// Constraints returns the value of the "constraints" field in the mutation.
func (m *IntentMutation) Constraints() (r []string, exists bool) {
	v := m.constraints
	if v == nil {
		return
	}
	return *v, true
}

// OldConstraints returns the old "constraints" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldConstraints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstraints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstraints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstraints: %w", err)
	}
	return oldValue.Constraints, nil
}

// AppendConstraints adds s to the "constraints" field.
func (m *IntentMutation) AppendConstraints(s []string) {
	m.appendconstraints = append(m.appendconstraints, s...)
}

// AppendedConstraints returns the list of values that were appended to the "constraints" field in this mutation.
func (m *IntentMutation) AppendedConstraints() ([]string, bool) {
	if len(m.appendconstraints) == 0 {
		return nil, false
	}
	return m.appendconstraints, true
}

// ClearConstraints clears the value of the "constraints" field.
func (m *IntentMutation) ClearConstraints() {
	m.constraints = nil
	m.appendconstraints = nil
	m.clearedFields[intent.FieldConstraints] = struct{}{}
}

// ConstraintsCleared returns if the "constraints" field was cleared in this mutation.
func (m *IntentMutation) ConstraintsCleared() bool {
	_, ok := m.clearedFields[intent.FieldConstraints]
	return ok
}

// ResetConstraints resets all changes to the "constraints" field.
func (m *IntentMutation) ResetConstraints() {
	m.constraints = nil
	m.appendconstraints = nil
	delete(m.clearedFields, intent.FieldConstraints)
}

// SetParentID sets the "parent_id" field.
func (m *IntentMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *IntentMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *IntentMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[intent.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *IntentMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[intent.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *IntentMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, intent.FieldParentID)
}

// SetDependsOn sets the "depends_on" field.
func (m *IntentMutation) SetDependsOn(s []string) {
	m.depends_on = &s
	m.appenddepends_on = nil
}

// DependsOn returns the value of the "depends_on" field in the mutation.
func (m *IntentMutation) DependsOn() (r []string, exists bool) {
	v := m.depends_on
	if v == nil {
		return
	}
	return *v, true
}

// OldDependsOn returns the old "depends_on" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldDependsOn(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependsOn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependsOn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependsOn: %w", err)
	}
	return oldValue.DependsOn, nil
}

// AppendDependsOn adds s to the "depends_on" field.
func (m *IntentMutation) AppendDependsOn(s []string) {
	m.appenddepends_on = append(m.appenddepends_on, s...)
}

// AppendedDependsOn returns the list of values that were appended to the "depends_on" field in this mutation.
func (m *IntentMutation) AppendedDependsOn() ([]string, bool) {
	if len(m.appenddepends_on) == 0 {
		return nil, false
	}
	return m.appenddepends_on, true
}

// ClearDependsOn clears the value of the "depends_on" field.
func (m *IntentMutation) ClearDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	m.clearedFields[intent.FieldDependsOn] = struct{}{}
}

// DependsOnCleared returns if the "depends_on" field was cleared in this mutation.
func (m *IntentMutation) DependsOnCleared() bool {
	_, ok := m.clearedFields[intent.FieldDependsOn]
	return ok
}

// ResetDependsOn resets all changes to the "depends_on" field.
func (m *IntentMutation) ResetDependsOn() {
	m.depends_on = nil
	m.appenddepends_on = nil
	delete(m.clearedFields, intent.FieldDependsOn)
}

// SetRetryPolicy sets the "retry_policy" field.
func (m *IntentMutation) SetRetryPolicy(value map[string]interface{}) {
	m.retry_policy = &value
}

// RetryPolicy returns the value of the "retry_policy" field in the mutation.
func (m *IntentMutation) RetryPolicy() (r map[string]interface{}, exists bool) {
	v := m.retry_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryPolicy returns the old "retry_policy" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldRetryPolicy(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryPolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryPolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryPolicy: %w", err)
	}
	return oldValue.RetryPolicy, nil
}

// ClearRetryPolicy clears the value of the "retry_policy" field.
func (m *IntentMutation) ClearRetryPolicy() {
	m.retry_policy = nil
	m.clearedFields[intent.FieldRetryPolicy] = struct{}{}
}

// RetryPolicyCleared returns if the "retry_policy" field was cleared in this mutation.
func (m *IntentMutation) RetryPolicyCleared() bool {
	_, ok := m.clearedFields[intent.FieldRetryPolicy]
	return ok
}

// ResetRetryPolicy resets all changes to the "retry_policy" field.
func (m *IntentMutation) ResetRetryPolicy() {
	m.retry_policy = nil
	delete(m.clearedFields, intent.FieldRetryPolicy)
}

// SetAttemptCount sets the "attempt_count" field.
func (m *IntentMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *IntentMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *IntentMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *IntentMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *IntentMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetAggregate sets the "aggregate" field.
func (m *IntentMutation) SetAggregate(value map[string]interface{}) {
	m.aggregate = &value
}

// Aggregate returns the value of the "aggregate" field in the mutation.
func (m *IntentMutation) Aggregate() (r map[string]interface{}, exists bool) {
	v := m.aggregate
	if v == nil {
		return
	}
	return *v, true
}

// OldAggregate returns the old "aggregate" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldAggregate(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAggregate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAggregate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAggregate: %w", err)
	}
	return oldValue.Aggregate, nil
}

// ClearAggregate clears the value of the "aggregate" field.
func (m *IntentMutation) ClearAggregate() {
	m.aggregate = nil
	m.clearedFields[intent.FieldAggregate] = struct{}{}
}

// AggregateCleared returns if the "aggregate" field was cleared in this mutation.
func (m *IntentMutation) AggregateCleared() bool {
	_, ok := m.clearedFields[intent.FieldAggregate]
	return ok
}

// ResetAggregate resets all changes to the "aggregate" field.
func (m *IntentMutation) ResetAggregate() {
	m.aggregate = nil
	delete(m.clearedFields, intent.FieldAggregate)
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *IntentMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *IntentMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldIdempotencyKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (m *IntentMutation) ClearIdempotencyKey() {
	m.idempotency_key = nil
	m.clearedFields[intent.FieldIdempotencyKey] = struct{}{}
}

// IdempotencyKeyCleared returns if the "idempotency_key" field was cleared in this mutation.
func (m *IntentMutation) IdempotencyKeyCleared() bool {
	_, ok := m.clearedFields[intent.FieldIdempotencyKey]
	return ok
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *IntentMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
	delete(m.clearedFields, intent.FieldIdempotencyKey)
}

// SetCreatedAt sets the "created_at" field.
func (m *IntentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IntentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *IntentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IntentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IntentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IntentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddEventIDs adds the "events" edge to the IntentEvent entity by ids.
func (m *IntentMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the IntentEvent entity.
func (m *IntentMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the IntentEvent entity was cleared.
func (m *IntentMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the IntentEvent entity by IDs.
func (m *IntentMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the IntentEvent entity.
func (m *IntentMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *IntentMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *IntentMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddLeaseIDs adds the "leases" edge to the Lease entity by ids.
func (m *IntentMutation) AddLeaseIDs(ids ...string) {
	if m.leases == nil {
		m.leases = make(map[string]struct{})
	}
	for i := range ids {
		m.leases[ids[i]] = struct{}{}
	}
}

// ClearLeases clears the "leases" edge to the Lease entity.
func (m *IntentMutation) ClearLeases() {
	m.clearedleases = true
}

// LeasesCleared reports if the "leases" edge to the Lease entity was cleared.
func (m *IntentMutation) LeasesCleared() bool {
	return m.clearedleases
}

// RemoveLeaseIDs removes the "leases" edge to the Lease entity by IDs.
func (m *IntentMutation) RemoveLeaseIDs(ids ...string) {
	if m.removedleases == nil {
		m.removedleases = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.leases, ids[i])
		m.removedleases[ids[i]] = struct{}{}
	}
}

// RemovedLeases returns the removed IDs of the "leases" edge to the Lease entity.
func (m *IntentMutation) RemovedLeasesIDs() (ids []string) {
	for id := range m.removedleases {
		ids = append(ids, id)
	}
	return
}

// LeasesIDs returns the "leases" edge IDs in the mutation.
func (m *IntentMutation) LeasesIDs() (ids []string) {
	for id := range m.leases {
		ids = append(ids, id)
	}
	return
}

// ResetLeases resets all changes to the "leases" edge.
func (m *IntentMutation) ResetLeases() {
	m.leases = nil
	m.clearedleases = false
	m.removedleases = nil
}

// AddCostIDs adds the "costs" edge to the CostEntry entity by ids.
func (m *IntentMutation) AddCostIDs(ids ...int) {
	if m.costs == nil {
		m.costs = make(map[int]struct{})
	}
	for i := range ids {
		m.costs[ids[i]] = struct{}{}
	}
}

// ClearCosts clears the "costs" edge to the CostEntry entity.
func (m *IntentMutation) ClearCosts() {
	m.clearedcosts = true
}

// CostsCleared reports if the "costs" edge to the CostEntry entity was cleared.
func (m *IntentMutation) CostsCleared() bool {
	return m.clearedcosts
}

// RemoveCostIDs removes the "costs" edge to the CostEntry entity by IDs.
func (m *IntentMutation) RemoveCostIDs(ids ...int) {
	if m.removedcosts == nil {
		m.removedcosts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.costs, ids[i])
		m.removedcosts[ids[i]] = struct{}{}
	}
}

// RemovedCosts returns the removed IDs of the "costs" edge to the CostEntry entity.
func (m *IntentMutation) RemovedCostsIDs() (ids []int) {
	for id := range m.removedcosts {
		ids = append(ids, id)
	}
	return
}

// CostsIDs returns the "costs" edge IDs in the mutation.
func (m *IntentMutation) CostsIDs() (ids []int) {
	for id := range m.costs {
		ids = append(ids, id)
	}
	return
}

// ResetCosts resets all changes to the "costs" edge.
func (m *IntentMutation) ResetCosts() {
	m.costs = nil
	m.clearedcosts = false
	m.removedcosts = nil
}

// AddAttachmentIDs adds the "attachments" edge to the Attachment entity by ids.
func (m *IntentMutation) AddAttachmentIDs(ids ...string) {
	if m.attachments == nil {
		m.attachments = make(map[string]struct{})
	}
	for i := range ids {
		m.attachments[ids[i]] = struct{}{}
	}
}

// ClearAttachments clears the "attachments" edge to the Attachment entity.
func (m *IntentMutation) ClearAttachments() {
	m.clearedattachments = true
}

// AttachmentsCleared reports if the "attachments" edge to the Attachment entity was cleared.
func (m *IntentMutation) AttachmentsCleared() bool {
	return m.clearedattachments
}

// RemoveAttachmentIDs removes the "attachments" edge to the Attachment entity by IDs.
func (m *IntentMutation) RemoveAttachmentIDs(ids ...string) {
	if m.removedattachments == nil {
		m.removedattachments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.attachments, ids[i])
		m.removedattachments[ids[i]] = struct{}{}
	}
}

// RemovedAttachments returns the removed IDs of the "attachments" edge to the Attachment entity.
func (m *IntentMutation) RemovedAttachmentsIDs() (ids []string) {
	for id := range m.removedattachments {
		ids = append(ids, id)
	}
	return
}

// AttachmentsIDs returns the "attachments" edge IDs in the mutation.
func (m *IntentMutation) AttachmentsIDs() (ids []string) {
	for id := range m.attachments {
		ids = append(ids, id)
	}
	return
}

// ResetAttachments resets all changes to the "attachments" edge.
func (m *IntentMutation) ResetAttachments() {
	m.attachments = nil
	m.clearedattachments = false
	m.removedattachments = nil
}

// AddFailureIDs adds the "failures" edge to the FailureRecord entity by ids.
func (m *IntentMutation) AddFailureIDs(ids ...int) {
	if m.failures == nil {
		m.failures = make(map[int]struct{})
	}
	for i := range ids {
		m.failures[ids[i]] = struct{}{}
	}
}

// ClearFailures clears the "failures" edge to the FailureRecord entity.
func (m *IntentMutation) ClearFailures() {
	m.clearedfailures = true
}

// FailuresCleared reports if the "failures" edge to the FailureRecord entity was cleared.
func (m *IntentMutation) FailuresCleared() bool {
	return m.clearedfailures
}

// RemoveFailureIDs removes the "failures" edge to the FailureRecord entity by IDs.
func (m *IntentMutation) RemoveFailureIDs(ids ...int) {
	if m.removedfailures == nil {
		m.removedfailures = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.failures, ids[i])
		m.removedfailures[ids[i]] = struct{}{}
	}
}

// RemovedFailures returns the removed IDs of the "failures" edge to the FailureRecord entity.
func (m *IntentMutation) RemovedFailuresIDs() (ids []int) {
	for id := range m.removedfailures {
		ids = append(ids, id)
	}
	return
}

// FailuresIDs returns the "failures" edge IDs in the mutation.
func (m *IntentMutation) FailuresIDs() (ids []int) {
	for id := range m.failures {
		ids = append(ids, id)
	}
	return
}

// ResetFailures resets all changes to the "failures" edge.
func (m *IntentMutation) ResetFailures() {
	m.failures = nil
	m.clearedfailures = false
	m.removedfailures = nil
}

// AddMembershipIDs adds the "memberships" edge to the PortfolioMember entity by ids.
func (m *IntentMutation) AddMembershipIDs(ids ...int) {
	if m.memberships == nil {
		m.memberships = make(map[int]struct{})
	}
	for i := range ids {
		m.memberships[ids[i]] = struct{}{}
	}
}

// ClearMemberships clears the "memberships" edge to the PortfolioMember entity.
func (m *IntentMutation) ClearMemberships() {
	m.clearedmemberships = true
}

// MembershipsCleared reports if the "memberships" edge to the PortfolioMember entity was cleared.
func (m *IntentMutation) MembershipsCleared() bool {
	return m.clearedmemberships
}

// RemoveMembershipIDs removes the "memberships" edge to the PortfolioMember entity by IDs.
func (m *IntentMutation) RemoveMembershipIDs(ids ...int) {
	if m.removedmemberships == nil {
		m.removedmemberships = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.memberships, ids[i])
		m.removedmemberships[ids[i]] = struct{}{}
	}
}

// RemovedMemberships returns the removed IDs of the "memberships" edge to the PortfolioMember entity.
func (m *IntentMutation) RemovedMembershipsIDs() (ids []int) {
	for id := range m.removedmemberships {
		ids = append(ids, id)
	}
	return
}

// MembershipsIDs returns the "memberships" edge IDs in the mutation.
func (m *IntentMutation) MembershipsIDs() (ids []int) {
	for id := range m.memberships {
		ids = append(ids, id)
	}
	return
}

// ResetMemberships resets all changes to the "memberships" edge.
func (m *IntentMutation) ResetMemberships() {
	m.memberships = nil
	m.clearedmemberships = false
	m.removedmemberships = nil
}

// Where appends a list predicates to the IntentMutation builder.
func (m *IntentMutation) Where(ps ...predicate.Intent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Intent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Intent).
func (m *IntentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntentMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.title != nil {
		fields = append(fields, intent.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, intent.FieldDescription)
	}
	if m.creator_agent_id != nil {
		fields = append(fields, intent.FieldCreatorAgentID)
	}
	if m.status != nil {
		fields = append(fields, intent.FieldStatus)
	}
	if m.state != nil {
		fields = append(fields, intent.FieldState)
	}
	if m.version != nil {
		fields = append(fields, intent.FieldVersion)
	}
	if m.constraints != nil {
		fields = append(fields, intent.FieldConstraints)
	}
	if m.parent_id != nil {
		fields = append(fields, intent.FieldParentID)
	}
	if m.depends_on != nil {
		fields = append(fields, intent.FieldDependsOn)
	}
	if m.retry_policy != nil {
		fields = append(fields, intent.FieldRetryPolicy)
	}
	if m.attempt_count != nil {
		fields = append(fields, intent.FieldAttemptCount)
	}
	if m.aggregate != nil {
		fields = append(fields, intent.FieldAggregate)
	}
	if m.idempotency_key != nil {
		fields = append(fields, intent.FieldIdempotencyKey)
	}
	if m.created_at != nil {
		fields = append(fields, intent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, intent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case intent.FieldTitle:
		return m.Title()
	case intent.FieldDescription:
		return m.Description()
	case intent.FieldCreatorAgentID:
		return m.CreatorAgentID()
	case intent.FieldStatus:
		return m.Status()
	case intent.FieldState:
		return m.State()
	case intent.FieldVersion:
		return m.Version()
	case intent.FieldConstraints:
		return m.Constraints()
	case intent.FieldParentID:
		return m.ParentID()
	case intent.FieldDependsOn:
		return m.DependsOn()
	case intent.FieldRetryPolicy:
		return m.RetryPolicy()
	case intent.FieldAttemptCount:
		return m.AttemptCount()
	case intent.FieldAggregate:
		return m.Aggregate()
	case intent.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case intent.FieldCreatedAt:
		return m.CreatedAt()
	case intent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case intent.FieldTitle:
		return m.OldTitle(ctx)
	case intent.FieldDescription:
		return m.OldDescription(ctx)
	case intent.FieldCreatorAgentID:
		return m.OldCreatorAgentID(ctx)
	case intent.FieldStatus:
		return m.OldStatus(ctx)
	case intent.FieldState:
		return m.OldState(ctx)
	case intent.FieldVersion:
		return m.OldVersion(ctx)
	case intent.FieldConstraints:
		return m.OldConstraints(ctx)
	case intent.FieldParentID:
		return m.OldParentID(ctx)
	case intent.FieldDependsOn:
		return m.OldDependsOn(ctx)
	case intent.FieldRetryPolicy:
		return m.OldRetryPolicy(ctx)
	case intent.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case intent.FieldAggregate:
		return m.OldAggregate(ctx)
	case intent.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case intent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case intent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Intent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case intent.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case intent.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case intent.FieldCreatorAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatorAgentID(v)
		return nil
	case intent.FieldStatus:
		v, ok := value.(intent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case intent.FieldState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case intent.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case intent.FieldConstraints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstraints(v)
		return nil
	case intent.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case intent.FieldDependsOn:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependsOn(v)
		return nil
	case intent.FieldRetryPolicy:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryPolicy(v)
		return nil
	case intent.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case intent.FieldAggregate:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAggregate(v)
		return nil
	case intent.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case intent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case intent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Intent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntentMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, intent.FieldVersion)
	}
	if m.addattempt_count != nil {
		fields = append(fields, intent.FieldAttemptCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case intent.FieldVersion:
		return m.AddedVersion()
	case intent.FieldAttemptCount:
		return m.AddedAttemptCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case intent.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case intent.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	}
	return fmt.Errorf("unknown Intent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(intent.FieldDescription) {
		fields = append(fields, intent.FieldDescription)
	}
	if m.FieldCleared(intent.FieldState) {
		fields = append(fields, intent.FieldState)
	}
	if m.FieldCleared(intent.FieldConstraints) {
		fields = append(fields, intent.FieldConstraints)
	}
	if m.FieldCleared(intent.FieldParentID) {
		fields = append(fields, intent.FieldParentID)
	}
	if m.FieldCleared(intent.FieldDependsOn) {
		fields = append(fields, intent.FieldDependsOn)
	}
	if m.FieldCleared(intent.FieldRetryPolicy) {
		fields = append(fields, intent.FieldRetryPolicy)
	}
	if m.FieldCleared(intent.FieldAggregate) {
		fields = append(fields, intent.FieldAggregate)
	}
	if m.FieldCleared(intent.FieldIdempotencyKey) {
		fields = append(fields, intent.FieldIdempotencyKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntentMutation) ClearField(name string) error {
	switch name {
	case intent.FieldDescription:
		m.ClearDescription()
		return nil
	case intent.FieldState:
		m.ClearState()
		return nil
	case intent.FieldConstraints:
		m.ClearConstraints()
		return nil
	case intent.FieldParentID:
		m.ClearParentID()
		return nil
	case intent.FieldDependsOn:
		m.ClearDependsOn()
		return nil
	case intent.FieldRetryPolicy:
		m.ClearRetryPolicy()
		return nil
	case intent.FieldAggregate:
		m.ClearAggregate()
		return nil
	case intent.FieldIdempotencyKey:
		m.ClearIdempotencyKey()
		return nil
	}
	return fmt.Errorf("unknown Intent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntentMutation) ResetField(name string) error {
	switch name {
	case intent.FieldTitle:
		m.ResetTitle()
		return nil
	case intent.FieldDescription:
		m.ResetDescription()
		return nil
	case intent.FieldCreatorAgentID:
		m.ResetCreatorAgentID()
		return nil
	case intent.FieldStatus:
		m.ResetStatus()
		return nil
	case intent.FieldState:
		m.ResetState()
		return nil
	case intent.FieldVersion:
		m.ResetVersion()
		return nil
	case intent.FieldConstraints:
		m.ResetConstraints()
		return nil
	case intent.FieldParentID:
		m.ResetParentID()
		return nil
	case intent.FieldDependsOn:
		m.ResetDependsOn()
		return nil
	case intent.FieldRetryPolicy:
		m.ResetRetryPolicy()
		return nil
	case intent.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case intent.FieldAggregate:
		m.ResetAggregate()
		return nil
	case intent.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case intent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case intent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Intent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntentMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.events != nil {
		edges = append(edges, intent.EdgeEvents)
	}
	if m.leases != nil {
		edges = append(edges, intent.EdgeLeases)
	}
	if m.costs != nil {
		edges = append(edges, intent.EdgeCosts)
	}
	if m.attachments != nil {
		edges = append(edges, intent.EdgeAttachments)
	}
	if m.failures != nil {
		edges = append(edges, intent.EdgeFailures)
	}
	if m.memberships != nil {
		edges = append(edges, intent.EdgeMemberships)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case intent.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case intent.EdgeLeases:
		ids := make([]ent.Value, 0, len(m.leases))
		for id := range m.leases {
			ids = append(ids, id)
		}
		return ids
	case intent.EdgeCosts:
		ids := make([]ent.Value, 0, len(m.costs))
		for id := range m.costs {
			ids = append(ids, id)
		}
		return ids
	case intent.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.attachments))
		for id := range m.attachments {
			ids = append(ids, id)
		}
		return ids
	case intent.EdgeFailures:
		ids := make([]ent.Value, 0, len(m.failures))
		for id := range m.failures {
			ids = append(ids, id)
		}
		return ids
	case intent.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.memberships))
		for id := range m.memberships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedevents != nil {
		edges = append(edges, intent.EdgeEvents)
	}
	if m.removedleases != nil {
		edges = append(edges, intent.EdgeLeases)
	}
	if m.removedcosts != nil {
		edges = append(edges, intent.EdgeCosts)
	}
	if m.removedattachments != nil {
		edges = append(edges, intent.EdgeAttachments)
	}
	if m.removedfailures != nil {
		edges = append(edges, intent.EdgeFailures)
	}
	if m.removedmemberships != nil {
		edges = append(edges, intent.EdgeMemberships)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case intent.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case intent.EdgeLeases:
		ids := make([]ent.Value, 0, len(m.removedleases))
		for id := range m.removedleases {
			ids = append(ids, id)
		}
		return ids
	case intent.EdgeCosts:
		ids := make([]ent.Value, 0, len(m.removedcosts))
		for id := range m.removedcosts {
			ids = append(ids, id)
		}
		return ids
	case intent.EdgeAttachments:
		ids := make([]ent.Value, 0, len(m.removedattachments))
		for id := range m.removedattachments {
			ids = append(ids, id)
		}
		return ids
	case intent.EdgeFailures:
		ids := make([]ent.Value, 0, len(m.removedfailures))
		for id := range m.removedfailures {
			ids = append(ids, id)
		}
		return ids
	case intent.EdgeMemberships:
		ids := make([]ent.Value, 0, len(m.removedmemberships))
		for id := range m.removedmemberships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedevents {
		edges = append(edges, intent.EdgeEvents)
	}
	if m.clearedleases {
		edges = append(edges, intent.EdgeLeases)
	}
	if m.clearedcosts {
		edges = append(edges, intent.EdgeCosts)
	}
	if m.clearedattachments {
		edges = append(edges, intent.EdgeAttachments)
	}
	if m.clearedfailures {
		edges = append(edges, intent.EdgeFailures)
	}
	if m.clearedmemberships {
		edges = append(edges, intent.EdgeMemberships)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntentMutation) EdgeCleared(name string) bool {
	switch name {
	case intent.EdgeEvents:
		return m.clearedevents
	case intent.EdgeLeases:
		return m.clearedleases
	case intent.EdgeCosts:
		return m.clearedcosts
	case intent.EdgeAttachments:
		return m.clearedattachments
	case intent.EdgeFailures:
		return m.clearedfailures
	case intent.EdgeMemberships:
		return m.clearedmemberships
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Intent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntentMutation) ResetEdge(name string) error {
	switch name {
	case intent.EdgeEvents:
		m.ResetEvents()
		return nil
	case intent.EdgeLeases:
		m.ResetLeases()
		return nil
	case intent.EdgeCosts:
		m.ResetCosts()
		return nil
	case intent.EdgeAttachments:
		m.ResetAttachments()
		return nil
	case intent.EdgeFailures:
		m.ResetFailures()
		return nil
	case intent.EdgeMemberships:
		m.ResetMemberships()
		return nil
	}
	return fmt.Errorf("unknown Intent edge %s", name)
}

// IntentEventMutation represents an operation that mutates the IntentEvent nodes in the graph.
type IntentEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	event_type         *string
	actor_agent_id     *string
	sequence_number    *int64
	addsequence_number *int64
	payload            *map[string]interface{}
	created_at         *time.Time
	clearedFields      map[string]struct{}
	intent             *string
	clearedintent      bool
	done               bool
	oldValue           func(context.Context) (*IntentEvent, error)
	predicates         []predicate.IntentEvent
}

var _ ent.Mutation = (*IntentEventMutation)(nil)

// intenteventOption allows management of the mutation configuration using functional options.
type intenteventOption func(*IntentEventMutation)

// newIntentEventMutation creates new mutation for the IntentEvent entity.
func newIntentEventMutation(c config, op Op, opts ...intenteventOption) *IntentEventMutation {
	m := &IntentEventMutation{
		config:        c,
		op:            op,
		typ:           TypeIntentEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntentEventID sets the ID field of the mutation.
func withIntentEventID(id int) intenteventOption {
	return func(m *IntentEventMutation) {
		var (
			err   error
			once  sync.Once
			value *IntentEvent
		)
		m.oldValue = func(ctx context.Context) (*IntentEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IntentEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntentEvent sets the old IntentEvent of the mutation.
func withIntentEvent(node *IntentEvent) intenteventOption {
	return func(m *IntentEventMutation) {
		m.oldValue = func(context.Context) (*IntentEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntentEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntentEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntentEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntentEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IntentEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIntentID sets the "intent_id" field.
func (m *IntentEventMutation) SetIntentID(s string) {
	m.intent = &s
}

// IntentID returns the value of the "intent_id" field in the mutation.
func (m *IntentEventMutation) IntentID() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentID returns the old "intent_id" field's value of the IntentEvent entity.
// If the IntentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentEventMutation) OldIntentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentID: %w", err)
	}
	return oldValue.IntentID, nil
}

// ResetIntentID resets all changes to the "intent_id" field.
func (m *IntentEventMutation) ResetIntentID() {
	m.intent = nil
}

// SetEventType sets the "event_type" field.
func (m *IntentEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *IntentEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the IntentEvent entity.
// If the IntentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *IntentEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetActorAgentID sets the "actor_agent_id" field.
func (m *IntentEventMutation) SetActorAgentID(s string) {
	m.actor_agent_id = &s
}

// ActorAgentID returns the value of the "actor_agent_id" field in the mutation.
func (m *IntentEventMutation) ActorAgentID() (r string, exists bool) {
	v := m.actor_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorAgentID returns the old "actor_agent_id" field's value of the IntentEvent entity.
// If the IntentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentEventMutation) OldActorAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorAgentID: %w", err)
	}
	return oldValue.ActorAgentID, nil
}

// ResetActorAgentID resets all changes to the "actor_agent_id" field.
func (m *IntentEventMutation) ResetActorAgentID() {
	m.actor_agent_id = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *IntentEventMutation) SetSequenceNumber(i int64) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *IntentEventMutation) SequenceNumber() (r int64, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the IntentEvent entity.
// If the IntentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentEventMutation) OldSequenceNumber(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *IntentEventMutation) AddSequenceNumber(i int64) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *IntentEventMutation) AddedSequenceNumber() (r int64, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *IntentEventMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetPayload sets the "payload" field.
func (m *IntentEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *IntentEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the IntentEvent entity.
// If the IntentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *IntentEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[intentevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *IntentEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[intentevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *IntentEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, intentevent.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *IntentEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IntentEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IntentEvent entity.
// If the IntentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *IntentEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearIntent clears the "intent" edge to the Intent entity.
func (m *IntentEventMutation) ClearIntent() {
	m.clearedintent = true
	m.clearedFields[intentevent.FieldIntentID] = struct{}{}
}

// IntentCleared reports if the "intent" edge to the Intent entity was cleared.
func (m *IntentEventMutation) IntentCleared() bool {
	return m.clearedintent
}

// IntentIDs returns the "intent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IntentID instead. It exists only for internal usage by the builders.
func (m *IntentEventMutation) IntentIDs() (ids []string) {
	if id := m.intent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIntent resets all changes to the "intent" edge.
func (m *IntentEventMutation) ResetIntent() {
	m.intent = nil
	m.clearedintent = false
}

// Where appends a list predicates to the IntentEventMutation builder.
func (m *IntentEventMutation) Where(ps ...predicate.IntentEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntentEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntentEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IntentEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntentEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntentEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IntentEvent).
func (m *IntentEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntentEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.intent != nil {
		fields = append(fields, intentevent.FieldIntentID)
	}
	if m.event_type != nil {
		fields = append(fields, intentevent.FieldEventType)
	}
	if m.actor_agent_id != nil {
		fields = append(fields, intentevent.FieldActorAgentID)
	}
	if m.sequence_number != nil {
		fields = append(fields, intentevent.FieldSequenceNumber)
	}
	if m.payload != nil {
		fields = append(fields, intentevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, intentevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntentEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case intentevent.FieldIntentID:
		return m.IntentID()
	case intentevent.FieldEventType:
		return m.EventType()
	case intentevent.FieldActorAgentID:
		return m.ActorAgentID()
	case intentevent.FieldSequenceNumber:
		return m.SequenceNumber()
	case intentevent.FieldPayload:
		return m.Payload()
	case intentevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntentEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case intentevent.FieldIntentID:
		return m.OldIntentID(ctx)
	case intentevent.FieldEventType:
		return m.OldEventType(ctx)
	case intentevent.FieldActorAgentID:
		return m.OldActorAgentID(ctx)
	case intentevent.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case intentevent.FieldPayload:
		return m.OldPayload(ctx)
	case intentevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IntentEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntentEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case intentevent.FieldIntentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentID(v)
		return nil
	case intentevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case intentevent.FieldActorAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorAgentID(v)
		return nil
	case intentevent.FieldSequenceNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case intentevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case intentevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IntentEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntentEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, intentevent.FieldSequenceNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntentEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case intentevent.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntentEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case intentevent.FieldSequenceNumber:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	}
	return fmt.Errorf("unknown IntentEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntentEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(intentevent.FieldPayload) {
		fields = append(fields, intentevent.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntentEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntentEventMutation) ClearField(name string) error {
	switch name {
	case intentevent.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown IntentEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntentEventMutation) ResetField(name string) error {
	switch name {
	case intentevent.FieldIntentID:
		m.ResetIntentID()
		return nil
	case intentevent.FieldEventType:
		m.ResetEventType()
		return nil
	case intentevent.FieldActorAgentID:
		m.ResetActorAgentID()
		return nil
	case intentevent.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case intentevent.FieldPayload:
		m.ResetPayload()
		return nil
	case intentevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown IntentEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntentEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.intent != nil {
		edges = append(edges, intentevent.EdgeIntent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntentEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case intentevent.EdgeIntent:
		if id := m.intent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntentEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntentEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntentEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedintent {
		edges = append(edges, intentevent.EdgeIntent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntentEventMutation) EdgeCleared(name string) bool {
	switch name {
	case intentevent.EdgeIntent:
		return m.clearedintent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntentEventMutation) ClearEdge(name string) error {
	switch name {
	case intentevent.EdgeIntent:
		m.ClearIntent()
		return nil
	}
	return fmt.Errorf("unknown IntentEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntentEventMutation) ResetEdge(name string) error {
	switch name {
	case intentevent.EdgeIntent:
		m.ResetIntent()
		return nil
	}
	return fmt.Errorf("unknown IntentEvent edge %s", name)
}

// LeaseMutation represents an operation that mutates the Lease nodes in the graph.
type LeaseMutation struct {
	config
	op              Op
	typ             string
	id              *string
	scope           *string
	holder_agent_id *string
	status          *lease.Status
	acquired_at     *time.Time
	expires_at      *time.Time
	clearedFields   map[string]struct{}
	intent          *string
	clearedintent   bool
	done            bool
	oldValue        func(context.Context) (*Lease, error)
	predicates      []predicate.Lease
}

var _ ent.Mutation = (*LeaseMutation)(nil)

// leaseOption allows management of the mutation configuration using functional options.
type leaseOption func(*LeaseMutation)

// newLeaseMutation creates new mutation for the Lease entity.
func newLeaseMutation(c config, op Op, opts ...leaseOption) *LeaseMutation {
	m := &LeaseMutation{
		config:        c,
		op:            op,
		typ:           TypeLease,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeaseID sets the ID field of the mutation.
func withLeaseID(id string) leaseOption {
	return func(m *LeaseMutation) {
		var (
			err   error
			once  sync.Once
			value *Lease
		)
		m.oldValue = func(ctx context.Context) (*Lease, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lease.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLease sets the old Lease of the mutation.
func withLease(node *Lease) leaseOption {
	return func(m *LeaseMutation) {
		m.oldValue = func(context.Context) (*Lease, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lease entities.
func (m *LeaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lease.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIntentID sets the "intent_id" field.
func (m *LeaseMutation) SetIntentID(s string) {
	m.intent = &s
}

// IntentID returns the value of the "intent_id" field in the mutation.
func (m *LeaseMutation) IntentID() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentID returns the old "intent_id" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldIntentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentID: %w", err)
	}
	return oldValue.IntentID, nil
}

// ResetIntentID resets all changes to the "intent_id" field.
func (m *LeaseMutation) ResetIntentID() {
	m.intent = nil
}

// SetScope sets the "scope" field.
func (m *LeaseMutation) SetScope(s string) {
	m.scope = &s
}

// Scope returns the value of the "scope" field in the mutation.
func (m *LeaseMutation) Scope() (r string, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldScope(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *LeaseMutation) ResetScope() {
	m.scope = nil
}

// SetHolderAgentID sets the "holder_agent_id" field.
func (m *LeaseMutation) SetHolderAgentID(s string) {
	m.holder_agent_id = &s
}

// HolderAgentID returns the value of the "holder_agent_id" field in the mutation.
func (m *LeaseMutation) HolderAgentID() (r string, exists bool) {
	v := m.holder_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldHolderAgentID returns the old "holder_agent_id" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldHolderAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHolderAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHolderAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHolderAgentID: %w", err)
	}
	return oldValue.HolderAgentID, nil
}

// ResetHolderAgentID resets all changes to the "holder_agent_id" field.
func (m *LeaseMutation) ResetHolderAgentID() {
	m.holder_agent_id = nil
}

// SetStatus sets the "status" field.
func (m *LeaseMutation) SetStatus(l lease.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LeaseMutation) Status() (r lease.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldStatus(ctx context.Context) (v lease.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LeaseMutation) ResetStatus() {
	m.status = nil
}

// SetAcquiredAt sets the "acquired_at" field.
func (m *LeaseMutation) SetAcquiredAt(t time.Time) {
	m.acquired_at = &t
}

// AcquiredAt returns the value of the "acquired_at" field in the mutation.
func (m *LeaseMutation) AcquiredAt() (r time.Time, exists bool) {
	v := m.acquired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAcquiredAt returns the old "acquired_at" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldAcquiredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcquiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcquiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcquiredAt: %w", err)
	}
	return oldValue.AcquiredAt, nil
}

// ResetAcquiredAt resets all changes to the "acquired_at" field.
func (m *LeaseMutation) ResetAcquiredAt() {
	m.acquired_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *LeaseMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *LeaseMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Lease entity.
// If the Lease object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeaseMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *LeaseMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// ClearIntent clears the "intent" edge to the Intent entity.
func (m *LeaseMutation) ClearIntent() {
	m.clearedintent = true
	m.clearedFields[lease.FieldIntentID] = struct{}{}
}

// IntentCleared reports if the "intent" edge to the Intent entity was cleared.
func (m *LeaseMutation) IntentCleared() bool {
	return m.clearedintent
}

// IntentIDs returns the "intent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IntentID instead. It exists only for internal usage by the builders.
func (m *LeaseMutation) IntentIDs() (ids []string) {
	if id := m.intent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIntent resets all changes to the "intent" edge.
func (m *LeaseMutation) ResetIntent() {
	m.intent = nil
	m.clearedintent = false
}

// Where appends a list predicates to the LeaseMutation builder.
func (m *LeaseMutation) Where(ps ...predicate.Lease) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lease, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lease).
func (m *LeaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeaseMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.intent != nil {
		fields = append(fields, lease.FieldIntentID)
	}
	if m.scope != nil {
		fields = append(fields, lease.FieldScope)
	}
	if m.holder_agent_id != nil {
		fields = append(fields, lease.FieldHolderAgentID)
	}
	if m.status != nil {
		fields = append(fields, lease.FieldStatus)
	}
	if m.acquired_at != nil {
		fields = append(fields, lease.FieldAcquiredAt)
	}
	if m.expires_at != nil {
		fields = append(fields, lease.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lease.FieldIntentID:
		return m.IntentID()
	case lease.FieldScope:
		return m.Scope()
	case lease.FieldHolderAgentID:
		return m.HolderAgentID()
	case lease.FieldStatus:
		return m.Status()
	case lease.FieldAcquiredAt:
		return m.AcquiredAt()
	case lease.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lease.FieldIntentID:
		return m.OldIntentID(ctx)
	case lease.FieldScope:
		return m.OldScope(ctx)
	case lease.FieldHolderAgentID:
		return m.OldHolderAgentID(ctx)
	case lease.FieldStatus:
		return m.OldStatus(ctx)
	case lease.FieldAcquiredAt:
		return m.OldAcquiredAt(ctx)
	case lease.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lease field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lease.FieldIntentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentID(v)
		return nil
	case lease.FieldScope:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case lease.FieldHolderAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHolderAgentID(v)
		return nil
	case lease.FieldStatus:
		v, ok := value.(lease.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lease.FieldAcquiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcquiredAt(v)
		return nil
	case lease.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lease field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Lease numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeaseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeaseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Lease nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeaseMutation) ResetField(name string) error {
	switch name {
	case lease.FieldIntentID:
		m.ResetIntentID()
		return nil
	case lease.FieldScope:
		m.ResetScope()
		return nil
	case lease.FieldHolderAgentID:
		m.ResetHolderAgentID()
		return nil
	case lease.FieldStatus:
		m.ResetStatus()
		return nil
	case lease.FieldAcquiredAt:
		m.ResetAcquiredAt()
		return nil
	case lease.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown Lease field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.intent != nil {
		edges = append(edges, lease.EdgeIntent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lease.EdgeIntent:
		if id := m.intent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedintent {
		edges = append(edges, lease.EdgeIntent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeaseMutation) EdgeCleared(name string) bool {
	switch name {
	case lease.EdgeIntent:
		return m.clearedintent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeaseMutation) ClearEdge(name string) error {
	switch name {
	case lease.EdgeIntent:
		m.ClearIntent()
		return nil
	}
	return fmt.Errorf("unknown Lease unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeaseMutation) ResetEdge(name string) error {
	switch name {
	case lease.EdgeIntent:
		m.ResetIntent()
		return nil
	}
	return fmt.Errorf("unknown Lease edge %s", name)
}

// PortfolioMutation represents an operation that mutates the Portfolio nodes in the graph.
type PortfolioMutation struct {
	config
	op                Op
	typ               string
	id                *string
	name              *string
	creator_agent_id  *string
	status            *portfolio.Status
	governance_policy *map[string]interface{}
	aggregate         *map[string]interface{}
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	members           map[int]struct{}
	removedmembers    map[int]struct{}
	clearedmembers    bool
	done              bool
	oldValue          func(context.Context) (*Portfolio, error)
	predicates        []predicate.Portfolio
}

var _ ent.Mutation = (*PortfolioMutation)(nil)

// portfolioOption allows management of the mutation configuration using functional options.
type portfolioOption func(*PortfolioMutation)

// newPortfolioMutation creates new mutation for the Portfolio entity.
func newPortfolioMutation(c config, op Op, opts ...portfolioOption) *PortfolioMutation {
	m := &PortfolioMutation{
		config:        c,
		op:            op,
		typ:           TypePortfolio,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPortfolioID sets the ID field of the mutation.
func withPortfolioID(id string) portfolioOption {
	return func(m *PortfolioMutation) {
		var (
			err   error
			once  sync.Once
			value *Portfolio
		)
		m.oldValue = func(ctx context.Context) (*Portfolio, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Portfolio.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPortfolio sets the old Portfolio of the mutation.
func withPortfolio(node *Portfolio) portfolioOption {
	return func(m *PortfolioMutation) {
		m.oldValue = func(context.Context) (*Portfolio, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PortfolioMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PortfolioMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Portfolio entities.
func (m *PortfolioMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PortfolioMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PortfolioMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Portfolio.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PortfolioMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PortfolioMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Portfolio entity.
// If the Portfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PortfolioMutation) ResetName() {
	m.name = nil
}

// SetCreatorAgentID sets the "creator_agent_id" field.
func (m *PortfolioMutation) SetCreatorAgentID(s string) {
	m.creator_agent_id = &s
}

// CreatorAgentID returns the value of the "creator_agent_id" field in the mutation.
func (m *PortfolioMutation) CreatorAgentID() (r string, exists bool) {
	v := m.creator_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatorAgentID returns the old "creator_agent_id" field's value of the Portfolio entity.
// If the Portfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMutation) OldCreatorAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatorAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatorAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatorAgentID: %w", err)
	}
	return oldValue.CreatorAgentID, nil
}

// ResetCreatorAgentID resets all changes to the "creator_agent_id" field.
func (m *PortfolioMutation) ResetCreatorAgentID() {
	m.creator_agent_id = nil
}

// SetStatus sets the "status" field.
func (m *PortfolioMutation) SetStatus(po portfolio.Status) {
	m.status = &po
}

// Status returns the value of the "status" field in the mutation.
func (m *PortfolioMutation) Status() (r portfolio.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Portfolio entity.
// If the Portfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMutation) OldStatus(ctx context.Context) (v portfolio.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PortfolioMutation) ResetStatus() {
	m.status = nil
}

// SetGovernancePolicy sets the "governance_policy" field.
func (m *PortfolioMutation) SetGovernancePolicy(value map[string]interface{}) {
	m.governance_policy = &value
}

// GovernancePolicy returns the value of the "governance_policy" field in the mutation.
func (m *PortfolioMutation) GovernancePolicy() (r map[string]interface{}, exists bool) {
	v := m.governance_policy
	if v == nil {
		return
	}
	return *v, true
}

// OldGovernancePolicy returns the old "governance_policy" field's value of the Portfolio entity.
// If the Portfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMutation) OldGovernancePolicy(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGovernancePolicy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGovernancePolicy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGovernancePolicy: %w", err)
	}
	return oldValue.GovernancePolicy, nil
}

// ClearGovernancePolicy clears the value of the "governance_policy" field.
func (m *PortfolioMutation) ClearGovernancePolicy() {
	m.governance_policy = nil
	m.clearedFields[portfolio.FieldGovernancePolicy] = struct{}{}
}

// GovernancePolicyCleared returns if the "governance_policy" field was cleared in this mutation.
func (m *PortfolioMutation) GovernancePolicyCleared() bool {
	_, ok := m.clearedFields[portfolio.FieldGovernancePolicy]
	return ok
}

// ResetGovernancePolicy resets all changes to the "governance_policy" field.
func (m *PortfolioMutation) ResetGovernancePolicy() {
	m.governance_policy = nil
	delete(m.clearedFields, portfolio.FieldGovernancePolicy)
}

// SetAggregate sets the "aggregate" field.
func (m *PortfolioMutation) SetAggregate(value map[string]interface{}) {
	m.aggregate = &value
}

// Aggregate returns the value of the "aggregate" field in the mutation.
func (m *PortfolioMutation) Aggregate() (r map[string]interface{}, exists bool) {
	v := m.aggregate
	if v == nil {
		return
	}
	return *v, true
}

// OldAggregate returns the old "aggregate" field's value of the Portfolio entity.
// If the Portfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMutation) OldAggregate(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAggregate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAggregate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAggregate: %w", err)
	}
	return oldValue.Aggregate, nil
}

// ClearAggregate clears the value of the "aggregate" field.
func (m *PortfolioMutation) ClearAggregate() {
	m.aggregate = nil
	m.clearedFields[portfolio.FieldAggregate] = struct{}{}
}

// AggregateCleared returns if the "aggregate" field was cleared in this mutation.
func (m *PortfolioMutation) AggregateCleared() bool {
	_, ok := m.clearedFields[portfolio.FieldAggregate]
	return ok
}

// ResetAggregate resets all changes to the "aggregate" field.
func (m *PortfolioMutation) ResetAggregate() {
	m.aggregate = nil
	delete(m.clearedFields, portfolio.FieldAggregate)
}

// SetCreatedAt sets the "created_at" field.
func (m *PortfolioMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PortfolioMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Portfolio entity.
// If the Portfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PortfolioMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PortfolioMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PortfolioMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Portfolio entity.
// If the Portfolio object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PortfolioMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMemberIDs adds the "members" edge to the PortfolioMember entity by ids.
func (m *PortfolioMutation) AddMemberIDs(ids ...int) {
	if m.members == nil {
		m.members = make(map[int]struct{})
	}
	for i := range ids {
		m.members[ids[i]] = struct{}{}
	}
}

// ClearMembers clears the "members" edge to the PortfolioMember entity.
func (m *PortfolioMutation) ClearMembers() {
	m.clearedmembers = true
}

// MembersCleared reports if the "members" edge to the PortfolioMember entity was cleared.
func (m *PortfolioMutation) MembersCleared() bool {
	return m.clearedmembers
}

// RemoveMemberIDs removes the "members" edge to the PortfolioMember entity by IDs.
func (m *PortfolioMutation) RemoveMemberIDs(ids ...int) {
	if m.removedmembers == nil {
		m.removedmembers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.members, ids[i])
		m.removedmembers[ids[i]] = struct{}{}
	}
}

// RemovedMembers returns the removed IDs of the "members" edge to the PortfolioMember entity.
func (m *PortfolioMutation) RemovedMembersIDs() (ids []int) {
	for id := range m.removedmembers {
		ids = append(ids, id)
	}
	return
}

// MembersIDs returns the "members" edge IDs in the mutation.
func (m *PortfolioMutation) MembersIDs() (ids []int) {
	for id := range m.members {
		ids = append(ids, id)
	}
	return
}

// ResetMembers resets all changes to the "members" edge.
func (m *PortfolioMutation) ResetMembers() {
	m.members = nil
	m.clearedmembers = false
	m.removedmembers = nil
}

// Where appends a list predicates to the PortfolioMutation builder.
func (m *PortfolioMutation) Where(ps ...predicate.Portfolio) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PortfolioMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PortfolioMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Portfolio, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PortfolioMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PortfolioMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Portfolio).
func (m *PortfolioMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PortfolioMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, portfolio.FieldName)
	}
	if m.creator_agent_id != nil {
		fields = append(fields, portfolio.FieldCreatorAgentID)
	}
	if m.status != nil {
		fields = append(fields, portfolio.FieldStatus)
	}
	if m.governance_policy != nil {
		fields = append(fields, portfolio.FieldGovernancePolicy)
	}
	if m.aggregate != nil {
		fields = append(fields, portfolio.FieldAggregate)
	}
	if m.created_at != nil {
		fields = append(fields, portfolio.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, portfolio.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PortfolioMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case portfolio.FieldName:
		return m.Name()
	case portfolio.FieldCreatorAgentID:
		return m.CreatorAgentID()
	case portfolio.FieldStatus:
		return m.Status()
	case portfolio.FieldGovernancePolicy:
		return m.GovernancePolicy()
	case portfolio.FieldAggregate:
		return m.Aggregate()
	case portfolio.FieldCreatedAt:
		return m.CreatedAt()
	case portfolio.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PortfolioMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case portfolio.FieldName:
		return m.OldName(ctx)
	case portfolio.FieldCreatorAgentID:
		return m.OldCreatorAgentID(ctx)
	case portfolio.FieldStatus:
		return m.OldStatus(ctx)
	case portfolio.FieldGovernancePolicy:
		return m.OldGovernancePolicy(ctx)
	case portfolio.FieldAggregate:
		return m.OldAggregate(ctx)
	case portfolio.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case portfolio.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Portfolio field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PortfolioMutation) SetField(name string, value ent.Value) error {
	switch name {
	case portfolio.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case portfolio.FieldCreatorAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatorAgentID(v)
		return nil
	case portfolio.FieldStatus:
		v, ok := value.(portfolio.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case portfolio.FieldGovernancePolicy:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGovernancePolicy(v)
		return nil
	case portfolio.FieldAggregate:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAggregate(v)
		return nil
	case portfolio.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case portfolio.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Portfolio field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PortfolioMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PortfolioMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PortfolioMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Portfolio numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PortfolioMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(portfolio.FieldGovernancePolicy) {
		fields = append(fields, portfolio.FieldGovernancePolicy)
	}
	if m.FieldCleared(portfolio.FieldAggregate) {
		fields = append(fields, portfolio.FieldAggregate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PortfolioMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PortfolioMutation) ClearField(name string) error {
	switch name {
	case portfolio.FieldGovernancePolicy:
		m.ClearGovernancePolicy()
		return nil
	case portfolio.FieldAggregate:
		m.ClearAggregate()
		return nil
	}
	return fmt.Errorf("unknown Portfolio nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PortfolioMutation) ResetField(name string) error {
	switch name {
	case portfolio.FieldName:
		m.ResetName()
		return nil
	case portfolio.FieldCreatorAgentID:
		m.ResetCreatorAgentID()
		return nil
	case portfolio.FieldStatus:
		m.ResetStatus()
		return nil
	case portfolio.FieldGovernancePolicy:
		m.ResetGovernancePolicy()
		return nil
	case portfolio.FieldAggregate:
		m.ResetAggregate()
		return nil
	case portfolio.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case portfolio.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Portfolio field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PortfolioMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.members != nil {
		edges = append(edges, portfolio.EdgeMembers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PortfolioMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case portfolio.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.members))
		for id := range m.members {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PortfolioMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmembers != nil {
		edges = append(edges, portfolio.EdgeMembers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PortfolioMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case portfolio.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.removedmembers))
		for id := range m.removedmembers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PortfolioMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmembers {
		edges = append(edges, portfolio.EdgeMembers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PortfolioMutation) EdgeCleared(name string) bool {
	switch name {
	case portfolio.EdgeMembers:
		return m.clearedmembers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PortfolioMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Portfolio unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PortfolioMutation) ResetEdge(name string) error {
	switch name {
	case portfolio.EdgeMembers:
		m.ResetMembers()
		return nil
	}
	return fmt.Errorf("unknown Portfolio edge %s", name)
}

// PortfolioMemberMutation represents an operation that mutates the PortfolioMember nodes in the graph.
type PortfolioMemberMutation struct {
	config
	op               Op
	typ              string
	id               *int
	role             *portfoliomember.Role
	priority         *int
	addpriority      *int
	added_at         *time.Time
	clearedFields    map[string]struct{}
	portfolio        *string
	clearedportfolio bool
	intent           *string
	clearedintent    bool
	done             bool
	oldValue         func(context.Context) (*PortfolioMember, error)
	predicates       []predicate.PortfolioMember
}

var _ ent.Mutation = (*PortfolioMemberMutation)(nil)

// portfoliomemberOption allows management of the mutation configuration using functional options.
type portfoliomemberOption func(*PortfolioMemberMutation)

// newPortfolioMemberMutation creates new mutation for the PortfolioMember entity.
func newPortfolioMemberMutation(c config, op Op, opts ...portfoliomemberOption) *PortfolioMemberMutation {
	m := &PortfolioMemberMutation{
		config:        c,
		op:            op,
		typ:           TypePortfolioMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPortfolioMemberID sets the ID field of the mutation.
func withPortfolioMemberID(id int) portfoliomemberOption {
	return func(m *PortfolioMemberMutation) {
		var (
			err   error
			once  sync.Once
			value *PortfolioMember
		)
		m.oldValue = func(ctx context.Context) (*PortfolioMember, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PortfolioMember.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPortfolioMember sets the old PortfolioMember of the mutation.
func withPortfolioMember(node *PortfolioMember) portfoliomemberOption {
	return func(m *PortfolioMemberMutation) {
		m.oldValue = func(context.Context) (*PortfolioMember, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PortfolioMemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PortfolioMemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PortfolioMemberMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PortfolioMemberMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PortfolioMember.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPortfolioID sets the "portfolio_id" field.
func (m *PortfolioMemberMutation) SetPortfolioID(s string) {
	m.portfolio = &s
}

// PortfolioID returns the value of the "portfolio_id" field in the mutation.
func (m *PortfolioMemberMutation) PortfolioID() (r string, exists bool) {
	v := m.portfolio
	if v == nil {
		return
	}
	return *v, true
}

// OldPortfolioID returns the old "portfolio_id" field's value of the PortfolioMember entity.
// If the PortfolioMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMemberMutation) OldPortfolioID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPortfolioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPortfolioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPortfolioID: %w", err)
	}
	return oldValue.PortfolioID, nil
}

// ResetPortfolioID resets all changes to the "portfolio_id" field.
func (m *PortfolioMemberMutation) ResetPortfolioID() {
	m.portfolio = nil
}

// SetIntentID sets the "intent_id" field.
func (m *PortfolioMemberMutation) SetIntentID(s string) {
	m.intent = &s
}

// IntentID returns the value of the "intent_id" field in the mutation.
func (m *PortfolioMemberMutation) IntentID() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentID returns the old "intent_id" field's value of the PortfolioMember entity.
// If the PortfolioMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMemberMutation) OldIntentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentID: %w", err)
	}
	return oldValue.IntentID, nil
}

// ResetIntentID resets all changes to the "intent_id" field.
func (m *PortfolioMemberMutation) ResetIntentID() {
	m.intent = nil
}

// SetRole sets the "role" field.
func (m *PortfolioMemberMutation) SetRole(po portfoliomember.Role) {
	m.role = &po
}

// Role returns the value of the "role" field in the mutation.
func (m *PortfolioMemberMutation) Role() (r portfoliomember.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the PortfolioMember entity.
// If the PortfolioMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMemberMutation) OldRole(ctx context.Context) (v portfoliomember.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *PortfolioMemberMutation) ResetRole() {
	m.role = nil
}

// SetPriority sets the "priority" field.
func (m *PortfolioMemberMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *PortfolioMemberMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the PortfolioMember entity.
// If the PortfolioMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMemberMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *PortfolioMemberMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *PortfolioMemberMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *PortfolioMemberMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetAddedAt sets the "added_at" field.
func (m *PortfolioMemberMutation) SetAddedAt(t time.Time) {
	m.added_at = &t
}

// AddedAt returns the value of the "added_at" field in the mutation.
func (m *PortfolioMemberMutation) AddedAt() (r time.Time, exists bool) {
	v := m.added_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAddedAt returns the old "added_at" field's value of the PortfolioMember entity.
// If the PortfolioMember object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PortfolioMemberMutation) OldAddedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddedAt: %w", err)
	}
	return oldValue.AddedAt, nil
}

// ResetAddedAt resets all changes to the "added_at" field.
func (m *PortfolioMemberMutation) ResetAddedAt() {
	m.added_at = nil
}

// ClearPortfolio clears the "portfolio" edge to the Portfolio entity.
func (m *PortfolioMemberMutation) ClearPortfolio() {
	m.clearedportfolio = true
	m.clearedFields[portfoliomember.FieldPortfolioID] = struct{}{}
}

// PortfolioCleared reports if the "portfolio" edge to the Portfolio entity was cleared.
func (m *PortfolioMemberMutation) PortfolioCleared() bool {
	return m.clearedportfolio
}

// PortfolioIDs returns the "portfolio" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PortfolioID instead. It exists only for internal usage by the builders.
func (m *PortfolioMemberMutation) PortfolioIDs() (ids []string) {
	if id := m.portfolio; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPortfolio resets all changes to the "portfolio" edge.
func (m *PortfolioMemberMutation) ResetPortfolio() {
	m.portfolio = nil
	m.clearedportfolio = false
}

// ClearIntent clears the "intent" edge to the Intent entity.
func (m *PortfolioMemberMutation) ClearIntent() {
	m.clearedintent = true
	m.clearedFields[portfoliomember.FieldIntentID] = struct{}{}
}

// IntentCleared reports if the "intent" edge to the Intent entity was cleared.
func (m *PortfolioMemberMutation) IntentCleared() bool {
	return m.clearedintent
}

// IntentIDs returns the "intent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// IntentID instead. It exists only for internal usage by the builders.
func (m *PortfolioMemberMutation) IntentIDs() (ids []string) {
	if id := m.intent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetIntent resets all changes to the "intent" edge.
func (m *PortfolioMemberMutation) ResetIntent() {
	m.intent = nil
	m.clearedintent = false
}

// Where appends a list predicates to the PortfolioMemberMutation builder.
func (m *PortfolioMemberMutation) Where(ps ...predicate.PortfolioMember) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PortfolioMemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PortfolioMemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PortfolioMember, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PortfolioMemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PortfolioMemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PortfolioMember).
func (m *PortfolioMemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PortfolioMemberMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.portfolio != nil {
		fields = append(fields, portfoliomember.FieldPortfolioID)
	}
	if m.intent != nil {
		fields = append(fields, portfoliomember.FieldIntentID)
	}
	if m.role != nil {
		fields = append(fields, portfoliomember.FieldRole)
	}
	if m.priority != nil {
		fields = append(fields, portfoliomember.FieldPriority)
	}
	if m.added_at != nil {
		fields = append(fields, portfoliomember.FieldAddedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PortfolioMemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case portfoliomember.FieldPortfolioID:
		return m.PortfolioID()
	case portfoliomember.FieldIntentID:
		return m.IntentID()
	case portfoliomember.FieldRole:
		return m.Role()
	case portfoliomember.FieldPriority:
		return m.Priority()
	case portfoliomember.FieldAddedAt:
		return m.AddedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PortfolioMemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case portfoliomember.FieldPortfolioID:
		return m.OldPortfolioID(ctx)
	case portfoliomember.FieldIntentID:
		return m.OldIntentID(ctx)
	case portfoliomember.FieldRole:
		return m.OldRole(ctx)
	case portfoliomember.FieldPriority:
		return m.OldPriority(ctx)
	case portfoliomember.FieldAddedAt:
		return m.OldAddedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PortfolioMember field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PortfolioMemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case portfoliomember.FieldPortfolioID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPortfolioID(v)
		return nil
	case portfoliomember.FieldIntentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentID(v)
		return nil
	case portfoliomember.FieldRole:
		v, ok := value.(portfoliomember.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case portfoliomember.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case portfoliomember.FieldAddedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PortfolioMember field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PortfolioMemberMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, portfoliomember.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PortfolioMemberMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case portfoliomember.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PortfolioMemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	case portfoliomember.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown PortfolioMember numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PortfolioMemberMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PortfolioMemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PortfolioMemberMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PortfolioMember nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PortfolioMemberMutation) ResetField(name string) error {
	switch name {
	case portfoliomember.FieldPortfolioID:
		m.ResetPortfolioID()
		return nil
	case portfoliomember.FieldIntentID:
		m.ResetIntentID()
		return nil
	case portfoliomember.FieldRole:
		m.ResetRole()
		return nil
	case portfoliomember.FieldPriority:
		m.ResetPriority()
		return nil
	case portfoliomember.FieldAddedAt:
		m.ResetAddedAt()
		return nil
	}
	return fmt.Errorf("unknown PortfolioMember field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PortfolioMemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.portfolio != nil {
		edges = append(edges, portfoliomember.EdgePortfolio)
	}
	if m.intent != nil {
		edges = append(edges, portfoliomember.EdgeIntent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PortfolioMemberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case portfoliomember.EdgePortfolio:
		if id := m.portfolio; id != nil {
			return []ent.Value{*id}
		}
	case portfoliomember.EdgeIntent:
		if id := m.intent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PortfolioMemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PortfolioMemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PortfolioMemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedportfolio {
		edges = append(edges, portfoliomember.EdgePortfolio)
	}
	if m.clearedintent {
		edges = append(edges, portfoliomember.EdgeIntent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PortfolioMemberMutation) EdgeCleared(name string) bool {
	switch name {
	case portfoliomember.EdgePortfolio:
		return m.clearedportfolio
	case portfoliomember.EdgeIntent:
		return m.clearedintent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PortfolioMemberMutation) ClearEdge(name string) error {
	switch name {
	case portfoliomember.EdgePortfolio:
		m.ClearPortfolio()
		return nil
	case portfoliomember.EdgeIntent:
		m.ClearIntent()
		return nil
	}
	return fmt.Errorf("unknown PortfolioMember unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PortfolioMemberMutation) ResetEdge(name string) error {
	switch name {
	case portfoliomember.EdgePortfolio:
		m.ResetPortfolio()
		return nil
	case portfoliomember.EdgeIntent:
		m.ResetIntent()
		return nil
	}
	return fmt.Errorf("unknown PortfolioMember edge %s", name)
}

// ToolDefinitionMutation represents an operation that mutates the ToolDefinition nodes in the graph.
type ToolDefinitionMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	adapter       *tooldefinition.Adapter
	description   *string
	_config       *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ToolDefinition, error)
	predicates    []predicate.ToolDefinition
}

var _ ent.Mutation = (*ToolDefinitionMutation)(nil)

// tooldefinitionOption allows management of the mutation configuration using functional options.
type tooldefinitionOption func(*ToolDefinitionMutation)

// newToolDefinitionMutation creates new mutation for the ToolDefinition entity.
func newToolDefinitionMutation(c config, op Op, opts ...tooldefinitionOption) *ToolDefinitionMutation {
	m := &ToolDefinitionMutation{
		config:        c,
		op:            op,
		typ:           TypeToolDefinition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolDefinitionID sets the ID field of the mutation.
func withToolDefinitionID(id int) tooldefinitionOption {
	return func(m *ToolDefinitionMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolDefinition
		)
		m.oldValue = func(ctx context.Context) (*ToolDefinition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolDefinition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolDefinition sets the old ToolDefinition of the mutation.
func withToolDefinition(node *ToolDefinition) tooldefinitionOption {
	return func(m *ToolDefinitionMutation) {
		m.oldValue = func(context.Context) (*ToolDefinition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolDefinitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolDefinitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolDefinitionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolDefinitionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolDefinition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ToolDefinitionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ToolDefinitionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ToolDefinition entity.
// If the ToolDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolDefinitionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ToolDefinitionMutation) ResetName() {
	m.name = nil
}

// SetAdapter sets the "adapter" field.
func (m *ToolDefinitionMutation) SetAdapter(t tooldefinition.Adapter) {
	m.adapter = &t
}

// Adapter returns the value of the "adapter" field in the mutation.
func (m *ToolDefinitionMutation) Adapter() (r tooldefinition.Adapter, exists bool) {
	v := m.adapter
	if v == nil {
		return
	}
	return *v, true
}

// OldAdapter returns the old "adapter" field's value of the ToolDefinition entity.
// If the ToolDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolDefinitionMutation) OldAdapter(ctx context.Context) (v tooldefinition.Adapter, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdapter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdapter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdapter: %w", err)
	}
	return oldValue.Adapter, nil
}

// ResetAdapter resets all changes to the "adapter" field.
func (m *ToolDefinitionMutation) ResetAdapter() {
	m.adapter = nil
}

// SetDescription sets the "description" field.
func (m *ToolDefinitionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ToolDefinitionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ToolDefinition entity.
// If the ToolDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolDefinitionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ToolDefinitionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[tooldefinition.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ToolDefinitionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[tooldefinition.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ToolDefinitionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, tooldefinition.FieldDescription)
}

// SetConfig sets the "config" field.
func (m *ToolDefinitionMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *ToolDefinitionMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the ToolDefinition entity.
// If the ToolDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolDefinitionMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ResetConfig resets all changes to the "config" field.
func (m *ToolDefinitionMutation) ResetConfig() {
	m._config = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolDefinitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolDefinitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolDefinition entity.
// If the ToolDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolDefinitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ToolDefinitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ToolDefinitionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ToolDefinitionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ToolDefinition entity.
// If the ToolDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolDefinitionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ToolDefinitionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ToolDefinitionMutation builder.
func (m *ToolDefinitionMutation) Where(ps ...predicate.ToolDefinition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolDefinitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolDefinitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolDefinition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolDefinitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolDefinitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolDefinition).
func (m *ToolDefinitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolDefinitionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, tooldefinition.FieldName)
	}
	if m.adapter != nil {
		fields = append(fields, tooldefinition.FieldAdapter)
	}
	if m.description != nil {
		fields = append(fields, tooldefinition.FieldDescription)
	}
	if m._config != nil {
		fields = append(fields, tooldefinition.FieldConfig)
	}
	if m.created_at != nil {
		fields = append(fields, tooldefinition.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tooldefinition.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolDefinitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tooldefinition.FieldName:
		return m.Name()
	case tooldefinition.FieldAdapter:
		return m.Adapter()
	case tooldefinition.FieldDescription:
		return m.Description()
	case tooldefinition.FieldConfig:
		return m.Config()
	case tooldefinition.FieldCreatedAt:
		return m.CreatedAt()
	case tooldefinition.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolDefinitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tooldefinition.FieldName:
		return m.OldName(ctx)
	case tooldefinition.FieldAdapter:
		return m.OldAdapter(ctx)
	case tooldefinition.FieldDescription:
		return m.OldDescription(ctx)
	case tooldefinition.FieldConfig:
		return m.OldConfig(ctx)
	case tooldefinition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tooldefinition.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolDefinition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolDefinitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tooldefinition.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tooldefinition.FieldAdapter:
		v, ok := value.(tooldefinition.Adapter)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdapter(v)
		return nil
	case tooldefinition.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case tooldefinition.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case tooldefinition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tooldefinition.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolDefinition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolDefinitionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolDefinitionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolDefinitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ToolDefinition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolDefinitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tooldefinition.FieldDescription) {
		fields = append(fields, tooldefinition.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolDefinitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolDefinitionMutation) ClearField(name string) error {
	switch name {
	case tooldefinition.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown ToolDefinition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolDefinitionMutation) ResetField(name string) error {
	switch name {
	case tooldefinition.FieldName:
		m.ResetName()
		return nil
	case tooldefinition.FieldAdapter:
		m.ResetAdapter()
		return nil
	case tooldefinition.FieldDescription:
		m.ResetDescription()
		return nil
	case tooldefinition.FieldConfig:
		m.ResetConfig()
		return nil
	case tooldefinition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tooldefinition.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolDefinition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolDefinitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolDefinitionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolDefinitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolDefinitionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolDefinitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolDefinitionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolDefinitionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ToolDefinition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolDefinitionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ToolDefinition edge %s", name)
}

// ToolGrantMutation represents an operation that mutates the ToolGrant nodes in the graph.
type ToolGrantMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	agent_id               *string
	tool_name              *string
	credential_id          *string
	allowed_hosts          *[]string
	appendallowed_hosts    []string
	rate_limit             *int
	addrate_limit          *int
	rate_window_seconds    *int
	addrate_window_seconds *int
	expires_at             *time.Time
	created_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*ToolGrant, error)
	predicates             []predicate.ToolGrant
}

var _ ent.Mutation = (*ToolGrantMutation)(nil)

// toolgrantOption allows management of the mutation configuration using functional options.
type toolgrantOption func(*ToolGrantMutation)

// newToolGrantMutation creates new mutation for the ToolGrant entity.
func newToolGrantMutation(c config, op Op, opts ...toolgrantOption) *ToolGrantMutation {
	m := &ToolGrantMutation{
		config:        c,
		op:            op,
		typ:           TypeToolGrant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolGrantID sets the ID field of the mutation.
func withToolGrantID(id string) toolgrantOption {
	return func(m *ToolGrantMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolGrant
		)
		m.oldValue = func(ctx context.Context) (*ToolGrant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolGrant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolGrant sets the old ToolGrant of the mutation.
func withToolGrant(node *ToolGrant) toolgrantOption {
	return func(m *ToolGrantMutation) {
		m.oldValue = func(context.Context) (*ToolGrant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolGrantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolGrantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolGrant entities.
func (m *ToolGrantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolGrantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolGrantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolGrant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *ToolGrantMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ToolGrantMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ToolGrant entity.
// If the ToolGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolGrantMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ToolGrantMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetToolName sets the "tool_name" field.
func (m *ToolGrantMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ToolGrantMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ToolGrant entity.
// If the ToolGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolGrantMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ToolGrantMutation) ResetToolName() {
	m.tool_name = nil
}

// SetCredentialID sets the "credential_id" field.
func (m *ToolGrantMutation) SetCredentialID(s string) {
	m.credential_id = &s
}

// CredentialID returns the value of the "credential_id" field in the mutation.
func (m *ToolGrantMutation) CredentialID() (r string, exists bool) {
	v := m.credential_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCredentialID returns the old "credential_id" field's value of the ToolGrant entity.
// If the ToolGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolGrantMutation) OldCredentialID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredentialID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredentialID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredentialID: %w", err)
	}
	return oldValue.CredentialID, nil
}

// ResetCredentialID resets all changes to the "credential_id" field.
func (m *ToolGrantMutation) ResetCredentialID() {
	m.credential_id = nil
}

// SetAllowedHosts sets the "allowed_hosts" field.
func (m *ToolGrantMutation) SetAllowedHosts(s []string) {
	m.allowed_hosts = &s
	m.appendallowed_hosts = nil
}

// AllowedHosts returns the value of the "allowed_hosts" field in the mutation.
func (m *ToolGrantMutation) AllowedHosts() (r []string, exists bool) {
	v := m.allowed_hosts
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowedHosts returns the old "allowed_hosts" field's value of the ToolGrant entity.
// If the ToolGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolGrantMutation) OldAllowedHosts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowedHosts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowedHosts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowedHosts: %w", err)
	}
	return oldValue.AllowedHosts, nil
}

// AppendAllowedHosts adds s to the "allowed_hosts" field.
func (m *ToolGrantMutation) AppendAllowedHosts(s []string) {
	m.appendallowed_hosts = append(m.appendallowed_hosts, s...)
}

// AppendedAllowedHosts returns the list of values that were appended to the "allowed_hosts" field in this mutation.
func (m *ToolGrantMutation) AppendedAllowedHosts() ([]string, bool) {
	if len(m.appendallowed_hosts) == 0 {
		return nil, false
	}
	return m.appendallowed_hosts, true
}

// ClearAllowedHosts clears the value of the "allowed_hosts" field.
func (m *ToolGrantMutation) ClearAllowedHosts() {
	m.allowed_hosts = nil
	m.appendallowed_hosts = nil
	m.clearedFields[toolgrant.FieldAllowedHosts] = struct{}{}
}

// AllowedHostsCleared returns if the "allowed_hosts" field was cleared in this mutation.
func (m *ToolGrantMutation) AllowedHostsCleared() bool {
	_, ok := m.clearedFields[toolgrant.FieldAllowedHosts]
	return ok
}

// ResetAllowedHosts resets all changes to the "allowed_hosts" field.
func (m *ToolGrantMutation) ResetAllowedHosts() {
	m.allowed_hosts = nil
	m.appendallowed_hosts = nil
	delete(m.clearedFields, toolgrant.FieldAllowedHosts)
}

// SetRateLimit sets the "rate_limit" field.
func (m *ToolGrantMutation) SetRateLimit(i int) {
	m.rate_limit = &i
	m.addrate_limit = nil
}

// RateLimit returns the value of the "rate_limit" field in the mutation.
func (m *ToolGrantMutation) RateLimit() (r int, exists bool) {
	v := m.rate_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldRateLimit returns the old "rate_limit" field's value of the ToolGrant entity.
// If the ToolGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolGrantMutation) OldRateLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateLimit: %w", err)
	}
	return oldValue.RateLimit, nil
}

// AddRateLimit adds i to the "rate_limit" field.
func (m *ToolGrantMutation) AddRateLimit(i int) {
	if m.addrate_limit != nil {
		*m.addrate_limit += i
	} else {
		m.addrate_limit = &i
	}
}

// AddedRateLimit returns the value that was added to the "rate_limit" field in this mutation.
func (m *ToolGrantMutation) AddedRateLimit() (r int, exists bool) {
	v := m.addrate_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetRateLimit resets all changes to the "rate_limit" field.
func (m *ToolGrantMutation) ResetRateLimit() {
	m.rate_limit = nil
	m.addrate_limit = nil
}

// SetRateWindowSeconds sets the "rate_window_seconds" field.
func (m *ToolGrantMutation) SetRateWindowSeconds(i int) {
	m.rate_window_seconds = &i
	m.addrate_window_seconds = nil
}

// RateWindowSeconds returns the value of the "rate_window_seconds" field in the mutation.
func (m *ToolGrantMutation) RateWindowSeconds() (r int, exists bool) {
	v := m.rate_window_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldRateWindowSeconds returns the old "rate_window_seconds" field's value of the ToolGrant entity.
// If the ToolGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolGrantMutation) OldRateWindowSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateWindowSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateWindowSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateWindowSeconds: %w", err)
	}
	return oldValue.RateWindowSeconds, nil
}

// AddRateWindowSeconds adds i to the "rate_window_seconds" field.
func (m *ToolGrantMutation) AddRateWindowSeconds(i int) {
	if m.addrate_window_seconds != nil {
		*m.addrate_window_seconds += i
	} else {
		m.addrate_window_seconds = &i
	}
}

// AddedRateWindowSeconds returns the value that was added to the "rate_window_seconds" field in this mutation.
func (m *ToolGrantMutation) AddedRateWindowSeconds() (r int, exists bool) {
	v := m.addrate_window_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetRateWindowSeconds resets all changes to the "rate_window_seconds" field.
func (m *ToolGrantMutation) ResetRateWindowSeconds() {
	m.rate_window_seconds = nil
	m.addrate_window_seconds = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ToolGrantMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ToolGrantMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ToolGrant entity.
// If the ToolGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolGrantMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *ToolGrantMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[toolgrant.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *ToolGrantMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[toolgrant.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ToolGrantMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, toolgrant.FieldExpiresAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolGrantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolGrantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolGrant entity.
// If the ToolGrant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolGrantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ToolGrantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ToolGrantMutation builder.
func (m *ToolGrantMutation) Where(ps ...predicate.ToolGrant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolGrantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolGrantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolGrant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolGrantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolGrantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolGrant).
func (m *ToolGrantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolGrantMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.agent_id != nil {
		fields = append(fields, toolgrant.FieldAgentID)
	}
	if m.tool_name != nil {
		fields = append(fields, toolgrant.FieldToolName)
	}
	if m.credential_id != nil {
		fields = append(fields, toolgrant.FieldCredentialID)
	}
	if m.allowed_hosts != nil {
		fields = append(fields, toolgrant.FieldAllowedHosts)
	}
	if m.rate_limit != nil {
		fields = append(fields, toolgrant.FieldRateLimit)
	}
	if m.rate_window_seconds != nil {
		fields = append(fields, toolgrant.FieldRateWindowSeconds)
	}
	if m.expires_at != nil {
		fields = append(fields, toolgrant.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, toolgrant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolGrantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolgrant.FieldAgentID:
		return m.AgentID()
	case toolgrant.FieldToolName:
		return m.ToolName()
	case toolgrant.FieldCredentialID:
		return m.CredentialID()
	case toolgrant.FieldAllowedHosts:
		return m.AllowedHosts()
	case toolgrant.FieldRateLimit:
		return m.RateLimit()
	case toolgrant.FieldRateWindowSeconds:
		return m.RateWindowSeconds()
	case toolgrant.FieldExpiresAt:
		return m.ExpiresAt()
	case toolgrant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolGrantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolgrant.FieldAgentID:
		return m.OldAgentID(ctx)
	case toolgrant.FieldToolName:
		return m.OldToolName(ctx)
	case toolgrant.FieldCredentialID:
		return m.OldCredentialID(ctx)
	case toolgrant.FieldAllowedHosts:
		return m.OldAllowedHosts(ctx)
	case toolgrant.FieldRateLimit:
		return m.OldRateLimit(ctx)
	case toolgrant.FieldRateWindowSeconds:
		return m.OldRateWindowSeconds(ctx)
	case toolgrant.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case toolgrant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolGrant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolGrantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolgrant.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case toolgrant.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case toolgrant.FieldCredentialID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredentialID(v)
		return nil
	case toolgrant.FieldAllowedHosts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowedHosts(v)
		return nil
	case toolgrant.FieldRateLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateLimit(v)
		return nil
	case toolgrant.FieldRateWindowSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateWindowSeconds(v)
		return nil
	case toolgrant.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case toolgrant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolGrant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolGrantMutation) AddedFields() []string {
	var fields []string
	if m.addrate_limit != nil {
		fields = append(fields, toolgrant.FieldRateLimit)
	}
	if m.addrate_window_seconds != nil {
		fields = append(fields, toolgrant.FieldRateWindowSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolGrantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toolgrant.FieldRateLimit:
		return m.AddedRateLimit()
	case toolgrant.FieldRateWindowSeconds:
		return m.AddedRateWindowSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolGrantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toolgrant.FieldRateLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRateLimit(v)
		return nil
	case toolgrant.FieldRateWindowSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRateWindowSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown ToolGrant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolGrantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolgrant.FieldAllowedHosts) {
		fields = append(fields, toolgrant.FieldAllowedHosts)
	}
	if m.FieldCleared(toolgrant.FieldExpiresAt) {
		fields = append(fields, toolgrant.FieldExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolGrantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolGrantMutation) ClearField(name string) error {
	switch name {
	case toolgrant.FieldAllowedHosts:
		m.ClearAllowedHosts()
		return nil
	case toolgrant.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown ToolGrant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolGrantMutation) ResetField(name string) error {
	switch name {
	case toolgrant.FieldAgentID:
		m.ResetAgentID()
		return nil
	case toolgrant.FieldToolName:
		m.ResetToolName()
		return nil
	case toolgrant.FieldCredentialID:
		m.ResetCredentialID()
		return nil
	case toolgrant.FieldAllowedHosts:
		m.ResetAllowedHosts()
		return nil
	case toolgrant.FieldRateLimit:
		m.ResetRateLimit()
		return nil
	case toolgrant.FieldRateWindowSeconds:
		m.ResetRateWindowSeconds()
		return nil
	case toolgrant.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case toolgrant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolGrant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolGrantMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolGrantMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolGrantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolGrantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolGrantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolGrantMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolGrantMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ToolGrant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolGrantMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ToolGrant edge %s", name)
}
