package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openintent-io/openintent/ent"
	"github.com/openintent-io/openintent/ent/agent"
)

// AgentService manages agent identities and API key authentication. Keys
// are stored as SHA-256 hashes; the plaintext is returned exactly once at
// registration.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// RegisteredAgent pairs a created agent with its one-time plaintext key.
type RegisteredAgent struct {
	Agent  *ent.Agent `json:"agent"`
	APIKey string     `json:"api_key"`
}

// Register creates an agent and issues its API key.
func (s *AgentService) Register(ctx context.Context, displayName, role string) (*RegisteredAgent, error) {
	if displayName == "" {
		return nil, NewValidationError("display_name", "required")
	}
	r := agent.Role(role)
	if role == "" {
		r = agent.RoleAgent
	}
	if err := agent.RoleValidator(r); err != nil {
		return nil, NewValidationError("role", "unknown role "+role)
	}

	key, err := generateAPIKey()
	if err != nil {
		return nil, err
	}

	created, err := s.client.Agent.Create().
		SetID(uuid.New().String()).
		SetDisplayName(displayName).
		SetRole(r).
		SetKeyHash(HashAPIKey(key)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	return &RegisteredAgent{Agent: created, APIKey: key}, nil
}

// ResolveKey authenticates an API key and returns the owning agent.
func (s *AgentService) ResolveKey(ctx context.Context, apiKey string) (*ent.Agent, error) {
	if apiKey == "" {
		return nil, ErrNotFound
	}

	a, err := s.client.Agent.Query().
		Where(agent.KeyHashEQ(HashAPIKey(apiKey))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query agent: %w", err)
	}

	// last_seen_at is advisory; failures do not block authentication.
	if err := s.client.Agent.UpdateOneID(a.ID).
		SetLastSeenAt(time.Now()).
		Exec(ctx); err != nil {
		slog.Debug("Failed to update agent last_seen_at", "agent_id", a.ID, "error", err)
	}
	return a, nil
}

// EnsureBootstrapAdmin seeds an admin agent for the given key so a fresh
// deployment can authenticate before any agents exist. Idempotent: a key
// that already resolves to an agent is left alone, and an empty key is a
// no-op.
func (s *AgentService) EnsureBootstrapAdmin(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	hash := HashAPIKey(key)
	exists, err := s.client.Agent.Query().
		Where(agent.KeyHashEQ(hash)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to query bootstrap agent: %w", err)
	}
	if exists {
		return nil
	}

	created, err := s.client.Agent.Create().
		SetID(uuid.New().String()).
		SetDisplayName("bootstrap-admin").
		SetRole(agent.RoleAdmin).
		SetKeyHash(hash).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create bootstrap agent: %w", err)
	}
	slog.Info("Seeded bootstrap admin agent", "agent_id", created.ID)
	return nil
}

// GetAgent returns an agent by ID.
func (s *AgentService) GetAgent(ctx context.Context, id string) (*ent.Agent, error) {
	a, err := s.client.Agent.Query().Where(agent.IDEQ(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query agent: %w", err)
	}
	return a, nil
}

// HashAPIKey returns the hex SHA-256 digest stored for an API key.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func generateAPIKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}
	return "oik_" + hex.EncodeToString(buf), nil
}
