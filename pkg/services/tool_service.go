package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openintent-io/openintent/ent"
	"github.com/openintent-io/openintent/ent/credential"
	"github.com/openintent-io/openintent/ent/tooldefinition"
	"github.com/openintent-io/openintent/ent/toolgrant"
)

// ToolService manages tool definitions, credentials, and per-agent
// grants. The broker consults it on every invocation.
type ToolService struct {
	client *ent.Client
}

// NewToolService creates a new ToolService.
func NewToolService(client *ent.Client) *ToolService {
	return &ToolService{client: client}
}

// RegisterToolRequest defines a tool.
type RegisterToolRequest struct {
	Name        string         `json:"name"`
	Adapter     string         `json:"adapter"`
	Description string         `json:"description,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
}

// RegisterTool creates a tool definition.
func (s *ToolService) RegisterTool(ctx context.Context, req RegisterToolRequest) (*ent.ToolDefinition, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	adapter := tooldefinition.Adapter(req.Adapter)
	if err := tooldefinition.AdapterValidator(adapter); err != nil {
		return nil, NewValidationError("adapter", "unknown adapter "+req.Adapter)
	}

	builder := s.client.ToolDefinition.Create().
		SetName(req.Name).
		SetAdapter(adapter).
		SetDescription(req.Description)
	if req.Config != nil {
		builder.SetConfig(req.Config)
	}

	def, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to register tool: %w", err)
	}
	return def, nil
}

// GetTool returns a tool definition by name.
func (s *ToolService) GetTool(ctx context.Context, name string) (*ent.ToolDefinition, error) {
	def, err := s.client.ToolDefinition.Query().
		Where(tooldefinition.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query tool: %w", err)
	}
	return def, nil
}

// ListTools returns all tool definitions.
func (s *ToolService) ListTools(ctx context.Context) ([]*ent.ToolDefinition, error) {
	defs, err := s.client.ToolDefinition.Query().
		Order(ent.Asc(tooldefinition.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return defs, nil
}

// CreateCredentialRequest stores an upstream credential.
type CreateCredentialRequest struct {
	AuthType string         `json:"auth_type"`
	Secret   string         `json:"secret"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// CreateCredential stores a credential. The secret is write-only: reads
// outside the broker never return it.
func (s *ToolService) CreateCredential(ctx context.Context, req CreateCredentialRequest) (*ent.Credential, error) {
	authType := credential.AuthType(req.AuthType)
	if err := credential.AuthTypeValidator(authType); err != nil {
		return nil, NewValidationError("auth_type", "unknown auth type "+req.AuthType)
	}
	if req.Secret == "" {
		return nil, NewValidationError("secret", "required")
	}

	builder := s.client.Credential.Create().
		SetID(uuid.New().String()).
		SetAuthType(authType).
		SetSecret(req.Secret)
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	c, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}
	return c, nil
}

// CreateGrantRequest authorizes an agent for a tool.
type CreateGrantRequest struct {
	AgentID           string     `json:"agent_id"`
	ToolName          string     `json:"tool_name"`
	CredentialID      string     `json:"credential_id"`
	AllowedHosts      []string   `json:"allowed_hosts,omitempty"`
	RateLimit         int        `json:"rate_limit,omitempty"`
	RateWindowSeconds int        `json:"rate_window_seconds,omitempty"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
}

// CreateGrant authorizes an agent to invoke a tool with a credential.
func (s *ToolService) CreateGrant(ctx context.Context, req CreateGrantRequest) (*ent.ToolGrant, error) {
	if req.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if req.ToolName == "" {
		return nil, NewValidationError("tool_name", "required")
	}
	if req.CredentialID == "" {
		return nil, NewValidationError("credential_id", "required")
	}

	if _, err := s.GetTool(ctx, req.ToolName); err != nil {
		return nil, err
	}
	exists, err := s.client.Credential.Query().
		Where(credential.IDEQ(req.CredentialID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query credential: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("credential %s: %w", req.CredentialID, ErrNotFound)
	}

	builder := s.client.ToolGrant.Create().
		SetID(uuid.New().String()).
		SetAgentID(req.AgentID).
		SetToolName(req.ToolName).
		SetCredentialID(req.CredentialID)
	if len(req.AllowedHosts) > 0 {
		builder.SetAllowedHosts(req.AllowedHosts)
	}
	if req.RateLimit > 0 {
		builder.SetRateLimit(req.RateLimit)
	}
	if req.RateWindowSeconds > 0 {
		builder.SetRateWindowSeconds(req.RateWindowSeconds)
	}
	if req.ExpiresAt != nil {
		builder.SetExpiresAt(*req.ExpiresAt)
	}

	g, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create grant: %w", err)
	}
	return g, nil
}

// GetGrant returns the grant for an agent and tool pair.
func (s *ToolService) GetGrant(ctx context.Context, agentID, toolName string) (*ent.ToolGrant, error) {
	g, err := s.client.ToolGrant.Query().
		Where(
			toolgrant.AgentIDEQ(agentID),
			toolgrant.ToolNameEQ(toolName),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query grant: %w", err)
	}
	return g, nil
}

// RevokeGrant removes a grant.
func (s *ToolService) RevokeGrant(ctx context.Context, grantID string) error {
	err := s.client.ToolGrant.DeleteOneID(grantID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to revoke grant: %w", err)
	}
	return nil
}

// GetCredential returns a credential including the secret. Broker use
// only; never expose through the API.
func (s *ToolService) GetCredential(ctx context.Context, id string) (*ent.Credential, error) {
	c, err := s.client.Credential.Query().
		Where(credential.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query credential: %w", err)
	}
	return c, nil
}

// UpdateCredentialSecret replaces a credential's secret after an OAuth2
// refresh.
func (s *ToolService) UpdateCredentialSecret(ctx context.Context, id, secret string) error {
	err := s.client.Credential.UpdateOneID(id).
		SetSecret(secret).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update credential: %w", err)
	}
	return nil
}
