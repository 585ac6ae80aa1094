package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openintent-io/openintent/ent/tooldefinition"
	testdb "github.com/openintent-io/openintent/test/database"
)

func newToolFixture(t *testing.T) *ToolService {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	db := testdb.NewTestClient(t)
	return NewToolService(db.Client)
}

func TestToolService_RegisterTool(t *testing.T) {
	tools := newToolFixture(t)
	ctx := context.Background()

	t.Run("registers and fetches by name", func(t *testing.T) {
		def, err := tools.RegisterTool(ctx, RegisterToolRequest{
			Name:    "github",
			Adapter: "rest",
			Config:  map[string]any{"base_url": "https://api.github.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, tooldefinition.AdapterRest, def.Adapter)

		fetched, err := tools.GetTool(ctx, "github")
		require.NoError(t, err)
		assert.Equal(t, "https://api.github.com", fetched.Config["base_url"])
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		_, err := tools.RegisterTool(ctx, RegisterToolRequest{Name: "github", Adapter: "rest"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("validates name and adapter", func(t *testing.T) {
		_, err := tools.RegisterTool(ctx, RegisterToolRequest{Adapter: "rest"})
		assert.True(t, IsValidationError(err))
		_, err = tools.RegisterTool(ctx, RegisterToolRequest{Name: "grpc-thing", Adapter: "grpc"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("listing orders by name", func(t *testing.T) {
		_, err := tools.RegisterTool(ctx, RegisterToolRequest{Name: "aviation-api", Adapter: "rest"})
		require.NoError(t, err)

		defs, err := tools.ListTools(ctx)
		require.NoError(t, err)
		require.Len(t, defs, 2)
		assert.Equal(t, "aviation-api", defs[0].Name)
		assert.Equal(t, "github", defs[1].Name)
	})

	t.Run("unknown tool is not found", func(t *testing.T) {
		_, err := tools.GetTool(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestToolService_Credentials(t *testing.T) {
	tools := newToolFixture(t)
	ctx := context.Background()

	t.Run("stores and rotates secrets", func(t *testing.T) {
		c, err := tools.CreateCredential(ctx, CreateCredentialRequest{
			AuthType: "api_key",
			Secret:   "sk-original",
		})
		require.NoError(t, err)

		require.NoError(t, tools.UpdateCredentialSecret(ctx, c.ID, "sk-rotated"))

		current, err := tools.GetCredential(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "sk-rotated", current.Secret)
	})

	t.Run("validates auth type and secret", func(t *testing.T) {
		_, err := tools.CreateCredential(ctx, CreateCredentialRequest{AuthType: "kerberos", Secret: "x"})
		assert.True(t, IsValidationError(err))
		_, err = tools.CreateCredential(ctx, CreateCredentialRequest{AuthType: "api_key"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rotating an unknown credential is not found", func(t *testing.T) {
		assert.ErrorIs(t, tools.UpdateCredentialSecret(ctx, "nope", "x"), ErrNotFound)
	})
}

func TestToolService_Grants(t *testing.T) {
	tools := newToolFixture(t)
	ctx := context.Background()

	_, err := tools.RegisterTool(ctx, RegisterToolRequest{Name: "weather", Adapter: "rest"})
	require.NoError(t, err)
	cred, err := tools.CreateCredential(ctx, CreateCredentialRequest{AuthType: "api_key", Secret: "sk-w"})
	require.NoError(t, err)

	t.Run("grant round trip", func(t *testing.T) {
		expires := time.Now().Add(time.Hour)
		g, err := tools.CreateGrant(ctx, CreateGrantRequest{
			AgentID:           "agent-1",
			ToolName:          "weather",
			CredentialID:      cred.ID,
			AllowedHosts:      []string{"api.weather.test"},
			RateLimit:         10,
			RateWindowSeconds: 60,
			ExpiresAt:         &expires,
		})
		require.NoError(t, err)

		fetched, err := tools.GetGrant(ctx, "agent-1", "weather")
		require.NoError(t, err)
		assert.Equal(t, g.ID, fetched.ID)
		assert.Equal(t, []string{"api.weather.test"}, fetched.AllowedHosts)
		assert.Equal(t, 10, fetched.RateLimit)
	})

	t.Run("one grant per agent and tool", func(t *testing.T) {
		_, err := tools.CreateGrant(ctx, CreateGrantRequest{
			AgentID: "agent-1", ToolName: "weather", CredentialID: cred.ID,
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("grant requires an existing tool and credential", func(t *testing.T) {
		_, err := tools.CreateGrant(ctx, CreateGrantRequest{
			AgentID: "agent-2", ToolName: "nope", CredentialID: cred.ID,
		})
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = tools.CreateGrant(ctx, CreateGrantRequest{
			AgentID: "agent-2", ToolName: "weather", CredentialID: "nope",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("revoked grants stop resolving", func(t *testing.T) {
		g, err := tools.GetGrant(ctx, "agent-1", "weather")
		require.NoError(t, err)
		require.NoError(t, tools.RevokeGrant(ctx, g.ID))

		_, err = tools.GetGrant(ctx, "agent-1", "weather")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, tools.RevokeGrant(ctx, g.ID), ErrNotFound)
	})
}
