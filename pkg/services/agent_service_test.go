package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openintent-io/openintent/ent/agent"
	testdb "github.com/openintent-io/openintent/test/database"
)

func newAgentFixture(t *testing.T) *AgentService {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	db := testdb.NewTestClient(t)
	return NewAgentService(db.Client)
}

func TestAgentService_Register(t *testing.T) {
	agents := newAgentFixture(t)
	ctx := context.Background()

	t.Run("issues a key and stores only its hash", func(t *testing.T) {
		registered, err := agents.Register(ctx, "planner", "operator")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(registered.APIKey, "oik_"))
		assert.Equal(t, agent.RoleOperator, registered.Agent.Role)
		assert.Equal(t, HashAPIKey(registered.APIKey), registered.Agent.KeyHash)
		assert.NotContains(t, registered.Agent.KeyHash, registered.APIKey)
	})

	t.Run("role defaults to agent", func(t *testing.T) {
		registered, err := agents.Register(ctx, "worker-7", "")
		require.NoError(t, err)
		assert.Equal(t, agent.RoleAgent, registered.Agent.Role)
	})

	t.Run("validates display name and role", func(t *testing.T) {
		_, err := agents.Register(ctx, "", "agent")
		assert.True(t, IsValidationError(err))
		_, err = agents.Register(ctx, "bad role", "superuser")
		assert.True(t, IsValidationError(err))
	})

	t.Run("keys are unique per agent", func(t *testing.T) {
		a, err := agents.Register(ctx, "a", "agent")
		require.NoError(t, err)
		b, err := agents.Register(ctx, "b", "agent")
		require.NoError(t, err)
		assert.NotEqual(t, a.APIKey, b.APIKey)
	})
}

func TestAgentService_EnsureBootstrapAdmin(t *testing.T) {
	agents := newAgentFixture(t)
	ctx := context.Background()

	t.Run("empty key is a no-op", func(t *testing.T) {
		require.NoError(t, agents.EnsureBootstrapAdmin(ctx, ""))
		_, err := agents.ResolveKey(ctx, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("seeds an admin that can authenticate", func(t *testing.T) {
		require.NoError(t, agents.EnsureBootstrapAdmin(ctx, "oik_bootstrap"))

		resolved, err := agents.ResolveKey(ctx, "oik_bootstrap")
		require.NoError(t, err)
		assert.Equal(t, agent.RoleAdmin, resolved.Role)
		assert.Equal(t, "bootstrap-admin", resolved.DisplayName)
	})

	t.Run("seeding is idempotent", func(t *testing.T) {
		first, err := agents.ResolveKey(ctx, "oik_bootstrap")
		require.NoError(t, err)

		require.NoError(t, agents.EnsureBootstrapAdmin(ctx, "oik_bootstrap"))

		again, err := agents.ResolveKey(ctx, "oik_bootstrap")
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)
	})
}

func TestAgentService_ResolveKey(t *testing.T) {
	agents := newAgentFixture(t)
	ctx := context.Background()

	registered, err := agents.Register(ctx, "resolver", "admin")
	require.NoError(t, err)

	t.Run("valid key resolves to the owner", func(t *testing.T) {
		resolved, err := agents.ResolveKey(ctx, registered.APIKey)
		require.NoError(t, err)
		assert.Equal(t, registered.Agent.ID, resolved.ID)
		assert.Equal(t, agent.RoleAdmin, resolved.Role)
	})

	t.Run("resolving updates last_seen_at", func(t *testing.T) {
		_, err := agents.ResolveKey(ctx, registered.APIKey)
		require.NoError(t, err)

		current, err := agents.GetAgent(ctx, registered.Agent.ID)
		require.NoError(t, err)
		assert.NotNil(t, current.LastSeenAt)
	})

	t.Run("unknown and empty keys are rejected", func(t *testing.T) {
		_, err := agents.ResolveKey(ctx, "oik_deadbeef")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = agents.ResolveKey(ctx, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
