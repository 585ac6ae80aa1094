package toolbroker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	t.Run("allows up to the limit then rejects", func(t *testing.T) {
		rl := newRateLimiter()
		for i := 0; i < 3; i++ {
			assert.True(t, rl.allow("grant-1", 3, time.Minute), "call %d should fit", i+1)
		}
		assert.False(t, rl.allow("grant-1", 3, time.Minute))
	})

	t.Run("grants are tracked independently", func(t *testing.T) {
		rl := newRateLimiter()
		assert.True(t, rl.allow("grant-a", 1, time.Minute))
		assert.False(t, rl.allow("grant-a", 1, time.Minute))
		assert.True(t, rl.allow("grant-b", 1, time.Minute))
	})

	t.Run("window expiry frees capacity", func(t *testing.T) {
		rl := newRateLimiter()
		assert.True(t, rl.allow("grant-1", 1, 20*time.Millisecond))
		assert.False(t, rl.allow("grant-1", 1, 20*time.Millisecond))

		time.Sleep(30 * time.Millisecond)
		assert.True(t, rl.allow("grant-1", 1, 20*time.Millisecond))
	})

	t.Run("non-positive limit disables limiting", func(t *testing.T) {
		rl := newRateLimiter()
		for i := 0; i < 100; i++ {
			assert.True(t, rl.allow("grant-1", 0, time.Minute))
			assert.True(t, rl.allow("grant-1", -5, time.Minute))
		}
	})
}
