package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeState(t *testing.T) {
	t.Run("patch keys replace and unreferenced keys survive", func(t *testing.T) {
		current := StateDocument{"a": 1, "b": "keep", "c": true}
		patch := StateDocument{"a": 2, "d": "new"}

		merged := MergeState(current, patch)

		assert.Equal(t, StateDocument{"a": 2, "b": "keep", "c": true, "d": "new"}, merged)
	})

	t.Run("nested values are replaced wholesale", func(t *testing.T) {
		current := StateDocument{"nested": map[string]any{"x": 1, "y": 2}}
		patch := StateDocument{"nested": map[string]any{"z": 3}}

		merged := MergeState(current, patch)

		assert.Equal(t, map[string]any{"z": 3}, merged["nested"])
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		current := StateDocument{"a": 1}
		patch := StateDocument{"a": 2}

		_ = MergeState(current, patch)

		assert.Equal(t, 1, current["a"])
		assert.Equal(t, 2, patch["a"])
	})

	t.Run("nil inputs yield empty document", func(t *testing.T) {
		assert.Empty(t, MergeState(nil, nil))
		assert.Equal(t, StateDocument{"a": 1}, MergeState(nil, StateDocument{"a": 1}))
		assert.Equal(t, StateDocument{"a": 1}, MergeState(StateDocument{"a": 1}, nil))
	})
}
