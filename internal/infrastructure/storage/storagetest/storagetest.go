// Package storagetest holds the behaviour every storage.KV driver must share.
package storagetest

import (
	"context"
	"testing"

	"safewatch/internal/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises kv against the storage.KV contract. kv must start empty.
func Run(t *testing.T, kv storage.KV) {
	t.Helper()
	ctx := context.Background()

	t.Run("absent key", func(t *testing.T) {
		v, ok, err := kv.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set and overwrite", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "k1", `[{"id":"1"}]`))
		require.NoError(t, kv.Set(ctx, "k1", `[{"id":"2"},{"id":"1"}]`))

		v, ok, err := kv.Get(ctx, "k1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"2"},{"id":"1"}]`, v)
	})

	t.Run("unicode survives", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "k2", "Perímetro Este - ñandú"))
		v, _, err := kv.Get(ctx, "k2")
		require.NoError(t, err)
		assert.Equal(t, "Perímetro Este - ñandú", v)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, kv.Delete(ctx, "k1", "k2", "never-set"))
		require.NoError(t, kv.Delete(ctx, "k1"))
		require.NoError(t, kv.Delete(ctx))

		_, ok, err := kv.Get(ctx, "k1")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
