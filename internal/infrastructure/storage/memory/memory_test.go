package memory

import (
	"context"
	"testing"

	"safewatch/internal/infrastructure/storage"
	"safewatch/internal/infrastructure/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_Contract(t *testing.T) {
	storagetest.Run(t, New())
}

func TestStorage_Closed(t *testing.T) {
	s := New()
	require.NoError(t, s.Close())

	_, _, err := s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, storage.ErrClosed)
	assert.ErrorIs(t, s.Set(context.Background(), "k", "v"), storage.ErrClosed)
}

func TestStorage_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, New().Set(ctx, "k", "v"), context.Canceled)
}
