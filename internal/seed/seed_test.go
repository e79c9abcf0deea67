package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"secretarium/internal/domain/catalog"
	"secretarium/internal/domain/resource"
	"secretarium/internal/infrastructure/kv/memory"
)

func TestSeeder_Run(t *testing.T) {
	store := memory.New()
	seeder := New(store, slog.Default())
	ctx := context.Background()

	created, err := seeder.Run(ctx)

	require.NoError(t, err)
	// Four workspaces plus one record of every non-workspace kind.
	assert.Len(t, created, 9)

	svc := resource.NewService(store.Collection(catalog.Secrets.Collection), catalog.Secrets.Config, slog.Default())
	result, err := svc.List(ctx, resource.ListParams{})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Acme Dashboard", result.Data[0]["name"])
	assert.Equal(t, resource.Placeholder, result.Data[0]["password"])
	assert.NotEmpty(t, result.Data[0]["workspaceId"])
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	first, err := New(store, slog.Default()).Run(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := New(store, slog.Default()).Run(ctx)
	require.NoError(t, err)
	assert.Empty(t, second)
}
