package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secretarium/internal/infrastructure/kv"
)

func TestStore_PutGet(t *testing.T) {
	ctx := context.Background()
	store := New()
	col := store.Collection("secrets")

	require.NoError(t, col.Put(ctx, "a", []byte("one")))

	value, err := col.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), value)

	// Overwrite wins.
	require.NoError(t, col.Put(ctx, "a", []byte("two")))
	value, err = col.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), value)
}

func TestStore_GetMissing(t *testing.T) {
	store := New()
	col := store.Collection("secrets")

	_, err := col.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := New()
	col := store.Collection("secrets")

	require.NoError(t, col.Put(ctx, "a", []byte("one")))
	require.NoError(t, col.Delete(ctx, "a"))

	_, err := col.Get(ctx, "a")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	// Deleting an absent key is a no-op.
	assert.NoError(t, col.Delete(ctx, "a"))
}

func TestStore_CollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := New()

	require.NoError(t, store.Collection("secrets").Put(ctx, "a", []byte("one")))

	_, err := store.Collection("apiKeys").Get(ctx, "a")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_ForEach(t *testing.T) {
	ctx := context.Background()
	store := New()
	col := store.Collection("secrets")

	require.NoError(t, col.Put(ctx, "a", []byte("one")))
	require.NoError(t, col.Put(ctx, "b", []byte("two")))

	seen := map[string]string{}
	err := col.ForEach(ctx, func(key string, value []byte) error {
		seen[key] = string(value)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "one", "b": "two"}, seen)
}

func TestStore_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	store := New()
	col := store.Collection("secrets")

	original := []byte("one")
	require.NoError(t, col.Put(ctx, "a", original))
	original[0] = 'X'

	value, err := col.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), value)

	value[0] = 'Y'
	again, err := col.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), again)
}
