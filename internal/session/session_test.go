package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAbsentKey(t *testing.T) {
	store := NewMemoryStore()

	val, ok, err := store.Get(context.Background(), "sid", KeyCart)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestMemoryStoreSetReplacesWholeValue(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sid", KeyCart, `[{"productId":"p1"}]`))
	require.NoError(t, store.Set(ctx, "sid", KeyCart, `[]`))

	val, ok, err := store.Get(ctx, "sid", KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, val)
}

func TestMemoryStoreKeysAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sid", KeyLanguage, "ar"))
	require.NoError(t, store.Set(ctx, "sid", KeyWishlist, `["p1"]`))

	lang, ok, err := store.Get(ctx, "sid", KeyLanguage)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ar", lang)

	_, ok, err = store.Get(ctx, "other-sid", KeyLanguage)
	require.NoError(t, err)
	assert.False(t, ok, "sessions must not see each other's state")
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sid", KeyAdminAuth, `{"isAdmin":true}`))
	require.NoError(t, store.Delete(ctx, "sid", KeyAdminAuth))

	_, ok, err := store.Get(ctx, "sid", KeyAdminAuth)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is fine.
	require.NoError(t, store.Delete(ctx, "sid", KeyAdminAuth))
}
