package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetRemove(t *testing.T) {
	kv := NewMemory()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("k", "v1"))
	require.NoError(t, kv.Set("k", "v2"))

	v, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, kv.Remove("k"))
	_, ok, err = kv.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")

	kv, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set("shopping_cart", `[{"quantity":2}]`))
	require.NoError(t, kv.Set("language", "en"))
	require.NoError(t, kv.Remove("language"))
	require.NoError(t, kv.Close())

	// Reopen: a simulated process restart must see identical contents.
	kv, err = OpenSQLite(path)
	require.NoError(t, err)
	defer kv.Close()

	v, ok, err := kv.Get("shopping_cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"quantity":2}]`, v)

	_, ok, err = kv.Get("language")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLite_Upsert(t *testing.T) {
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	defer kv.Close()

	require.NoError(t, kv.Set("k", "a"))
	require.NoError(t, kv.Set("k", "b"))

	v, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite("")
	assert.Error(t, err)
}

func TestRedis_RoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set, skipping redis test")
	}

	kv, err := OpenRedis(addr, "", 0)
	require.NoError(t, err)
	defer kv.Close()

	require.NoError(t, kv.Set("test:kv", "v"))
	v, ok, err := kv.Get("test:kv")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, kv.Remove("test:kv"))
	_, ok, err = kv.Get("test:kv")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCartKeyFor(t *testing.T) {
	assert.Equal(t, KeyCart, CartKeyFor(""))
	assert.Equal(t, "cart_admin", CartKeyFor("admin"))
}
