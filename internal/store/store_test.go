package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStores returns one of each Store implementation so the contract
// tests run against both.
func newStores(t *testing.T) map[string]Store {
	t.Helper()

	sqliteStore, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		"sqlite": sqliteStore,
		"memory": NewMemory(),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put("tasks", []byte(`[{"id":"1"}]`)))

			value, ok, err := s.Get("tasks")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":"1"}]`, string(value))
		})
	}
}

func TestStoreGetMissingKey(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			value, ok, err := s.Get("absent")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, value)
		})
	}
}

func TestStorePutReplaces(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put("tasks", []byte("first")))
			require.NoError(t, s.Put("tasks", []byte("second")))

			value, ok, err := s.Get("tasks")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "second", string(value))
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put("user", []byte(`{"identifier":"a"}`)))
			require.NoError(t, s.Delete("user"))

			_, ok, err := s.Get("user")
			require.NoError(t, err)
			assert.False(t, ok)

			// Deleting again is a no-op, not an error.
			assert.NoError(t, s.Delete("user"))
		})
	}
}

func TestStoreKeysAreIndependent(t *testing.T) {
	for name, s := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put("tasks", []byte("task blob")))
			require.NoError(t, s.Put("user", []byte("session blob")))

			require.NoError(t, s.Delete("user"))

			value, ok, err := s.Get("tasks")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "task blob", string(value))
		})
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nelo.db")

	first, err := New(path)
	require.NoError(t, err)
	require.NoError(t, first.Put("tasks", []byte("persisted")))
	require.NoError(t, first.Close())

	second, err := New(path)
	require.NoError(t, err)
	defer second.Close()

	value, ok, err := second.Get("tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", string(value))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemory()
	original := []byte("value")
	require.NoError(t, s.Put("k", original))

	original[0] = 'X'

	value, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value", string(value))
}
