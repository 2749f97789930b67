package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()

	sqlite, err := NewSQLite(filepath.Join(t.TempDir(), "data", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Backend{
		"sqlite": sqlite,
		"memory": NewMemory(),
	}
}

func TestBackendRoundTrip(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := backend.Get(RecordAgents)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, backend.Set(RecordAgents, `[{"id":1}]`))

			got, ok, err := backend.Get(RecordAgents)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `[{"id":1}]`, got)
		})
	}
}

func TestBackendSetReplacesWholeRecord(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, backend.Set(RecordUser, `{"id":1}`))
			require.NoError(t, backend.Set(RecordUser, `{"id":2}`))

			got, ok, err := backend.Get(RecordUser)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, `{"id":2}`, got)
		})
	}
}

func TestBackendDelete(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, backend.Set(RecordAPIKeys, `[]`))
			require.NoError(t, backend.Delete(RecordAPIKeys))

			_, ok, err := backend.Get(RecordAPIKeys)
			require.NoError(t, err)
			assert.False(t, ok)

			// deleting an absent key is fine
			require.NoError(t, backend.Delete(RecordAPIKeys))
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	first, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(RecordUser, `{"id":3}`))
	require.NoError(t, first.Close())

	second, err := NewSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	got, ok, err := second.Get(RecordUser)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"id":3}`, got)
}

func TestSQLiteCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dirs", "app.db")

	backend, err := NewSQLite(path)
	require.NoError(t, err)
	defer backend.Close()

	require.NoError(t, backend.Set(RecordAgents, "[]"))
}
