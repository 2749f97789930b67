package marketplace

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agent-marketplace/storage"
)

func TestRosterHasFourUsers(t *testing.T) {
	session := NewSession(storage.NewMemory(), zerolog.Nop())

	roster := session.Roster()
	require.Len(t, roster, 4)
	assert.Equal(t, "Alex Chen", roster[0].Name)
	assert.Equal(t, "alex@example.com", roster[0].Email)
}

func TestLoginAndCurrent(t *testing.T) {
	session := NewSession(storage.NewMemory(), zerolog.Nop())

	_, ok := session.Current()
	assert.False(t, ok)

	require.NoError(t, session.Login(2))
	user, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, "Sarah Williams", user.Name)
}

func TestLoginUnknownIDLeavesStateUnchanged(t *testing.T) {
	session := NewSession(storage.NewMemory(), zerolog.Nop())
	require.NoError(t, session.Login(1))

	err := session.Login(99)
	assert.ErrorIs(t, err, ErrNotFound)

	user, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, 1, user.ID)
}

func TestRestoreAcrossRestart(t *testing.T) {
	backend := storage.NewMemory()

	session := NewSession(backend, zerolog.Nop())
	require.NoError(t, session.Login(3))

	restarted := NewSession(backend, zerolog.Nop())
	restarted.Restore()

	user, ok := restarted.Current()
	require.True(t, ok)
	assert.Equal(t, "Marcus Johnson", user.Name)
}

func TestRestoreMissingRecordStaysLoggedOut(t *testing.T) {
	session := NewSession(storage.NewMemory(), zerolog.Nop())
	session.Restore()

	_, ok := session.Current()
	assert.False(t, ok)
}

func TestRestoreMalformedRecordStaysLoggedOut(t *testing.T) {
	backend := storage.NewMemory()
	require.NoError(t, backend.Set(storage.RecordUser, "][nonsense"))

	session := NewSession(backend, zerolog.Nop())
	session.Restore()

	_, ok := session.Current()
	assert.False(t, ok)
}

func TestLogoutClearsPersistedRecord(t *testing.T) {
	backend := storage.NewMemory()
	session := NewSession(backend, zerolog.Nop())
	require.NoError(t, session.Login(4))

	require.NoError(t, session.Logout())

	_, ok := session.Current()
	assert.False(t, ok)

	_, found, err := backend.Get(storage.RecordUser)
	require.NoError(t, err)
	assert.False(t, found)

	restarted := NewSession(backend, zerolog.Nop())
	restarted.Restore()
	_, ok = restarted.Current()
	assert.False(t, ok)
}
