package marketplace

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agent-marketplace/storage"
)

func newTestKeys(t *testing.T) (*Keys, *storage.Memory) {
	t.Helper()
	backend := storage.NewMemory()
	catalog := NewCatalog(backend, zerolog.Nop())
	require.NoError(t, catalog.Initialize())
	keys := NewKeys(backend, catalog, zerolog.Nop())
	keys.Load()
	return keys, backend
}

func TestCreateKey(t *testing.T) {
	keys, _ := newTestKeys(t)

	key, err := keys.Create("  Production App  ", 1)
	require.NoError(t, err)

	assert.Equal(t, "Production App", key.Name)
	assert.Equal(t, int64(1), key.AgentID)
	assert.Equal(t, "DeFi Portfolio Analyzer", key.AgentName)
	assert.True(t, key.IsActive)
	assert.NotEmpty(t, key.ID)
	assert.True(t, strings.HasPrefix(key.Key, "mk_"))
	assert.Nil(t, key.LastUsed)

	require.Len(t, keys.List(), 1)
}

func TestCreateKeyValidation(t *testing.T) {
	keys, _ := newTestKeys(t)

	_, err := keys.Create("   ", 0)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name", "agent"}, verr.Fields)

	_, err = keys.Create("ok", 0)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"agent"}, verr.Fields)

	assert.Empty(t, keys.List())
}

func TestCreateKeyStaleAgentID(t *testing.T) {
	keys, _ := newTestKeys(t)

	key, err := keys.Create("Legacy", 4242)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", key.AgentName)
}

func TestDeleteKey(t *testing.T) {
	keys, _ := newTestKeys(t)

	first, err := keys.Create("First", 1)
	require.NoError(t, err)
	second, err := keys.Create("Second", 2)
	require.NoError(t, err)

	require.NoError(t, keys.Delete(first.ID))

	list := keys.List()
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	// unknown id is a no-op
	require.NoError(t, keys.Delete("no-such-key"))
	assert.Len(t, keys.List(), 1)
}

func TestKeysPersistAcrossRestart(t *testing.T) {
	keys, backend := newTestKeys(t)

	created, err := keys.Create("Persisted", 3)
	require.NoError(t, err)

	catalog := NewCatalog(backend, zerolog.Nop())
	require.NoError(t, catalog.Initialize())
	restarted := NewKeys(backend, catalog, zerolog.Nop())
	restarted.Load()

	list := restarted.List()
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, created.Key, list[0].Key)
}

func TestLoadMalformedRecordStartsEmpty(t *testing.T) {
	backend := storage.NewMemory()
	require.NoError(t, backend.Set(storage.RecordAPIKeys, "not json"))

	catalog := NewCatalog(backend, zerolog.Nop())
	require.NoError(t, catalog.Initialize())
	keys := NewKeys(backend, catalog, zerolog.Nop())
	keys.Load()

	assert.Empty(t, keys.List())
}

func TestGenerateTokenShape(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := GenerateToken(rng)
		require.Len(t, token, 3+26)
		require.True(t, strings.HasPrefix(token, "mk_"))
		for _, r := range token[3:] {
			assert.Contains(t, "0123456789abcdefghijklmnopqrstuvwxyz", string(r))
		}
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestMaskToken(t *testing.T) {
	token := "mk_abcdefghijklmnopqrstuvwxyz"
	masked := MaskToken(token)

	assert.Equal(t, "mk_abcde"+strings.Repeat("*", 20)+"wxyz", masked)
	assert.Len(t, masked, 32)

	// short tokens are masked entirely
	assert.Equal(t, "******", MaskToken("mk_abc"))
}

type failingClipboard struct{}

func (failingClipboard) SetContent(string) error {
	return errors.New("no clipboard service")
}

type recordingClipboard struct {
	content string
}

func (c *recordingClipboard) SetContent(text string) error {
	c.content = text
	return nil
}

func TestCopyToken(t *testing.T) {
	keys, _ := newTestKeys(t)

	clip := &recordingClipboard{}
	require.NoError(t, keys.Copy(clip, "mk_token"))
	assert.Equal(t, "mk_token", clip.content)

	err := keys.Copy(failingClipboard{}, "mk_token")
	var cerr *ClipboardError
	require.ErrorAs(t, err, &cerr)
}

func TestKeyStats(t *testing.T) {
	keys, _ := newTestKeys(t)

	_, err := keys.Create("One", 1)
	require.NoError(t, err)
	_, err = keys.Create("Two", 1)
	require.NoError(t, err)
	_, err = keys.Create("Three", 2)
	require.NoError(t, err)

	stats := keys.Stats()
	assert.Equal(t, 3, stats.ActiveKeys)
	assert.Equal(t, 2, stats.DistinctAgents)
}
