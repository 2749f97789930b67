package marketplace

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"agent-marketplace/storage"
)

const (
	tokenPrefix       = "mk_"
	tokenFragmentLen  = 13
	tokenAlphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	maskedMiddleRunes = 20
)

// Keys owns the user-created API key records. Keys reference agents by id;
// a reference that goes stale after agent removal is accepted, the agent
// name recorded at creation time keeps the row presentable.
type Keys struct {
	backend storage.Backend
	catalog *Catalog
	log     zerolog.Logger
	rng     *rand.Rand
	keys    []ApiKey
}

// KeyStats summarizes the key list for the dashboard sidebar.
type KeyStats struct {
	ActiveKeys     int
	DistinctAgents int
}

// NewKeys creates a key store over the given backend. The catalog is used
// to resolve agent names at creation time.
func NewKeys(backend storage.Backend, catalog *Catalog, log zerolog.Logger) *Keys {
	return &Keys{
		backend: backend,
		catalog: catalog,
		log:     log.With().Str("store", "apikeys").Logger(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Load reads the persisted key list. A missing or malformed record leaves
// the store empty.
func (k *Keys) Load() {
	raw, ok, err := k.backend.Get(storage.RecordAPIKeys)
	if err != nil {
		k.log.Warn().Err(err).Msg("failed to read persisted keys")
		return
	}
	if !ok {
		return
	}

	var keys []ApiKey
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		k.log.Warn().Msg("persisted key list is malformed, starting empty")
		return
	}
	k.keys = keys
}

// Create generates a new API key for the given agent. Name is trimmed;
// empty name or agent id yield a *ValidationError and no mutation. A stale
// agent id is tolerated: the key records the agent name as "Unknown".
func (k *Keys) Create(name string, agentID int64) (ApiKey, error) {
	name = strings.TrimSpace(name)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if agentID == 0 {
		missing = append(missing, "agent")
	}
	if len(missing) > 0 {
		return ApiKey{}, &ValidationError{Fields: missing}
	}

	agentName := "Unknown"
	if agent, ok := k.catalog.GetByID(agentID); ok {
		agentName = agent.Name
	}

	key := ApiKey{
		ID:        uuid.NewString(),
		Name:      name,
		Key:       GenerateToken(k.rng),
		AgentID:   agentID,
		AgentName: agentName,
		CreatedAt: time.Now(),
		IsActive:  true,
	}

	k.keys = append(k.keys, key)
	if err := k.save(); err != nil {
		return ApiKey{}, fmt.Errorf("failed to persist key: %w", err)
	}

	k.log.Info().Str("name", key.Name).Int64("agent_id", agentID).Msg("api key created")
	return key, nil
}

// Delete removes the key with the given id; a missing id is a no-op.
func (k *Keys) Delete(keyID string) error {
	kept := k.keys[:0]
	for _, key := range k.keys {
		if key.ID != keyID {
			kept = append(kept, key)
		}
	}
	if len(kept) == len(k.keys) {
		return nil
	}
	k.keys = kept
	return k.save()
}

// List returns the keys in creation order.
func (k *Keys) List() []ApiKey {
	out := make([]ApiKey, len(k.keys))
	copy(out, k.keys)
	return out
}

// Copy writes the token to the host clipboard. Failure is wrapped as a
// *ClipboardError so callers can report a notice instead of crashing.
func (k *Keys) Copy(clip Clipboard, token string) error {
	if err := clip.SetContent(token); err != nil {
		return &ClipboardError{Err: err}
	}
	return nil
}

// Stats returns aggregate counters for the dashboard sidebar.
func (k *Keys) Stats() KeyStats {
	stats := KeyStats{}
	agents := make(map[int64]struct{})
	for _, key := range k.keys {
		if key.IsActive {
			stats.ActiveKeys++
		}
		agents[key.AgentID] = struct{}{}
	}
	stats.DistinctAgents = len(agents)
	return stats
}

func (k *Keys) save() error {
	data, err := json.Marshal(k.keys)
	if err != nil {
		return fmt.Errorf("failed to marshal keys: %w", err)
	}
	return k.backend.Set(storage.RecordAPIKeys, string(data))
}

// GenerateToken produces a token of the form mk_<frag><frag>, each fragment
// 13 characters of base-36. The randomness is not cryptographic; these keys
// gate nothing real and collisions are only practically improbable.
func GenerateToken(rng *rand.Rand) string {
	var b strings.Builder
	b.WriteString(tokenPrefix)
	for i := 0; i < 2*tokenFragmentLen; i++ {
		b.WriteByte(tokenAlphabet[rng.Intn(len(tokenAlphabet))])
	}
	return b.String()
}

// MaskToken renders the display form of a token: the first 8 and last 4
// characters with a fixed-length mask between, whatever the real middle
// length is.
func MaskToken(token string) string {
	if len(token) <= 12 {
		return strings.Repeat("*", len(token))
	}
	return token[:8] + strings.Repeat("*", maskedMiddleRunes) + token[len(token)-4:]
}
