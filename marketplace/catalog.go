package marketplace

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"agent-marketplace/storage"
)

// Catalog owns the agent listings. The whole collection is persisted as one
// JSON record and replaced on every mutation.
type Catalog struct {
	backend storage.Backend
	log     zerolog.Logger
	agents  []Agent
}

// CatalogStats summarizes the catalog for the marketplace header.
type CatalogStats struct {
	TotalAgents  int
	TotalUsers   int
	TotalReviews int
}

// NewCatalog creates a catalog store over the given backend. Call
// Initialize before using it.
func NewCatalog(backend storage.Backend, log zerolog.Logger) *Catalog {
	return &Catalog{
		backend: backend,
		log:     log.With().Str("store", "catalog").Logger(),
	}
}

// Initialize loads the persisted catalog, seeding it from the built-in
// dataset on first run. Idempotent: existing data, including user edits,
// is left untouched. A corrupt record is treated as absent and reseeded;
// the persisted catalog is a cache re-derivable from the seed.
func (c *Catalog) Initialize() error {
	raw, ok, err := c.backend.Get(storage.RecordAgents)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if ok {
		var agents []Agent
		if err := json.Unmarshal([]byte(raw), &agents); err == nil {
			c.agents = agents
			return nil
		}
		c.log.Warn().Msg("persisted catalog is malformed, reseeding")
	}

	c.agents = seedAgents()
	if err := c.save(); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	c.log.Info().Int("agents", len(c.agents)).Msg("catalog seeded")
	return nil
}

// List returns the agents matching the filter, preserving catalog order.
func (c *Catalog) List(f Filter) []Agent {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	var out []Agent
	for _, agent := range c.agents {
		if f.Category != "" && f.Category != CategoryAll && agent.Category != f.Category {
			continue
		}
		if query != "" && !matchesQuery(agent, query) {
			continue
		}
		out = append(out, agent)
	}
	return out
}

func matchesQuery(agent Agent, query string) bool {
	if strings.Contains(strings.ToLower(agent.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(agent.Description), query) {
		return true
	}
	for _, tag := range agent.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// GetByID returns the agent with the given id. Absence is normal control
// flow: the second return value is false and no error is raised.
func (c *Catalog) GetByID(id int64) (Agent, bool) {
	for _, agent := range c.agents {
		if agent.ID == id {
			return agent, true
		}
	}
	return Agent{}, false
}

// RecordTry increments the agent's user count by one and persists the
// catalog. Unknown ids are a silent no-op.
func (c *Catalog) RecordTry(id int64) error {
	for i := range c.agents {
		if c.agents[i].ID == id {
			c.agents[i].Users++
			return c.save()
		}
	}
	return nil
}

// Submit validates the draft and appends a new pending agent to the
// catalog. On validation failure nothing is mutated and the returned
// *ValidationError names every missing field.
func (c *Catalog) Submit(draft Draft) (Agent, error) {
	var missing []string
	if strings.TrimSpace(draft.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(draft.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(draft.Category) == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return Agent{}, &ValidationError{Fields: missing}
	}

	agent := Agent{
		ID:               c.nextID(),
		Name:             draft.Name,
		Description:      draft.Description,
		Category:         draft.Category,
		Tags:             draft.Tags,
		Capabilities:     draft.Capabilities,
		Pricing:          draft.Pricing,
		Rating:           0,
		Reviews:          0,
		Users:            0,
		Creator:          draft.Creator,
		CreatedAt:        time.Now(),
		Status:           StatusPending,
		InferenceEnabled: true,
	}

	c.agents = append(c.agents, agent)
	if err := c.save(); err != nil {
		return Agent{}, fmt.Errorf("failed to persist submission: %w", err)
	}

	c.log.Info().Int64("id", agent.ID).Str("name", agent.Name).Msg("agent submitted")
	return agent, nil
}

// nextID derives a new id from the current time, bumped past every existing
// id so uniqueness holds even for back-to-back submissions.
func (c *Catalog) nextID() int64 {
	id := time.Now().UnixMilli()
	for _, agent := range c.agents {
		if agent.ID >= id {
			id = agent.ID + 1
		}
	}
	return id
}

// Stats returns aggregate counters for the marketplace header.
func (c *Catalog) Stats() CatalogStats {
	stats := CatalogStats{TotalAgents: len(c.agents)}
	for _, agent := range c.agents {
		stats.TotalUsers += agent.Users
		stats.TotalReviews += agent.Reviews
	}
	return stats
}

func (c *Catalog) save() error {
	data, err := json.Marshal(c.agents)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	return c.backend.Set(storage.RecordAgents, string(data))
}
