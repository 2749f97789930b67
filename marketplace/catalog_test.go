package marketplace

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agent-marketplace/storage"
)

func newTestCatalog(t *testing.T) (*Catalog, *storage.Memory) {
	t.Helper()
	backend := storage.NewMemory()
	catalog := NewCatalog(backend, zerolog.Nop())
	require.NoError(t, catalog.Initialize())
	return catalog, backend
}

func TestInitializeSeedsOnFirstRun(t *testing.T) {
	catalog, backend := newTestCatalog(t)

	agents := catalog.List(Filter{})
	assert.Len(t, agents, 25)

	raw, ok, err := backend.Get(storage.RecordAgents)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, raw)
}

func TestInitializePreservesExistingData(t *testing.T) {
	catalog, backend := newTestCatalog(t)

	require.NoError(t, catalog.RecordTry(1))
	tried, ok := catalog.GetByID(1)
	require.True(t, ok)

	// simulate an app restart over the same backend
	restarted := NewCatalog(backend, zerolog.Nop())
	require.NoError(t, restarted.Initialize())

	got, ok := restarted.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, tried.Users, got.Users)
	assert.Len(t, restarted.List(Filter{}), 25)
}

func TestInitializeReseedsMalformedRecord(t *testing.T) {
	backend := storage.NewMemory()
	require.NoError(t, backend.Set(storage.RecordAgents, "{not json"))

	catalog := NewCatalog(backend, zerolog.Nop())
	require.NoError(t, catalog.Initialize())
	assert.Len(t, catalog.List(Filter{}), 25)
}

func TestListFiltersByCategory(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	web3 := catalog.List(Filter{Category: CategoryWeb3})
	require.Len(t, web3, 4)
	for i, agent := range web3 {
		assert.Equal(t, int64(i+1), agent.ID)
		assert.Equal(t, CategoryWeb3, agent.Category)
	}
}

func TestListAllCategoryBypassesFilter(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	assert.Len(t, catalog.List(Filter{Category: CategoryAll}), 25)
	assert.Len(t, catalog.List(Filter{Category: ""}), 25)
}

func TestListSearchMatchesNameDescriptionTags(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	byName := catalog.List(Filter{Query: "NFT"})
	require.NotEmpty(t, byName)
	assert.Equal(t, int64(3), byName[0].ID)

	// tag-only match, mixed case and surrounding whitespace
	byTag := catalog.List(Filter{Query: "  DeFi "})
	require.NotEmpty(t, byTag)

	assert.Empty(t, catalog.List(Filter{Query: "zzzzzz-no-such-agent"}))
}

func TestListSearchCombinesWithCategory(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	got := catalog.List(Filter{Category: CategoryWeb3, Query: "nft"})
	for _, agent := range got {
		assert.Equal(t, CategoryWeb3, agent.Category)
	}
	require.NotEmpty(t, got)
}

func TestGetByIDAbsentIsNotAnError(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	_, ok := catalog.GetByID(9999)
	assert.False(t, ok)
}

func TestRecordTryIncrementsAndPersists(t *testing.T) {
	catalog, backend := newTestCatalog(t)

	before, ok := catalog.GetByID(5)
	require.True(t, ok)

	require.NoError(t, catalog.RecordTry(5))
	require.NoError(t, catalog.RecordTry(5))

	after, ok := catalog.GetByID(5)
	require.True(t, ok)
	assert.Equal(t, before.Users+2, after.Users)

	restarted := NewCatalog(backend, zerolog.Nop())
	require.NoError(t, restarted.Initialize())
	persisted, ok := restarted.GetByID(5)
	require.True(t, ok)
	assert.Equal(t, before.Users+2, persisted.Users)
}

func TestRecordTryUnknownIDIsNoOp(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	statsBefore := catalog.Stats()
	require.NoError(t, catalog.RecordTry(9999))
	assert.Equal(t, statsBefore, catalog.Stats())
}

func TestSubmitValidation(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	_, err := catalog.Submit(Draft{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name", "description", "category"}, verr.Fields)

	_, err = catalog.Submit(Draft{Name: "  ", Description: "works", Category: CategoryUtility})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name"}, verr.Fields)

	// nothing was appended
	assert.Len(t, catalog.List(Filter{}), 25)
}

func TestSubmitAppendsPendingAgent(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	agent, err := catalog.Submit(Draft{
		Name:        "Invoice Helper",
		Description: "Drafts and tracks invoices",
		Category:    CategoryBusiness,
		Tags:        []string{"invoices", "billing"},
		Pricing:     PricingFree,
		Creator:     "Alex Chen",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, agent.Status)
	assert.Zero(t, agent.Rating)
	assert.Zero(t, agent.Reviews)
	assert.Zero(t, agent.Users)
	assert.True(t, agent.InferenceEnabled)
	assert.Equal(t, "Alex Chen", agent.Creator)
	assert.Greater(t, agent.ID, int64(25))

	got, ok := catalog.GetByID(agent.ID)
	require.True(t, ok)
	assert.Equal(t, agent.Name, got.Name)

	all := catalog.List(Filter{})
	assert.Equal(t, agent.ID, all[len(all)-1].ID)
}

func TestSubmitBackToBackIDsAreUnique(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	draft := Draft{Name: "A", Description: "d", Category: CategoryUtility}
	first, err := catalog.Submit(draft)
	require.NoError(t, err)
	second, err := catalog.Submit(draft)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestStatsAggregates(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	stats := catalog.Stats()
	assert.Equal(t, 25, stats.TotalAgents)
	assert.Positive(t, stats.TotalUsers)
	assert.Positive(t, stats.TotalReviews)

	require.NoError(t, catalog.RecordTry(1))
	assert.Equal(t, stats.TotalUsers+1, catalog.Stats().TotalUsers)
}
