package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"agent-marketplace/marketplace"
)

// MarketplaceView is the agent browser: search, category filter, stats and
// the agent card grid.
type MarketplaceView struct {
	app *App

	searchEntry    *widget.Entry
	categoryRow    *fyne.Container
	statsLabel     *widget.Label
	grid           *fyne.Container
	emptyLabel     *widget.Label
	activeCategory string
}

// NewMarketplaceView creates a new marketplace view
func NewMarketplaceView(app *App) *MarketplaceView {
	mv := &MarketplaceView{
		app:            app,
		activeCategory: marketplace.CategoryAll,
	}

	mv.searchEntry = widget.NewEntry()
	mv.searchEntry.SetPlaceHolder("Search agents...")
	mv.searchEntry.OnChanged = func(string) {
		mv.refreshGrid()
	}

	mv.categoryRow = container.NewHBox()
	for _, category := range marketplace.Categories() {
		c := category
		mv.categoryRow.Add(widget.NewButton(c, func() {
			mv.activeCategory = c
			mv.refreshGrid()
		}))
	}

	mv.statsLabel = widget.NewLabel("")
	mv.grid = container.NewGridWithColumns(3)
	mv.emptyLabel = widget.NewLabel("No agents found. Try adjusting your search or filters.")
	mv.emptyLabel.Hide()

	return mv
}

// Build builds the marketplace UI
func (mv *MarketplaceView) Build() fyne.CanvasObject {
	top := container.NewVBox(
		mv.app.header("AI Marketplace", true),
		mv.searchEntry,
		container.NewHScroll(mv.categoryRow),
		mv.statsLabel,
	)

	center := container.NewScroll(container.NewVBox(mv.grid, mv.emptyLabel))

	return container.NewBorder(top, nil, nil, nil, center)
}

// Refresh re-reads the catalog and redraws the grid and stats.
func (mv *MarketplaceView) Refresh() {
	stats := mv.app.catalog.Stats()
	mv.statsLabel.SetText(fmt.Sprintf("Total Agents: %d    Total Users: %d    Total Reviews: %d",
		stats.TotalAgents, stats.TotalUsers, stats.TotalReviews))
	mv.refreshGrid()
}

func (mv *MarketplaceView) refreshGrid() {
	agents := mv.app.catalog.List(marketplace.Filter{
		Category: mv.activeCategory,
		Query:    mv.searchEntry.Text,
	})

	mv.grid.Objects = nil
	for _, agent := range agents {
		mv.grid.Add(mv.agentCard(agent))
	}
	mv.grid.Refresh()

	if len(agents) == 0 {
		mv.emptyLabel.Show()
	} else {
		mv.emptyLabel.Hide()
	}
}

func (mv *MarketplaceView) agentCard(agent marketplace.Agent) fyne.CanvasObject {
	name := widget.NewLabel(agent.Name)
	name.TextStyle = fyne.TextStyle{Bold: true}

	category := widget.NewLabel("[" + agent.Category + "]")

	description := widget.NewLabel(agent.Description)
	description.Wrapping = fyne.TextWrapWord

	meta := widget.NewLabel(fmt.Sprintf("★ %.1f (%d)    %d users", agent.Rating, agent.Reviews, agent.Users))

	tags := ""
	for i, tag := range agent.Tags {
		if i >= 3 {
			break
		}
		if i > 0 {
			tags += "  "
		}
		tags += "#" + tag
	}
	tagsLabel := widget.NewLabel(tags)

	open := widget.NewButton("View", func() {
		mv.app.ShowAgentDetail(agent)
	})

	return container.NewVBox(
		container.NewBorder(nil, nil, name, category),
		description,
		meta,
		container.NewBorder(nil, nil, tagsLabel, open),
		widget.NewSeparator(),
	)
}
