package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"agent-marketplace/marketplace"
)

// DetailView shows a single agent's listing with the Try Agent action.
type DetailView struct {
	app   *App
	agent marketplace.Agent

	usersLabel *widget.Label
}

// NewDetailView creates a detail view for the given agent.
func NewDetailView(app *App, agent marketplace.Agent) *DetailView {
	return &DetailView{app: app, agent: agent}
}

// Build builds the agent detail UI
func (dv *DetailView) Build() fyne.CanvasObject {
	back := widget.NewButton("Back to Marketplace", func() {
		dv.app.ShowMarketplace()
	})

	name := widget.NewLabel(dv.agent.Name)
	name.TextStyle = fyne.TextStyle{Bold: true}

	category := widget.NewLabel("[" + dv.agent.Category + "]  " + dv.agent.Pricing)

	description := widget.NewLabel(dv.agent.Description)
	description.Wrapping = fyne.TextWrapWord

	capabilities := widget.NewLabel(dv.agent.Capabilities)
	capabilities.Wrapping = fyne.TextWrapWord

	rating := widget.NewLabel(fmt.Sprintf("★ %.1f (%d reviews)", dv.agent.Rating, dv.agent.Reviews))
	dv.usersLabel = widget.NewLabel(fmt.Sprintf("%d users", dv.agent.Users))

	tagsRow := container.NewHBox()
	for _, tag := range dv.agent.Tags {
		tagsRow.Add(widget.NewLabel("#" + tag))
	}

	tryButton := widget.NewButton("Try Agent", func() {
		dv.tryAgent()
	})
	tryButton.Importance = widget.HighImportance

	body := container.NewVBox(
		name,
		category,
		widget.NewSeparator(),
		description,
		widget.NewSeparator(),
		widget.NewLabel("Capabilities"),
		capabilities,
		tagsRow,
		container.NewHBox(rating, dv.usersLabel),
		tryButton,
	)

	top := container.NewVBox(
		dv.app.header("Agent Detail", true),
		back,
	)

	return container.NewBorder(top, nil, nil, nil, container.NewScroll(body))
}

// tryAgent bumps the usage counter and opens the chat window. A stale
// agent id makes the counter update a no-op; chat still opens.
func (dv *DetailView) tryAgent() {
	if err := dv.app.catalog.RecordTry(dv.agent.ID); err != nil {
		dv.app.log.Error().Err(err).Msg("failed to record try")
	}
	if updated, ok := dv.app.catalog.GetByID(dv.agent.ID); ok {
		dv.agent = updated
		dv.usersLabel.SetText(fmt.Sprintf("%d users", dv.agent.Users))
	}

	NewChatWindow(dv.app, dv.agent).Show()
}
