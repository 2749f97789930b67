package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"agent-marketplace/marketplace"
)

// APIKeysView is the API key dashboard: key list with reveal/mask, copy
// and delete, the creation form, and the usage overview.
type APIKeysView struct {
	app *App

	keyList    *fyne.Container
	statsLabel *widget.Label

	nameEntry   *widget.Entry
	agentSelect *widget.Select
	agentIDs    map[string]int64

	// revealed tracks per-key visibility; pure view state, never persisted
	revealed map[string]bool
}

// NewAPIKeysView creates a new API key dashboard
func NewAPIKeysView(app *App) *APIKeysView {
	return &APIKeysView{
		app:      app,
		revealed: make(map[string]bool),
	}
}

// Build builds the dashboard UI
func (kv *APIKeysView) Build() fyne.CanvasObject {
	back := widget.NewButton("Back to Marketplace", func() {
		kv.app.ShowMarketplace()
	})

	kv.keyList = container.NewVBox()
	kv.statsLabel = widget.NewLabel("")

	kv.nameEntry = widget.NewEntry()
	kv.nameEntry.SetPlaceHolder("e.g., Production App")

	kv.agentIDs = make(map[string]int64)
	var options []string
	for _, agent := range kv.app.catalog.List(marketplace.Filter{}) {
		label := fmt.Sprintf("%s (%s)", agent.Name, agent.Category)
		kv.agentIDs[label] = agent.ID
		options = append(options, label)
	}
	kv.agentSelect = widget.NewSelect(options, nil)

	createButton := widget.NewButton("Create API Key", func() {
		kv.createKey()
	})
	createButton.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem("Key Name", kv.nameEntry),
		widget.NewFormItem("Agent", kv.agentSelect),
	)

	kv.refresh()

	body := container.NewVBox(
		widget.NewLabel("Your API Keys"),
		kv.keyList,
		widget.NewSeparator(),
		widget.NewLabel("Create New API Key"),
		form,
		createButton,
		widget.NewSeparator(),
		widget.NewLabel("Usage Overview"),
		kv.statsLabel,
	)

	top := container.NewVBox(
		kv.app.header("API Dashboard", false),
		back,
	)

	return container.NewBorder(top, nil, nil, nil, container.NewScroll(body))
}

func (kv *APIKeysView) refresh() {
	keys := kv.app.keys.List()

	kv.keyList.Objects = nil
	if len(keys) == 0 {
		empty := widget.NewLabel("No API keys yet. Create your first key to start accessing agent endpoints.")
		empty.Wrapping = fyne.TextWrapWord
		kv.keyList.Add(empty)
	}
	for _, key := range keys {
		kv.keyList.Add(kv.keyRow(key))
	}
	kv.keyList.Refresh()

	stats := kv.app.keys.Stats()
	kv.statsLabel.SetText(fmt.Sprintf("Active Keys: %d    Agents: %d", stats.ActiveKeys, stats.DistinctAgents))
}

func (kv *APIKeysView) keyRow(key marketplace.ApiKey) fyne.CanvasObject {
	name := widget.NewLabel(key.Name)
	name.TextStyle = fyne.TextStyle{Bold: true}

	agent := widget.NewLabel("Agent: " + key.AgentName)

	status := "Inactive"
	if key.IsActive {
		status = "Active"
	}
	statusLabel := widget.NewLabel("[" + status + "]")

	tokenLabel := widget.NewLabel(kv.displayToken(key))
	tokenLabel.TextStyle = fyne.TextStyle{Monospace: true}

	toggleText := "Reveal"
	if kv.revealed[key.ID] {
		toggleText = "Mask"
	}
	toggle := widget.NewButton(toggleText, func() {
		kv.revealed[key.ID] = !kv.revealed[key.ID]
		kv.refresh()
	})

	copyButton := widget.NewButton("Copy", func() {
		kv.copyToken(key.Key)
	})

	deleteButton := widget.NewButton("Delete", func() {
		if err := kv.app.keys.Delete(key.ID); err != nil {
			kv.app.showError(err)
			return
		}
		delete(kv.revealed, key.ID)
		kv.refresh()
	})

	created := widget.NewLabel("Created: " + key.CreatedAt.Format("2006-01-02"))

	return container.NewVBox(
		container.NewHBox(name, agent, statusLabel),
		container.NewBorder(nil, nil, nil, container.NewHBox(toggle, copyButton, deleteButton), tokenLabel),
		created,
		widget.NewSeparator(),
	)
}

func (kv *APIKeysView) displayToken(key marketplace.ApiKey) string {
	if kv.revealed[key.ID] {
		return key.Key
	}
	return marketplace.MaskToken(key.Key)
}

func (kv *APIKeysView) createKey() {
	agentID := kv.agentIDs[kv.agentSelect.Selected]

	key, err := kv.app.keys.Create(kv.nameEntry.Text, agentID)
	if err != nil {
		kv.app.showError(err)
		return
	}

	kv.nameEntry.SetText("")
	kv.agentSelect.ClearSelected()
	kv.refresh()
	kv.app.showNotice("API Key Created", fmt.Sprintf("API key %q has been created successfully", key.Name))
}

// copyToken puts the full token on the clipboard. Clipboard failure is a
// notice, not a crash.
func (kv *APIKeysView) copyToken(token string) {
	clip := &fyneClipboard{window: kv.app.window}
	if err := kv.app.keys.Copy(clip, token); err != nil {
		kv.app.showNotice("Clipboard", "Could not copy the key: "+err.Error())
		return
	}
	kv.app.showNotice("Copied", "API key copied to clipboard")
}
