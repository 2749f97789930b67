package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"agent-marketplace/marketplace"
)

// OnboardingView is the agent submission form.
type OnboardingView struct {
	app *App

	nameEntry         *widget.Entry
	descriptionEntry  *widget.Entry
	categorySelect    *widget.Select
	tagsEntry         *widget.Entry
	capabilitiesEntry *widget.Entry
	pricingSelect     *widget.Select
}

// NewOnboardingView creates a new onboarding view
func NewOnboardingView(app *App) *OnboardingView {
	return &OnboardingView{app: app}
}

// Build builds the submission form UI
func (ov *OnboardingView) Build() fyne.CanvasObject {
	ov.nameEntry = widget.NewEntry()
	ov.nameEntry.SetPlaceHolder("Agent name")

	ov.descriptionEntry = widget.NewMultiLineEntry()
	ov.descriptionEntry.SetPlaceHolder("What does your agent do?")

	// the real categories, without the ALL pseudo-entry
	ov.categorySelect = widget.NewSelect(marketplace.Categories()[1:], nil)

	ov.tagsEntry = widget.NewEntry()
	ov.tagsEntry.SetPlaceHolder("Comma-separated tags")

	ov.capabilitiesEntry = widget.NewMultiLineEntry()
	ov.capabilitiesEntry.SetPlaceHolder("Key capabilities")

	ov.pricingSelect = widget.NewSelect([]string{
		marketplace.PricingFree,
		marketplace.PricingFreemium,
		marketplace.PricingPaid,
	}, nil)
	ov.pricingSelect.SetSelected(marketplace.PricingFree)

	form := widget.NewForm(
		widget.NewFormItem("Name", ov.nameEntry),
		widget.NewFormItem("Description", ov.descriptionEntry),
		widget.NewFormItem("Category", ov.categorySelect),
		widget.NewFormItem("Tags", ov.tagsEntry),
		widget.NewFormItem("Capabilities", ov.capabilitiesEntry),
		widget.NewFormItem("Pricing", ov.pricingSelect),
	)

	submit := widget.NewButton("Submit for Review", func() {
		ov.submit()
	})
	submit.Importance = widget.HighImportance

	cancel := widget.NewButton("Cancel", func() {
		ov.app.ShowMarketplace()
	})

	body := container.NewVBox(
		form,
		container.NewHBox(submit, cancel),
	)

	top := ov.app.header("Submit Your Agent", false)
	return container.NewBorder(top, nil, nil, nil, container.NewScroll(body))
}

// submit validates through the catalog store and reports the outcome. The
// creator field is stamped from the current session user.
func (ov *OnboardingView) submit() {
	creator := ""
	if user, ok := ov.app.session.Current(); ok {
		creator = user.Name
	}

	draft := marketplace.Draft{
		Name:         ov.nameEntry.Text,
		Description:  ov.descriptionEntry.Text,
		Category:     ov.categorySelect.Selected,
		Tags:         splitTags(ov.tagsEntry.Text),
		Capabilities: ov.capabilitiesEntry.Text,
		Pricing:      ov.pricingSelect.Selected,
		Creator:      creator,
	}

	agent, err := ov.app.catalog.Submit(draft)
	if err != nil {
		ov.app.showError(err)
		return
	}

	ov.app.showNotice("Agent Submitted", agent.Name+" has been submitted for review.")
	ov.app.ShowMarketplace()
}

func splitTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
