package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"agent-marketplace/marketplace"
)

// LoginView is the demo profile selector shown before anything else.
type LoginView struct {
	app      *App
	selected *marketplace.User

	enterButton *widget.Button
	cards       []*profileCard
}

// NewLoginView creates a new login view
func NewLoginView(app *App) *LoginView {
	return &LoginView{app: app}
}

// Build builds the login view UI
func (lv *LoginView) Build() fyne.CanvasObject {
	title := widget.NewLabel("AI Agent Marketplace")
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	subtitle := widget.NewLabel("Choose your demo profile")
	subtitle.Alignment = fyne.TextAlignCenter

	grid := container.NewGridWithColumns(4)
	for _, user := range lv.app.session.Roster() {
		u := user
		card := newProfileCard(u, func() {
			lv.selectUser(u)
		})
		lv.cards = append(lv.cards, card)
		grid.Add(card)
	}

	lv.enterButton = widget.NewButton("Enter Marketplace", func() {
		lv.login()
	})
	lv.enterButton.Importance = widget.HighImportance
	lv.enterButton.Disable()

	return container.NewVBox(
		widget.NewSeparator(),
		title,
		subtitle,
		widget.NewSeparator(),
		grid,
		container.NewCenter(lv.enterButton),
	)
}

func (lv *LoginView) selectUser(user marketplace.User) {
	lv.selected = &user
	for _, card := range lv.cards {
		card.setSelected(card.user.ID == user.ID)
	}
	lv.enterButton.Enable()
}

func (lv *LoginView) login() {
	if lv.selected == nil {
		return
	}
	if err := lv.app.session.Login(lv.selected.ID); err != nil {
		lv.app.showError(err)
		return
	}
	lv.app.ShowMarketplace()
}

// profileCard is one selectable roster identity.
type profileCard struct {
	widget.BaseWidget
	user     marketplace.User
	onTapped func()

	name *widget.Label
	role *widget.Label
	bio  *widget.Label
}

func newProfileCard(user marketplace.User, onTapped func()) *profileCard {
	card := &profileCard{user: user, onTapped: onTapped}
	card.name = widget.NewLabel(user.Name)
	card.name.Alignment = fyne.TextAlignCenter
	card.role = widget.NewLabel(user.Role)
	card.role.Alignment = fyne.TextAlignCenter
	card.bio = widget.NewLabel(user.Bio)
	card.bio.Wrapping = fyne.TextWrapWord
	card.ExtendBaseWidget(card)
	return card
}

// CreateRenderer creates the renderer for the profile card
func (pc *profileCard) CreateRenderer() fyne.WidgetRenderer {
	box := container.NewVBox(pc.name, pc.role, pc.bio, widget.NewSeparator())
	return widget.NewSimpleRenderer(box)
}

// Tapped handles selection
func (pc *profileCard) Tapped(_ *fyne.PointEvent) {
	if pc.onTapped != nil {
		pc.onTapped()
	}
}

func (pc *profileCard) setSelected(selected bool) {
	if selected {
		pc.name.TextStyle = fyne.TextStyle{Bold: true}
	} else {
		pc.name.TextStyle = fyne.TextStyle{}
	}
	pc.name.Refresh()
}
