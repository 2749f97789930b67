package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"agent-marketplace/chat"
	"agent-marketplace/marketplace"
	"agent-marketplace/utils"
)

// ChatWindow is the modal chat overlay opened from the agent detail view.
// The conversation lives only as long as the overlay: closing it discards
// the transcript and cancels any reply still in flight.
type ChatWindow struct {
	app     *App
	agent   marketplace.Agent
	session *chat.Session

	popup       *widget.PopUp
	transcript  *fyne.Container
	typingLabel *widget.Label
	input       *widget.Entry
	scroll      *container.Scroll
}

// NewChatWindow creates a chat overlay for the given agent
func NewChatWindow(app *App, agent marketplace.Agent) *ChatWindow {
	cw := &ChatWindow{
		app:   app,
		agent: agent,
	}
	cw.session = chat.NewSession(agent, chat.Options{
		Delay: app.chatDelay(),
		Notify: func() {
			fyne.Do(func() {
				cw.refresh()
			})
		},
	})
	return cw
}

// Show opens the overlay and delivers the agent's greeting
func (cw *ChatWindow) Show() {
	title := widget.NewLabel("Chat with " + cw.agent.Name)
	title.TextStyle = fyne.TextStyle{Bold: true}

	closeButton := widget.NewButton("Close", func() {
		cw.close()
	})

	exportJSON := widget.NewButton("Export JSON", func() {
		cw.export(utils.FormatJSON)
	})
	exportMarkdown := widget.NewButton("Export Markdown", func() {
		cw.export(utils.FormatMarkdown)
	})

	cw.transcript = container.NewVBox()
	cw.scroll = container.NewScroll(cw.transcript)
	cw.scroll.SetMinSize(fyne.NewSize(520, 360))

	cw.typingLabel = widget.NewLabel("")

	cw.input = widget.NewEntry()
	cw.input.SetPlaceHolder("Type your message...")
	cw.input.OnSubmitted = func(string) {
		cw.send()
	}

	sendButton := widget.NewButton("Send", func() {
		cw.send()
	})
	sendButton.Importance = widget.HighImportance

	inputRow := container.NewBorder(nil, nil, nil, sendButton, cw.input)

	content := container.NewBorder(
		container.NewBorder(nil, nil, title, container.NewHBox(exportJSON, exportMarkdown, closeButton)),
		container.NewVBox(cw.typingLabel, inputRow),
		nil, nil,
		cw.scroll,
	)

	cw.popup = widget.NewModalPopUp(content, cw.app.window.Canvas())
	cw.session.Open()
	cw.refresh()
	cw.popup.Show()
	cw.app.window.Canvas().Focus(cw.input)
}

func (cw *ChatWindow) send() {
	text := cw.input.Text
	cw.input.SetText("")
	cw.session.Send(text)
}

func (cw *ChatWindow) refresh() {
	cw.transcript.Objects = nil
	for _, msg := range cw.session.Messages() {
		cw.transcript.Add(cw.messageRow(msg))
	}
	cw.transcript.Refresh()
	cw.scroll.ScrollToBottom()

	if cw.session.Typing() {
		cw.typingLabel.SetText(cw.agent.Name + " is typing...")
	} else {
		cw.typingLabel.SetText("")
	}
}

func (cw *ChatWindow) messageRow(msg chat.Message) fyne.CanvasObject {
	who := cw.agent.Name
	if msg.Sender == chat.SenderUser {
		who = "You"
	}

	header := widget.NewLabel(fmt.Sprintf("%s  %s", who, msg.Timestamp.Format("15:04")))
	header.TextStyle = fyne.TextStyle{Bold: true}

	body := widget.NewLabel(msg.Content)
	body.Wrapping = fyne.TextWrapWord

	return container.NewVBox(header, body)
}

func (cw *ChatWindow) export(format utils.ExportFormat) {
	messages := cw.session.Messages()
	if len(messages) == 0 {
		cw.app.showNotice("Export", "Nothing to export yet")
		return
	}

	ext := ".json"
	if format == utils.FormatMarkdown {
		ext = ".md"
	}
	defaultName := strings.ReplaceAll(strings.ToLower(cw.agent.Name), " ", "-") + "-chat" + ext

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			cw.app.showError(err)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		// write off the UI thread, report back on it
		utils.SafeGo(cw.app.log, "transcript export", func() {
			var exportErr error
			if format == utils.FormatMarkdown {
				exportErr = utils.ExportTranscriptMarkdown(cw.agent, messages, path)
			} else {
				exportErr = utils.ExportTranscriptJSON(cw.agent, messages, path)
			}
			fyne.Do(func() {
				if exportErr != nil {
					cw.app.showError(utils.WrapError(exportErr, "export transcript"))
					return
				}
				cw.app.showNotice("Export Complete", "Transcript saved to "+path)
			})
		})
	}, cw.app.window)
	saveDialog.SetFileName(defaultName)
	saveDialog.Show()
}

func (cw *ChatWindow) close() {
	cw.session.Close()
	cw.popup.Hide()
}
