package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// fyneClipboard adapts the window clipboard to marketplace.Clipboard.
// Some Linux environments have no clipboard service and the driver can
// panic, so failures surface as errors instead.
type fyneClipboard struct {
	window fyne.Window
}

func (c *fyneClipboard) SetContent(text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard unavailable: %v", r)
		}
	}()

	clip := c.window.Clipboard()
	if clip == nil {
		return fmt.Errorf("clipboard unavailable")
	}
	clip.SetContent(text)
	return nil
}
