// Package clipboard copies text to the system clipboard without blocking
// the UI loop.
package clipboard

import (
	atotto "github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ch3mestry/bioTest/internal/logging"
)

// Writer writes text to a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System is the OS clipboard.
type System struct{}

// WriteAll writes text to the OS clipboard.
func (System) WriteAll(text string) error {
	return atotto.WriteAll(text)
}

// Available reports whether a clipboard utility was found on this system.
func Available() bool {
	return !atotto.Unsupported
}

// CopyCmd returns a command that writes text to w. Failures are logged and
// otherwise ignored; the command produces no message.
func CopyCmd(w Writer, text string) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if err := w.WriteAll(text); err != nil {
			logging.Debugf("clipboard write failed: %v", err)
			return nil
		}
		logging.Debugf("copied %d characters to clipboard", len(text))
		return nil
	}
}
