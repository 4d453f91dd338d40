package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ch3mestry/bioTest/internal/clipboard"
	"github.com/Ch3mestry/bioTest/internal/i18n"
	"github.com/Ch3mestry/bioTest/internal/logging"
	"github.com/Ch3mestry/bioTest/internal/sequence"
)

// noticeTimeout is how long the copy confirmation stays visible.
const noticeTimeout = 1000 * time.Millisecond

// noticeExpiredMsg hides the copy confirmation scheduled under gen.
type noticeExpiredMsg struct {
	gen int
}

// App is the main Bubble Tea model.
type App struct {
	form   FormView
	result ResultView
	keys   keyMap
	help   help.Model
	clip   clipboard.Writer

	noticeVisible bool
	noticeGen     int

	width  int
	height int
}

// NewApp creates the main application model. Non-empty prefilled values
// that pass validation are rendered right away.
func NewApp(first, second string, clip clipboard.Writer) App {
	keys := newKeyMap()
	a := App{
		form: NewFormView(first, second, keys),
		keys: keys,
		help: help.New(),
		clip: clip,
	}
	if first != "" && second != "" && sequence.ValidatePair(first, second).Valid() {
		a.result.SetPair(first, second)
	}
	return a
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		a.result.Scroll(0, a.gridHeight())
		return a, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.PageUp):
			a.result.Scroll(-a.gridHeight(), a.gridHeight())
			return a, nil
		case key.Matches(msg, a.keys.PageDown):
			a.result.Scroll(a.gridHeight(), a.gridHeight())
			return a, nil
		}

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case submittedMsg:
		logging.Infof("rendering pair of length %d", len(msg.first))
		a.result.SetPair(msg.first, msg.second)
		return a, nil

	case noticeExpiredMsg:
		if msg.gen == a.noticeGen {
			a.noticeVisible = false
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		a.result.Scroll(-1, a.gridHeight())
		return a, nil
	case msg.Button == tea.MouseButtonWheelDown:
		a.result.Scroll(1, a.gridHeight())
		return a, nil
	}

	pos, ok := a.result.hit(msg.X, msg.Y-a.gridTop())
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return a, nil
		}
		if !ok || msg.Y-a.gridTop() >= a.result.visibleLines(a.gridHeight()) {
			// Clicking outside the grid clears the selection.
			a.result.sel = selection{}
			return a, nil
		}
		a.result.press(pos)
	case tea.MouseActionMotion:
		if ok {
			a.result.extend(pos)
		}
	case tea.MouseActionRelease:
		if ok {
			a.result.extend(pos)
		}
		return a.copySelection(a.result.release())
	}
	return a, nil
}

// copySelection copies text when it is a well-formed sequence fragment and
// shows the confirmation. Anything else is ignored.
func (a App) copySelection(text string) (tea.Model, tea.Cmd) {
	if text == "" || !sequence.MatchesAlphabet(text) {
		return a, nil
	}

	a.noticeGen++
	a.noticeVisible = true
	gen := a.noticeGen
	return a, tea.Batch(
		clipboard.CopyCmd(a.clip, text),
		tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
			return noticeExpiredMsg{gen: gen}
		}),
	)
}

func (a App) size() (int, int) {
	width := a.width
	if width <= 0 {
		width = 80
	}
	height := a.height
	if height <= 0 {
		height = 24
	}
	return width, height
}

// headerView renders everything above the grid.
func (a App) headerView() string {
	width, _ := a.size()
	parts := []string{
		titleStyle.MaxWidth(width).Render(i18n.T("app.title")),
		"",
		a.form.View(),
	}
	if a.result.Shown() {
		summary := i18n.Tf("result.summary", map[string]any{
			"Length":      a.result.stats.Length,
			"Differences": a.result.stats.Differences,
			"Identity":    a.result.stats.Identity,
		})
		parts = append(parts, "", mutedStyle.MaxWidth(width).Render(summary))
	}
	return strings.Join(parts, "\n")
}

func (a App) footerView() string {
	width, _ := a.size()
	notice := ""
	if a.noticeVisible {
		notice = noticeStyle.Render(i18n.T("notice.copied"))
	} else if a.result.Shown() {
		notice = helpStyle.MaxWidth(width).Render(i18n.T("hint.select"))
	}
	return notice + "\n" + helpStyle.Render(a.help.View(a.keys))
}

// gridTop is the screen row of the first grid line.
func (a App) gridTop() int {
	return lipgloss.Height(a.headerView()) + 1
}

// gridHeight is the number of grid lines that fit on screen.
func (a App) gridHeight() int {
	_, height := a.size()
	return max(1, height-a.gridTop()-lipgloss.Height(a.footerView())-1)
}

func (a App) View() string {
	width, _ := a.size()
	parts := []string{a.headerView()}
	if a.result.Shown() {
		parts = append(parts, "", a.result.View(width, a.gridHeight()))
	}
	parts = append(parts, "", a.footerView())
	return strings.Join(parts, "\n")
}
