package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ch3mestry/bioTest/internal/i18n"
	"github.com/Ch3mestry/bioTest/internal/sequence"
)

type focusTarget int

const (
	focusFirst focusTarget = iota
	focusSecond
	focusSubmit
	focusCount
)

// submittedMsg carries a pair that passed validation.
type submittedMsg struct {
	first  string
	second string
}

// FormView holds the two sequence inputs and the submit button.
type FormView struct {
	inputs  [2]textinput.Model
	touched [2]bool
	errs    sequence.PairErrors
	focus   focusTarget
	keys    keyMap
	width   int
}

// NewFormView creates the input form, optionally prefilled.
func NewFormView(first, second string, keys keyMap) FormView {
	f := FormView{keys: keys}
	for i, value := range []string{first, second} {
		in := textinput.New()
		in.Prompt = "> "
		in.CharLimit = 0
		in.SetValue(value)
		f.inputs[i] = in
	}
	f.inputs[0].Focus()
	f.validate()
	return f
}

// Values returns the current field contents.
func (f FormView) Values() (string, string) {
	return f.inputs[0].Value(), f.inputs[1].Value()
}

func (f *FormView) validate() {
	first, second := f.Values()
	f.errs = sequence.ValidatePair(first, second)
}

func (f *FormView) setFocus(target focusTarget) tea.Cmd {
	f.focus = (target + focusCount) % focusCount
	var cmd tea.Cmd
	for i := range f.inputs {
		if focusTarget(i) == f.focus {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

// submit validates both fields and, if they pass, emits the pair.
func (f *FormView) submit() tea.Cmd {
	f.touched = [2]bool{true, true}
	f.validate()
	if !f.errs.Valid() {
		return nil
	}
	first, second := f.Values()
	return func() tea.Msg { return submittedMsg{first: first, second: second} }
}

func (f FormView) Update(msg tea.Msg) (FormView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		for i := range f.inputs {
			f.inputs[i].Width = max(1, msg.Width-len(f.inputs[i].Prompt)-1)
		}
		return f, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.keys.Next):
			return f, f.setFocus(f.focus + 1)
		case key.Matches(msg, f.keys.Prev):
			return f, f.setFocus(f.focus - 1)
		case key.Matches(msg, f.keys.Submit):
			return f, f.submit()
		case key.Matches(msg, f.keys.Enter):
			if f.focus == focusSubmit {
				return f, f.submit()
			}
			return f, f.setFocus(f.focus + 1)
		}
	}

	if f.focus == focusSubmit {
		return f, nil
	}

	i := int(f.focus)
	before := f.inputs[i].Value()
	var cmd tea.Cmd
	f.inputs[i], cmd = f.inputs[i].Update(msg)
	if f.inputs[i].Value() != before {
		f.touched[i] = true
		// The sibling's length check depends on this field too.
		f.validate()
	}
	return f, cmd
}

func (f FormView) View() string {
	labels := [2]string{i18n.T("form.first_label"), i18n.T("form.second_label")}
	errs := [2]error{f.errs.First, f.errs.Second}

	var parts []string
	for i := range f.inputs {
		style := labelStyle
		if focusTarget(i) == f.focus {
			style = focusedLabelStyle
		}
		parts = append(parts, style.Render(labels[i]), f.inputs[i].View())

		// Keep a line for the message so the layout does not jump.
		line := ""
		if f.touched[i] && errs[i] != nil {
			line = fieldErrorStyle.Render(errorText(errs[i]))
		}
		parts = append(parts, line)
	}

	button := buttonStyle
	if f.focus == focusSubmit {
		button = focusedButtonStyle
	}
	parts = append(parts, button.Render(i18n.T("form.submit")))

	return strings.Join(parts, "\n")
}

// errorText maps a validation error to its inline message.
func errorText(err error) string {
	switch {
	case errors.Is(err, sequence.ErrEmpty):
		return i18n.T("form.error.required")
	case errors.Is(err, sequence.ErrInvalidChars):
		return i18n.T("form.error.pattern")
	case errors.Is(err, sequence.ErrLengthMismatch):
		return i18n.T("form.error.length")
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}
