package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabatui/tabata/internal/settings"
	"github.com/tabatui/tabata/internal/timer"
)

// fieldInput pairs a text input with its label and the form setter it feeds.
type fieldInput struct {
	label string
	input textinput.Model
	apply func(f *settings.Form, value string)
}

// openSettings rebuilds the form from the engine's current configuration and
// switches to the settings view.
func (m Model) openSettings() (tea.Model, tea.Cmd) {
	m.form = settings.New(m.engine.Config())
	m.inputs = buildFieldInputs(m.form)
	m.focusIdx = 0
	m.inputs[0].input.Focus()
	m.currentView = ViewSettings
	return m, textinput.Blink
}

func buildFieldInputs(f settings.Form) []fieldInput {
	newInput := func(value uint64, limit int) textinput.Model {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = limit
		ti.Width = 4
		ti.SetValue(strconv.FormatUint(value, 10))
		return ti
	}

	return []fieldInput{
		{"Work hours", newInput(timer.Hours(f.On()), 2), (*settings.Form).SetOnHours},
		{"Work minutes", newInput(timer.Minutes(f.On()), 2), (*settings.Form).SetOnMinutes},
		{"Work seconds", newInput(timer.Seconds(f.On()), 2), (*settings.Form).SetOnSeconds},
		{"Rest hours", newInput(timer.Hours(f.Off()), 2), (*settings.Form).SetOffHours},
		{"Rest minutes", newInput(timer.Minutes(f.Off()), 2), (*settings.Form).SetOffMinutes},
		{"Rest seconds", newInput(timer.Seconds(f.Off()), 2), (*settings.Form).SetOffSeconds},
		{"Cycles", newInput(uint64(f.Cycles()), 3), (*settings.Form).SetCycles},
	}
}

// handleSettingsKey processes keyboard input for the settings view.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		m.currentView = ViewTimer
		return m, nil

	case key.Matches(msg, m.keys.Apply):
		return m.applySettings()

	case key.Matches(msg, m.keys.NextField):
		return m.focusField(m.focusIdx + 1), nil

	case key.Matches(msg, m.keys.PrevField):
		return m.focusField(m.focusIdx - 1), nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx].input, cmd = m.inputs[m.focusIdx].input.Update(msg)
	return m, cmd
}

func (m Model) focusField(idx int) Model {
	n := len(m.inputs)
	idx = ((idx % n) + n) % n
	m.inputs[m.focusIdx].input.Blur()
	m.focusIdx = idx
	m.inputs[idx].input.Focus()
	return m
}

// applySettings feeds every field through the form (bad fields are silently
// kept at their previous values) and hands the engine the new configuration,
// which resets any run in progress.
func (m Model) applySettings() (tea.Model, tea.Cmd) {
	for _, field := range m.inputs {
		field.apply(&m.form, field.input.Value())
	}
	m.snap = m.engine.Handle(m.form.Command())
	m.currentView = ViewTimer
	return m, nil
}

// renderSettings renders the settings form view.
func (m Model) renderSettings() string {
	var b strings.Builder

	b.WriteString(m.styles.Logo.Render("tabata"))
	b.WriteString(m.styles.MutedText.Render(" · settings"))
	b.WriteString("\n\n")

	for i, field := range m.inputs {
		label := fmt.Sprintf("%-13s", field.label)
		if i == m.focusIdx {
			b.WriteString("  " + m.styles.AccentText.Render("> "+label))
		} else {
			b.WriteString("    " + m.styles.MutedText.Render(label))
		}
		b.WriteString(field.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render(
		"  tab: next field  •  enter: apply (resets the run)  •  esc: back"))
	return b.String()
}
