package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/pin-vault/internal/validators"
)

// setupModel is the first-run screen: choose a PIN and confirm it. The PIN
// length and confirmation match are checked here, before the engine is ever
// called; the engine re-validates the PIN itself.
type setupModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newSetupModel() setupModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 10
		inputs[i].CharLimit = validators.MaxPINLen
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '•'
	}
	inputs[0].Placeholder = "PIN"
	inputs[1].Placeholder = "Confirm PIN"
	inputs[0].Focus()

	return setupModel{inputs: inputs}
}

// pin returns the validated PIN, or an empty string and a message for the
// user when the inputs are not acceptable yet.
func (m *setupModel) pin() (string, string) {
	pin := strings.TrimSpace(m.inputs[0].Value())
	confirm := strings.TrimSpace(m.inputs[1].Value())

	if err := validators.ValidatePIN(pin); err != nil {
		return "", "PIN must be 4-6 digits"
	}
	if pin != confirm {
		return "", "PINs do not match"
	}
	return pin, ""
}

func (m *setupModel) cycleFocus(backwards bool) {
	step := 1
	if backwards {
		step = len(m.inputs) - 1
	}
	m.focus = (m.focus + step) % len(m.inputs)
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m setupModel) updateInputs(msg tea.Msg) (setupModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m setupModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("pin-vault: create your vault"))
	b.WriteString("\n\n")
	b.WriteString("Pick a 4-6 digit PIN. It encrypts everything and is never stored.\n\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n" + statusStyle.Render("Creating vault..."))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	b.WriteString("\n\n" + helpStyle.Render("tab switch field  enter create  ctrl+c quit"))
	return b.String()
}
