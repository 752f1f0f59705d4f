package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/pin-vault/internal/validators"
)

// unlockModel is the locked-vault screen: one masked PIN input. A failed
// unlock shows one generic message; the engine cannot (and deliberately
// does not) distinguish a wrong PIN from a corrupted vault.
type unlockModel struct {
	input      textinput.Model
	submitting bool
	errMsg     string
}

func newUnlockModel() unlockModel {
	input := textinput.New()
	input.Placeholder = "PIN"
	input.Width = 10
	input.CharLimit = validators.MaxPINLen
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()

	return unlockModel{input: input}
}

// pin returns the entered PIN, or an empty string and a message when the
// input is not a plausible PIN.
func (m *unlockModel) pin() (string, string) {
	pin := strings.TrimSpace(m.input.Value())
	if err := validators.ValidatePIN(pin); err != nil {
		return "", "PIN must be 4-6 digits"
	}
	return pin, ""
}

func (m *unlockModel) reset() {
	m.input.SetValue("")
	m.submitting = false
}

func (m unlockModel) update(msg tea.Msg) (unlockModel, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m unlockModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("pin-vault: locked"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n" + statusStyle.Render("Unlocking..."))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	b.WriteString("\n\n" + helpStyle.Render("enter unlock  ctrl+c quit"))
	return b.String()
}
