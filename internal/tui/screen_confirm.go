package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/pin-vault/internal/validators"
	"github.com/MKhiriev/pin-vault/models"
)

// confirmModel asks for confirmation plus the PIN before a delete. The
// delete is only attempted once both are supplied.
type confirmModel struct {
	item       models.VaultItem
	pinInput   textinput.Model
	submitting bool
	errMsg     string
}

func newConfirmModel(item models.VaultItem) confirmModel {
	pin := textinput.New()
	pin.Placeholder = "PIN to confirm"
	pin.Width = 10
	pin.CharLimit = validators.MaxPINLen
	pin.EchoMode = textinput.EchoPassword
	pin.EchoCharacter = '•'
	pin.Focus()

	return confirmModel{item: item, pinInput: pin}
}

// pin validates the entered PIN and returns it, or a user-facing message.
func (m confirmModel) pin() (string, string) {
	pin := strings.TrimSpace(m.pinInput.Value())
	if err := validators.ValidatePIN(pin); err != nil {
		return "", "PIN must be 4-6 digits"
	}
	return pin, ""
}

func (m confirmModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Delete item"))
	b.WriteString("\n\n")
	b.WriteString("Delete \"" + m.item.Title + "\"? This cannot be undone.\n\n")
	b.WriteString(m.pinInput.View())

	if m.submitting {
		b.WriteString("\n" + statusStyle.Render("Deleting..."))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	b.WriteString("\n\n" + helpStyle.Render("enter delete  esc cancel"))
	return boxStyle.Render(b.String())
}
