package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/pin-vault/internal/validators"
	"github.com/MKhiriev/pin-vault/models"
)

// Form input indexes. The category row sits between title and primary and
// is cycled with left/right rather than typed.
const (
	formTitle = iota
	formPrimary
	formSecondary
	formNotes
	formPIN
	formInputCount
)

// formModel is the shared create/edit form. Every save re-enters the PIN:
// the engine verifies it against the persisted envelope before anything is
// written, so a stale session can never push a mutation through.
type formModel struct {
	inputs      []textinput.Model
	focus       int
	onCategory  bool
	categoryIdx int
	editing     bool
	itemID      string
	submitting  bool
	errMsg      string
}

func newFormModel(item *models.VaultItem) formModel {
	inputs := make([]textinput.Model, formInputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[formTitle].Placeholder = "Title"
	inputs[formSecondary].EchoMode = textinput.EchoPassword
	inputs[formSecondary].EchoCharacter = '•'
	inputs[formPIN].Placeholder = "PIN to confirm"
	inputs[formPIN].Width = 10
	inputs[formPIN].CharLimit = validators.MaxPINLen
	inputs[formPIN].EchoMode = textinput.EchoPassword
	inputs[formPIN].EchoCharacter = '•'
	inputs[formTitle].Focus()

	m := formModel{inputs: inputs}
	if item == nil {
		m.cycleCategory(0)
		return m
	}

	m.editing = true
	m.itemID = item.ID
	for i, c := range models.Categories {
		if c == item.Category {
			m.categoryIdx = i
		}
	}
	m.cycleCategory(0)
	m.inputs[formTitle].SetValue(item.Title)
	m.inputs[formPrimary].SetValue(item.PrimaryField)
	m.inputs[formSecondary].SetValue(item.SecondaryField)
	m.inputs[formNotes].SetValue(item.Notes)
	return m
}

func (m formModel) category() models.Category {
	return models.Categories[m.categoryIdx]
}

// toItem assembles the vault item from the form fields. The ID is empty for
// a new item; the engine assigns one.
func (m formModel) toItem() models.VaultItem {
	return models.VaultItem{
		ID:             m.itemID,
		Title:          strings.TrimSpace(m.inputs[formTitle].Value()),
		Category:       m.category(),
		PrimaryField:   m.inputs[formPrimary].Value(),
		SecondaryField: m.inputs[formSecondary].Value(),
		Notes:          m.inputs[formNotes].Value(),
	}
}

// validate checks the form before the engine is called and returns a
// user-facing message, or the PIN on success.
func (m formModel) validate() (string, string) {
	if err := validators.ValidateItem(m.toItem()); err != nil {
		return "", "Title must not be empty"
	}

	pin := strings.TrimSpace(m.inputs[formPIN].Value())
	if err := validators.ValidatePIN(pin); err != nil {
		return "", "PIN must be 4-6 digits"
	}
	return pin, ""
}

// focusRows counts the focusable rows: the inputs plus the category row.
func (m formModel) focusRows() int {
	return formInputCount + 1
}

// rowToInput maps a focus row to the input index, skipping the category row
// (row 1). Returns -1 for the category row itself.
func rowToInput(row int) int {
	switch {
	case row == 0:
		return formTitle
	case row == 1:
		return -1
	default:
		return row - 1
	}
}

func (m *formModel) cycleFocus(backwards bool) {
	rows := m.focusRows()
	step := 1
	if backwards {
		step = rows - 1
	}
	m.focus = (m.focus + step) % rows
	m.onCategory = m.focus == 1

	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if idx := rowToInput(m.focus); idx >= 0 {
		m.inputs[idx].Focus()
	}
}

func (m *formModel) cycleCategory(delta int) {
	n := len(models.Categories)
	m.categoryIdx = (m.categoryIdx + delta + n) % n

	primary, secondary := fieldLabels(m.category())
	m.inputs[formPrimary].Placeholder = primary
	m.inputs[formSecondary].Placeholder = secondary
}

func (m formModel) updateInputs(msg tea.Msg) (formModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m formModel) View() string {
	header := "New item"
	if m.editing {
		header = "Edit item"
	}
	primary, secondary := fieldLabels(m.category())

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")
	b.WriteString(m.inputs[formTitle].View())
	b.WriteString("\n")

	categoryRow := fmt.Sprintf("Category: < %s >", m.category())
	if m.onCategory {
		categoryRow = titleStyle.Render(categoryRow)
	}
	b.WriteString(categoryRow)
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s: %s\n", primary, m.inputs[formPrimary].View())
	fmt.Fprintf(&b, "%s: %s\n", secondary, m.inputs[formSecondary].View())
	fmt.Fprintf(&b, "Notes: %s\n", m.inputs[formNotes].View())
	fmt.Fprintf(&b, "\n%s\n", m.inputs[formPIN].View())

	if m.submitting {
		b.WriteString("\n" + statusStyle.Render("Saving..."))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	b.WriteString("\n\n" + helpStyle.Render("tab next field  left/right category  enter save  esc cancel"))
	return b.String()
}
