package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/pin-vault/models"
)

// listModel shows the decrypted collection while the vault is unlocked.
type listModel struct {
	items  models.ItemCollection
	idx    int
	status string
}

func (m listModel) current() (models.VaultItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.VaultItem{}, false
	}
	return m.items[m.idx], true
}

func (m *listModel) setItems(items models.ItemCollection) {
	m.items = items
	if m.idx >= len(items) {
		m.idx = len(items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *listModel) moveCursor(delta int) {
	if len(m.items) == 0 {
		m.idx = 0
		return
	}
	m.idx = (m.idx + delta + len(m.items)) % len(m.items)
}

func (m listModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("pin-vault"))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString("No items yet. Press n to add one.\n")
	} else {
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%s %s\n", cursor, categoryIcon(item.Category), item.Title)
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	b.WriteString("\n" + helpStyle.Render("n new  e edit  d delete  enter open  L lock  q quit"))
	return b.String()
}
