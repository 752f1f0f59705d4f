package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/pin-vault/models"
)

// detailModel shows a single item. Secret fields stay masked until
// revealed; either field can be copied to the clipboard.
type detailModel struct {
	item     models.VaultItem
	revealed bool
	status   string
}

func newDetailModel(item models.VaultItem) detailModel {
	return detailModel{item: item}
}

func (m detailModel) View() string {
	primary, secondary := fieldLabels(m.item.Category)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.item.Title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Category:  %s\n", m.item.Category)
	fmt.Fprintf(&b, "%-10s %s\n", primary+":", m.item.PrimaryField)

	if m.item.SecondaryField != "" {
		value := m.item.SecondaryField
		if secretField(m.item.Category) && !m.revealed {
			value = strings.Repeat("•", len(value))
		}
		fmt.Fprintf(&b, "%-10s %s\n", secondary+":", value)
	}
	if m.item.Notes != "" {
		fmt.Fprintf(&b, "\nNotes:\n%s\n", m.item.Notes)
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	b.WriteString("\n\n" + helpStyle.Render("c copy  C copy secret  r reveal  e edit  d delete  esc back"))
	return b.String()
}
