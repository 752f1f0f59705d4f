// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/pin-vault/models"
)

// Engine calls run as tea commands so that the 100,000-iteration key
// derivation never blocks the render loop. The single-flight discipline the
// engine requires is enforced twice: the appModel refuses to enqueue a
// second command while busy, and the service serializes internally anyway.

type setupDoneMsg struct{ err error }

type unlockDoneMsg struct{ err error }

type itemsLoadedMsg struct {
	items models.ItemCollection
	err   error
}

type mutationDoneMsg struct {
	status string
	err    error
}

func (m appModel) cmdSetupPin(pin string) tea.Cmd {
	return func() tea.Msg {
		return setupDoneMsg{err: m.vault.SetupPin(m.ctx, pin)}
	}
}

func (m appModel) cmdUnlock(pin string) tea.Cmd {
	return func() tea.Msg {
		return unlockDoneMsg{err: m.vault.Unlock(m.ctx, pin)}
	}
}

func (m appModel) cmdLoadItems() tea.Cmd {
	return func() tea.Msg {
		items, err := m.vault.Items()
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdAddItem(item models.VaultItem, pin string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.vault.AddItem(m.ctx, item, pin)
		return mutationDoneMsg{status: "Item created", err: err}
	}
}

func (m appModel) cmdUpdateItem(item models.VaultItem, pin string) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{status: "Item updated", err: m.vault.UpdateItem(m.ctx, item, pin)}
	}
}

func (m appModel) cmdDeleteItem(id string, pin string) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{status: "Item deleted", err: m.vault.DeleteItem(m.ctx, id, pin)}
	}
}
