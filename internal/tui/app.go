// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/pin-vault/internal/crypto"
	"github.com/MKhiriev/pin-vault/internal/logger"
	"github.com/MKhiriev/pin-vault/internal/service"
	"github.com/MKhiriev/pin-vault/models"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenSetup screen = iota
	screenUnlock
	screenList
	screenDetail
	screenForm
)

// appModel routes messages to the active screen and owns everything
// cross-screen: the busy flag that keeps a second engine call from being
// enqueued while one is in flight, the delete confirmation overlay, and the
// clipboard.
type appModel struct {
	ctx           context.Context
	vault         service.VaultService
	log           *logger.Logger
	currentScreen screen

	setup  setupModel
	unlock unlockModel
	list   listModel
	detail detailModel
	form   formModel

	showConfirm bool
	confirm     confirmModel

	busy bool
	err  error
}

func newAppModel(ctx context.Context, vault service.VaultService, log *logger.Logger) appModel {
	m := appModel{
		ctx:    ctx,
		vault:  vault,
		log:    log,
		setup:  newSetupModel(),
		unlock: newUnlockModel(),
	}

	switch vault.State() {
	case models.Uninitialized:
		m.currentScreen = screenSetup
	default:
		m.currentScreen = screenUnlock
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case setupDoneMsg:
		m.busy = false
		m.setup.submitting = false
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("vault setup failed")
			m.setup.errMsg = errorMessage(msg.err)
			return m, nil
		}
		m.currentScreen = screenList
		return m, m.cmdLoadItems()
	case unlockDoneMsg:
		m.busy = false
		m.unlock.reset()
		if msg.err != nil {
			m.unlock.errMsg = errorMessage(msg.err)
			return m, nil
		}
		m.unlock.errMsg = ""
		m.currentScreen = screenList
		return m, m.cmdLoadItems()
	case itemsLoadedMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("loading items failed")
			return m, nil
		}
		m.list.setItems(msg.items)
		return m, nil
	case mutationDoneMsg:
		return m.finishMutation(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenSetup:
		return m.updateSetup(msg)
	case screenUnlock:
		return m.updateUnlock(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenSetup:
		body = m.setup.View()
	case screenUnlock:
		body = m.unlock.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}

	return appStyle.Render(body)
}

// finishMutation routes the result of an add, update, or delete back to the
// screen that started it. A delete that finds the item already gone counts
// as success: the user wanted it gone and it is.
func (m appModel) finishMutation(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	if msg.err != nil && m.showConfirm && errors.Is(msg.err, service.ErrItemNotFound) {
		msg.err = nil
	}

	if msg.err != nil {
		if m.showConfirm {
			m.confirm.submitting = false
			m.confirm.errMsg = errorMessage(msg.err)
			m.confirm.pinInput.SetValue("")
		} else {
			m.form.submitting = false
			m.form.errMsg = errorMessage(msg.err)
			m.form.inputs[formPIN].SetValue("")
		}
		return m, nil
	}

	m.showConfirm = false
	m.currentScreen = screenList
	m.list.status = msg.status
	return m, m.cmdLoadItems()
}

func (m appModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.setup.cycleFocus(false)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setup.cycleFocus(true)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.busy {
				return m, nil
			}
			pin, errMsg := m.setup.pin()
			if errMsg != "" {
				m.setup.errMsg = errMsg
				return m, nil
			}
			m.setup.errMsg = ""
			m.setup.submitting = true
			m.busy = true
			return m, m.cmdSetupPin(pin)
		}
	}

	var cmd tea.Cmd
	m.setup, cmd = m.setup.updateInputs(msg)
	return m, cmd
}

func (m appModel) updateUnlock(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && key.Matches(keyMsg, keys.enter) {
		if m.busy {
			return m, nil
		}
		pin, errMsg := m.unlock.pin()
		if errMsg != "" {
			m.unlock.errMsg = errMsg
			return m, nil
		}
		m.unlock.errMsg = ""
		m.unlock.submitting = true
		m.busy = true
		return m, m.cmdUnlock(pin)
	}

	var cmd tea.Cmd
	m.unlock, cmd = m.unlock.update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		m.list.moveCursor(-1)
	case key.Matches(keyMsg, keys.down):
		m.list.moveCursor(1)
	case key.Matches(keyMsg, keys.enter):
		if item, ok := m.list.current(); ok {
			m.detail = newDetailModel(item)
			m.currentScreen = screenDetail
		}
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormModel(nil)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.edit):
		if item, ok := m.list.current(); ok {
			m.form = newFormModel(&item)
			m.currentScreen = screenForm
		}
	case key.Matches(keyMsg, keys.delete):
		if item, ok := m.list.current(); ok {
			m.confirm = newConfirmModel(item)
			m.showConfirm = true
		}
	case key.Matches(keyMsg, keys.lock):
		return m.lockVault()
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.reveal):
		m.detail.revealed = !m.detail.revealed
	case key.Matches(keyMsg, keys.copy):
		m.detail.status = copyToClipboard(m.detail.item.PrimaryField)
	case key.Matches(keyMsg, keys.copySec):
		m.detail.status = copyToClipboard(m.detail.item.SecondaryField)
	case key.Matches(keyMsg, keys.edit):
		m.form = newFormModel(&m.detail.item)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		m.confirm = newConfirmModel(m.detail.item)
		m.showConfirm = true
	case key.Matches(keyMsg, keys.lock):
		return m.lockVault()
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.cycleFocus(false)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.cycleFocus(true)
			return m, nil
		case m.form.onCategory && key.Matches(keyMsg, keys.left):
			m.form.cycleCategory(-1)
			return m, nil
		case m.form.onCategory && key.Matches(keyMsg, keys.right):
			m.form.cycleCategory(1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.busy {
				return m, nil
			}
			pin, errMsg := m.form.validate()
			if errMsg != "" {
				m.form.errMsg = errMsg
				return m, nil
			}
			m.form.errMsg = ""
			m.form.submitting = true
			m.busy = true
			if m.form.editing {
				return m, m.cmdUpdateItem(m.form.toItem(), pin)
			}
			return m, m.cmdAddItem(m.form.toItem(), pin)
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.updateInputs(msg)
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.showConfirm = false
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.busy {
			return m, nil
		}
		pin, errMsg := m.confirm.pin()
		if errMsg != "" {
			m.confirm.errMsg = errMsg
			return m, nil
		}
		m.confirm.errMsg = ""
		m.confirm.submitting = true
		m.busy = true
		return m, m.cmdDeleteItem(m.confirm.item.ID, pin)
	}

	var cmd tea.Cmd
	m.confirm.pinInput, cmd = m.confirm.pinInput.Update(msg)
	return m, cmd
}

// lockVault discards the decrypted collection and returns to the unlock
// screen. Everything the screens held onto is dropped with them.
func (m appModel) lockVault() (tea.Model, tea.Cmd) {
	if err := m.vault.Lock(); err != nil {
		m.list.status = errorMessage(err)
		return m, nil
	}

	m.list = listModel{}
	m.detail = detailModel{}
	m.form = formModel{}
	m.showConfirm = false
	m.unlock = newUnlockModel()
	m.currentScreen = screenUnlock
	return m, nil
}

func copyToClipboard(value string) string {
	if err := clipboard.WriteAll(value); err != nil {
		return "Clipboard unavailable"
	}
	return "Copied!"
}

// errorMessage translates engine errors into user-facing text. The
// authentication message is deliberately generic.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, crypto.ErrAuthentication):
		return "Wrong PIN or corrupted vault"
	case errors.Is(err, service.ErrItemNotFound):
		return "Item no longer exists"
	case errors.Is(err, service.ErrAlreadyInitialized):
		return "Vault already exists"
	case errors.Is(err, service.ErrNotInitialized):
		return "Vault is not set up yet"
	case errors.Is(err, service.ErrVaultLocked):
		return "Vault is locked"
	default:
		return err.Error()
	}
}
