// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/pin-vault/internal/logger"
	"github.com/MKhiriev/pin-vault/internal/service"
)

// Run drives the full interactive session: setup or unlock first, then the
// item list until the user quits. Returns [ErrUserQuit] when the user left
// on purpose so callers can exit cleanly.
func Run(ctx context.Context, vault service.VaultService, log *logger.Logger) error {
	model := newAppModel(ctx, vault, log)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}
