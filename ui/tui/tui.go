// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keynav/config"
	"github.com/toeirei/keynav/core/keyboard"
	"github.com/toeirei/keynav/core/notify"
	"github.com/toeirei/keynav/internal/logging"
	"github.com/toeirei/keynav/ui/tui/models/views/root"
)

// Run shows the form described by cfg until the user quits or ctx ends.
func Run(ctx context.Context, cfg config.Config) error {
	ctrl, err := cfg.NewController()
	if err != nil {
		return fmt.Errorf("could not build form: %w", err)
	}

	center := notify.Default()
	observer := keyboard.NewHeightObserver(center)
	defer observer.Close()

	model := root.New(ctrl, center, observer)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	cancel := model.BridgeKeyboardHeight(p.Send)
	defer cancel()

	logging.Infof("starting form with %d fields", ctrl.Len())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	logging.Debugf("form closed with values %q", ctrl.Values())
	return nil
}
