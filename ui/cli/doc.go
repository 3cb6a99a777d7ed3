// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Keynav using Cobra.
// It loads configuration, sets up logging and i18n and then hands over to
// the TUI or to one of the small inspection commands.
package cli
