// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/keynav/config"
	"github.com/toeirei/keynav/i18n"
	"github.com/toeirei/keynav/internal/logging"
	"github.com/toeirei/keynav/ui/tui"
	"golang.org/x/term"
)

var appConfig config.Config

// logCloser is the log file opened by setupDefaultServices.
var logCloser io.Closer

// isTerminal reports whether stdout can host the TUI.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// runTUI is replaced in tests.
var runTUI = tui.Run

func setupDefaultServices(cmd *cobra.Command, _ []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	// running without any config file is fine
	if err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := appConfig.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	i18n.Init(appConfig.Language)

	closer, err := logging.Setup(appConfig.Log.File, appConfig.Log.Level)
	if err != nil {
		return err
	}
	logCloser = closer
	logging.Debugf("config loaded: %d fields, previous=%s, language=%s",
		appConfig.Fields.Count, appConfig.Navigation.Previous, appConfig.Language)
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	defer func() {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	}()
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates the root command with all subcommands attached. Every
// call returns fresh commands so tests can run them in isolation.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "keynav",
		Short:             i18n.T("cli.short"),
		Long:              i18n.T("cli.long"),
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal() {
				return errors.New(i18n.T("cli.not_a_terminal"))
			}
			return runTUI(cmd.Context(), appConfig)
		},
	}
	cmd.Version = compositeVersion()

	defaults := config.Default()
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().Int("fields", defaults.Fields.Count, "number of form fields")
	cmd.PersistentFlags().String("lang", defaults.Language, `UI language ("en", "de")`)
	cmd.PersistentFlags().String("previous", defaults.Navigation.Previous,
		fmt.Sprintf("previous on the first field: %q or %q", config.PreviousClamp, config.PreviousLegacy))
	cmd.PersistentFlags().String("log-file", "", "write logs to this file")
	cmd.PersistentFlags().String("log-level", defaults.Log.Level, "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newKeyboardTypesCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}
