// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"github.com/toeirei/keynav/config"
	"github.com/toeirei/keynav/i18n"
	"github.com/toeirei/keynav/util/mapst"
)

var ErrAborted = errors.New("aborted")

var ErrConfigExists = errors.New("config file already exists")

// askOne is replaced in tests.
var askOne = survey.AskOne

// writeConfig is replaced in tests.
var writeConfig = config.WriteConfigFile[config.Config]

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// config init must work even when the current config is broken
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lang, _ := cmd.Flags().GetString("lang")
			i18n.Init(lang)
			return nil
		},
	}

	var system, interactive, force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				path, err := config.GetConfigPath(system)
				if err != nil {
					return err
				}
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%w: %s", ErrConfigExists, i18n.T("cli.config_exists", path))
				}
			}

			c := config.Default()
			applyInitFlags(cmd, &c)
			if interactive {
				if err := promptConfig(&c); err != nil {
					return err
				}
			}
			if err := c.Validate(); err != nil {
				return err
			}
			path, err := writeConfig(&c, system)
			if err != nil {
				return fmt.Errorf("could not write config: %w", err)
			}
			cmd.Println(i18n.T("cli.config_written", path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "write the system-wide config instead of the user config")
	initCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "ask for each setting")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}

// applyInitFlags copies the global --lang, --fields and --previous flags into
// c when they were given on the command line.
func applyInitFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("lang") {
		c.Language, _ = flags.GetString("lang")
	}
	if flags.Changed("fields") {
		c.Fields.Count, _ = flags.GetInt("fields")
	}
	if flags.Changed("previous") {
		c.Navigation.Previous, _ = flags.GetString("previous")
	}
}

// promptConfig asks for language, field count and previous mode, using the
// values in c as defaults.
func promptConfig(c *config.Config) error {
	locales := i18n.GetAvailableLocales()
	tags := mapst.SortedKeys(locales)
	lang := c.Language
	if err := askOne(&survey.Select{
		Message: i18n.T("cli.prompt_language"),
		Options: tags,
		Default: c.Language,
		Description: func(value string, _ int) string {
			return locales[value]
		},
	}, &lang); err != nil {
		return translateSurveyErr(err)
	}

	count := strconv.Itoa(c.Fields.Count)
	if err := askOne(&survey.Input{
		Message: i18n.T("cli.prompt_fields"),
		Default: count,
	}, &count, survey.WithValidator(validateFieldCount)); err != nil {
		return translateSurveyErr(err)
	}

	previous := c.Navigation.Previous
	if err := askOne(&survey.Select{
		Message: i18n.T("cli.prompt_previous"),
		Options: []string{config.PreviousClamp, config.PreviousLegacy},
		Default: c.Navigation.Previous,
	}, &previous); err != nil {
		return translateSurveyErr(err)
	}

	n, err := strconv.Atoi(count)
	if err != nil {
		return err
	}
	c.Language = lang
	c.Fields.Count = n
	c.Navigation.Previous = previous
	return nil
}

func validateFieldCount(ans any) error {
	s, ok := ans.(string)
	if !ok {
		return errors.New("expected text")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("%q is not a positive number", s)
	}
	return nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
