// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/toeirei/keynav/core/keyboard"
	"github.com/toeirei/keynav/i18n"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newKeyboardTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keyboard-types",
		Short: "Print the keyboard each field requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kbTable, err := appConfig.KeyboardTable()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), keyboardTypesTable(kbTable, appConfig.Fields.Count))
			return err
		},
	}
}

// keyboardTypesTable renders one row per field: index, label and keyboard.
func keyboardTypesTable(kbTable keyboard.Table, fields int) string {
	rows := make([][]string, 0, fields)
	for i := range fields {
		kt := kbTable.Lookup(i)
		rows = append(rows, []string{
			strconv.Itoa(i),
			i18n.T("form.label", i+1),
			fmt.Sprintf("%s (%s)", i18n.T("keyboard_type."+kt.String()), kt),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", i18n.T("cli.field"), i18n.T("cli.keyboard")).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
