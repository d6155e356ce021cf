// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixnexus/matrix"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the available operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), renderOps(newStyles(), matrix.AllOps()))
		return nil
	},
}

func renderOps(st Styles, ops []matrix.OpID) string {
	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		operand := "grid"
		if op.Mode == matrix.ModeScalar {
			operand = "scalar"
		}
		rows = append(rows, []string{op.String(), op.DisplayName(), op.Kind.Symbol(), operand})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.Border).
		Headers("NAME", "OPERATION", "SYMBOL", "OPERAND").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.Label.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		String()
}
