// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matrixnexus/converters"
	"github.com/katalvlaran/matrixnexus/matrix"
)

var (
	computeOp      string
	computeGrid    string
	computeOperand string
	computeScalar  float64
	computeJSON    bool
	computeOut     string
	computeExport  bool
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Apply one operation to a grid",
	Long: `Apply one element-wise operation and print the result.

Grids are written as rows of numbers, e.g. "[1, 2]; [3, 4]" or "1 2; 3 4".
A value starting with @ is read from a file (.json, .yaml or .txt).

Element-wise operations (m_*) need --operand with a grid of the same shape.
Scalar operations (s_*) take --scalar, or --operand holding a single number;
without either the configured default scalar is used.`,
	Example: `  nexus compute --op m_add --grid "[1,2];[3,4]" --operand "[10,20];[30,40]"
  nexus compute --op s_div --grid @a.json --scalar 0 --json`,
	Args: cobra.NoArgs,
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().StringVarP(&computeOp, "op", "o", "", "Operation name, see 'nexus ops'")
	computeCmd.Flags().StringVarP(&computeGrid, "grid", "g", "", "Primary grid (text or @file)")
	computeCmd.Flags().StringVar(&computeOperand, "operand", "", "Operand grid for m_* operations, or a number for s_*")
	computeCmd.Flags().Float64VarP(&computeScalar, "scalar", "s", 0, "Scalar for s_* operations")
	computeCmd.Flags().BoolVar(&computeJSON, "json", false, "Print the result as JSON")
	computeCmd.Flags().StringVar(&computeOut, "out", "", "Also write the result to a file, format by extension")
	computeCmd.Flags().BoolVar(&computeExport, "export", false, "Also write the result to the configured export file")
	_ = computeCmd.MarkFlagRequired("op")
	_ = computeCmd.MarkFlagRequired("grid")
}

func runCompute(cmd *cobra.Command, args []string) error {
	op, err := matrix.ParseOpID(computeOp)
	if err != nil {
		return err
	}

	primary, err := readGrid(computeGrid)
	if err != nil {
		return fmt.Errorf("grid: %w", err)
	}

	operand, err := buildOperand(op, cmd.Flags().Changed("scalar"))
	if err != nil {
		return err
	}

	entry, err := sess.Perform(cmd.Context(), op, primary, operand)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if computeJSON {
		if err := converters.WriteJSON(out, entry.Result); err != nil {
			return err
		}
		fmt.Fprintln(out)
	} else {
		fmt.Fprintln(out, renderEntry(newStyles(), entry, cfg.Output.Decimals))
	}

	if computeOut != "" {
		if err := writeGrid(computeOut, entry.Result); err != nil {
			return err
		}
	}
	if computeExport {
		if err := writeGrid(cfg.Output.ExportName, entry.Result); err != nil {
			return err
		}
	}

	return nil
}

// buildOperand picks the second input for op from the compute flags.
func buildOperand(op matrix.OpID, scalarSet bool) (matrix.Operand, error) {
	if op.Mode == matrix.ModeElement {
		if computeOperand == "" {
			return matrix.Operand{}, fmt.Errorf("%s needs --operand with a grid", op)
		}
		g, err := readGrid(computeOperand)
		if err != nil {
			return matrix.Operand{}, fmt.Errorf("operand: %w", err)
		}
		return matrix.GridOperand(g), nil
	}

	switch {
	case scalarSet:
		return matrix.ScalarOperand(computeScalar), nil
	case computeOperand != "":
		s, err := strconv.ParseFloat(strings.TrimSpace(computeOperand), 64)
		if err != nil {
			return matrix.Operand{}, fmt.Errorf("operand: %s needs a number, got %q", op, computeOperand)
		}
		return matrix.ScalarOperand(s), nil
	default:
		return matrix.ScalarOperand(cfg.Grid.DefaultScalar), nil
	}
}

// readGrid parses an inline grid, or loads one from a file when s starts with @.
func readGrid(s string) (matrix.Grid, error) {
	path, ok := strings.CutPrefix(s, "@")
	if !ok {
		return converters.ParseText(s)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	format, err := converters.ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		format = converters.TextFormat
	}

	return converters.Decode(format, data)
}

// writeGrid saves g to path in the format named by its extension.
func writeGrid(path string, g matrix.Grid) error {
	var buf bytes.Buffer
	if err := converters.Encode(&buf, converters.FormatForPath(path), g, cfg.Output.Decimals); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("result written", zap.String("path", path))

	return nil
}
