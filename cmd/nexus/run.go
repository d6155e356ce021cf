// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixnexus/workbook"
)

var runQuiet bool

var runCmd = &cobra.Command{
	Use:   "run <workbook.hcl|dir>",
	Short: "Run the calculations of an HCL workbook",
	Long: `Run every calculation block of a workbook file, or of every .hcl file
under a directory, in order. A calculation may use the result of an earlier
one as calculation.<name>.result.

All calculations are attempted; the command fails if any of them failed.`,
	Example: `  nexus run examples/basic.hcl`,
	Args:    cobra.ExactArgs(1),
	RunE:    runWorkbook,
}

func init() {
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "Only print the summary")
}

func runWorkbook(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	wb, err := workbook.Decode(ctx, args[0])
	if err != nil {
		return err
	}

	outcomes := workbook.Run(ctx, sess, wb)

	st := newStyles()
	out := cmd.OutOrStdout()
	for _, o := range outcomes {
		if runQuiet {
			continue
		}
		if o.Err != nil {
			fmt.Fprintf(out, "%s %s\n\n", st.Error.Render("✗ "+o.Name), o.Err)
			continue
		}
		fmt.Fprintf(out, "%s\n%s\n\n", st.Success.Render("✓ "+o.Name), renderEntry(st, o.Entry, cfg.Output.Decimals))
	}
	fmt.Fprintln(out, renderHistory(st, sess.Entries()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderStats(st, sess.Stats()))

	if n := len(outcomes); n < len(wb.Calculations) {
		return fmt.Errorf("interrupted after %d of %d calculations", n, len(wb.Calculations))
	}
	if failed := workbook.Failed(outcomes); failed > 0 {
		return fmt.Errorf("%d of %d calculations failed", failed, len(outcomes))
	}

	return nil
}
