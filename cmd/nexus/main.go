// SPDX-License-Identifier: MIT

// Command nexus is the command-line front end of the matrixnexus grid calculator.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matrixnexus/config"
	"github.com/katalvlaran/matrixnexus/logging"
	"github.com/katalvlaran/matrixnexus/session"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Set up by PersistentPreRunE
	logger *zap.Logger
	cfg    *config.Config
	sess   *session.Session
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "nexus",
	Short: "nexus - element-wise grid calculator",
	Long: `nexus applies element-wise arithmetic to small numeric grids.

Ten operations are available: add, sub, mult, div and exp, either between two
grids of the same shape (m_*) or between a grid and a single number (s_*).
Division by zero and similar cases follow IEEE-754 and yield Inf or NaN.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(opsCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads configuration, builds the logger and opens a session.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		c.Log.Level = "debug"
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	l, err := logging.New(c.Log.Level, c.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, logger = c, l
	sess = session.New(append(c.SessionOptions(), session.WithLogger(l))...)
	cmd.SetContext(logging.WithLogger(commandContext(cmd), l))
	logger.Debug("configuration loaded", zap.String("path", configPath))

	return nil
}

// commandContext returns cmd's context, or Background when cmd was not started
// through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, newStyles().Error.Render("Error: "+err.Error()))
		stop()
		os.Exit(1)
	}
}
