package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spellsheet/internal/application"
	"spellsheet/internal/bootstrap"
	"spellsheet/internal/config"
	"spellsheet/internal/logger"
)

var (
	storePath string
	logLevel  string
	rt        *bootstrap.Runtime
)

var rootCmd = &cobra.Command{
	Use:   "spellsheet-cli",
	Short: "CLI for spelling practice sheets",
	Long: `spellsheet-cli manages a personal word library and generates
spelling practice sheets from it.

Random picks favour the words you have practiced least and skip words
from your most recent sheets. Every saved sheet is kept in history.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		if rt != nil {
			// a previous run ended in an error before PersistentPostRunE
			rt.Close()
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if storePath != "" {
			cfg.Store.Path = storePath
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}

		log := logger.Setup(cfg.Log, os.Stderr)
		rt, err = bootstrap.Open(cmd.Context(), cfg, log)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if rt == nil {
			return nil
		}
		return rt.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "path to the SQLite store (default <data dir>/spellsheet.db)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// GetRuntime returns the opened store and helpers
func GetRuntime() *bootstrap.Runtime {
	return rt
}

// GetSession returns the initialized session
func GetSession() *application.Session {
	return rt.Session
}
