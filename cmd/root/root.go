// Package root contains the root command for the application
package root

import (
	"fmt"

	"yroth/expensecat/internal/config"
	"yroth/expensecat/internal/container"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// App is the wired dependency container, built in PersistentPreRunE
	App *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expensecat",
		Short: "A CLI tool to categorize bank transaction descriptions.",
		Long: `expensecat assigns spending categories to freeform transaction
descriptions using learned keyword rules, fuzzy vendor matching, and an
optional remote classifier. It learns from user corrections.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expensecat!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv(Log)

			cfg, err := config.InitializeConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			Log = config.ConfigureLoggingFromConfig(cfg)

			App, err = container.NewContainer(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("wiring dependencies: %w", err)
			}
			return nil
		},
		// Save vendor mappings when ANY command finishes: batch runs grow
		// the session map and those additions must survive the process.
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if App == nil {
				return
			}
			if err := App.GetVendorStore().SaveVendors(App.GetVendors()); err != nil {
				Log.Warnf("Failed to save vendor mappings: %v", err)
			}
			if err := App.Close(); err != nil {
				Log.Warnf("Failed to close container: %v", err)
			}
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific categorize and learn command flags
	Description string
	Amount      string
	Date        string
	Category    string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
