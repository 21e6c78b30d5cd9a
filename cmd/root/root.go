// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"kibuuka/momo-csv/internal/config"
	"kibuuka/momo-csv/internal/logging"
)

// CommonFlags holds the flags shared by the subcommands.
type CommonFlags struct {
	Input  string
	Output string
	User   string
	TopN   int
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration, available to all
	// subcommands after PersistentPreRun.
	Cfg *config.Config

	// SharedFlags are the flag values common to multiple commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "momo-csv",
		Short: "Extract mobile-money transactions from pasted SMS text.",
		Long: `momo-csv parses blocks of pasted mobile-money SMS notifications
(MTN and legacy TID-based formats) into normalized transaction records,
and exports, summarizes or persists them.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to momo-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
			logging.SetLogger(logging.NewLogrusAdapterFromLogger(Log))

			cfg, err := config.Load()
			if err != nil {
				Log.Fatalf("Error loading configuration: %v", err)
			}
			Cfg = cfg
		},
	}
)
