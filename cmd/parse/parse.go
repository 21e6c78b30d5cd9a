// Package parse implements the parse subcommand: pasted SMS text in, CSV
// out, optionally persisting the batch for a user.
package parse

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kibuuka/momo-csv/cmd/root"
	"kibuuka/momo-csv/internal/common"
	"kibuuka/momo-csv/internal/logging"
	"kibuuka/momo-csv/internal/smsparser"
	"kibuuka/momo-csv/internal/store"
)

// Cmd is the parse command.
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse pasted SMS text into transactions and write them to CSV",
	Long: `Parse reads a text file of pasted mobile-money SMS notifications,
extracts transaction records and writes them to a CSV file. With --user
the batch is also persisted to the data directory.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&root.SharedFlags.Input, "input", "i", "", "Input text file of pasted SMS messages (required)")
	Cmd.Flags().StringVarP(&root.SharedFlags.Output, "output", "o", "", "Output CSV file (required)")
	Cmd.Flags().StringVarP(&root.SharedFlags.User, "user", "u", "", "Also persist the batch under this user id")
	if err := Cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	if err := Cmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(root.SharedFlags.Input)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	parser := smsparser.New(logger,
		smsparser.WithMinFragmentLength(root.Cfg.Parser.MinFragmentLength),
		smsparser.WithDefaultCurrency(root.Cfg.Parser.DefaultCurrency))

	transactions := parser.ParseText(string(text))
	root.Log.Infof("Extracted %d transactions", len(transactions))

	common.SetDelimiter(rune(root.Cfg.CSV.Delimiter[0]))
	if err := common.WriteTransactionsToCSV(transactions, root.SharedFlags.Output); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	root.Log.Infof("Wrote %s", root.SharedFlags.Output)

	if root.SharedFlags.User != "" {
		st, err := store.New(root.Cfg.Data.Directory, logger)
		if err != nil {
			return err
		}
		if err := st.Save(root.SharedFlags.User, transactions); err != nil {
			return err
		}
		root.Log.Infof("Persisted batch for user %s", root.SharedFlags.User)
	}

	return nil
}
