// Package quarters implements the quarters subcommand: a fiscal-quarter
// report over a parsed batch.
package quarters

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"kibuuka/momo-csv/cmd/root"
	"kibuuka/momo-csv/internal/analytics"
	"kibuuka/momo-csv/internal/logging"
	"kibuuka/momo-csv/internal/models"
	"kibuuka/momo-csv/internal/quarter"
	"kibuuka/momo-csv/internal/smsparser"
)

// Cmd is the quarters command.
var Cmd = &cobra.Command{
	Use:   "quarters",
	Short: "Group parsed transactions into July-June fiscal quarters",
	RunE:  run,
}

func init() {
	Cmd.Flags().StringVarP(&root.SharedFlags.Input, "input", "i", "", "Input text file of pasted SMS messages (required)")
	if err := Cmd.MarkFlagRequired("input"); err != nil {
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

	buckets := quarter.Bucket(transactions)
	labels := make([]quarter.Quarter, 0, len(buckets))
	for q := range buckets {
		labels = append(labels, q)
	}
	sort.Slice(labels, func(i, j int) bool {
		if labels[i].FiscalYear != labels[j].FiscalYear {
			return labels[i].FiscalYear < labels[j].FiscalYear
		}
		return labels[i].Number < labels[j].Number
	})

	out := cmd.OutOrStdout()
	for _, q := range labels {
		txs := buckets[q]
		totals := analytics.TotalsByType(txs)
		fmt.Fprintf(out, "%s: %d transactions\n", q, len(txs))

		types := make([]string, 0, len(totals))
		for txType := range totals {
			types = append(types, string(txType))
		}
		sort.Strings(types)
		for _, txType := range types {
			fmt.Fprintf(out, "  %-11s %s\n", txType, totals[models.Type(txType)])
		}
	}
	return nil
}
