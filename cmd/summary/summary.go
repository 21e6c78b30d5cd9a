// Package summary implements the summary subcommand: aggregate statistics
// over a parsed batch.
package summary

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"kibuuka/momo-csv/cmd/root"
	"kibuuka/momo-csv/internal/analytics"
	"kibuuka/momo-csv/internal/logging"
	"kibuuka/momo-csv/internal/models"
	"kibuuka/momo-csv/internal/smsparser"
	"kibuuka/momo-csv/internal/tags"
)

// Cmd is the summary command.
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Print aggregate statistics for pasted SMS text",
	Long: `Summary parses a text file of pasted SMS notifications and prints
totals by type, fees, taxes, income, top counterparties and the dated vs
undated split. With tag rules configured it also reports tag counts.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&root.SharedFlags.Input, "input", "i", "", "Input text file of pasted SMS messages (required)")
	Cmd.Flags().IntVarP(&root.SharedFlags.TopN, "top", "n", 5, "Number of frequent counterparties to show")
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

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Transactions: %d\n", len(transactions))

	totals := analytics.TotalsByType(transactions)
	averages := analytics.AveragesByType(transactions)
	types := make([]string, 0, len(totals))
	for txType := range totals {
		types = append(types, string(txType))
	}
	sort.Strings(types)
	for _, txType := range types {
		t := models.Type(txType)
		fmt.Fprintf(out, "  %-11s total %s  avg %s\n", txType, totals[t], averages[t].Round(2))
	}

	fmt.Fprintf(out, "Total fees:   %s\n", analytics.TotalFees(transactions))
	fmt.Fprintf(out, "Total taxes:  %s\n", analytics.TotalTaxes(transactions))
	fmt.Fprintf(out, "Total income: %s\n", analytics.TotalIncome(transactions))

	dated, undated := analytics.SplitDated(transactions)
	fmt.Fprintf(out, "Dated: %d  Undated (timestamp defaulted): %d\n", len(dated), len(undated))

	fmt.Fprintln(out, "Frequent counterparties:")
	for _, c := range analytics.FrequentContacts(transactions, root.SharedFlags.TopN) {
		fmt.Fprintf(out, "  %3d  %s\n", c.Count, c.Name)
	}

	if root.Cfg.Tags.RulesFile != "" {
		rules, err := tags.LoadRules(root.Cfg.Tags.RulesFile)
		if err != nil {
			return err
		}
		table := tags.NewTable()
		applied := rules.Apply(table, transactions)
		fmt.Fprintf(out, "Tagged by rules: %d\n", applied)
	}

	return nil
}
