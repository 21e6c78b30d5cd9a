// Package main provides the entry point for the momo-csv CLI application.
package main

import (
	"os"

	"kibuuka/momo-csv/cmd/parse"
	"kibuuka/momo-csv/cmd/quarters"
	"kibuuka/momo-csv/cmd/root"
	"kibuuka/momo-csv/cmd/summary"
)

func main() {
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(quarters.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		root.Log.Error(err)
		os.Exit(1)
	}
}
