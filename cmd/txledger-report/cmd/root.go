// Package cmd provides CLI commands for txledger-report.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"txledger/internal/ledger"
	"txledger/internal/loader"
)

var (
	dataFile string
	debug    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "txledger-report",
	Short: "Offline reports over a transaction dataset",
	Long: `txledger-report runs the ledger's query operations against a JSON
dataset file without starting the server.

Example:
  txledger-report summary --data ./data/transactions.json
  txledger-report list --type debit`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "./data/transactions.json", "path to the JSON dataset file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(listCmd)
}

// loadLedger reads the dataset file and builds a ledger from it.
func loadLedger() *ledger.Ledger {
	txs, err := loader.ReadFile(dataFile)
	exitOnError(err, "failed to load dataset")
	return ledger.New(txs)
}

func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
