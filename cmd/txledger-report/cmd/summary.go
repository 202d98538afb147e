package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"txledger/internal/ledger"
)

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print aggregate figures for the dataset",
	Long: `Print aggregate figures for the dataset: totals, averages, type
distribution and busiest months.

Example:
  txledger-report summary --data ./data/transactions.json`,
	Run: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) {
	l := loadLedger()

	fmt.Println("\n=== Ledger Summary ===")
	fmt.Printf("Transactions:       %d\n", l.Len())
	fmt.Printf("Total amount:       %.2f\n", l.TotalAmount())
	fmt.Printf("Average amount:     %.2f\n", l.AverageAmount())
	fmt.Printf("Total debit amount: %.2f\n", l.TotalDebitAmount())
	fmt.Printf("Types:              %s\n", strings.Join(l.UniqueTypes(), ", "))
	fmt.Printf("Dominant type:      %s\n", l.DominantType())

	if m, err := l.BusiestMonth(); err == nil {
		fmt.Printf("Busiest month:      %s\n", m)
	} else if errors.Is(err, ledger.ErrNoTransactions) {
		fmt.Printf("Busiest month:      (no dated transactions)\n")
	}
	if m, err := l.BusiestDebitMonth(); err == nil {
		fmt.Printf("Busiest debit month: %s\n", m)
	}

	fmt.Println()
}
