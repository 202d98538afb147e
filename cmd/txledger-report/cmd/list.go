package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"txledger/internal/core"
)

var (
	listType     string
	listMerchant string
	listBefore   string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions from the dataset",
	Long: `List transactions from the dataset, optionally filtered by type,
merchant or a cutoff date. Filters are exclusive; the first one set wins.

Example:
  txledger-report list --type debit
  txledger-report list --before 2019-02-01`,
	Run: runList,
}

func init() {
	listCmd.Flags().StringVar(&listType, "type", "", "only transactions of this type")
	listCmd.Flags().StringVar(&listMerchant, "merchant", "", "only transactions with this merchant")
	listCmd.Flags().StringVar(&listBefore, "before", "", "only transactions dated before this date")
}

func runList(cmd *cobra.Command, args []string) {
	l := loadLedger()

	var txs []core.Transaction
	switch {
	case listType != "":
		txs = l.ByType(listType)
	case listMerchant != "":
		txs = l.ByMerchant(listMerchant)
	case listBefore != "":
		txs = l.BeforeDate(listBefore)
	default:
		txs = l.All()
	}

	if len(txs) == 0 {
		fmt.Println("No transactions matched.")
		return
	}

	for _, tx := range txs {
		fmt.Println(core.FormatTransaction(tx))
	}
	fmt.Printf("\n%d transaction(s)\n", len(txs))
}
