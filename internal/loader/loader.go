// Package loader reads a transaction dataset from a JSON document on disk.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"txledger/internal/core"
)

// ReadFile loads a JSON array of transaction records from path. On any
// read or parse failure it returns the error together with an empty
// collection, so callers can log and continue with an empty ledger.
func ReadFile(path string) ([]core.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var txs []core.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return txs, nil
}
