// Package backend selects and builds the dataset source the ledger is
// bootstrapped from at startup.
package backend

import "txledger/internal/ledger"

// Type identifies a dataset backend.
type Type string

const (
	// FileBackend loads the ledger from a JSON dataset document.
	FileBackend Type = "file"
	// SQLiteBackend restores the ledger from the archive table.
	SQLiteBackend Type = "sqlite"
)

// IsValid reports whether t names a known backend.
func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend:
		return true
	}
	return false
}

// Config carries the inputs a backend needs to build a ledger.
type Config struct {
	Type         Type
	DataFile     string
	SQLiteDBPath string
}

// Result is a constructed ledger plus an optional cleanup hook.
type Result struct {
	Ledger  *ledger.Ledger
	Cleanup func() error
}
