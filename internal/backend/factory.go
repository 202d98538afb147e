package backend

import (
	"context"
	"fmt"
	"log/slog"

	"txledger/internal/ledger"
	"txledger/internal/loader"
	"txledger/internal/storage"
)

// Factory builds the initial ledger for the configured backend.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateLedger builds a ledger from the configured dataset source. A
// missing or malformed dataset file is reported and degrades to an empty
// ledger; a broken sqlite archive is a hard error.
func (f *Factory) CreateLedger(ctx context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteLedger(ctx, config)
	default:
		return f.createFileLedger(config)
	}
}

func (f *Factory) createFileLedger(config Config) (*Result, error) {
	txs, err := loader.ReadFile(config.DataFile)
	if err != nil {
		f.logger.Error("Failed to load dataset, starting with empty ledger",
			"error", err, "path", config.DataFile)
		txs = nil
	}

	f.logger.Info("Initialized file backend",
		"path", config.DataFile, "transactions", len(txs))

	return &Result{
		Ledger:  ledger.New(txs),
		Cleanup: nil,
	}, nil
}

func (f *Factory) createSQLiteLedger(ctx context.Context, config Config) (*Result, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	txs, err := repo.ListTransactions(ctx)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to load archived transactions: %w", err)
	}

	f.logger.Info("Initialized sqlite backend",
		"db_path", config.SQLiteDBPath, "transactions", len(txs))

	return &Result{
		Ledger:  ledger.New(txs),
		Cleanup: repo.Close,
	}, nil
}
