package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"txledger/internal/amqp"
	"txledger/internal/core"
)

// Archiver is the storage surface the worker needs.
type Archiver interface {
	Archive(ctx context.Context, tx core.Transaction) error
	Count(ctx context.Context) (int64, error)
}

// ArchiveWorker persists appended-events from AMQP into the SQLite archive.
type ArchiveWorker struct {
	storage Archiver
}

func NewArchiveWorker(storage Archiver) *ArchiveWorker {
	return &ArchiveWorker{storage: storage}
}

// HandleAppendedMessage processes a single appended-event. Returning an
// error requeues the delivery, so the insert must be safe to retry.
func (w *ArchiveWorker) HandleAppendedMessage(ctx context.Context, msg *amqp.TransactionAppendedMessage) error {
	slog.InfoContext(ctx, "Processing appended message",
		"transaction_id", msg.Transaction.ID,
		"published_at", msg.Timestamp.Format(time.RFC3339))

	if err := w.storage.Archive(ctx, msg.Transaction); err != nil {
		return fmt.Errorf("archive transaction: %w", err)
	}

	return nil
}

// ReportArchiveDepth logs the archive row count. Runs on a ticker as a
// cheap liveness signal for the pipeline.
func (w *ArchiveWorker) ReportArchiveDepth(ctx context.Context) error {
	n, err := w.storage.Count(ctx)
	if err != nil {
		return fmt.Errorf("count archive: %w", err)
	}

	slog.InfoContext(ctx, "Archive depth", "count", n)
	return nil
}
