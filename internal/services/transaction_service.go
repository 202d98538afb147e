package services

import (
	"context"
	"log/slog"

	"txledger/internal/amqp"
	"txledger/internal/core"
	"txledger/internal/ledger"
)

// Publisher announces appended transactions to the archive pipeline.
type Publisher interface {
	PublishTransactionAppended(ctx context.Context, msg *amqp.TransactionAppendedMessage) error
}

// TransactionService orchestrates ledger appends and the async archive
// notification. The publisher is optional; without one the service is a
// plain in-memory append.
type TransactionService struct {
	ledger    *ledger.Ledger
	publisher Publisher
}

func NewTransactionService(l *ledger.Ledger, publisher Publisher) *TransactionService {
	return &TransactionService{
		ledger:    l,
		publisher: publisher,
	}
}

// Ledger exposes the underlying ledger for query operations.
func (s *TransactionService) Ledger() *ledger.Ledger {
	return s.ledger
}

// Append adds the record to the ledger and publishes an appended-event.
// The append itself never fails; a publish failure is logged and swallowed
// so the record is never lost from the serving view.
func (s *TransactionService) Append(ctx context.Context, tx core.Transaction) {
	s.ledger.Add(tx)

	if s.publisher == nil {
		slog.DebugContext(ctx, "No publisher configured, skipping archive event",
			"transaction_id", tx.ID)
		return
	}

	msg := amqp.NewTransactionAppendedMessage(tx)
	if err := s.publisher.PublishTransactionAppended(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction appended message",
			"transaction_id", tx.ID, "error", err)
		// Don't fail the request - the transaction is in the ledger
	}
}
