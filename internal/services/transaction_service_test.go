package services

import (
	"context"
	"errors"
	"testing"

	"txledger/internal/amqp"
	"txledger/internal/core"
	"txledger/internal/ledger"
)

type fakePublisher struct {
	published []*amqp.TransactionAppendedMessage
	err       error
}

func (f *fakePublisher) PublishTransactionAppended(_ context.Context, msg *amqp.TransactionAppendedMessage) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	return nil
}

func TestAppendPublishesEvent(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewTransactionService(ledger.New(nil), pub)

	tx := core.Transaction{ID: "t-1", Date: "2020-05-01", Amount: "10", Type: "debit"}
	svc.Append(context.Background(), tx)

	if svc.Ledger().Len() != 1 {
		t.Fatalf("ledger length = %d, want 1", svc.Ledger().Len())
	}
	if len(pub.published) != 1 {
		t.Fatalf("published %d events, want 1", len(pub.published))
	}
	if pub.published[0].Transaction.ID != "t-1" {
		t.Fatalf("published wrong transaction: %+v", pub.published[0].Transaction)
	}
}

func TestAppendWithoutPublisher(t *testing.T) {
	svc := NewTransactionService(ledger.New(nil), nil)
	svc.Append(context.Background(), core.Transaction{ID: "t-1"})
	if svc.Ledger().Len() != 1 {
		t.Fatalf("ledger length = %d, want 1", svc.Ledger().Len())
	}
}

func TestAppendSurvivesPublishFailure(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewTransactionService(ledger.New(nil), pub)
	svc.Append(context.Background(), core.Transaction{ID: "t-1"})
	if svc.Ledger().Len() != 1 {
		t.Fatalf("append lost on publish failure: ledger length = %d", svc.Ledger().Len())
	}
}
