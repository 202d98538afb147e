package worker

import (
	"context"
	"errors"
	"testing"

	"txledger/internal/amqp"
	"txledger/internal/core"
)

type fakeArchiver struct {
	archived []core.Transaction
	err      error
}

func (f *fakeArchiver) Archive(_ context.Context, tx core.Transaction) error {
	if f.err != nil {
		return f.err
	}
	f.archived = append(f.archived, tx)
	return nil
}

func (f *fakeArchiver) Count(context.Context) (int64, error) {
	return int64(len(f.archived)), nil
}

func TestHandleAppendedMessage(t *testing.T) {
	store := &fakeArchiver{}
	w := NewArchiveWorker(store)

	tx := core.Transaction{ID: "t-1", Date: "2020-05-01", Amount: "10", Type: "debit"}
	if err := w.HandleAppendedMessage(context.Background(), amqp.NewTransactionAppendedMessage(tx)); err != nil {
		t.Fatalf("HandleAppendedMessage: %v", err)
	}
	if len(store.archived) != 1 || store.archived[0].ID != "t-1" {
		t.Fatalf("archived = %+v", store.archived)
	}
}

func TestHandleAppendedMessageStorageError(t *testing.T) {
	store := &fakeArchiver{err: errors.New("disk full")}
	w := NewArchiveWorker(store)

	err := w.HandleAppendedMessage(context.Background(), amqp.NewTransactionAppendedMessage(core.Transaction{ID: "t-1"}))
	if err == nil {
		t.Fatalf("expected error so the delivery is requeued")
	}
}

func TestReportArchiveDepth(t *testing.T) {
	store := &fakeArchiver{archived: []core.Transaction{{ID: "a"}, {ID: "b"}}}
	w := NewArchiveWorker(store)
	if err := w.ReportArchiveDepth(context.Background()); err != nil {
		t.Fatalf("ReportArchiveDepth: %v", err)
	}
}
