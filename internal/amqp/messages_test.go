package amqp

import (
	"testing"

	"txledger/internal/core"
)

func TestTransactionAppendedMessageRoundTrip(t *testing.T) {
	tx := core.Transaction{
		ID:          "t-9",
		Date:        "2019-04-01",
		Amount:      "12.5",
		Type:        "credit",
		Merchant:    "Shop",
		Description: "refund",
	}
	msg := NewTransactionAppendedMessage(tx)

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	got, err := TransactionAppendedMessageFromJSON(body)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got.Transaction != tx {
		t.Fatalf("round-trip transaction = %+v, want %+v", got.Transaction, tx)
	}
	if got.Timestamp.IsZero() {
		t.Fatalf("timestamp lost in round-trip")
	}
}

func TestTransactionAppendedMessageFromJSONInvalid(t *testing.T) {
	if _, err := TransactionAppendedMessageFromJSON([]byte("not json")); err == nil {
		t.Fatalf("expected error for invalid payload")
	}
}
