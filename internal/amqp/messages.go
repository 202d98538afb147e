package amqp

import (
	"encoding/json"
	"time"

	"txledger/internal/core"
)

// TransactionAppendedMessage announces a record appended to the in-memory
// ledger. It carries the full record so the archive worker can persist it
// without a callback into the serving process.
type TransactionAppendedMessage struct {
	Transaction core.Transaction `json:"transaction"`
	Timestamp   time.Time        `json:"timestamp"`
}

// NewTransactionAppendedMessage creates an appended-event for tx.
func NewTransactionAppendedMessage(tx core.Transaction) *TransactionAppendedMessage {
	return &TransactionAppendedMessage{
		Transaction: tx,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionAppendedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionAppendedMessageFromJSON creates a message from JSON bytes
func TransactionAppendedMessageFromJSON(data []byte) (*TransactionAppendedMessage, error) {
	var msg TransactionAppendedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
