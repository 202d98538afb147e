// Package ledger implements the in-memory transaction ledger and its
// query and aggregation operations. Every query is a full scan over the
// backing sequence; there is no secondary index.
package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"txledger/internal/core"
)

// ErrNoTransactions is returned by the busiest-month queries when no
// record contributes a month bucket.
var ErrNoTransactions = errors.New("no transactions")

// TypeTied is the DominantType result when debits and credits are even,
// including the empty 0-0 case.
const TypeTied = "equal"

// Ledger owns an ordered sequence of transactions. Insertion order is
// preserved and observable: it drives the first-seen order of UniqueTypes
// and the tie-breaking of the busiest-month queries. Reads and the single
// writer (Add) are guarded so the HTTP surface can query concurrently.
type Ledger struct {
	mu  sync.RWMutex
	txs []core.Transaction
}

// New builds a ledger over an initial dataset. The slice is copied; the
// ledger is the exclusive owner of its backing sequence afterwards.
func New(initial []core.Transaction) *Ledger {
	l := &Ledger{txs: make([]core.Transaction, len(initial))}
	copy(l.txs, initial)
	return l
}

// Add appends tx to the end of the sequence. No validation is performed;
// malformed records degrade at query time instead.
func (l *Ledger) Add(tx core.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.txs = append(l.txs, tx)
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.txs)
}

// All returns a snapshot copy of the sequence in append order. Callers get
// a stable view; later appends are not observed through it.
func (l *Ledger) All() []core.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]core.Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}

// UniqueTypes returns the distinct type values in first-seen order.
func (l *Ledger) UniqueTypes() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	seen := map[string]struct{}{}
	var out []string
	for _, tx := range l.txs {
		if _, ok := seen[tx.Type]; ok {
			continue
		}
		seen[tx.Type] = struct{}{}
		out = append(out, tx.Type)
	}
	return out
}

// TotalAmount sums the coerced amount over every record. An empty ledger
// sums to 0; a non-numeric amount contributes NaN and poisons the total.
func (l *Ledger) TotalAmount() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var total float64
	for _, tx := range l.txs {
		total += tx.Amount.Float()
	}
	return total
}

// TotalAmountByDate sums amounts for records whose date matches the
// supplied components. A zero component is a wildcard matching anything.
// A non-zero month outside [1,12] or day outside [1,31] fails fast with a
// zero total and no scan; records with unparsable dates never match.
func (l *Ledger) TotalAmountByDate(year, month, day int) (float64, error) {
	if month != 0 && (month < 1 || month > 12) {
		return 0, fmt.Errorf("%w: %d", core.ErrInvalidMonth, month)
	}
	if day != 0 && (day < 1 || day > 31) {
		return 0, fmt.Errorf("%w: %d", core.ErrInvalidDay, day)
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	var total float64
	for _, tx := range l.txs {
		t, ok := core.ParseDate(tx.Date)
		if !ok {
			continue
		}
		if year != 0 && t.Year() != year {
			continue
		}
		if month != 0 && t.Month() != time.Month(month) {
			continue
		}
		if day != 0 && t.Day() != day {
			continue
		}
		total += tx.Amount.Float()
	}
	return total, nil
}

// ByType returns the records with exactly the given type, in append order.
func (l *Ledger) ByType(txType string) []core.Transaction {
	return l.filter(func(tx core.Transaction) bool {
		return tx.Type == txType
	})
}

// ByMerchant returns the records with exactly the given merchant label.
func (l *Ledger) ByMerchant(merchant string) []core.Transaction {
	return l.filter(func(tx core.Transaction) bool {
		return tx.Merchant == merchant
	})
}

// InDateRange returns the records dated within [start, end] inclusive.
// Bounds are not normalized: a start after the end, or an unparsable
// bound, yields an empty result.
func (l *Ledger) InDateRange(start, end string) []core.Transaction {
	from, okFrom := core.ParseDate(start)
	to, okTo := core.ParseDate(end)
	if !okFrom || !okTo {
		return nil
	}
	return l.filter(func(tx core.Transaction) bool {
		t, ok := core.ParseDate(tx.Date)
		return ok && !t.Before(from) && !t.After(to)
	})
}

// BeforeDate returns the records dated strictly before the given date.
func (l *Ledger) BeforeDate(date string) []core.Transaction {
	cutoff, ok := core.ParseDate(date)
	if !ok {
		return nil
	}
	return l.filter(func(tx core.Transaction) bool {
		t, ok := core.ParseDate(tx.Date)
		return ok && t.Before(cutoff)
	})
}

// ByAmountRange returns the records whose coerced amount lies within
// [min, max] inclusive. A min above max yields an empty result, and NaN
// amounts satisfy no comparison so poisoned records are excluded.
func (l *Ledger) ByAmountRange(min, max float64) []core.Transaction {
	return l.filter(func(tx core.Transaction) bool {
		v := tx.Amount.Float()
		return v >= min && v <= max
	})
}

// AverageAmount returns TotalAmount divided by the record count, or 0 for
// an empty ledger.
func (l *Ledger) AverageAmount() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.txs) == 0 {
		return 0
	}
	var total float64
	for _, tx := range l.txs {
		total += tx.Amount.Float()
	}
	return total / float64(len(l.txs))
}

// TotalDebitAmount sums the coerced amounts of debit records only.
func (l *Ledger) TotalDebitAmount() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var total float64
	for _, tx := range l.txs {
		if tx.Type == core.TypeDebit {
			total += tx.Amount.Float()
		}
	}
	return total
}

// BusiestMonth returns the calendar month with the strictly greatest
// record count across all years. Ties go to the earliest month because
// only a strictly greater count displaces the running maximum. With no
// parsable-dated records it reports ErrNoTransactions instead of a
// meaningless month.
func (l *Ledger) BusiestMonth() (time.Month, error) {
	return l.busiestMonth(func(core.Transaction) bool { return true })
}

// BusiestDebitMonth is BusiestMonth restricted to debit records.
func (l *Ledger) BusiestDebitMonth() (time.Month, error) {
	return l.busiestMonth(func(tx core.Transaction) bool {
		return tx.Type == core.TypeDebit
	})
}

func (l *Ledger) busiestMonth(keep func(core.Transaction) bool) (time.Month, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var counts [13]int
	bucketed := false
	for _, tx := range l.txs {
		if !keep(tx) {
			continue
		}
		t, ok := core.ParseDate(tx.Date)
		if !ok {
			continue
		}
		counts[int(t.Month())]++
		bucketed = true
	}
	if !bucketed {
		return 0, ErrNoTransactions
	}
	best := 0
	for m := 1; m <= 12; m++ {
		// strict > keeps the earliest month on a tie
		if counts[m] > counts[best] {
			best = m
		}
	}
	return time.Month(best), nil
}

// DominantType reports which of debit or credit occurs strictly more
// often, or TypeTied on an even split (including an empty ledger).
func (l *Ledger) DominantType() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var debits, credits int
	for _, tx := range l.txs {
		switch tx.Type {
		case core.TypeDebit:
			debits++
		case core.TypeCredit:
			credits++
		}
	}
	switch {
	case debits > credits:
		return core.TypeDebit
	case credits > debits:
		return core.TypeCredit
	default:
		return TypeTied
	}
}

// FindByID returns the first record whose ID equals id. The second return
// is false when no record matches; a miss is not an error.
func (l *Ledger) FindByID(id string) (core.Transaction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, tx := range l.txs {
		if tx.ID == id {
			return tx, true
		}
	}
	return core.Transaction{}, false
}

// Descriptions returns every record's description in append order. The
// result has the same length as the ledger; records without a description
// contribute an empty entry.
func (l *Ledger) Descriptions() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, len(l.txs))
	for i, tx := range l.txs {
		out[i] = tx.Description
	}
	return out
}

func (l *Ledger) filter(keep func(core.Transaction) bool) []core.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []core.Transaction
	for _, tx := range l.txs {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	return out
}
