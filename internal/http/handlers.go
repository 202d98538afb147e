package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"txledger/internal/core"
	"txledger/internal/ledger"
)

// Summary is the aggregate view served by /api/summary. Busiest-month
// fields are empty when the ledger has no data to bucket.
type Summary struct {
	Count             int      `json:"count"`
	TotalAmount       apiFloat `json:"total_amount"`
	AverageAmount     apiFloat `json:"average_amount"`
	TotalDebitAmount  apiFloat `json:"total_debit_amount"`
	UniqueTypes       []string `json:"unique_types"`
	DominantType      string   `json:"dominant_type"`
	BusiestMonth      string   `json:"busiest_month,omitempty"`
	BusiestDebitMonth string   `json:"busiest_debit_month,omitempty"`
}

// handleListTransactions serves filtered transaction listings. Filters are
// exclusive and checked in order: type, merchant, before, start+end,
// min+max; with no filter the full sequence is returned.
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	l := s.ledger()

	var txs []core.Transaction
	switch {
	case q.Get("type") != "":
		txs = l.ByType(q.Get("type"))
	case q.Get("merchant") != "":
		txs = l.ByMerchant(q.Get("merchant"))
	case q.Get("before") != "":
		txs = l.BeforeDate(q.Get("before"))
	case q.Get("start") != "" || q.Get("end") != "":
		txs = l.InDateRange(q.Get("start"), q.Get("end"))
	default:
		min, hasMin, errMin := queryFloat(r, "min")
		max, hasMax, errMax := queryFloat(r, "max")
		if errMin != nil || errMax != nil {
			writeError(w, http.StatusBadRequest, "min and max must be numbers")
			return
		}
		if hasMin || hasMax {
			if !hasMin || !hasMax {
				writeError(w, http.StatusBadRequest, "min and max must be supplied together")
				return
			}
			txs = l.ByAmountRange(min, max)
		} else {
			txs = l.All()
		}
	}

	if txs == nil {
		txs = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":        len(txs),
		"transactions": txs,
	})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var tx core.Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to decode transaction body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Appends are never validated; malformed fields degrade at query time.
	s.service.Append(r.Context(), tx)
	atomic.AddInt64(&s.appMetrics.transactions, 1)
	s.summaryCache.Delete(summaryCacheKey)

	s.logger.InfoContext(r.Context(), "Transaction appended",
		"transaction_id", tx.ID,
		"transaction_type", tx.Type,
		"merchant", tx.Merchant)

	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	tx, ok := s.ledger().FindByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "transaction not found")
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

const summaryCacheKey = "summary"

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if cached, ok := s.summaryCache.Get(summaryCacheKey); ok {
		s.recordCacheHit(true)
		writeJSON(w, http.StatusOK, cached)
		return
	}
	s.recordCacheHit(false)

	l := s.ledger()
	types := l.UniqueTypes()
	if types == nil {
		types = []string{}
	}
	summary := Summary{
		Count:            l.Len(),
		TotalAmount:      apiFloat(l.TotalAmount()),
		AverageAmount:    apiFloat(l.AverageAmount()),
		TotalDebitAmount: apiFloat(l.TotalDebitAmount()),
		UniqueTypes:      types,
		DominantType:     l.DominantType(),
	}
	if m, err := l.BusiestMonth(); err == nil {
		summary.BusiestMonth = m.String()
	} else if !errors.Is(err, ledger.ErrNoTransactions) {
		s.logger.ErrorContext(r.Context(), "Busiest month query failed", "error", err)
	}
	if m, err := l.BusiestDebitMonth(); err == nil {
		summary.BusiestDebitMonth = m.String()
	}

	s.summaryCache.Set(summaryCacheKey, summary)
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.appMetrics.startTime).String(),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	status := "ready"
	httpStatus := http.StatusOK
	checks := map[string]any{}

	if s.service == nil || s.ledger() == nil {
		checks["ledger"] = "failed: not configured"
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["ledger"] = map[string]any{
			"status":       "ok",
			"transactions": s.ledger().Len(),
		}
	}
	checks["summary_cache"] = map[string]any{
		"status":  "ok",
		"entries": s.summaryCache.Size(),
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	transactions := atomic.LoadInt64(&s.appMetrics.transactions)
	cacheHits := atomic.LoadInt64(&s.appMetrics.cacheHits)
	cacheMisses := atomic.LoadInt64(&s.appMetrics.cacheMisses)
	uptime := time.Since(s.appMetrics.startTime)

	var b strings.Builder
	fmt.Fprintf(&b, "# HELP ledger_size Current number of records in the ledger\n")
	fmt.Fprintf(&b, "# TYPE ledger_size gauge\n")
	fmt.Fprintf(&b, "ledger_size %d\n\n", s.ledger().Len())

	fmt.Fprintf(&b, "# HELP transactions_appended_total Transactions appended via the API\n")
	fmt.Fprintf(&b, "# TYPE transactions_appended_total counter\n")
	fmt.Fprintf(&b, "transactions_appended_total %d\n\n", transactions)

	fmt.Fprintf(&b, "# HELP summary_cache_hits_total Summary cache hits\n")
	fmt.Fprintf(&b, "# TYPE summary_cache_hits_total counter\n")
	fmt.Fprintf(&b, "summary_cache_hits_total %d\n\n", cacheHits)

	fmt.Fprintf(&b, "# HELP summary_cache_misses_total Summary cache misses\n")
	fmt.Fprintf(&b, "# TYPE summary_cache_misses_total counter\n")
	fmt.Fprintf(&b, "summary_cache_misses_total %d\n\n", cacheMisses)

	fmt.Fprintf(&b, "# HELP uptime_seconds Application uptime in seconds\n")
	fmt.Fprintf(&b, "# TYPE uptime_seconds gauge\n")
	fmt.Fprintf(&b, "uptime_seconds %.0f\n", uptime.Seconds())

	_, _ = w.Write([]byte(b.String()))
}
