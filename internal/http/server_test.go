package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"txledger/internal/core"
	"txledger/internal/ledger"
	applog "txledger/internal/log"
	"txledger/internal/services"
)

func newTestServer(t *testing.T, txs []core.Transaction) *Server {
	t.Helper()
	logger := applog.New(applog.Config{
		Handler: slog.NewTextHandler(io.Discard, nil),
	})
	svc := services.NewTransactionService(ledger.New(txs), nil)
	return NewServer(":0", svc, logger, 8, time.Minute)
}

func sampleTxs() []core.Transaction {
	return []core.Transaction{
		{ID: "1", Date: "2019-01-14", Amount: "100", Type: "debit", Merchant: "Coffee Shop", Description: "coffee"},
		{ID: "2", Date: "2019-01-15", Amount: "200", Type: "credit", Merchant: "Employer", Description: "salary"},
		{ID: "3", Date: "2019-02-01", Amount: "50.5", Type: "debit", Merchant: "Grocery", Description: "food"},
	}
}

func doRequest(s *Server, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)
	return rec
}

type listResponse struct {
	Count        int                `json:"count"`
	Transactions []core.Transaction `json:"transactions"`
}

func TestListTransactions(t *testing.T) {
	s := newTestServer(t, sampleTxs())

	cases := []struct {
		name    string
		target  string
		wantIDs []string
	}{
		{"all", "/api/transactions", []string{"1", "2", "3"}},
		{"by type", "/api/transactions?type=debit", []string{"1", "3"}},
		{"by merchant", "/api/transactions?merchant=Employer", []string{"2"}},
		{"before date", "/api/transactions?before=2019-01-15", []string{"1"}},
		{"date range", "/api/transactions?start=2019-01-15&end=2019-02-01", []string{"2", "3"}},
		{"amount range", "/api/transactions?min=100&max=200", []string{"1", "2"}},
		{"no match", "/api/transactions?type=transfer", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(s, http.MethodGet, tc.target, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			var resp listResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Count != len(tc.wantIDs) {
				t.Fatalf("count = %d, want %d", resp.Count, len(tc.wantIDs))
			}
			for i, id := range tc.wantIDs {
				if resp.Transactions[i].ID != id {
					t.Fatalf("transactions[%d].ID = %q, want %q", i, resp.Transactions[i].ID, id)
				}
			}
		})
	}
}

func TestListTransactionsBadAmountRange(t *testing.T) {
	s := newTestServer(t, sampleTxs())
	rec := doRequest(s, http.MethodGet, "/api/transactions?min=abc&max=10", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	rec = doRequest(s, http.MethodGet, "/api/transactions?min=10", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("lonely min: status = %d, want 400", rec.Code)
	}
}

func TestGetTransaction(t *testing.T) {
	s := newTestServer(t, sampleTxs())

	rec := doRequest(s, http.MethodGet, "/api/transactions/2", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var tx core.Transaction
	if err := json.Unmarshal(rec.Body.Bytes(), &tx); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tx.Merchant != "Employer" {
		t.Fatalf("merchant = %q", tx.Merchant)
	}

	rec = doRequest(s, http.MethodGet, "/api/transactions/missing-id", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing id: status = %d, want 404", rec.Code)
	}
}

func TestCreateTransaction(t *testing.T) {
	s := newTestServer(t, nil)

	body := `{"id":"t-1","date":"2020-05-01","amount":25,"type":"debit","merchant":"Shop","description":"thing"}`
	rec := doRequest(s, http.MethodPost, "/api/transactions", strings.NewReader(body))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if s.ledger().Len() != 1 {
		t.Fatalf("ledger length = %d, want 1", s.ledger().Len())
	}
	tx, ok := s.ledger().FindByID("t-1")
	if !ok || tx.Amount.Float() != 25 {
		t.Fatalf("appended transaction = %+v, %v", tx, ok)
	}

	rec = doRequest(s, http.MethodPost, "/api/transactions", strings.NewReader("{broken"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("broken body: status = %d, want 400", rec.Code)
	}
}

func TestSummary(t *testing.T) {
	s := newTestServer(t, sampleTxs())

	rec := doRequest(s, http.MethodGet, "/api/summary", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var sum Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.Count != 3 || float64(sum.TotalAmount) != 350.5 {
		t.Fatalf("summary = %+v", sum)
	}
	if sum.DominantType != "debit" || sum.BusiestMonth != "January" {
		t.Fatalf("summary = %+v", sum)
	}

	// second hit is served from cache
	doRequest(s, http.MethodGet, "/api/summary", nil)
	if hits := s.appMetrics.cacheHits; hits != 1 {
		t.Fatalf("cache hits = %d, want 1", hits)
	}

	// appending invalidates the cached summary
	body := `{"id":"t-9","date":"2019-03-01","amount":"1","type":"credit"}`
	doRequest(s, http.MethodPost, "/api/transactions", strings.NewReader(body))
	rec = doRequest(s, http.MethodGet, "/api/summary", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.Count != 4 {
		t.Fatalf("summary count after append = %d, want 4", sum.Count)
	}
}

func TestSummaryEmptyLedger(t *testing.T) {
	s := newTestServer(t, nil)
	rec := doRequest(s, http.MethodGet, "/api/summary", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var sum Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.Count != 0 || sum.BusiestMonth != "" || sum.DominantType != ledger.TypeTied {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestSummaryWithPoisonedAmount(t *testing.T) {
	txs := append(sampleTxs(), core.Transaction{ID: "bad", Date: "2019-03-01", Amount: "oops", Type: "debit"})
	s := newTestServer(t, txs)
	rec := doRequest(s, http.MethodGet, "/api/summary", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"NaN"`) {
		t.Fatalf("poisoned total not surfaced: %s", rec.Body.String())
	}
}

func TestHealthAndReady(t *testing.T) {
	s := newTestServer(t, sampleTxs())
	if rec := doRequest(s, http.MethodGet, "/healthz", nil); rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", rec.Code)
	}
	if rec := doRequest(s, http.MethodGet, "/readyz", nil); rec.Code != http.StatusOK {
		t.Fatalf("readyz status = %d", rec.Code)
	}
	rec := doRequest(s, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "ledger_size 3") {
		t.Fatalf("metrics: %d %s", rec.Code, rec.Body.String())
	}
}
