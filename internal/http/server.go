// Package http serves the ledger's query operations as a JSON API.
package http

import (
	"net/http"
	"sync/atomic"
	"time"

	"txledger/internal/cache"
	"txledger/internal/ledger"
	"txledger/internal/log"
	"txledger/internal/services"
)

type Server struct {
	http.Server
	service *services.TransactionService
	logger  *log.Logger

	// Cached /api/summary payload, invalidated on append.
	summaryCache *cache.LRUCache[Summary]

	appMetrics struct {
		startTime    time.Time
		transactions int64
		cacheHits    int64
		cacheMisses  int64
	}
}

func NewServer(addr string, svc *services.TransactionService, logger *log.Logger, cacheSize int, cacheTTL time.Duration) *Server {
	s := &Server{
		service:      svc,
		logger:       logger.WithComponent(log.ComponentHTTP),
		summaryCache: cache.NewLRUCache[Summary](cacheSize, cacheTTL),
	}
	s.appMetrics.startTime = time.Now()

	s.Addr = addr
	s.Handler = log.Middleware(s.logger)(s.routes())
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/transactions", s.handleListTransactions)
	mux.HandleFunc("POST /api/transactions", s.handleCreateTransaction)
	mux.HandleFunc("GET /api/transactions/{id}", s.handleGetTransaction)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.HandleFunc("GET /metrics", s.handleMetrics)
	return mux
}

// SummaryCache exposes the cache for cleanup registration.
func (s *Server) SummaryCache() *cache.LRUCache[Summary] {
	return s.summaryCache
}

func (s *Server) ledger() *ledger.Ledger {
	return s.service.Ledger()
}

func (s *Server) recordCacheHit(hit bool) {
	if hit {
		atomic.AddInt64(&s.appMetrics.cacheHits, 1)
	} else {
		atomic.AddInt64(&s.appMetrics.cacheMisses, 1)
	}
}
