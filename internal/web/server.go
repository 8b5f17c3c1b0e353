package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Damoblinkz2/hnc-task-0/internal/config"
	"github.com/Damoblinkz2/hnc-task-0/internal/fact"
	"github.com/Damoblinkz2/hnc-task-0/internal/store"
)

// NewServer creates and configures the HTTP server for the string service.
func NewServer(st store.Store, cfg *config.Config, version, bind string, port int) *http.Server {
	h := &Handlers{
		store: st,
		cfg:   cfg,
		facts: fact.New(cfg.FactURL, time.Duration(cfg.FactCacheTTLSeconds)*time.Second),
	}

	mux := newMux(h, version)

	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", bind, port),
		Handler: securityHeaders(mux),
	}
}

// newMux wires routes using Go 1.22+ pattern syntax. The natural-language
// route is a literal segment, so it takes precedence over the {value}
// wildcard.
func newMux(h *Handlers, version string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", docsHandler(renderDocs(version)))
	mux.HandleFunc("POST /strings", h.HandleCreate)
	mux.HandleFunc("GET /strings", h.HandleList)
	mux.HandleFunc("GET /strings/filter-by-natural-language", h.HandleQuery)
	mux.HandleFunc("GET /strings/{value}", h.HandleFetch)
	mux.HandleFunc("DELETE /strings/{value}", h.HandleDelete)
	mux.HandleFunc("GET /me", h.HandleMe)

	return mux
}

// securityHeaders adds security-related HTTP headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'self'")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

// Run starts the HTTP server and handles graceful shutdown on SIGINT/SIGTERM.
func Run(srv *http.Server) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Printf("String analysis service running at http://%s", srv.Addr)

	if strings.Contains(srv.Addr, "0.0.0.0") || strings.Contains(srv.Addr, "::") {
		log.Printf("WARNING: Server is binding to all interfaces and may be accessible from the network")
	}

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
