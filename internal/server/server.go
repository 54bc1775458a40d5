// Package server exposes the service over HTTP. Every API route answers
// with the full State as JSON; /api/state/stream pushes State changes over a
// websocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/lumen/internal/service"
	"github.com/mesh-intelligence/lumen/internal/version"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server serves the HTTP API for a Service.
type Server struct {
	svc  *service.Service
	addr string
	log  logrus.FieldLogger

	// quit is closed on shutdown so open streams hang up.
	quit     chan struct{}
	quitOnce sync.Once
}

// New returns a Server for svc that listens on addr when run.
func New(svc *service.Service, addr string, log logrus.FieldLogger) *Server {
	return &Server{
		svc:  svc,
		addr: addr,
		log:  log,
		quit: make(chan struct{}),
	}
}

// Handler returns the routed handler wrapped in the request middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/state", s.api(s.handleState))
	mux.HandleFunc("/api/state/stream", s.handleStream)

	mux.HandleFunc("/api/character/new", s.api(s.handleCharacterNew))
	mux.HandleFunc("/api/character/remove/{name}", s.api(s.handleCharacterRemove))
	mux.HandleFunc("/api/character/increment/{name}/{stat}", s.api(s.handleStatIncrement))
	mux.HandleFunc("/api/character/decrement/{name}/{stat}", s.api(s.handleStatDecrement))
	mux.HandleFunc("/api/character/toggle/{name}/{stat}", s.api(s.handleStatToggle))

	mux.HandleFunc("/api/stat/new", s.api(s.handleStatNew))
	mux.HandleFunc("/api/stat/remove/{name}", s.api(s.handleStatRemove))

	mux.HandleFunc("/api/weapon/build", s.api(s.handleWeaponBuild))
	mux.HandleFunc("/api/weapon/generate", s.api(s.handleWeaponGenerate))
	mux.HandleFunc("/api/weapon/clear", s.api(s.handleWeaponClear))
	mux.HandleFunc("/api/weapon/part/init", s.api(s.handlePartInit))
	mux.HandleFunc("/api/weapon/part/new", s.api(s.handlePartNew))
	mux.HandleFunc("/api/weapon/part/remove/{name}", s.api(s.handlePartRemove))

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/version", s.handleVersion)

	return s.withRequestID(enableCORS(mux))
}

// Run listens on the configured address and serves until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled. Serve closes ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.WithField("addr", ln.Addr().String()).Info("lumen server listening")

	select {
	case err := <-errCh:
		s.Close()
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	s.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close hangs up every open stream. It is safe to call more than once.
func (s *Server) Close() {
	s.quitOnce.Do(func() { close(s.quit) })
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, version.Get())
}
