// Package server assembles the HTTP surface: the Connect services, health and
// metrics endpoints, and the static frontend.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/gorilla/mux"

	"github.com/echuwok12/SplitPayment/internal/auth"
	"github.com/echuwok12/SplitPayment/internal/ledger"
	"github.com/echuwok12/SplitPayment/internal/metrics"
	"github.com/echuwok12/SplitPayment/internal/middleware"
	"github.com/echuwok12/SplitPayment/internal/service"
	"github.com/echuwok12/SplitPayment/pkg/api/apiconnect"
)

const (
	rpcPrefix     = "/splitpayment.v1."
	healthTimeout = 2 * time.Second
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options holds the dependencies of a Server.
type Options struct {
	Ledger        *ledger.Ledger
	Authenticator auth.Authenticator
	JWTManager    *auth.JWTManager
	Health        Pinger
	// Metrics is optional. When nil, RPCs are not instrumented and /metrics
	// is not served.
	Metrics *metrics.Metrics
	// DemoUserID is the identity of requests without a token. Empty rejects them.
	DemoUserID string
	// StaticPath is the frontend directory. Empty disables static files.
	StaticPath string
}

// Server routes every request the process answers.
type Server struct {
	router    *mux.Router
	health    Pinger
	staticDir string
}

// New creates a Server and registers all routes.
func New(opts Options) (*Server, error) {
	s := &Server{
		router: mux.NewRouter(),
		health: opts.Health,
	}

	if opts.StaticPath != "" {
		staticDir, err := filepath.Abs(opts.StaticPath)
		if err != nil {
			return nil, err
		}
		s.staticDir = staticDir
	}

	interceptors := connect.WithInterceptors(
		opts.Metrics.Interceptor(),
		middleware.Authenticate(opts.JWTManager, opts.DemoUserID,
			apiconnect.AuthServiceRegisterProcedure,
			apiconnect.AuthServiceLoginProcedure,
		),
		middleware.LoggingInterceptor(),
	)

	s.mount(apiconnect.NewFolderServiceHandler(service.NewFolderService(opts.Ledger), interceptors))
	s.mount(apiconnect.NewExpenseServiceHandler(service.NewExpenseService(opts.Ledger), interceptors))
	s.mount(apiconnect.NewAuthServiceHandler(service.NewAuthService(opts.Authenticator, opts.JWTManager, nil), interceptors))

	s.router.HandleFunc("/healthz", s.healthz).Methods(http.MethodGet)
	if opts.Metrics != nil {
		s.router.Handle("/metrics", opts.Metrics.Handler()).Methods(http.MethodGet)
	}
	if s.staticDir != "" {
		slog.Info("Serving static files", "path", s.staticDir)
		s.router.PathPrefix("/").HandlerFunc(s.static).Methods(http.MethodGet, http.MethodHead)
	}

	return s, nil
}

func (s *Server) mount(path string, handler http.Handler) {
	s.router.PathPrefix(path).Handler(handler)
}

// Handler returns the router wrapped in request logging and CORS.
func (s *Server) Handler() http.Handler {
	return middleware.RequestLogger(middleware.CORS(s.router))
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	status, code := "ok", http.StatusOK
	if s.health != nil {
		if err := s.health.Ping(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed", "error", err)
			status, code = "unavailable", http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"status": status})
}

// static serves files from the frontend directory, falling back to
// index.html for unknown paths.
func (s *Server) static(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, rpcPrefix) {
		http.NotFound(w, r)
		return
	}

	urlPath := r.URL.Path
	if urlPath == "/" {
		urlPath = "/index.html"
	}

	filePath := filepath.Join(s.staticDir, filepath.Clean("/"+urlPath))
	if info, err := os.Stat(filePath); err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(s.staticDir, "index.html"))
		return
	}

	http.ServeFile(w, r, filePath)
}
