package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ardentnum/mpint/config"
	"github.com/ardentnum/mpint/service"
)

// Server is the HTTP API server exposing mpint's arithmetic over
// request/response JSON. Unlike the teacher's Server it carries no
// session manager or WebSocket broadcaster: there is no running "machine"
// whose state could be streamed, so each request is independent and the
// only shared state is service.Service's per-modulus Montgomery cache.
type Server struct {
	service *service.Service
	mux     *http.ServeMux
	server  *http.Server
	port    int

	// enableRequestLog mirrors config.Service.EnableRequestLog and gates
	// loggingMiddleware's per-request access log.
	enableRequestLog bool
}

// NewServer creates a new API server bound to port, with per-request
// access logging enabled and no Miller-Rabin round override.
func NewServer(port int) *Server {
	return newServer(port, service.NewService(nil), true)
}

// NewServerFromConfig creates an API server using cfg's service port,
// request-log setting, and Miller-Rabin round override (threaded through
// service.NewServiceFromConfig).
func NewServerFromConfig(cfg *config.Config) *Server {
	return newServer(cfg.Service.Port, service.NewServiceFromConfig(cfg), cfg.Service.EnableRequestLog)
}

func newServer(port int, svc *service.Service, enableRequestLog bool) *Server {
	s := &Server{
		service:          svc,
		mux:              http.NewServeMux(),
		port:             port,
		enableRequestLog: enableRequestLog,
	}

	s.registerRoutes()

	return s
}

// Handler returns the HTTP handler with logging and CORS middleware
// applied.
func (s *Server) Handler() http.Handler {
	return s.corsMiddleware(s.loggingMiddleware(s.mux))
}

// loggingMiddleware logs each request's method and path when
// enableRequestLog is set (config.Service.EnableRequestLog).
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.enableRequestLog {
			log.Printf("%s %s", r.Method, r.URL.Path)
		}
		next.ServeHTTP(w, r)
	})
}

// registerRoutes sets up all HTTP routes.
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/api/v1/health", s.handleHealth)
	s.mux.HandleFunc("/api/v1/add", s.methodPost(s.handleAdd))
	s.mux.HandleFunc("/api/v1/sub", s.methodPost(s.handleSub))
	s.mux.HandleFunc("/api/v1/mul", s.methodPost(s.handleMul))
	s.mux.HandleFunc("/api/v1/divmod", s.methodPost(s.handleDivMod))
	s.mux.HandleFunc("/api/v1/gcd", s.methodPost(s.handleGCD))
	s.mux.HandleFunc("/api/v1/invmod", s.methodPost(s.handleInvMod))
	s.mux.HandleFunc("/api/v1/modexp", s.methodPost(s.handleExpMod))
	s.mux.HandleFunc("/api/v1/isprime", s.methodPost(s.handleIsPrime))
	s.mux.HandleFunc("/api/v1/genprime", s.methodPost(s.handleGenPrime))
	s.mux.HandleFunc("/api/v1/convert", s.methodPost(s.handleConvert))
}

func (s *Server) methodPost(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("127.0.0.1:%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("mpint API server starting on http://127.0.0.1:%d", s.port)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// corsMiddleware adds CORS headers restricted to localhost origins.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if isAllowedOrigin(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isAllowedOrigin checks if the origin is from localhost.
func isAllowedOrigin(origin string) bool {
	if origin == "" {
		return true
	}

	if strings.HasPrefix(origin, "file://") {
		return true
	}

	if strings.HasPrefix(origin, "http://localhost") ||
		strings.HasPrefix(origin, "https://localhost") ||
		strings.HasPrefix(origin, "http://127.0.0.1") ||
		strings.HasPrefix(origin, "https://127.0.0.1") {
		return true
	}

	return false
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("error encoding JSON: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}

func readJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1024*1024)) // 1MB limit
	return decoder.Decode(v)
}
