package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blockedby/chartpage/internal/logger"
)

// Config holds server configuration
type Config struct {
	Port           int
	RequestTimeout time.Duration
}

// Server represents the HTTP server
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	config     *Config
	log        *logger.Logger

	mu       sync.Mutex
	listener net.Listener
}

// NewServer creates a new HTTP server. A nil logger discards access logs.
func NewServer(cfg *Config, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Get()
	}

	srv := &Server{
		router: chi.NewRouter(),
		config: cfg,
		log:    log,
	}
	srv.httpServer = &http.Server{
		Handler:           srv.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srv.setupMiddleware()

	return srv
}

func (s *Server) setupMiddleware() {
	timeout := s.config.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.log))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(timeout))
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.GetHead)
}

// RegisterPagesHandler registers the HTML page routes
func (s *Server) RegisterPagesHandler(handler interface{}) {
	type pagesHandler interface {
		Welcome(w http.ResponseWriter, r *http.Request)
		Chart(w http.ResponseWriter, r *http.Request)
	}

	if h, ok := handler.(pagesHandler); ok {
		s.router.Get("/", h.Welcome)
		s.router.Get("/chart", h.Chart)
	}
}

// Start listens on the configured port and serves until Stop is called.
// Once Stop has run, Start returns nil without serving.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	// Serve closes the listener and returns ErrServerClosed after Shutdown
	if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully stops the server. It is safe to call before or while Start runs.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// BaseURL returns the server's base URL
func (s *Server) BaseURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return fmt.Sprintf("http://%s", s.listener.Addr().String())
	}
	return fmt.Sprintf("http://localhost:%d", s.config.Port)
}

// Router returns the underlying Chi router for external route mounting.
func (s *Server) Router() *chi.Mux {
	return s.router
}
