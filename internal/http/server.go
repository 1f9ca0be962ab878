package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jaekwang-park/todo-lists/internal/http/handler"
	"github.com/jaekwang-park/todo-lists/internal/middleware"
	"github.com/jaekwang-park/todo-lists/internal/service"
	"github.com/jaekwang-park/todo-lists/internal/session"
)

type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

func NewServer(port string, logger *slog.Logger, listSvc *service.ListService, sessions *session.Store, healthCheck handler.HealthCheck) *Server {
	router := NewRouter(listSvc, logger, healthCheck)

	// Apply middleware chain: logging -> recovery -> session -> router
	chain := middleware.Logging(logger)(
		middleware.Recovery(logger)(
			middleware.Session(sessions, logger)(router),
		),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      chain,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the fully wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
