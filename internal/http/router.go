package http

import (
	"log/slog"
	"net/http"

	"github.com/jaekwang-park/todo-lists/internal/http/handler"
	"github.com/jaekwang-park/todo-lists/internal/service"
	"github.com/jaekwang-park/todo-lists/internal/view"
)

func NewRouter(listSvc *service.ListService, logger *slog.Logger, healthCheck handler.HealthCheck) http.Handler {
	mux := http.NewServeMux()

	// Health check - outside the page routes for load balancer probes
	mux.Handle("/health", handler.NewHealthHandler(healthCheck))

	lists := handler.NewListHandler(listSvc, view.NewRenderer(), logger)
	lists.Register(mux)

	return mux
}
