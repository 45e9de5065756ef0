package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const operationParam = "operation"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/health", h.health)
	router.Post("/api/bridge/{"+operationParam+"}", h.dispatch)

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}

// notFound answers with an empty 404. It is used for unknown paths and for
// known paths requested with the wrong method alike.
func notFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
