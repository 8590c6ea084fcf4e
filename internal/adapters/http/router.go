package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mergington/activities/internal/contracts"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, contracts.HealthResponse{Status: "ok"})
	})
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, contracts.HealthResponse{Status: "ready"})
	})
	r.Get("/", handler.root)
	r.Handle("/static/*", http.FileServer(http.FS(staticAssets)))
	r.Get("/activities", handler.listActivities)
	r.Post("/activities/{name}/signup", handler.signup)
	r.Delete("/activities/{name}/unregister", handler.unregister)
	return r
}
