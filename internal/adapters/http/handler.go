package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mergington/activities/internal/application"
	"github.com/mergington/activities/internal/contracts"
)

type Handler struct{ service *application.Service }

func NewHandler(service *application.Service) *Handler { return &Handler{service: service} }

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ListActivities(r.Context())
	if err != nil {
		status, detail := mapDomainError(err)
		logHTTPOperationError(r.Context(), "list_activities", status, detail, err)
		writeError(w, status, detail)
		return
	}
	resp := make(map[string]contracts.ActivityDTO, len(rows))
	for name, row := range rows {
		participants := row.Participants
		if participants == nil {
			participants = []string{}
		}
		resp[name] = contracts.ActivityDTO{
			Description:     row.Description,
			Schedule:        row.Schedule,
			MaxParticipants: row.MaxParticipants,
			Participants:    participants,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	name := activityNameParam(r)
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}
	message, err := h.service.Signup(r.Context(), name, email)
	if err != nil {
		status, detail := mapDomainError(err)
		logHTTPOperationError(r.Context(), "signup", status, detail, err)
		writeError(w, status, detail)
		return
	}
	writeMessage(w, message)
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request) {
	name := activityNameParam(r)
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}
	message, err := h.service.Unregister(r.Context(), name, email)
	if err != nil {
		status, detail := mapDomainError(err)
		logHTTPOperationError(r.Context(), "unregister", status, detail, err)
		writeError(w, status, detail)
		return
	}
	writeMessage(w, message)
}

// activityNameParam decodes the {name} path segment. chi hands back the raw
// segment when the request path carried percent-escapes ("Chess%20Club").
func activityNameParam(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
