// Package api serves the toolkit over HTTP. The layer is stateless:
// every request is one tool call, decoded from flat JSON and answered
// with flat JSON. All engine behavior lives below the boundary.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ohada-dev/fisc/internal/auditlog"
	"github.com/ohada-dev/fisc/internal/toolkit"
)

// Recorder receives one audit entry per tool call. Nil disables
// recording.
type Recorder func(auditlog.Entry)

// Handler holds the HTTP dependencies.
type Handler struct {
	Registry *toolkit.Registry
	Recorder Recorder
}

// NewRouter wires the routes and middleware.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/tools", h.listTools)
		r.Post("/tools/{name}", h.callTool)
	})
	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// toolDTO is one registered tool in the listing response.
type toolDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) listTools(w http.ResponseWriter, _ *http.Request) {
	tools := h.Registry.Tools()
	dtos := make([]toolDTO, len(tools))
	for i, t := range tools {
		dtos[i] = toolDTO{Name: t.Name, Description: t.Description}
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) callTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	kwargs := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&kwargs); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	result, err := h.Registry.Call(name, kwargs)
	h.record(name, kwargs, err)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, toolkit.ErrUnknownTool) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

func (h *Handler) record(tool string, kwargs map[string]any, callErr error) {
	if h.Recorder == nil {
		return
	}
	e := auditlog.Entry{
		Timestamp: time.Now().UTC(),
		Tool:      tool,
		Status:    "ok",
		Summary:   auditlog.Summarize(kwargs),
	}
	if callErr != nil {
		e.Status = "error"
		e.Summary = callErr.Error()
	}
	h.Recorder(e)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
