// Package handler is the thin HTTP layer over the contact service. It
// delegates to the service without embedding business logic so transport
// concerns remain isolated.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"agenda/internal/contact"
	"agenda/internal/platform/middleware"
	dErrors "agenda/pkg/domain-errors"
)

// Service defines the interface for contact operations.
type Service interface {
	Create(ctx context.Context, name, telefono string) (contact.Contact, error)
	List(ctx context.Context) ([]contact.Contact, error)
	Get(ctx context.Context, id string) (contact.Contact, error)
	Update(ctx context.Context, id, name, telefono string) error
	Delete(ctx context.Context, id string) error
}

// Handler handles the contact endpoints.
type Handler struct {
	logger   *slog.Logger
	contacts Service
}

// New creates a new contact Handler.
func New(contacts Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, contacts: contacts}
}

// Register registers the contact routes with the chi router. Collection
// operations live on /contacts; single-record operations on /contact?id=.
func (h *Handler) Register(r chi.Router) {
	r.Post("/contacts", h.handleCreate)
	r.Get("/contacts", h.handleList)
	r.Get("/contact", h.handleGet)
	r.Put("/contact", h.handleUpdate)
	r.Delete("/contact", h.handleDelete)
}

type contactRequest struct {
	Name     string `json:"name"`
	Telefono string `json:"telefono"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid create contact request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		h.writeError(w, r, dErrors.New(dErrors.CodeValidation, "Name and telefono are required"))
		return
	}

	created, err := h.contacts.Create(ctx, req.Name, req.Telefono)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, contacts)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireID(w, r)
	if !ok {
		return
	}

	found, err := h.contacts.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, found)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireID(w, r)
	if !ok {
		return
	}

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeValidation, "Name and telefono are required"))
		return
	}

	if err := h.contacts.Update(r.Context(), id, req.Name, req.Telefono); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeText(w, http.StatusOK, "Contact updated")
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireID(w, r)
	if !ok {
		return
	}

	if err := h.contacts.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeText(w, http.StatusOK, "Contact deleted")
}

// requireID is the only validation the transport layer performs itself.
func (h *Handler) requireID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.URL.Query().Get("id")
	if id == "" {
		h.writeError(w, r, dErrors.New(dErrors.CodeValidation, "Id is required"))
		return "", false
	}
	return id, true
}

// writeError translates domain errors into plain-text HTTP responses.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var de *dErrors.Error
	status := http.StatusInternalServerError
	message := "internal server error"
	if errors.As(err, &de) {
		status = dErrors.ToHTTPStatus(de.Code)
		message = de.Message
	}

	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error(),
		)
	}

	writeText(w, status, message)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}
