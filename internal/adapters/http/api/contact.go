// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vpenugonda/portfolio/internal/domain/contact"
)

// ContactDependencies defines the interface for contact form operations.
type ContactDependencies interface {
	UpdateContactField(ctx context.Context, field, value string) (contact.State, error)
	SubmitContact(ctx context.Context) (contact.State, error)
	ContactState(ctx context.Context) contact.State
}

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	deps ContactDependencies
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(deps ContactDependencies) *ContactHandler {
	return &ContactHandler{deps: deps}
}

// contactRequest mirrors the contact form fields.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// contactResponse pairs the form snapshot with the field error map so the
// client can render inline errors without a second round trip.
type contactResponse struct {
	State  contact.State     `json:"state"`
	Errors map[string]string `json:"errors,omitempty"`
}

// HandlePostContact handles POST /api/contact requests. The three fields are
// applied in order and the form is submitted; a validation failure returns
// the per-field error map, a transport failure preserves the typed input.
func (h *ContactHandler) HandlePostContact(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_contact"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	ctx := r.Context()
	for field, value := range map[string]string{
		contact.FieldName:    req.Name,
		contact.FieldEmail:   req.Email,
		contact.FieldMessage: req.Message,
	} {
		if _, err := h.deps.UpdateContactField(ctx, field, value); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
	}

	state, err := h.deps.SubmitContact(ctx)
	switch {
	case errors.Is(err, contact.ErrInvalid):
		writeJSON(w, http.StatusUnprocessableEntity, contactResponse{State: state, Errors: state.Errors})
	case errors.Is(err, contact.ErrInFlight):
		writeError(w, http.StatusConflict, "in_flight", NewKind(op, contact.ErrInFlight))
	case err != nil:
		writeError(w, http.StatusBadGateway, "send_failed", Wrap(op, err))
	default:
		writeJSON(w, http.StatusOK, contactResponse{State: state})
	}
}
