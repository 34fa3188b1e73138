package handlers

import (
	"fmt"
	"net/http"

	apierrors "github.com/asenlucky9/ikoha-community/internal/errors"
	"github.com/asenlucky9/ikoha-community/internal/models"
	"github.com/asenlucky9/ikoha-community/internal/service"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type contactResponse struct {
	ID string `json:"id"`
}

// SubmitContact — POST /contact.
func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		apierrors.WriteError(w, r, joinInvalidArgument(err))
		return
	}

	id, err := h.Service.SubmitContact(r.Context(), models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, contactResponse{ID: id.String()})
}

// joinInvalidArgument — локальная ошибка парсинга тела -> invalid_argument.
func joinInvalidArgument(err error) error {
	return fmt.Errorf("%w: %w", service.ErrInvalidArgument, err)
}
