package handlers

import (
	"net/http"

	apierrors "github.com/asenlucky9/ikoha-community/internal/errors"
	"github.com/asenlucky9/ikoha-community/internal/models"
)

type chatMessageJSON struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type assistantRequest struct {
	Messages []chatMessageJSON `json:"messages"`
}

type assistantResponse struct {
	Message string `json:"message"`
}

// Assistant — POST /assistant.
// Принимает историю диалога, отвечает репликой ассистента.
func (h *Handlers) Assistant(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if err := decodeJSON(r, &req); err != nil {
		apierrors.WriteError(w, r, joinInvalidArgument(err))
		return
	}

	history := make([]models.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		history = append(history, models.ChatMessage{Role: m.Role, Content: m.Content})
	}

	reply, err := h.Service.Answer(r.Context(), history)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, assistantResponse{Message: reply})
}
