package handlers

import (
	"net/http"

	apierrors "github.com/asenlucky9/ikoha-community/internal/errors"
)

// ListEvents — GET /events.
func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Service.ListEvents(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	items := make([]eventJSON, 0, len(events))
	for _, e := range events {
		items = append(items, eventToJSON(e))
	}

	writeJSON(w, http.StatusOK, eventListResponse{Events: items})
}
