package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/asenlucky9/ikoha-community/internal/models"
	"github.com/asenlucky9/ikoha-community/internal/pkg/log"
)

// ListEvents возвращает события сообщества, отсортированные по началу.
func (s *Service) ListEvents(ctx context.Context) ([]models.Event, error) {
	const op = "service.events.ListEvents"

	lg := log.From(ctx)

	events, err := s.storage.ListEvents(ctx)
	if err != nil {
		lg.Error("list_events_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("list_events_ok",
		slog.String("op", op),
		slog.Int("items", len(events)),
	)

	return events, nil
}
