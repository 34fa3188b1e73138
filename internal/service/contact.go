package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asenlucky9/ikoha-community/internal/models"
	"github.com/asenlucky9/ikoha-community/internal/pkg/log"
)

// SubmitContact принимает сообщение контактной формы.
//
// Обязательные поля — name, email, message; email должен содержать «@».
// Идентификатор и CreatedAt назначаются здесь, вход вызывающей стороны
// игнорируется.
//
// Ошибки:
//   - ErrInvalidArgument — не заполнены обязательные поля или битый email;
//   - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) SubmitContact(ctx context.Context, msg models.ContactMessage) (uuid.UUID, error) {
	const op = "service.contact.SubmitContact"

	lg := log.From(ctx)

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" || msg.Message == "" || !strings.Contains(msg.Email, "@") {
		lg.Warn("submit_contact_invalid",
			slog.String("op", op),
		)

		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	msg.ID = uuid.New()
	msg.CreatedAt = time.Now().UTC()

	if err := s.storage.SaveContactMessage(ctx, msg); err != nil {
		lg.Error("submit_contact_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("submit_contact_ok",
		slog.String("op", op),
		slog.String("id", msg.ID.String()),
	)

	return msg.ID, nil
}
