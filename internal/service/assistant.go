package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/asenlucky9/ikoha-community/internal/assistant"
	"github.com/asenlucky9/ikoha-community/internal/models"
	"github.com/asenlucky9/ikoha-community/internal/pkg/log"
)

// Answer отвечает на последнюю пользовательскую реплику диалога.
//
// Порядок выбора пути:
//  1. ни один провайдер не сконфигурирован — локальный матчер
//     (нет совпадения — assistant.SetupResponse);
//  2. иначе системная инструкция + хвост истории (последние
//     cfg.Assistant.HistoryDepth не-системных реплик) отправляются
//     первичному провайдеру, при неудаче — вторичному; каждый провайдер
//     вызывается не более одного раза, без ретраев;
//  3. оба провайдера отказали — снова локальный матчер.
//
// Отказ провайдера никогда не всплывает к пользователю как ошибка:
// худший исход — текст по умолчанию.
//
// Ошибки:
//   - ErrInvalidArgument — в истории нет непустой пользовательской реплики.
func (s *Service) Answer(ctx context.Context, history []models.ChatMessage) (string, error) {
	const op = "service.assistant.Answer"

	lg := log.From(ctx)

	question := lastUserMessage(history)
	if question == "" {
		lg.Warn("answer_empty_message",
			slog.String("op", op),
		)

		return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if s.primary == nil && s.secondary == nil {
		lg.Info("answer_matcher_path",
			slog.String("op", op),
		)

		return s.matcherReply(question), nil
	}

	messages := s.providerMessages(history)

	for _, provider := range []Chatter{s.primary, s.secondary} {
		if provider == nil {
			continue
		}

		reply, err := s.chatOnce(ctx, provider, messages)
		if err != nil {
			lg.Warn("answer_provider_failed",
				slog.String("op", op),
				slog.String("provider", provider.Name()),
				slog.String("err", err.Error()),
			)

			continue
		}

		lg.Info("answer_provider_ok",
			slog.String("op", op),
			slog.String("provider", provider.Name()),
		)

		return reply, nil
	}

	lg.Info("answer_fallback_path",
		slog.String("op", op),
	)

	return s.matcherReply(question), nil
}

// matcherReply — ответ локального матчера; на «нет совпадения»
// подставляется текст по умолчанию.
func (s *Service) matcherReply(question string) string {
	if reply, ok := s.matcher.Reply(question); ok {
		return reply
	}

	return assistant.SetupResponse
}

// chatOnce — один вызов провайдера под собственным таймаутом.
func (s *Service) chatOnce(ctx context.Context, provider Chatter, messages []models.ChatMessage) (string, error) {
	if d := s.cfg.Assistant.Timeout; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	return provider.Chat(ctx, messages)
}

// providerMessages собирает диалог для провайдера: системная инструкция
// плюс хвост истории без системных реплик вызывающей стороны.
func (s *Service) providerMessages(history []models.ChatMessage) []models.ChatMessage {
	depth := s.cfg.Assistant.HistoryDepth
	if depth <= 0 {
		depth = 20
	}

	turns := make([]models.ChatMessage, 0, len(history))
	for _, m := range history {
		if m.Role == models.RoleSystem {
			continue
		}

		role := models.RoleAssistant
		if m.Role == models.RoleUser {
			role = models.RoleUser
		}

		turns = append(turns, models.ChatMessage{Role: role, Content: m.Content})
	}

	if len(turns) > depth {
		turns = turns[len(turns)-depth:]
	}

	out := make([]models.ChatMessage, 0, len(turns)+1)
	out = append(out, models.ChatMessage{Role: models.RoleSystem, Content: assistant.SystemPrompt})
	out = append(out, turns...)

	return out
}

// lastUserMessage — содержимое последней пользовательской реплики (trim).
func lastUserMessage(history []models.ChatMessage) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == models.RoleUser {
			return strings.TrimSpace(history[i].Content)
		}
	}

	return ""
}
