// service содержит бизнес-логику сервиса сообщества Ikoha.
package service

import (
	"context"
	"errors"

	"github.com/asenlucky9/ikoha-community/internal/assistant"
	"github.com/asenlucky9/ikoha-community/internal/config"
	"github.com/asenlucky9/ikoha-community/internal/llm"
	"github.com/asenlucky9/ikoha-community/internal/models"
	"github.com/asenlucky9/ikoha-community/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует.
	// Транспорт: 404 not_found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument - некорректные входные аргументы.
	// Транспорт: 400 invalid_argument.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Chatter — клиент внешнего chat-completion провайдера.
type Chatter interface {
	Name() string
	Chat(ctx context.Context, messages []models.ChatMessage) (string, error)
}

// Service — описывает бизнес-логику сервиса сообщества.
type Service struct {
	storage storage.Storage
	cfg     config.Config
	matcher *assistant.Matcher

	// primary/secondary — цепочка внешних провайдеров ассистента;
	// nil — провайдер не сконфигурирован.
	primary   Chatter
	secondary Chatter
}

// New создает новый экземпляр Service.
// Провайдеры ассистента подключаются по наличию ключей в конфигурации.
func New(storage storage.Storage, cfg config.Config) *Service {
	s := &Service{
		storage: storage,
		cfg:     cfg,
		matcher: assistant.NewMatcher(),
	}

	if cfg.Assistant.GroqAPIKey != "" {
		s.primary = llm.New("groq", cfg.Assistant.GroqBaseURL, cfg.Assistant.GroqAPIKey, cfg.Assistant.GroqModel)
	}

	if cfg.Assistant.OpenAIAPIKey != "" {
		s.secondary = llm.New("openai", cfg.Assistant.OpenAIBaseURL, cfg.Assistant.OpenAIAPIKey, cfg.Assistant.OpenAIModel)
	}

	return s
}
