// llm содержит клиента chat-completion API, совместимых с OpenAI
// (OpenAI, Groq и другие хосты с тем же протоколом).
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/asenlucky9/ikoha-community/internal/models"
)

// Параметры запроса фиксированы: ассистент сайта не настраивается per-request.
const (
	maxTokens   = 1024
	temperature = 0.7
)

// Client — клиент одного chat-completion провайдера.
type Client struct {
	name   string
	model  string
	client *goopenai.Client
}

// New создаёт клиента провайдера.
// baseURL == "" означает стандартный эндпойнт OpenAI; для совместимых
// хостов (Groq и т.п.) передаётся их базовый URL.
func New(name, baseURL, apiKey, model string) *Client {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}

	return &Client{
		name:   name,
		model:  model,
		client: goopenai.NewClientWithConfig(cfg),
	}
}

// Name возвращает имя провайдера (для логов).
func (c *Client) Name() string { return c.name }

// Chat отправляет диалог провайдеру и возвращает текст ответа.
// Дедлайн запроса задаётся контекстом вызывающей стороны.
func (c *Client) Chat(ctx context.Context, messages []models.ChatMessage) (string, error) {
	msgs := make([]goopenai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, goopenai.ChatCompletionMessage{
			Role:    providerRole(m.Role),
			Content: m.Content,
		})
	}

	req := goopenai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm %s: chat completion: %w", c.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm %s: %w", c.name, errEmptyResponse)
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("llm %s: %w", c.name, errEmptyResponse)
	}

	return out, nil
}

var errEmptyResponse = errors.New("empty response")

// providerRole маппит роль доменной модели в роль протокола.
// Неизвестная роль трактуется как пользовательская.
func providerRole(role string) string {
	switch role {
	case models.RoleAssistant:
		return goopenai.ChatMessageRoleAssistant
	case models.RoleSystem:
		return goopenai.ChatMessageRoleSystem
	default:
		return goopenai.ChatMessageRoleUser
	}
}
