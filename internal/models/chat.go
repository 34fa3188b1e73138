package models

// Роли реплик диалога с ассистентом.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatMessage — одна реплика диалога с ассистентом.
type ChatMessage struct {
	Role    string
	Content string
}
