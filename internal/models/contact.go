package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage — сообщение контактной формы.
//
// Особенности:
//   - ID — UUIDv4, назначается сервисом при приёме;
//   - CreatedAt — в UTC.
type ContactMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
