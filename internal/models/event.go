package models

import "time"

// Типы событий сообщества.
const (
	EventTypeMeeting     = "meeting"
	EventTypeFestival    = "festival"
	EventTypeWorkshop    = "workshop"
	EventTypeCelebration = "celebration"
	EventTypeOther       = "other"
)

// Event — событие сообщества (фестиваль, собрание, воркшоп).
type Event struct {
	// ID — уникальный идентификатор события.
	ID string
	// Title - название события.
	Title string
	// Description - описание события.
	Description string
	// StartsAt - время начала (UTC).
	StartsAt time.Time
	// EndsAt - время окончания; нулевое значение — не задано.
	EndsAt time.Time
	// Location - место проведения.
	Location string
	// Type - тип события (одно из значений EventType*).
	Type string
	// Organizer - организатор.
	Organizer string
	// Capacity - вместимость; 0 — без ограничения.
	Capacity int32
	// RegisteredCount - число зарегистрированных участников.
	RegisteredCount int32
	// ImageURL - ссылка на изображение (опционально).
	ImageURL string
}
