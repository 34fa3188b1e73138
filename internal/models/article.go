// models содержит доменные сущности сервиса сообщества.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import "time"

// Категории статей — закрытое множество значений.
const (
	CategoryGeneral       = "general"
	CategoryDevelopment   = "development"
	CategoryMinerals      = "minerals"
	CategoryEvents        = "events"
	CategoryAnnouncements = "announcements"
)

// CategoryAll — специальное значение фильтра «все категории».
const CategoryAll = "all"

// Article — доменная сущность новостной статьи.
//
// Особенности:
//   - Slug уникален в пределах коллекции и используется для прямого поиска;
//   - Content может содержать встроенную разметку, слой запросов её не трактует;
//   - нулевое PublishedAt означает «ещё не опубликовано датой»: такая запись
//     при сортировке ранжируется ниже всех датированных;
//   - временные метки — в UTC.
type Article struct {
	// ID — уникальный стабильный идентификатор статьи.
	ID string
	// Slug - URL-безопасный идентификатор, производный от заголовка.
	Slug string
	// Title - заголовок статьи.
	Title string
	// Excerpt - тизер статьи.
	Excerpt string
	// Content - полный текст статьи (может содержать разметку).
	Content string
	// Category - категория статьи (одно из значений Category*).
	Category string
	// FeaturedImageURL - ссылка на обложку (опционально).
	FeaturedImageURL string
	// AuthorID - идентификатор автора (опционально).
	AuthorID string
	// IsPublished - неопубликованные записи невидимы для всех операций чтения.
	IsPublished bool
	// PublishedAt - время публикации; нулевое значение — дата не назначена.
	PublishedAt time.Time
	// ViewsCount - счётчик просмотров (в этом сервисе только для чтения).
	ViewsCount int32
	// CreatedAt - время создания записи.
	CreatedAt time.Time
	// UpdatedAt - время последнего изменения записи.
	UpdatedAt time.Time
}

// ListOptions — параметры выборки списка статей.
//
// Особенности:
//   - Category == "" или "all" -> фильтр по категории не применяется;
//     неизвестное значение даёт строгий пустой результат;
//   - Search == "" -> текстовый фильтр не применяется;
//   - Page/Limit < 1 нормализуются (clamp): Page -> 1,
//     Limit -> серверный default из config.LimitsConfig.
type ListOptions struct {
	Category string
	Search   string
	Page     int32
	Limit    int32
}

// Pagination — метаданные страницы результатов.
type Pagination struct {
	Page        int32
	Limit       int32
	Total       int32
	TotalPages  int32
	HasNextPage bool
	HasPrevPage bool
}

// ArticlePage — страница статей с метаданными пагинации.
type ArticlePage struct {
	Items      []Article
	Pagination Pagination
}
