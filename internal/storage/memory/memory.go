// memory — in-memory реализация storage.Storage.
//
// Коллекции статей и событий фиксируются при создании и не мутируются
// в течение жизни процесса; сообщения контактной формы накапливаются
// в памяти и не переживают рестарт. Бэкенд существует для того, чтобы
// слой запросов не зависел от конкретного хранилища: замена на внешнюю
// БД не меняет ни сервис, ни транспорт.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/asenlucky9/ikoha-community/internal/models"
	"github.com/asenlucky9/ikoha-community/internal/storage"
)

// fallbackLimit применяется, если вызывающая сторона не нормализовала Limit.
const fallbackLimit = 6

// Store — хранилище с фиксированным набором статей и событий.
type Store struct {
	articles []models.Article
	events   []models.Event

	mu       sync.Mutex
	contacts []models.ContactMessage
}

// Компиляционная проверка контракта.
var _ storage.Storage = (*Store)(nil)

// New создаёт Store над переданными коллекциями.
// События сортируются по началу один раз при создании.
func New(articles []models.Article, events []models.Event) *Store {
	evs := make([]models.Event, len(events))
	copy(evs, events)
	sort.SliceStable(evs, func(i, j int) bool {
		return evs[i].StartsAt.Before(evs[j].StartsAt)
	})

	arts := make([]models.Article, len(articles))
	copy(arts, articles)

	return &Store{
		articles: arts,
		events:   evs,
	}
}

// ListArticles реализует выборку страницы статей.
//
// Порядок применения фильтров:
//  1. только опубликованные записи;
//  2. категория — точное совпадение; "" и "all" пропускают все,
//     неизвестное значение даёт пустой результат;
//  3. поиск — подстрока (без учёта регистра) в title, excerpt или content;
//  4. сортировка по PublishedAt по убыванию, нулевые даты в конце,
//     при равенстве — по ID (детерминизм);
//  5. срез запрошенной страницы + метаданные.
//
// Страница за пределами totalPages — пустой срез с корректными метаданными.
func (s *Store) ListArticles(ctx context.Context, opts models.ListOptions) (*models.ArticlePage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.Page < 1 {
		opts.Page = 1
	}

	if opts.Limit < 1 {
		opts.Limit = fallbackLimit
	}

	search := strings.ToLower(opts.Search)

	filtered := make([]models.Article, 0, len(s.articles))
	for _, a := range s.articles {
		if !a.IsPublished {
			continue
		}

		if opts.Category != "" && opts.Category != models.CategoryAll && a.Category != opts.Category {
			continue
		}

		if search != "" && !matchesSearch(a, search) {
			continue
		}

		filtered = append(filtered, a)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].PublishedAt.Equal(filtered[j].PublishedAt) {
			return filtered[i].ID < filtered[j].ID
		}

		return filtered[i].PublishedAt.After(filtered[j].PublishedAt)
	})

	total := int32(len(filtered))

	// Смещения считаем в int64: произведение page*limit при больших,
	// но валидных значениях параметров переполняет int32.
	total64 := int64(total)
	limit64 := int64(opts.Limit)

	totalPages := int32((total64 + limit64 - 1) / limit64)
	if totalPages < 1 {
		totalPages = 1
	}

	start := (int64(opts.Page) - 1) * limit64
	if start > total64 {
		start = total64
	}

	end := start + limit64
	if end > total64 {
		end = total64
	}

	items := make([]models.Article, end-start)
	copy(items, filtered[start:end])

	return &models.ArticlePage{
		Items: items,
		Pagination: models.Pagination{
			Page:        opts.Page,
			Limit:       opts.Limit,
			Total:       total,
			TotalPages:  totalPages,
			HasNextPage: opts.Page < totalPages,
			HasPrevPage: opts.Page > 1,
		},
	}, nil
}

// matchesSearch — подстрочное совпадение (OR) по трём текстовым полям.
func matchesSearch(a models.Article, search string) bool {
	return strings.Contains(strings.ToLower(a.Title), search) ||
		strings.Contains(strings.ToLower(a.Excerpt), search) ||
		strings.Contains(strings.ToLower(a.Content), search)
}

// ArticleBySlug возвращает опубликованную статью по точному слагу.
// Слаг неопубликованной записи даёт ErrNotFound: такие записи неадресуемы.
func (s *Store) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, a := range s.articles {
		if a.IsPublished && a.Slug == slug {
			out := a
			return &out, nil
		}
	}

	return nil, storage.ErrNotFound
}

// ListEvents возвращает копию списка событий (отсортирован при создании).
func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]models.Event, len(s.events))
	copy(out, s.events)

	return out, nil
}

// SaveContactMessage добавляет сообщение контактной формы.
func (s *Store) SaveContactMessage(ctx context.Context, msg models.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.contacts = append(s.contacts, msg)

	return nil
}

// ContactMessages возвращает копию накопленных сообщений контактной формы.
//
// Читающего HTTP-эндпойнта для обращений нет (админ-поверхность вне
// сервиса), поэтому это инспекционный хук: им пользуются тесты и
// обслуживающий код, которому дали сам *Store, а не интерфейс хранилища.
func (s *Store) ContactMessages() []models.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ContactMessage, len(s.contacts))
	copy(out, s.contacts)

	return out
}

// Close — no-op: внешних ресурсов нет.
func (s *Store) Close() {}
