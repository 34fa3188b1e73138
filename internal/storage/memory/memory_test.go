package memory

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/asenlucky9/ikoha-community/internal/models"
	"github.com/asenlucky9/ikoha-community/internal/storage"
)

// Файл unit-тестов in-memory бэкенда.
//
// Покрываем семантику движка запросов:
//   - видимость только опубликованного подмножества;
//   - строгий фильтр по категории (неизвестное значение -> пусто);
//   - разбиение по категориям без потерь и дублей;
//   - поиск как OR-подстрока по трём полям;
//   - сортировка по дате публикации, нулевые даты в конце, tie-break по id;
//   - полноту пагинации и страницу за пределами totalPages;
//   - адресуемость по слагу (точное совпадение, только опубликованные);
//   - идемпотентность выборки.

func fixtureArticles() []models.Article {
	at := func(day int) time.Time {
		return time.Date(2024, time.December, day, 12, 0, 0, 0, time.UTC)
	}

	return []models.Article{
		{ID: "1", Slug: "alpha", Title: "Alpha", Excerpt: "first", Content: "<p>granite deposits</p>", Category: models.CategoryMinerals, IsPublished: true, PublishedAt: at(10)},
		{ID: "2", Slug: "bravo", Title: "Bravo", Excerpt: "second", Content: "<p>road works</p>", Category: models.CategoryDevelopment, IsPublished: true, PublishedAt: at(12)},
		{ID: "3", Slug: "charlie", Title: "Charlie", Excerpt: "third", Content: "<p>festival news</p>", Category: models.CategoryEvents, IsPublished: true, PublishedAt: at(8)},
		{ID: "4", Slug: "delta", Title: "Delta", Excerpt: "fourth", Content: "<p>meeting agenda</p>", Category: models.CategoryAnnouncements, IsPublished: true, PublishedAt: at(14)},
		{ID: "5", Slug: "echo", Title: "Echo", Excerpt: "fifth", Content: "<p>farm support</p>", Category: models.CategoryGeneral, IsPublished: true, PublishedAt: at(6)},
		{ID: "6", Slug: "foxtrot", Title: "Foxtrot", Excerpt: "sixth", Content: "<p>water supply</p>", Category: models.CategoryDevelopment, IsPublished: true, PublishedAt: at(11)},
		// Опубликована, но без даты — ранжируется последней.
		{ID: "7", Slug: "golf", Title: "Golf", Excerpt: "seventh", Content: "<p>undated piece</p>", Category: models.CategoryGeneral, IsPublished: true},
		// Черновик: невидим для всех операций чтения.
		{ID: "8", Slug: "hotel", Title: "Hotel", Excerpt: "draft", Content: "<p>secret draft</p>", Category: models.CategoryGeneral, IsPublished: false, PublishedAt: at(20)},
	}
}

func newStoreForTest() *Store {
	return New(fixtureArticles(), SeedEvents())
}

func listAll(t *testing.T, s *Store, opts models.ListOptions) *models.ArticlePage {
	t.Helper()

	page, err := s.ListArticles(context.Background(), opts)
	require.NoError(t, err)

	return page
}

// TestListArticles_PublishedOnly — черновик не попадает в выборку.
func TestListArticles_PublishedOnly(t *testing.T) {
	t.Parallel()

	s := newStoreForTest()
	page := listAll(t, s, models.ListOptions{Page: 1, Limit: 50})

	require.EqualValues(t, 7, page.Pagination.Total)
	for _, a := range page.Items {
		require.True(t, a.IsPublished)
		require.NotEqual(t, "hotel", a.Slug)
	}
}

// TestListArticles_SortOrder — даты по убыванию, нулевая дата в конце.
func TestListArticles_SortOrder(t *testing.T) {
	t.Parallel()

	s := newStoreForTest()
	page := listAll(t, s, models.ListOptions{Page: 1, Limit: 50})

	ids := make([]string, 0, len(page.Items))
	for _, a := range page.Items {
		ids = append(ids, a.ID)
	}

	require.Equal(t, []string{"4", "2", "6", "1", "3", "5", "7"}, ids)
}

// TestListArticles_TieBreakByID — равные даты упорядочены по id.
func TestListArticles_TieBreakByID(t *testing.T) {
	t.Parallel()

	same := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	s := New([]models.Article{
		{ID: "b", Slug: "b", IsPublished: true, PublishedAt: same},
		{ID: "a", Slug: "a", IsPublished: true, PublishedAt: same},
		{ID: "c", Slug: "c", IsPublished: true, PublishedAt: same},
	}, nil)

	page := listAll(t, s, models.ListOptions{Page: 1, Limit: 10})

	require.Equal(t, "a", page.Items[0].ID)
	require.Equal(t, "b", page.Items[1].ID)
	require.Equal(t, "c", page.Items[2].ID)
}

// TestListArticles_CategoryFilter — точное совпадение; "all" и "" — no-op.
func TestListArticles_CategoryFilter(t *testing.T) {
	t.Parallel()

	s := newStoreForTest()

	dev := listAll(t, s, models.ListOptions{Category: models.CategoryDevelopment, Page: 1, Limit: 50})
	require.EqualValues(t, 2, dev.Pagination.Total)
	for _, a := range dev.Items {
		require.Equal(t, models.CategoryDevelopment, a.Category)
	}

	all := listAll(t, s, models.ListOptions{Category: models.CategoryAll, Page: 1, Limit: 50})
	require.EqualValues(t, 7, all.Pagination.Total)

	empty := listAll(t, s, models.ListOptions{Category: "", Page: 1, Limit: 50})
	require.EqualValues(t, 7, empty.Pagination.Total)
}

// TestListArticles_UnknownCategory — строгий фильтр: пусто, не no-op.
func TestListArticles_UnknownCategory(t *testing.T) {
	t.Parallel()

	s := newStoreForTest()
	page := listAll(t, s, models.ListOptions{Category: "politics", Page: 1, Limit: 50})

	require.Empty(t, page.Items)
	require.EqualValues(t, 0, page.Pagination.Total)
	require.EqualValues(t, 1, page.Pagination.TotalPages)
}

// TestListArticles_CategoryPartition — объединение выборок по всем категориям
// воспроизводит опубликованное множество без потерь и дублей.
func TestListArticles_CategoryPartition(t *testing.T) {
	t.Parallel()

	s := newStoreForTest()

	categories := []string{
		models.CategoryGeneral,
		models.CategoryDevelopment,
		models.CategoryMinerals,
		models.CategoryEvents,
		models.CategoryAnnouncements,
	}

	seen := map[string]int{}
	for _, cat := range categories {
		page := listAll(t, s, models.ListOptions{Category: cat, Page: 1, Limit: 50})
		for _, a := range page.Items {
			seen[a.ID]++
		}
	}

	full := listAll(t, s, models.ListOptions{Page: 1, Limit: 50})
	require.Len(t, seen, len(full.Items))
	for _, a := range full.Items {
		require.Equal(t, 1, seen[a.ID], "article %s must appear in exactly one category", a.ID)
	}
}

// TestListArticles_SearchAcrossFields — OR по title/excerpt/content.
func TestListArticles_SearchAcrossFields(t *testing.T) {
	t.Parallel()

	s := newStoreForTest()

	// Термин только в content.
	page := listAll(t, s, models.ListOptions{Search: "granite", Page: 1, Limit: 50})
	require.Len(t, page.Items, 1)
	require.Equal(t, "alpha", page.Items[0].Slug)

	// Термин только в excerpt.
	page = listAll(t, s, models.ListOptions{Search: "fourth", Page: 1, Limit: 50})
	require.Len(t, page.Items, 1)
	require.Equal(t, "delta", page.Items[0].Slug)

	// Термин только в title, без учёта регистра.
	page = listAll(t, s, models.ListOptions{Search: "BRAVO", Page: 1, Limit: 50})
	require.Len(t, page.Items, 1)
	require.Equal(t, "bravo", page.Items[0].Slug)

	// Нет совпадений.
	page = listAll(t, s, models.ListOptions{Search: "xyzzy", Page: 1, Limit: 50})
	require.Empty(t, page.Items)
}

// TestListArticles_SearchSkipsDrafts — поиск не видит неопубликованное.
func TestListArticles_SearchSkipsDrafts(t *testing.T) {
	t.Parallel()

	s := newStoreForTest()
	page := listAll(t, s, models.ListOptions{Search: "secret draft", Page: 1, Limit: 50})

	require.Empty(t, page.Items)
}

// TestListArticles_PaginationCompleteness — конкатенация всех страниц
// воспроизводит полную выборку без дублей и пропусков.
func TestListArticles_PaginationCompleteness(t *testing.T) {
	t.Parallel()

	s := newStoreForTest()
	full := listAll(t, s, models.ListOptions{Page: 1, Limit: 50})

	const limit = 2
	var combined []string

	first := listAll(t, s, models.ListOptions{Page: 1, Limit: limit})
	totalPages := first.Pagination.TotalPages
	require.EqualValues(t, 4, totalPages) // ceil(7/2)

	for p := int32(1); p <= totalPages; p++ {
		page := listAll(t, s, models.ListOptions{Page: p, Limit: limit})
		require.Equal(t, p > 1, page.Pagination.HasPrevPage)
		require.Equal(t, p < totalPages, page.Pagination.HasNextPage)
		for _, a := range page.Items {
			combined = append(combined, a.ID)
		}
	}

	var want []string
	for _, a := range full.Items {
		want = append(want, a.ID)
	}

	require.Equal(t, want, combined)
}

// TestListArticles_PageBeyondTotal — пустой срез, корректные метаданные, без ошибки.
func TestListArticles_PageBeyondTotal(t *testing.T) {
	t.Parallel()

	s := newStoreForTest()
	page := listAll(t, s, models.ListOptions{Page: 99, Limit: 6})

	require.Empty(t, page.Items)
	require.EqualValues(t, 99, page.Pagination.Page)
	require.EqualValues(t, 7, page.Pagination.Total)
	require.EqualValues(t, 2, page.Pagination.TotalPages)
	require.False(t, page.Pagination.HasNextPage)
	require.True(t, page.Pagination.HasPrevPage)
}

// TestListArticles_ExtremePageAndLimit — граничные int32-значения
// page/limit не переполняют смещения: пустая страница, не паника.
func TestListArticles_ExtremePageAndLimit(t *testing.T) {
	t.Parallel()

	s := newStoreForTest()

	page := listAll(t, s, models.ListOptions{Page: math.MaxInt32, Limit: 6})
	require.Empty(t, page.Items)
	require.EqualValues(t, math.MaxInt32, page.Pagination.Page)
	require.EqualValues(t, 7, page.Pagination.Total)
	require.EqualValues(t, 2, page.Pagination.TotalPages)
	require.False(t, page.Pagination.HasNextPage)
	require.True(t, page.Pagination.HasPrevPage)

	page = listAll(t, s, models.ListOptions{Page: math.MaxInt32, Limit: math.MaxInt32})
	require.Empty(t, page.Items)
	require.EqualValues(t, 1, page.Pagination.TotalPages)

	page = listAll(t, s, models.ListOptions{Page: 1, Limit: math.MaxInt32})
	require.Len(t, page.Items, 7)
	require.EqualValues(t, 1, page.Pagination.TotalPages)
}

// TestListArticles_Idempotent — повторный вызов с тем же фильтром
// даёт идентичный результат, включая метаданные.
func TestListArticles_Idempotent(t *testing.T) {
	t.Parallel()

	s := newStoreForTest()
	opts := models.ListOptions{Category: models.CategoryDevelopment, Search: "road", Page: 1, Limit: 3}

	first := listAll(t, s, opts)
	second := listAll(t, s, opts)

	require.Equal(t, first, second)
}

// TestArticleBySlug — точное совпадение, только опубликованные.
func TestArticleBySlug(t *testing.T) {
	t.Parallel()

	s := newStoreForTest()
	ctx := context.Background()

	article, err := s.ArticleBySlug(ctx, "bravo")
	require.NoError(t, err)
	require.Equal(t, "2", article.ID)

	// Слаг с другим регистром не совпадает.
	_, err = s.ArticleBySlug(ctx, "Bravo")
	require.ErrorIs(t, err, storage.ErrNotFound)

	// Слаг черновика неадресуем, даже при точном совпадении.
	_, err = s.ArticleBySlug(ctx, "hotel")
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.ArticleBySlug(ctx, "missing")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestListEvents_SortedByStart — события отсортированы по началу.
func TestListEvents_SortedByStart(t *testing.T) {
	t.Parallel()

	s := newStoreForTest()

	events, err := s.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 4)

	for i := 1; i < len(events); i++ {
		require.False(t, events[i].StartsAt.Before(events[i-1].StartsAt))
	}
}

// TestSaveContactMessage — сообщения накапливаются в порядке приёма.
func TestSaveContactMessage(t *testing.T) {
	t.Parallel()

	s := newStoreForTest()
	ctx := context.Background()

	require.NoError(t, s.SaveContactMessage(ctx, models.ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "hello"}))
	require.NoError(t, s.SaveContactMessage(ctx, models.ContactMessage{Name: "Ben", Email: "ben@example.com", Message: "hi"}))

	msgs := s.ContactMessages()
	require.Len(t, msgs, 2)
	require.Equal(t, "Ada", msgs[0].Name)
	require.Equal(t, "Ben", msgs[1].Name)
}

// TestListArticles_CanceledContext — отменённый контекст прерывает выборку.
func TestListArticles_CanceledContext(t *testing.T) {
	t.Parallel()

	s := newStoreForTest()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListArticles(ctx, models.ListOptions{Page: 1, Limit: 6})
	require.ErrorIs(t, err, context.Canceled)
}
