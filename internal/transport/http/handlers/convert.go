package handlers

import (
	"time"

	"github.com/asenlucky9/ikoha-community/internal/models"
)

// convert.go — JSON-представления доменных сущностей.
// Имена полей — camelCase: это публичный контракт фронта сайта.

type articleJSON struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Slug             string  `json:"slug"`
	Excerpt          string  `json:"excerpt"`
	Content          string  `json:"content"`
	Category         string  `json:"category"`
	FeaturedImageURL *string `json:"featuredImageUrl"`
	AuthorID         *string `json:"authorId"`
	IsPublished      bool    `json:"isPublished"`
	PublishedAt      *string `json:"publishedAt"`
	ViewsCount       int32   `json:"viewsCount"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

type paginationJSON struct {
	Page        int32 `json:"page"`
	Limit       int32 `json:"limit"`
	Total       int32 `json:"total"`
	TotalPages  int32 `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

type articleListResponse struct {
	Articles   []articleJSON  `json:"articles"`
	Pagination paginationJSON `json:"pagination"`
}

type articleGetResponse struct {
	Article articleJSON `json:"article"`
}

type eventJSON struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	StartDate       string  `json:"startDate"`
	EndDate         *string `json:"endDate"`
	Location        string  `json:"location"`
	Type            string  `json:"type"`
	Organizer       string  `json:"organizer"`
	Capacity        int32   `json:"capacity"`
	RegisteredCount int32   `json:"registeredCount"`
	ImageURL        *string `json:"imageUrl"`
}

type eventListResponse struct {
	Events []eventJSON `json:"events"`
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func optionalTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}

	out := t.UTC().Format(time.RFC3339)
	return &out
}

func articleToJSON(a models.Article) articleJSON {
	return articleJSON{
		ID:               a.ID,
		Title:            a.Title,
		Slug:             a.Slug,
		Excerpt:          a.Excerpt,
		Content:          a.Content,
		Category:         a.Category,
		FeaturedImageURL: optionalString(a.FeaturedImageURL),
		AuthorID:         optionalString(a.AuthorID),
		IsPublished:      a.IsPublished,
		PublishedAt:      optionalTime(a.PublishedAt),
		ViewsCount:       a.ViewsCount,
		CreatedAt:        a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func articlePageToJSON(page *models.ArticlePage) articleListResponse {
	items := make([]articleJSON, 0, len(page.Items))
	for _, a := range page.Items {
		items = append(items, articleToJSON(a))
	}

	return articleListResponse{
		Articles: items,
		Pagination: paginationJSON{
			Page:        page.Pagination.Page,
			Limit:       page.Pagination.Limit,
			Total:       page.Pagination.Total,
			TotalPages:  page.Pagination.TotalPages,
			HasNextPage: page.Pagination.HasNextPage,
			HasPrevPage: page.Pagination.HasPrevPage,
		},
	}
}

func eventToJSON(e models.Event) eventJSON {
	return eventJSON{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		StartDate:       e.StartsAt.UTC().Format(time.RFC3339),
		EndDate:         optionalTime(e.EndsAt),
		Location:        e.Location,
		Type:            e.Type,
		Organizer:       e.Organizer,
		Capacity:        e.Capacity,
		RegisteredCount: e.RegisteredCount,
		ImageURL:        optionalString(e.ImageURL),
	}
}
