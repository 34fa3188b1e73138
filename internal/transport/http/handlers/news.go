package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/asenlucky9/ikoha-community/internal/errors"
	"github.com/asenlucky9/ikoha-community/internal/models"
)

// ListArticles — GET /news.
//
// Параметры запроса: category, search, page, limit, slug.
// Нечисловые page/limit деградируют к дефолтам, не к ошибке.
// Параметр slug сохранён ради исторического контракта фронта:
// /news?slug=... отвечает одной статьёй, как /news/{slug}.
func (h *Handlers) ListArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if slug := q.Get("slug"); slug != "" {
		h.writeArticle(w, r, slug)
		return
	}

	opts := models.ListOptions{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Page:     parseInt32(q.Get("page")),
		Limit:    parseInt32(q.Get("limit")),
	}

	page, err := h.Service.ListArticles(r.Context(), opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articlePageToJSON(page))
}

// ArticleBySlug — GET /news/{slug}.
func (h *Handlers) ArticleBySlug(w http.ResponseWriter, r *http.Request) {
	h.writeArticle(w, r, chi.URLParam(r, "slug"))
}

func (h *Handlers) writeArticle(w http.ResponseWriter, r *http.Request, slug string) {
	article, err := h.Service.ArticleBySlug(r.Context(), slug)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, articleGetResponse{Article: articleToJSON(*article)})
}

// parseInt32 — "мягкий" парсинг: пустая строка и мусор дают 0,
// сервис нормализует нулевое значение к дефолту.
func parseInt32(value string) int32 {
	if value == "" {
		return 0
	}

	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0
	}

	return int32(n)
}
