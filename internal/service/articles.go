package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/asenlucky9/ikoha-community/internal/models"
	"github.com/asenlucky9/ikoha-community/internal/pkg/log"
	"github.com/asenlucky9/ikoha-community/internal/storage"
)

// ListArticles возвращает страницу статей с нормализацией входа по конфигу.
//
// Политика нормализации — clamp, без ошибок на вырожденном входе:
//   - page < 1 -> 1;
//   - limit <= 0 -> cfg.Limits.Default;
//   - limit > max -> cfg.Limits.Max.
//
// Неизвестная категория даёт пустой результат (строгий фильтр, не no-op);
// это поведение хранилища, сервис значение не проверяет.
func (s *Service) ListArticles(ctx context.Context, opts models.ListOptions) (*models.ArticlePage, error) {
	const op = "service.articles.ListArticles"

	lg := log.From(ctx)
	lg.Info("list_articles_request",
		slog.String("op", op),
		slog.String("category", opts.Category),
		slog.Bool("has_search", opts.Search != ""),
		slog.Int("page", int(opts.Page)),
		slog.Int("limit", int(opts.Limit)),
	)

	if opts.Page < 1 {
		opts.Page = 1
	}

	if opts.Limit <= 0 {
		opts.Limit = s.cfg.Limits.Default
	}

	if s.cfg.Limits.Max > 0 && opts.Limit > s.cfg.Limits.Max {
		opts.Limit = s.cfg.Limits.Max
	}

	page, err := s.storage.ListArticles(ctx, opts)
	if err != nil {
		lg.Error("list_articles_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("list_articles_ok",
		slog.String("op", op),
		slog.Int("items", len(page.Items)),
		slog.Int("total", int(page.Pagination.Total)),
	)

	return page, nil
}

// ArticleBySlug возвращает опубликованную статью по слагу.
//
// Ошибки:
//   - ErrInvalidArgument — пустой слаг;
//   - ErrNotFound — статья отсутствует или не опубликована
//     (маппинг storage.ErrNotFound);
//   - прочие ошибки стораджа — обёрнутые и прокинуты наверх.
func (s *Service) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	const op = "service.articles.ArticleBySlug"

	lg := log.From(ctx)
	lg.Info("article_by_slug_request",
		slog.String("op", op),
		slog.String("slug", slug),
	)

	if slug == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	article, err := s.storage.ArticleBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("article_by_slug_not_found",
				slog.String("op", op),
				slog.String("slug", slug),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		lg.Error("article_by_slug_storage_error",
			slog.String("op", op),
			slog.String("slug", slug),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("article_by_slug_ok",
		slog.String("op", op),
		slog.String("slug", slug),
	)

	return article, nil
}
