// storage определяет контракты доступа к данным сервиса сообщества.
package storage

import (
	"context"
	"errors"

	"github.com/asenlucky9/ikoha-community/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
)

// ArticleStorage описывает операции чтения над сущностью models.Article.
//
// Все операции видят только опубликованное подмножество коллекции:
// запись с IsPublished == false неадресуема ни по слагу, ни через список.
type ArticleStorage interface {
	// ListArticles возвращает страницу статей по фильтру opts,
	// отсортированных по published_at по убыванию (нулевые даты — в конце,
	// при равенстве дат порядок детерминирован по id).
	// Значения Page/Limit < 1 нормализуются реализацией.
	ListArticles(ctx context.Context, opts models.ListOptions) (*models.ArticlePage, error)
	// ArticleBySlug возвращает опубликованную статью по точному
	// (с учётом регистра) совпадению слага. Если записи нет — ErrNotFound.
	ArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
}

// EventStorage описывает операции над сущностью models.Event.
type EventStorage interface {
	// ListEvents возвращает все события, отсортированные по началу по возрастанию.
	ListEvents(ctx context.Context) ([]models.Event, error)
}

// ContactStorage описывает операции над сущностью models.ContactMessage.
type ContactStorage interface {
	// SaveContactMessage сохраняет принятое сообщение контактной формы.
	SaveContactMessage(ctx context.Context, msg models.ContactMessage) error
}

// Storage задаёт контракт доступа к хранилищу сервиса сообщества.
type Storage interface {
	ArticleStorage
	EventStorage
	ContactStorage
	Close()
}
