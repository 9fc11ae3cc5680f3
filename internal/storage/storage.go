package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/wikinow/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInternal — сбой хранилища (соединение/запрос/контекст).
	ErrInternal = errors.New("internal")
)

// Storage описывает операции над пользовательскими постами.
//
// Хранилище — единственный владелец постов: оно назначает ID и CreatedAt,
// клиентские значения этих полей на создании игнорируются.
type Storage interface {
	// CreatePost записывает новый пост и возвращает сгенерированный
	// хранилищем идентификатор. CreatedAt назначается в момент коммита.
	CreatePost(ctx context.Context, post models.Post) (string, error)

	// UserPosts возвращает посты текущей аутентифицированной личности,
	// отфильтрованные по её email, новые первыми (created_at DESC).
	// Если личности нет или её email неизвестен — пустой список, НЕ ошибка.
	// Документы, не разобравшиеся в Post, молча пропускаются
	// (частичная выдача лучше полного отказа).
	UserPosts(ctx context.Context) ([]models.Post, error)

	// AllPosts возвращает все посты, новые первыми (created_at DESC).
	// Толерантность к битым документам — как у UserPosts.
	AllPosts(ctx context.Context) ([]models.Post, error)
}
