// service содержит репозиторный фасад wikinow — единственный шов,
// от которого зависит остальное приложение.
//
// Фасад — чистая композиция двух разнородных удалённых источников
// (read-only Wikipedia API и read/write хранилище постов) за единым
// асинхронным протоколом исходов result.Result. Результаты wiki-клиента
// публикуются без какой-либо дополнительной трансформации; ошибки
// хранилища сворачиваются в конверт на этой границе.
package service

import (
	"context"

	"github.com/pribylovaa/wikinow/internal/models"
	"github.com/pribylovaa/wikinow/internal/result"
	"github.com/pribylovaa/wikinow/internal/storage"
)

// ContentClient — операции чтения публичного контент-API (см. internal/wiki).
type ContentClient interface {
	// FeaturedArticle — «статья дня» за дату, единственная запись в списке.
	FeaturedArticle(ctx context.Context, year, month, day, language string) result.Result[[]models.FeaturedArticle]

	// SearchPages — поиск страниц; пустой запрос -> Ok(пусто) без сети.
	SearchPages(ctx context.Context, query, language string, limit int) result.Result[[]models.SearchResultPage]
}

// Repository — асинхронный контракт слоя данных для координатора и транспорта.
// Производственная реализация — Service; тесты используют моки.
type Repository interface {
	// FeaturedArticle делегирует контент-клиенту без трансформации.
	FeaturedArticle(ctx context.Context, year, month, day, language string) result.Result[[]models.FeaturedArticle]

	// SearchPages делегирует контент-клиенту без трансформации.
	SearchPages(ctx context.Context, query, language string) result.Result[[]models.SearchResultPage]

	// CreatePost пишет пост в хранилище; успех несёт сгенерированный id.
	CreatePost(ctx context.Context, post models.Post) result.Result[string]

	// UserPosts — посты текущей личности, новые первыми.
	UserPosts(ctx context.Context) result.Result[[]models.Post]

	// AllPosts — все посты, новые первыми.
	AllPosts(ctx context.Context) result.Result[[]models.Post]
}

// Service — производственная реализация Repository.
type Service struct {
	content ContentClient
	storage storage.Storage
}

// New создаёт новый экземпляр Service.
func New(content ContentClient, storage storage.Storage) *Service {
	return &Service{
		content: content,
		storage: storage,
	}
}
