package service

import (
	"context"
	"log/slog"

	"github.com/pribylovaa/wikinow/internal/models"
	"github.com/pribylovaa/wikinow/internal/result"
	"github.com/pribylovaa/wikinow/pkg/log"
)

// FeaturedArticle — «статья дня». Исход контент-клиента публикуется как есть.
func (s *Service) FeaturedArticle(ctx context.Context, year, month, day, language string) result.Result[[]models.FeaturedArticle] {
	return s.content.FeaturedArticle(ctx, year, month, day, language)
}

// SearchPages — поиск страниц. Исход контент-клиента публикуется как есть;
// лимит выдачи — дефолт клиента.
func (s *Service) SearchPages(ctx context.Context, query, language string) result.Result[[]models.SearchResultPage] {
	return s.content.SearchPages(ctx, query, language, 0)
}

// CreatePost — запись нового поста. Ошибка хранилища сворачивается
// в конверт с сообщением для пользователя.
func (s *Service) CreatePost(ctx context.Context, post models.Post) result.Result[string] {
	const op = "service/repository/CreatePost"

	id, err := s.storage.CreatePost(ctx, post)
	if err != nil {
		log.From(ctx).Error("storage error on CreatePost",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return result.Errf[string](result.ErrUnknown, "Failed to create post: %v", err)
	}

	return result.Ok(id)
}

// UserPosts — посты текущей личности. Отсутствие личности хранилище
// трактует как пустую выдачу, сюда это приходит успехом.
func (s *Service) UserPosts(ctx context.Context) result.Result[[]models.Post] {
	const op = "service/repository/UserPosts"

	posts, err := s.storage.UserPosts(ctx)
	if err != nil {
		log.From(ctx).Error("storage error on UserPosts",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return result.Errf[[]models.Post](result.ErrUnknown, "Failed to fetch posts: %v", err)
	}

	return result.Ok(posts)
}

// AllPosts — все посты.
func (s *Service) AllPosts(ctx context.Context) result.Result[[]models.Post] {
	const op = "service/repository/AllPosts"

	posts, err := s.storage.AllPosts(ctx)
	if err != nil {
		log.From(ctx).Error("storage error on AllPosts",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return result.Errf[[]models.Post](result.ErrUnknown, "Failed to fetch posts: %v", err)
	}

	return result.Ok(posts)
}
