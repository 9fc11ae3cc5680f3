package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/wikinow/internal/models"
	"github.com/pribylovaa/wikinow/internal/result"
	"github.com/pribylovaa/wikinow/mocks"
)

func newService(t *testing.T) (*Service, *mocks.MockContentClient, *mocks.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	content := mocks.NewMockContentClient(ctrl)
	store := mocks.NewMockStorage(ctrl)

	return New(content, store), content, store
}

// Исход контент-клиента публикуется без трансформации — и успех, и ошибка.
func TestService_FeaturedArticle_Delegates(t *testing.T) {
	t.Parallel()

	svc, content, _ := newService(t)
	ctx := context.Background()

	want := []models.FeaturedArticle{{Title: "Go (programming language)"}}
	content.EXPECT().
		FeaturedArticle(gomock.Any(), "2025", "03", "14", "en").
		Return(result.Ok(want))

	res := svc.FeaturedArticle(ctx, "2025", "03", "14", "en")
	require.True(t, res.IsOk())
	require.Equal(t, want, res.Value())
}

func TestService_FeaturedArticle_PassesErrorThrough(t *testing.T) {
	t.Parallel()

	svc, content, _ := newService(t)
	ctx := context.Background()

	content.EXPECT().
		FeaturedArticle(gomock.Any(), "2025", "03", "14", "en").
		Return(result.Errf[[]models.FeaturedArticle](result.ErrHTTPStatus, "HTTP error: 500"))

	res := svc.FeaturedArticle(ctx, "2025", "03", "14", "en")
	require.False(t, res.IsOk())
	require.ErrorIs(t, res.Err(), result.ErrHTTPStatus)
	require.Equal(t, "HTTP error: 500", res.Message())
}

func TestService_SearchPages_UsesClientDefaultLimit(t *testing.T) {
	t.Parallel()

	svc, content, _ := newService(t)
	ctx := context.Background()

	want := []models.SearchResultPage{{ID: 12, Title: "Albert Einstein"}}
	content.EXPECT().
		SearchPages(gomock.Any(), "einstein", "en", 0).
		Return(result.Ok(want))

	res := svc.SearchPages(ctx, "einstein", "en")
	require.True(t, res.IsOk())
	require.Equal(t, want, res.Value())
}

func TestService_CreatePost(t *testing.T) {
	t.Parallel()

	post := models.Post{
		AuthorID:    "uid-1",
		AuthorEmail: "user@example.com",
		Title:       "title",
		Content:     "content",
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		svc, _, store := newService(t)
		ctx := context.Background()

		store.EXPECT().CreatePost(gomock.Any(), post).Return("64f0c0ffee", nil)

		res := svc.CreatePost(ctx, post)
		require.True(t, res.IsOk())
		require.Equal(t, "64f0c0ffee", res.Value())
	})

	t.Run("storage_error", func(t *testing.T) {
		t.Parallel()

		svc, _, store := newService(t)
		ctx := context.Background()

		store.EXPECT().CreatePost(gomock.Any(), post).Return("", errors.New("write concern failed"))

		res := svc.CreatePost(ctx, post)
		require.False(t, res.IsOk())
		require.ErrorIs(t, res.Err(), result.ErrUnknown)
		require.Equal(t, "Failed to create post: write concern failed", res.Message())
	})
}

func TestService_UserPosts(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		svc, _, store := newService(t)
		ctx := context.Background()

		want := []models.Post{{ID: "a", Title: "first"}}
		store.EXPECT().UserPosts(gomock.Any()).Return(want, nil)

		res := svc.UserPosts(ctx)
		require.True(t, res.IsOk())
		require.Equal(t, want, res.Value())
	})

	// Хранилище само превращает отсутствие личности в пустую выдачу —
	// на этом уровне это обычный успех.
	t.Run("empty_is_success", func(t *testing.T) {
		t.Parallel()

		svc, _, store := newService(t)
		ctx := context.Background()

		store.EXPECT().UserPosts(gomock.Any()).Return([]models.Post{}, nil)

		res := svc.UserPosts(ctx)
		require.True(t, res.IsOk())
		require.Empty(t, res.Value())
	})

	t.Run("storage_error", func(t *testing.T) {
		t.Parallel()

		svc, _, store := newService(t)
		ctx := context.Background()

		store.EXPECT().UserPosts(gomock.Any()).Return(nil, errors.New("connection reset"))

		res := svc.UserPosts(ctx)
		require.False(t, res.IsOk())
		require.ErrorIs(t, res.Err(), result.ErrUnknown)
		require.Equal(t, "Failed to fetch posts: connection reset", res.Message())
	})
}

func TestService_AllPosts(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		svc, _, store := newService(t)
		ctx := context.Background()

		want := []models.Post{{ID: "b", Title: "newest"}, {ID: "a", Title: "older"}}
		store.EXPECT().AllPosts(gomock.Any()).Return(want, nil)

		res := svc.AllPosts(ctx)
		require.True(t, res.IsOk())
		require.Equal(t, want, res.Value())
	})

	t.Run("storage_error", func(t *testing.T) {
		t.Parallel()

		svc, _, store := newService(t)
		ctx := context.Background()

		store.EXPECT().AllPosts(gomock.Any()).Return(nil, errors.New("server selection timeout"))

		res := svc.AllPosts(ctx)
		require.False(t, res.IsOk())
		require.ErrorIs(t, res.Err(), result.ErrUnknown)
		require.Equal(t, "Failed to fetch posts: server selection timeout", res.Message())
	})
}
