package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/wikinow/internal/auth"
	"github.com/pribylovaa/wikinow/internal/models"
	"github.com/pribylovaa/wikinow/internal/result"
	"github.com/pribylovaa/wikinow/mocks"
)

var testIdentity = &auth.Identity{UID: "uid-1", Email: "user@example.com"}

// fakeChecker — управляемый гейт аутентичности.
type fakeChecker struct {
	allow bool
	seen  string
}

func (f *fakeChecker) IsHumanWritten(_ context.Context, text string) bool {
	f.seen = text
	return f.allow
}

func newHandlers(t *testing.T, allow bool) (*Handlers, *mocks.MockRepository, *fakeChecker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRepository(ctrl)
	checker := &fakeChecker{allow: allow}

	h := New(repo, checker)
	h.now = func() time.Time { return time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC) }

	return h, repo, checker
}

func errCode(t *testing.T, body string) string {
	t.Helper()

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	return resp.Error.Code
}

func TestFeatured(t *testing.T) {
	t.Parallel()

	t.Run("defaults_to_today_en", func(t *testing.T) {
		t.Parallel()

		h, repo, _ := newHandlers(t, true)

		want := []models.FeaturedArticle{{Title: "Pi"}}
		repo.EXPECT().
			FeaturedArticle(gomock.Any(), "2025", "03", "14", "en").
			Return(result.Ok(want))

		rec := httptest.NewRecorder()
		h.Featured(rec, httptest.NewRequest(http.MethodGet, "/featured", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp featuredResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, want, resp.Articles)
	})

	t.Run("explicit_date_and_lang", func(t *testing.T) {
		t.Parallel()

		h, repo, _ := newHandlers(t, true)

		repo.EXPECT().
			FeaturedArticle(gomock.Any(), "2024", "12", "31", "de").
			Return(result.Ok([]models.FeaturedArticle{}))

		rec := httptest.NewRecorder()
		h.Featured(rec, httptest.NewRequest(http.MethodGet, "/featured?year=2024&month=12&day=31&lang=de", nil))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non_numeric_date_component", func(t *testing.T) {
		t.Parallel()

		h, _, _ := newHandlers(t, true)

		rec := httptest.NewRecorder()
		h.Featured(rec, httptest.NewRequest(http.MethodGet, "/featured?year=abcd", nil))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "invalid_argument", errCode(t, rec.Body.String()))
	})

	t.Run("upstream_error_mapped", func(t *testing.T) {
		t.Parallel()

		h, repo, _ := newHandlers(t, true)

		repo.EXPECT().
			FeaturedArticle(gomock.Any(), "2025", "03", "14", "en").
			Return(result.Errf[[]models.FeaturedArticle](result.ErrNetwork, "Network error: dial tcp"))

		rec := httptest.NewRecorder()
		h.Featured(rec, httptest.NewRequest(http.MethodGet, "/featured", nil))

		require.Equal(t, http.StatusBadGateway, rec.Code)
		require.Equal(t, "network_unavailable", errCode(t, rec.Body.String()))
	})
}

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("pages_carry_deep_link", func(t *testing.T) {
		t.Parallel()

		h, repo, _ := newHandlers(t, true)

		repo.EXPECT().
			SearchPages(gomock.Any(), "einstein", "en").
			Return(result.Ok([]models.SearchResultPage{{ID: 736, Title: "Albert Einstein"}}))

		rec := httptest.NewRecorder()
		h.Search(rec, httptest.NewRequest(http.MethodGet, "/search?q=einstein", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp searchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Pages, 1)
		require.Equal(t, "https://en.wikipedia.org/?curid=736", resp.Pages[0].URL)
	})

	t.Run("blank_query_is_empty_success", func(t *testing.T) {
		t.Parallel()

		h, repo, _ := newHandlers(t, true)

		repo.EXPECT().
			SearchPages(gomock.Any(), "", "en").
			Return(result.Ok([]models.SearchResultPage{}))

		rec := httptest.NewRecorder()
		h.Search(rec, httptest.NewRequest(http.MethodGet, "/search", nil))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rate_limited_mapped", func(t *testing.T) {
		t.Parallel()

		h, repo, _ := newHandlers(t, true)

		repo.EXPECT().
			SearchPages(gomock.Any(), "einstein", "en").
			Return(result.Errf[[]models.SearchResultPage](result.ErrRateLimited, "Too many requests - try again later"))

		rec := httptest.NewRecorder()
		h.Search(rec, httptest.NewRequest(http.MethodGet, "/search?q=einstein", nil))

		require.Equal(t, http.StatusTooManyRequests, rec.Code)

		var resp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "Too many requests - try again later", resp.Error.Message)
	})
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	return req.WithContext(auth.WithIdentity(req.Context(), testIdentity))
}

func TestCreatePost(t *testing.T) {
	t.Parallel()

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()

		h, _, _ := newHandlers(t, true)

		rec := httptest.NewRecorder()
		h.CreatePost(rec, httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"title":"t","content":"c"}`)))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "unauthenticated", errCode(t, rec.Body.String()))
	})

	t.Run("malformed_body", func(t *testing.T) {
		t.Parallel()

		h, _, _ := newHandlers(t, true)

		rec := httptest.NewRecorder()
		h.CreatePost(rec, authedRequest(http.MethodPost, "/posts", `{"title":`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("blank_fields", func(t *testing.T) {
		t.Parallel()

		h, _, _ := newHandlers(t, true)

		rec := httptest.NewRecorder()
		h.CreatePost(rec, authedRequest(http.MethodPost, "/posts", `{"title":"  ","content":"c"}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("blocked_by_authenticity_gate", func(t *testing.T) {
		t.Parallel()

		h, _, checker := newHandlers(t, false)

		rec := httptest.NewRecorder()
		h.CreatePost(rec, authedRequest(http.MethodPost, "/posts", `{"title":"t","content":"generated text"}`))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Equal(t, "content_blocked", errCode(t, rec.Body.String()))
		require.Equal(t, "generated text", checker.seen)
	})

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		h, repo, _ := newHandlers(t, true)

		repo.EXPECT().
			CreatePost(gomock.Any(), models.Post{
				AuthorID:    "uid-1",
				AuthorEmail: "user@example.com",
				Title:       "t",
				Content:     "c",
			}).
			Return(result.Ok("64f0c0ffee"))

		rec := httptest.NewRecorder()
		h.CreatePost(rec, authedRequest(http.MethodPost, "/posts", `{"title":"t","content":"c"}`))

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp createPostResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "64f0c0ffee", resp.ID)
	})

	t.Run("storage_failure", func(t *testing.T) {
		t.Parallel()

		h, repo, _ := newHandlers(t, true)

		repo.EXPECT().
			CreatePost(gomock.Any(), gomock.Any()).
			Return(result.Errf[string](result.ErrUnknown, "Failed to create post: boom"))

		rec := httptest.NewRecorder()
		h.CreatePost(rec, authedRequest(http.MethodPost, "/posts", `{"title":"t","content":"c"}`))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestListings(t *testing.T) {
	t.Parallel()

	t.Run("all_posts_public", func(t *testing.T) {
		t.Parallel()

		h, repo, _ := newHandlers(t, true)

		want := []models.Post{{ID: "b"}, {ID: "a"}}
		repo.EXPECT().AllPosts(gomock.Any()).Return(result.Ok(want))

		rec := httptest.NewRecorder()
		h.AllPosts(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp postsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, want, resp.Posts)
	})

	t.Run("user_posts_require_identity", func(t *testing.T) {
		t.Parallel()

		h, _, _ := newHandlers(t, true)

		rec := httptest.NewRecorder()
		h.UserPosts(rec, httptest.NewRequest(http.MethodGet, "/posts/mine", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("user_posts_ok", func(t *testing.T) {
		t.Parallel()

		h, repo, _ := newHandlers(t, true)

		want := []models.Post{{ID: "a", AuthorEmail: "user@example.com"}}
		repo.EXPECT().UserPosts(gomock.Any()).Return(result.Ok(want))

		rec := httptest.NewRecorder()
		h.UserPosts(rec, authedRequest(http.MethodGet, "/posts/mine", ""))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp postsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, want, resp.Posts)
	})
}
