package handlers

import (
	"net/http"
	"strings"

	"github.com/pribylovaa/wikinow/internal/auth"
	apierrors "github.com/pribylovaa/wikinow/internal/errors"
	"github.com/pribylovaa/wikinow/internal/models"
	"github.com/pribylovaa/wikinow/internal/result"
)

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type createPostResponse struct {
	ID string `json:"id"`
}

type postsResponse struct {
	Posts []models.Post `json:"posts"`
}

// CreatePost — POST /posts. Требует аутентифицированной личности;
// текст проходит гейт аутентичности до записи в хранилище.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())
	if identity == nil {
		apierrors.WriteError(w, r, result.Failure(result.ErrNotAuthenticated, "not authenticated"))
		return
	}

	var req createPostRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
		return
	}

	if !h.checker.IsHumanWritten(r.Context(), req.Content) {
		apierrors.WriteError(w, r, apierrors.ErrContentBlocked)
		return
	}

	res := h.repo.CreatePost(r.Context(), models.Post{
		AuthorID:    identity.UID,
		AuthorEmail: identity.Email,
		Title:       req.Title,
		Content:     req.Content,
	})
	if !res.IsOk() {
		apierrors.WriteError(w, r, res.Err())
		return
	}

	writeJSON(w, http.StatusCreated, createPostResponse{ID: res.Value()})
}

// AllPosts — GET /posts. Общая лента, личность не требуется.
func (h *Handlers) AllPosts(w http.ResponseWriter, r *http.Request) {
	res := h.repo.AllPosts(r.Context())
	if !res.IsOk() {
		apierrors.WriteError(w, r, res.Err())
		return
	}

	writeJSON(w, http.StatusOK, postsResponse{Posts: res.Value()})
}

// UserPosts — GET /posts/mine. Требует аутентифицированной личности:
// хранилище фильтрует по email из контекста запроса.
func (h *Handlers) UserPosts(w http.ResponseWriter, r *http.Request) {
	if auth.FromContext(r.Context()) == nil {
		apierrors.WriteError(w, r, result.Failure(result.ErrNotAuthenticated, "not authenticated"))
		return
	}

	res := h.repo.UserPosts(r.Context())
	if !res.IsOk() {
		apierrors.WriteError(w, r, res.Err())
		return
	}

	writeJSON(w, http.StatusOK, postsResponse{Posts: res.Value()})
}
