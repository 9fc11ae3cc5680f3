package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/pribylovaa/wikinow/internal/errors"
	"github.com/pribylovaa/wikinow/internal/models"
	"github.com/pribylovaa/wikinow/internal/wiki"
)

const defaultLanguage = "en"

// featuredResponse — «статья дня»; список для единообразия с поиском.
type featuredResponse struct {
	Articles []models.FeaturedArticle `json:"articles"`
}

// searchPage — страница выдачи, обогащённая deep-link на полную статью.
type searchPage struct {
	models.SearchResultPage
	URL string `json:"url"`
}

type searchResponse struct {
	Pages []searchPage `json:"pages"`
}

// Featured — GET /featured?year=&month=&day=&lang=.
// Отсутствующие компоненты даты берутся из текущей локальной даты.
func (h *Handlers) Featured(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	day := h.now()
	year, month, date := day.Format("2006"), day.Format("01"), day.Format("02")

	if v := q.Get("year"); v != "" {
		year = v
	}
	if v := q.Get("month"); v != "" {
		month = v
	}
	if v := q.Get("day"); v != "" {
		date = v
	}

	for _, v := range []string{year, month, date} {
		if _, err := strconv.Atoi(v); err != nil {
			apierrors.WriteError(w, r, apierrors.ErrInvalidArgument)
			return
		}
	}

	language := q.Get("lang")
	if language == "" {
		language = defaultLanguage
	}

	res := h.repo.FeaturedArticle(r.Context(), year, month, date, language)
	if !res.IsOk() {
		apierrors.WriteError(w, r, res.Err())
		return
	}

	writeJSON(w, http.StatusOK, featuredResponse{Articles: res.Value()})
}

// Search — GET /search?q=&lang=. Пустой запрос — валидный: слой данных
// отвечает пустой выдачей без похода в сеть.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	language := r.URL.Query().Get("lang")
	if language == "" {
		language = defaultLanguage
	}

	res := h.repo.SearchPages(r.Context(), query, language)
	if !res.IsOk() {
		apierrors.WriteError(w, r, res.Err())
		return
	}

	pages := make([]searchPage, 0, len(res.Value()))
	for _, p := range res.Value() {
		pages = append(pages, searchPage{
			SearchResultPage: p,
			URL:              wiki.PageURL(language, p.ID),
		})
	}

	writeJSON(w, http.StatusOK, searchResponse{Pages: pages})
}
