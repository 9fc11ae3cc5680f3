// wiki — клиент публичного Wikimedia REST API: «статья дня» и поиск страниц.
//
// Оба вызова read-only, идемпотентны и не держат состояния между запросами
// (никакого клиентского кеширования). Сбои никогда не покидают границу
// клиента как исключения/паники — любой путь отказа сворачивается в
// result.Err с человекочитаемым сообщением.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/wikinow/internal/models"
	"github.com/pribylovaa/wikinow/internal/result"
)

const (
	// DefaultBaseURL — корень Wikimedia REST API.
	DefaultBaseURL = "https://api.wikimedia.org"

	// defaultSearchLimit — размер поисковой выдачи по умолчанию.
	defaultSearchLimit = 10
)

// Client — тонкий HTTP-клиент Wikimedia REST API.
// HTTP-клиент настраивается извне (таймауты, прокси и т.д.).
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

// Option — настройка клиента.
type Option func(*Client)

// WithBaseURL переопределяет корень API (тесты, зеркала).
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

// WithUserAgent выставляет User-Agent (Wikimedia требует идентификацию клиента).
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New создаёт клиент Wikimedia REST API.
func New(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	c := &Client{
		http:      httpClient,
		baseURL:   DefaultBaseURL,
		userAgent: "wikinow-service/1.0",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Проводные формы ответов Wikimedia. Наружу не выходят —
// конвертируются в доменные модели сразу после декодирования.

type thumbnail struct {
	Source string `json:"source"`
	URL    string `json:"url"`
}

// sourceURL — у feed API заполнен source, у core search — url.
func (t *thumbnail) sourceURL() string {
	if t == nil {
		return ""
	}

	if t.Source != "" {
		return t.Source
	}

	return t.URL
}

type tfa struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Extract     string     `json:"extract"`
	Thumbnail   *thumbnail `json:"thumbnail"`
}

type featuredResponse struct {
	TFA *tfa `json:"tfa"`
}

type searchPage struct {
	ID          int64      `json:"id"`
	Key         string     `json:"key"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Description string     `json:"description"`
	Thumbnail   *thumbnail `json:"thumbnail"`
}

type searchResponse struct {
	Pages []searchPage `json:"pages"`
}

// FeaturedArticle загружает «статью дня» за указанную дату.
// Успех заворачивает единственную статью в список из одного элемента —
// состояние UI единообразно для всех выдач.
//
// Ошибки (вид + сообщение):
//   - транспорт:  ErrNetwork, "Network error: …";
//   - не-2xx:     ErrHTTPStatus, "HTTP error: <code>";
//   - остальное:  ErrUnknown, "Unexpected error: …".
func (c *Client) FeaturedArticle(ctx context.Context, year, month, day, language string) result.Result[[]models.FeaturedArticle] {
	endpoint := fmt.Sprintf("%s/feed/v1/wikipedia/%s/featured/%s/%s/%s",
		c.baseURL, url.PathEscape(language), url.PathEscape(year), url.PathEscape(month), url.PathEscape(day))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return result.Errf[[]models.FeaturedArticle](result.ErrUnknown, "Unexpected error: %v", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return result.Errf[[]models.FeaturedArticle](result.ErrNetwork, "Network error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result.Errf[[]models.FeaturedArticle](result.ErrHTTPStatus, "HTTP error: %d", resp.StatusCode)
	}

	var decoded featuredResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return result.Errf[[]models.FeaturedArticle](result.ErrUnknown, "Unexpected error: %v", err)
	}

	// Upstream может не прислать tfa вовсе (например, в будущем дне) —
	// это пустое состояние, а не ошибка.
	if decoded.TFA == nil {
		return result.Ok([]models.FeaturedArticle{})
	}

	article := models.FeaturedArticle{
		Title:        decoded.TFA.Title,
		Description:  decoded.TFA.Description,
		Extract:      decoded.TFA.Extract,
		ThumbnailURL: decoded.TFA.Thumbnail.sourceURL(),
	}

	return result.Ok([]models.FeaturedArticle{article})
}

// SearchPages выполняет поиск страниц по произвольному запросу.
// Пустой/пробельный запрос немедленно отдаёт Ok(пусто) БЕЗ сетевого вызова:
// search-as-you-type не должен бомбить API пустым вводом.
//
// Ошибки (вид + сообщение):
//   - транспорт:  ErrNetwork, "Please check your internet connection";
//   - 404:        ErrServiceUnavailable, "Wikipedia service unavailable";
//   - 429:        ErrRateLimited, "Too many requests - try again later";
//   - иной код:   ErrHTTPStatus, "Search failed (<code>)";
//   - остальное:  ErrUnknown, "Search error: …".
func (c *Client) SearchPages(ctx context.Context, query, language string, limit int) result.Result[[]models.SearchResultPage] {
	if strings.TrimSpace(query) == "" {
		return result.Ok([]models.SearchResultPage{})
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}

	endpoint := fmt.Sprintf("%s/core/v1/wikipedia/%s/search/page?q=%s&limit=%s",
		c.baseURL, url.PathEscape(language), url.QueryEscape(query), strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return result.Errf[[]models.SearchResultPage](result.ErrUnknown, "Search error: %v", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return result.Errf[[]models.SearchResultPage](result.ErrNetwork, "Please check your internet connection")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return result.Errf[[]models.SearchResultPage](result.ErrServiceUnavailable, "Wikipedia service unavailable")
	case resp.StatusCode == http.StatusTooManyRequests:
		return result.Errf[[]models.SearchResultPage](result.ErrRateLimited, "Too many requests - try again later")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return result.Errf[[]models.SearchResultPage](result.ErrHTTPStatus, "Search failed (%d)", resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return result.Errf[[]models.SearchResultPage](result.ErrUnknown, "Search error: %v", err)
	}

	pages := make([]models.SearchResultPage, 0, len(decoded.Pages))
	for _, p := range decoded.Pages {
		pages = append(pages, models.SearchResultPage{
			ID:           p.ID,
			Key:          p.Key,
			Title:        p.Title,
			Excerpt:      p.Excerpt,
			Description:  p.Description,
			ThumbnailURL: p.Thumbnail.sourceURL(),
		})
	}

	return result.Ok(pages)
}

// PageURL собирает deep-link на полную статью по стабильному идентификатору
// страницы (цель WebView в мобильном клиенте).
func PageURL(language string, pageID int64) string {
	if language == "" {
		language = "en"
	}

	return fmt.Sprintf("https://%s.wikipedia.org/?curid=%d", language, pageID)
}
