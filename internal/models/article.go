// Package models содержит доменные сущности wikinow.
package models

// FeaturedArticle — «статья дня» из публичного Wikimedia feed API.
// Все поля опциональны: upstream может не прислать любое из них,
// отсутствие поля рендерится как пустое состояние, а не как ошибка.
type FeaturedArticle struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Extract      string `json:"extract,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// SearchResultPage — страница из поисковой выдачи Wikipedia Core API.
// Важно:
//   - ID — стабильный идентификатор, по нему строится deep-link на полную статью;
//   - Excerpt может содержать разметку подсветки; на этом слое она не вычищается
//     (строгание разметки — забота презентационного слоя).
type SearchResultPage struct {
	ID           int64  `json:"id"`
	Key          string `json:"key"`
	Title        string `json:"title"`
	Excerpt      string `json:"excerpt"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}
