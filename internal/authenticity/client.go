// authenticity — клиент внешнего сервиса оценки «человечности» текста.
//
// Гейт на пути создания поста: тексту присваивается целочисленный score
// (насколько вероятно, что он написан человеком), посты ниже порога
// блокируются. Политика применяется вызывающим слоем (HTTP-хендлером),
// а не репозиторием.
package authenticity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pribylovaa/wikinow/pkg/log"
)

// DefaultThreshold — score, начиная с которого текст считается
// «скорее написанным человеком».
const DefaultThreshold = 70

// Client — HTTP-клиент сервиса детекции сгенерированного контента.
type Client struct {
	http      *http.Client
	url       string
	token     string
	threshold int
}

// New создаёт клиент. threshold <= 0 заменяется на DefaultThreshold.
func New(httpClient *http.Client, url, token string, threshold int) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	return &Client{
		http:      httpClient,
		url:       url,
		token:     token,
		threshold: threshold,
	}
}

// scoreRequest — проводная форма запроса детектора.
type scoreRequest struct {
	Text      string `json:"text"`
	Version   string `json:"version"`
	Sentences bool   `json:"sentences"`
	Language  string `json:"language"`
}

// scoreResponse — интересует только итоговый score.
type scoreResponse struct {
	Score int `json:"score"`
}

// Score отправляет текст детектору и возвращает целочисленный score [0..100].
func (c *Client) Score(ctx context.Context, text string) (int, error) {
	const op = "authenticity/Score"

	body, err := json.Marshal(scoreRequest{
		Text:      text,
		Version:   "latest",
		Sentences: false,
		Language:  "auto",
	})
	if err != nil {
		return 0, fmt.Errorf("%s: marshal: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%s: new_request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return 0, fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	var decoded scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, fmt.Errorf("%s: decode: %w", op, err)
	}

	return decoded.Score, nil
}

// IsHumanWritten сообщает, проходит ли текст порог «человечности».
// Fail-closed: любой сбой детектора блокирует публикацию, а не пропускает её.
func (c *Client) IsHumanWritten(ctx context.Context, text string) bool {
	const op = "authenticity/IsHumanWritten"

	score, err := c.Score(ctx, text)
	if err != nil {
		log.From(ctx).Warn("authenticity_check_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return false
	}

	return score >= c.threshold
}
