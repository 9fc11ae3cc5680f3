package authenticity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestClient — клиент, направленный на тестовый детектор.
func newTestClient(t *testing.T, threshold int, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(srv.Client(), srv.URL, "test-token", threshold)
}

// Score: корректный запрос (тело, заголовки) и разбор ответа.
func TestScore_OK(t *testing.T) {
	c := newTestClient(t, 0, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req scoreRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "a perfectly human text", req.Text)
		require.Equal(t, "latest", req.Version)
		require.False(t, req.Sentences)
		require.Equal(t, "auto", req.Language)

		_, _ = w.Write([]byte(`{"score": 93}`))
	})

	score, err := c.Score(context.Background(), "a perfectly human text")
	require.NoError(t, err)
	require.Equal(t, 93, score)
}

// Score: неуспешный статус детектора — ошибка.
func TestScore_BadStatus(t *testing.T) {
	c := newTestClient(t, 0, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.Score(context.Background(), "text")
	require.Error(t, err)
}

// IsHumanWritten: порог включительно (score == threshold проходит).
func TestIsHumanWritten_Threshold(t *testing.T) {
	for _, tt := range []struct {
		score int
		want  bool
	}{
		{score: 69, want: false},
		{score: 70, want: true},
		{score: 100, want: true},
		{score: 0, want: false},
	} {
		score := tt.score
		c := newTestClient(t, DefaultThreshold, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"score": ` + strconv.Itoa(score) + `}`))
		})

		require.Equal(t, tt.want, c.IsHumanWritten(context.Background(), "text"), "score=%d", tt.score)
	}
}

// IsHumanWritten: fail-closed — сбой детектора блокирует публикацию.
func TestIsHumanWritten_FailClosed(t *testing.T) {
	// HTTP 500.
	c := newTestClient(t, DefaultThreshold, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	require.False(t, c.IsHumanWritten(context.Background(), "text"))

	// Битый JSON.
	c = newTestClient(t, DefaultThreshold, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"score": `))
	})
	require.False(t, c.IsHumanWritten(context.Background(), "text"))

	// Транспортный сбой.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()
	down := New(&http.Client{}, url, "t", DefaultThreshold)
	require.False(t, down.IsHumanWritten(context.Background(), "text"))
}
