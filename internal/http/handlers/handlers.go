package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pribylovaa/wikinow/internal/service"
)

// AuthenticityChecker — гейт проверки текста перед публикацией
// (см. internal/authenticity).
type AuthenticityChecker interface {
	IsHumanWritten(ctx context.Context, text string) bool
}

// Handlers агрегирует зависимости (репозиторий и гейт аутентичности).
type Handlers struct {
	repo    service.Repository
	checker AuthenticityChecker
	now     func() time.Time
}

func New(repo service.Repository, checker AuthenticityChecker) *Handlers {
	return &Handlers{
		repo:    repo,
		checker: checker,
		now:     time.Now,
	}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
