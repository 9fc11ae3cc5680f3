package middleware

import (
	"net/http"
	"strings"

	"github.com/pribylovaa/wikinow/internal/auth"
	apierrors "github.com/pribylovaa/wikinow/internal/errors"
	"github.com/pribylovaa/wikinow/internal/result"
)

// AuthBearer извлекает Bearer-токен из Authorization, верифицирует его и
// кладёт разрешённую личность в контекст запроса.
//
// Отсутствие заголовка — не ошибка: запрос идёт дальше без личности,
// обязательность аутентификации решают сами хендлеры. Предъявленный,
// но невалидный токен отклоняется сразу (401).
func AuthBearer(verifier *auth.TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) || len(header) <= len(prefix) {
				apierrors.WriteError(w, r, result.Failure(result.ErrNotAuthenticated, "not authenticated"))
				return
			}

			token := strings.TrimSpace(header[len(prefix):])
			identity, err := verifier.Verify(token)
			if err != nil {
				apierrors.WriteError(w, r, result.Failure(result.ErrNotAuthenticated, "not authenticated"))
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}
