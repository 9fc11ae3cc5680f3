// errors стандартизирует ответы об ошибках HTTP-слоя wikinow.
// На вход он принимает ошибку (как правило, конверт result.Error из
// слоя данных), а на выход даёт:
//   - корректный HTTP-статус;
//   - стабильный машиночитаемый code для фронта;
//   - человекочитаемое message конверта (оно и так предназначено для показа).
package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/wikinow/internal/result"
	"github.com/pribylovaa/wikinow/internal/storage"
)

// Локальные ошибки HTTP-слоя: входные данные и гейт аутентичности.
var (
	// ErrInvalidArgument — битые параметры запроса/тела.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrContentBlocked — текст не прошёл проверку аутентичности.
	ErrContentBlocked = errors.New("content blocked")
)

// APIError — единый формат ошибки для фронта.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку слоя данных в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal, чтобы не
//     замаскировать баг ответом "200 OK" с телом ошибки;
//   - вид конверта определяется через errors.Is, сообщение берётся из
//     самой ошибки (конверт несёт готовый текст для пользователя).
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{
			Error: APIError{
				Code:    "internal",
				Message: "internal error",
			},
		}
	}

	status, code := baseFromKind(err)
	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: err.Error(),
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// baseFromKind — маппинг вида ошибки -> HTTP/FE-код:
//   - ErrInvalidArgument -> 400
//   - result.ErrNotAuthenticated -> 401
//   - storage.ErrNotFound -> 404
//   - ErrContentBlocked -> 422
//   - result.ErrRateLimited -> 429
//   - result.ErrNetwork, result.ErrHTTPStatus (сбой апстрима) -> 502
//   - result.ErrServiceUnavailable -> 503
//   - result.ErrTimeout -> 504
//   - прочее (result.ErrUnknown включительно) -> 500/internal
func baseFromKind(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, result.ErrNotAuthenticated):
		return http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, ErrContentBlocked):
		return http.StatusUnprocessableEntity, "content_blocked"
	case errors.Is(err, result.ErrRateLimited):
		return http.StatusTooManyRequests, "rate_limited"
	case errors.Is(err, result.ErrNetwork):
		return http.StatusBadGateway, "network_unavailable"
	case errors.Is(err, result.ErrHTTPStatus):
		return http.StatusBadGateway, "upstream_status"
	case errors.Is(err, result.ErrServiceUnavailable):
		return http.StatusServiceUnavailable, "unavailable"
	case errors.Is(err, result.ErrTimeout):
		return http.StatusGatewayTimeout, "timeout"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
