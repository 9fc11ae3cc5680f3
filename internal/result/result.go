// result — единый конверт исхода для всех асинхронных операций слоя данных.
//
// Каждый удалённый вызов (Wikipedia API, хранилище постов) завершается
// значением Result[T]: либо успех с полезной нагрузкой, либо ошибка с
// человекочитаемым сообщением. Ошибки дополнительно несут стабильный
// вид (sentinel) для машиночитаемой обработки через errors.Is — сообщение
// предназначено для показа пользователю, вид для ветвления в коде.
package result

import (
	"errors"
	"fmt"
)

// Виды ошибок слоя данных. Сообщение у конкретной ошибки своё,
// вид проверяется через errors.Is.
var (
	// ErrNetwork — транспортный сбой (нет связности, DNS, сброс соединения).
	ErrNetwork = errors.New("network unavailable")
	// ErrHTTPStatus — ответ удалённого сервиса с неуспешным HTTP-статусом.
	ErrHTTPStatus = errors.New("http status")
	// ErrServiceUnavailable — сервис недоступен (404 у поиска).
	ErrServiceUnavailable = errors.New("service unavailable")
	// ErrRateLimited — превышен лимит запросов (429).
	ErrRateLimited = errors.New("rate limited")
	// ErrTimeout — операция не уложилась в отведённый дедлайн.
	ErrTimeout = errors.New("timeout")
	// ErrNotAuthenticated — операция требует аутентифицированной личности.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrUnknown — прочие/неожиданные сбои (декодирование, хранилище и т.д.).
	ErrUnknown = errors.New("unknown")
)

// Error — ошибка конверта: стабильный вид + человекочитаемое сообщение.
// Error() возвращает именно сообщение (оно уходит в UI как есть),
// Unwrap() отдаёт вид для errors.Is.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// Failure собирает ошибку конверта из вида и форматированного сообщения.
func Failure(kind error, format string, args ...any) *Error {
	if kind == nil {
		kind = ErrUnknown
	}

	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Result — двухвариантный исход: успех с данными либо ошибка с сообщением.
// Инвариант: заполнен ровно один вариант. Значения транзитны — рождаются
// на границе удалённого вызова и немедленно потребляются координатором.
type Result[T any] struct {
	data T
	err  error
	ok   bool
}

// Ok — успешный исход с полезной нагрузкой.
func Ok[T any](data T) Result[T] {
	return Result[T]{data: data, ok: true}
}

// Err — ошибочный исход.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Errf — ошибочный исход из вида и форматированного сообщения.
func Errf[T any](kind error, format string, args ...any) Result[T] {
	return Result[T]{err: Failure(kind, format, args...)}
}

// IsOk сообщает, успешен ли исход.
func (r Result[T]) IsOk() bool { return r.ok }

// Value возвращает полезную нагрузку (нулевое значение для ошибки).
func (r Result[T]) Value() T { return r.data }

// Err возвращает ошибку исхода (nil для успеха).
func (r Result[T]) Err() error { return r.err }

// Message возвращает человекочитаемое сообщение ошибки; пустая строка для успеха.
func (r Result[T]) Message() string {
	if r.err == nil {
		return ""
	}

	return r.err.Error()
}
