package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// Ровно один вариант заполнен: успех не несёт ошибку, ошибка — данных.
func TestResult_ExactlyOneVariant(t *testing.T) {
	ok := Ok([]string{"a", "b"})
	require.True(t, ok.IsOk())
	require.NoError(t, ok.Err())
	require.Equal(t, []string{"a", "b"}, ok.Value())
	require.Equal(t, "", ok.Message())

	fail := Errf[[]string](ErrRateLimited, "Too many requests - try again later")
	require.False(t, fail.IsOk())
	require.Error(t, fail.Err())
	require.Nil(t, fail.Value())
}

// Ошибка конверта: сообщение — это Error(), вид проверяется через errors.Is.
func TestFailure_KindAndMessage(t *testing.T) {
	err := Failure(ErrHTTPStatus, "HTTP error: %d", 503)

	require.Equal(t, "HTTP error: 503", err.Error())
	require.ErrorIs(t, err, ErrHTTPStatus)
	require.NotErrorIs(t, err, ErrNetwork)
}

// nil-вид не должен ломать errors.Is — подменяем на ErrUnknown.
func TestFailure_NilKindDefaultsToUnknown(t *testing.T) {
	err := Failure(nil, "Search error: boom")
	require.ErrorIs(t, err, ErrUnknown)
	require.Equal(t, "Search error: boom", err.Error())
}

// Err принимает произвольную ошибку и отдаёт её как есть.
func TestErr_PassThrough(t *testing.T) {
	sentinel := errors.New("db down")
	r := Err[int](sentinel)

	require.False(t, r.IsOk())
	require.ErrorIs(t, r.Err(), sentinel)
	require.Equal(t, "db down", r.Message())
	require.Zero(t, r.Value())
}
