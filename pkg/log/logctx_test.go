package log

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// From без логгера в контексте обязан вернуть slog.Default(), а не nil.
func TestFrom_DefaultWhenEmpty(t *testing.T) {
	got := From(context.Background())
	require.NotNil(t, got)
	require.Same(t, slog.Default(), got)
}

// Into/From — положили и достали тот же экземпляр.
func TestIntoFrom_RoundTrip(t *testing.T) {
	l := slog.New(slog.NewTextHandler(os.Stdout, nil))

	ctx := Into(context.Background(), l)
	require.Same(t, l, From(ctx))
}

// Нетипичное значение по ключу не должно ломать From.
func TestFrom_NilLoggerFallsBack(t *testing.T) {
	var l *slog.Logger
	ctx := Into(context.Background(), l)
	require.Same(t, slog.Default(), From(ctx))
}
