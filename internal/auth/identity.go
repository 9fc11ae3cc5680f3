// auth — капабилити «текущая личность» для слоя данных.
//
// Слой данных личность только читает: кто сейчас аутентифицирован и какой
// у него email. Жизненный цикл аккаунтов (вход/регистрация/выход) живёт
// у внешнего провайдера и этим пакетом не покрывается.
package auth

import "context"

// Identity — аутентифицированная личность. Email может быть пустым
// (провайдер его не всегда раскрывает).
type Identity struct {
	UID   string
	Email string
}

// Provider отдаёт текущую личность. nil означает «не аутентифицирован».
// Реализации обязаны быть безопасными для конкурентного чтения;
// слой данных личность никогда не мутирует.
type Provider interface {
	Current(ctx context.Context) *Identity
}

// Static — провайдер с фиксированной личностью. Удобен для тестов
// и однопользовательского (клиентского) режима. nil — аноним.
type Static struct {
	identity *Identity
}

// NewStatic создаёт провайдер с фиксированной личностью.
func NewStatic(id *Identity) *Static {
	return &Static{identity: id}
}

func (s *Static) Current(_ context.Context) *Identity {
	return s.identity
}

type ctxKey struct{}

// WithIdentity кладёт личность в контекст (её выставляет HTTP-мидлвар
// после проверки bearer-токена).
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext достаёт личность из контекста; nil — аноним.
func FromContext(ctx context.Context) *Identity {
	if v := ctx.Value(ctxKey{}); v != nil {
		if id, ok := v.(*Identity); ok {
			return id
		}
	}

	return nil
}

// ContextProvider читает request-scoped личность из контекста.
// Продакшен-режим сервиса: личность соответствует bearer-токену запроса.
type ContextProvider struct{}

func (ContextProvider) Current(ctx context.Context) *Identity {
	return FromContext(ctx)
}
