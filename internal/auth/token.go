package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken — токен не прошёл разбор/подпись/клеймы.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired — срок действия токена истёк.
	ErrTokenExpired = errors.New("token expired")
)

type accessClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenVerifier проверяет access-токены внешнего провайдера идентичности
// (HS256 + общий секрет) и извлекает из клеймов uid/email.
// Выпуск/обновление токенов — не наша забота, только чтение.
type TokenVerifier struct {
	secret []byte
	leeway time.Duration
}

// NewTokenVerifier создаёт верификатор с общим секретом.
func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{
		secret: []byte(secret),
		leeway: 5 * time.Second,
	}
}

// Verify разбирает и проверяет токен, возвращая личность из клеймов.
// Ошибки: ErrTokenExpired для истёкшего срока, ErrInvalidToken для остального.
func (v *TokenVerifier) Verify(tokenStr string) (*Identity, error) {
	const op = "auth/token/Verify"

	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return &Identity{UID: claims.UserID, Email: claims.Email}, nil
}
