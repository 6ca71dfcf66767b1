package authenticating

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/financas-pro-api/internal/domain"
	"github.com/vfg2006/financas-pro-api/pkg/apiErrors"
	"github.com/vfg2006/financas-pro-api/pkg/utils"
)

// TokenManager emite e valida os tokens de sessão que amarram o cliente à conta ativa
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    utils.Clock
}

func NewTokenManager(secret string, ttl time.Duration, clock utils.Clock) *TokenManager {
	if clock == nil {
		clock = time.Now
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    clock,
	}
}

func (m *TokenManager) Issue(account, provider string) (string, error) {
	tokenID, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	now := m.now()
	claims := domain.Claims{
		Account:  account,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   account,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) Validate(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.Account == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
