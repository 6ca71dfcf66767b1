package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/financas-pro-api/pkg/utils"
)

func TestTokenManager_IssueAndValidate(t *testing.T) {
	manager := NewTokenManager("segredo", time.Hour, nil)

	token, err := manager.Issue("a@x.com", "email")
	require.NoError(t, err)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Account)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, "email", claims.Provider)
	assert.Len(t, claims.ID, 12)
}

func TestTokenManager_RejectsForeignSignature(t *testing.T) {
	token, err := NewTokenManager("outro", time.Hour, nil).Issue("a@x.com", "email")
	require.NoError(t, err)

	_, err = NewTokenManager("segredo", time.Hour, nil).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	issuedAt := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	token, err := NewTokenManager("segredo", time.Hour, utils.FixedClock(issuedAt)).Issue("a@x.com", "email")
	require.NoError(t, err)

	later := NewTokenManager("segredo", time.Hour, utils.FixedClock(issuedAt.Add(2*time.Hour)))
	_, err = later.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	_, err := NewTokenManager("segredo", time.Hour, nil).Validate("nao.e.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
