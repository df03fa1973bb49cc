package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hr-system/pkg/config"
	apperrors "hr-system/pkg/errors"
)

func testJWTConfig(ttl time.Duration) config.JWTConfig {
	return config.JWTConfig{
		SecretKey:      "test-tajna",
		Issuer:         "hr-system",
		Audience:       "hr-system-client",
		AccessTokenTTL: ttl,
	}
}

func TestGenerateIValidateToken(t *testing.T) {
	svc := NewJWTService(testJWTConfig(time.Hour), zap.NewNop())

	zaposleniID := 7
	token, expiresAt, err := svc.GenerateToken(42, "petar", "petar@firma.local", "Zaposleni", &zaposleniID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "petar", claims.UserName)
	assert.Equal(t, "petar@firma.local", claims.Email)
	assert.Equal(t, "Zaposleni", claims.Role)
	require.NotNil(t, claims.ZaposleniID)
	assert.Equal(t, 7, *claims.ZaposleniID)
	assert.Equal(t, "hr-system", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_BezZaposlenog(t *testing.T) {
	svc := NewJWTService(testJWTConfig(time.Hour), zap.NewNop())

	token, _, err := svc.GenerateToken(1, "admin", "admin@firma.local", "SuperAdmin", nil)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ZaposleniID)
}

func TestValidateToken_PogresanPotpis(t *testing.T) {
	svc := NewJWTService(testJWTConfig(time.Hour), zap.NewNop())
	drugi := NewJWTService(config.JWTConfig{
		SecretKey:      "druga-tajna",
		Issuer:         "hr-system",
		Audience:       "hr-system-client",
		AccessTokenTTL: time.Hour,
	}, zap.NewNop())

	token, _, err := drugi.GenerateToken(1, "admin", "admin@firma.local", "SuperAdmin", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_Istekao(t *testing.T) {
	svc := NewJWTService(testJWTConfig(-time.Minute), zap.NewNop())

	token, _, err := svc.GenerateToken(1, "admin", "admin@firma.local", "SuperAdmin", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Nakaradan(t *testing.T) {
	svc := NewJWTService(testJWTConfig(time.Hour), zap.NewNop())

	_, err := svc.ValidateToken("nije.token.uopste")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
