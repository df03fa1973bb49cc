package service

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hr-system/pkg/config"
	apperrors "hr-system/pkg/errors"
)

// JwtCustomClaim nosi identitet korisnika kroz bearer token.
type JwtCustomClaim struct {
	UserID      int    `json:"userId"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	ZaposleniID *int   `json:"zaposleniId,omitempty"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateToken(userID int, userName, email, role string, zaposleniID *int) (string, time.Time, error)
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
	GetAccessTokenTTL() time.Duration
}

type jwtService struct {
	cfg    config.JWTConfig
	logger *zap.Logger
}

func NewJWTService(cfg config.JWTConfig, logger *zap.Logger) JWTService {
	return &jwtService{cfg: cfg, logger: logger}
}

func (s *jwtService) GenerateToken(userID int, userName, email, role string, zaposleniID *int) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.AccessTokenTTL)

	claims := &JwtCustomClaim{
		UserID:      userID,
		UserName:    userName,
		Email:       email,
		Role:        role,
		ZaposleniID: zaposleniID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

func (s *jwtService) GetAccessTokenTTL() time.Duration {
	return s.cfg.AccessTokenTTL
}

func (s *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaim{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return []byte(s.cfg.SecretKey), nil
		default:
			return nil, apperrors.ErrInvalidSigningMethod
		}
	})
	if err != nil {
		s.logger.Warn("Parsiranje ili provera potpisa tokena nije uspela", zap.Error(err))
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*JwtCustomClaim)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, apperrors.ErrTokenExpired
	}
	if claims.IssuedAt != nil && claims.IssuedAt.Time.After(time.Now()) {
		return nil, apperrors.ErrTokenNotYetValid
	}

	return claims, nil
}
