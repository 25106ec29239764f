package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingToken = errors.New("authorization token required")
)

// Token types carried in the "type" claim. A refresh token is never accepted
// where an access token is required, and vice versa.
const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

// Claims are the JWT claims for both token flavors. Subject holds the user's
// document key.
type Claims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates signed, expiring access/refresh tokens.
type TokenManager struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a token manager. secretKey should be a strong
// random string (e.g. 32 bytes). Typical TTLs: 15 minutes for access tokens,
// 7 days for refresh tokens.
func NewTokenManager(secretKey string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccess creates a new access token for the given user key.
func (m *TokenManager) GenerateAccess(userKey string) (string, error) {
	return m.generate(userKey, TokenAccess, m.accessTTL)
}

// GenerateRefresh creates a new refresh token for the given user key.
func (m *TokenManager) GenerateRefresh(userKey string) (string, error) {
	return m.generate(userKey, TokenRefresh, m.refreshTTL)
}

func (m *TokenManager) generate(userKey, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			// A unique jti per token: timestamps are whole seconds and
			// HS256 is deterministic, so without it two tokens minted in
			// the same second would be byte-identical and replacing a
			// stored refresh token would not invalidate the old one.
			ID:        uuid.New().String(),
			Subject:   userKey,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyAccess validates an access token and returns its claims.
func (m *TokenManager) VerifyAccess(tokenString string) (*Claims, error) {
	return m.verify(tokenString, TokenAccess)
}

// VerifyRefresh validates a refresh token and returns its claims.
func (m *TokenManager) VerifyRefresh(tokenString string) (*Claims, error) {
	return m.verify(tokenString, TokenRefresh)
}

func (m *TokenManager) verify(tokenString, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("%w: not a %s token", ErrInvalidToken, wantType)
	}
	return claims, nil
}
