package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/iparr-biocorellc/backoffice/internal/errs"
)

// TokenManager mints and verifies HS256 session tokens.
type TokenManager struct {
	secretKey []byte
	ttl       time.Duration
}

// NewTokenManager creates a TokenManager with the given signing secret and
// token lifetime.
func NewTokenManager(secretKey string, ttl time.Duration) *TokenManager {
	return &TokenManager{secretKey: []byte(secretKey), ttl: ttl}
}

// GenerateToken returns a signed token carrying the user id.
func (tm *TokenManager) GenerateToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(tm.ttl).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secretKey)
}

// ParseToken verifies a token and returns the user id it carries.
// Any verification failure reports errs.ErrInvalidToken.
func (tm *TokenManager) ParseToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errs.ErrInvalidToken
		}
		return tm.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", errs.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errs.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errs.ErrInvalidToken
	}

	return sub, nil
}
