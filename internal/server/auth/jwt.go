// Package auth signs and verifies the browser-profile token carried in the
// artspace_browser cookie.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the standard claims plus the browser profile id.
type Claims struct {
	jwt.RegisteredClaims
	BrowserID string
}

func GenerateToken(browserID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		BrowserID: browserID,
	})

	return token.SignedString(secretKey)
}

// GetBrowserIDFromToken verifies tokenString and returns its profile id.
// Expired tokens fail with an error matching jwt.ErrTokenExpired.
func GetBrowserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.BrowserID == "" {
		return "", ErrInvalidToken
	}

	return claims.BrowserID, nil
}
