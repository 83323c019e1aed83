package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingAuthHeader = errors.New("缺少 token")
	ErrBadAuthHeader     = errors.New("Authorization 格式錯誤")
)

// BearerToken extrait le jeton d'un en-tête "Authorization: Bearer <token>".
func BearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrBadAuthHeader
	}
	return parts[1], nil
}

// GenerateJWT signe un jeton HS256 pour le compte donné.
func GenerateJWT(account, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": account,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
