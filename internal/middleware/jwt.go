package middleware

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"shopcart_back_end/internal/utils"
)

// BearerJWT vérifie un jeton HMAC passé dans l'en-tête Authorization.
type BearerJWT struct {
	secret []byte
	parser *jwt.Parser
}

func NewBearerJWT(secret []byte) *BearerJWT {
	return &BearerJWT{
		secret: secret,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

func (b *BearerJWT) Authorize(c *gin.Context) Decision {
	tokenString, err := utils.BearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return Deny(err.Error())
	}

	token, err := b.parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return b.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return Deny("token 已過期")
	case err != nil || !token.Valid:
		return Deny("token 無效")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return Deny("token 缺少使用者")
	}
	return Allow(subject)
}
