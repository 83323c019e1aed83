package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopcart_back_end/internal/config"
	"shopcart_back_end/internal/utils"
)

// SubjectKey est la clé du contexte gin qui porte l'identité autorisée.
const SubjectKey = "subject"

// Decision est le verdict d'un Authorizer pour une requête.
type Decision struct {
	Allowed bool
	Reason  string
	Subject string
}

func Allow(subject string) Decision {
	return Decision{Allowed: true, Subject: subject}
}

func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Authorizer décide si une requête peut atteindre une route protégée.
type Authorizer interface {
	Authorize(c *gin.Context) Decision
}

// AuthorizerFunc adapte une fonction à l'interface Authorizer.
type AuthorizerFunc func(c *gin.Context) Decision

func (f AuthorizerFunc) Authorize(c *gin.Context) Decision {
	return f(c)
}

// PassThrough laisse passer toutes les requêtes.
type PassThrough struct{}

func (PassThrough) Authorize(*gin.Context) Decision {
	return Allow("")
}

// Authorize applique l'Authorizer : 401 avec une enveloppe "fail" en cas de refus.
func Authorize(a Authorizer, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := a.Authorize(c)
		if !d.Allowed {
			log.Warn("🚫 Accès refusé",
				zap.String("path", c.FullPath()),
				zap.String("reason", d.Reason),
			)
			utils.Fail(c, http.StatusUnauthorized, d.Reason)
			return
		}

		if d.Subject != "" {
			c.Set(SubjectKey, d.Subject)
		}
		c.Next()
	}
}

// NewAuthorizer choisit l'implémentation selon AUTH_MODE.
func NewAuthorizer(cfg config.Config) (Authorizer, error) {
	switch cfg.AuthMode {
	case "", config.AuthModePassThrough:
		return PassThrough{}, nil
	case config.AuthModeJWT:
		if cfg.JWTSecret == "" {
			return nil, fmt.Errorf("AUTH_MODE=%s exige JWT_SECRET", cfg.AuthMode)
		}
		return NewBearerJWT([]byte(cfg.JWTSecret)), nil
	default:
		return nil, fmt.Errorf("AUTH_MODE inconnu: %q", cfg.AuthMode)
	}
}
