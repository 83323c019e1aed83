package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CORS n'accepte que les origines de la liste. Les requêtes sans en-tête Origin
// (curl, Postman...) passent toujours ; les autres sont rejetées en 403.
// Le filtre passe avant gin-contrib/cors, qui laisse passer une Origin égale au Host.
func CORS(allowed []string, log *zap.Logger) gin.HandlerFunc {
	origins := slices.Clone(allowed)

	handler := cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return slices.Contains(origins, origin)
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && !slices.Contains(origins, origin) {
			log.Warn("⚠️ CORS blocked", zap.String("origin", origin), zap.String("path", c.Request.URL.Path))
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		handler(c)
	}
}
