package routes

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"shopcart_back_end/internal/config"
	"shopcart_back_end/internal/handlers/cart"
	"shopcart_back_end/internal/handlers/product"
	"shopcart_back_end/internal/handlers/user"
	"shopcart_back_end/internal/middleware"
)

const homeBanner = "首頁 - 查看 API 文檔請前往 <a href='/api-docs'>/api-docs</a>"

// Deps regroupe ce dont le moteur HTTP a besoin au démarrage.
type Deps struct {
	Config     config.Config
	Logger     *zap.Logger
	Authorizer middleware.Authorizer
	Registry   *prometheus.Registry
}

// NewEngine assemble le moteur gin : middlewares globaux, routeurs, docs et métriques.
func NewEngine(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Authorizer == nil {
		d.Authorizer = middleware.PassThrough{}
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
		d.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(d.Logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(d.Logger, true))
	r.Use(middleware.NewMetrics(d.Registry).Middleware())
	r.Use(middleware.CORS(d.Config.AllowedOrigins, d.Logger))

	r.GET("/", Home)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	RegisterDocs(r)
	RegisterRoutes(r, middleware.Authorize(d.Authorizer, d.Logger))

	return r
}

// RegisterRoutes monte les trois routeurs de l'API. authz protège les routes de session.
// Les racines de collection répondent aussi avec un slash final, sans redirection.
func RegisterRoutes(r *gin.Engine, authz gin.HandlerFunc) {
	// Users
	users := r.Group("/api/users")
	{
		users.GET("", user.GetUsers)
		users.GET("/", user.GetUsers)
		users.GET("/search", user.SearchUsers)
		users.GET("/:id", user.GetUser)
		users.POST("", user.CreateUser)
		users.POST("/", user.CreateUser)
		users.PUT("/:id", user.UpdateUser)
		users.DELETE("/:id", user.DeleteUser)
		users.POST("/login", user.Login)
		users.POST("/logout", authz, user.Logout)
		users.POST("/status", authz, user.Status)
	}

	// Products
	pts := r.Group("/api/pts")
	{
		pts.GET("", product.GetAllProducts)
		pts.GET("/", product.GetAllProducts)
		pts.GET("/search", product.SearchProducts)
		pts.GET("/:id", product.GetProduct)
		pts.POST("", product.CreateProduct)
		pts.POST("/", product.CreateProduct)
		pts.PUT("/:id", product.UpdateProduct)
		pts.DELETE("/:id", product.DeleteProduct)
		pts.POST("/login", product.Login)
		pts.POST("/logout", authz, product.Logout)
		pts.POST("/status", authz, product.Status)
	}

	// Cart
	cartGroup := r.Group("/api/cart")
	{
		cartGroup.GET("", cart.GetCart)
		cartGroup.GET("/", cart.GetCart)
		cartGroup.POST("", cart.AddToCart)
		cartGroup.POST("/", cart.AddToCart)
		cartGroup.PUT("/:id", cart.UpdateCartItem)
		cartGroup.DELETE("/clear", cart.ClearCart)
		cartGroup.DELETE("/:id", cart.RemoveFromCart)
	}
}

func Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homeBanner))
}
