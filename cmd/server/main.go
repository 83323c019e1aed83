package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopcart_back_end/internal/config"
	"shopcart_back_end/internal/database"
	"shopcart_back_end/internal/logger"
	"shopcart_back_end/internal/middleware"
	"shopcart_back_end/internal/routes"
)

// @title                       購物車 RESTful API
// @version                     1.0.0
// @description                 一個完整的購物車系統 API，包含使用者管理、產品管理和購物車功能
// @contact.name                API 支援
// @contact.email               support@example.com
// @license.name                MIT
// @license.url                 https://opensource.org/licenses/MIT
// @host                        localhost:3005
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 請在 Authorization header 中使用 Bearer token，格式："Bearer {token}"
func main() {
	cfg := config.Load()

	log, flush := logger.New(cfg.IsProduction())
	defer func() { _ = flush() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("❌ Impossible d'initialiser la base de données", zap.Error(err))
	}
	defer database.Close(pool, log)

	authz, err := middleware.NewAuthorizer(cfg)
	if err != nil {
		log.Fatal("❌ Configuration d'autorisation invalide", zap.Error(err))
	}
	log.Info("✅ Autorisation configurée", zap.String("mode", cfg.AuthMode))

	r := routes.NewEngine(routes.Deps{
		Config:     cfg,
		Logger:     log,
		Authorizer: authz,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Info("🚀 主機啟動 http://localhost:"+cfg.Port, zap.String("docs", "http://localhost:"+cfg.Port+routes.DocsPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Serveur arrêté", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("🛑 Arrêt demandé, fermeture des connexions")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("❌ Arrêt forcé du serveur", zap.Error(err))
	}
}
