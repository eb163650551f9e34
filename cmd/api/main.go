package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/logging"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
)

func main() {

	cfg := config.Load()

	logger := logging.Setup(cfg.IsProduction())
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)
	rdb := cache.NewClient(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	zap.L().Info("server running",
		zap.String("addr", cfg.Addr()),
		zap.String("env", cfg.Env),
		zap.String("timezone", cfg.ShopTimezone),
	)

	if err := r.Run(cfg.Addr()); err != nil {
		zap.L().Fatal("failed to start server", zap.Error(err))
	}
}
