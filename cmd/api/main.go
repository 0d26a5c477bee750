package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/config"
	dbpkg "github.com/MediLinkServices01/telehealth-scheduler/internal/db"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/logger"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
