package app

import (
	"os"

	"go-japastel-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	// 1. Setup Infrastructure
	redisClient, err := connectRedisWithRetry(getenv("REDIS_ADDR", "localhost:6379"), 5, logger)
	if err != nil {
		return err
	}

	// 2. Ambient middleware
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.SessionMiddleware())
	router.Use(middleware.LoggerMiddleware(logger))
	router.Use(middleware.MetricsMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 3. Register Modules & Routes
	return registerModules(router, redisClient, logger)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
