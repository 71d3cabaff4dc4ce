package app

import (
	"github.com/cg-tech-git/pmo-v2/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, cfg Config) error {
	logger := zap.L().Named("app.api")
	if err := cfg.requireAPI(); err != nil {
		return err
	}

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, 5, logger)
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5, logger)
	if err != nil {
		return err
	}

	// 2. Register Modules & Routes
	return registerModules(router, cfg, gormDB, redisClient, zap.L())
}
