package report

import (
	"github.com/cg-tech-git/pmo-v2/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	guards ...gin.HandlerFunc,
) {
	reports := r.Group("/reports")
	reports.Use(guards...)
	{
		if rdb != nil {
			reports.POST("/generate", middleware.RateLimitByUser(0.2, 3), middleware.Idempotency(rdb), handler.Generate)
		} else {
			reports.POST("/generate", middleware.RateLimitByUser(0.2, 3), handler.Generate)
		}
		reports.GET("/history/:id/download", middleware.RateLimitByUser(0.5, 3), handler.Download)
	}
}
