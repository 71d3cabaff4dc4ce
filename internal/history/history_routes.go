package history

import (
	"github.com/cg-tech-git/pmo-v2/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	guards ...gin.HandlerFunc,
) {
	reports := r.Group("/reports/history")
	reports.Use(guards...)
	{
		reports.GET("", middleware.RateLimitByUser(3, 10), handler.List)
		reports.DELETE("/:id", middleware.RateLimitByUser(0.5, 2), handler.Delete)
	}
}
