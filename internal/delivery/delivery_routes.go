package delivery

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
		reports.POST("/:id/email", middleware.RateLimitByUser(0.2, 3), handler.SendEmail)
	}
}
