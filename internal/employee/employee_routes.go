package employee

import (
	"github.com/cg-tech-git/pmo-v2/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	guards ...gin.HandlerFunc,
) {
	employees := r.Group("/employees")
	employees.Use(guards...)
	{
		employees.GET("",
			middleware.RateLimitByUser(5, 20),
			handler.Search,
		)
	}
}
