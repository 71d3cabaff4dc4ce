package middleware

import (
	"github.com/cg-tech-git/pmo-v2/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a logger tagged with the request id and the
// signed-in user. It runs after RequestID and AuthMiddleware.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		md := contextutil.ExtractMetadata(c.Request.Context())

		reqLogger := logger.With(
			zap.String("request_id", md.RequestID),
			zap.String("user_email", md.UserEmail),
		)

		c.Request = c.Request.WithContext(contextutil.WithLogger(c.Request.Context(), reqLogger))
		c.Next()
	}
}
