package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cg-tech-git/pmo-v2/internal/shared/apperror"
	"github.com/cg-tech-git/pmo-v2/internal/shared/contextutil"
	"github.com/cg-tech-git/pmo-v2/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMissing = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired = apperror.New(apperror.CodeUnauthorized, "Token has expired", http.StatusUnauthorized)
	ErrDomainDenied = apperror.New(apperror.CodeDomainNotAllowed, "E-mail domain is not allowed", http.StatusForbidden)
)

type AuthConfig struct {
	Secret []byte
	// AllowedDomains restricts sign-in to these e-mail domains. Empty allows any.
	AllowedDomains []string
}

// AuthMiddleware verifies the identity provider's HS256 token and exposes
// the signed-in user's e-mail and name to handlers and services.
func AuthMiddleware(cfg AuthConfig) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.AllowedDomains))
	for _, d := range cfg.AllowedDomains {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			allowed[d] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			abortWith(c, ErrTokenMissing)
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return cfg.Secret, nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, ErrTokenExpired)
				return
			}
			abortWith(c, ErrInvalidToken)
			return
		}

		email, _ := claims["email"].(string)
		email = strings.ToLower(strings.TrimSpace(email))
		at := strings.LastIndex(email, "@")
		if at <= 0 || at == len(email)-1 {
			abortWith(c, ErrInvalidToken)
			return
		}
		if len(allowed) > 0 {
			if _, ok := allowed[email[at+1:]]; !ok {
				abortWith(c, ErrDomainDenied)
				return
			}
		}
		name, _ := claims["name"].(string)

		c.Set("user_email", email)
		c.Set("user_name", name)

		ctx := contextutil.WithUserEmail(c.Request.Context(), email)
		ctx = contextutil.WithUserName(ctx, name)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}
