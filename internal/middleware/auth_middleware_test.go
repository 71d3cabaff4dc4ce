package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cg-tech-git/pmo-v2/internal/middleware"
	"github.com/cg-tech-git/pmo-v2/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return s
}

func newAuthRouter(domains ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(middleware.AuthConfig{Secret: testSecret, AllowedDomains: domains}))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email":     c.GetString("user_email"),
			"name":      c.GetString("user_name"),
			"ctx_email": contextutil.GetUserEmail(c.Request.Context()),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid := jwt.MapClaims{
		"email": "Jane.Doe@AlLaith.com",
		"name":  "Jane Doe",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name       string
		domains    []string
		setup      func(t *testing.T, req *http.Request)
		wantStatus int
		wantBody   string
	}{
		{
			name: "bearer token",
			setup: func(t *testing.T, req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+signToken(t, valid, testSecret))
			},
			wantStatus: http.StatusOK,
			wantBody:   `"ctx_email":"jane.doe@allaith.com"`,
		},
		{
			name:    "cookie token within allowed domain",
			domains: []string{"allaith.com"},
			setup: func(t *testing.T, req *http.Request) {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, valid, testSecret)})
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Jane Doe"`,
		},
		{
			name:       "missing token",
			setup:      func(t *testing.T, req *http.Request) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token not found",
		},
		{
			name: "wrong secret",
			setup: func(t *testing.T, req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+signToken(t, valid, []byte("other")))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid token",
		},
		{
			name: "expired",
			setup: func(t *testing.T, req *http.Request) {
				claims := jwt.MapClaims{"email": "jane@allaith.com", "exp": time.Now().Add(-time.Minute).Unix()}
				req.Header.Set("Authorization", "Bearer "+signToken(t, claims, testSecret))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token has expired",
		},
		{
			name: "no email claim",
			setup: func(t *testing.T, req *http.Request) {
				claims := jwt.MapClaims{"sub": "42", "exp": time.Now().Add(time.Hour).Unix()}
				req.Header.Set("Authorization", "Bearer "+signToken(t, claims, testSecret))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid token",
		},
		{
			name:    "domain not allowed",
			domains: []string{"allaith.com"},
			setup: func(t *testing.T, req *http.Request) {
				claims := jwt.MapClaims{"email": "x@gmail.com", "exp": time.Now().Add(time.Hour).Unix()}
				req.Header.Set("Authorization", "Bearer "+signToken(t, claims, testSecret))
			},
			wantStatus: http.StatusForbidden,
			wantBody:   "DOMAIN_NOT_ALLOWED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(tt.domains...)
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.setup(t, req)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
