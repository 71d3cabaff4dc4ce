package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cg-tech-git/pmo-v2/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

const (
	idempCacheKey = "idemp:/reports/generate:jane@allaith.com:key-1"
	idempLockKey  = idempCacheKey + ":lock"
)

type reachedHandler struct {
	called  bool
	lockKey string
}

func newIdempotencyRouter(t *testing.T) (*gin.Engine, redismock.ClientMock, *reachedHandler) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rdb, mock := redismock.NewClientMock()

	h := &reachedHandler{}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_email", "jane@allaith.com")
		c.Next()
	})
	r.POST("/reports/generate", middleware.Idempotency(rdb), func(c *gin.Context) {
		h.called = true
		h.lockKey = c.GetString("idempotency_lock_key")
		c.Status(http.StatusCreated)
	})
	return r, mock, h
}

func postGenerate(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/reports/generate", nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	t.Run("no key passes through", func(t *testing.T) {
		r, mock, h := newIdempotencyRouter(t)

		w := postGenerate(r, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, h.called)
		assert.Empty(t, h.lockKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request takes the lock", func(t *testing.T) {
		r, mock, h := newIdempotencyRouter(t)
		mock.ExpectGet(idempCacheKey).RedisNil()
		mock.ExpectSetNX(idempLockKey, "locked", 2*time.Minute).SetVal(true)

		w := postGenerate(r, "key-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, h.called)
		assert.Equal(t, idempLockKey, h.lockKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replays cached response", func(t *testing.T) {
		r, mock, h := newIdempotencyRouter(t)
		mock.ExpectGet(idempCacheKey).SetVal(`{"customerName":"Acme"}`)

		w := postGenerate(r, "key-1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replay"))
		assert.Contains(t, w.Body.String(), `"customerName":"Acme"`)
		assert.False(t, h.called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate in flight", func(t *testing.T) {
		r, mock, h := newIdempotencyRouter(t)
		mock.ExpectGet(idempCacheKey).RedisNil()
		mock.ExpectSetNX(idempLockKey, "locked", 2*time.Minute).SetVal(false)

		w := postGenerate(r, "key-1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.False(t, h.called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
