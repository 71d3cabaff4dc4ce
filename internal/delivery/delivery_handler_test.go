package delivery_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cg-tech-git/pmo-v2/internal/delivery"
	deliveryMock "github.com/cg-tech-git/pmo-v2/internal/delivery/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc delivery.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/reports/history/:id/email", delivery.NewHandler(svc).SendEmail)
	return r
}

func TestDeliveryHandler_SendEmail(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		svc := deliveryMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().RequestEmail(gomock.Any(), "h-1", delivery.SendReportEmailRequest{
			Recipients: []string{"a@allaith.com"},
		}).Return(delivery.SendReportEmailResponse{HistoryID: "h-1", Queued: true}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reports/history/h-1/email", bytes.NewBufferString(`{"recipients":["a@allaith.com"]}`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), `"queued":true`)
	})

	t.Run("invalid recipient", func(t *testing.T) {
		svc := deliveryMock.NewMockService(gomock.NewController(t))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reports/history/h-1/email", bytes.NewBufferString(`{"recipients":["not-an-email"]}`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("no recipients", func(t *testing.T) {
		svc := deliveryMock.NewMockService(gomock.NewController(t))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reports/history/h-1/email", bytes.NewBufferString(`{"recipients":[]}`))
		req.Header.Set("Content-Type", "application/json")
		setupRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
