package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListMeta struct {
	Total int `json:"total"`
	Limit int `json:"limit,omitempty"`
}

func NewListMeta(total, limit int) ListMeta {
	return ListMeta{Total: total, Limit: limit}
}

type ApiEnvelope struct {
	Ok    bool      `json:"ok"`
	Data  any       `json:"data,omitempty"`
	Meta  *ListMeta `json:"meta,omitempty"`
	Error any       `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *ListMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
		Meta: meta,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// Partial reports a mixed outcome: data holds what succeeded, the error block what did not.
func Partial(c *gin.Context, data interface{}, errorCode string, message string, details interface{}) {
	c.JSON(http.StatusMultiStatus, ApiEnvelope{
		Ok:   false,
		Data: data,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// Attachment streams a binary artifact as a download.
func Attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}
