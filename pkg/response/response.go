package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

// MessageBody is returned by operations that have nothing but a confirmation to report.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes data as-is; resources are not wrapped in an envelope.
func JSON[T any](ctx *gin.Context, status int, data T) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, data)
}

func Message(ctx *gin.Context, status int, message string) {
	JSON(ctx, status, MessageBody{Message: message})
}

// Error aborts the chain and writes an ErrorBody.
func Error(ctx *gin.Context, status int, message string, details interface{}) ErrorBody {
	if status == 0 {
		status = http.StatusBadRequest
	}
	body := ErrorBody{
		Message:   message,
		RequestID: ctx.GetString("request_id"),
		Details:   details,
	}
	ctx.AbortWithStatusJSON(status, body)
	return body
}
