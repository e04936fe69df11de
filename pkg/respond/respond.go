// Package respond serializes every handler result into the uniform response
// envelope used across the whole API
package respond

import (
	"bitwise74/streamhub-api/internal/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

func JSON(c *gin.Context, status int, data any, message string) {
	if data == nil {
		data = gin.H{}
	}

	c.JSON(status, Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	})
}

// Error converts err through the taxonomy and writes the error envelope.
// Internal and upstream failures get logged with the request ID, everything
// else is the caller's fault and only logged at debug level.
func Error(c *gin.Context, err error) {
	e := apperr.From(err)
	requestID := c.GetString("requestID")

	switch e.Kind {
	case apperr.Internal, apperr.UpstreamFailure:
		zap.L().Error("Request failed",
			zap.String("kind", e.Kind.String()),
			zap.String("requestID", requestID),
			zap.Error(e),
		)
	default:
		zap.L().Debug("Request rejected",
			zap.String("kind", e.Kind.String()),
			zap.String("requestID", requestID),
			zap.String("reason", e.Message),
		)
	}

	c.JSON(e.Kind.Status(), Envelope{
		StatusCode: e.Kind.Status(),
		Data:       gin.H{},
		Message:    e.Message,
		Success:    false,
	})
}

// AbortError is Error for middleware, stopping the handler chain.
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
