package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finboard/backend/internal/interfaces/http/dto"
)

const bodyTooLargeMessage = "Request body exceeds maximum allowed size"

// BodyLimit returns a middleware that limits request body size
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(
				dto.ErrCodeTooLarge,
				bodyTooLargeMessage,
				GetRequestID(c),
			))
			return
		}

		// Chunked bodies have no Content-Length; cap them while they stream
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
