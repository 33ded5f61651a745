package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDKey = "request_id"

// RequestID attaches a UUIDv7 identifier to each request. Time-ordered IDs
// keep log lines for one request trivially groupable and sortable.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.Must(uuid.NewV7()).String()
		c.Set(requestIDKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// RequestIDFromContext extracts the request ID set by RequestID.
// Returns empty string if not found.
func RequestIDFromContext(c *gin.Context) string {
	if id, ok := c.Get(requestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// BodyLimit caps request body size. Oversized bodies surface as a JSON
// binding error (400) in the handler rather than being read to completion.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// AccessLog logs one line per request. Request bodies are never logged;
// moderated text may contain anything.
func AccessLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", RequestIDFromContext(c)).
			Msg("request handled")
	}
}

// Healthz reports liveness. Registered outside the authenticated group so
// orchestrators can probe without credentials.
func Healthz(c *gin.Context) {
	respondOK(c, "ok", nil)
}
