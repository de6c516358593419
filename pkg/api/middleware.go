package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// requestLogger logs one line per request with method, path, status, and
// latency. SSE streams are skipped; they stay open for minutes and log on
// their own.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isStreamPath(c.FullPath()) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client", c.ClientIP())
	}
}

// recovery converts panics into internal-error problems instead of killing
// the connection.
func recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Handler panic",
					"path", c.Request.URL.Path,
					"panic", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, Problem{
					Type:   problemInternal,
					Title:  "Internal server error",
					Status: http.StatusInternalServerError,
					Detail: "an unexpected error occurred",
				})
			}
		}()
		c.Next()
	}
}

// corsHeaders allows the local editor extension to call the API from its
// webview origin.
func corsHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Last-Event-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

func isStreamPath(fullPath string) bool {
	return fullPath == "/api/developer/stories/:id/stream"
}
