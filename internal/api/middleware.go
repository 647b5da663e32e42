package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Innocent9712/much-to-do/calendar/internal/calendar"
)

// CORS header values sent on every response.
const (
	AllowOrigin  = "*"
	AllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	AllowHeaders = "Content-Type"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

const (
	ctxKeyRequestID = "request_id"

	maxRequestIDLen = 128
)

// cors stamps the fixed CORS headers and answers every OPTIONS request with 204.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", AllowOrigin)
		h.Set("Access-Control-Allow-Methods", AllowMethods)
		h.Set("Access-Control-Allow-Headers", AllowHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// requestID reuses an incoming X-Request-ID or generates a UUID, and echoes it.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func accessLog(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"request_id": c.GetString(ctxKeyRequestID),
			"method":     c.Request.Method,
			"path":       path,
			"status":     status,
			"latency":    time.Since(start),
			"client_ip":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("error", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request")
		}
	}
}

// bodyLimit rejects bodies over n bytes. A declared Content-Length is
// rejected up front; otherwise reads past n fail with *http.MaxBytesError.
func bodyLimit(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if n <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}
		if c.Request.ContentLength > n {
			c.String(http.StatusRequestEntityTooLarge, http.StatusText(http.StatusRequestEntityTooLarge))
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}

// recovery turns a handler panic into a 500 carrying the panic description.
func (h *Handler) recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		h.log.WithFields(logrus.Fields{
			"request_id": c.GetString(ctxKeyRequestID),
			"panic":      rec,
		}).Error("recovered from panic")

		h.fail(c, fmt.Errorf("%w: %v", calendar.ErrInternal, rec))
		c.Abort()
	})
}
