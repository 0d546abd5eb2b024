package utils

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSlogLogger_LogRequestLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	logger.LogRequest("GET", "/api/questions", 200, "1ms")
	assert.Contains(t, buf.String(), "level=INFO")

	buf.Reset()
	logger.LogRequest("POST", "/api/users", 409, "1ms")
	assert.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	logger.LogRequest("GET", "/api/admin/stats", 500, "1ms")
	assert.Contains(t, buf.String(), "level=ERROR")

	buf.Reset()
	logger.With("component", "test").LogError(errors.New("boom"), "failed")
	assert.Contains(t, buf.String(), "component=test")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), ContextLogger(NewLogger("test")))
	router.GET("/", func(c *gin.Context) {
		assert.NotNil(t, GetLoggerFromContext(c))
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestToSlogLogger(t *testing.T) {
	assert.NotNil(t, ToSlogLogger(NewLogger("test")))
	assert.Equal(t, slog.Default(), ToSlogLogger(nil))
}
