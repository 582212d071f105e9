package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func traceRequest(t *testing.T, inbound string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if inbound != "" {
		req.Header.Set("X-Trace-ID", inbound)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTraceIDGenerated(t *testing.T) {
	w := traceRequest(t, "")

	header := w.Header().Get("X-Trace-ID")
	_, err := uuid.Parse(header)
	require.NoError(t, err)
	require.Equal(t, header, w.Body.String())
}

func TestTraceIDInboundKept(t *testing.T) {
	inbound := uuid.New().String()
	w := traceRequest(t, inbound)

	require.Equal(t, inbound, w.Header().Get("X-Trace-ID"))
	require.Equal(t, inbound, w.Body.String())
}

func TestTraceIDInboundGarbageReplaced(t *testing.T) {
	w := traceRequest(t, "not-a-uuid\r\ninjected")

	header := w.Header().Get("X-Trace-ID")
	_, err := uuid.Parse(header)
	require.NoError(t, err)
	require.NotContains(t, header, "injected")
}
