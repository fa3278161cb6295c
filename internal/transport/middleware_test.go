package transport

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard/pipeline", nil)
	req.Header.Set("Mcp-Session-Id", "sess1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	require.Contains(t, line, "path=/dashboard/pipeline")
	require.Contains(t, line, "status=418")
	require.Contains(t, line, "session_id=sess1")
}
