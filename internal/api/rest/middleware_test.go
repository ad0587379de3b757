package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nemanja-m/goscatter/internal/shared/logging"
)

func TestWithRecovery_PanicBecomesJSONError(t *testing.T) {
	api := NewAPI(nil, logging.NewNop())
	panicky := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	api.withRecovery(panicky).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "internal server error", resp.Error)
	require.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestWithAccessLog_TagsAndLogsRequest(t *testing.T) {
	var buf bytes.Buffer
	api := NewAPI(nil, logging.NewWithWriter(&buf, "info", "json"))

	handler := api.withAccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/runs/unknown", nil))

	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "HTTP request", line["msg"])
	require.Equal(t, "/api/runs/unknown", line["path"])
	require.Equal(t, float64(http.StatusNotFound), line["status"])
}

func TestWithAccessLog_SeesRecoveredStatus(t *testing.T) {
	var buf bytes.Buffer
	api := NewAPI(nil, logging.NewWithWriter(&buf, "error", "json"))

	panicky := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})

	// Same nesting as NewServer: the access log wraps recovery, so the
	// recovered 500 is what gets recorded.
	handler := api.withAccessLog(api.withRecovery(panicky))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/runs", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, buf.String(), "Panic in handler")
}

func TestStatusRecorder_DefaultsToOK(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := &statusRecorder{ResponseWriter: rec}

	n, err := wrapped.Write([]byte("short and stout"))
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, wrapped.status)
	require.Equal(t, n, wrapped.bytes)
}
