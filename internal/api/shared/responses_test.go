package shared

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rr := httptest.NewRecorder()

	RespondWithJSON(rr, req, http.StatusCreated, map[string]string{"message": "ok"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, rr.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("includes trace ID when present", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req = req.WithContext(SetTraceID(req.Context()))
		rr := httptest.NewRecorder()

		RespondWithError(rr, req, http.StatusNotFound, "Task not found")

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusNotFound, resp.Status)
		assert.Equal(t, "Task not found", resp.Message)
		assert.Len(t, resp.TraceID, 2*TraceIDLength)
	})

	t.Run("omits trace ID when absent", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		rr := httptest.NewRecorder()

		RespondWithError(rr, req, http.StatusBadRequest, "Invalid request format")

		var raw map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
		assert.NotContains(t, raw, "trace_id")
	})
}

func TestTraceIDContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()), "No trace ID should yield empty string")

	ctx := SetTraceID(context.Background())
	first := GetTraceID(ctx)
	assert.Len(t, first, 2*TraceIDLength)

	second := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, first, second, "Trace IDs should be unique per request")
}
