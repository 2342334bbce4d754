package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/anime-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "object",
			status:       http.StatusOK,
			data:         map[string]interface{}{"id": 1, "name": "Kingdom"},
			expectedBody: `{"id":1,"name":"Kingdom"}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithError_BadRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/animes/99", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "Anime not Found", "NotFound")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{
		"title": "Bad Request Exception, Check the Documentation",
		"status": 400,
		"details": "Anime not Found",
		"developerMessage": "NotFound"
	}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	ctx, buf := logger.NewLogCaptureContext(t)
	req := httptest.NewRequest(http.MethodGet, "/animes", nil)
	req = req.WithContext(SetTraceID(ctx))
	traceID := GetTraceID(req.Context())
	w := httptest.NewRecorder()

	err := errors.New("dial postgres://admin:hunter22@db:5432/anime: connection refused")
	RespondWithErrorAndLog(w, req, http.StatusInternalServerError,
		"An unexpected error occurred", "InternalError", err)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body ExceptionDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Title)
	assert.Equal(t, traceID, body.TraceID)
	assert.NotContains(t, w.Body.String(), "hunter22")

	logs := buf.String()
	assert.Contains(t, logs, `"level":"ERROR"`)
	assert.Contains(t, logs, traceID)
	assert.False(t, strings.Contains(logs, "hunter22"), "credentials are redacted from logs")
}

func TestRespondWithErrorAndLog_LogLevels(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		opts     []ResponseOption
		expected string
	}{
		{name: "4xx defaults to debug", status: http.StatusBadRequest, expected: `"level":"DEBUG"`},
		{name: "429 is warn", status: http.StatusTooManyRequests, expected: `"level":"WARN"`},
		{
			name:     "elevated 4xx is warn",
			status:   http.StatusUnauthorized,
			opts:     []ResponseOption{WithElevatedLogLevel()},
			expected: `"level":"WARN"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf := logger.NewLogCaptureContext(t)
			req := httptest.NewRequest(http.MethodGet, "/animes", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, req, tt.status, "details", "Kind", nil, tt.opts...)

			assert.Contains(t, buf.String(), tt.expected)
			var body ExceptionDetails
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Empty(t, body.TraceID, "4xx bodies do not carry a trace id")
		})
	}
}
