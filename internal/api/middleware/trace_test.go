package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/anime-api/internal/api/shared"
	"github.com/phrazzld/anime-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	base, buf := logger.NewTestLogger(t)

	var traceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
	})

	rr := httptest.NewRecorder()
	TraceMiddleware(base)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/animes", nil))

	assert.Len(t, traceID, 32)
	assert.Equal(t, traceID, rr.Header().Get(TraceIDHeader))
	logger.AssertLogField(t, buf, "trace_id", traceID)
}
