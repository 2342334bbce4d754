package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/anime-api/internal/platform/logger"
	"github.com/phrazzld/anime-api/internal/redact"
)

// ExceptionDetails is the body of every error response.
type ExceptionDetails struct {
	Title            string `json:"title"`
	Status           int    `json:"status"`
	Details          string `json:"details"`
	DeveloperMessage string `json:"developerMessage"`
	// TraceID is only set on 5xx responses so operators can find the log line.
	TraceID string `json:"traceId,omitempty"`
}

// Error kinds reported in the developerMessage field.
const (
	KindNotFound      = "NotFound"
	KindValidation    = "ValidationError"
	KindUnauthorized  = "Unauthorized"
	KindForbidden     = "Forbidden"
	KindConflict      = "Conflict"
	KindRateLimited   = "RateLimited"
	KindInternalError = "InternalError"
)

// Titles used in ExceptionDetails, keyed by status code.
var statusTitles = map[int]string{
	http.StatusBadRequest:          "Bad Request Exception, Check the Documentation",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusConflict:            "Conflict",
	http.StatusTooManyRequests:     "Too Many Requests",
	http.StatusInternalServerError: "Internal Server Error",
}

// TitleForStatus returns the ExceptionDetails title for status.
func TitleForStatus(status int) string {
	if title, ok := statusTitles[status]; ok {
		return title
	}
	return http.StatusText(status)
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

type responseOptions struct {
	elevateLogLevel bool
}

// WithElevatedLogLevel returns a ResponseOption that raises 4xx errors to WARN level
// instead of the default DEBUG level.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes an ExceptionDetails body.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, details, developerMessage string) {
	RespondWithErrorAndLog(w, r, status, details, developerMessage, nil)
}

// RespondWithErrorAndLog writes an ExceptionDetails body and logs the redacted
// underlying error.
//
// Log level strategy:
// - 5xx errors: ERROR
// - 429 Too Many Requests: WARN
// - other 4xx: DEBUG, or WARN with WithElevatedLogLevel
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	details string,
	developerMessage string,
	err error,
	opts ...ResponseOption,
) {
	traceID := GetTraceID(r.Context())

	body := ExceptionDetails{
		Title:            TitleForStatus(status),
		Status:           status,
		Details:          details,
		DeveloperMessage: developerMessage,
	}
	if status >= http.StatusInternalServerError {
		body.TraceID = traceID
	}

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("details", details),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	logLevel := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case status == http.StatusTooManyRequests:
		logLevel = slog.LevelWarn
	case responseOpts.elevateLogLevel && status >= http.StatusBadRequest:
		logLevel = slog.LevelWarn
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, body)
}
