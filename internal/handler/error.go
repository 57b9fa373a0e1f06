package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hazelbrook/saffron/internal/domain"
	"github.com/hazelbrook/saffron/internal/middleware"
)

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.EFORBIDDEN:
		return http.StatusForbidden
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	case domain.ERATELIMIT:
		return http.StatusTooManyRequests
	case domain.ENOTIMPL:
		return http.StatusNotImplemented
	case domain.EINTERNAL:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// ErrorResponse writes an error to the client in the format they accept.
// Internal error details are logged but never sent to the client.
func ErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	status := ErrorCodeToHTTPStatus(code)
	message := domain.ErrorMessage(err)

	if code == domain.EINTERNAL {
		middleware.GetLogger(r.Context()).Error("internal error",
			"op", domain.ErrorOp(err),
			"error", err,
			"path", r.URL.Path,
		)
	}

	if acceptsJSON(r) {
		writeJSONError(w, status, errorBody{Code: code, Message: message})
		return
	}

	http.Error(w, message, status)
}

// ValidationErrorResponse writes a field-level validation error. Falls back
// to ErrorResponse for errors without field details.
func ValidationErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if !domain.IsValidationError(err) {
		ErrorResponse(w, r, err)
		return
	}

	body := errorBody{
		Code:    domain.EINVALID,
		Message: domain.ErrorMessage(err),
		Fields:  domain.GetValidationFields(err),
	}

	if acceptsJSON(r) {
		writeJSONError(w, http.StatusBadRequest, body)
		return
	}

	http.Error(w, body.Message, http.StatusBadRequest)
}

// NotFoundResponse writes a standard 404 response.
func NotFoundResponse(w http.ResponseWriter, r *http.Request) {
	ErrorResponse(w, r, domain.Errorf(domain.ENOTFOUND, "", "The requested resource was not found."))
}

// UnauthorizedResponse writes a standard 401 response.
func UnauthorizedResponse(w http.ResponseWriter, r *http.Request) {
	ErrorResponse(w, r, domain.Errorf(domain.EUNAUTHORIZED, "", "Authentication required."))
}

// ForbiddenResponse writes a standard 403 response.
func ForbiddenResponse(w http.ResponseWriter, r *http.Request) {
	ErrorResponse(w, r, domain.Errorf(domain.EFORBIDDEN, "", "You do not have permission to access this resource."))
}

// InternalErrorResponse writes a standard 500 response.
func InternalErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	ErrorResponse(w, r, domain.Internal(err, "", "internal error"))
}

func writeJSONError(w http.ResponseWriter, status int, body errorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorEnvelope{Error: body}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// acceptsJSON reports whether the client wants a JSON response.
func acceptsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return true
	}
	return strings.HasSuffix(r.URL.Path, ".json")
}
