package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hazelbrook/saffron/internal/domain"
)

const maxRequestBody = 1 << 20 // 1 MB

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// DecodeJSON reads a JSON request body into dst. Returns an EINVALID domain
// error for malformed input so callers can pass it straight to ErrorResponse.
func DecodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxRequestBody)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return domain.Errorf(domain.EINVALID, "", "Request body must not be empty")
		case errors.As(err, &maxBytesErr):
			return domain.Errorf(domain.EINVALID, "", "Request body must not exceed %d bytes", maxBytesErr.Limit)
		default:
			return domain.Errorf(domain.EINVALID, "", "Request body is not valid JSON: %s", err)
		}
	}

	if dec.More() {
		return domain.Errorf(domain.EINVALID, "", "Request body must contain a single JSON object")
	}
	return nil
}

// QueryInt parses an integer query parameter with a default.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.Errorf(domain.EINVALID, "", "Query parameter %q must be an integer", name)
	}
	return n, nil
}
