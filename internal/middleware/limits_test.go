package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MaxBodySize(t *testing.T) {
	h := MaxBodySize(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ok := httptest.NewRecorder()
	h.ServeHTTP(ok, httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader("small")))
	require.Equal(t, http.StatusOK, ok.Code)

	tooBig := httptest.NewRecorder()
	h.ServeHTTP(tooBig, httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(strings.Repeat("x", 64))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, tooBig.Code)
}

func Test_MaxBodySize_EnforcedWithoutContentLength(t *testing.T) {
	// Body reads must fail past the limit even when Content-Length is
	// absent or understated.
	var readErr error
	h := MaxBodySize(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, readErr = r.Body.Read(buf)
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(strings.Repeat("x", 64)))
	r.ContentLength = -1
	h.ServeHTTP(httptest.NewRecorder(), r)

	var maxErr *http.MaxBytesError
	require.ErrorAs(t, readErr, &maxErr)
	assert.Equal(t, int64(16), maxErr.Limit)
}
