package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestResponseWriter_RecordsStatusAndSize verifies that status and body size
// are captured for the wrapped writer.
func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusTeapot)
	_, err := w.Write([]byte("short and stout"))
	assert.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, len("short and stout"), w.size)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

// TestResponseWriter_WriteHeaderOnlyOnce verifies that a second WriteHeader
// call is ignored.
func TestResponseWriter_WriteHeaderOnlyOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

// TestResponseWriter_ImplicitOKOnWrite verifies that Write without a prior
// WriteHeader records 200.
func TestResponseWriter_ImplicitOKOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("ok"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.status)
}
