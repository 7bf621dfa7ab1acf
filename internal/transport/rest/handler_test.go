package rest

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

//go:generate moq -out show_service_mock_test.go -pkg rest . showService

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestMux mounts every show route on a fresh mux, as the server does.
func newTestMux(svc showService) *http.ServeMux {
	mux := http.NewServeMux()
	NewCMSHandler(svc, discardLogger()).Register(mux)
	NewDiscoveryHandler(svc, discardLogger()).Register(mux)
	return mux
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
