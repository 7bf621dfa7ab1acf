//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/php-ini/thamaneya/internal/adapter/postgres/testhelper"
	"github.com/php-ini/thamaneya/internal/app"
	"github.com/php-ini/thamaneya/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: "http://localhost:3000",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
			MaxAge:         600,
		},
		Search: config.SearchConfig{TextSearchConfig: "english"},
	}
}

// setupTestServer bootstraps the full application stack on its own database,
// so every test sees an empty catalog.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return setupTestServerWithConfig(t, testConfig())
}

func setupTestServerWithConfig(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	pool := testhelper.SetupIsolatedDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	handler, stop := app.NewHandler(cfg, pool, logger)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		stop()
	})

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// do sends a request with an optional JSON body and returns the response with
// its body fully read.
func (ts *testServer) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			r = bytes.NewReader(raw)
		}
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// getJSON performs a GET and decodes the body into dst, asserting the status.
func (ts *testServer) getJSON(t *testing.T, path string, wantStatus int, dst any) {
	t.Helper()

	resp, raw := ts.do(t, http.MethodGet, path, nil)
	require.Equal(t, wantStatus, resp.StatusCode, string(raw))
	if dst != nil {
		require.NoError(t, json.Unmarshal(raw, dst), string(raw))
	}
}

// showJSON mirrors the API's show representation.
type showJSON struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Language    *string `json:"language"`
	Duration    *int    `json:"duration"`
	PublishDate *string `json:"publishDate"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type pageJSON struct {
	Data       []showJSON `json:"data"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
}

type errorJSON struct {
	Error  string `json:"error"`
	Fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}

func (e errorJSON) fieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return names
}

// createShow posts body to /cms/shows and returns the created show.
func (ts *testServer) createShow(t *testing.T, body map[string]any) showJSON {
	t.Helper()

	resp, raw := ts.do(t, http.MethodPost, "/cms/shows", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var show showJSON
	require.NoError(t, json.Unmarshal(raw, &show))
	return show
}

func titles(shows []showJSON) []string {
	out := make([]string, len(shows))
	for i, s := range shows {
		out[i] = s.Title
	}
	return out
}
