package devserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func doJSON(t *testing.T, s *Server, path, body string) (int, map[string]string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	var decoded map[string]string
	_ = json.NewDecoder(res.Body).Decode(&decoded)
	return res.StatusCode, decoded
}

func TestServer_ShortenID(t *testing.T) {
	s := New("http://localhost:3000/", zaptest.NewLogger(t))

	status, body := doJSON(t, s, RouteShortenID, `{"originalURL":"https://example.com"}`)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, body["id"])

	// same long URL, same id
	status, again := doJSON(t, s, RouteShortenID, `{"originalURL":"https://example.com"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, body["id"], again["id"])

	_, other := doJSON(t, s, RouteShortenID, `{"originalURL":"https://example.org"}`)
	assert.NotEqual(t, body["id"], other["id"])
	assert.Equal(t, 2, s.store.len())
}

func TestServer_ShortenFull(t *testing.T) {
	s := New("https://short.ly", zaptest.NewLogger(t))

	status, body := doJSON(t, s, RouteShortenFull, `{"longUrl":"https://example.com"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, strings.HasPrefix(body["shortUrl"], "https://short.ly/"), body["shortUrl"])
}

func TestServer_Errors(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		body      string
		errorKey  string
		wantError string
	}{
		{name: "id contract empty url", path: RouteShortenID, body: `{"originalURL":""}`, errorKey: "message", wantError: "originalURL is required"},
		{name: "id contract wrong field", path: RouteShortenID, body: `{"longUrl":"https://example.com"}`, errorKey: "message", wantError: "originalURL is required"},
		{name: "id contract bad json", path: RouteShortenID, body: `{`, errorKey: "message", wantError: "Request body must be a JSON object"},
		{name: "id contract invalid url", path: RouteShortenID, body: `{"originalURL":"not a url"}`, errorKey: "message", wantError: "Invalid URL"},
		{name: "full contract empty url", path: RouteShortenFull, body: `{"longUrl":"  "}`, errorKey: "error", wantError: "longUrl is required"},
		{name: "full contract invalid url", path: RouteShortenFull, body: `{"longUrl":"ftp://example.com"}`, errorKey: "error", wantError: "Invalid URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("http://localhost:3000", zaptest.NewLogger(t))

			status, body := doJSON(t, s, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.wantError, body[tt.errorKey])
			assert.Equal(t, 0, s.store.len())
		})
	}
}

func TestServer_RequiresJSONContentType(t *testing.T) {
	s := New("http://localhost:3000", zaptest.NewLogger(t))

	req := httptest.NewRequest(http.MethodPost, RouteShortenID, strings.NewReader(`{"originalURL":"https://example.com"}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_Ping(t *testing.T) {
	s := New("http://localhost:3000", nil)

	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, RoutePing, nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_NoRedirects(t *testing.T) {
	s := New("http://localhost:3000", nil)
	_, body := doJSON(t, s, RouteShortenID, `{"originalURL":"https://example.com"}`)

	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/"+body["id"], nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStore_IDGenerationError(t *testing.T) {
	st := newStore()
	st.newID = func() (string, error) { return "", errors.New("entropy exhausted") }

	_, err := st.idFor("https://example.com")
	assert.Error(t, err)
	assert.Equal(t, 0, st.len())
}

func TestStore_RetriesOnCollision(t *testing.T) {
	st := newStore()
	ids := []string{"same", "same", "other"}
	st.newID = func() (string, error) {
		id := ids[0]
		ids = ids[1:]
		return id, nil
	}

	first, err := st.idFor("https://example.com")
	require.NoError(t, err)
	second, err := st.idFor("https://example.org")
	require.NoError(t, err)

	assert.Equal(t, "same", first)
	assert.Equal(t, "other", second)
}
