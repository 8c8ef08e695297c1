package middleware

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

const deviceJSON = `{"id":"0b9e6f7a-7c1e-4f8e-9a52-3f2d3c1a9b10","name":"Pixel 9","brand":"Google","state":"available"}`

func serveDevice(status int, body string) http.Handler {
	return ConditionalGET()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if status != 0 {
			w.WriteHeader(status)
		}

		_, _ = w.Write([]byte(body))
	}))
}

func TestEntityTag(t *testing.T) {
	t.Parallel()

	tag := entityTag([]byte(deviceJSON))

	require.Regexp(t, regexp.MustCompile(`^"[0-9a-f]{16}"$`), tag)
	require.Equal(t, tag, entityTag([]byte(deviceJSON)), "the tag is deterministic")
	require.NotEqual(t, tag, entityTag([]byte(`{"name":"Pixel 10"}`)))
	require.Regexp(t, regexp.MustCompile(`^"[0-9a-f]{16}"$`), entityTag(nil))
}

func TestConditionalGET(t *testing.T) {
	t.Parallel()

	tag := entityTag([]byte(deviceJSON))

	cases := []struct {
		name        string
		method      string
		status      int
		ifNoneMatch string
		wantStatus  int
		wantBody    string
		wantTag     bool
	}{
		{name: "first fetch", method: http.MethodGet, status: http.StatusOK, wantStatus: http.StatusOK, wantBody: deviceJSON, wantTag: true},
		{name: "implicit status is ok", method: http.MethodGet, wantStatus: http.StatusOK, wantBody: deviceJSON, wantTag: true},
		{name: "matching tag", method: http.MethodGet, status: http.StatusOK, ifNoneMatch: tag, wantStatus: http.StatusNotModified, wantTag: true},
		{name: "weak form matches", method: http.MethodGet, status: http.StatusOK, ifNoneMatch: "W/" + tag, wantStatus: http.StatusNotModified, wantTag: true},
		{name: "one of several", method: http.MethodGet, status: http.StatusOK, ifNoneMatch: `"stale", ` + tag, wantStatus: http.StatusNotModified, wantTag: true},
		{name: "wildcard", method: http.MethodGet, status: http.StatusOK, ifNoneMatch: "*", wantStatus: http.StatusNotModified, wantTag: true},
		{name: "stale tag", method: http.MethodGet, status: http.StatusOK, ifNoneMatch: `"0000000000000000"`, wantStatus: http.StatusOK, wantBody: deviceJSON, wantTag: true},
		{name: "head carries no body", method: http.MethodHead, status: http.StatusOK, wantStatus: http.StatusOK, wantTag: true},
		{name: "not found passes through", method: http.MethodGet, status: http.StatusNotFound, ifNoneMatch: "*", wantStatus: http.StatusNotFound, wantBody: deviceJSON},
		{name: "unavailable passes through", method: http.MethodGet, status: http.StatusServiceUnavailable, wantStatus: http.StatusServiceUnavailable, wantBody: deviceJSON},
		{name: "writes are untouched", method: http.MethodPost, status: http.StatusCreated, ifNoneMatch: tag, wantStatus: http.StatusCreated, wantBody: deviceJSON},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tc.method, "/v1/devices/0b9e6f7a-7c1e-4f8e-9a52-3f2d3c1a9b10", nil)
			if tc.ifNoneMatch != "" {
				req.Header.Set(headerIfNoneMatch, tc.ifNoneMatch)
			}

			rec := httptest.NewRecorder()
			serveDevice(tc.status, deviceJSON).ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			require.Equal(t, tc.wantBody, rec.Body.String())
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if !tc.wantTag {
				require.Empty(t, rec.Header().Get(headerETag))
				require.Empty(t, rec.Header().Get(headerCacheControl))

				return
			}

			require.Equal(t, tag, rec.Header().Get(headerETag))
			require.Equal(t, revalidate, rec.Header().Get(headerCacheControl))
		})
	}
}

func TestConditionalGET_TagFollowsRepresentation(t *testing.T) {
	t.Parallel()

	first := httptest.NewRecorder()
	serveDevice(http.StatusOK, deviceJSON).
		ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/v1/devices", nil))

	renamed := `{"id":"0b9e6f7a-7c1e-4f8e-9a52-3f2d3c1a9b10","name":"Pixel 9 Pro","brand":"Google","state":"available"}`

	req := httptest.NewRequest(http.MethodGet, "/v1/devices", nil)
	req.Header.Set(headerIfNoneMatch, first.Header().Get(headerETag))

	second := httptest.NewRecorder()
	serveDevice(http.StatusOK, renamed).ServeHTTP(second, req)

	require.Equal(t, http.StatusOK, second.Code, "an updated device must not revalidate")
	require.Equal(t, renamed, second.Body.String())
	require.NotEqual(t, first.Header().Get(headerETag), second.Header().Get(headerETag))
}

func TestQuietPaths(t *testing.T) {
	t.Parallel()

	var quiet bool

	handler := QuietPaths("/v1/liveness", "/v1/readiness/")(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		quiet = isQuiet(r.Context())
	}))

	for path, want := range map[string]bool{
		"/v1/liveness":   true,
		"/v1/liveness/":  true,
		"/v1/readiness":  true,
		"/v1/devices":    false,
		"/v1/liveness/x": false,
	} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, want, quiet, path)
	}
}
