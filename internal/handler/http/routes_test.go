package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/models"
)

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler().Init()

	want := map[string]bool{
		"GET /api/version":          false,
		"GET /api/v1/users":         false,
		"POST /api/v1/users":        false,
		"GET /api/v1/users/{id}":    false,
		"PATCH /api/v1/users/{id}":  false,
		"DELETE /api/v1/users/{id}": false,
		"GET /metrics":              false,
	}

	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		key := method + " " + route
		if _, ok := want[key]; ok {
			want[key] = true
		}
		return nil
	})
	require.NoError(t, err)

	for route, found := range want {
		assert.True(t, found, "route not registered: %s", route)
	}
}

func TestInit_UnknownRoute_ReturnsAppError404(t *testing.T) {
	api := newTestAPI(t, nil)

	rec := api.do(http.MethodGet, "/api/v2/nothing", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, models.StatusFail, body["status"])
	assert.Equal(t, "Can't find /api/v2/nothing on this server!", body["message"])
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	api := newTestAPI(t, nil)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/v1/users"},
		{http.MethodDelete, "/api/v1/users"},
		{http.MethodPost, "/api/v1/users/7"},
		{http.MethodPost, "/api/version"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := api.do(tt.method, tt.path, nil)
			require.Equal(t, http.StatusNotFound, rec.Code)

			body := decodeBody(t, rec)
			assert.Equal(t, models.StatusFail, body["status"])
			assert.Equal(t, "Can't find "+tt.path+" on this server!", body["message"])
		})
	}
}

func TestInit_UnknownAPIRoute_IsRateLimited(t *testing.T) {
	api := newTestAPI(t, func(cfg *config.StructuredConfig) {
		cfg.Security.RateLimitMax = 1
	})

	first := api.do(http.MethodGet, "/api/v2/nothing", nil)
	require.Equal(t, http.StatusNotFound, first.Code)

	second := api.do(http.MethodGet, "/api/v2/nothing", nil)
	require.Equal(t, http.StatusTooManyRequests, second.Code)

	// a wrong method on a known /api route counts against the same limit
	third := api.do(http.MethodPut, "/api/v1/users", nil)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
}

func TestInit_UnknownRootRoute_IsNotRateLimited(t *testing.T) {
	api := newTestAPI(t, func(cfg *config.StructuredConfig) {
		cfg.Security.RateLimitMax = 1
	})

	for range 3 {
		rec := api.do(http.MethodGet, "/nowhere", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	}
}

func TestInit_SecurityHeaders(t *testing.T) {
	api := newTestAPI(t, nil)
	api.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	rec := api.do(http.MethodGet, "/api/version", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'self'", rec.Header().Get("Content-Security-Policy"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"), "HSTS is only sent over TLS")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_HSTSBehindTLSProxy(t *testing.T) {
	router := newTestHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/nothing", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "max-age=31536000; includeSubDomains", rec.Header().Get("Strict-Transport-Security"))
}

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/nothing", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestInit_CORS(t *testing.T) {
	router := newTestHandler().Init()

	tests := []struct {
		name       string
		origin     string
		wantHeader string
	}{
		{name: "allowed origin", origin: config.DefaultCORSOrigin, wantHeader: config.DefaultCORSOrigin},
		{name: "foreign origin", origin: "https://evil.example", wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/users", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestInit_RateLimit(t *testing.T) {
	api := newTestAPI(t, func(cfg *config.StructuredConfig) {
		cfg.Security.RateLimitMax = 1
	})
	api.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(1)

	first := api.do(http.MethodGet, "/api/version", nil)
	require.Equal(t, http.StatusOK, first.Code)

	second := api.do(http.MethodGet, "/api/version", nil)
	require.Equal(t, http.StatusTooManyRequests, second.Code)

	body := decodeBody(t, second)
	assert.Equal(t, models.StatusFail, body["status"])
	assert.Equal(t, config.DefaultRateLimitMessage, body["message"])
}

func TestInit_RateLimitDoesNotApplyToMetrics(t *testing.T) {
	api := newTestAPI(t, func(cfg *config.StructuredConfig) {
		cfg.Security.RateLimitMax = 1
	})

	for range 3 {
		rec := api.do(http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestInit_MetricsEndpoint(t *testing.T) {
	api := newTestAPI(t, nil)
	api.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	api.do(http.MethodGet, "/api/version", nil)
	rec := api.do(http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `api_requests_total{endpoint="/api/version",method="GET",status_code="200"}`))
}
