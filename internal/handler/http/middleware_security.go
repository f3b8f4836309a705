// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/MKhiriev/go-users-api/internal/apperror"
	"github.com/MKhiriev/go-users-api/internal/metrics"
)

// securityMiddleware builds the CORS and rate limiting middleware from
// [config.Security].
type securityMiddleware struct {
	handler *Handler
	cors    func(http.Handler) http.Handler
}

func (h *Handler) newSecurityMiddleware() *securityMiddleware {
	return &securityMiddleware{
		handler: h,
		cors: cors.Handler(cors.Options{
			AllowedOrigins:   h.security.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Encoding", traceIDHeader},
			ExposedHeaders:   []string{traceIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	}
}

// CORS allows cross-origin requests from the configured origins only.
func (m *securityMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit limits every client IP to RateLimitMax requests per
// RateLimitWindow. A non-positive maximum disables the limiter.
func (m *securityMiddleware) RateLimit() func(http.Handler) http.Handler {
	cfg := m.handler.security
	if cfg.RateLimitMax <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		cfg.RateLimitMax,
		cfg.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RateLimitedRequestsTotal.Inc()
			m.handler.writeError(w, r, apperror.New(cfg.RateLimitMessage, http.StatusTooManyRequests))
		}),
	)
}

// withSecurityHeaders sets the response headers that harden API responses
// against sniffing, framing and referrer leaks.
func withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("X-Content-Type-Options", "nosniff")
		header.Set("X-Frame-Options", "DENY")
		header.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		header.Set("Content-Security-Policy", "default-src 'self'")
		header.Set("Cross-Origin-Opener-Policy", "same-origin")
		header.Set("Cross-Origin-Resource-Policy", "same-origin")
		header.Set("X-DNS-Prefetch-Control", "off")
		header.Del("X-Powered-By")

		// behind a TLS-terminating proxy the scheme arrives in X-Forwarded-Proto
		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			header.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}
