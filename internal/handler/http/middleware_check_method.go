// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/logger"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler. chi
// calls it when a path exists but does not accept the request method; the
// request is answered by notFound, the same 404 an unknown path gets, so the
// users API never advertises which methods a route supports.
func CheckHTTPMethod(notFound http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Debug().
			Str("func", "CheckHTTPMethod").
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("method is not served on this route")

		notFound(w, r)
	}
}
