package http

import (
	"net/http"
	"slices"
)

// withParameterPollutionGuard collapses repeated query keys to their last
// value. Keys listed in the HPP whitelist keep every value.
func (h *Handler) withParameterPollutionGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()
		for key, vals := range values {
			if len(vals) > 1 && !slices.Contains(h.security.HPPWhitelist, key) {
				values[key] = vals[len(vals)-1:]
			}
		}
		r.URL.RawQuery = values.Encode()

		next.ServeHTTP(w, r)
	})
}
