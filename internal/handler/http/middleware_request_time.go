package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-users-api/internal/utils"
)

// withRequestTime stamps the request with the time it entered the API.
func withRequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := utils.WithRequestTime(r.Context(), time.Now().UTC().Format(time.RFC3339))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
