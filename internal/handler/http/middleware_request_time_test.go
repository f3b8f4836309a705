package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-users-api/internal/utils"
)

func TestWithRequestTime(t *testing.T) {
	before := time.Now().UTC().Truncate(time.Second)

	var stamp string
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stamp, ok = utils.GetRequestTimeFromContext(r.Context())
	})

	withRequestTime(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339, stamp)
	require.NoError(t, err)
	assert.False(t, parsed.Before(before))
}
