package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-users-api/models"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "semantic version", version: "1.2.3"},
		{name: "empty version", version: ""},
		{name: "pre-release", version: "2.0.0-rc.1+build.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, nil)
			api.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)

			rec := api.do(http.MethodGet, "/api/version", nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			body := decodeBody(t, rec)
			assert.Equal(t, models.StatusSuccess, body["status"])
			assert.Equal(t, tt.version, body["data"].(map[string]any)["version"])
		})
	}
}
