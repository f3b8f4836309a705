package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-api/models"
)

type versionData struct {
	Version string `json:"version"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	h.respond(w, r, models.Response{
		Status: models.StatusSuccess,
		Data:   versionData{Version: serverVersion},
	}, http.StatusOK)
}
