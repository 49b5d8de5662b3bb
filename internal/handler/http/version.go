package http

import (
	"net/http"

	"github.com/MKhiriev/inkspire/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.VersionResponse{Version: h.services.AppInfoService.GetAppVersion(r.Context())}, http.StatusOK)
}
