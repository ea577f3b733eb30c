package http

import (
	"net/http"

	"github.com/MKhiriev/bbp-gateway/internal/logger"
	"github.com/MKhiriev/bbp-gateway/internal/utils"
	"github.com/MKhiriev/bbp-gateway/models"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	version := h.app.Version
	if version == "" {
		version = h.buildInfo.BuildVersion()
	}

	resp := models.VersionResponse{
		Name:        h.app.Name,
		Version:     version,
		BuildDate:   h.buildInfo.BuildDate(),
		BuildCommit: h.buildInfo.BuildCommit(),
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		logger.FromContextOr(r.Context(), h.logger).Err(err).Msg("error writing version response")
	}
}
