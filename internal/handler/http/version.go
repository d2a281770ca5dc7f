package http

import (
	"net/http"

	"github.com/MKhiriev/aegis-vault/internal/app"
	"github.com/MKhiriev/aegis-vault/internal/logger"
	"github.com/MKhiriev/aegis-vault/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// ping answers 200 while the database is reachable.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.ping").Msg("health check failed")
		utils.WriteError(w, app.MsgStorageUnavailable, http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}
