package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
}

func (h *Handler) greeting(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": app.MsgGreeting}, http.StatusOK)
}
