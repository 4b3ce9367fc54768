package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
)

// getSection writes the raw section payload with its version as ETag.
// A known section that was never written is an empty object at version 0.
func (h *Handler) getSection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "section")
	if !models.IsKnownSection(name) {
		utils.WriteMessage(w, app.MsgSectionNotFound, http.StatusNotFound)
		return
	}

	section, err := h.services.ContentService.GetSection(r.Context(), name)
	if err != nil {
		if !errors.Is(err, store.ErrSectionNotFound) {
			writeError(w, r, err, app.MsgSectionLoadFailed)
			return
		}
		section = models.Section{Name: name, Data: models.SectionData{}}
	}

	w.Header().Set("ETag", formatETag(section.Version))
	utils.WriteJSON(w, section.Data, http.StatusOK)
}

// saveSection replaces the whole section payload. An If-Match header makes
// the write conditional on the stored version.
func (h *Handler) saveSection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "section")
	if !models.IsKnownSection(name) {
		utils.WriteMessage(w, app.MsgSectionNotFound, http.StatusNotFound)
		return
	}

	version, err := parseIfMatch(r.Header.Get("If-Match"))
	if err != nil {
		log.Debug().Err(err).Str("if_match", r.Header.Get("If-Match")).Send()
		utils.WriteMessage(w, app.MsgInvalidIfMatch, http.StatusBadRequest)
		return
	}

	var data models.SectionData
	if err = json.NewDecoder(r.Body).Decode(&data); err != nil || data == nil {
		log.Debug().Err(err).Str("section", name).Msg("section body is not a JSON object")
		utils.WriteMessage(w, app.MsgInvalidSectionBody, http.StatusBadRequest)
		return
	}

	saved, err := h.services.ContentService.SaveSection(r.Context(), models.Section{
		Name:    name,
		Data:    data,
		Version: version,
	})
	if err != nil {
		writeError(w, r, err, app.MsgSectionSaveFailed)
		return
	}

	w.Header().Set("ETag", formatETag(saved.Version))
	utils.WriteJSON(w, models.SectionSaveResponse{
		Success: true,
		Message: app.MsgSectionSaved,
		Version: saved.Version,
	}, http.StatusOK)
}

func formatETag(version int64) string {
	return `"` + strconv.FormatInt(version, 10) + `"`
}

// parseIfMatch reads the expected version. No header and "*" both mean an
// unconditional write (version 0).
func parseIfMatch(value string) (int64, error) {
	v := strings.TrimSpace(value)
	if v == "" || v == "*" {
		return 0, nil
	}

	v = strings.Trim(strings.TrimPrefix(v, "W/"), `"`)
	version, err := strconv.ParseInt(v, 10, 64)
	if err != nil || version < 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidIfMatch, value)
	}
	return version, nil
}
