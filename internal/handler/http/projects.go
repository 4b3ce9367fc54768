package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.ListProjects(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgProjectListFailed)
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}

	utils.WriteJSON(w, models.ProjectsResponse{Success: true, Projects: projects}, http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.createProject").Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	project.ID = ""

	created, err := h.services.ProjectService.CreateProject(r.Context(), project)
	if err != nil {
		writeError(w, r, err, app.MsgProjectCreateFailed)
		return
	}

	utils.WriteJSON(w, models.ProjectResponse{
		Success: true,
		Message: app.MsgProjectCreated,
		Project: &created,
	}, http.StatusOK)
}

// updateProject applies the provided fields only; absent fields keep their
// stored value.
func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var update models.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.updateProject").Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.ProjectService.UpdateProject(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err, app.MsgProjectUpdateFailed)
		return
	}

	utils.WriteJSON(w, models.ProjectResponse{
		Success: true,
		Message: app.MsgProjectUpdated,
		Project: &updated,
	}, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.ProjectService.DeleteProject(r.Context(), id); err != nil {
		writeError(w, r, err, app.MsgProjectDeleteFailed)
		return
	}

	utils.WriteMessage(w, app.MsgProjectDeleted, http.StatusOK)
}
