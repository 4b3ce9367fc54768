package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgProvideEmailAndPassword, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			utils.WriteMessage(w, app.MsgProvideEmailAndPassword, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrAccessDenied):
			writeError(w, r, err, app.MsgServerError)
		default:
			log.Err(err).Str("func", "*Handler.login").Msg("unexpected error occurred during admin login")
			utils.WriteMessage(w, app.MsgServerError, http.StatusInternalServerError)
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("creation of token failed")
		utils.WriteMessage(w, app.MsgServerError, http.StatusInternalServerError)
		return
	}

	log.Info().Int64("id", foundUser.UserID).Msg("admin logged in")

	info := foundUser.Public()
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: app.MsgAdminLoginSuccessful,
		User:    &info,
		Token:   token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.register").Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgEmailAndPasswordRequired, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			utils.WriteMessage(w, app.MsgEmailAndPasswordRequired, http.StatusBadRequest)
			return
		}
		writeError(w, r, err, app.MsgCouldNotSaveUser)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Str("role", string(registeredUser.Role)).Msg("user registered")

	info := registeredUser.Public()
	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: app.MsgUserCreated,
		User:    &info,
	}, http.StatusCreated)
}

// checkRole is the advisory role lookup used by the client to decide
// whether to show edit controls. It authorizes nothing.
func (h *Handler) checkRole(w http.ResponseWriter, r *http.Request) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil || strings.TrimSpace(email) == "" {
		utils.WriteJSON(w, models.RoleResponse{Message: app.MsgEmailRequired}, http.StatusBadRequest)
		return
	}

	check, err := h.services.AuthService.CheckRole(r.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			utils.WriteJSON(w, models.RoleResponse{Message: app.MsgEmailRequired}, http.StatusBadRequest)
			return
		}
		logger.FromRequest(r).Err(err).Str("func", "*Handler.checkRole").Msg("role lookup failed")
		utils.WriteJSON(w, models.RoleResponse{Message: app.MsgServerErrorDot}, http.StatusInternalServerError)
		return
	}

	if !check.Found {
		utils.WriteJSON(w, models.RoleResponse{Message: app.MsgUserNotFound}, http.StatusNotFound)
		return
	}

	msg := app.MsgUserIsNotAdmin
	if check.IsAdmin {
		msg = app.MsgUserIsAdmin
	}
	utils.WriteJSON(w, models.RoleResponse{Success: true, IsAdmin: check.IsAdmin, Message: msg}, http.StatusOK)
}
