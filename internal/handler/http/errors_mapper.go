package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	service.ErrInvalidCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:   http.StatusUnauthorized,
	service.ErrAccessDenied:              http.StatusForbidden,
	service.ErrAdminRegistrationDisabled: http.StatusForbidden,
	service.ErrUnknownSection:            http.StatusNotFound,
	service.ErrTokenCreationFailed:       http.StatusInternalServerError,

	store.ErrEmailAlreadyExists:     http.StatusConflict,
	store.ErrUserNotFound:           http.StatusNotFound,
	store.ErrProjectNotFound:        http.StatusNotFound,
	store.ErrSectionNotFound:        http.StatusNotFound,
	store.ErrSectionVersionConflict: http.StatusConflict,
	store.ErrStoreUnavailable:       http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
	store.ErrEncodingPayload:    http.StatusInternalServerError,
}

// errorMessageMap holds the public message of errors whose text is not
// meant for callers.
var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials:        app.MsgInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid:   app.MsgTokenIsExpiredOrInvalid,
	service.ErrAccessDenied:              app.MsgAccessDenied,
	service.ErrAdminRegistrationDisabled: app.MsgAdminRegistrationDisabled,
	service.ErrUnknownSection:            app.MsgSectionNotFound,

	store.ErrEmailAlreadyExists:     app.MsgEmailAlreadyRegistered,
	store.ErrUserNotFound:           app.MsgUserNotFound,
	store.ErrProjectNotFound:        app.MsgProjectNotFound,
	store.ErrSectionNotFound:        app.MsgSectionNotFound,
	store.ErrSectionVersionConflict: app.MsgSectionVersionConflict,
}

func statusFromError(err error) int {
	var fieldErrs validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the body message for err. Validation failures
// carry their joined field messages; a 500 always gets fallback so store
// internals never leak.
func messageFromError(err error, status int, fallback string) string {
	if status == http.StatusInternalServerError {
		return fallback
	}

	var fieldErrs validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs.Error()
	}

	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return fallback
}

// writeError logs err and writes the {success:false, message} body.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFromError(err)
	msg := messageFromError(err, status, fallback)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteMessage(w, msg, status)
}
