// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgProvideEmailAndPassword, app.MsgEmailAndPasswordRequired:
			return ErrInvalidDataProvided
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidCredentials:
			return ErrInvalidCredentials
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		switch msg {
		case app.MsgAdminRegistrationDisabled:
			return ErrAdminRegistrationDisabled
		}
		return ErrAccessDenied

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgProjectNotFound:
			return store.ErrProjectNotFound
		case app.MsgSectionNotFound:
			return ErrUnknownSection
		case app.MsgUserNotFound:
			return store.ErrUserNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgEmailAlreadyRegistered:
			return store.ErrEmailAlreadyExists
		case app.MsgSectionVersionConflict:
			return store.ErrSectionVersionConflict
		}

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrRateLimited

	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %s", ErrServerUnavailable, msg)

	case isTransportFailure(err):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// isTransportFailure reports whether err carries none of the adapter's
// status sentinels, i.e. the request never got a response.
func isTransportFailure(err error) bool {
	for _, sentinel := range []error{
		adapter.ErrBadRequest, adapter.ErrUnauthorized, adapter.ErrForbidden,
		adapter.ErrNotFound, adapter.ErrConflict, adapter.ErrTooManyRequests,
		adapter.ErrInternalServerError, adapter.ErrBadGateway, adapter.ErrInvalidVersionStamp,
	} {
		if errors.Is(err, sentinel) {
			return false
		}
	}
	return strings.Contains(err.Error(), " request: ")
}
