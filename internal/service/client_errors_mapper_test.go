package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-portfolio/internal/adapter"
	"github.com/MKhiriev/go-portfolio/internal/app"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/stretchr/testify/assert"
)

func adapterErr(sentinel error, message string) error {
	return fmt.Errorf("%w: %s", sentinel, message)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"missing fields", adapterErr(adapter.ErrBadRequest, app.MsgProvideEmailAndPassword), ErrInvalidDataProvided},
		{"other bad request", adapterErr(adapter.ErrBadRequest, "Please provide a title"), ErrInvalidDataProvided},
		{"invalid credentials", adapterErr(adapter.ErrUnauthorized, app.MsgInvalidCredentials), ErrInvalidCredentials},
		{"expired token", adapterErr(adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid), ErrTokenIsExpiredOrInvalid},
		{"admin registration off", adapterErr(adapter.ErrForbidden, app.MsgAdminRegistrationDisabled), ErrAdminRegistrationDisabled},
		{"forbidden", adapterErr(adapter.ErrForbidden, app.MsgAccessDenied), ErrAccessDenied},
		{"project not found", adapterErr(adapter.ErrNotFound, app.MsgProjectNotFound), store.ErrProjectNotFound},
		{"section not found", adapterErr(adapter.ErrNotFound, app.MsgSectionNotFound), ErrUnknownSection},
		{"duplicate email", adapterErr(adapter.ErrConflict, app.MsgEmailAlreadyRegistered), store.ErrEmailAlreadyExists},
		{"stale version", adapterErr(adapter.ErrConflict, app.MsgSectionVersionConflict), store.ErrSectionVersionConflict},
		{"throttled", adapterErr(adapter.ErrTooManyRequests, app.MsgTooManyRequests), ErrRateLimited},
		{"server error", adapterErr(adapter.ErrInternalServerError, app.MsgServerError), ErrServerUnavailable},
		{"bad gateway", adapterErr(adapter.ErrBadGateway, ""), ErrServerUnavailable},
		{"unreachable", errors.New("POST request: dial tcp 127.0.0.1:1: connect: connection refused"), ErrServerUnavailable},
		{"cancelled", fmt.Errorf("GET request: %w", context.Canceled), context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapAdapterError_UnknownPassesThrough(t *testing.T) {
	in := errors.New("something odd")
	assert.Same(t, in, mapAdapterError(in))
}

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "Not found.", extractBody(errors.New("not found: Not found.")))
	assert.Equal(t, "plain", extractBody(errors.New("plain")))
}
