package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccessDenied        = errors.New("access denied: not an administrator")

	ErrAdminRegistrationDisabled = errors.New("admin registration is disabled")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrUnknownSection = errors.New("unknown section")
)

// Client-side errors.
var (
	// ErrNotAuthenticated is returned by client writes attempted without an
	// admin session.
	ErrNotAuthenticated = errors.New("not signed in as administrator")

	// ErrRateLimited is returned when the server throttled a login attempt.
	ErrRateLimited = errors.New("too many attempts, try again later")

	// ErrServerUnavailable is returned when the server could not be reached
	// or failed unexpectedly.
	ErrServerUnavailable = errors.New("server is unavailable")

	// ErrSectionNotLoaded is returned by a save of a section whose server
	// copy was never fetched; writing it would overwrite unseen content.
	ErrSectionNotLoaded = errors.New("section was not loaded from the server")
)
