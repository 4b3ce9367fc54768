package adapter

import "errors"

// Transport errors, one per HTTP status class the server is known to
// return. The JSON "message" of the response body follows the sentinel
// after ": ".
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrInvalidVersionStamp = errors.New("invalid section version stamp")
)
