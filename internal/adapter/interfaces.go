// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-portfolio server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// LoginResult is the outcome of a successful admin login.
type LoginResult struct {
	User  models.UserInfo
	Token string
}

// ServerAdapter defines transport-agnostic communication with the
// go-portfolio server. Implementations are responsible for serialisation,
// attaching the bearer token passed to each write, and mapping
// transport-level errors to the sentinel values defined in this package.
//
// The adapter keeps no session state; the caller owns the token.
type ServerAdapter interface {
	// Login authenticates an administrator and returns the signed token.
	Login(ctx context.Context, credentials models.Credentials) (LoginResult, error)

	// Register creates an account. The plaintext password is sent once and
	// never returned.
	Register(ctx context.Context, user models.User) (models.UserInfo, error)

	// CheckRole runs the advisory role lookup. An unknown email is reported
	// as a non-admin, not as an error.
	CheckRole(ctx context.Context, email string) (bool, error)

	// GetSection fetches a section payload together with the version taken
	// from the ETag header. A section that was never written has version 0
	// and an empty payload.
	GetSection(ctx context.Context, name string) (models.Section, error)

	// PutSection writes the whole payload of a section. A positive
	// section.Version is sent as If-Match. Returns the stored version.
	PutSection(ctx context.Context, token string, section models.Section) (int64, error)

	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, token string, project models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, token, id string, update models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, token, id string) error
}
