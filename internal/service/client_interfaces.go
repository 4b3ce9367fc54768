package service

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService is the single process-wide admin session of the
// client. It is created once at startup and handed to every screen; nothing
// else reads or writes session state.
type ClientSessionService interface {
	// Restore loads the persisted session and re-runs the advisory role
	// check for its email. An expired token is discarded. Returns the
	// restored session, or an empty one when nothing usable was stored.
	Restore(ctx context.Context) (models.Session, error)

	// Login authenticates against the server, persists the new session and
	// makes it current.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// Current returns a copy of the current session.
	Current() models.Session

	// IsAdmin reports whether the current session may attempt writes.
	IsAdmin() bool

	// Token returns the bearer token of the current session.
	Token() string

	// Logout tears the session down: the in-memory state is cleared and the
	// persisted row is deleted.
	Logout(ctx context.Context) error
}

// ClientContentService keeps the last known content of every section and
// performs the edit-and-save round trip.
type ClientContentService interface {
	// Defaults returns the baked-in content of a section. It never touches
	// the network.
	Defaults(name string) models.Section

	// Current returns the last known content of a section: loaded or saved
	// content when available, defaults otherwise.
	Current(name string) models.Section

	// Load fetches a section. On failure or an empty payload the defaults
	// are kept and returned together with the error. When ctx was cancelled
	// the result is discarded and local state is left untouched.
	Load(ctx context.Context, name string) (models.Section, error)

	// LoadAll runs the advisory role check and the fetch of every named
	// section as independent tasks. It returns once all of them settled.
	LoadAll(ctx context.Context, names ...string) (models.ContentSnapshot, error)

	// Save merges edits over the last known content of the section and sends
	// the whole object. Local state changes only after the server accepted
	// the write.
	Save(ctx context.Context, name string, edits models.SectionData) (models.Section, error)
}

// ClientProjectService manages projects from the admin client.
type ClientProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, project models.Project) (models.Project, error)
	Update(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error)
	Delete(ctx context.Context, id string) error
}
