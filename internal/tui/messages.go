package tui

import (
	"context"

	"github.com/MKhiriev/go-portfolio/models"
)

// NavigateTo asks the root model to switch screens. Payload is handed to
// the target screen's enter method.
type NavigateTo struct {
	Page    string
	Payload any
}

// notice is a one-line status passed along with a navigation.
type notice string

// sectionRef opens the section screen.
type sectionRef struct {
	name    string
	isAdmin bool
}

// projectsRef opens the projects screen.
type projectsRef struct {
	isAdmin bool
}

// Each result message carries the screen context it was started under, so
// a screen drops results of a visit that already ended.

type contentLoadedMsg struct {
	ctx      context.Context
	snapshot models.ContentSnapshot
	err      error
}

type loggedOutMsg struct {
	ctx context.Context
	err error
}

type loginDoneMsg struct {
	ctx     context.Context
	session models.Session
	err     error
}

type sectionLoadedMsg struct {
	ctx     context.Context
	section models.Section
	err     error
}

type sectionSavedMsg struct {
	ctx     context.Context
	section models.Section
	err     error
}

type linksSavedMsg struct {
	ctx     context.Context
	section models.Section
	err     error
}

type projectsLoadedMsg struct {
	ctx      context.Context
	projects []models.Project
	err      error
}

type projectSavedMsg struct {
	ctx     context.Context
	project models.Project
	created bool
	err     error
}

type projectDeletedMsg struct {
	ctx context.Context
	id  string
	err error
}
