package models

// Response is the envelope shared by every JSON response of the API.
// Failures always carry Success=false and a human-readable Message.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ProjectResponse is returned by project create and update.
type ProjectResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Project *Project `json:"project,omitempty"`
}

// ProjectsResponse is returned by the project listing.
type ProjectsResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Projects []Project `json:"projects"`
}

// SectionSaveResponse is returned by a section write; Version is the stored
// version after the write.
type SectionSaveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Version int64  `json:"version,omitempty"`
}

// AuthResponse is returned by admin login and registration.
// Token is set only by a successful admin login.
type AuthResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	User    *UserInfo `json:"user,omitempty"`
	Token   string    `json:"token,omitempty"`
}

// RoleResponse is returned by the advisory role lookup.
type RoleResponse struct {
	Success bool   `json:"success"`
	IsAdmin bool   `json:"isAdmin"`
	Message string `json:"message,omitempty"`
}

// Credentials is the body of an admin login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
