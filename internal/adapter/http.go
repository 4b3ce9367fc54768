package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-portfolio/internal/config"
	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /admin/login. The token is read from the response body and, when
// absent there, from the Authorization header.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (LoginResult, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&result).
		Post("/admin/login")
	if err != nil {
		return LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return LoginResult{}, err
	}

	token := result.Token
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return LoginResult{}, fmt.Errorf("login parse bearer token: %w", err)
		}
	}
	if result.User == nil {
		return LoginResult{}, fmt.Errorf("login response without user")
	}

	return LoginResult{User: *result.User, Token: token}, nil
}

// Register implements [ServerAdapter]. It POSTs the user to POST /register.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.UserInfo, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&result).
		Post("/register")
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserInfo{}, err
	}

	if result.User == nil {
		return models.UserInfo{Email: user.Email, Role: models.ParseRole(string(user.Role))}, nil
	}
	return *result.User, nil
}

// CheckRole implements [ServerAdapter]. It GETs /check-role/{email}.
func (h *httpServerAdapter) CheckRole(ctx context.Context, email string) (bool, error) {
	var result models.RoleResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("email", email).
		SetResult(&result).
		Get("/check-role/{email}")
	if err != nil {
		return false, fmt.Errorf("check role request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.IsAdmin, nil
}

// GetSection implements [ServerAdapter]. It GETs /api/{name}; the body is
// the raw section payload and the ETag header carries the version.
func (h *httpServerAdapter) GetSection(ctx context.Context, name string) (models.Section, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("section", name).
		Get("/api/{section}")
	if err != nil {
		return models.Section{}, fmt.Errorf("get section request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Section{}, err
	}

	section := models.Section{Name: name, Data: models.SectionData{}}
	if len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), &section.Data); err != nil {
			return models.Section{}, fmt.Errorf("decode section %q: %w", name, err)
		}
	}
	if section.Data == nil {
		section.Data = models.SectionData{}
	}

	if etag := resp.Header().Get("ETag"); etag != "" {
		section.Version, err = ParseVersionStamp(etag)
		if err != nil {
			return models.Section{}, err
		}
	}

	return section, nil
}

// PutSection implements [ServerAdapter]. It POSTs the full payload to
// /api/{name} with the bearer token and, for a positive version, If-Match.
func (h *httpServerAdapter) PutSection(ctx context.Context, token string, section models.Section) (int64, error) {
	var result models.SectionSaveResponse

	req := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetPathParam("section", section.Name).
		SetBody(section.Data).
		SetResult(&result)
	if section.Version > 0 {
		req.SetHeader("If-Match", FormatVersionStamp(section.Version))
	}

	resp, err := req.Post("/api/{section}")
	if err != nil {
		return 0, fmt.Errorf("put section request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.Version, nil
}

// ListProjects implements [ServerAdapter]. It GETs /api/projects.
func (h *httpServerAdapter) ListProjects(ctx context.Context) ([]models.Project, error) {
	var result models.ProjectsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/projects")
	if err != nil {
		return nil, fmt.Errorf("list projects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if result.Projects == nil {
		return []models.Project{}, nil
	}
	return result.Projects, nil
}

// CreateProject implements [ServerAdapter]. It POSTs to /api/projects.
func (h *httpServerAdapter) CreateProject(ctx context.Context, token string, project models.Project) (models.Project, error) {
	var result models.ProjectResponse

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(project).
		SetResult(&result).
		Post("/api/projects")
	if err != nil {
		return models.Project{}, fmt.Errorf("create project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return projectOf(result)
}

// UpdateProject implements [ServerAdapter]. It PUTs to /api/projects/{id}.
func (h *httpServerAdapter) UpdateProject(ctx context.Context, token, id string, update models.ProjectUpdate) (models.Project, error) {
	var result models.ProjectResponse

	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(update).
		SetResult(&result).
		Put("/api/projects/{id}")
	if err != nil {
		return models.Project{}, fmt.Errorf("update project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return projectOf(result)
}

// DeleteProject implements [ServerAdapter]. It DELETEs /api/projects/{id}.
func (h *httpServerAdapter) DeleteProject(ctx context.Context, token, id string) error {
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("id", id).
		Delete("/api/projects/{id}")
	if err != nil {
		return fmt.Errorf("delete project request: %w", err)
	}

	return mapHTTPError(resp)
}

// authedRequest starts a request carrying token as its bearer credential.
// The token is set on the request only, never on the shared client.
func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func projectOf(result models.ProjectResponse) (models.Project, error) {
	if result.Project == nil {
		return models.Project{}, fmt.Errorf("response without project")
	}
	return *result.Project, nil
}

// FormatVersionStamp renders a section version as a strong ETag.
func FormatVersionStamp(version int64) string {
	return `"` + strconv.FormatInt(version, 10) + `"`
}

// ParseVersionStamp reads a section version from an ETag or If-Match value.
// Quotes and a weak "W/" prefix are accepted.
func ParseVersionStamp(value string) (int64, error) {
	v := strings.TrimSpace(value)
	v = strings.TrimPrefix(v, "W/")
	v = strings.Trim(v, `"`)

	version, err := strconv.ParseInt(v, 10, 64)
	if err != nil || version < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidVersionStamp, value)
	}
	return version, nil
}
