package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-portfolio/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// sqlite builds SQLite statements with ? placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var (
	sectionColumns = []string{"name", "data", "version", "created_at", "updated_at"}
	projectColumns = []string{"id", "title", "description", "image", "technologies", "live_demo", "github", "featured", "created_at", "updated_at"}
	userColumns    = []string{"user_id", "email", "password_hash", "role", "created_at"}
	sessionColumns = []string{"email", "role", "token", "saved_at"}
)

const (
	returningSection = "RETURNING name, data, version, created_at, updated_at"
	returningProject = "RETURNING id, title, description, image, technologies, live_demo, github, featured, created_at, updated_at"
	returningUser    = "RETURNING user_id, email, password_hash, role, created_at"
	upsertSection    = "ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, version = sections.version + 1, updated_at = NOW() " + returningSection
	upsertSession    = "ON CONFLICT (id) DO UPDATE SET email = excluded.email, role = excluded.role, token = excluded.token, saved_at = excluded.saved_at"
	sessionRowID     = 1
)

// ── sections ────────────────────────────────────────────────────────────────

func buildGetSectionQuery(name string) (string, []any, error) {
	return psql.Select(sectionColumns...).
		From(models.Section{}.TableName()).
		Where(sq.Eq{"name": name}).
		ToSql()
}

// buildUpsertSectionQuery replaces the payload unconditionally; the stored
// version is bumped on every write.
func buildUpsertSectionQuery(section models.Section) (string, []any, error) {
	data, err := encodeJSON(section.Data)
	if err != nil {
		return "", nil, err
	}

	return psql.Insert(models.Section{}.TableName()).
		Columns(sectionColumns...).
		Values(section.Name, data, 1, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix(upsertSection).
		ToSql()
}

// buildConditionalUpdateSectionQuery replaces the payload only while the
// stored version still equals section.Version.
func buildConditionalUpdateSectionQuery(section models.Section) (string, []any, error) {
	data, err := encodeJSON(section.Data)
	if err != nil {
		return "", nil, err
	}

	return psql.Update(models.Section{}.TableName()).
		Set("data", data).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"name": section.Name, "version": section.Version}).
		Suffix(returningSection).
		ToSql()
}

// ── projects ────────────────────────────────────────────────────────────────

func buildListProjectsQuery() (string, []any, error) {
	return psql.Select(projectColumns...).
		From(models.Project{}.TableName()).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func buildGetProjectQuery(id string) (string, []any, error) {
	return psql.Select(projectColumns...).
		From(models.Project{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertProjectQuery(project models.Project) (string, []any, error) {
	technologies, err := encodeJSON(technologiesOrEmpty(project.Technologies))
	if err != nil {
		return "", nil, err
	}

	return psql.Insert(models.Project{}.TableName()).
		Columns(projectColumns...).
		Values(
			project.ID,
			project.Title,
			project.Description,
			project.Image,
			technologies,
			project.LiveDemo,
			project.GitHub,
			project.Featured,
			sq.Expr("NOW()"),
			sq.Expr("NOW()"),
		).
		Suffix(returningProject).
		ToSql()
}

// buildUpdateProjectQuery overwrites every mutable column of the project.
func buildUpdateProjectQuery(project models.Project) (string, []any, error) {
	technologies, err := encodeJSON(technologiesOrEmpty(project.Technologies))
	if err != nil {
		return "", nil, err
	}

	return psql.Update(models.Project{}.TableName()).
		Set("title", project.Title).
		Set("description", project.Description).
		Set("image", project.Image).
		Set("technologies", technologies).
		Set("live_demo", project.LiveDemo).
		Set("github", project.GitHub).
		Set("featured", project.Featured).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": project.ID}).
		Suffix(returningProject).
		ToSql()
}

func buildDeleteProjectQuery(id string) (string, []any, error) {
	return psql.Delete(models.Project{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── users ───────────────────────────────────────────────────────────────────

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(models.User{}.TableName()).
		Columns("email", "password_hash", "role").
		Values(user.Email, user.PasswordHash, string(user.Role)).
		Suffix(returningUser).
		ToSql()
}

func buildFindUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

// ── client session ──────────────────────────────────────────────────────────

func buildSaveSessionQuery(session models.Session) (string, []any, error) {
	return sqlite.Insert("session").
		Columns(append([]string{"id"}, sessionColumns...)...).
		Values(sessionRowID, session.Email, string(session.Role), session.Token, session.SavedAt.UTC()).
		Suffix(upsertSession).
		ToSql()
}

func buildLoadSessionQuery() (string, []any, error) {
	return sqlite.Select(sessionColumns...).
		From("session").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return sqlite.Delete("session").ToSql()
}

// ── helpers ─────────────────────────────────────────────────────────────────

// encodeJSON renders v for a JSONB parameter.
func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	return string(b), nil
}

func technologiesOrEmpty(t []string) []string {
	if t == nil {
		return []string{}
	}
	return t
}
