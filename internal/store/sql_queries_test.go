package store

import (
	"testing"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpsertSectionQuery(t *testing.T) {
	query, args, err := buildUpsertSectionQuery(models.Section{
		Name: "hero",
		Data: models.SectionData{"title": "Hi"},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO sections (name,data,version,created_at,updated_at) VALUES ($1,$2,$3,NOW(),NOW()) "+upsertSection,
		query)
	assert.Equal(t, []any{"hero", `{"title":"Hi"}`, 1}, args)
}

func TestBuildConditionalUpdateSectionQuery(t *testing.T) {
	query, args, err := buildConditionalUpdateSectionQuery(models.Section{
		Name:    "about",
		Data:    models.SectionData{},
		Version: 7,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE sections SET data = $1, version = version + 1, updated_at = NOW() WHERE name = $2 AND version = $3 "+returningSection,
		query)
	assert.Equal(t, []any{"{}", "about", int64(7)}, args)
}

func TestBuildSectionQuery_UnencodablePayload(t *testing.T) {
	_, _, err := buildUpsertSectionQuery(models.Section{
		Name: "hero",
		Data: models.SectionData{"bad": make(chan int)},
	})
	assert.ErrorIs(t, err, ErrEncodingPayload)
}

func TestBuildProjectQueries(t *testing.T) {
	query, args, err := buildListProjectsQuery()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, title, description, image, technologies, live_demo, github, featured, created_at, updated_at FROM projects ORDER BY created_at ASC, id ASC", query)
	assert.Empty(t, args)

	query, args, err = buildDeleteProjectQuery("abc")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM projects WHERE id = $1", query)
	assert.Equal(t, []any{"abc"}, args)

	_, args, err = buildInsertProjectQuery(models.Project{ID: "abc", Title: "t", Technologies: []string{"Go"}})
	require.NoError(t, err)
	assert.Equal(t, []any{"abc", "t", "", "", `["Go"]`, "", "", false}, args)
}

func TestBuildUserQueries(t *testing.T) {
	query, args, err := buildCreateUserQuery(models.User{Email: "e@x.io", PasswordHash: "h", Role: models.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO users (email,password_hash,role) VALUES ($1,$2,$3) "+returningUser, query)
	assert.Equal(t, []any{"e@x.io", "h", "user"}, args)

	query, _, err = buildFindUserByEmailQuery("e@x.io")
	require.NoError(t, err)
	assert.Equal(t, "SELECT user_id, email, password_hash, role, created_at FROM users WHERE email = $1", query)
}

func TestBuildSessionQueries(t *testing.T) {
	query, _, err := buildLoadSessionQuery()
	require.NoError(t, err)
	assert.Equal(t, "SELECT email, role, token, saved_at FROM session WHERE id = ?", query)

	query, args, err := buildDeleteSessionQuery()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM session", query)
	assert.Empty(t, args)
}
