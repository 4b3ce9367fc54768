package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
)

func TestWithToken(t *testing.T) {
	ctx := WithToken(context.Background(), models.Token{UserID: 7, TokenClaims: models.TokenClaims{Role: models.RoleAdmin}})

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), userID)

	role, ok := GetRoleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   int64
		wantOK bool
	}{
		{name: "missing", ctx: context.Background()},
		{name: "stored", ctx: context.WithValue(context.Background(), UserIDCtxKey, int64(42)), want: 42, wantOK: true},
		{name: "wrong type", ctx: context.WithValue(context.Background(), UserIDCtxKey, "42")},
		// a plain string key never collides with contextKey
		{name: "foreign key", ctx: context.WithValue(context.Background(), "userID", int64(42))}, //nolint:staticcheck
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetRoleFromContext(t *testing.T) {
	_, ok := GetRoleFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetRoleFromContext(context.WithValue(context.Background(), RoleCtxKey, "admin"))
	assert.False(t, ok, "untyped role must not pass")

	role, ok := GetRoleFromContext(context.WithValue(context.Background(), RoleCtxKey, models.RoleUser))
	assert.True(t, ok)
	assert.False(t, role.IsAdmin())
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "role", RoleCtxKey.String())
}
