package guard_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikiai/kbaccess/pkg/guard"
	"github.com/wikiai/kbaccess/pkg/rbac"
	"github.com/wikiai/kbaccess/pkg/roles"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func withRole(role string) context.Context {
	return rbac.WithContext(context.Background(), rbac.PermissionContext{UserRole: role, UserID: "u1"})
}

func TestPermissionGuard(t *testing.T) {
	t.Parallel()
	v := rbac.New()
	c := guard.Permission(v, roles.PermManageUsers, templ.Raw("<b>users</b>"), templ.Raw("denied"))

	assert.Equal(t, "<b>users</b>", render(t, withRole("admin"), c))
	assert.Equal(t, "denied", render(t, withRole("editor"), c))
	assert.Equal(t, "denied", render(t, withRole("bogus"), c))
	assert.Equal(t, "denied", render(t, context.Background(), c))

	t.Run("nil fallback renders nothing", func(t *testing.T) {
		c := guard.Permission(v, roles.PermManageUsers, templ.Raw("x"), nil)
		assert.Empty(t, render(t, withRole("viewer"), c))
	})
}

func TestRoleGuard(t *testing.T) {
	t.Parallel()
	c := guard.Role([]string{"admin", "Owner"}, templ.Raw("panel"), templ.Raw("-"))

	assert.Equal(t, "panel", render(t, withRole("admin"), c))
	assert.Equal(t, "panel", render(t, withRole("OWNER"), c))
	assert.Equal(t, "-", render(t, withRole("editor"), c))
	assert.Equal(t, "-", render(t, withRole(""), c))
	assert.Equal(t, "-", render(t, context.Background(), c))
}

func TestFileAccessGuard(t *testing.T) {
	t.Parallel()
	v := rbac.New()
	c := guard.FileAccess(v, roles.Own(roles.ActionDelete), templ.Raw("delete"), nil)

	own := rbac.PermissionContext{UserRole: "editor", UserID: "u1"}.ForResource("files", "f1", "f1")
	other := rbac.PermissionContext{UserRole: "editor", UserID: "u1"}.ForResource("files", "f2", "u9")

	assert.Equal(t, "delete", render(t, rbac.WithContext(context.Background(), own), c))
	assert.Empty(t, render(t, rbac.WithContext(context.Background(), other), c))
}
