package guard

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/wikiai/kbaccess/pkg/rbac"
	"github.com/wikiai/kbaccess/pkg/roles"
)

// choose renders children when allow returns true for the PermissionContext
// in the render context, and fallback otherwise. A missing context renders fallback.
func choose(allow func(rbac.PermissionContext) bool, children, fallback templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pc, ok := rbac.FromContext(ctx)
		if ok && allow(pc) {
			return orNop(children).Render(ctx, w)
		}
		return orNop(fallback).Render(ctx, w)
	})
}

func orNop(c templ.Component) templ.Component {
	if c == nil {
		return templ.NopComponent
	}
	return c
}

// Permission renders children when the current user holds perm.
func Permission(v *rbac.Validator, perm roles.Permission, children, fallback templ.Component) templ.Component {
	return choose(func(pc rbac.PermissionContext) bool {
		return v.HasPermission(pc, perm)
	}, children, fallback)
}

// Role renders children when the current user's role is one of allowed.
// Names are compared case-insensitively.
func Role(allowed []string, children, fallback templ.Component) templ.Component {
	return choose(func(pc rbac.PermissionContext) bool {
		if pc.UserRole == "" {
			return false
		}
		for _, name := range allowed {
			if strings.EqualFold(name, pc.UserRole) {
				return true
			}
		}
		return false
	}, children, fallback)
}

// FileAccess renders children when the current user may perform ra on files.
// Ownership comes from the PermissionContext, see rbac.PermissionContext.ForResource.
func FileAccess(v *rbac.Validator, ra roles.ResourceAction, children, fallback templ.Component) templ.Component {
	return choose(func(pc rbac.PermissionContext) bool {
		return v.CanAccessFile(pc, ra)
	}, children, fallback)
}
