package rbac

import "errors"

var (
	// ErrInvalidRole is returned when the caller's role is not in the registry.
	ErrInvalidRole = errors.New("rbac.invalid_role")

	// ErrInsufficientPermissions is returned when the role lacks the requested grant.
	ErrInsufficientPermissions = errors.New("rbac.insufficient_permissions")

	// ErrContextMissing is returned when no PermissionContext is attached to a context.Context.
	ErrContextMissing = errors.New("rbac.permission_context_missing")
)
