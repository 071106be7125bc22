package rbac

import "context"

// PermissionContext describes the caller of a single authorization check.
// It is built fresh at each call site; empty strings mean "absent".
type PermissionContext struct {
	UserRole       string `json:"userRole"`
	OrganizationID string `json:"organizationId,omitempty"`
	UserID         string `json:"userId,omitempty"`
	ResourceID     string `json:"resourceId,omitempty"`
	ResourceType   string `json:"resourceType,omitempty"`
	OwnerID        string `json:"ownerId,omitempty"`
}

// Owns reports whether the caller owns the resource in question.
// Absent identifiers never establish ownership.
func (pc PermissionContext) Owns() bool {
	if pc.ResourceID == "" {
		return false
	}
	return pc.ResourceID == pc.UserID || pc.ResourceID == pc.OwnerID
}

// ForResource returns a copy of pc scoped to a specific resource instance.
func (pc PermissionContext) ForResource(resourceType, resourceID, ownerID string) PermissionContext {
	pc.ResourceType = resourceType
	pc.ResourceID = resourceID
	pc.OwnerID = ownerID
	return pc
}

type permissionCtxKey struct{}

// WithContext stores pc in ctx.
func WithContext(ctx context.Context, pc PermissionContext) context.Context {
	return context.WithValue(ctx, permissionCtxKey{}, pc)
}

// FromContext returns the PermissionContext stored in ctx.
func FromContext(ctx context.Context) (PermissionContext, bool) {
	if ctx == nil {
		return PermissionContext{}, false
	}
	pc, ok := ctx.Value(permissionCtxKey{}).(PermissionContext)
	return pc, ok
}
