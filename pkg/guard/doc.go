// Package guard adapts rbac decisions to the places that consume them:
// page rendering and HTTP routing.
//
// Compute evaluates the well-known permission flags for a caller once per
// request. Permission, Role and FileAccess wrap templ components and render
// either the children or a fallback depending on the PermissionContext found
// in the render context. RequirePermission, RequireResource, RequireRole and
// RequireLevel are net/http middleware (usable with chi's Use/With) that
// answer 401 when no PermissionContext is attached and 403 when the check
// fails.
//
// Nothing here adds rules of its own; every answer comes from rbac.Validator.
package guard
