// Package rbac is the single authorization decision point of the knowledge
// base. A Validator answers questions of the form "may this caller do X" given
// a PermissionContext (the caller's role plus optional user, organization,
// resource and owner identifiers) and the built-in role registry.
//
// Every check is a pure function of its inputs: there is no I/O, no caching
// and no mutable state, so a single Validator can be shared by any number of
// goroutines. Checks fail closed: an unknown role, an unknown resource, or
// missing ownership information always yields a denial (false or an empty
// list), never a panic.
//
// Ownership is supplied by the caller. A PermissionContext owns the resource
// when ResourceID is set and equals UserID or OwnerID. Owner-scoped actions
// ("update:own", "delete:own") are granted to owners when the role lists the
// owner-scoped action or the corresponding unscoped one.
//
// Basic usage:
//
//	v := rbac.New(rbac.WithLogger(log))
//
//	pc := rbac.PermissionContext{UserRole: "editor", UserID: "u1", ResourceID: "u1"}
//	if v.HasResourcePermission(pc, roles.ResourceFiles, roles.Own(roles.ActionUpdate)) {
//	    // ...
//	}
//
// Server code that prefers errors over booleans uses the Authorize helpers,
// which return ErrInvalidRole or ErrInsufficientPermissions:
//
//	ctx = rbac.WithContext(ctx, pc)
//	if err := v.AuthorizeFromContext(ctx, roles.PermManageUsers); err != nil {
//	    // deny
//	}
//
// ValidateContext reports configuration problems (missing or unknown role) as
// human-readable strings. It is advisory: the other methods do not consult it.
//
// The decisions made here gate what the client renders. The remote API must
// enforce the same rules on its side.
package rbac
