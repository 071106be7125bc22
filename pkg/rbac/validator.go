package rbac

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wikiai/kbaccess/pkg/logger"
	"github.com/wikiai/kbaccess/pkg/roles"
)

// Validator answers authorization questions against the role registry.
// It holds no per-call state and is safe for concurrent use.
type Validator struct {
	registry *roles.Registry
	log      *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used to trace decisions. Decisions are logged at
// debug level and unknown roles at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) { v.log = logger.OrNoop(l) }
}

// New returns a Validator over the built-in role registry.
func New(opts ...Option) *Validator {
	v := &Validator{
		registry: roles.Builtin(),
		log:      logger.Noop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.log = v.log.With(logger.Component("rbac"))
	return v
}

// Registry returns the registry the validator consults.
func (v *Validator) Registry() *roles.Registry { return v.registry }

// role resolves the caller's role, logging unknown names.
func (v *Validator) role(pc PermissionContext) *roles.Role {
	r := v.registry.Get(pc.UserRole)
	if r == nil {
		v.log.Warn("unknown role", logger.Role(pc.UserRole))
	}
	return r
}

// HasPermission reports whether the caller's role holds the global permission.
func (v *Validator) HasPermission(pc PermissionContext, perm roles.Permission) bool {
	r := v.role(pc)
	if r == nil {
		return false
	}
	allowed := r.Has(perm)
	v.log.Debug("permission check",
		logger.Role(pc.UserRole),
		logger.Permission(perm.String()),
		logger.Decision(allowed),
	)
	return allowed
}

// HasResourcePermission reports whether the caller may perform ra on res.
//
// The role must have an entry for res. Owner-scoped actions are only granted
// to an owner, and then when the entry lists either the scoped or the
// unscoped action. A non-owner asking for an owner-scoped action is denied.
func (v *Validator) HasResourcePermission(pc PermissionContext, res roles.Resource, ra roles.ResourceAction) bool {
	r := v.role(pc)
	if r == nil {
		return false
	}
	if !r.HasResource(res) {
		v.log.Debug("no access to resource",
			logger.Role(pc.UserRole),
			logger.Resource(res.String()),
		)
		return false
	}

	var allowed bool
	switch {
	case !ra.OwnerScoped():
		allowed = r.Grants(res, ra)
	case pc.Owns():
		allowed = r.Grants(res, ra) || r.Grants(res, ra.Unscoped())
	}

	v.log.Debug("resource check",
		logger.Role(pc.UserRole),
		logger.Resource(res.String()),
		logger.Action(ra.String()),
		logger.ResourceID(pc.ResourceID),
		logger.Decision(allowed),
	)
	return allowed
}

// CanManageUser reports whether the caller may administer another user's account.
//
// Owners may manage anyone. Admins may manage any user whose role is known and
// below owner, including other admins. An admin call without a known target
// role is denied. Everyone else is denied.
func (v *Validator) CanManageUser(pc PermissionContext, targetUserID, targetRole string) bool {
	r := v.role(pc)
	if r == nil {
		return false
	}

	var allowed bool
	switch r.Level() {
	case roles.LevelOwner:
		allowed = true
	case roles.LevelAdmin:
		if target := v.registry.Get(targetRole); target != nil {
			allowed = target.Level() < roles.LevelOwner
		}
	}

	v.log.Debug("manage user check",
		logger.Role(pc.UserRole),
		logger.UserID(targetUserID),
		logger.TargetRole(targetRole),
		logger.Decision(allowed),
	)
	return allowed
}

// CanElevateRole reports whether the caller may assign targetRole.
// It requires the caller's level to be strictly above the target's.
func (v *Validator) CanElevateRole(pc PermissionContext, targetRole string) bool {
	return v.registry.CanManage(pc.UserRole, targetRole)
}

// CanAccessFile is HasResourcePermission on the files resource.
func (v *Validator) CanAccessFile(pc PermissionContext, ra roles.ResourceAction) bool {
	return v.HasResourcePermission(pc, roles.ResourceFiles, ra)
}

// CanAccessOrganization reports whether the caller may perform action on the
// organization itself. Owners may do anything, admins may only read.
// Resource grants are not consulted.
func (v *Validator) CanAccessOrganization(pc PermissionContext, action roles.Action) bool {
	r := v.role(pc)
	if r == nil {
		return false
	}
	switch r.Level() {
	case roles.LevelOwner:
		return true
	case roles.LevelAdmin:
		return action == roles.ActionRead
	default:
		return false
	}
}

// AccessibleResources lists the resource types the caller's role has an entry for.
func (v *Validator) AccessibleResources(pc PermissionContext) []roles.Resource {
	r := v.role(pc)
	if r == nil {
		return []roles.Resource{}
	}
	return r.Resources()
}

// UserPermissions lists the global permissions of the caller's role.
func (v *Validator) UserPermissions(pc PermissionContext) []roles.Permission {
	r := v.role(pc)
	if r == nil {
		return []roles.Permission{}
	}
	return r.Permissions()
}

// IsRoleHigherThan reports whether role1 is strictly above role2.
func (v *Validator) IsRoleHigherThan(role1, role2 string) bool {
	return v.registry.LevelOf(role1) > v.registry.LevelOf(role2)
}

// IsAdminOrAbove reports whether the role is admin or owner.
func (v *Validator) IsAdminOrAbove(role string) bool {
	return v.registry.LevelOf(role) >= roles.LevelAdmin
}

// IsEditorOrAbove reports whether the role is editor, admin or owner.
func (v *Validator) IsEditorOrAbove(role string) bool {
	return v.registry.LevelOf(role) >= roles.LevelEditor
}

// Validation is the result of ValidateContext.
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateContext checks pc for a missing or unknown role.
func (v *Validator) ValidateContext(pc PermissionContext) Validation {
	errs := []string{}
	switch {
	case pc.UserRole == "":
		errs = append(errs, "userRole is required")
	case v.registry.Get(pc.UserRole) == nil:
		errs = append(errs, fmt.Sprintf("Unknown role: %s", pc.UserRole))
	}
	return Validation{Valid: len(errs) == 0, Errors: errs}
}

// Authorize returns nil when the caller holds perm.
func (v *Validator) Authorize(pc PermissionContext, perm roles.Permission) error {
	if v.registry.Get(pc.UserRole) == nil {
		return ErrInvalidRole
	}
	if !v.HasPermission(pc, perm) {
		return ErrInsufficientPermissions
	}
	return nil
}

// AuthorizeResource returns nil when the caller may perform ra on res.
func (v *Validator) AuthorizeResource(pc PermissionContext, res roles.Resource, ra roles.ResourceAction) error {
	if v.registry.Get(pc.UserRole) == nil {
		return ErrInvalidRole
	}
	if !v.HasResourcePermission(pc, res, ra) {
		return ErrInsufficientPermissions
	}
	return nil
}

// AuthorizeFromContext is Authorize using the PermissionContext stored in ctx.
func (v *Validator) AuthorizeFromContext(ctx context.Context, perm roles.Permission) error {
	pc, ok := FromContext(ctx)
	if !ok {
		return errors.Join(ErrContextMissing, ErrInsufficientPermissions)
	}
	return v.Authorize(pc, perm)
}

// AuthorizeResourceFromContext is AuthorizeResource using the PermissionContext stored in ctx.
func (v *Validator) AuthorizeResourceFromContext(ctx context.Context, res roles.Resource, ra roles.ResourceAction) error {
	pc, ok := FromContext(ctx)
	if !ok {
		return errors.Join(ErrContextMissing, ErrInsufficientPermissions)
	}
	return v.AuthorizeResource(pc, res, ra)
}
