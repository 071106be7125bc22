package guard

import (
	"github.com/wikiai/kbaccess/pkg/rbac"
	"github.com/wikiai/kbaccess/pkg/roles"
)

// Flags holds one boolean per well-known capability of the current user.
type Flags struct {
	CanViewFiles           bool `json:"canViewFiles"`
	CanUploadFiles         bool `json:"canUploadFiles"`
	CanDownloadFiles       bool `json:"canDownloadFiles"`
	CanSearchFiles         bool `json:"canSearchFiles"`
	CanManageUsers         bool `json:"canManageUsers"`
	CanManageFiles         bool `json:"canManageFiles"`
	CanDeleteFiles         bool `json:"canDeleteFiles"`
	CanEditFiles           bool `json:"canEditFiles"`
	CanViewSystemStats     bool `json:"canViewSystemStats"`
	CanManageAPIKeys       bool `json:"canManageApiKeys"`
	CanViewReports         bool `json:"canViewReports"`
	CanManageOrganizations bool `json:"canManageOrganizations"`
}

// Compute evaluates every flag for pc.
// An unknown role yields the zero value.
func Compute(v *rbac.Validator, pc rbac.PermissionContext) Flags {
	has := func(p roles.Permission) bool { return v.HasPermission(pc, p) }

	return Flags{
		CanViewFiles:     has(roles.PermViewFiles),
		CanUploadFiles:   has(roles.PermUploadFiles),
		CanDownloadFiles: has(roles.PermDownloadFiles),
		CanSearchFiles:   has(roles.PermSearchFiles),
		CanManageUsers:   has(roles.PermManageUsers),
		// managing means creating and deleting anyone's files
		CanManageFiles: v.CanAccessFile(pc, roles.Any(roles.ActionCreate)) &&
			v.CanAccessFile(pc, roles.Any(roles.ActionDelete)),
		CanDeleteFiles:         has(roles.PermDeleteAllFiles) || has(roles.PermDeleteOwnFiles),
		CanEditFiles:           has(roles.PermEditAllFiles) || has(roles.PermEditOwnFiles),
		CanViewSystemStats:     has(roles.PermViewSystemStats),
		CanManageAPIKeys:       has(roles.PermManageAPIKeys),
		CanViewReports:         has(roles.PermViewReports),
		CanManageOrganizations: has(roles.PermManageOrganizations),
	}
}
