package roles

// Permission is a global permission token granted wholesale to a role.
// Tokens follow the "verb:object" convention and are matched exactly.
type Permission string

const (
	PermViewFiles           Permission = "view:files"
	PermCreateFiles         Permission = "create:files"
	PermEditOwnFiles        Permission = "edit:own_files"
	PermDeleteOwnFiles      Permission = "delete:own_files"
	PermEditAllFiles        Permission = "edit:all_files"
	PermDeleteAllFiles      Permission = "delete:all_files"
	PermUploadFiles         Permission = "upload:files"
	PermDownloadFiles       Permission = "download:files"
	PermSearchFiles         Permission = "search:files"
	PermViewStats           Permission = "view:stats"
	PermViewSystemStats     Permission = "view:system_stats"
	PermManageUsers         Permission = "manage:users"
	PermManageOrganizations Permission = "manage:organizations"
	PermManageAPIKeys       Permission = "manage:api_keys"
	PermViewReports         Permission = "view:reports"
	PermManageSettings      Permission = "manage:settings"
)

func (p Permission) String() string { return string(p) }
