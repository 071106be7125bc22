package roles

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Built-in role keys.
const (
	Viewer = "viewer"
	Editor = "editor"
	Admin  = "admin"
	Owner  = "owner"
)

var crud = []ResourceAction{Any(ActionRead), Any(ActionCreate), Any(ActionUpdate), Any(ActionDelete)}

var builtinDefs = map[string]roleDef{
	Viewer: {
		name:        "Viewer",
		description: "Read-only access to files and documents",
		level:       LevelViewer,
		permissions: []Permission{PermViewFiles, PermViewStats, PermSearchFiles},
		resources: map[Resource][]ResourceAction{
			ResourceFiles: {Any(ActionRead)},
		},
	},
	Editor: {
		name:        "Editor",
		description: "Can create and edit own resources",
		level:       LevelEditor,
		permissions: []Permission{
			PermViewFiles,
			PermCreateFiles,
			PermEditOwnFiles,
			PermDeleteOwnFiles,
			PermUploadFiles,
			PermViewStats,
			PermSearchFiles,
			PermDownloadFiles,
		},
		resources: map[Resource][]ResourceAction{
			ResourceFiles: {Any(ActionRead), Any(ActionCreate), Own(ActionUpdate), Own(ActionDelete), Any(ActionDownload)},
		},
	},
	Admin: {
		name:        "Administrator",
		description: "Full admin access to system and organization",
		level:       LevelAdmin,
		permissions: []Permission{
			PermViewFiles,
			PermCreateFiles,
			PermEditAllFiles,
			PermDeleteAllFiles,
			PermUploadFiles,
			PermDownloadFiles,
			PermManageUsers,
			PermViewSystemStats,
			PermManageAPIKeys,
			PermViewReports,
			PermSearchFiles,
		},
		resources: map[Resource][]ResourceAction{
			ResourceFiles:   append(slices.Clone(crud), Any(ActionDownload)),
			ResourceUsers:   crud,
			ResourceReports: crud,
			ResourceAPIKeys: crud,
		},
	},
	Owner: {
		name:        "Owner",
		description: "Complete ownership of organization",
		level:       LevelOwner,
		permissions: []Permission{
			PermViewFiles,
			PermCreateFiles,
			PermEditAllFiles,
			PermDeleteAllFiles,
			PermUploadFiles,
			PermDownloadFiles,
			PermManageUsers,
			PermManageOrganizations,
			PermViewSystemStats,
			PermManageAPIKeys,
			PermViewReports,
			PermSearchFiles,
			PermManageSettings,
		},
		resources: map[Resource][]ResourceAction{
			ResourceFiles:        append(slices.Clone(crud), Any(ActionDownload)),
			ResourceUsers:        crud,
			ResourceReports:      crud,
			ResourceAPIKeys:      crud,
			ResourceOrganization: {Any(ActionRead), Any(ActionUpdate), Any(ActionDelete)},
			ResourceSettings:     {Any(ActionRead), Any(ActionUpdate), Any(ActionDelete)},
		},
	},
}

// Registry is an immutable table of roles keyed by lower-case name.
type Registry struct {
	roles   map[string]*Role
	ordered []*Role // by level, ascending
}

var builtin = newRegistry(builtinDefs)

// Builtin returns the registry holding the four built-in roles.
func Builtin() *Registry { return builtin }

func newRegistry(defs map[string]roleDef) *Registry {
	reg := &Registry{
		roles:   make(map[string]*Role, len(defs)),
		ordered: make([]*Role, 0, len(defs)),
	}
	for key, def := range defs {
		r := newRole(key, def)
		reg.roles[key] = r
		reg.ordered = append(reg.ordered, r)
	}
	slices.SortFunc(reg.ordered, func(a, b *Role) int { return int(a.level - b.level) })
	return reg
}

// Get looks a role up by name, case-insensitively. It returns nil for unknown names.
func (reg *Registry) Get(name string) *Role {
	return reg.roles[strings.ToLower(name)]
}

// LevelOf returns the level of the named role, or LevelViewer when the role is unknown.
func (reg *Registry) LevelOf(name string) Level {
	if r := reg.Get(name); r != nil {
		return r.level
	}
	return LevelViewer
}

// CanManage reports whether the manager role is strictly above the target role.
func (reg *Registry) CanManage(manager, target string) bool {
	return reg.LevelOf(manager) > reg.LevelOf(target)
}

// All returns every role ordered by level, lowest first.
func (reg *Registry) All() []*Role {
	return slices.Clone(reg.ordered)
}

// Keys returns the role keys ordered by level, lowest first.
func (reg *Registry) Keys() []string {
	out := make([]string, 0, len(reg.ordered))
	for _, r := range reg.ordered {
		out = append(out, r.key)
	}
	return out
}

// AboveLevel returns the roles whose level is at or above the given level.
func (reg *Registry) AboveLevel(level Level) []*Role {
	out := make([]*Role, 0, len(reg.ordered))
	for _, r := range reg.ordered {
		if r.level >= level {
			out = append(out, r)
		}
	}
	return out
}

// FormatName returns the display name of the role, or the raw input with its
// first letter upper-cased when the role is unknown.
func (reg *Registry) FormatName(name string) string {
	if r := reg.Get(name); r != nil {
		return r.name
	}
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return name
	}
	return cases.Upper(language.Und).String(string(first)) + name[size:]
}

// Get looks a built-in role up by name, case-insensitively.
func Get(name string) *Role { return builtin.Get(name) }

// LevelOf returns the level of a built-in role, defaulting to LevelViewer.
func LevelOf(name string) Level { return builtin.LevelOf(name) }

// CanManage reports whether manager is strictly above target in the built-in hierarchy.
func CanManage(manager, target string) bool { return builtin.CanManage(manager, target) }

// All returns the built-in roles ordered by level.
func All() []*Role { return builtin.All() }

// AboveLevel returns the built-in roles at or above level.
func AboveLevel(level Level) []*Role { return builtin.AboveLevel(level) }

// FormatName returns the display name for a role name.
func FormatName(name string) string { return builtin.FormatName(name) }
