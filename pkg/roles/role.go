package roles

import (
	"slices"
	"strings"
)

// Role is a named, leveled bundle of grants. Roles are immutable; accessors
// that return collections hand out fresh copies.
type Role struct {
	key         string
	name        string
	description string
	level       Level
	permissions map[Permission]struct{}
	resources   map[Resource]map[ResourceAction]struct{}
}

// Key returns the lower-case registry key ("viewer", "owner", ...).
func (r *Role) Key() string { return r.key }

// Name returns the display name.
func (r *Role) Name() string { return r.name }

// Description returns a short human-readable summary of the role.
func (r *Role) Description() string { return r.description }

// Level returns the hierarchy level of the role.
func (r *Role) Level() Level { return r.level }

// Has reports whether the role is granted the global permission. Exact match only.
func (r *Role) Has(p Permission) bool {
	_, ok := r.permissions[p]
	return ok
}

// Permissions returns the global permission tokens granted to the role, sorted.
func (r *Role) Permissions() []Permission {
	out := make([]Permission, 0, len(r.permissions))
	for p := range r.permissions {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Resources returns the resource types the role has an entry for,
// in the canonical order of the Resources list.
func (r *Role) Resources() []Resource {
	out := make([]Resource, 0, len(r.resources))
	for _, res := range Resources {
		if _, ok := r.resources[res]; ok {
			out = append(out, res)
		}
	}
	return out
}

// HasResource reports whether the role has an entry for the resource type.
// An entry may exist and still be empty.
func (r *Role) HasResource(res Resource) bool {
	_, ok := r.resources[res]
	return ok
}

// Grants reports whether the role's entry for res contains exactly ra.
// It returns false when the role has no entry for res.
func (r *Role) Grants(res Resource, ra ResourceAction) bool {
	actions, ok := r.resources[res]
	if !ok {
		return false
	}
	_, ok = actions[ra]
	return ok
}

// ResourceActions returns the actions granted on res, sorted by wire token.
// The boolean is false when the role has no entry for res.
func (r *Role) ResourceActions(res Resource) ([]ResourceAction, bool) {
	actions, ok := r.resources[res]
	if !ok {
		return nil, false
	}
	out := make([]ResourceAction, 0, len(actions))
	for ra := range actions {
		out = append(out, ra)
	}
	slices.SortFunc(out, func(a, b ResourceAction) int {
		return strings.Compare(a.String(), b.String())
	})
	return out, true
}

type roleDef struct {
	name        string
	description string
	level       Level
	permissions []Permission
	resources   map[Resource][]ResourceAction
}

func newRole(key string, def roleDef) *Role {
	r := &Role{
		key:         key,
		name:        def.name,
		description: def.description,
		level:       def.level,
		permissions: make(map[Permission]struct{}, len(def.permissions)),
		resources:   make(map[Resource]map[ResourceAction]struct{}, len(def.resources)),
	}
	for _, p := range def.permissions {
		r.permissions[p] = struct{}{}
	}
	for res, actions := range def.resources {
		set := make(map[ResourceAction]struct{}, len(actions))
		for _, ra := range actions {
			set[ra] = struct{}{}
		}
		r.resources[res] = set
	}
	return r
}
