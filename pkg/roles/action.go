package roles

import (
	"errors"
	"fmt"
	"strings"
)

// Resource is a resource type that roles can be granted actions on.
type Resource string

const (
	ResourceFiles        Resource = "files"
	ResourceUsers        Resource = "users"
	ResourceReports      Resource = "reports"
	ResourceAPIKeys      Resource = "api_keys"
	ResourceOrganization Resource = "organization"
	ResourceSettings     Resource = "settings"
)

// Resources lists every known resource type.
var Resources = []Resource{
	ResourceFiles,
	ResourceUsers,
	ResourceReports,
	ResourceAPIKeys,
	ResourceOrganization,
	ResourceSettings,
}

func (r Resource) String() string { return string(r) }

// Valid reports whether r is one of the known resource types.
func (r Resource) Valid() bool {
	switch r {
	case ResourceFiles, ResourceUsers, ResourceReports, ResourceAPIKeys, ResourceOrganization, ResourceSettings:
		return true
	}
	return false
}

// ParseResource converts a wire token into a Resource.
func ParseResource(s string) (Resource, error) {
	r := Resource(s)
	if !r.Valid() {
		return "", errors.Join(ErrUnknownResource, fmt.Errorf("resource %q", s))
	}
	return r, nil
}

// Action is a bare verb that can be performed on a resource.
type Action string

const (
	ActionRead     Action = "read"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionDownload Action = "download"
)

// Actions lists every known action.
var Actions = []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionDownload}

func (a Action) String() string { return string(a) }

// ActionTokens returns the wire tokens of every action, each followed by
// its owner-scoped form.
func ActionTokens() []string {
	out := make([]string, 0, 2*len(Actions))
	for _, a := range Actions {
		out = append(out, Any(a).String(), Own(a).String())
	}
	return out
}

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionDownload:
		return true
	}
	return false
}

// Scope qualifies an action. ScopeOwn restricts it to resources owned by the caller.
type Scope uint8

const (
	ScopeAny Scope = iota
	ScopeOwn
)

// ownSuffix is the wire suffix of owner-scoped actions.
const ownSuffix = ":own"

// ResourceAction is an action together with its scope.
// Its wire form is the bare action ("update") or the action with the
// owner suffix ("update:own").
type ResourceAction struct {
	Action Action
	Scope  Scope
}

// Any returns the unscoped form of a.
func Any(a Action) ResourceAction { return ResourceAction{Action: a, Scope: ScopeAny} }

// Own returns the owner-scoped form of a.
func Own(a Action) ResourceAction { return ResourceAction{Action: a, Scope: ScopeOwn} }

// String returns the wire token.
func (ra ResourceAction) String() string {
	if ra.Scope == ScopeOwn {
		return string(ra.Action) + ownSuffix
	}
	return string(ra.Action)
}

// OwnerScoped reports whether the action only applies to owned resources.
func (ra ResourceAction) OwnerScoped() bool { return ra.Scope == ScopeOwn }

// Unscoped returns the same action without the owner restriction.
func (ra ResourceAction) Unscoped() ResourceAction { return Any(ra.Action) }

// ParseResourceAction converts a wire token such as "read" or "delete:own"
// into a ResourceAction. Unknown verbs and unknown qualifiers are rejected.
func ParseResourceAction(s string) (ResourceAction, error) {
	verb, scoped := strings.CutSuffix(s, ownSuffix)
	a := Action(verb)
	if !a.Valid() {
		return ResourceAction{}, errors.Join(ErrUnknownAction, fmt.Errorf("action %q", s))
	}
	if scoped {
		return Own(a), nil
	}
	return Any(a), nil
}

// MarshalText implements encoding.TextMarshaler using the wire token.
func (ra ResourceAction) MarshalText() ([]byte, error) {
	return []byte(ra.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ra *ResourceAction) UnmarshalText(b []byte) error {
	parsed, err := ParseResourceAction(string(b))
	if err != nil {
		return err
	}
	*ra = parsed
	return nil
}
