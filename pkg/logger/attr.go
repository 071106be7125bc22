package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under the key "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return Group("errors", as...)
}

// optString returns an empty Attr for an empty value so slog drops it.
func optString(key, value string) slog.Attr {
	if value == "" {
		return slog.Attr{}
	}
	return slog.String(key, value)
}

// UserID records the acting user under "user_id".
func UserID(id string) slog.Attr { return optString("user_id", id) }

// OrganizationID records the tenant under "organization_id".
func OrganizationID(id string) slog.Attr { return optString("organization_id", id) }

// Role records a role name under "role". An empty role is recorded as-is,
// since a missing role is itself worth seeing in authorization logs.
func Role(role string) slog.Attr { return slog.String("role", role) }

// TargetRole records the role of the user being acted upon.
func TargetRole(role string) slog.Attr { return optString("target_role", role) }

// Permission records a global permission token.
func Permission(p string) slog.Attr { return slog.String("permission", p) }

// Resource records a resource type.
func Resource(r string) slog.Attr { return slog.String("resource", r) }

// ResourceID records a resource instance identifier.
func ResourceID(id string) slog.Attr { return optString("resource_id", id) }

// Action records an action token.
func Action(a string) slog.Attr { return slog.String("action", a) }

// Decision records the outcome of an authorization check.
func Decision(allowed bool) slog.Attr {
	if allowed {
		return slog.String("decision", "allow")
	}
	return slog.String("decision", "deny")
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr { return optString("request_id", id) }

// TokenID records a token identifier (jti) under "token_id".
func TokenID(id string) slog.Attr { return optString("token_id", id) }

// Duration records d under "duration".
func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }

// Component records the component name.
func Component(name string) slog.Attr { return slog.String("component", name) }

// Handler records the HTTP handler name.
func Handler(name string) slog.Attr { return slog.String("handler", name) }
