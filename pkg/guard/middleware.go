package guard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wikiai/kbaccess/pkg/logger"
	"github.com/wikiai/kbaccess/pkg/rbac"
	"github.com/wikiai/kbaccess/pkg/roles"
)

// Gate wraps handlers behind authorization checks.
type Gate struct {
	v   *rbac.Validator
	log *slog.Logger
}

// NewGate returns a Gate using v. A nil logger disables denial logging.
func NewGate(v *rbac.Validator, log *slog.Logger) *Gate {
	return &Gate{v: v, log: logger.OrNoop(log).With(logger.Component("guard"))}
}

// RequirePermission allows requests whose caller holds perm.
func (g *Gate) RequirePermission(perm roles.Permission) func(http.Handler) http.Handler {
	return g.require("permission "+perm.String(), func(pc rbac.PermissionContext) bool {
		return g.v.HasPermission(pc, perm)
	})
}

// RequireResource allows requests whose caller may perform ra on res.
func (g *Gate) RequireResource(res roles.Resource, ra roles.ResourceAction) func(http.Handler) http.Handler {
	return g.require(res.String()+" "+ra.String(), func(pc rbac.PermissionContext) bool {
		return g.v.HasResourcePermission(pc, res, ra)
	})
}

// RequireRole allows requests whose caller has one of the named roles.
func (g *Gate) RequireRole(names ...string) func(http.Handler) http.Handler {
	return g.require("role "+strings.Join(names, "|"), func(pc rbac.PermissionContext) bool {
		if g.v.Registry().Get(pc.UserRole) == nil {
			return false
		}
		for _, name := range names {
			if strings.EqualFold(name, pc.UserRole) {
				return true
			}
		}
		return false
	})
}

// RequireLevel allows requests whose caller's role is at or above level.
// Unknown roles are rejected even when level is LevelViewer.
func (g *Gate) RequireLevel(level roles.Level) func(http.Handler) http.Handler {
	return g.require("level "+level.String(), func(pc rbac.PermissionContext) bool {
		r := g.v.Registry().Get(pc.UserRole)
		return r != nil && r.Level() >= level
	})
}

func (g *Gate) require(what string, allow func(rbac.PermissionContext) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pc, ok := rbac.FromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if !allow(pc) {
				g.log.InfoContext(r.Context(), "request denied",
					slog.String("requires", what),
					logger.Role(pc.UserRole),
					logger.UserID(pc.UserID),
					slog.String("path", r.URL.Path),
				)
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
