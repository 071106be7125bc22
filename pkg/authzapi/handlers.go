package authzapi

import (
	"net/http"
	"time"

	"github.com/wikiai/kbaccess/pkg/environment"
	"github.com/wikiai/kbaccess/pkg/guard"
	"github.com/wikiai/kbaccess/pkg/jwt"
	"github.com/wikiai/kbaccess/pkg/logger"
	"github.com/wikiai/kbaccess/pkg/rbac"
	"github.com/wikiai/kbaccess/pkg/roles"
	"github.com/wikiai/kbaccess/pkg/validator"
)

type meResponse struct {
	Context     rbac.PermissionContext `json:"context"`
	Role        string                 `json:"role"`
	Flags       guard.Flags            `json:"flags"`
	Permissions []roles.Permission     `json:"permissions"`
	Resources   []roles.Resource       `json:"resources"`
}

// permissionContext returns the caller's context. The jwt middleware always
// attaches one, so a miss is answered with 401.
func permissionContext(w http.ResponseWriter, r *http.Request) (rbac.PermissionContext, bool) {
	pc, ok := rbac.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
	}
	return pc, ok
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	pc, ok := permissionContext(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, meResponse{
		Context:     pc,
		Role:        s.validator.Registry().FormatName(pc.UserRole),
		Flags:       s.flags(pc),
		Permissions: s.validator.UserPermissions(pc),
		Resources:   s.validator.AccessibleResources(pc),
	})
}

func (s *Server) handleCheckPermission(w http.ResponseWriter, r *http.Request) {
	pc, ok := permissionContext(w, r)
	if !ok {
		return
	}
	var req struct {
		Permission string `json:"permission"`
	}
	if !bind(w, r, &req, func() []validator.Rule {
		return []validator.Rule{
			validator.RequiredString("permission", req.Permission),
			validator.MaxLenString("permission", req.Permission, maxFieldLen),
		}
	}) {
		return
	}
	writeJSON(w, http.StatusOK, allowedResponse{
		Allowed: s.validator.HasPermission(pc, roles.Permission(req.Permission)),
	})
}

func (s *Server) handleCheckResource(w http.ResponseWriter, r *http.Request) {
	pc, ok := permissionContext(w, r)
	if !ok {
		return
	}
	var req struct {
		Resource   string `json:"resource"`
		Action     string `json:"action"`
		ResourceID string `json:"resourceId"`
		OwnerID    string `json:"ownerId"`
	}
	if !bind(w, r, &req, func() []validator.Rule {
		return []validator.Rule{
			validator.RequiredString("resource", req.Resource),
			validator.MaxLenString("resource", req.Resource, maxFieldLen),
			validator.RequiredString("action", req.Action),
			validator.OneOfString("action", req.Action, roles.ActionTokens()),
			validator.MaxLenString("resourceId", req.ResourceID, maxFieldLen),
			validator.MaxLenString("ownerId", req.OwnerID, maxFieldLen),
		}
	}) {
		return
	}
	ra, err := roles.ParseResourceAction(req.Action)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown action: "+req.Action)
		return
	}
	pc = pc.ForResource(req.Resource, req.ResourceID, req.OwnerID)
	writeJSON(w, http.StatusOK, allowedResponse{
		Allowed: s.validator.HasResourcePermission(pc, roles.Resource(req.Resource), ra),
	})
}

func (s *Server) handleCheckManageUser(w http.ResponseWriter, r *http.Request) {
	pc, ok := permissionContext(w, r)
	if !ok {
		return
	}
	var req struct {
		TargetUserID   string `json:"targetUserId"`
		TargetUserRole string `json:"targetUserRole"`
	}
	if !bind(w, r, &req, func() []validator.Rule {
		return []validator.Rule{
			validator.MaxLenString("targetUserId", req.TargetUserID, maxFieldLen),
			validator.MaxLenString("targetUserRole", req.TargetUserRole, maxFieldLen),
		}
	}) {
		return
	}
	writeJSON(w, http.StatusOK, allowedResponse{
		Allowed: s.validator.CanManageUser(pc, req.TargetUserID, req.TargetUserRole),
	})
}

func (s *Server) handleCheckElevate(w http.ResponseWriter, r *http.Request) {
	pc, ok := permissionContext(w, r)
	if !ok {
		return
	}
	var req struct {
		TargetRole string `json:"targetRole"`
	}
	if !bind(w, r, &req, func() []validator.Rule {
		return []validator.Rule{
			validator.RequiredString("targetRole", req.TargetRole),
			validator.MaxLenString("targetRole", req.TargetRole, maxFieldLen),
		}
	}) {
		return
	}
	writeJSON(w, http.StatusOK, allowedResponse{
		Allowed: s.validator.CanElevateRole(pc, req.TargetRole),
	})
}

func (s *Server) handleCheckOrganization(w http.ResponseWriter, r *http.Request) {
	pc, ok := permissionContext(w, r)
	if !ok {
		return
	}
	var req struct {
		Action string `json:"action"`
	}
	if !bind(w, r, &req, func() []validator.Rule {
		return []validator.Rule{
			validator.OneOfString("action", req.Action, actionNames()),
		}
	}) {
		return
	}
	action := roles.ActionRead
	if req.Action != "" {
		action = roles.Action(req.Action)
	}
	writeJSON(w, http.StatusOK, allowedResponse{
		Allowed: s.validator.CanAccessOrganization(pc, action),
	})
}

func actionNames() []string {
	out := make([]string, 0, len(roles.Actions))
	for _, a := range roles.Actions {
		out = append(out, a.String())
	}
	return out
}

// handleValidate reports on any PermissionContext. Unknown roles are a
// result, not a request error.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var pc rbac.PermissionContext
	if !bind(w, r, &pc, func() []validator.Rule {
		return []validator.Rule{
			validator.MaxLenString("userRole", pc.UserRole, maxFieldLen),
			validator.MaxLenString("organizationId", pc.OrganizationID, maxFieldLen),
			validator.MaxLenString("userId", pc.UserID, maxFieldLen),
			validator.MaxLenString("resourceId", pc.ResourceID, maxFieldLen),
			validator.MaxLenString("resourceType", pc.ResourceType, maxFieldLen),
			validator.MaxLenString("ownerId", pc.OwnerID, maxFieldLen),
		}
	}) {
		return
	}
	writeJSON(w, http.StatusOK, s.validator.ValidateContext(pc))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	claims, ok := jwt.GetClaims(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := s.denylist.Revoke(r.Context(), claims.ID, claims.ExpiresAtTime()); err != nil {
		s.log.ErrorContext(r.Context(), "token revocation failed",
			logger.TokenID(claims.ID),
			logger.UserID(claims.Subject),
			logger.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "logout failed")
		return
	}
	s.log.InfoContext(r.Context(), "token revoked",
		logger.TokenID(claims.ID),
		logger.UserID(claims.Subject),
	)

	http.SetCookie(w, &http.Cookie{
		Name:     jwt.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   environment.IsProduction(r.Context()),
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
