package authzapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wikiai/kbaccess/pkg/roles"
)

type roleView struct {
	Key         string              `json:"key" yaml:"key"`
	Name        string              `json:"name" yaml:"name"`
	Description string              `json:"description" yaml:"description"`
	Level       int                 `json:"level" yaml:"level"`
	Permissions []string            `json:"permissions" yaml:"permissions"`
	Resources   map[string][]string `json:"resources" yaml:"resources"`
}

func newRoleView(r *roles.Role) roleView {
	perms := r.Permissions()
	view := roleView{
		Key:         r.Key(),
		Name:        r.Name(),
		Description: r.Description(),
		Level:       int(r.Level()),
		Permissions: make([]string, 0, len(perms)),
		Resources:   make(map[string][]string),
	}
	for _, p := range perms {
		view.Permissions = append(view.Permissions, p.String())
	}
	for _, res := range r.Resources() {
		actions, _ := r.ResourceActions(res)
		tokens := make([]string, 0, len(actions))
		for _, ra := range actions {
			tokens = append(tokens, ra.String())
		}
		view.Resources[res.String()] = tokens
	}
	return view
}

func (s *Server) handleListRoles(w http.ResponseWriter, r *http.Request) {
	all := s.validator.Registry().All()
	views := make([]roleView, 0, len(all))
	for _, role := range all {
		views = append(views, newRoleView(role))
	}
	if wantsYAML(r) {
		writeYAML(w, http.StatusOK, views)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetRole(w http.ResponseWriter, r *http.Request) {
	role := s.validator.Registry().Get(chi.URLParam(r, "name"))
	if role == nil {
		writeError(w, http.StatusNotFound, "role not found")
		return
	}
	view := newRoleView(role)
	if wantsYAML(r) {
		writeYAML(w, http.StatusOK, view)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
