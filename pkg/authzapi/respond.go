package authzapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wikiai/kbaccess/pkg/binder"
	"github.com/wikiai/kbaccess/pkg/validator"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeYAML(w http.ResponseWriter, status int, v any) {
	b, err := yaml.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encoding failed")
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func wantsYAML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/yaml") || strings.Contains(accept, "application/x-yaml")
}

var bindJSON = binder.JSON()

// maxFieldLen bounds every string field of a check request.
const maxFieldLen = 128

type errorResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// bind decodes the body into v, then applies the rules returned by rules.
// On failure it writes the response and returns false.
func bind(w http.ResponseWriter, r *http.Request, v any, rules func() []validator.Rule) bool {
	if err := bindJSON(r, v); err != nil {
		switch {
		case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
			writeError(w, http.StatusUnsupportedMediaType, "expected application/json")
		case errors.Is(err, binder.ErrBodyTooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		default:
			writeError(w, http.StatusBadRequest, "invalid request body")
		}
		return false
	}
	if rules == nil {
		return true
	}
	if ve := validator.ExtractValidationErrors(validator.Apply(rules()...)); ve != nil {
		resp := errorResponse{Error: "validation failed", Fields: make(map[string][]string)}
		for _, field := range ve.Fields() {
			resp.Fields[field] = ve.Get(field)
		}
		writeJSON(w, http.StatusBadRequest, resp)
		return false
	}
	return true
}

type allowedResponse struct {
	Allowed bool `json:"allowed"`
}
