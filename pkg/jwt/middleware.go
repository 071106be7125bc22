package jwt

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wikiai/kbaccess/pkg/logger"
	"github.com/wikiai/kbaccess/pkg/rbac"
)

// CookieName is the cookie consulted when no Authorization header is sent.
const CookieName = "auth_token"

type middlewareConfig struct {
	denylist Denylist
	log      *slog.Logger
	optional bool
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithDenylist rejects tokens whose id has been revoked.
func WithDenylist(d Denylist) MiddlewareOption {
	return func(c *middlewareConfig) { c.denylist = d }
}

// WithLogger logs rejected tokens.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) { c.log = l }
}

// Optional lets requests without a token through unauthenticated.
// Requests with an invalid token are still rejected.
func Optional() MiddlewareOption {
	return func(c *middlewareConfig) { c.optional = true }
}

// Middleware verifies the caller's token and attaches the claims and the
// derived rbac.PermissionContext to the request context.
func Middleware(svc *Service, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	log := logger.OrNoop(cfg.log).With(logger.Component("jwt"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := ExtractToken(r)
			if token == "" {
				if cfg.optional {
					next.ServeHTTP(w, r)
					return
				}
				writeUnauthorized(w, ErrMissingToken)
				return
			}

			claims, err := svc.Parse(token)
			if err != nil {
				log.InfoContext(ctx, "token rejected", logger.Error(err))
				writeUnauthorized(w, ErrInvalidToken)
				return
			}

			if cfg.denylist != nil {
				revoked, err := cfg.denylist.IsRevoked(ctx, claims.ID)
				if err != nil {
					log.ErrorContext(ctx, "denylist lookup failed", logger.TokenID(claims.ID), logger.Error(err))
					writeUnauthorized(w, ErrInvalidToken)
					return
				}
				if revoked {
					log.InfoContext(ctx, "revoked token used", logger.TokenID(claims.ID), logger.UserID(claims.Subject))
					writeUnauthorized(w, ErrRevokedToken)
					return
				}
			}

			ctx = SetToken(ctx, token)
			ctx = SetClaims(ctx, claims)
			ctx = rbac.WithContext(ctx, claims.PermissionContext())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractToken returns the bearer token from the Authorization header or the
// auth_token cookie, or "" when neither is present.
func ExtractToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	msg := "unauthorized"
	if errors.Is(err, ErrRevokedToken) {
		msg = "token revoked"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
