package authzapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/wikiai/kbaccess/pkg/clientip"
	"github.com/wikiai/kbaccess/pkg/environment"
	"github.com/wikiai/kbaccess/pkg/guard"
	"github.com/wikiai/kbaccess/pkg/httpserver"
	"github.com/wikiai/kbaccess/pkg/jwt"
	"github.com/wikiai/kbaccess/pkg/logger"
	"github.com/wikiai/kbaccess/pkg/rbac"
	"github.com/wikiai/kbaccess/pkg/requestid"
)

// Server holds the dependencies of the HTTP API.
type Server struct {
	validator *rbac.Validator
	tokens    *jwt.Service
	denylist  jwt.Denylist
	resolver  *clientip.Resolver
	env       environment.Environment
	ready     []func(context.Context) error
	log       *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for access logs and handler errors.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithDenylist sets the store consulted for revoked tokens and written by
// POST /logout. Defaults to an in-memory denylist.
func WithDenylist(d jwt.Denylist) Option {
	return func(s *Server) { s.denylist = d }
}

// WithClientIP sets the resolver used to attach the caller's address.
func WithClientIP(r *clientip.Resolver) Option {
	return func(s *Server) { s.resolver = r }
}

// WithEnvironment attaches env to every request context.
func WithEnvironment(env environment.Environment) Option {
	return func(s *Server) { s.env = env }
}

// WithReadinessChecks adds checks run by GET /health/ready.
func WithReadinessChecks(checks ...func(context.Context) error) Option {
	return func(s *Server) { s.ready = append(s.ready, checks...) }
}

// New returns a Server answering with v and authenticating with tokens.
func New(v *rbac.Validator, tokens *jwt.Service, opts ...Option) *Server {
	s := &Server{
		validator: v,
		tokens:    tokens,
		env:       environment.Development,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.denylist == nil {
		s.denylist = jwt.NewMemoryDenylist()
	}
	if s.resolver == nil {
		s.resolver = clientip.NewResolver()
	}
	s.log = logger.OrNoop(s.log).With(logger.Component("authzapi"))
	return s
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(s.resolver.Middleware)
	r.Use(environment.Middleware(s.env))
	r.Use(s.accessLog)

	r.Get("/health", httpserver.HealthCheckHandler(s.log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(s.log, s.readyChecks()...))

	r.Get("/roles", s.handleListRoles)
	r.Get("/roles/{name}", s.handleGetRole)
	r.Post("/validate", s.handleValidate)

	r.Group(func(r chi.Router) {
		r.Use(jwt.Middleware(s.tokens, jwt.WithDenylist(s.denylist), jwt.WithLogger(s.log)))

		r.Get("/me", s.handleMe)
		r.Post("/logout", s.handleLogout)

		r.Route("/check", func(r chi.Router) {
			r.Post("/permission", s.handleCheckPermission)
			r.Post("/resource", s.handleCheckResource)
			r.Post("/manage-user", s.handleCheckManageUser)
			r.Post("/elevate", s.handleCheckElevate)
			r.Post("/organization", s.handleCheckOrganization)
		})
	})

	return r
}

func (s *Server) readyChecks() []func(context.Context) error {
	if len(s.ready) > 0 {
		return s.ready
	}
	return []func(context.Context) error{func(context.Context) error { return nil }}
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		level := slog.LevelInfo
		if ww.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		s.log.Log(r.Context(), level, "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

// flags is exposed for handlers so /me mirrors the render guards.
func (s *Server) flags(pc rbac.PermissionContext) guard.Flags {
	return guard.Compute(s.validator, pc)
}
