package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/wikiai/kbaccess/pkg/rbac"
)

// Config is the env-driven token configuration.
type Config struct {
	Secret string        `env:"JWT_SECRET,required,notEmpty"`
	Issuer string        `env:"JWT_ISSUER" envDefault:"kbaccess"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"1h"`
}

// Claims are the claims of an access token.
type Claims struct {
	Role           string `json:"role"`
	OrganizationID string `json:"org,omitempty"`
	gojwt.RegisteredClaims
}

// PermissionContext returns the caller description used for authorization checks.
func (c *Claims) PermissionContext() rbac.PermissionContext {
	return rbac.PermissionContext{
		UserRole:       c.Role,
		UserID:         c.Subject,
		OrganizationID: c.OrganizationID,
	}
}

// ExpiresAtTime returns the expiration, or the zero time when unset.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Service signs and verifies access tokens.
type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// New returns a Service. TTL defaults to one hour.
func New(cfg Config) (*Service, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token for the user with the given role and organization.
func (s *Service) Issue(userID, role, organizationID string) (string, *Claims, error) {
	if role == "" {
		return "", nil, ErrMissingRole
	}
	now := s.now()
	claims := &Claims{
		Role:           role,
		OrganizationID: organizationID,
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			Issuer:    s.issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign access token: %w", err)
	}
	return signed, claims, nil
}

// Parse verifies token and returns its claims. Only HS256 tokens with an
// expiration, a matching issuer and a role are accepted.
func (s *Service) Parse(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, gojwt.WithIssuer(s.issuer))
	}

	claims := &Claims{}
	_, err := gojwt.ParseWithClaims(token, claims, func(*gojwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if claims.Role == "" {
		return nil, ErrMissingRole
	}
	return claims, nil
}
