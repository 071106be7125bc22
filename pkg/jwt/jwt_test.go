package jwt_test

import (
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikiai/kbaccess/pkg/jwt"
	"github.com/wikiai/kbaccess/pkg/rbac"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newService(t *testing.T) *jwt.Service {
	t.Helper()
	svc, err := jwt.New(jwt.Config{Secret: testSecret, Issuer: "kbaccess", TTL: time.Hour})
	require.NoError(t, err)
	return svc
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := jwt.New(jwt.Config{})
	assert.ErrorIs(t, err, jwt.ErrMissingSecret)

	svc, err := jwt.New(jwt.Config{Secret: testSecret})
	require.NoError(t, err)
	_, claims, err := svc.Issue("u1", "viewer", "")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAtTime(), time.Minute)
}

func TestIssueAndParse(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	token, issued, err := svc.Issue("u1", "editor", "org-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEmpty(t, issued.ID)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "editor", claims.Role)
	assert.Equal(t, "org-1", claims.OrganizationID)
	assert.Equal(t, issued.ID, claims.ID)
	assert.Equal(t, "kbaccess", claims.Issuer)

	assert.Equal(t, rbac.PermissionContext{
		UserRole:       "editor",
		UserID:         "u1",
		OrganizationID: "org-1",
	}, claims.PermissionContext())
}

func TestIssueRequiresRole(t *testing.T) {
	t.Parallel()
	_, _, err := newService(t).Issue("u1", "", "")
	assert.ErrorIs(t, err, jwt.ErrMissingRole)
}

func TestParseRejects(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	sign := func(t *testing.T, method gojwt.SigningMethod, key any, claims gojwt.Claims) string {
		t.Helper()
		s, err := gojwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := func() jwt.Claims {
		return jwt.Claims{
			Role: "admin",
			RegisteredClaims: gojwt.RegisteredClaims{
				Subject:   "u1",
				Issuer:    "kbaccess",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
	}

	tests := []struct {
		name  string
		token func(t *testing.T) string
		want  error
	}{
		{
			name:  "empty",
			token: func(*testing.T) string { return "" },
			want:  jwt.ErrMissingToken,
		},
		{
			name:  "garbage",
			token: func(*testing.T) string { return "not.a.token" },
			want:  jwt.ErrInvalidToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				c := valid()
				return sign(t, gojwt.SigningMethodHS256, []byte("another-secret-another-secret!!"), &c)
			},
			want: jwt.ErrInvalidToken,
		},
		{
			name: "wrong algorithm",
			token: func(t *testing.T) string {
				c := valid()
				return sign(t, gojwt.SigningMethodHS512, []byte(testSecret), &c)
			},
			want: jwt.ErrInvalidToken,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				c := valid()
				c.ExpiresAt = gojwt.NewNumericDate(time.Now().Add(-time.Minute))
				return sign(t, gojwt.SigningMethodHS256, []byte(testSecret), &c)
			},
			want: jwt.ErrInvalidToken,
		},
		{
			name: "no expiration",
			token: func(t *testing.T) string {
				c := valid()
				c.ExpiresAt = nil
				return sign(t, gojwt.SigningMethodHS256, []byte(testSecret), &c)
			},
			want: jwt.ErrInvalidToken,
		},
		{
			name: "foreign issuer",
			token: func(t *testing.T) string {
				c := valid()
				c.Issuer = "someone-else"
				return sign(t, gojwt.SigningMethodHS256, []byte(testSecret), &c)
			},
			want: jwt.ErrInvalidToken,
		},
		{
			name: "no role",
			token: func(t *testing.T) string {
				c := valid()
				c.Role = ""
				return sign(t, gojwt.SigningMethodHS256, []byte(testSecret), &c)
			},
			want: jwt.ErrMissingRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Parse(tt.token(t))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
