package jwt

import "context"

type claimsCtxKey struct{}
type tokenCtxKey struct{}

// SetClaims stores verified claims in ctx.
func SetClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey{}, c)
}

// GetClaims returns the claims stored by the middleware.
func GetClaims(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsCtxKey{}).(*Claims)
	return c, ok && c != nil
}

// SetToken stores the raw token string in ctx.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

// GetToken returns the raw token string stored by the middleware.
func GetToken(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tokenCtxKey{}).(string)
	return t, ok
}
