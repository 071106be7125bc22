// Package jwt issues and verifies the access tokens that identify the caller
// of the knowledge-base API, and turns a verified token into an
// rbac.PermissionContext.
//
// Tokens are HS256-signed with github.com/golang-jwt/jwt/v5. Claims carry the
// user id (sub), the caller's role and organization, and a unique token id
// (jti) used for revocation. Parsing always enforces the signing method and
// requires an expiration.
//
// Middleware extracts a bearer token from the Authorization header (falling
// back to the auth_token cookie), verifies it, consults an optional Denylist,
// and stores both the claims and the derived PermissionContext in the request
// context:
//
//	svc, _ := jwt.New(jwt.Config{Secret: secret, Issuer: "kbaccess", TTL: time.Hour})
//	r.Use(jwt.Middleware(svc, jwt.WithDenylist(list)))
//
// Revoking a token (logout, organization switch) adds its id to the denylist
// until the token would have expired anyway.
package jwt
