package jwt

import "errors"

var (
	ErrMissingSecret = errors.New("jwt: missing signing secret")
	ErrMissingToken  = errors.New("jwt: missing token")
	ErrInvalidToken  = errors.New("jwt: invalid token")
	ErrRevokedToken  = errors.New("jwt: token has been revoked")
	ErrMissingRole   = errors.New("jwt: token carries no role")
)
