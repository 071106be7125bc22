package roles

import "errors"

var (
	// ErrUnknownResource is returned when a resource token is not one of the known resource types.
	ErrUnknownResource = errors.New("roles.unknown_resource")

	// ErrUnknownAction is returned when an action token cannot be parsed.
	ErrUnknownAction = errors.New("roles.unknown_action")
)
