// Package authzapi exposes the role table and permission checks over HTTP so
// that services outside this process can ask the same questions the in-process
// validator answers.
//
// Routes:
//
//	GET  /roles                 all roles, JSON or YAML (Accept: application/yaml)
//	GET  /roles/{name}          one role, 404 when unknown
//	GET  /me                    caller context, flags, permissions and resources
//	POST /check/permission      {"permission"}
//	POST /check/resource        {"resource","action","resourceId","ownerId"}
//	POST /check/manage-user     {"targetUserId","targetUserRole"}
//	POST /check/elevate         {"targetRole"}
//	POST /check/organization    {"action"}
//	POST /validate              any PermissionContext, no token required
//	POST /logout                revokes the caller's token
//	GET  /health, /health/ready liveness and readiness
//
// Check endpoints answer {"allowed": bool}. An unknown role or resource is a
// denial, never a server error. Malformed bodies and unknown action tokens
// are 400.
package authzapi
