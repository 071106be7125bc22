// Package roles holds the built-in role registry of the knowledge base:
// the four tenant roles, their hierarchy levels, global permission tokens and
// per-resource action grants.
//
// The registry is a compile-time table. It is built once at package
// initialisation and never mutated, so every lookup is safe for concurrent use
// without locking.
//
// Key concepts:
//
//   - Level: ordinal rank Viewer < Editor < Admin < Owner. A higher level does
//     not imply a superset of permissions; each role enumerates its own grants.
//   - Permission: a global "verb:object" token such as "view:files".
//   - Resource and ResourceAction: per-resource grants. An action may be
//     owner-scoped ("update:own"), which is modelled as an Action plus a Scope
//     instead of string surgery.
//
// Role names are case-insensitive. Unknown names resolve to no role, and
// LevelOf falls back to the lowest level so an unknown role is never treated
// as more privileged than a viewer.
//
// Basic usage:
//
//	role := roles.Get("Editor")
//	if role != nil && role.Has(roles.PermUploadFiles) {
//	    // ...
//	}
//
//	if roles.CanManage("admin", "editor") {
//	    // admins may assign the editor role
//	}
package roles
