// Package clientip resolves the caller's address from proxy headers or the
// connection and attaches it to the request context for logging.
//
// Only headers listed in the resolver are trusted. Deployments that are not
// behind a proxy should pass no headers so that RemoteAddr is always used.
package clientip
