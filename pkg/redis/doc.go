// Package redis connects to Redis with retries and provides the shared token
// denylist used by jwt.Middleware when several service instances run behind a
// load balancer.
package redis
