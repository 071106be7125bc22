// Package environment carries the deployment environment (development,
// staging, production) through configuration and request contexts.
package environment
