// Package config loads environment-driven configuration structs.
//
// Structs declare their variables with caarlos0/env tags:
//
//	type Config struct {
//	    Addr string        `env:"HTTP_ADDR" envDefault:":8080"`
//	    TTL  time.Duration `env:"JWT_TTL" envDefault:"1h"`
//	}
//
// Load reads an optional .env file (via godotenv, never overriding variables
// already set in the process environment) and then parses the environment
// into the struct. Each package of the service owns its own Config type; the
// binary composes them into one struct with `envPrefix`-less embedding.
package config
