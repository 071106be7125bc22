// Command authzd serves the role table and permission checks over HTTP.
//
// Subcommands:
//
//	serve   run the HTTP API
//	token   sign an access token for local testing
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wikiai/kbaccess/pkg/clientip"
	"github.com/wikiai/kbaccess/pkg/config"
	"github.com/wikiai/kbaccess/pkg/environment"
	"github.com/wikiai/kbaccess/pkg/httpserver"
	"github.com/wikiai/kbaccess/pkg/jwt"
	"github.com/wikiai/kbaccess/pkg/logger"
	"github.com/wikiai/kbaccess/pkg/redis"
	"github.com/wikiai/kbaccess/pkg/requestid"
)

// Config is the process configuration assembled from each package's Config.
type Config struct {
	Env            string   `env:"APP_ENV" envDefault:"development"`
	Service        string   `env:"APP_NAME" envDefault:"authzd"`
	RedisEnabled   bool     `env:"REDIS_ENABLED" envDefault:"false"`
	TrustedHeaders []string `env:"HTTP_TRUSTED_HEADERS" envSeparator:","`

	HTTP  httpserver.Config
	JWT   jwt.Config
	Redis redis.Config
	Log   logger.Config
}

func main() {
	var envFiles []string

	root := &cobra.Command{
		Use:           "authzd",
		Short:         "Role registry and permission checks",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load instead of an optional .env")

	load := func() (Config, error) {
		var opts []config.Option
		if len(envFiles) > 0 {
			opts = append(opts, config.WithEnvFiles(envFiles...))
		}
		var cfg Config
		if err := config.Load(&cfg, opts...); err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		return cfg, nil
	}

	root.AddCommand(serveCmd(load), tokenCmd(load))

	if err := root.Execute(); err != nil {
		slog.Error("command failed", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg Config) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.Service),
		logger.FromConfig(cfg.Log),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
}
