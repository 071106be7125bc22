package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wikiai/kbaccess/pkg/authzapi"
	"github.com/wikiai/kbaccess/pkg/clientip"
	"github.com/wikiai/kbaccess/pkg/environment"
	"github.com/wikiai/kbaccess/pkg/httpserver"
	"github.com/wikiai/kbaccess/pkg/jwt"
	"github.com/wikiai/kbaccess/pkg/logger"
	"github.com/wikiai/kbaccess/pkg/rbac"
	"github.com/wikiai/kbaccess/pkg/redis"
)

func serveCmd(load func() (Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(ctx context.Context, cfg Config) error {
	log := newLogger(cfg)
	logger.SetAsDefault(log)

	tokens, err := jwt.New(cfg.JWT)
	if err != nil {
		return fmt.Errorf("jwt: %w", err)
	}

	opts := []authzapi.Option{
		authzapi.WithLogger(log),
		authzapi.WithEnvironment(environment.Parse(cfg.Env)),
		authzapi.WithClientIP(clientip.NewResolver(cfg.TrustedHeaders...)),
	}

	if cfg.RedisEnabled {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("redis close failed", logger.Error(err))
			}
		}()
		opts = append(opts,
			authzapi.WithDenylist(redis.NewDenylist(client, cfg.Redis.KeyPrefix)),
			authzapi.WithReadinessChecks(redis.Healthcheck(client)),
		)
		log.Info("token denylist backed by redis")
	} else {
		log.Warn("token denylist is in-memory; revocations are lost on restart")
	}

	api := authzapi.New(rbac.New(rbac.WithLogger(log)), tokens, opts...)
	srv := httpserver.New(cfg.HTTP, log)
	return srv.Run(ctx, api.Routes())
}
