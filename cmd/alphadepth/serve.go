// serve.go - HTTP server mode
package main

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lgbarn/alphadepth-go/internal/config"
	"github.com/lgbarn/alphadepth-go/internal/position"
	"github.com/lgbarn/alphadepth-go/internal/server"
)

// serve runs the HTTP API until ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config, svc *position.Service, log zerolog.Logger) error {
	router := server.NewRouter(svc, cfg.Server, programVersion, log)
	return server.ListenAndServe(ctx, cfg.Server, router, log)
}
