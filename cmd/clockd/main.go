// Package main is the entrypoint for the clockd service.
// clockd serves the current civil time in the process locale over HTTP.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/aelexs/civiltime/internal/clockd/port"
	"github.com/aelexs/civiltime/internal/config"
	"github.com/aelexs/civiltime/internal/observability"
	"github.com/aelexs/civiltime/internal/server"
	"github.com/aelexs/civiltime/pkg/civiltime"
)

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return server.Run(ctx, server.Params{
		Name:           "clockd",
		PortFromConfig: func(cfg *config.Config) int { return cfg.HTTP.Port },
		Register:       register,
	}, nil)
}

func register(mux *http.ServeMux, d server.Deps) error {
	metrics, err := observability.NewClockMetrics(observability.Meter(observability.InstrumentationName))
	if err != nil {
		return fmt.Errorf("create clock metrics: %w", err)
	}

	svc := civiltime.New(
		civiltime.WithMetrics(metrics),
		civiltime.WithLogger(d.Logger),
	)
	port.NewHTTPHandler(svc, d.Logger).Register(mux)
	return nil
}
