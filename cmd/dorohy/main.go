// Command dorohy serves the shortest-path visualizer backend: it loads the
// road network from the data directory and exposes the graph-editing and
// search API over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ukrway/dorohy/config"
	"github.com/ukrway/dorohy/loader"
	"github.com/ukrway/dorohy/logger"
	"github.com/ukrway/dorohy/server"
	"github.com/ukrway/dorohy/service"
)

func main() {
	cfg, err := config.Read()
	if err != nil {
		os.Stderr.WriteString("read config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New()
	if err != nil {
		os.Stderr.WriteString("build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	g, err := loader.Load(cfg.DataDir)
	if err != nil {
		return err
	}
	log.Info("road network loaded",
		zap.String("data_dir", cfg.DataDir),
		zap.Int("cities", g.VertexCount()),
		zap.Int("roads", g.EdgeCount()))

	api := server.NewAPI(log,
		service.NewGraphService(g, log),
		service.NewPathService(g, log))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return api.Run(groupCtx, server.Config{
			Port:         cfg.Port,
			Timeout:      cfg.Timeout,
			UseRateLimit: cfg.UseRateLimit,
			RateLimitRPS: cfg.RateLimitRPS,
		})
	})

	go func() {
		sig := server.GracefulShutdown()
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
		cancel()
	}()

	if err := group.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
