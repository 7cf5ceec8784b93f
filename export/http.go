package export

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/flowmetric/histz"
)

// Config configures the scrape HTTP endpoint. Listen empty means "don't
// listen" (the caller mounts Handler onto their own mux instead).
type Config struct {
	Listen string // e.g. ":9090"; empty disables Serve's own listener
	Path   string // e.g. "/metrics"
}

// DefaultConfig mirrors the conventional Prometheus scrape path.
func DefaultConfig() Config {
	return Config{Listen: ":9090", Path: "/metrics"}
}

// Handler returns an http.Handler that scrapes registry through a
// dedicated prometheus.Registry — never the global
// prometheus.DefaultRegisterer, so multiple histz.Registry instances in one
// process (the whole point of histz's instance-isolated Registry) can each
// get their own scrape handler without colliding.
func Handler(registry *histz.Registry, logger *zap.Logger) http.Handler {
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(NewCollector(registry, logger))
	return promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server exposing registry at cfg.Path and blocks
// until ctx is cancelled, then closes the server with http.Server.Close,
// which drops open connections rather than draining them. Grounded
// on the teacher pack's own goroutine-plus-mux pattern for mounting
// promhttp.Handler() (see ceyewan-genesis/metrics).
func Serve(ctx context.Context, cfg Config, registry *histz.Registry, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Listen == "" {
		return errors.New("export: Config.Listen must be set to use Serve")
	}
	path := cfg.Path
	if path == "" {
		path = "/metrics"
	}

	mux := http.NewServeMux()
	mux.Handle(path, Handler(registry, logger))
	server := &http.Server{Addr: cfg.Listen, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting metrics server", zap.String("addr", cfg.Listen), zap.String("path", path))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		logger.Info("stopping metrics server", zap.String("addr", cfg.Listen))
		shutdownErr := server.Close()
		<-errCh
		return shutdownErr
	case err := <-errCh:
		return err
	}
}
