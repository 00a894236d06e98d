package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/maandree/hungarian-algorithm-n3/internal/server"
	"github.com/maandree/hungarian-algorithm-n3/pkg/cache"
	"github.com/maandree/hungarian-algorithm-n3/pkg/history"
)

// shutdownTimeout bounds how long in-flight requests may linger once the
// serve command is interrupted.
const shutdownTimeout = 10 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string
	cacheKind string // file, redis or none
	redisAddr string
	mongoURI  string
}

// serveCommand creates the serve command, exposing the solver as an HTTP
// API with result caching and optional MongoDB-backed solve history.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver as an HTTP API",
		Long: `Serve exposes POST /v1/solve, which accepts {"matrix": [[...]]} and
responds with the optimal assignment and its total cost. Identical
matrices are answered from the result cache. With --mongo-uri set, every
solve is recorded and listed at GET /v1/solves.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, else :8080)")
	cmd.Flags().StringVar(&opts.cacheKind, "cache", "", "result cache backend: file, redis or none")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "redis address for --cache redis")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB URI for solve history (empty disables history)")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts serveOpts) error {
	ctx := cmd.Context()
	cfg := c.userConfig().Serve
	if opts.addr == "" {
		opts.addr = cfg.Addr
	}
	if opts.cacheKind == "" {
		opts.cacheKind = cfg.Cache
	}
	if opts.redisAddr == "" {
		opts.redisAddr = cfg.RedisAddr
	}
	if opts.mongoURI == "" {
		opts.mongoURI = cfg.MongoURI
	}

	resultCache, err := c.newCache(ctx, opts)
	if err != nil {
		return err
	}
	defer resultCache.Close()

	store, err := c.newHistory(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	srv := &http.Server{
		Addr:    opts.addr,
		Handler: server.New(c.Logger, resultCache, store),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr, "cache", opts.cacheKind)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newCache builds the configured result-cache backend.
func (c *CLI) newCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch opts.cacheKind {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		rc, err := cache.NewRedisCache(ctx, opts.redisAddr)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis at %s: %w", opts.redisAddr, err)
		}
		return rc, nil
	case "file":
		dir, err := cacheDir()
		if err != nil {
			c.Logger.Warn("cache directory unavailable, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want file, redis or none)", opts.cacheKind)
	}
}

// newHistory builds the solve-history store; without a Mongo URI the
// history endpoints serve empty results.
func (c *CLI) newHistory(ctx context.Context, opts serveOpts) (history.Store, error) {
	if opts.mongoURI == "" {
		return history.NewNullStore(), nil
	}
	store, err := history.NewMongoStore(ctx, opts.mongoURI)
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}
	c.Logger.Info("recording solve history", "uri", opts.mongoURI)
	return store, nil
}
