package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/imposer/internal/server"
	"github.com/matzehuels/imposer/pkg/cache"
	"github.com/matzehuels/imposer/pkg/pipeline"
)

type serveOpts struct {
	addr      string
	redisURL  string
	maxUpload int64
	noCache   bool
}

func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:      ":8080",
		redisURL:  os.Getenv("IMPOSER_REDIS_URL"),
		maxUpload: server.DefaultMaxUpload,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the imposition API over HTTP",
		Long: `Serve plans and proofs over HTTP. Instances can share a Redis cache
with --redis (or IMPOSER_REDIS_URL); otherwise the local file cache is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var cc cache.Cache
			var keyer cache.Keyer
			var err error
			switch {
			case opts.noCache:
				cc = cache.NewNullCache()
			case opts.redisURL != "":
				c.Logger.Info("connecting to redis")
				cc, err = cache.NewRedisCache(ctx, opts.redisURL)
				keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName+":")
			default:
				cc, err = newCache(false)
			}
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(cc, keyer, c.Logger)
			defer runner.Close()

			srv := server.New(runner, c.Logger, server.WithMaxUpload(opts.maxUpload))
			return srv.ListenAndServe(ctx, opts.addr)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", opts.redisURL, "redis URL for a shared cache (redis://host:6379/0)")
	cmd.Flags().Int64Var(&opts.maxUpload, "max-upload", opts.maxUpload, "largest accepted upload in bytes")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	return cmd
}
