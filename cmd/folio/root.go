package main

import (
	"fmt"
	"folio/internal/blog"
	"folio/internal/domain/config"
	"folio/internal/index"
	"folio/internal/ingest"
	"folio/internal/logger"
	"folio/internal/readtime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	debug      bool
	noCache    bool
}

// env is what every subcommand runs against.
type env struct {
	cfg   config.Config
	log   logger.Logger
	cache *index.Store
	repo  *blog.Repository
}

func (e *env) Close() {
	if e.cache != nil {
		if err := e.cache.Close(); err != nil {
			e.log.Warn("close cache", logger.Err(err))
		}
	}
	_ = e.log.Sync()
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Bilingual static blog builder",
		Long: `folio reads a collection of markdown posts with YAML front matter,
computes reading times and related posts, and writes a localized static
site together with its RSS feed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "site.yaml", "path to the site configuration")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.noCache, "no-cache", false, "do not use the reading time cache")

	cmd.AddCommand(
		newBuildCmd(opts),
		newFeedCmd(opts),
		newRelatedCmd(opts),
		newCheckCmd(opts),
		newWatchCmd(opts),
	)
	return cmd
}

func setup(opts *options) (*env, error) {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", opts.configPath, err)
	}
	level := cfg.Log.Level
	if opts.debug {
		level = "debug"
	}
	log, err := logger.New(logger.Config{
		Level:       level,
		Development: cfg.Log.Development || opts.debug,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, log: log}
	if !opts.noCache && cfg.Build.CachePath != "" {
		e.cache = openCache(cfg.Build.CachePath, log)
	}

	repoOpts := []blog.Option{
		blog.WithEstimator(readtime.Estimator{WordsPerMinute: cfg.Blog.WordsPerMinute}),
		blog.WithLogger(log),
	}
	if e.cache != nil {
		repoOpts = append(repoOpts, blog.WithMetricsCache(e.cache))
	}
	e.repo = blog.NewRepository(
		ingest.FileSource{Dir: cfg.Build.SourceDir, Languages: cfg.Site.Languages},
		repoOpts...,
	)
	return e, nil
}

// openCache returns nil when the cache cannot be opened; builds then run uncached.
func openCache(path string, log logger.Logger) *index.Store {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Warn("cache disabled", logger.String("path", path), logger.Err(err))
		return nil
	}
	st, err := index.Open(index.OpenOptions{Path: path})
	if err != nil {
		log.Warn("cache disabled", logger.String("path", path), logger.Err(err))
		return nil
	}
	return st
}
