package main

import (
	"context"
	"folio/internal/build"
	"folio/internal/logger"
	"folio/internal/watch"
	"time"

	"github.com/spf13/cobra"
)

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Build, then rebuild whenever the content changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			b := &build.Builder{Cfg: e.cfg, Repo: e.repo, Cache: e.cache, Log: e.log}
			rebuild := func(ctx context.Context) error {
				b.Cfg.Build.Now = time.Now()
				_, err := b.Run(ctx)
				return err
			}
			// a broken post must not stop the watcher
			if err := rebuild(cmd.Context()); err != nil {
				e.log.Error("initial build failed", logger.Err(err))
			}

			w := &watch.Watcher{
				Dir:      e.cfg.Build.SourceDir,
				Timeout:  10 * time.Second,
				OnChange: rebuild,
				Log:      e.log,
			}
			return w.Run(cmd.Context())
		},
	}
}
