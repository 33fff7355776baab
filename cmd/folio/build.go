package main

import (
	"fmt"
	"folio/internal/build"
	"time"

	"github.com/spf13/cobra"
)

func newBuildCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site into the public directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(opts)
			if err != nil {
				return err
			}
			defer e.Close()
			if out != "" {
				e.cfg.Build.PublicDir = out
			}

			b := &build.Builder{Cfg: e.cfg, Repo: e.repo, Cache: e.cache, Log: e.log}
			res, err := b.Run(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "built %d pages from %d entries in %s\n",
				res.Pages, res.Entries, res.Duration.Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (overrides build.public_dir)")
	return cmd
}
