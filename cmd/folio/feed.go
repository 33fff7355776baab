package main

import (
	"fmt"
	"folio/internal/feed"
	"os"

	"github.com/spf13/cobra"
)

func newFeedCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Write the RSS feed of every post",
		Long: `Write the RSS 2.0 feed of every post in every language, newest first.
Without --out the feed goes to standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			entries, err := e.repo.LoadAll(cmd.Context())
			if err != nil {
				return err
			}
			f := feed.Export(feed.Metadata{
				Title:       e.cfg.Feed.Title,
				Description: e.cfg.Feed.Description,
				Site:        e.cfg.Site.SiteURL,
			}, entries)

			if out == "" {
				return f.WriteRSS(cmd.OutOrStdout())
			}
			return writeFeedFile(out, f)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the feed to this file")
	return cmd
}

// writeFeedFile writes f to path. A failed Close is an error too.
func writeFeedFile(path string, f feed.Feed) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.WriteRSS(fh); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
