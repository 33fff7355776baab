package main

import (
	"fmt"
	"folio/internal/blog"
	"folio/internal/domain/content"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newRelatedCmd(opts *options) *cobra.Command {
	var (
		lang  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "related <slug>",
		Short: "List the posts related to a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(opts)
			if err != nil {
				return err
			}
			defer e.Close()
			if lang == "" {
				lang = e.cfg.Site.DefaultLang
			}
			if limit <= 0 {
				limit = e.cfg.Blog.RelatedLimit
			}

			entries, err := e.repo.LoadAll(cmd.Context())
			if err != nil {
				return err
			}
			src, ok := blog.FindBySlug(entries, lang, args[0])
			if !ok {
				return fmt.Errorf("no %s post with slug %q", lang, args[0])
			}

			related := blog.Related(entries, src, lang, limit)
			if len(related) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no related posts")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Slug", "Title", "Published", "Shared", "Tags"})
			for _, c := range related {
				t.AppendRow(table.Row{
					c.Entry.Slug,
					c.Entry.Data.Title,
					formatDate(c.Entry),
					c.SharedCount,
					strings.Join(c.SharedTags, ", "),
				})
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "language of the post (default site.default_lang)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of results (default blog.related_limit)")
	return cmd
}

func formatDate(e content.Entry) string {
	if !e.HasPubDate() {
		return "-"
	}
	return e.Data.PubDate.Format("2006-01-02")
}
