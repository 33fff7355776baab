package main

import (
	"errors"
	"fmt"
	"folio/internal/i18n"
	"sort"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the content collection and translation tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(opts)
			if err != nil {
				return err
			}
			defer e.Close()
			w := cmd.OutOrStdout()

			var problems []error
			entries, err := e.repo.LoadAll(cmd.Context())
			if err != nil {
				problems = append(problems, err)
			} else {
				fmt.Fprintf(w, "%d entries ok\n", len(entries))
			}

			for _, lang := range e.cfg.Site.Languages {
				if !i18n.Supported(lang) {
					problems = append(problems, fmt.Errorf("no translation table for %q", lang))
					continue
				}
				missing := i18n.MissingKeys(lang)
				sort.Strings(missing)
				for _, key := range missing {
					problems = append(problems, fmt.Errorf("%s: missing translation %q", lang, key))
				}
			}
			return errors.Join(problems...)
		},
	}
}
