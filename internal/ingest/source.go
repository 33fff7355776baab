package ingest

import (
	"context"
	"errors"
	"fmt"
	"folio/internal/domain/content"
	domainerr "folio/internal/domain/errors"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// FileSource reads a content collection from a directory of markdown files
// with YAML front matter.
type FileSource struct {
	Dir string
	// Languages restricts the accepted lang values; empty accepts any.
	Languages []string
}

type parsed struct {
	entry     content.Entry
	schemaErr error
}

// Load returns every entry in discovery order. Schema violations are all
// reported, joined, and fail the load; I/O errors abort it.
func (s FileSource) Load(ctx context.Context) ([]content.Entry, error) {
	files, err := DiscoverSource(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", s.Dir, err)
	}

	results := make([]parsed, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, sf := range files {
		i, sf := i, sf
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			raw, err := os.ReadFile(sf.Path)
			if err != nil {
				return fmt.Errorf("read %s: %w", sf.Path, err)
			}
			results[i] = s.parseFile(sf, raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var schemaErrs []error
	out := make([]content.Entry, 0, len(results))
	for _, r := range results {
		if r.schemaErr != nil {
			schemaErrs = append(schemaErrs, r.schemaErr)
			continue
		}
		out = append(out, r.entry)
	}
	if len(schemaErrs) > 0 {
		return nil, errors.Join(schemaErrs...)
	}
	return out, nil
}

func (s FileSource) parseFile(sf SourceFile, raw []byte) parsed {
	fm, body, err := ParseFrontMatter(raw)
	if err != nil {
		var ve domainerr.ValidationError
		ve.Add("frontmatter", err.Error())
		return parsed{schemaErr: domainerr.Schema(sf.Rel, ve)}
	}
	if ve := validate(fm, s.Languages); ve.HasAny() {
		return parsed{schemaErr: domainerr.Schema(sf.Rel, ve)}
	}

	// validate has already proven these parse
	pub, _ := ParseTime(fm.PubDate)
	upd, _ := ParseTime(fm.UpdatedDate)
	tags, _ := decodeTags(fm.Tags)

	return parsed{entry: content.Entry{
		ID:   sf.Rel,
		Body: string(body),
		Data: content.Frontmatter{
			Title:       fm.Title,
			Description: fm.Description,
			PubDate:     pub,
			UpdatedDate: upd,
			HeroImage:   fm.HeroImage,
			Lang:        strings.TrimSpace(fm.Lang),
			Author:      fm.Author,
			Tags:        tags,
		},
	}}
}
