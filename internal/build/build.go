package build

import (
	"bytes"
	"context"
	"fmt"
	"folio/internal/app"
	"folio/internal/blog"
	"folio/internal/domain/config"
	"folio/internal/domain/content"
	"folio/internal/domain/site"
	"folio/internal/feed"
	"folio/internal/i18n"
	"folio/internal/index"
	"folio/internal/logger"
	"folio/internal/render"
	"html/template"
	"os"
	"path/filepath"
	"time"
)

type Builder struct {
	Cfg  config.Config
	Repo *blog.Repository
	// Cache, when set, is pruned to the stats of the current corpus.
	Cache *index.Store
	Log   logger.Logger
}

type Result struct {
	Entries  int
	Pages    int
	Duration time.Duration
}

func (b *Builder) logger() logger.Logger {
	if b.Log == nil {
		return logger.NewNop()
	}
	return b.Log
}

func (b *Builder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	entries, err := b.Repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	b.pruneCache(entries)

	tpl, err := render.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	md := render.NewMarkdownRenderer()

	outDir := b.Cfg.Build.PublicDir
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir public: %w", err)
	}

	rb := &app.RouteBuilder{Languages: b.Cfg.Site.Languages, PageSize: b.Cfg.Blog.PageSize}
	routes := rb.Build(entries)

	byLang := make(map[string][]content.Entry, len(b.Cfg.Site.Languages))
	for _, lang := range b.Cfg.Site.Languages {
		byLang[lang] = blog.SortByPubDate(blog.FilterByLanguage(entries, lang))
	}
	byID := make(map[string]content.Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}

	pages := 0
	for _, r := range routes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var data []byte
		switch r.Kind {
		case site.RouteBlog:
			data, err = tpl.RenderList(ctx, render.ListPage{
				Layout: b.layout(r.Lang, site.BlogPage(r.Lang, r.Page), "", byLang[r.Lang]),
				Page:   blog.Paginate(byLang[r.Lang], r.Page, b.Cfg.Blog.PageSize),
			})
		case site.RoutePost:
			data, err = b.renderPost(ctx, tpl, md, byID[r.Key], entries)
		case site.RouteTag:
			data, err = tpl.RenderTag(ctx, render.TagPage{
				Layout: b.layout(r.Lang, site.BlogTag(r.Lang, r.Key), r.Key, byLang[r.Lang]),
				Tag:    r.Key,
				Items:  blog.FilterByTag(byLang[r.Lang], r.Key),
			})
		case site.RouteRSS:
			data, err = b.renderFeed(entries)
		default:
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", r, err)
		}
		if err := writeFile(outDir, r.OutPath, data); err != nil {
			return nil, err
		}
		pages++
	}

	res := &Result{Entries: len(entries), Pages: pages, Duration: time.Since(start)}
	b.logger().Info("build complete",
		logger.Int("entries", res.Entries),
		logger.Int("pages", res.Pages),
		logger.Duration("took", res.Duration),
	)
	return res, nil
}

func (b *Builder) layout(lang, path, title string, inLang []content.Entry) render.Layout {
	l := render.Layout{
		Site:      b.Cfg.Site,
		Lang:      lang,
		Path:      path,
		Title:     title,
		Tags:      blog.TopTags(inLang, b.Cfg.Blog.MaxTagsDisplay),
		Generated: b.Cfg.Build.Now,
	}
	for _, code := range b.Cfg.Site.Languages {
		l.Alternates = append(l.Alternates, render.Alternate{
			Lang: code,
			Name: i18n.LanguageName(code),
			Path: i18n.LocalizePath(path, code),
		})
	}
	return l
}

func (b *Builder) renderPost(
	ctx context.Context,
	tpl render.Renderer,
	md *render.MarkdownRenderer,
	e content.Entry,
	corpus []content.Entry,
) ([]byte, error) {
	res, err := md.Render([]byte(e.Body))
	if err != nil {
		return nil, fmt.Errorf("markdown %s: %w", e.ID, err)
	}
	lang := e.Data.Lang
	path := site.BlogPost(lang, e.Slug)

	layout := b.layout(lang, path, e.Data.Title, blog.FilterByLanguage(corpus, lang))
	// only offer languages the post actually exists in
	translations := blog.Translations(corpus, e)
	alts := layout.Alternates[:0]
	for _, a := range layout.Alternates {
		if a.Lang == lang || hasLang(translations, a.Lang) {
			alts = append(alts, a)
		}
	}
	layout.Alternates = alts

	return tpl.RenderPost(ctx, render.PostPage{
		Layout:       layout,
		Entry:        e,
		HTML:         template.HTML(res.HTML),
		TOC:          res.Headings,
		Related:      blog.Related(corpus, e, lang, b.Cfg.Blog.RelatedLimit),
		Translations: translations,
	})
}

func hasLang(entries []content.Entry, lang string) bool {
	for _, e := range entries {
		if e.Data.Lang == lang {
			return true
		}
	}
	return false
}

func (b *Builder) renderFeed(entries []content.Entry) ([]byte, error) {
	f := feed.Export(feed.Metadata{
		Title:       b.Cfg.Feed.Title,
		Description: b.Cfg.Feed.Description,
		Site:        b.Cfg.Site.SiteURL,
	}, entries)
	var buf bytes.Buffer
	if err := f.WriteRSS(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *Builder) pruneCache(entries []content.Entry) {
	if b.Cache == nil {
		return
	}
	keys := make([][]byte, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, index.Key(e.Body, b.Cfg.Blog.WordsPerMinute))
	}
	removed, err := b.Cache.Prune(keys)
	if err != nil {
		b.logger().Warn("cache prune failed", logger.Err(err))
		return
	}
	if removed > 0 {
		b.logger().Debug("cache pruned", logger.Int("removed", removed))
	}
}

func writeFile(root, rel string, data []byte) error {
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}
