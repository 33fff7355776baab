package app

import (
	"folio/internal/blog"
	"folio/internal/domain/content"
	"folio/internal/domain/site"
	"path"
	"strings"
)

type RouteBuilder struct {
	Languages []string
	PageSize  int
}

// Build enumerates every output route of the corpus: listing pages, posts and
// tag pages per language, then the feed.
func (rb *RouteBuilder) Build(entries []content.Entry) []site.Route {
	var routes []site.Route
	for _, lang := range rb.Languages {
		inLang := blog.SortByPubDate(blog.FilterByLanguage(entries, lang))
		routes = append(routes, rb.BuildListRoutes(lang, len(inLang))...)
		routes = append(routes, rb.BuildPostRoutes(inLang)...)
		routes = append(routes, rb.BuildTagRoutes(lang, inLang)...)
	}
	routes = append(routes, site.Route{Kind: site.RouteRSS, OutPath: "rss.xml"})
	return routes
}

func (rb *RouteBuilder) BuildListRoutes(lang string, total int) []site.Route {
	last := blog.Paginate(make([]content.Entry, total), 1, rb.PageSize).Last
	routes := make([]site.Route, 0, last)
	for n := 1; n <= last; n++ {
		routes = append(routes, site.Route{
			Kind:    site.RouteBlog,
			Lang:    lang,
			Page:    n,
			OutPath: outPath(site.BlogPage(lang, n)),
		})
	}
	return routes
}

func (rb *RouteBuilder) BuildPostRoutes(entries []content.Entry) []site.Route {
	var routes []site.Route
	for _, e := range entries {
		routes = append(routes, site.Route{
			Kind:    site.RoutePost,
			Lang:    e.Data.Lang,
			Slug:    e.Slug,
			Key:     e.ID,
			OutPath: outPath(site.BlogPost(e.Data.Lang, e.Slug)),
		})
	}
	return routes
}

func (rb *RouteBuilder) BuildTagRoutes(lang string, entries []content.Entry) []site.Route {
	var routes []site.Route
	for _, tc := range blog.TagCounts(entries) {
		if content.Slugify(tc.Name) == "" {
			continue
		}
		routes = append(routes, site.Route{
			Kind:    site.RouteTag,
			Lang:    lang,
			Key:     tc.Name,
			OutPath: outPath(site.BlogTag(lang, tc.Name)),
		})
	}
	return routes
}

// outPath maps a URL path ending in "/" to its index.html file.
func outPath(urlPath string) string {
	p := strings.TrimPrefix(urlPath, "/")
	return path.Join(p, "index.html")
}
