package site

import (
	"fmt"
	"folio/internal/domain/content"
	"net/url"
	"strconv"
	"strings"
)

type RouteKind string

const (
	RouteHome     RouteKind = "home"
	RouteBlog     RouteKind = "blog"
	RoutePost     RouteKind = "post"
	RouteTag      RouteKind = "tag"
	RouteAbout    RouteKind = "about"
	RouteRSS      RouteKind = "rss"
	RouteNotFound RouteKind = "404"
)

type Route struct {
	Kind    RouteKind
	Lang    string
	Slug    string
	Key     string
	Page    int
	OutPath string
}

func (r Route) String() string {
	var parts []string
	parts = append(parts, string(r.Kind))
	if r.Lang != "" {
		parts = append(parts, "lang="+r.Lang)
	}
	if r.Slug != "" {
		parts = append(parts, "slug="+r.Slug)
	}
	if r.Key != "" {
		parts = append(parts, "key="+r.Key)
	}
	if r.Page > 0 {
		parts = append(parts, fmt.Sprintf("page=%d", r.Page))
	}
	if r.OutPath != "" {
		parts = append(parts, "out="+r.OutPath)
	}
	return strings.Join(parts, " ")
}

// URL paths always carry the language prefix, the default language included.

func Home(lang string) string {
	return "/" + lang + "/"
}

func Blog(lang string) string {
	return "/" + lang + "/blog/"
}

func About(lang string) string {
	return "/" + lang + "/about/"
}

func BlogPost(lang, slug string) string {
	return "/" + lang + "/blog/" + slug + "/"
}

// BlogTag addresses a tag listing by the tag's slug.
func BlogTag(lang, tag string) string {
	return "/" + lang + "/blog/tag/" + content.Slugify(tag) + "/"
}

// BlogPage is the listing page n; page 1 is the blog root.
func BlogPage(lang string, n int) string {
	if n <= 1 {
		return Blog(lang)
	}
	return Blog(lang) + strconv.Itoa(n) + "/"
}

// Absolute resolves p against the site root. An empty root leaves p untouched.
func Absolute(root, p string) string {
	root = strings.TrimSpace(root)
	if root == "" {
		return p
	}
	base, err := url.Parse(root)
	if err != nil {
		return p
	}
	ref, err := url.Parse(p)
	if err != nil {
		return p
	}
	return base.ResolveReference(ref).String()
}
