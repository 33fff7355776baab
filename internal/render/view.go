package render

import (
	"folio/internal/blog"
	"folio/internal/domain/config"
	"folio/internal/domain/content"
	"html/template"
	"time"
)

type Heading struct {
	Level int
	ID    string
	Text  string
}

// Alternate links the same page in another language.
type Alternate struct {
	Lang string
	Name string
	Path string
}

// Layout is shared by every page.
type Layout struct {
	Site       config.SiteConfig
	Lang       string
	Path       string
	Title      string
	Alternates []Alternate
	Tags       []blog.TagCount
	Generated  time.Time
}

type ListPage struct {
	Layout
	Page blog.Page
}

type PostPage struct {
	Layout
	Entry        content.Entry
	HTML         template.HTML
	TOC          []Heading
	Related      []content.RelatedCandidate
	Translations []content.Entry
}

type TagPage struct {
	Layout
	Tag   string
	Items []content.Entry
}
