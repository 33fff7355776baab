package render

import (
	"context"
	"html/template"
	"testing"
	"time"

	"folio/internal/blog"
	"folio/internal/domain/config"
	"folio/internal/domain/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownRender(t *testing.T) {
	md := NewMarkdownRenderer()
	res, err := md.Render([]byte("# Hello *world*\n\nSome `code` here.\n\n## Second `part`\n"))
	require.NoError(t, err)

	assert.Contains(t, string(res.HTML), `<h1 id="hello-world">`)
	assert.Contains(t, string(res.HTML), "<code>code</code>")
	require.Len(t, res.Headings, 2)
	assert.Equal(t, Heading{Level: 1, ID: "hello-world", Text: "Hello world"}, res.Headings[0])
	assert.Equal(t, 2, res.Headings[1].Level)
	assert.Equal(t, "Second part", res.Headings[1].Text)
}

func sampleEntry() content.Entry {
	return content.Entry{
		ID:          "go-intro/en.md",
		Slug:        "go-intro",
		ReadingTime: 4,
		Data: content.Frontmatter{
			Title:       "Intro to Go",
			Description: "Start here",
			Lang:        "en",
			PubDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"go", "backend"},
		},
	}
}

func layout(lang string) Layout {
	return Layout{
		Site: config.Default().Site,
		Lang: lang,
		Path: "/" + lang + "/blog/",
		Alternates: []Alternate{
			{Lang: "es", Name: "Español", Path: "/es/blog/"},
			{Lang: "en", Name: "English", Path: "/en/blog/"},
		},
		Tags:      []blog.TagCount{{Name: "go", Count: 1}},
		Generated: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestFooterCarriesSiteContact(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	out, err := r.RenderTag(context.Background(), TagPage{Layout: layout("es"), Tag: "go"})
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, `<meta name="author" content="Juan Camilo Farfan">`)
	assert.Contains(t, html, `href="https://github.com/juancadev-io"`)
	assert.Contains(t, html, `href="https://www.linkedin.com/in/juancadev-io"`)
	assert.Contains(t, html, `href="mailto:hello@juancadev.com"`)
	assert.Contains(t, html, "&copy; 2025 Juan Camilo Farfan")
}

func TestRenderList(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	entries := []content.Entry{sampleEntry(), sampleEntry()}
	out, err := r.RenderList(context.Background(), ListPage{
		Layout: layout("en"),
		Page:   blog.Paginate(entries, 1, 1),
	})
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, `<html lang="en">`)
	assert.Contains(t, html, `href="/en/blog/go-intro/"`)
	assert.Contains(t, html, "4 min read")
	assert.Contains(t, html, "Page 1 of 2")
	assert.Contains(t, html, `href="/en/blog/2/"`)
	assert.Contains(t, html, ">Next<")
	assert.NotContains(t, html, ">Previous<")
	assert.Contains(t, html, `href="/en/blog/tag/go/"`)
	assert.Contains(t, html, `href="/en/about/"`)
}

func TestRenderPostSpanish(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	e := sampleEntry()
	e.Data.Lang = "es"
	e.Data.Title = "Introducción a Go"
	twin := sampleEntry()

	out, err := r.RenderPost(context.Background(), PostPage{
		Layout:       layout("es"),
		Entry:        e,
		HTML:         template.HTML("<p>cuerpo</p>"),
		TOC:          []Heading{{Level: 2, ID: "uno", Text: "Uno"}},
		Related:      []content.RelatedCandidate{{Entry: e, SharedTags: []string{"go"}, SharedCount: 1}},
		Translations: []content.Entry{twin},
	})
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "Introducción a Go")
	assert.Contains(t, html, "Publicado el")
	assert.Contains(t, html, "4 min de lectura")
	assert.Contains(t, html, "<p>cuerpo</p>")
	assert.Contains(t, html, "Artículos relacionados")
	assert.Contains(t, html, `href="#uno"`)
	assert.Contains(t, html, `href="/en/blog/go-intro/"`)
	assert.Contains(t, html, "English")
}

func TestRenderTag(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	out, err := r.RenderTag(context.Background(), TagPage{
		Layout: layout("en"),
		Tag:    "go",
		Items:  []content.Entry{sampleEntry()},
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "Posts tagged go")
}
