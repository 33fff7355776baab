package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"folio/internal/domain/content"
	"folio/internal/domain/site"
	"folio/internal/i18n"
	"html/template"
	"time"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type TemplateRenderer struct {
	tpl *template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	tpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	for _, name := range []string{"list.tmpl", "post.tmpl", "tag.tmpl"} {
		if tpl.Lookup(name) == nil {
			return nil, fmt.Errorf("missing template: %s", name)
		}
	}
	return &TemplateRenderer{tpl: tpl}, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"t":        i18n.Translate,
		"langName": i18n.LanguageName,
		"localize": i18n.LocalizePath,
		"date": func(t time.Time, layout string) string {
			if t.IsZero() {
				return ""
			}
			return t.Format(layout)
		},
		"postURL": func(e content.Entry) string {
			return site.BlogPost(e.Data.Lang, e.Slug)
		},
		"tagURL":  site.BlogTag,
		"pageURL": site.BlogPage,
		"homeURL": site.Home,
		"blogURL": site.Blog,
		"add":     func(a, b int) int { return a + b },
		"sub":     func(a, b int) int { return a - b },
	}
}

func (r *TemplateRenderer) RenderList(ctx context.Context, page ListPage) ([]byte, error) {
	return r.exec("list.tmpl", page)
}

func (r *TemplateRenderer) RenderPost(ctx context.Context, page PostPage) ([]byte, error) {
	return r.exec("post.tmpl", page)
}

func (r *TemplateRenderer) RenderTag(ctx context.Context, page TagPage) ([]byte, error) {
	return r.exec("tag.tmpl", page)
}

func (r *TemplateRenderer) exec(name string, data interface{}) ([]byte, error) {
	t := r.tpl.Lookup(name)
	if t == nil {
		return nil, fmt.Errorf("template %s not found", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
