package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	assert.Equal(t, "/es/", Home("es"))
	assert.Equal(t, "/en/blog/", Blog("en"))
	assert.Equal(t, "/en/about/", About("en"))
	assert.Equal(t, "/es/blog/my-post/", BlogPost("es", "my-post"))
	assert.Equal(t, "/es/blog/tag/web-development/", BlogTag("es", "Web Development"))
	assert.Equal(t, "/es/blog/", BlogPage("es", 1))
	assert.Equal(t, "/es/blog/", BlogPage("es", 0))
	assert.Equal(t, "/es/blog/3/", BlogPage("es", 3))
}

func TestAbsolute(t *testing.T) {
	assert.Equal(t, "https://example.com/es/blog/x/", Absolute("https://example.com", "/es/blog/x/"))
	assert.Equal(t, "https://example.com/es/blog/x/", Absolute("https://example.com/sub/", "/es/blog/x/"))
	assert.Equal(t, "/es/", Absolute("", "/es/"))
	assert.Equal(t, "/es/", Absolute("   ", "/es/"))
}

func TestRouteString(t *testing.T) {
	r := Route{Kind: RoutePost, Lang: "en", Slug: "x", Key: "x/en.md", OutPath: "en/blog/x/index.html"}
	assert.Equal(t, "post lang=en slug=x key=x/en.md out=en/blog/x/index.html", r.String())
	assert.Equal(t, "blog lang=es page=2", Route{Kind: RouteBlog, Lang: "es", Page: 2}.String())
}
