package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontMatter(t *testing.T) {
	raw := []byte("---\r\ntitle: Hola\r\ndescription: Primer post\r\nlang: es\r\npubDate: 2024-03-01\r\ntags:\r\n  - go\r\n  - astro\r\n---\r\n\r\n# Cuerpo\r\n")

	fm, body, err := ParseFrontMatter(raw)
	require.NoError(t, err)
	assert.Equal(t, "Hola", fm.Title)
	assert.Equal(t, "Primer post", fm.Description)
	assert.Equal(t, "es", fm.Lang)
	assert.Equal(t, "2024-03-01", fm.PubDate)
	assert.Equal(t, "# Cuerpo\n", string(body))

	tags, ok := decodeTags(fm.Tags)
	require.True(t, ok)
	assert.Equal(t, []string{"go", "astro"}, tags)
}

func TestParseFrontMatterVariants(t *testing.T) {
	_, _, err := ParseFrontMatter([]byte("# no front matter"))
	assert.ErrorIs(t, err, errNoFrontMatter)

	_, _, err = ParseFrontMatter(nil)
	assert.ErrorIs(t, err, errNoFrontMatter)

	_, _, err = ParseFrontMatter([]byte("---\ntitle: x\nno closing fence"))
	assert.ErrorIs(t, err, errInvalidFrontMatter)

	fm, body, err := ParseFrontMatter([]byte("---\ntitle: only\n---"))
	require.NoError(t, err)
	assert.Equal(t, "only", fm.Title)
	assert.Empty(t, body)

	fm, body, err = ParseFrontMatter([]byte("---\n---\nbody"))
	require.NoError(t, err)
	assert.Empty(t, fm.Title)
	assert.Equal(t, "body", string(body))
}

func TestDecodeTags(t *testing.T) {
	parse := func(src string) FrontMatter {
		fm, _, err := ParseFrontMatter([]byte("---\n" + src + "\n---\n"))
		require.NoError(t, err)
		return fm
	}

	tags, ok := decodeTags(parse("title: x").Tags)
	assert.True(t, ok)
	assert.Nil(t, tags)

	tags, ok = decodeTags(parse("tags:").Tags)
	assert.True(t, ok)
	assert.Nil(t, tags)

	tags, ok = decodeTags(parse("tags: []").Tags)
	assert.True(t, ok)
	assert.Empty(t, tags)

	_, ok = decodeTags(parse("tags: go").Tags)
	assert.False(t, ok)

	_, ok = decodeTags(parse("tags:\n  - a: b").Tags)
	assert.False(t, ok)
}

func TestParseTime(t *testing.T) {
	for _, s := range []string{"2024-03-01", "2024-03-01T10:00:00Z", "2024-03-01 10:00", "Mar 1 2024", "Mar 01 2024", "March 1, 2024"} {
		got, err := ParseTime(s)
		require.NoError(t, err, s)
		assert.Equal(t, 2024, got.Year(), s)
		assert.Equal(t, time.March, got.Month(), s)
		assert.Equal(t, 1, got.Day(), s)
	}

	got, err := ParseTime("  ")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = ParseTime("yesterday")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	ve := validate(FrontMatter{}, []string{"es", "en"})
	fields := map[string]bool{}
	for _, it := range ve.Items {
		fields[it.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["description"])
	assert.True(t, fields["lang"])

	ve = validate(FrontMatter{Title: "t", Description: "d", Lang: "fr"}, []string{"es", "en"})
	require.Len(t, ve.Items, 1)
	assert.Equal(t, "lang", ve.Items[0].Field)

	ve = validate(FrontMatter{Title: "t", Description: "d", Lang: "fr"}, nil)
	assert.False(t, ve.HasAny())

	ve = validate(FrontMatter{Title: "t", Description: "d", Lang: "en", PubDate: "soon"}, nil)
	require.Len(t, ve.Items, 1)
	assert.Equal(t, "pubDate", ve.Items[0].Field)
}
