package i18n

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesHaveIdenticalKeys(t *testing.T) {
	for _, code := range Codes() {
		assert.Empty(t, MissingKeys(code), code)
	}
	keys := func(code string) []string {
		var out []string
		for k := range tables[code].Strings {
			out = append(out, k)
		}
		sort.Strings(out)
		return out
	}
	assert.Equal(t, keys("es"), keys("en"))
}

func TestLanguages(t *testing.T) {
	assert.Equal(t, []string{"es", "en"}, Codes())
	assert.Equal(t, "Español", LanguageName("es"))
	assert.Equal(t, "English", LanguageName("en"))
	assert.Empty(t, LanguageName("fr"))
	assert.True(t, Supported("en"))
	assert.False(t, Supported("EN"))
}

func TestResolveLanguage(t *testing.T) {
	tests := map[string]string{
		"/en/blog/foo": "en",
		"/es/":         "es",
		"/en":          "en",
		"/fr/blog":     DefaultLang,
		"/blog/foo":    DefaultLang,
		"/":            DefaultLang,
		"":             DefaultLang,
		"en/blog":      DefaultLang,
		"/english":     DefaultLang,
	}
	for path, want := range tests {
		assert.Equal(t, want, ResolveLanguage(path), path)
	}
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Next", Translate("en", "pagination.next"))
	assert.Equal(t, "Siguiente", Translate("es", "pagination.next"))
	assert.Equal(t, "Siguiente", Translate("fr", "pagination.next"))
	assert.Equal(t, "no.such.key", Translate("en", "no.such.key"))
}

func TestTranslateSubstitutes(t *testing.T) {
	assert.Equal(t, "Page 2 of 5", Translate("en", "pagination.summary", 2, 5))
	assert.Equal(t, "Página 2 de 5", Translate("es", "pagination.summary", 2, "5"))
	assert.Equal(t, "Page {0} of {1}", Translate("en", "pagination.summary"))
	// substituted values are not themselves rewritten
	assert.Equal(t, "Page {1} of x", Translate("en", "pagination.summary", "{1}", "x"))
}

func TestTranslator(t *testing.T) {
	tr := Translator("en")
	assert.Equal(t, "3 min read", tr("blog.reading.time", 3))
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("en", "nav.home")
	require.True(t, ok)
	assert.Equal(t, "Home", s)

	_, ok = Lookup("fr", "nav.home")
	assert.False(t, ok)
}

func TestLocalizePath(t *testing.T) {
	assert.Equal(t, "/es/blog/foo", LocalizePath("/en/blog/foo", "es"))
	assert.Equal(t, "/es/blog/foo", LocalizePath("/blog/foo", "es"))
	assert.Equal(t, "/en/blog/foo", LocalizePath("/es/blog/foo", "en"))
	assert.Equal(t, "/en", LocalizePath("/es", "en"))
	assert.Equal(t, "/en/", LocalizePath("/", "en"))
	assert.Equal(t, "/en/english", LocalizePath("/english", "en"))
	assert.Equal(t, "/en/about", LocalizePath("about", "en"))
	assert.Equal(t, "/es", LocalizePath("", "es"))
	assert.Equal(t, "/en", LocalizePath("", "en"))
}

func TestPathIsInLanguage(t *testing.T) {
	assert.True(t, PathIsInLanguage("/en/blog", "en"))
	assert.False(t, PathIsInLanguage("/en/blog", "es"))
	assert.True(t, PathIsInLanguage("/blog", "es"))
	assert.False(t, PathIsInLanguage("/blog", "en"))
	assert.True(t, PathIsInLanguage("/es", "es"))
}
