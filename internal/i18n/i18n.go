// Package i18n resolves the site language from request paths and looks up UI
// strings in the embedded translation tables.
//
// Unknown languages silently map to the default language. A key missing from
// a table falls back to the default table, and a key missing from both
// resolves to the key itself.
package i18n

import (
	"embed"
	"fmt"
	"gopkg.in/yaml.v3"
	"strconv"
	"strings"
)

const DefaultLang = "es"

//go:embed locales/*.yaml
var localeFS embed.FS

type table struct {
	Name    string            `yaml:"name"`
	Strings map[string]string `yaml:"strings"`
}

// codes is ordered; the default language comes first.
var codes = []string{"es", "en"}

// tables is written once by init and only read afterwards.
var tables = mustLoad()

func mustLoad() map[string]table {
	out := make(map[string]table, len(codes))
	for _, code := range codes {
		data, err := localeFS.ReadFile("locales/" + code + ".yaml")
		if err != nil {
			panic(fmt.Sprintf("i18n: missing table %s: %v", code, err))
		}
		var t table
		if err := yaml.Unmarshal(data, &t); err != nil {
			panic(fmt.Sprintf("i18n: bad table %s: %v", code, err))
		}
		out[code] = t
	}
	return out
}

func Codes() []string {
	return append([]string(nil), codes...)
}

func Supported(code string) bool {
	_, ok := tables[code]
	return ok
}

// LanguageName is the native display name of code, or "" when unsupported.
func LanguageName(code string) string {
	return tables[code].Name
}

// ResolveLanguage returns the language named by the first path segment
// ("/en/blog" -> "en"), or DefaultLang.
func ResolveLanguage(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) > 1 && Supported(parts[1]) {
		return parts[1]
	}
	return DefaultLang
}

// Lookup is the strict lookup: no fallback, reports presence.
func Lookup(lang, key string) (string, bool) {
	s, ok := tables[lang].Strings[key]
	return s, ok
}

// Translate resolves key for lang and fills {0}, {1}, … with args.
func Translate(lang, key string, args ...any) string {
	s, ok := Lookup(lang, key)
	if !ok {
		s, ok = Lookup(DefaultLang, key)
	}
	if !ok {
		s = key
	}
	return substitute(s, args)
}

// Translator binds Translate to lang, for templates.
func Translator(lang string) func(key string, args ...any) string {
	return func(key string, args ...any) string {
		return Translate(lang, key, args...)
	}
}

func substitute(s string, args []any) string {
	if len(args) == 0 {
		return s
	}
	pairs := make([]string, 0, 2*len(args))
	for i, a := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(a))
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// MissingKeys lists keys of the default table that lang does not define.
func MissingKeys(lang string) []string {
	var out []string
	for key := range tables[DefaultLang].Strings {
		if _, ok := Lookup(lang, key); !ok {
			out = append(out, key)
		}
	}
	return out
}

func leadingLanguage(path string) (string, bool) {
	if !strings.HasPrefix(path, "/") {
		return "", false
	}
	seg, _, _ := strings.Cut(path[1:], "/")
	if Supported(seg) {
		return seg, true
	}
	return "", false
}

// LocalizePath swaps a leading language segment for lang, or prefixes /lang.
// A relative path gets its missing slash; the empty path becomes "/lang".
func LocalizePath(path, lang string) string {
	if cur, ok := leadingLanguage(path); ok {
		return "/" + lang + path[1+len(cur):]
	}
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "/" + lang + path
}

// PathIsInLanguage reports whether path belongs to lang. Paths without a
// language segment belong to the default language.
func PathIsInLanguage(path, lang string) bool {
	if cur, ok := leadingLanguage(path); ok {
		return cur == lang
	}
	return lang == DefaultLang
}
