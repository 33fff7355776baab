package content

import (
	"path"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

type Frontmatter struct {
	Title       string
	Description string
	PubDate     time.Time
	UpdatedDate time.Time
	HeroImage   string
	Lang        string
	Author      string
	Tags        []string
}

// Entry is one blog post of the content collection.
// ID is the slash separated path relative to the collection root.
type Entry struct {
	ID   string
	Slug string
	Body string
	Data Frontmatter

	// filled by the repository, never by the source
	WordCount   int
	ReadingTime int
}

func (e Entry) HasPubDate() bool {
	return !e.Data.PubDate.IsZero()
}

// Newer reports whether a was published after b. An entry without a publish
// date is older than every dated entry, whatever the year.
func Newer(a, b Entry) bool {
	switch {
	case !a.HasPubDate():
		return false
	case !b.HasPubDate():
		return true
	default:
		return a.Data.PubDate.After(b.Data.PubDate)
	}
}

type RelatedCandidate struct {
	Entry       Entry
	SharedTags  []string
	SharedCount int
}

type FeedItem struct {
	Title       string
	PubDate     time.Time
	Description string
	Link        string
}

// NormalizeTags guarantees a non-nil slice; order and spelling are kept.
func NormalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// SlugFromID returns the first path segment of id, without extension when the
// id has a single segment ("post/en.md" -> "post", "hello.md" -> "hello").
func SlugFromID(id string) string {
	id = strings.Trim(strings.ReplaceAll(id, "\\", "/"), "/")
	if id == "" {
		return ""
	}
	first, _, found := strings.Cut(id, "/")
	if !found {
		first = strings.TrimSuffix(first, path.Ext(first))
	}
	return Slugify(first)
}

func Slugify(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var out []rune
	lastDash := false

	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]

		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			out = append(out, unicode.ToLower(r))
			lastDash = false
		case r == '_':
			out = append(out, r)
			lastDash = false
		default:
			if !lastDash && len(out) > 0 {
				out = append(out, '-')
				lastDash = true
			}
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}
