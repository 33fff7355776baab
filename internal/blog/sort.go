package blog

import (
	"folio/internal/domain/content"
	"sort"
)

func FilterByLanguage(entries []content.Entry, lang string) []content.Entry {
	out := make([]content.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Data.Lang == lang {
			out = append(out, e)
		}
	}
	return out
}

// SortByPubDate returns a copy ordered newest first. Entries without a publish
// date count as the zero time and trail; ties keep load order.
func SortByPubDate(entries []content.Entry) []content.Entry {
	out := append([]content.Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return content.Newer(out[i], out[j])
	})
	return out
}

func FindBySlug(entries []content.Entry, lang, slug string) (content.Entry, bool) {
	for _, e := range entries {
		if e.Data.Lang == lang && e.Slug == slug {
			return e, true
		}
	}
	return content.Entry{}, false
}

// Translations returns the other-language entries that share e's slug.
func Translations(entries []content.Entry, e content.Entry) []content.Entry {
	var out []content.Entry
	for _, c := range entries {
		if c.Slug == e.Slug && c.Data.Lang != e.Data.Lang {
			out = append(out, c)
		}
	}
	return out
}
