package blog

import (
	"folio/internal/domain/content"
	"sort"
)

const DefaultRelatedLimit = 3

// Related ranks entries of lang that share tags with source. Entries with the
// source's slug are excluded, as are candidates without a shared tag. Order is
// shared tag count desc, then publish date desc, then load order.
func Related(corpus []content.Entry, source content.Entry, lang string, limit int) []content.RelatedCandidate {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	srcTags := make(map[string]struct{}, len(source.Data.Tags))
	for _, t := range source.Data.Tags {
		srcTags[t] = struct{}{}
	}

	var out []content.RelatedCandidate
	for _, c := range corpus {
		if c.Data.Lang != lang || c.Slug == source.Slug {
			continue
		}
		shared := sharedTags(srcTags, c.Data.Tags)
		if len(shared) == 0 {
			continue
		}
		out = append(out, content.RelatedCandidate{
			Entry:       c,
			SharedTags:  shared,
			SharedCount: len(shared),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SharedCount != out[j].SharedCount {
			return out[i].SharedCount > out[j].SharedCount
		}
		return content.Newer(out[i].Entry, out[j].Entry)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// sharedTags is the set intersection, sorted; duplicates in tags count once.
func sharedTags(src map[string]struct{}, tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	var out []string
	for _, t := range tags {
		if _, ok := src[t]; !ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
