package blog

import (
	"folio/internal/domain/content"
	"sort"
)

const (
	PaginationSize = 15
	MaxTagsDisplay = 15
)

type TagCount struct {
	Name  string
	Count int
}

// TagCounts counts each tag once per entry, most used first, then by name.
func TagCounts(entries []content.Entry) []TagCount {
	counts := make(map[string]int)
	for _, e := range entries {
		seen := make(map[string]struct{}, len(e.Data.Tags))
		for _, t := range e.Data.Tags {
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			counts[t]++
		}
	}

	stats := make([]TagCount, 0, len(counts))
	for name, c := range counts {
		stats = append(stats, TagCount{Name: name, Count: c})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count == stats[j].Count {
			return stats[i].Name < stats[j].Name
		}
		return stats[i].Count > stats[j].Count
	})
	return stats
}

// TopTags caps TagCounts at n; n <= 0 returns all of them.
func TopTags(entries []content.Entry, n int) []TagCount {
	stats := TagCounts(entries)
	if n > 0 && len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

func FilterByTag(entries []content.Entry, tag string) []content.Entry {
	var out []content.Entry
	for _, e := range entries {
		for _, t := range e.Data.Tags {
			if t == tag {
				out = append(out, e)
				break
			}
		}
	}
	return out
}
