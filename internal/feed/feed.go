// Package feed exports the blog corpus as an RSS 2.0 document.
package feed

import (
	"encoding/xml"
	"fmt"
	"folio/internal/domain/content"
	"folio/internal/domain/site"
	"io"
	"sort"
	"time"
)

type Metadata struct {
	Title       string
	Description string
	// Site is the absolute root every item link is resolved against.
	Site string
}

type Feed struct {
	Meta  Metadata
	Items []content.FeedItem
}

// Export projects every entry into a feed item, newest first. Undated entries
// trail in load order. No language filtering happens here.
func Export(meta Metadata, entries []content.Entry) Feed {
	sorted := append([]content.Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return content.Newer(sorted[i], sorted[j])
	})

	items := make([]content.FeedItem, 0, len(sorted))
	for _, e := range sorted {
		items = append(items, content.FeedItem{
			Title:       e.Data.Title,
			PubDate:     e.Data.PubDate,
			Description: e.Data.Description,
			Link:        site.BlogPost(e.Data.Lang, e.Slug),
		})
	}
	return Feed{Meta: meta, Items: items}
}

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	GUID        rssGUID `xml:"guid"`
	Description string  `xml:"description"`
	PubDate     string  `xml:"pubDate,omitempty"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

func (f Feed) document() rssXML {
	items := make([]rssItem, 0, len(f.Items))
	for _, it := range f.Items {
		link := site.Absolute(f.Meta.Site, it.Link)
		var pub string
		if !it.PubDate.IsZero() {
			pub = it.PubDate.UTC().Format(time.RFC1123Z)
		}
		items = append(items, rssItem{
			Title:       it.Title,
			Link:        link,
			GUID:        rssGUID{Value: link, IsPermaLink: true},
			Description: it.Description,
			PubDate:     pub,
		})
	}
	return rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       f.Meta.Title,
			Link:        site.Absolute(f.Meta.Site, "/"),
			Description: f.Meta.Description,
			Items:       items,
		},
	}
}

// WriteRSS encodes the feed, XML declaration included.
func (f Feed) WriteRSS(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(f.document()); err != nil {
		return fmt.Errorf("encode rss: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
