package ingest

import (
	"bytes"
	"errors"
	domainerr "folio/internal/domain/errors"
	"gopkg.in/yaml.v3"
	"strconv"
	"strings"
	"time"
)

var errNoFrontMatter = errors.New("no front matter found")
var errInvalidFrontMatter = errors.New("invalid front matter")

type FrontMatter struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	PubDate     string    `yaml:"pubDate"`
	UpdatedDate string    `yaml:"updatedDate"`
	HeroImage   string    `yaml:"heroImage"`
	Lang        string    `yaml:"lang"`
	Author      string    `yaml:"author"`
	Tags        yaml.Node `yaml:"tags"`
}

func ParseFrontMatter(raw []byte) (FrontMatter, []byte, error) {
	// normalise line endings
	norm := bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	norm = bytes.ReplaceAll(norm, []byte("\r"), []byte("\n"))
	norm = bytes.TrimLeft(norm, "\ufeff \t\n")
	if len(norm) == 0 {
		return FrontMatter{}, nil, errNoFrontMatter
	}

	const (
		sep      = "---"
		sepLine  = sep + "\n"
		closeMid = "\n" + sep + "\n"
	)

	if !bytes.HasPrefix(norm, []byte(sepLine)) {
		return FrontMatter{}, norm, errNoFrontMatter
	}

	rest := norm[len(sepLine):]

	var yamlPart, bodyPart []byte

	switch {
	case bytes.HasPrefix(rest, []byte(sepLine)):
		// "---\n---\n": empty front matter
		bodyPart = rest[len(sepLine):]
	case bytes.Equal(bytes.TrimSpace(rest), []byte(sep)):
		// "---\n---": empty front matter and no body
	default:
		if parts := bytes.SplitN(rest, []byte(closeMid), 2); len(parts) == 2 {
			yamlPart = parts[0]
			bodyPart = parts[1]
		} else if bytes.HasSuffix(bytes.TrimRight(rest, "\n"), []byte("\n"+sep)) {
			trimmed := bytes.TrimRight(rest, "\n")
			yamlPart = trimmed[:len(trimmed)-len("\n"+sep)]
		} else {
			return FrontMatter{}, norm, errInvalidFrontMatter
		}
	}

	yamlPart = bytes.TrimSpace(yamlPart)

	var fm FrontMatter
	if len(yamlPart) > 0 {
		if err := yaml.Unmarshal(yamlPart, &fm); err != nil {
			return FrontMatter{}, norm, err
		}
	}
	return fm, bytes.TrimLeft(bodyPart, "\n"), nil
}

// decodeTags accepts an absent key, null, or a sequence of scalars.
func decodeTags(n yaml.Node) ([]string, bool) {
	switch n.Kind {
	case 0:
		return nil, true
	case yaml.ScalarNode:
		return nil, n.Tag == "!!null"
	case yaml.SequenceNode:
		out := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
				return nil, false
			}
			out = append(out, item.Value)
		}
		return out, true
	default:
		return nil, false
	}
}

var dateLayouts = []string{
	time.RFC3339,
	time.DateOnly,
	"2006-01-02 15:04",
	time.DateTime,
	"2006-01-02T15:04:05",
	"Jan 2 2006",
	"Jan 02 2006",
	"January 2, 2006",
	"January 2 2006",
}

// ParseTime parses a frontmatter date; the empty string is the zero time.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognised date " + strconv.Quote(s))
}

func validate(fm FrontMatter, languages []string) domainerr.ValidationError {
	var ve domainerr.ValidationError
	if strings.TrimSpace(fm.Title) == "" {
		ve.Add("title", "required")
	}
	if strings.TrimSpace(fm.Description) == "" {
		ve.Add("description", "required")
	}
	switch lang := strings.TrimSpace(fm.Lang); {
	case lang == "":
		ve.Add("lang", "required")
	case len(languages) > 0 && !contains(languages, lang):
		ve.Add("lang", "unsupported language "+strconv.Quote(lang))
	}
	if _, err := ParseTime(fm.PubDate); err != nil {
		ve.Add("pubDate", err.Error())
	}
	if _, err := ParseTime(fm.UpdatedDate); err != nil {
		ve.Add("updatedDate", err.Error())
	}
	if _, ok := decodeTags(fm.Tags); !ok {
		ve.Add("tags", "must be a list of strings")
	}
	return ve
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}
