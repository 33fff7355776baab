// Package readtime estimates how long a markdown body takes to read.
package readtime

import (
	"regexp"
	"strings"
)

const DefaultWordsPerMinute = 200

var (
	fencedCode = regexp.MustCompile("```[\\s\\S]*?```")
	inlineCode = regexp.MustCompile("`[^`]*`")
	markupTag  = regexp.MustCompile(`<[^>]+>`)
	mdPunct    = strings.NewReplacer("#", " ", "*", " ", "_", " ", ">", " ", "~", " ", "-", " ")
)

type Stats struct {
	Words   int
	Minutes int
}

type Estimator struct {
	WordsPerMinute int
}

// CountWords counts whitespace separated tokens after code, tags and
// markdown punctuation are removed.
func CountWords(body string) int {
	s := fencedCode.ReplaceAllString(body, " ")
	s = inlineCode.ReplaceAllString(s, " ")
	s = markupTag.ReplaceAllString(s, " ")
	s = mdPunct.Replace(s)
	return len(strings.Fields(s))
}

func (e Estimator) Estimate(body string) Stats {
	wpm := e.WordsPerMinute
	if wpm <= 0 {
		wpm = DefaultWordsPerMinute
	}
	words := CountWords(body)
	return Stats{Words: words, Minutes: minutes(words, wpm)}
}

// Minutes is the reading time of body at the default pace, never below 1.
func Minutes(body string) int {
	return Estimator{}.Estimate(body).Minutes
}

func minutes(words, wpm int) int {
	m := (words + wpm - 1) / wpm
	if m < 1 {
		return 1
	}
	return m
}
