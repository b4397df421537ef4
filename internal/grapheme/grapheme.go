package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Span is a half-open byte range [Start, End) inside a string.
type Span struct {
	Start int
	End   int
}

// Len returns the byte length of the span.
func (s Span) Len() int { return s.End - s.Start }

// Split returns grapheme clusters for text in logical order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Clusters returns the byte span of every grapheme cluster in text.
func Clusters(text string) []Span {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]Span, 0, len(text))
	for g.Next() {
		start, end := g.Positions()
		out = append(out, Span{Start: start, End: end})
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Prev returns the byte offset of the cluster boundary before i.
// It returns 0 when i is at or before the start of text.
func Prev(text string, i int) int {
	if i <= 0 {
		return 0
	}
	prev := 0
	for _, c := range Clusters(text) {
		if c.End >= i {
			return c.Start
		}
		prev = c.End
	}
	return prev
}

// Next returns the byte offset of the cluster boundary after i.
// It returns len(text) when i is at or past the end of text.
func Next(text string, i int) int {
	if i >= len(text) {
		return len(text)
	}
	for _, c := range Clusters(text) {
		if c.End > i {
			return c.End
		}
	}
	return len(text)
}

// Floor snaps i down to the nearest cluster boundary inside text.
func Floor(text string, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(text) {
		return len(text)
	}
	for _, c := range Clusters(text) {
		if c.End > i {
			return c.Start
		}
	}
	return len(text)
}

// Segments returns the spans of every Unicode word segment of text,
// including whitespace and punctuation segments. The spans tile text.
func Segments(text string) []Span {
	var out []Span
	rest := text
	offset := 0
	state := -1
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		out = append(out, Span{Start: offset, End: offset + len(word)})
		offset += len(word)
	}
	return out
}

// Words returns the spans of the word segments of text that contain at least
// one letter or number. Whitespace and punctuation segments are skipped.
func Words(text string) []Span {
	var out []Span
	for _, s := range Segments(text) {
		if isWordLike(text[s.Start:s.End]) {
			out = append(out, s)
		}
	}
	return out
}

func isWordLike(segment string) bool {
	for _, r := range segment {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
