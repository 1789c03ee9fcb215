package textanimate

import (
	"fmt"
	"strings"
	"unicode"
)

// By selects the granularity text is split at before animating.
type By int

const (
	ByWord By = iota
	ByText
	ByCharacter
	ByLine
)

func (b By) String() string {
	switch b {
	case ByText:
		return "text"
	case ByWord:
		return "word"
	case ByCharacter:
		return "character"
	case ByLine:
		return "line"
	}
	return fmt.Sprintf("by(%d)", int(b))
}

// ParseBy converts a flag value into a By.
func ParseBy(s string) (By, error) {
	switch s {
	case "text":
		return ByText, nil
	case "word":
		return ByWord, nil
	case "character", "char":
		return ByCharacter, nil
	case "line":
		return ByLine, nil
	}
	return 0, fmt.Errorf("unknown granularity: %s, expect one of: text, word, character, line", s)
}

// Segment is one atomic unit of animated text.
type Segment struct {
	Text  string
	Index int
	Total int
}

// Split breaks text into ordered segments at the given granularity.
//
// Word mode keeps whitespace runs as their own segments, so joining all
// segment texts reproduces the input exactly. Character mode splits per
// rune; grapheme clusters spanning multiple runes (emoji, combining
// marks) split apart. Line mode drops the newline separators.
//
// The empty string yields a single empty segment in text mode and no
// segments in every other mode.
func Split(text string, by By) []Segment {
	var parts []string
	switch by {
	case ByText:
		parts = []string{text}
	case ByWord:
		parts = splitWords(text)
	case ByCharacter:
		if text != "" {
			runes := []rune(text)
			parts = make([]string, 0, len(runes))
			for _, r := range runes {
				parts = append(parts, string(r))
			}
		}
	case ByLine:
		if text != "" {
			parts = strings.Split(text, "\n")
		}
	}

	segments := make([]Segment, len(parts))
	for i, part := range parts {
		segments[i] = Segment{
			Text:  part,
			Index: i,
			Total: len(parts),
		}
	}
	return segments
}

// splitWords splits on whitespace boundaries, emitting whitespace runs
// as segments of their own so spacing survives re-joining.
func splitWords(text string) []string {
	var parts []string
	var current strings.Builder
	var inSpace bool
	for _, r := range text {
		isSpace := unicode.IsSpace(r)
		if current.Len() > 0 && isSpace != inSpace {
			parts = append(parts, current.String())
			current.Reset()
		}
		inSpace = isSpace
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}
