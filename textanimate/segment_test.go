package textanimate

import (
	"strings"
	"testing"
)

func TestSplitWordRejoins(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "simple", text: "Hello world"},
		{name: "multiple spaces", text: "Hello   world"},
		{name: "leading and trailing", text: "  Hello world "},
		{name: "tabs and newlines", text: "Hello\tworld\nagain"},
		{name: "single word", text: "Hello"},
		{name: "only spaces", text: "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := Split(tt.text, ByWord)
			var b strings.Builder
			for _, seg := range segments {
				b.WriteString(seg.Text)
			}
			if b.String() != tt.text {
				t.Errorf("rejoined %q, expected %q", b.String(), tt.text)
			}
		})
	}
}

func TestSplitWordSegments(t *testing.T) {
	segments := Split("Hello world", ByWord)
	if len(segments) != 3 {
		t.Fatalf("got %d segments, expected 3", len(segments))
	}
	expected := []string{"Hello", " ", "world"}
	for i, seg := range segments {
		if seg.Text != expected[i] {
			t.Errorf("segment %d: got %q, expected %q", i, seg.Text, expected[i])
		}
		if seg.Index != i {
			t.Errorf("segment %d: got index %d", i, seg.Index)
		}
		if seg.Total != 3 {
			t.Errorf("segment %d: got total %d, expected 3", i, seg.Total)
		}
	}
}

func TestSplitLineCount(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{text: "one", expected: 1},
		{text: "one\ntwo", expected: 2},
		{text: "one\ntwo\nthree", expected: 3},
		{text: "trailing\n", expected: 2},
		{text: "\n", expected: 2},
	}
	for _, tt := range tests {
		segments := Split(tt.text, ByLine)
		newlines := strings.Count(tt.text, "\n")
		if len(segments) != newlines+1 {
			t.Errorf("Split(%q, ByLine) = %d segments, expected newlines+1 = %d", tt.text, len(segments), newlines+1)
		}
		if len(segments) != tt.expected {
			t.Errorf("Split(%q, ByLine) = %d segments, expected %d", tt.text, len(segments), tt.expected)
		}
		for _, seg := range segments {
			if strings.Contains(seg.Text, "\n") {
				t.Errorf("line segment %q retains newline", seg.Text)
			}
		}
	}
}

func TestSplitCharacterCount(t *testing.T) {
	tests := []struct {
		text string
	}{
		{text: "abc"},
		{text: "héllo"},
		{text: "日本語"},
	}
	for _, tt := range tests {
		segments := Split(tt.text, ByCharacter)
		runeCount := len([]rune(tt.text))
		if len(segments) != runeCount {
			t.Errorf("Split(%q, ByCharacter) = %d segments, expected %d runes", tt.text, len(segments), runeCount)
		}
	}
}

func TestSplitText(t *testing.T) {
	segments := Split("Hello world", ByText)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, expected 1", len(segments))
	}
	if segments[0].Text != "Hello world" {
		t.Errorf("got %q, expected whole text", segments[0].Text)
	}
}

func TestSplitEmpty(t *testing.T) {
	// text mode keeps a single empty segment, all other modes yield none
	if segments := Split("", ByText); len(segments) != 1 || segments[0].Text != "" {
		t.Errorf("Split(\"\", ByText) = %v, expected one empty segment", segments)
	}
	for _, by := range []By{ByWord, ByCharacter, ByLine} {
		if segments := Split("", by); len(segments) != 0 {
			t.Errorf("Split(\"\", %v) = %d segments, expected 0", by, len(segments))
		}
	}
}

func TestSplitCharacterNeverFewerThanWord(t *testing.T) {
	texts := []string{"", "a", "Hello world", "a b c", "multi\nline text"}
	for _, text := range texts {
		words := len(Split(text, ByWord))
		chars := len(Split(text, ByCharacter))
		if chars < words {
			t.Errorf("Split(%q): character count %d < word count %d", text, chars, words)
		}
	}
}

func TestParseBy(t *testing.T) {
	for _, s := range []string{"text", "word", "character", "line"} {
		by, err := ParseBy(s)
		if err != nil {
			t.Fatalf("ParseBy(%q) failed: %v", s, err)
		}
		if by.String() != s {
			t.Errorf("ParseBy(%q).String() = %q", s, by.String())
		}
	}
	if _, err := ParseBy("paragraph"); err == nil {
		t.Errorf("expected error for unknown granularity")
	}
}
