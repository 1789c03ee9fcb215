package textanimate

import (
	"strings"
	"testing"
	"time"

	"github.com/xhd2015/xgo/support/assert"
)

func TestPlainLinesShownWord(t *testing.T) {
	m, start := newTestModel("Hello world", Options{})
	m.phase = PhaseShown

	// fadeIn reserves two slack rows above and below for its y travel;
	// the trailing empty rows collapse, the leading ones stay
	got := strings.Join(m.PlainLines(start), "\n")
	expected := "\n\nHello world"
	if diff := assert.Diff(expected, got); diff != "" {
		t.Errorf("render diff: %s", diff)
	}
}

func TestPlainLinesLineGranularity(t *testing.T) {
	m, start := newTestModel("one\ntwo", Options{By: ByLine, Preset: PresetSlideLeft})
	m.phase = PhaseShown

	// slideLeft reserves four slack columns for its x travel
	got := strings.Join(m.PlainLines(start), "\n")
	expected := "    one\n    two"
	if diff := assert.Diff(expected, got); diff != "" {
		t.Errorf("render diff: %s", diff)
	}
}

func TestPlainLinesWordFlowAcrossNewline(t *testing.T) {
	m, start := newTestModel("ab\ncd", Options{})
	m.phase = PhaseShown

	got := strings.Join(m.PlainLines(start), "\n")
	expected := "\n\nab\ncd"
	if diff := assert.Diff(expected, got); diff != "" {
		t.Errorf("render diff: %s", diff)
	}
}

func TestHiddenSegmentsNotDrawn(t *testing.T) {
	m, start := newTestModel("Hello world", Options{})

	// at the very start of the entry every segment is below the draw
	// threshold, leaving the canvas empty
	lines := m.PlainLines(start)
	if len(lines) != 0 {
		t.Errorf("got %d lines, expected none at opacity 0: %q", len(lines), lines)
	}
}

func TestScaleCropsCentered(t *testing.T) {
	custom := VariantSet{
		Container: defaultContainerVariants(),
		Item: ItemVariants{
			Hidden:  Props{Opacity: F(0)},
			Visible: Props{Opacity: F(1), Scale: F(0.5)},
			Exit:    Props{Opacity: F(0)},
			Timing:  itemTiming(defaultDuration, nil, nil),
		},
	}
	m, start := newTestModel("abcdefgh", Options{By: ByText, Variants: &custom})
	m.phase = PhaseShown

	got := strings.Join(m.PlainLines(start), "\n")
	expected := "  cdef"
	if diff := assert.Diff(expected, got); diff != "" {
		t.Errorf("render diff: %s", diff)
	}
}

func TestScaleSpreadsRunes(t *testing.T) {
	custom := VariantSet{
		Container: defaultContainerVariants(),
		Item: ItemVariants{
			Hidden:  Props{Opacity: F(0)},
			Visible: Props{Opacity: F(1), Scale: F(1.5)},
			Exit:    Props{Opacity: F(0)},
			Timing:  itemTiming(defaultDuration, nil, nil),
		},
	}
	m, start := newTestModel("ab", Options{By: ByText, Variants: &custom})
	m.phase = PhaseShown

	got := strings.Join(m.PlainLines(start), "\n")
	if !strings.Contains(got, "a b") {
		t.Errorf("got %q, expected runes spread apart at scale 1.5", got)
	}
}

func TestViewContainsTextWhenShown(t *testing.T) {
	m, _ := newTestModel("Hello world", Options{})
	m.phase = PhaseShown

	view := m.View()
	if !strings.Contains(view, "Hello") || !strings.Contains(view, "world") {
		t.Errorf("expected text in view, got %q", view)
	}
}

func TestViewEmptyWhileHidden(t *testing.T) {
	m := New("Hello", Options{})
	if view := m.View(); view != "" {
		t.Errorf("hidden model rendered %q, expected empty", view)
	}
}

func TestSegmentStyleFuncPerSegment(t *testing.T) {
	m, start := newTestModel("red green", Options{
		SegmentStyleFunc: func(text string, index int) Style {
			if text == "red" {
				return Style{Color: "#ff0000", Bold: true}
			}
			return Style{}
		},
		Style: Style{Italic: true},
	})
	m.phase = PhaseShown

	frame := m.Frame(start)
	if len(frame.Segments) != 3 {
		t.Fatalf("got %d segment frames, expected 3", len(frame.Segments))
	}
	first := frame.Segments[0].Style
	if first.Color != "#ff0000" || !first.Bold {
		t.Errorf("first segment style = %+v, expected red bold", first)
	}
	if !first.Italic {
		t.Errorf("base style must merge under the per-segment style")
	}
	last := frame.Segments[2].Style
	if last.Color != "" || last.Bold {
		t.Errorf("last segment style = %+v, expected base only", last)
	}
}

func TestRenderFrameOffsetsDuringEntry(t *testing.T) {
	// halfway through the first segment's slideUp entry it sits below
	// its resting row
	m, start := newTestModel("Hi", Options{By: ByText, Preset: PresetSlideUp})

	frame := m.Frame(start.Add(150 * time.Millisecond))
	props := frame.Segments[0].Props
	if props.Y <= 0 || props.Y >= 20 {
		t.Errorf("y = %v, expected strictly between 0 and 20 mid-entry", props.Y)
	}
	if props.Opacity <= 0 || props.Opacity >= 1 {
		t.Errorf("opacity = %v, expected strictly between 0 and 1 mid-entry", props.Opacity)
	}
}
