package domtui

import (
	"strings"
	"testing"
	"time"

	"github.com/xhd2015/go-dom-tui/charm/renderer"
	"github.com/xhd2015/text-animate/textanimate"
)

func shownModel(t *testing.T, text string, opts textanimate.Options) textanimate.Model {
	t.Helper()
	opts.Immediate = true
	opts.Color = "#ffffff"
	opts.Background = "#000000"
	m := textanimate.New(text, opts)
	// jump past the entry timeline
	m = m.Advance(time.Now().Add(time.Minute))
	if m.Phase() != textanimate.PhaseShown {
		t.Fatalf("phase = %v, expected shown", m.Phase())
	}
	return m
}

func TestTextAnimateRendersShownText(t *testing.T) {
	m := shownModel(t, "Hello world", textanimate.Options{})

	node := TextAnimate(Props{Model: &m})

	r := renderer.NewInteractiveCharmRenderer()
	output := r.Render(node)
	if !strings.Contains(output, "Hello world") {
		t.Errorf("expected rendered text, got: %s", output)
	}
}

func TestTextAnimateDivTagStacksLines(t *testing.T) {
	m := shownModel(t, "one\ntwo", textanimate.Options{By: textanimate.ByLine, Tag: "div"})

	node := TextAnimate(Props{Model: &m})

	r := renderer.NewInteractiveCharmRenderer()
	output := r.Render(node)
	if !strings.Contains(output, "one") || !strings.Contains(output, "two") {
		t.Errorf("expected both lines rendered, got: %s", output)
	}
	oneIdx := strings.Index(output, "one")
	twoIdx := strings.Index(output, "two")
	if oneIdx > twoIdx {
		t.Errorf("expected lines in order, got: %s", output)
	}
}

func TestTextAnimateNilModel(t *testing.T) {
	node := TextAnimate(Props{})
	if node == nil {
		t.Fatalf("expected an empty node for a nil model")
	}
}
