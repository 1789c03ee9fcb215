// Package domtui hosts an animated text component inside a go-dom-tui
// node tree. The adapter renders the model's current frame; driving
// time stays with the hosting app's refresh loop.
package domtui

import (
	"time"

	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/text-animate/textanimate"
)

type Props struct {
	Model *textanimate.Model
	// Now is the evaluation time; zero means time.Now()
	Now time.Time
	// Style merges with the component's structural base style
	Style styles.Style
}

// TextAnimate renders the model's current frame as a dom node. A "div"
// tag stacks lines block-style; the default "span" tag emits one
// horizontal row per line so the component flows with siblings.
func TextAnimate(props Props) *dom.Node {
	if props.Model == nil {
		return dom.Div(dom.DivProps{})
	}
	now := props.Now
	if now.IsZero() {
		now = time.Now()
	}
	lines := props.Model.RenderLines(now)

	if props.Model.Options().Tag == "div" {
		var children []*dom.Node
		for _, line := range lines {
			children = append(children, dom.Text(line, props.Style))
			children = append(children, dom.Br())
		}
		return dom.Div(dom.DivProps{}, children...)
	}

	rows := make([]*dom.Node, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, dom.Span(dom.DivProps{}, dom.Text(line, props.Style)))
	}
	return dom.Div(dom.DivProps{}, rows...)
}
