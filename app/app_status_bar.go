package app

import (
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

const UIWidth = 60

// AppStatusBar renders the bottom status line: preset, granularity and
// the current animation phase.
func AppStatusBar(state *State) *dom.Node {
	var nodes []*dom.Node

	nodes = append(nodes, dom.Text("•", styles.Style{
		Bold:  true,
		Color: colors.GREEN_SUCCESS,
	}))
	nodes = append(nodes, dom.Text(string(state.Presets[state.SelectedIndex]), styles.Style{
		Bold:  true,
		Color: colors.GREY_TEXT,
	}))
	nodes = append(nodes, dom.Text(" by "+state.Anim.Options().By.String(), styles.Style{
		Color: colors.GREY_TEXT,
	}))
	nodes = append(nodes, dom.Text(" "+state.Anim.Phase().String(), styles.Style{
		Color: colors.GREY_TEXT,
	}))
	if state.StatusError != "" {
		nodes = append(nodes, dom.Text("  "+state.StatusError, styles.Style{
			Bold:  true,
			Color: colors.RED_ERROR,
		}))
	}

	return dom.Span(dom.DivProps{Width: UIWidth}, nodes...)
}
