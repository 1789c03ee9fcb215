package app

import (
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

// PresetMenu renders the preset picker. The selected item is focused
// so it receives key events for navigation.
func PresetMenu(state *State) *dom.Node {
	children := make([]*dom.Node, 0, len(state.Presets))
	for i, preset := range state.Presets {
		i := i
		selected := i == state.SelectedIndex
		style := styles.Style{
			Bold: selected,
		}
		if selected {
			style.BackgroundColor = colors.PURPLE_PRIMARY
		}
		children = append(children, dom.Div(dom.DivProps{
			Focused:   selected,
			Focusable: true,
			OnKeyDown: func(e *dom.DOMEvent) {
				switch eventKey(e) {
				case "up":
					next := i - 1
					if next < 0 {
						next = len(state.Presets) - 1
					}
					e.PreventDefault()
					state.SelectedIndex = next
				case "down":
					next := i + 1
					if next >= len(state.Presets) {
						next = 0
					}
					e.PreventDefault()
					state.SelectedIndex = next
				case "enter":
					state.MenuOpen = false
					if state.OnSelectPreset != nil {
						state.OnSelectPreset(i)
					}
				}
			},
		}, dom.Text(string(preset), style)))
	}
	return dom.Div(dom.DivProps{
		Style: styles.Style{
			BorderRouned: true,
			BorderColor:  colors.PURPLE_PRIMARY,
			NoDefault:    true,
		},
		Focusable: true,
		OnKeyDown: func(d *dom.DOMEvent) {
			if eventKey(d) == "esc" {
				d.PreventDefault()
				state.MenuOpen = false
			}
		},
	},
		dom.Div(dom.DivProps{
			Style: styles.Style{
				Color:  colors.GREY_TEXT,
				Italic: true,
			},
		}, dom.Text("pick a preset", styles.Style{
			Bold: true,
		})),
		dom.Fragment(
			children...,
		),
	)
}
