package app

import (
	"time"

	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/text-animate/domtui"
	"github.com/xhd2015/text-animate/textanimate"
)

const (
	CtrlCExitDelayMs = 1000
)

// eventKey returns the key name of a keydown event: the KeyType for
// special keys (e.g. "enter", "esc", "up"), otherwise the typed runes
// (e.g. "m", "q").
func eventKey(e *dom.DOMEvent) string {
	keyEvent := e.KeydownEvent
	if keyEvent == nil {
		return ""
	}
	if keyEvent.KeyType != "" {
		return string(keyEvent.KeyType)
	}
	return string(keyEvent.Runes)
}

type State struct {
	Anim textanimate.Model

	Presets       []textanimate.Preset
	SelectedIndex int
	MenuOpen      bool

	StatusError string

	Quit    func()
	Refresh func()

	OnSelectPreset func(index int)
	OnReplay       func()
	OnExit         func()

	LastCtrlC time.Time
}

func App(state *State, window *dom.Window) *dom.Node {
	return dom.Div(dom.DivProps{
		OnKeyDown: func(event *dom.DOMEvent) {
			keyEvent := event.KeydownEvent
			if keyEvent != nil && keyEvent.KeyType == dom.KeyTypeCtrlC {
				if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
					state.Quit()
					return
				}
				state.LastCtrlC = time.Now()

				go func() {
					time.Sleep(time.Millisecond * CtrlCExitDelayMs)
					state.Refresh()
				}()
				return
			}
			if state.MenuOpen {
				return
			}
			switch eventKey(event) {
			case "enter", "m":
				state.MenuOpen = true
			case "r":
				if state.OnReplay != nil {
					state.OnReplay()
				}
			case "x":
				if state.OnExit != nil {
					state.OnExit()
				}
			case "q":
				state.Quit()
			}
		},
	},
		dom.H1(dom.DivProps{}, dom.Text("Text Animate", styles.Style{
			Bold:        true,
			BorderColor: "orange",
		})),

		func() *dom.Node {
			if state.MenuOpen {
				return PresetMenu(state)
			}
			return domtui.TextAnimate(domtui.Props{
				Model: &state.Anim,
			})
		}(),

		AppStatusBar(state),

		func() *dom.Node {
			if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
				return dom.Text("press Ctrl-C again to exit", styles.Style{
					Bold:  true,
					Color: "1",
				})
			}
			return dom.Text("enter pick preset, r replay, x exit, q quit")
		}(),
	)
}
