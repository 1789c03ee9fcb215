package run

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/xhd2015/text-animate/textanimate"
)

const presetsHelp = `
text-animate presets - Print the preset table

Usage: text-animate presets [OPTIONS]

Options:
  -h,--help  show this help message
`

var presetDescriptions = map[textanimate.Preset]string{
	textanimate.PresetFadeIn:     "fade in while rising slightly",
	textanimate.PresetBlurIn:     "sharpen from a blur in place",
	textanimate.PresetBlurInUp:   "sharpen from a blur while rising",
	textanimate.PresetBlurInDown: "sharpen from a blur while dropping",
	textanimate.PresetSlideUp:    "slide in from below, leave upward",
	textanimate.PresetSlideDown:  "slide in from above, leave downward",
	textanimate.PresetSlideLeft:  "slide in from the right, leave left",
	textanimate.PresetSlideRight: "slide in from the left, leave right",
	textanimate.PresetScaleUp:    "spring up from half size",
	textanimate.PresetScaleDown:  "spring down from one-and-a-half size",
}

func handlePresets(args []string) error {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		fmt.Print(strings.TrimPrefix(presetsHelp, "\n"))
		return nil
	}
	err := checkNoExtraArgs(args)
	if err != nil {
		return err
	}

	width := 80
	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	if isTerminal {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil && w > 0 {
			width = w
		}
	}

	nameStyle := lipgloss.NewStyle().Bold(true)

	nameWidth := 0
	presets := textanimate.Presets()
	for _, preset := range presets {
		if len(preset) > nameWidth {
			nameWidth = len(preset)
		}
	}

	for _, preset := range presets {
		name := string(preset)
		desc := presetDescriptions[preset]
		timing := "0.3s ease-out"
		if preset == textanimate.PresetScaleUp || preset == textanimate.PresetScaleDown {
			timing = "spring 300/15"
		}
		line := fmt.Sprintf("%-*s  %-14s %s", nameWidth, name, timing, desc)
		if len(line) > width {
			line = line[:width]
		}
		if isTerminal {
			line = strings.Replace(line, name, nameStyle.Render(name), 1)
		}
		fmt.Println(line)
	}
	return nil
}
