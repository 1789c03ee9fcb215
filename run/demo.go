package run

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xhd2015/less-gen/flags"

	"github.com/xhd2015/text-animate/internal/stats"
	"github.com/xhd2015/text-animate/motion"
	"github.com/xhd2015/text-animate/textanimate"
)

const demoHelp = `
text-animate demo - Interactive preset showcase

Usage: text-animate demo [OPTIONS]

Options:
  --text <text>                    text to animate (default: a sample line)
  --fps <n>                        animation frame rate (default: 30)
  --color <hex>                    base text color
  --background <hex>               terminal background color for blending
  -h,--help                        show this help message

Keys:
  space,n  next preset
  p        previous preset
  b        cycle granularity (word, character, line, text)
  r        replay
  x        play the exit animation
  c        copy the current frame to the clipboard
  s        toggle the stats overlay
  q        quit
`

const demoDefaultText = "The quick brown fox\njumps over the lazy dog"

func handleDemo(args []string) error {
	var raw rawAnim
	var demoText string

	args, err := flags.String("--text", &demoText).
		String("--fps", &raw.fps).
		String("--color", &raw.color).
		String("--background", &raw.background).
		Help("-h,--help", demoHelp).
		Parse(args)
	if err != nil {
		return err
	}
	err = checkNoExtraArgs(args)
	if err != nil {
		return err
	}

	opts, err := raw.options()
	if err != nil {
		return err
	}
	opts.Immediate = true
	if demoText == "" {
		demoText = demoDefaultText
	}

	sampler, err := stats.NewSampler()
	if err != nil {
		return err
	}

	model := newDemoModel(demoText, opts, sampler)
	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}

var demoGranularities = []textanimate.By{
	textanimate.ByWord,
	textanimate.ByCharacter,
	textanimate.ByLine,
	textanimate.ByText,
}

var (
	demoBarStyle  = lipgloss.NewStyle().Faint(true)
	demoNameStyle = lipgloss.NewStyle().Bold(true)
)

type demoModel struct {
	anim    textanimate.Model
	base    textanimate.Options
	text    string
	presets []textanimate.Preset

	presetIndex int
	byIndex     int

	sampler   *stats.Sampler
	showStats bool
	notice    string
}

func newDemoModel(demoText string, base textanimate.Options, sampler *stats.Sampler) demoModel {
	m := demoModel{
		base:    base,
		text:    demoText,
		presets: textanimate.Presets(),
		sampler: sampler,
	}
	m.anim = textanimate.New(demoText, m.currentOptions())
	return m
}

func (m demoModel) currentOptions() textanimate.Options {
	opts := m.base
	opts.Preset = m.presets[m.presetIndex]
	opts.By = demoGranularities[m.byIndex]
	return opts
}

func (m demoModel) Init() tea.Cmd {
	return m.anim.Init()
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.notice = ""
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "n":
			m.presetIndex = (m.presetIndex + 1) % len(m.presets)
			return m.restart()
		case "p":
			m.presetIndex = (m.presetIndex - 1 + len(m.presets)) % len(m.presets)
			return m.restart()
		case "b":
			m.byIndex = (m.byIndex + 1) % len(demoGranularities)
			return m.restart()
		case "r":
			var cmd tea.Cmd
			m.anim, cmd = m.anim.Restart()
			return m, cmd
		case "x":
			var cmd tea.Cmd
			m.anim, cmd = m.anim.Exit()
			return m, cmd
		case "c":
			frame := strings.Join(m.anim.PlainLines(time.Now()), "\n")
			err := clipboard.WriteAll(frame)
			if err != nil {
				m.notice = fmt.Sprintf("copy failed: %v", err)
			} else {
				m.notice = "copied"
			}
			return m, nil
		case "s":
			m.showStats = !m.showStats
			return m, nil
		}
	case motion.FrameMsg:
		var cmd tea.Cmd
		m.anim, cmd = m.anim.Update(msg)
		if m.showStats {
			m.sampler.Sample()
		}
		return m, cmd
	}
	return m, nil
}

func (m demoModel) restart() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.anim, cmd = m.anim.SetOptions(m.currentOptions())
	return m, cmd
}

func (m demoModel) View() string {
	var b strings.Builder
	b.WriteString(m.statusBar())
	b.WriteString("\n\n")
	b.WriteString(m.anim.View())
	b.WriteString("\n")
	b.WriteString(demoBarStyle.Render("space next • b granularity • r replay • x exit • c copy • s stats • q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m demoModel) statusBar() string {
	parts := []string{
		demoNameStyle.Render(string(m.presets[m.presetIndex])),
		"by " + demoGranularities[m.byIndex].String(),
		fmt.Sprintf("%g fps", m.anim.Options().Motion.FPS),
		m.anim.Phase().String(),
	}
	if m.showStats {
		parts = append(parts, m.sampler.Format())
	}
	if m.notice != "" {
		parts = append(parts, m.notice)
	}
	return demoBarStyle.Render(strings.Join(parts, " • "))
}
