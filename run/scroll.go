package run

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xhd2015/less-gen/flags"

	"github.com/xhd2015/text-animate/motion"
	"github.com/xhd2015/text-animate/textanimate"
)

const scrollHelp = `
text-animate scroll - Scrolling page with view-triggered animations

Each section animates in when scrolled into view and animates out
when scrolled away.

Usage: text-animate scroll [OPTIONS]

Options:
  --by <granularity>               split by text, word, character or line (default: word)
  --once                           animate each section only on its first entry
  --fps <n>                        animation frame rate (default: 30)
  --color <hex>                    base text color
  --background <hex>               terminal background color for blending
  -h,--help                        show this help message

Keys:
  up,down,j,k      scroll
  pgup,pgdown      page
  q                quit
`

// sectionBodyLines reserves a fixed block per section so line offsets
// stay stable while segments shift during animation.
const sectionBodyLines = 5

var (
	scrollHeadingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	scrollFootStyle    = lipgloss.NewStyle().Faint(true)
)

func handleScroll(args []string) error {
	var raw rawAnim

	args, err := flags.String("--by", &raw.by).
		Bool("--once", &raw.once).
		String("--fps", &raw.fps).
		String("--color", &raw.color).
		String("--background", &raw.background).
		Help("-h,--help", scrollHelp).
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

	model := newScrollModel(opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type scrollSection struct {
	title string
	anim  textanimate.Model
	top   int
}

func (s *scrollSection) height() int {
	return 1 + sectionBodyLines + 1
}

type scrollModel struct {
	viewport viewport.Model
	sections []*scrollSection
	ready    bool
}

var scrollSampleTexts = []string{
	"Words drift in one by one,\nthen settle into place.",
	"Every glyph gets its own entrance here.",
	"Lines rise from below\nstacked like floors\nof a building.",
	"Sliding in from the side,\nsliding out the other way.",
	"Small things grow,\nlarge things shrink,\nall of them spring.",
}

func newScrollModel(base textanimate.Options) scrollModel {
	presets := textanimate.Presets()
	var sections []*scrollSection
	top := 0
	for i, preset := range presets {
		opts := base
		opts.Preset = preset
		section := &scrollSection{
			title: string(preset),
			anim:  textanimate.New(scrollSampleTexts[i%len(scrollSampleTexts)], opts),
			top:   top,
		}
		sections = append(sections, section)
		top += section.height()
	}
	return scrollModel{sections: sections}
}

func (m scrollModel) Init() tea.Cmd {
	return nil
}

func (m scrollModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-1)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 1
		}
	case motion.FrameMsg:
		for _, section := range m.sections {
			var cmd tea.Cmd
			section.anim, cmd = section.anim.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		m.refreshContent()
		return m, tea.Batch(cmds...)
	}

	if !m.ready {
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.updateVisibility()...)
	m.refreshContent()
	return m, tea.Batch(cmds...)
}

// updateVisibility flips each section in or out of view based on the
// scroll position.
func (m *scrollModel) updateVisibility() []tea.Cmd {
	var cmds []tea.Cmd
	viewTop := m.viewport.YOffset
	viewBottom := viewTop + m.viewport.Height
	for _, section := range m.sections {
		visible := section.top < viewBottom && section.top+section.height() > viewTop
		var cmd tea.Cmd
		section.anim, cmd = section.anim.SetInView(visible)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (m *scrollModel) refreshContent() {
	if !m.ready {
		return
	}
	now := time.Now()
	var lines []string
	for _, section := range m.sections {
		lines = append(lines, scrollHeadingStyle.Render(section.title))
		body := section.anim.RenderLines(now)
		for i := 0; i < sectionBodyLines; i++ {
			if i < len(body) {
				lines = append(lines, body[i])
			} else {
				lines = append(lines, "")
			}
		}
		lines = append(lines, "")
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m scrollModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.viewport.View() + "\n" + scrollFootStyle.Render("scroll with j/k • q quit")
}
