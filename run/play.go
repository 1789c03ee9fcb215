package run

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xhd2015/less-gen/flags"

	"github.com/xhd2015/text-animate/component/text"
	"github.com/xhd2015/text-animate/data"
	"github.com/xhd2015/text-animate/internal/config"
	"github.com/xhd2015/text-animate/log"
	"github.com/xhd2015/text-animate/motion"
	"github.com/xhd2015/text-animate/textanimate"
)

const playHelp = `
text-animate play - Animate text in the terminal

Usage: text-animate play [text] [OPTIONS]

Options:
  --preset <name>                  animation preset (default: fadeIn)
  --by <granularity>               split by text, word, character or line (default: word)
  --delay <seconds>                entry delay
  --exit-delay <seconds>           exit delay
  --duration <seconds>             per-segment duration
  --stagger <seconds>              stagger interval (default depends on --by)
  --once                           never replay after the first entry
  --loop                           replay enter/exit forever
  --fps <n>                        animation frame rate (default: 30)
  --color <hex>                    base text color
  --background <hex>               terminal background color for blending
  --profile <name>                 load a saved profile
  --simulate-view                  start hidden, enter view after a second
  --storage <type>                 storage for --profile: sqlite, file, memory or server
  --server-addr <addr>             server address when --storage=server
  --server-token <token>           server token when --storage=server
  --debug-log <file>               enable debug logging to specified file
  -h,--help                        show this help message

Keys:
  r        replay the entry animation
  x        play the exit animation
  q        quit
`

func handlePlay(args []string) error {
	var raw rawAnim
	var profileName string
	var simulateView bool
	var debugLogFile string
	var storageType string
	var serverAddr string
	var serverToken string

	args, err := flags.String("--preset", &raw.preset).
		String("--by", &raw.by).
		String("--delay", &raw.delay).
		String("--exit-delay", &raw.exitDelay).
		String("--duration", &raw.duration).
		String("--stagger", &raw.stagger).
		Bool("--once", &raw.once).
		Bool("--loop", &raw.loop).
		String("--fps", &raw.fps).
		String("--color", &raw.color).
		String("--background", &raw.background).
		String("--profile", &profileName).
		Bool("--simulate-view", &simulateView).
		String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		String("--debug-log", &debugLogFile).
		Help("-h,--help", playHelp).
		Parse(args)
	if err != nil {
		return err
	}

	animText := strings.Join(args, " ")
	if animText == "" && profileName == "" {
		// fall back to the most recently saved profile
		savedConfig, err := data.LoadConfig()
		if err != nil {
			return err
		}
		if savedConfig != nil {
			profileName = savedConfig.LastProfile
		}
	}
	if profileName != "" {
		profile, err := loadProfile(profileName, storageType, serverAddr, serverToken)
		if err != nil {
			return err
		}
		raw.applyProfile(profile)
		if animText == "" {
			animText = profile.Text
		}
	}
	if animText == "" {
		return fmt.Errorf("requires text")
	}
	animText = text.Sanitize(animText)

	opts, err := raw.options()
	if err != nil {
		return err
	}
	opts.Immediate = !simulateView

	err = ensureConfigDir()
	if err != nil {
		return err
	}
	confDir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	err = log.Init(confDir)
	if err != nil {
		return err
	}
	if debugLogFile != "" {
		file, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open debug log file: %w", err)
		}
		defer file.Close()
		log.SetInfoOutput(file)
	}
	record, _ := raw.profile("", animText)
	log.Infof(context.Background(), "play options=%v", log.JSON(record))

	model := newPlayModel(animText, opts, raw.loop, simulateView)
	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}

type enterViewMsg struct{}

type holdDoneMsg struct{}

// holdTime is how long a looping animation stays fully shown before
// its exit starts.
const holdTime = 800 * time.Millisecond

type playModel struct {
	anim     textanimate.Model
	loop     bool
	simulate bool
	holding  bool
}

var playHelpStyle = lipgloss.NewStyle().Faint(true)

func newPlayModel(animText string, opts textanimate.Options, loop bool, simulate bool) playModel {
	return playModel{
		anim:     textanimate.New(animText, opts),
		loop:     loop,
		simulate: simulate,
	}
}

func (m playModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.anim.Init()}
	if m.simulate {
		cmds = append(cmds, tea.Tick(time.Second, func(time.Time) tea.Msg {
			return enterViewMsg{}
		}))
	}
	return tea.Batch(cmds...)
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			var cmd tea.Cmd
			m.holding = false
			m.anim, cmd = m.anim.Restart()
			return m, cmd
		case "x":
			var cmd tea.Cmd
			m.anim, cmd = m.anim.Exit()
			return m, cmd
		}
	case enterViewMsg:
		var cmd tea.Cmd
		m.anim, cmd = m.anim.SetInView(true)
		return m, cmd
	case holdDoneMsg:
		if m.loop && m.anim.Phase() == textanimate.PhaseShown {
			var cmd tea.Cmd
			m.anim, cmd = m.anim.Exit()
			return m, cmd
		}
	case motion.FrameMsg:
		var cmd tea.Cmd
		m.anim, cmd = m.anim.Update(msg)
		cmds := []tea.Cmd{cmd}
		switch m.anim.Phase() {
		case textanimate.PhaseShown:
			if m.loop && !m.holding {
				m.holding = true
				cmds = append(cmds, tea.Tick(holdTime, func(time.Time) tea.Msg {
					return holdDoneMsg{}
				}))
			}
		case textanimate.PhaseRemoved:
			if !m.loop {
				return m, tea.Quit
			}
			m.holding = false
			var restartCmd tea.Cmd
			m.anim, restartCmd = m.anim.Restart()
			cmds = append(cmds, restartCmd)
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder
	if m.simulate && m.anim.Phase() == textanimate.PhaseHidden {
		b.WriteString(playHelpStyle.Render("(waiting to enter view)"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.anim.View())
		b.WriteString("\n")
	}
	b.WriteString(playHelpStyle.Render("r replay • x exit • q quit"))
	b.WriteString("\n")
	return b.String()
}
