package run

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xhd2015/go-dom-tui/charm"
	domlog "github.com/xhd2015/go-dom-tui/log"
	"github.com/xhd2015/less-gen/flags"

	"github.com/xhd2015/text-animate/app"
	"github.com/xhd2015/text-animate/component/text"
	"github.com/xhd2015/text-animate/data"
	"github.com/xhd2015/text-animate/internal/process"
	"github.com/xhd2015/text-animate/models"
	"github.com/xhd2015/text-animate/motion"
	"github.com/xhd2015/text-animate/textanimate"
)

const domHelp = `
text-animate dom - Preset picker hosted in a dom-tui app

Usage: text-animate dom [OPTIONS]

Options:
  --text <text>                    text to animate (default: a sample line)
  --preset <name>                  initial preset (default: fadeIn)
  --by <granularity>               split by text, word, character or line (default: word)
  --fps <n>                        animation frame rate (default: 30)
  --color <hex>                    base text color
  --background <hex>               terminal background color for blending
  --debug-log <file>               enable debug logging to specified file
  -h,--help                        show this help message

Keys:
  enter,m  open the preset picker
  up,down  navigate the picker
  r        replay
  x        play the exit animation
  q        quit
`

func handleDom(args []string) error {
	var raw rawAnim
	var domText string
	var debugLogFile string

	args, err := flags.String("--text", &domText).
		String("--preset", &raw.preset).
		String("--by", &raw.by).
		String("--fps", &raw.fps).
		String("--color", &raw.color).
		String("--background", &raw.background).
		String("--debug-log", &debugLogFile).
		Help("-h,--help", domHelp).
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
	if domText == "" {
		domText = demoDefaultText
	}
	domText = text.Sanitize(domText)

	err = ensureConfigDir()
	if err != nil {
		return err
	}

	// the alt-screen app takes over the terminal; refuse to start a
	// second instance
	savedConfig, err := data.LoadConfig()
	if err != nil {
		return err
	}
	if savedConfig != nil && savedConfig.RunningPID > 0 {
		exists, _ := process.ProcessExists(savedConfig.RunningPID)
		if exists {
			return fmt.Errorf("text-animate dom is already running with PID %d", savedConfig.RunningPID)
		}
	}
	if savedConfig == nil {
		savedConfig = &models.Config{}
	}
	savedConfig.RunningPID = os.Getpid()
	err = data.SaveConfig(savedConfig)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	var openedFile *os.File
	if debugLogFile != "" {
		file, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open debug log file: %w", err)
		}
		openedFile = file
		domlog.SetLogger(domlog.NewFileLogger(file))
	}

	presets := textanimate.Presets()
	selectedIndex := 0
	if opts.Preset != "" {
		for i, preset := range presets {
			if preset == opts.Preset {
				selectedIndex = i
				break
			}
		}
	}

	var p *tea.Program
	appState := app.State{
		Anim:          textanimate.New(domText, opts),
		Presets:       presets,
		SelectedIndex: selectedIndex,
		Refresh: func() {
			p.Send(cursor.Blink())
		},
	}
	appState.OnSelectPreset = func(index int) {
		appState.SelectedIndex = index
		next := opts
		next.Preset = presets[index]
		appState.Anim, _ = appState.Anim.SetOptions(next)
	}
	appState.OnReplay = func() {
		appState.Anim, _ = appState.Anim.Restart()
	}
	appState.OnExit = func() {
		appState.Anim, _ = appState.Anim.Exit()
	}

	model := &domModel{
		app: charm.NewCharmApp(&appState, app.App),
	}

	appState.Quit = func() {
		model.quit = true
		if openedFile != nil {
			openedFile.Close()
		}
	}

	// the dom app has no frame message routing; a ticker goroutine
	// advances the animation and triggers re-render
	fps := appState.Anim.Options().Motion.FPS
	if fps <= 0 {
		fps = motion.DefaultFPS
	}
	p = tea.NewProgram(model, tea.WithAltScreen())

	ticker := time.NewTicker(time.Duration(float64(time.Second) / fps))
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case now := <-ticker.C:
				if appState.Anim.Quiescent() {
					continue
				}
				appState.Anim = appState.Anim.Advance(now)
				p.Send(cursor.Blink())
			}
		}
	}()

	_, err = p.Run()
	ticker.Stop()
	close(done)

	savedConfig.RunningPID = 0
	saveErr := data.SaveConfig(savedConfig)
	if err == nil {
		err = saveErr
	}
	return err
}

type domModel struct {
	quit bool
	app  *charm.CharmApp[app.State]
}

func (m *domModel) Init() tea.Cmd {
	return nil
}

func (m *domModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.app.Update(msg)
	if m.quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *domModel) View() string {
	return m.app.Render()
}
