package run

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/xhd2015/text-animate/internal/config"
)

const help = `
text-animate - Animate text in the terminal

Usage: text-animate [text] [OPTIONS]
       text-animate <cmd> [OPTIONS]

Available sub commands:
  play [text]      animate text (default command)
  demo             interactive preset showcase
  scroll           scrolling page with view-triggered animations
  dom              preset picker hosted in a dom-tui app
  presets          print the preset table
  profile          manage saved animation profiles

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
  --debug-log <file>               enable debug logging to specified file
  -h,--help                        show this help message

Examples:
  text-animate "Hello world"                       animate with defaults
  text-animate "Hello world" --preset blurInUp     blur the words in
  text-animate play "Wave" --by character          per-character wave
  text-animate demo                                cycle all presets
  text-animate profile save intro --text "Hi"      save a profile
`

func Main(args []string) error {
	// .env may carry server settings; a missing file is fine
	godotenv.Load()

	if len(args) > 0 {
		switch args[0] {
		case "-h", "--help", "help":
			fmt.Print(strings.TrimPrefix(help, "\n"))
			return nil
		case "play":
			return handlePlay(args[1:])
		case "demo":
			return handleDemo(args[1:])
		case "scroll":
			return handleScroll(args[1:])
		case "dom":
			return handleDom(args[1:])
		case "presets":
			return handlePresets(args[1:])
		case "profile":
			return handleProfile(args[1:])
		}
	}

	// bare invocation plays
	return handlePlay(args)
}

func ensureConfigDir() error {
	confDir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	err = os.MkdirAll(confDir, 0755)
	if err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	return nil
}

func checkNoExtraArgs(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra arguments: %s", strings.Join(args, " "))
	}
	return nil
}
