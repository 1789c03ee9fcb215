package run

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xhd2015/less-gen/flags"

	"github.com/xhd2015/text-animate/data"
	"github.com/xhd2015/text-animate/data/storage"
	"github.com/xhd2015/text-animate/models"
)

const profileHelp = `
text-animate profile - Manage saved animation profiles

Usage: text-animate profile <cmd> [OPTIONS]

Available sub commands:
  save <name>      save a profile (overwrites an existing one)
  list             list saved profiles
  show <name>      print a profile
  delete <name>    delete a profile

Options:
  --storage <type>                 storage backend: sqlite, file (default), memory or server
  --server-addr <addr>             server address (required when --storage=server)
  --server-token <token>           server token (optional when --storage=server)
  -h,--help                        show this help message

Save options:
  --text <text>                    text to animate
  --preset <name>                  animation preset
  --by <granularity>               split by text, word, character or line
  --delay <seconds>                entry delay
  --exit-delay <seconds>           exit delay
  --duration <seconds>             per-segment duration
  --stagger <seconds>              stagger interval
  --once                           never replay after the first entry
  --loop                           replay enter/exit forever
  --fps <n>                        animation frame rate
  --color <hex>                    base text color
  --background <hex>               terminal background color for blending

List options:
  --json                           output raw JSON instead of a table
  --filter <pattern>               only list profiles whose name or text matches
  --sort-by <field>                sort by name, create_time or update_time

Examples:
  text-animate profile save intro --text "Hello" --preset blurInUp
  text-animate profile list
  text-animate profile show intro
  text-animate profile delete intro
`

func handleProfile(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("requires sub command, use -h to see available commands")
	}
	cmd := args[0]
	args = args[1:]
	switch cmd {
	case "save":
		return handleProfileSave(args)
	case "list":
		return handleProfileList(args)
	case "show":
		return handleProfileShow(args)
	case "delete":
		return handleProfileDelete(args)
	case "-h", "--help", "help":
		fmt.Println(strings.TrimPrefix(profileHelp, "\n"))
		return nil
	}
	return fmt.Errorf("unrecognized command: %s, use -h to see available commands", cmd)
}

func createProfileManager(storageType string, serverAddr string, serverToken string) (*data.ProfileManager, error) {
	err := ensureConfigDir()
	if err != nil {
		return nil, err
	}
	storageConfig, err := ApplyConfigDefaults(storageType, serverAddr, serverToken)
	if err != nil {
		return nil, err
	}
	service, err := createProfileService(storageConfig.StorageType, storageConfig.ServerAddr, storageConfig.ServerToken)
	if err != nil {
		return nil, err
	}
	return data.NewProfileManager(service), nil
}

func handleProfileSave(args []string) error {
	var raw rawAnim
	var profileText string
	var storageType string
	var serverAddr string
	var serverToken string

	args, err := flags.String("--text", &profileText).
		String("--preset", &raw.preset).
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
		String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		Help("-h,--help", profileHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("requires profile name")
	}
	name := args[0]
	err = checkNoExtraArgs(args[1:])
	if err != nil {
		return err
	}
	if profileText == "" {
		return fmt.Errorf("requires --text")
	}

	profile, err := raw.profile(name, profileText)
	if err != nil {
		return err
	}

	manager, err := createProfileManager(storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}
	err = manager.Save(profile)
	if err != nil {
		return err
	}

	// remember the most recently saved profile
	savedConfig, err := data.LoadConfig()
	if err != nil {
		return err
	}
	if savedConfig == nil {
		savedConfig = &models.Config{}
	}
	savedConfig.LastProfile = name
	err = data.SaveConfig(savedConfig)
	if err != nil {
		return err
	}

	fmt.Printf("saved profile %s\n", name)
	return nil
}

func handleProfileList(args []string) error {
	var storageType string
	var serverAddr string
	var serverToken string
	var jsonOutput bool
	var filter string
	var sortBy string

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		Bool("--json", &jsonOutput).
		String("--filter", &filter).
		String("--sort-by", &sortBy).
		Help("-h,--help", profileHelp).
		Parse(args)
	if err != nil {
		return err
	}
	err = checkNoExtraArgs(args)
	if err != nil {
		return err
	}

	manager, err := createProfileManager(storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}
	profiles, _, err := manager.ProfileService.List(storage.ProfileListOptions{
		Filter: filter,
		SortBy: sortBy,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(profiles)
	}

	if len(profiles) == 0 {
		fmt.Println("no profiles")
		return nil
	}
	nameWidth := len("NAME")
	for _, profile := range profiles {
		if len(profile.Name) > nameWidth {
			nameWidth = len(profile.Name)
		}
	}
	fmt.Printf("%-*s  %-12s  %-9s  %s\n", nameWidth, "NAME", "PRESET", "BY", "TEXT")
	for _, profile := range profiles {
		text := profile.Text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = text[:i] + "..."
		}
		fmt.Printf("%-*s  %-12s  %-9s  %s\n", nameWidth, profile.Name, profile.Preset, profile.By, text)
	}
	return nil
}

func handleProfileShow(args []string) error {
	var storageType string
	var serverAddr string
	var serverToken string
	var jsonOutput bool

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		Bool("--json", &jsonOutput).
		Help("-h,--help", profileHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("requires profile name")
	}
	name := args[0]
	err = checkNoExtraArgs(args[1:])
	if err != nil {
		return err
	}

	manager, err := createProfileManager(storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}
	profile, err := manager.Get(name)
	if err != nil {
		return err
	}

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(profile)
	}

	fmt.Printf("name: %s\n", profile.Name)
	fmt.Printf("text: %s\n", profile.Text)
	fmt.Printf("preset: %s\n", profile.Preset)
	fmt.Printf("by: %s\n", profile.By)
	if profile.Delay > 0 {
		fmt.Printf("delay: %gs\n", profile.Delay)
	}
	if profile.ExitDelay > 0 {
		fmt.Printf("exit-delay: %gs\n", profile.ExitDelay)
	}
	if profile.Duration > 0 {
		fmt.Printf("duration: %gs\n", profile.Duration)
	}
	if profile.Stagger > 0 {
		fmt.Printf("stagger: %gs\n", profile.Stagger)
	}
	fmt.Printf("once: %v\n", profile.Once)
	fmt.Printf("loop: %v\n", profile.Loop)
	fmt.Printf("fps: %g\n", profile.FPS)
	if profile.Color != "" {
		fmt.Printf("color: %s\n", profile.Color)
	}
	if profile.Background != "" {
		fmt.Printf("background: %s\n", profile.Background)
	}
	return nil
}

func handleProfileDelete(args []string) error {
	var storageType string
	var serverAddr string
	var serverToken string

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		Help("-h,--help", profileHelp).
		Parse(args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("requires profile name")
	}
	name := args[0]
	err = checkNoExtraArgs(args[1:])
	if err != nil {
		return err
	}

	manager, err := createProfileManager(storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}
	err = manager.Delete(name)
	if err != nil {
		return err
	}
	fmt.Printf("deleted profile %s\n", name)
	return nil
}
