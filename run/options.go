package run

import (
	"fmt"
	"strconv"

	"github.com/xhd2015/text-animate/models"
	"github.com/xhd2015/text-animate/motion"
	"github.com/xhd2015/text-animate/textanimate"
)

// rawAnim carries animation flag values before validation. Numeric
// flags stay strings so an unset flag is distinguishable from zero.
type rawAnim struct {
	preset     string
	by         string
	delay      string
	exitDelay  string
	duration   string
	stagger    string
	fps        string
	once       bool
	loop       bool
	color      string
	background string
}

func parseSeconds(name string, value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", name, value)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid %s: %s, must not be negative", name, value)
	}
	return v, nil
}

// applyProfile fills unset flag values from a saved profile, so
// explicit flags always win.
func (r *rawAnim) applyProfile(p *models.Profile) {
	if r.preset == "" {
		r.preset = p.Preset
	}
	if r.by == "" {
		r.by = p.By
	}
	if r.delay == "" && p.Delay > 0 {
		r.delay = strconv.FormatFloat(p.Delay, 'f', -1, 64)
	}
	if r.exitDelay == "" && p.ExitDelay > 0 {
		r.exitDelay = strconv.FormatFloat(p.ExitDelay, 'f', -1, 64)
	}
	if r.duration == "" && p.Duration > 0 {
		r.duration = strconv.FormatFloat(p.Duration, 'f', -1, 64)
	}
	if r.stagger == "" && p.Stagger > 0 {
		r.stagger = strconv.FormatFloat(p.Stagger, 'f', -1, 64)
	}
	if r.fps == "" && p.FPS > 0 {
		r.fps = strconv.FormatFloat(p.FPS, 'f', -1, 64)
	}
	if r.color == "" {
		r.color = p.Color
	}
	if r.background == "" {
		r.background = p.Background
	}
	r.once = r.once || p.Once
	r.loop = r.loop || p.Loop
}

// options validates the raw values into component options.
func (r *rawAnim) options() (textanimate.Options, error) {
	var opts textanimate.Options

	if r.preset != "" {
		preset, err := textanimate.ParsePreset(r.preset)
		if err != nil {
			return opts, err
		}
		opts.Preset = preset
	}
	if r.by != "" {
		by, err := textanimate.ParseBy(r.by)
		if err != nil {
			return opts, err
		}
		opts.By = by
	}

	var err error
	if opts.Delay, err = parseSeconds("--delay", r.delay); err != nil {
		return opts, err
	}
	if opts.ExitDelay, err = parseSeconds("--exit-delay", r.exitDelay); err != nil {
		return opts, err
	}
	if opts.Duration, err = parseSeconds("--duration", r.duration); err != nil {
		return opts, err
	}
	if opts.Stagger, err = parseSeconds("--stagger", r.stagger); err != nil {
		return opts, err
	}
	if opts.Motion.FPS, err = parseSeconds("--fps", r.fps); err != nil {
		return opts, err
	}

	opts.Once = r.once
	opts.Color = r.color
	opts.Background = r.background
	return opts, nil
}

// profile converts the raw values into a profile record for saving.
func (r *rawAnim) profile(name string, text string) (models.Profile, error) {
	opts, err := r.options()
	if err != nil {
		return models.Profile{}, err
	}
	preset := r.preset
	if preset == "" {
		preset = string(textanimate.PresetFadeIn)
	}
	by := r.by
	if by == "" {
		by = textanimate.ByWord.String()
	}
	fps := opts.Motion.FPS
	if fps == 0 {
		fps = motion.DefaultFPS
	}
	return models.Profile{
		Name:       name,
		Text:       text,
		Preset:     preset,
		By:         by,
		Delay:      opts.Delay,
		ExitDelay:  opts.ExitDelay,
		Duration:   opts.Duration,
		Stagger:    opts.Stagger,
		Once:       r.once,
		Loop:       r.loop,
		FPS:        fps,
		Color:      r.color,
		Background: r.background,
	}, nil
}

// loadProfile fetches a saved profile through the configured storage.
func loadProfile(name string, storageType string, serverAddr string, serverToken string) (*models.Profile, error) {
	storageConfig, err := ApplyConfigDefaults(storageType, serverAddr, serverToken)
	if err != nil {
		return nil, err
	}
	service, err := createProfileService(storageConfig.StorageType, storageConfig.ServerAddr, storageConfig.ServerToken)
	if err != nil {
		return nil, err
	}
	profile, err := service.Get(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %q: %w", name, err)
	}
	return profile, nil
}
