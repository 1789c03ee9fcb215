package run

import (
	"testing"

	"github.com/xhd2015/text-animate/models"
	"github.com/xhd2015/text-animate/textanimate"
)

func TestRawAnimOptions(t *testing.T) {
	raw := rawAnim{
		preset:    "blurInUp",
		by:        "character",
		delay:     "0.5",
		exitDelay: "0.25",
		duration:  "1",
		stagger:   "0.1",
		fps:       "60",
		once:      true,
		color:     "#ff0000",
	}
	opts, err := raw.options()
	if err != nil {
		t.Fatalf("options() error: %v", err)
	}
	if opts.Preset != textanimate.PresetBlurInUp {
		t.Errorf("preset = %v, expected %v", opts.Preset, textanimate.PresetBlurInUp)
	}
	if opts.By != textanimate.ByCharacter {
		t.Errorf("by = %v, expected %v", opts.By, textanimate.ByCharacter)
	}
	if opts.Delay != 0.5 || opts.ExitDelay != 0.25 || opts.Duration != 1 || opts.Stagger != 0.1 {
		t.Errorf("timing = %v/%v/%v/%v, expected 0.5/0.25/1/0.1", opts.Delay, opts.ExitDelay, opts.Duration, opts.Stagger)
	}
	if opts.Motion.FPS != 60 {
		t.Errorf("fps = %v, expected 60", opts.Motion.FPS)
	}
	if !opts.Once {
		t.Errorf("once not carried")
	}
	if opts.Color != "#ff0000" {
		t.Errorf("color = %q, expected #ff0000", opts.Color)
	}
}

func TestRawAnimOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  rawAnim
	}{
		{name: "bad preset", raw: rawAnim{preset: "zoom"}},
		{name: "bad by", raw: rawAnim{by: "letter"}},
		{name: "non-numeric delay", raw: rawAnim{delay: "fast"}},
		{name: "negative duration", raw: rawAnim{duration: "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.raw.options(); err == nil {
				t.Errorf("options() = nil error, expected error")
			}
		})
	}
}

func TestApplyProfileFlagsWin(t *testing.T) {
	profile := &models.Profile{
		Name:   "intro",
		Text:   "Hello",
		Preset: "slideUp",
		By:     "word",
		Delay:  0.5,
		FPS:    60,
		Loop:   true,
	}

	raw := rawAnim{preset: "fadeIn"}
	raw.applyProfile(profile)

	if raw.preset != "fadeIn" {
		t.Errorf("preset = %q, expected explicit flag to win", raw.preset)
	}
	if raw.by != "word" {
		t.Errorf("by = %q, expected word from profile", raw.by)
	}
	if raw.delay != "0.5" {
		t.Errorf("delay = %q, expected 0.5 from profile", raw.delay)
	}
	if raw.fps != "60" {
		t.Errorf("fps = %q, expected 60 from profile", raw.fps)
	}
	if !raw.loop {
		t.Errorf("loop not carried from profile")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	raw := rawAnim{
		preset:   "scaleUp",
		by:       "line",
		duration: "0.4",
		loop:     true,
	}
	profile, err := raw.profile("intro", "Hello\nworld")
	if err != nil {
		t.Fatalf("profile() error: %v", err)
	}
	if profile.Name != "intro" || profile.Text != "Hello\nworld" {
		t.Errorf("identity = %q/%q, expected intro/Hello\\nworld", profile.Name, profile.Text)
	}
	if profile.Preset != "scaleUp" || profile.By != "line" {
		t.Errorf("animation = %q/%q, expected scaleUp/line", profile.Preset, profile.By)
	}
	if profile.Duration != 0.4 {
		t.Errorf("duration = %v, expected 0.4", profile.Duration)
	}
	if !profile.Loop {
		t.Errorf("loop not carried")
	}
	if profile.FPS != 30 {
		t.Errorf("fps = %v, expected default 30", profile.FPS)
	}

	// defaults materialize so a saved profile replays identically
	if profile.Preset == "" || profile.By == "" {
		t.Errorf("defaults not materialized: %q/%q", profile.Preset, profile.By)
	}

	var back rawAnim
	back.applyProfile(&profile)
	opts, err := back.options()
	if err != nil {
		t.Fatalf("options() after applyProfile error: %v", err)
	}
	if opts.Preset != textanimate.PresetScaleUp || opts.By != textanimate.ByLine {
		t.Errorf("round trip = %v/%v, expected scaleUp/line", opts.Preset, opts.By)
	}
}
