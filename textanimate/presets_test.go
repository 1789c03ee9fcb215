package textanimate

import (
	"testing"
)

func TestPresetsComplete(t *testing.T) {
	presets := Presets()
	if len(presets) != 10 {
		t.Fatalf("got %d presets, expected 10", len(presets))
	}
	for _, p := range presets {
		if _, ok := presetTable[p]; !ok {
			t.Errorf("preset %s missing from table", p)
		}
		if _, err := ParsePreset(string(p)); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", p, err)
		}
	}
	if _, err := ParsePreset("wobble"); err == nil {
		t.Errorf("expected error for unknown preset")
	}
}

func TestSlideLeftRightMirror(t *testing.T) {
	left := PresetVariants(PresetSlideLeft).Item
	right := PresetVariants(PresetSlideRight).Item

	if left.Hidden.X == nil || *left.Hidden.X != 20 {
		t.Errorf("slideLeft hidden x = %v, expected +20", left.Hidden.X)
	}
	if left.Visible.X == nil || *left.Visible.X != 0 {
		t.Errorf("slideLeft visible x = %v, expected 0", left.Visible.X)
	}
	if right.Hidden.X == nil || *right.Hidden.X != -20 {
		t.Errorf("slideRight hidden x = %v, expected -20", right.Hidden.X)
	}
	if right.Visible.X == nil || *right.Visible.X != 0 {
		t.Errorf("slideRight visible x = %v, expected 0", right.Visible.X)
	}
	// exits continue in the travel direction
	if left.Exit.X == nil || *left.Exit.X != -20 {
		t.Errorf("slideLeft exit x = %v, expected -20", left.Exit.X)
	}
	if right.Exit.X == nil || *right.Exit.X != 20 {
		t.Errorf("slideRight exit x = %v, expected +20", right.Exit.X)
	}
}

func TestDefaultStagger(t *testing.T) {
	tests := []struct {
		by       By
		expected float64
	}{
		{by: ByText, expected: 0.06},
		{by: ByWord, expected: 0.05},
		{by: ByCharacter, expected: 0.03},
		{by: ByLine, expected: 0.06},
	}
	for _, tt := range tests {
		if got := DefaultStagger(tt.by); got != tt.expected {
			t.Errorf("DefaultStagger(%v) = %v, expected %v", tt.by, got, tt.expected)
		}
	}
}

func TestItemTimingDelaysAreOffsets(t *testing.T) {
	for _, p := range Presets() {
		show, exit := PresetVariants(p).Item.Timing(0.05, 0.10)
		if show.Delay != 0.05 {
			t.Errorf("%s: show delay = %v, expected entry offset 0.05", p, show.Delay)
		}
		if exit.Delay != 0.10 {
			t.Errorf("%s: exit delay = %v, expected exit offset 0.10", p, exit.Delay)
		}
		if show.Duration != 0.3 {
			t.Errorf("%s: show duration = %v, expected 0.3", p, show.Duration)
		}
	}
}

func TestScalePresetsUseSpring(t *testing.T) {
	for _, p := range []Preset{PresetScaleUp, PresetScaleDown} {
		show, _ := PresetVariants(p).Item.Timing(0, 0)
		if show.Spring == nil {
			t.Fatalf("%s: expected a spring transition", p)
		}
		if show.Spring.Stiffness != 300 || show.Spring.Damping != 15 {
			t.Errorf("%s: spring = %+v, expected stiffness 300 damping 15", p, show.Spring)
		}
	}
	up := PresetVariants(PresetScaleUp).Item
	if up.Hidden.Scale == nil || *up.Hidden.Scale != 0.5 {
		t.Errorf("scaleUp hidden scale = %v, expected 0.5", up.Hidden.Scale)
	}
	down := PresetVariants(PresetScaleDown).Item
	if down.Hidden.Scale == nil || *down.Hidden.Scale != 1.5 {
		t.Errorf("scaleDown hidden scale = %v, expected 1.5", down.Hidden.Scale)
	}
}

func TestBlurPresetsPerPropertyTiming(t *testing.T) {
	for _, p := range []Preset{PresetBlurInUp, PresetBlurInDown} {
		show, _ := PresetVariants(p).Item.Timing(0, 0)
		if show.PerProperty["opacity"] != 0.4 {
			t.Errorf("%s: opacity duration = %v, expected 0.4", p, show.PerProperty["opacity"])
		}
		if show.PerProperty["y"] != 0.3 {
			t.Errorf("%s: y duration = %v, expected 0.3", p, show.PerProperty["y"])
		}
	}
}

func TestContainerTiming(t *testing.T) {
	show, exit := PresetVariants(PresetFadeIn).Container.Timing(0.2, 0.4)
	if show.Delay != 0.2 {
		t.Errorf("container show delay = %v, expected 0.2", show.Delay)
	}
	if !show.Before {
		t.Errorf("container must become visible before children animate in")
	}
	if exit.Delay != 0.4 {
		t.Errorf("container exit delay = %v, expected 0.4", exit.Delay)
	}
	if !exit.AfterChildren {
		t.Errorf("container must wait for children to finish animating out")
	}
}

func TestUnknownPresetFallsBack(t *testing.T) {
	v := PresetVariants(Preset("missing"))
	if v.Item.Hidden.Opacity == nil || *v.Item.Hidden.Opacity != 0 {
		t.Errorf("fallback hidden opacity = %v, expected 0", v.Item.Hidden.Opacity)
	}
	if v.Item.Hidden.X != nil || v.Item.Hidden.Y != nil {
		t.Errorf("fallback must animate opacity only")
	}
}
