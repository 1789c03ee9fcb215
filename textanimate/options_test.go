package textanimate

import (
	"testing"

	"github.com/xhd2015/text-animate/motion"
)

func TestNormalizeStaggerPerGranularity(t *testing.T) {
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
		opts := Options{By: tt.by}.normalize()
		if opts.Stagger != tt.expected {
			t.Errorf("normalize stagger for %v = %v, expected %v", tt.by, opts.Stagger, tt.expected)
		}
	}

	// explicit stagger wins
	opts := Options{By: ByWord, Stagger: 0.2}.normalize()
	if opts.Stagger != 0.2 {
		t.Errorf("explicit stagger overridden: got %v", opts.Stagger)
	}
}

func TestNormalizeWrapsStaticSegmentStyle(t *testing.T) {
	opts := Options{SegmentStyle: Style{Bold: true}}.normalize()
	if opts.SegmentStyleFunc == nil {
		t.Fatalf("expected static segment style wrapped into a function")
	}
	for i := 0; i < 3; i++ {
		if st := opts.SegmentStyleFunc("any", i); !st.Bold {
			t.Errorf("segment %d: got %+v, expected bold", i, st)
		}
	}
}

func TestNormalizeEngineDefaults(t *testing.T) {
	opts := Options{}.normalize()
	if opts.Motion.FPS != motion.DefaultFPS {
		t.Errorf("fps = %v, expected %v", opts.Motion.FPS, motion.DefaultFPS)
	}
	if opts.Motion.Ease != motion.EaseOut {
		t.Errorf("ease = %v, expected %v", opts.Motion.Ease, motion.EaseOut)
	}
	if opts.Color == "" || opts.Background == "" {
		t.Errorf("expected blend colors resolved, got %q / %q", opts.Color, opts.Background)
	}
}

func TestVariantSourcePrecedence(t *testing.T) {
	// custom beats preset
	custom := fallbackVariants()
	opts := Options{Preset: PresetSlideLeft, Variants: &custom}.normalize()
	if v := opts.variants(); v.Item.Hidden.X != nil {
		t.Errorf("custom variants must win over the preset")
	}

	// preset applies without custom
	opts = Options{Preset: PresetSlideLeft}.normalize()
	if v := opts.variants(); v.Item.Hidden.X == nil || *v.Item.Hidden.X != 20 {
		t.Errorf("expected slideLeft preset variants")
	}

	// neither: opacity-only fallback
	opts = Options{Preset: Preset("missing")}
	opts.Stagger = 0.05
	if v := opts.variants(); v.Item.Hidden.Opacity == nil || v.Item.Hidden.X != nil {
		t.Errorf("expected opacity-only fallback for unknown preset")
	}
}

func TestStyleMerge(t *testing.T) {
	base := Style{Color: "#888888", Italic: true}
	over := Style{Color: "#ff0000", Bold: true}

	merged := over.Merge(base)
	if merged.Color != "#ff0000" {
		t.Errorf("color = %q, expected overlay to win", merged.Color)
	}
	if !merged.Bold || !merged.Italic {
		t.Errorf("merged = %+v, expected bold and italic", merged)
	}

	// empty overlay keeps base color
	merged = Style{}.Merge(base)
	if merged.Color != "#888888" || !merged.Italic {
		t.Errorf("merged = %+v, expected base preserved", merged)
	}
}
