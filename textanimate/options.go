package textanimate

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/xhd2015/text-animate/motion"
)

// Style is the component's small declarative text style. It is merged
// per segment and converted to lipgloss at draw time.
type Style struct {
	Color         string
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Faint         bool
}

// Merge overlays s over base: set fields of s win.
func (s Style) Merge(base Style) Style {
	if s.Color == "" {
		s.Color = base.Color
	}
	s.Bold = s.Bold || base.Bold
	s.Italic = s.Italic || base.Italic
	s.Underline = s.Underline || base.Underline
	s.Strikethrough = s.Strikethrough || base.Strikethrough
	s.Faint = s.Faint || base.Faint
	return s
}

// Options configures an animated text component. The zero value plays
// the fadeIn preset word by word once the host reports the component
// in view.
type Options struct {
	// By selects the split granularity
	By By
	// Preset selects the animation; ignored when Variants is set
	Preset Preset
	// Variants fully overrides the preset-derived descriptors
	Variants *VariantSet

	// Delay postpones the entry animation, in seconds
	Delay float64
	// ExitDelay postpones the exit animation, in seconds
	ExitDelay float64
	// Duration overrides the per-segment transition duration
	Duration float64
	// Stagger overrides the per-granularity default stagger interval
	Stagger float64

	// Immediate starts the animation on creation instead of waiting
	// for the host to report visibility via SetInView
	Immediate bool
	// Once suppresses re-triggering after the first complete entry
	Once bool

	// Tag selects the container kind for dom hosts: "span" flows
	// inline, "div" renders block
	Tag string

	// Style is the base style under every segment
	Style Style
	// SegmentStyle applies one static style to every segment
	SegmentStyle Style
	// SegmentStyleFunc computes a style per segment, taking precedence
	// over SegmentStyle
	SegmentStyleFunc func(text string, index int) Style

	// Color and Background are the base foreground and the terminal
	// background as hex strings, used for opacity blending
	Color      string
	Background string

	// Motion is forwarded to the frame engine unmodified
	Motion motion.Options
}

// normalize resolves all defaulting in one step: stagger by
// granularity, tag, engine options, blend colors and the style rule.
// Implicit fallbacks are not consulted after this point.
func (o Options) normalize() Options {
	if o.Preset == "" {
		o.Preset = PresetFadeIn
	}
	if o.Stagger == 0 {
		o.Stagger = DefaultStagger(o.By)
	}
	if o.Tag == "" {
		o.Tag = "span"
	}
	if o.Motion.FPS == 0 {
		o.Motion.FPS = motion.DefaultFPS
	}
	if o.Motion.Ease == "" {
		o.Motion.Ease = motion.EaseOut
	}
	if o.Color == "" || o.Background == "" {
		fg, bg := adaptiveColors()
		if o.Color == "" {
			o.Color = fg
		}
		if o.Background == "" {
			o.Background = bg
		}
	}
	if o.SegmentStyleFunc == nil {
		static := o.SegmentStyle
		o.SegmentStyleFunc = func(text string, index int) Style {
			return static
		}
	}
	return o
}

// variants resolves the single animation source for a render: custom
// variants win over the preset, and with neither the opacity-only
// fallback applies.
func (o Options) variants() VariantSet {
	if o.Variants != nil {
		return *o.Variants
	}
	if v, ok := presetTable[o.Preset]; ok {
		return v
	}
	return fallbackVariants()
}

// adaptiveColors picks blend endpoints from the terminal background.
func adaptiveColors() (fg string, bg string) {
	if lipgloss.HasDarkBackground() {
		return "#ffffff", "#000000"
	}
	return "#000000", "#ffffff"
}
