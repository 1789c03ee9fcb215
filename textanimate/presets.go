package textanimate

import (
	"fmt"
)

// Preset names a predefined container/item animation pair.
type Preset string

const (
	PresetFadeIn     Preset = "fadeIn"
	PresetBlurIn     Preset = "blurIn"
	PresetBlurInUp   Preset = "blurInUp"
	PresetBlurInDown Preset = "blurInDown"
	PresetSlideUp    Preset = "slideUp"
	PresetSlideDown  Preset = "slideDown"
	PresetSlideLeft  Preset = "slideLeft"
	PresetSlideRight Preset = "slideRight"
	PresetScaleUp    Preset = "scaleUp"
	PresetScaleDown  Preset = "scaleDown"
)

const defaultDuration = 0.3

// Presets returns all preset names in a stable order.
func Presets() []Preset {
	return []Preset{
		PresetFadeIn,
		PresetBlurIn,
		PresetBlurInUp,
		PresetBlurInDown,
		PresetSlideUp,
		PresetSlideDown,
		PresetSlideLeft,
		PresetSlideRight,
		PresetScaleUp,
		PresetScaleDown,
	}
}

// ParsePreset converts a flag value into a Preset.
func ParsePreset(s string) (Preset, error) {
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown preset: %s, run 'text-animate presets' to list available presets", s)
}

// DefaultStagger returns the per-granularity default stagger interval
// in seconds.
func DefaultStagger(by By) float64 {
	switch by {
	case ByWord:
		return 0.05
	case ByCharacter:
		return 0.03
	}
	// text and line
	return 0.06
}

// PresetVariants returns the VariantSet for a preset. Unknown presets
// fall back to the minimal opacity-only animation.
func PresetVariants(p Preset) VariantSet {
	if v, ok := presetTable[p]; ok {
		return v
	}
	return fallbackVariants()
}

// blurInUp and blurInDown fade opacity slower than motion and blur.
var blurPerProperty = map[string]float64{
	"opacity": 0.4,
	"y":       0.3,
	"blur":    0.3,
}

var scaleSpring = &Spring{Stiffness: 300, Damping: 15}

var presetTable = map[Preset]VariantSet{
	PresetFadeIn: {
		Container: defaultContainerVariants(),
		Item: ItemVariants{
			Hidden:  Props{Opacity: F(0), Y: F(20)},
			Visible: Props{Opacity: F(1), Y: F(0)},
			Exit:    Props{Opacity: F(0), Y: F(20)},
			Timing:  itemTiming(defaultDuration, nil, nil),
		},
	},
	PresetBlurIn: {
		Container: defaultContainerVariants(),
		Item: ItemVariants{
			Hidden:  Props{Opacity: F(0), Blur: F(10)},
			Visible: Props{Opacity: F(1), Blur: F(0)},
			Exit:    Props{Opacity: F(0), Blur: F(10)},
			Timing:  itemTiming(defaultDuration, nil, nil),
		},
	},
	PresetBlurInUp: {
		Container: defaultContainerVariants(),
		Item: ItemVariants{
			Hidden:  Props{Opacity: F(0), Blur: F(10), Y: F(20)},
			Visible: Props{Opacity: F(1), Blur: F(0), Y: F(0)},
			Exit:    Props{Opacity: F(0), Blur: F(10), Y: F(20)},
			Timing:  itemTiming(defaultDuration, blurPerProperty, nil),
		},
	},
	PresetBlurInDown: {
		Container: defaultContainerVariants(),
		Item: ItemVariants{
			Hidden:  Props{Opacity: F(0), Blur: F(10), Y: F(-20)},
			Visible: Props{Opacity: F(1), Blur: F(0), Y: F(0)},
			Exit:    Props{Opacity: F(0), Blur: F(10), Y: F(-20)},
			Timing:  itemTiming(defaultDuration, blurPerProperty, nil),
		},
	},
	PresetSlideUp: {
		Container: defaultContainerVariants(),
		Item: ItemVariants{
			Hidden:  Props{Y: F(20), Opacity: F(0)},
			Visible: Props{Y: F(0), Opacity: F(1)},
			// slides pass through: exit continues in the travel direction
			Exit:   Props{Y: F(-20), Opacity: F(0)},
			Timing: itemTiming(defaultDuration, nil, nil),
		},
	},
	PresetSlideDown: {
		Container: defaultContainerVariants(),
		Item: ItemVariants{
			Hidden:  Props{Y: F(-20), Opacity: F(0)},
			Visible: Props{Y: F(0), Opacity: F(1)},
			Exit:    Props{Y: F(20), Opacity: F(0)},
			Timing:  itemTiming(defaultDuration, nil, nil),
		},
	},
	PresetSlideLeft: {
		Container: defaultContainerVariants(),
		Item: ItemVariants{
			Hidden:  Props{X: F(20), Opacity: F(0)},
			Visible: Props{X: F(0), Opacity: F(1)},
			Exit:    Props{X: F(-20), Opacity: F(0)},
			Timing:  itemTiming(defaultDuration, nil, nil),
		},
	},
	PresetSlideRight: {
		Container: defaultContainerVariants(),
		Item: ItemVariants{
			Hidden:  Props{X: F(-20), Opacity: F(0)},
			Visible: Props{X: F(0), Opacity: F(1)},
			Exit:    Props{X: F(20), Opacity: F(0)},
			Timing:  itemTiming(defaultDuration, nil, nil),
		},
	},
	PresetScaleUp: {
		Container: defaultContainerVariants(),
		Item: ItemVariants{
			Hidden:  Props{Scale: F(0.5), Opacity: F(0)},
			Visible: Props{Scale: F(1), Opacity: F(1)},
			Exit:    Props{Scale: F(0.5), Opacity: F(0)},
			Timing:  itemTiming(defaultDuration, nil, scaleSpring),
		},
	},
	PresetScaleDown: {
		Container: defaultContainerVariants(),
		Item: ItemVariants{
			Hidden:  Props{Scale: F(1.5), Opacity: F(0)},
			Visible: Props{Scale: F(1), Opacity: F(1)},
			Exit:    Props{Scale: F(1.5), Opacity: F(0)},
			Timing:  itemTiming(defaultDuration, nil, scaleSpring),
		},
	},
}
