package textanimate

import (
	"github.com/xhd2015/text-animate/motion"
)

// Props is a sparse set of animatable visual properties. A nil field
// means the preset does not touch that property, leaving it at base.
//
// X and Y are in motion units, not cells: the canvas maps 5 units to
// one column and 10 units to one row.
type Props struct {
	Opacity *float64
	X       *float64
	Y       *float64
	Scale   *float64
	Blur    *float64
}

// F wraps a literal for use in a Props field.
func F(v float64) *float64 {
	return &v
}

// Spring holds physical spring parameters for properties animated by
// spring physics instead of a fixed-duration curve.
type Spring struct {
	Stiffness float64
	Damping   float64
}

// Transition describes how an element moves between two states.
type Transition struct {
	// Delay in seconds before the transition starts
	Delay float64
	// Duration in seconds; per-segment overrides may replace it
	Duration float64
	Ease     motion.Easing
	// PerProperty overrides Duration for individual properties,
	// keyed by "opacity", "x", "y", "scale" or "blur"
	PerProperty map[string]float64
	// Spring, when set, drives the scale property by spring physics
	Spring *Spring

	// Before and AfterChildren only apply to container transitions:
	// Before shows the container ahead of its children animating in,
	// AfterChildren holds it until children finish animating out.
	Before        bool
	AfterChildren bool
}

// ItemVariants describes the per-segment animation: the three visual
// states plus stagger-parameterized timing.
type ItemVariants struct {
	Hidden  Props
	Visible Props
	Exit    Props

	// Timing returns the show and exit transitions for a segment given
	// its stagger offsets. The show delay equals entryOffset and the
	// exit delay equals exitOffset.
	Timing func(entryOffset float64, exitOffset float64) (show Transition, exit Transition)
}

// ContainerVariants describes the wrapping element's animation,
// parameterized by the overall entry and exit delays.
type ContainerVariants struct {
	Timing func(entryDelay float64, exitDelay float64) (show Transition, exit Transition)
}

// VariantSet pairs the container and item descriptors for one preset.
type VariantSet struct {
	Container ContainerVariants
	Item      ItemVariants
}

// defaultContainerVariants shows the container before children enter
// and keeps it until children finish exiting.
func defaultContainerVariants() ContainerVariants {
	return ContainerVariants{
		Timing: func(entryDelay float64, exitDelay float64) (Transition, Transition) {
			show := Transition{
				Delay:  entryDelay,
				Before: true,
			}
			exit := Transition{
				Delay:         exitDelay,
				AfterChildren: true,
			}
			return show, exit
		},
	}
}

// itemTiming builds the standard stagger-delayed timing pair shared by
// most presets.
func itemTiming(duration float64, perProperty map[string]float64, spring *Spring) func(float64, float64) (Transition, Transition) {
	return func(entryOffset float64, exitOffset float64) (Transition, Transition) {
		show := Transition{
			Delay:       entryOffset,
			Duration:    duration,
			PerProperty: perProperty,
			Spring:      spring,
		}
		exit := Transition{
			Delay:       exitOffset,
			Duration:    duration,
			PerProperty: perProperty,
			Spring:      spring,
		}
		return show, exit
	}
}

// fallbackVariants is the minimal opacity-only animation used when
// neither a preset nor custom variants apply.
func fallbackVariants() VariantSet {
	return VariantSet{
		Container: defaultContainerVariants(),
		Item: ItemVariants{
			Hidden:  Props{Opacity: F(0)},
			Visible: Props{Opacity: F(1)},
			Exit:    Props{Opacity: F(0)},
			Timing:  itemTiming(defaultDuration, nil, nil),
		},
	}
}
