package motion

import (
	"fmt"

	"github.com/fogleman/ease"
)

// Easing names the curve applied to transition progress.
type Easing string

const (
	EaseLinear Easing = "linear"
	EaseIn     Easing = "ease-in"
	EaseOut    Easing = "ease-out"
	EaseInOut  Easing = "ease-in-out"
)

// ParseEasing converts a flag value into an Easing.
func ParseEasing(s string) (Easing, error) {
	switch Easing(s) {
	case EaseLinear, EaseIn, EaseOut, EaseInOut:
		return Easing(s), nil
	}
	return "", fmt.Errorf("unknown easing: %s, expect one of: linear, ease-in, ease-out, ease-in-out", s)
}

// Apply maps linear progress t through the curve. Input outside [0,1]
// is clamped so callers can feed raw timeline positions.
func (e Easing) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch e {
	case EaseLinear:
		return t
	case EaseIn:
		return ease.InCubic(t)
	case EaseInOut:
		return ease.InOutCubic(t)
	default:
		// EaseOut is the default curve for enter/exit transitions
		return ease.OutCubic(t)
	}
}
