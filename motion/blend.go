package motion

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Blend mixes a foreground hex color toward a background hex color by
// alpha: 1 keeps the foreground, 0 disappears into the background.
// Non-hex inputs cannot be interpolated, so the foreground is returned
// unchanged and visibility degrades to the caller's draw threshold.
func Blend(hex string, bgHex string, alpha float64) string {
	if alpha >= 1 {
		return hex
	}
	if alpha < 0 {
		alpha = 0
	}
	fg, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	bg, err := colorful.Hex(bgHex)
	if err != nil {
		return hex
	}
	return bg.BlendLab(fg, alpha).Clamped().Hex()
}
