package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// springSettleEpsilon bounds position and velocity below which the
// spring is considered settled at its target.
const springSettleEpsilon = 0.001

// maxSpringSamples caps trajectory length for heavily underdamped
// parameters (10 seconds at the sampling rate).
const maxSpringSamples = 10 * 60

// Curve is a precomputed normalized spring trajectory from 0 to 1,
// sampled at a fixed rate. Unlike eased transitions it may overshoot
// past 1 before settling.
type Curve struct {
	fps     float64
	samples []float64
}

// SpringCurve simulates a unit-mass spring with the given stiffness and
// damping coefficient releasing from 0 toward 1, and records the
// trajectory at fps samples per second.
func SpringCurve(stiffness float64, damping float64, fps float64) *Curve {
	if fps <= 0 {
		fps = 60
	}
	// harmonica parameterizes by angular frequency and damping ratio
	omega := math.Sqrt(stiffness)
	zeta := damping / (2 * omega)
	spring := harmonica.NewSpring(1/fps, omega, zeta)

	samples := []float64{0}
	pos, vel := 0.0, 0.0
	for i := 0; i < maxSpringSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		samples = append(samples, pos)
		if math.Abs(pos-1) < springSettleEpsilon && math.Abs(vel) < springSettleEpsilon {
			break
		}
	}
	return &Curve{fps: fps, samples: samples}
}

// At samples the trajectory t seconds after release. Before release it
// is 0; after the spring settles it stays at the final sample.
func (c *Curve) At(t float64) float64 {
	if t <= 0 || len(c.samples) == 0 {
		return 0
	}
	i := int(t * c.fps)
	if i >= len(c.samples) {
		return c.samples[len(c.samples)-1]
	}
	return c.samples[i]
}

// Duration reports how long the trajectory runs before settling.
func (c *Curve) Duration() float64 {
	if len(c.samples) == 0 {
		return 0
	}
	return float64(len(c.samples)-1) / c.fps
}
