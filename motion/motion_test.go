package motion

import (
	"math"
	"testing"
	"time"
)

func TestEasingApplyClamps(t *testing.T) {
	for _, e := range []Easing{EaseLinear, EaseIn, EaseOut, EaseInOut} {
		if got := e.Apply(-0.5); got != 0 {
			t.Errorf("%s.Apply(-0.5) = %v, expected 0", e, got)
		}
		if got := e.Apply(1.5); got != 1 {
			t.Errorf("%s.Apply(1.5) = %v, expected 1", e, got)
		}
	}
}

func TestEasingApplyMonotonic(t *testing.T) {
	for _, e := range []Easing{EaseLinear, EaseIn, EaseOut, EaseInOut} {
		prev := 0.0
		for i := 1; i <= 10; i++ {
			v := e.Apply(float64(i) / 10)
			if v < prev {
				t.Errorf("%s not monotonic at t=%v: %v < %v", e, float64(i)/10, v, prev)
			}
			prev = v
		}
		if prev != 1 {
			t.Errorf("%s.Apply(1) = %v, expected 1", e, prev)
		}
	}
}

func TestParseEasing(t *testing.T) {
	e, err := ParseEasing("ease-in-out")
	if err != nil {
		t.Fatalf("ParseEasing failed: %v", err)
	}
	if e != EaseInOut {
		t.Errorf("got %v, expected %v", e, EaseInOut)
	}
	if _, err := ParseEasing("bounce"); err == nil {
		t.Errorf("expected error for unknown easing")
	}
}

func TestProgress(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		at       time.Duration
		delay    float64
		duration float64
		expected float64
	}{
		{name: "before delay", at: 50 * time.Millisecond, delay: 0.1, duration: 0.3, expected: 0},
		{name: "at delay", at: 100 * time.Millisecond, delay: 0.1, duration: 0.3, expected: 0},
		{name: "halfway", at: 250 * time.Millisecond, delay: 0.1, duration: 0.3, expected: 0.5},
		{name: "complete", at: 400 * time.Millisecond, delay: 0.1, duration: 0.3, expected: 1},
		{name: "past complete", at: time.Second, delay: 0.1, duration: 0.3, expected: 1},
		{name: "zero duration pending", at: 0, delay: 0.1, duration: 0, expected: 0},
		{name: "zero duration done", at: 200 * time.Millisecond, delay: 0.1, duration: 0, expected: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(start.Add(tt.at), start, tt.delay, tt.duration)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("got %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestSpringCurveSettles(t *testing.T) {
	curve := SpringCurve(300, 15, 60)

	if got := curve.At(0); got != 0 {
		t.Errorf("At(0) = %v, expected 0", got)
	}
	end := curve.At(curve.Duration() + 1)
	if math.Abs(end-1) > 0.01 {
		t.Errorf("spring settled at %v, expected ~1", end)
	}
}

func TestSpringCurveOvershoots(t *testing.T) {
	// stiffness 300 / damping 15 is underdamped and must pass its target
	curve := SpringCurve(300, 15, 60)
	overshoot := false
	for ts := 0.0; ts < curve.Duration(); ts += 1.0 / 60 {
		if curve.At(ts) > 1 {
			overshoot = true
			break
		}
	}
	if !overshoot {
		t.Errorf("expected underdamped spring to overshoot 1")
	}
}

func TestBlend(t *testing.T) {
	if got := Blend("#ffffff", "#000000", 1); got != "#ffffff" {
		t.Errorf("alpha 1 got %s, expected foreground unchanged", got)
	}
	if got := Blend("#ffffff", "#000000", 0); got != "#000000" {
		t.Errorf("alpha 0 got %s, expected background", got)
	}
	mid := Blend("#ffffff", "#000000", 0.5)
	if mid == "#ffffff" || mid == "#000000" {
		t.Errorf("alpha 0.5 got %s, expected an intermediate color", mid)
	}
	// non-hex degrades to the foreground as-is
	if got := Blend("red", "#000000", 0.5); got != "red" {
		t.Errorf("got %s, expected non-hex input returned unchanged", got)
	}
}

func TestFrameMsgRouting(t *testing.T) {
	id1 := NextID()
	id2 := NextID()
	if id1 == id2 {
		t.Errorf("NextID returned duplicate id %d", id1)
	}

	cmd := Frame(id1, 3, 60)
	if cmd == nil {
		t.Fatalf("Frame returned nil cmd")
	}
}
