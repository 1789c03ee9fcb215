package motion

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const DefaultFPS = 30

// Options are forwarded to the frame engine unmodified by components
// that embed an animation.
type Options struct {
	FPS  float64
	Ease Easing
}

// FrameMsg is delivered on every animation tick. ID routes the message
// to the owning component, Tag invalidates ticks scheduled before the
// most recent restart.
type FrameMsg struct {
	ID   int
	Tag  int
	Time time.Time
}

var lastID int64

// NextID returns a process-unique component ID for frame routing.
func NextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Frame schedules the next animation tick for the given component.
func Frame(id int, tag int, fps float64) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	interval := time.Duration(float64(time.Second) / fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Tag: tag, Time: t}
	})
}

// Progress computes the linear phase position of a transition at time
// now, clamped to [0, 1]. delay and duration are in seconds.
func Progress(now time.Time, start time.Time, delay float64, duration float64) float64 {
	if duration <= 0 {
		// an instant transition is complete as soon as its delay elapses
		if now.Sub(start).Seconds() >= delay {
			return 1
		}
		return 0
	}
	t := (now.Sub(start).Seconds() - delay) / duration
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t
}
