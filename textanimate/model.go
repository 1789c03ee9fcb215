package textanimate

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xhd2015/text-animate/motion"
)

// Phase is the animation lifecycle state of the component.
type Phase int

const (
	PhaseHidden Phase = iota
	PhaseEntering
	PhaseShown
	PhaseExiting
	PhaseRemoved
)

func (p Phase) String() string {
	switch p {
	case PhaseHidden:
		return "hidden"
	case PhaseEntering:
		return "entering"
	case PhaseShown:
		return "shown"
	case PhaseExiting:
		return "exiting"
	case PhaseRemoved:
		return "removed"
	}
	return "unknown"
}

// Model animates a piece of text by splitting it into segments and
// staggering per-segment enter/exit transitions. It follows the
// bubbles component shape: value semantics, Update on messages, View
// renders the current frame.
type Model struct {
	opts     Options
	text     string
	segments []Segment
	variants VariantSet

	phase  Phase
	start  time.Time
	inView bool
	played bool

	// spring trajectory shared by all segments of spring presets
	spring *motion.Curve

	id  int
	tag int
}

// New creates a model for the given text. With Options.Immediate the
// entry animation starts right away; otherwise it waits for
// SetInView(true) from the host.
func New(text string, opts Options) Model {
	opts = opts.normalize()
	m := Model{
		opts:     opts,
		text:     text,
		segments: Split(text, opts.By),
		variants: opts.variants(),
		id:       motion.NextID(),
	}
	m.spring = springCurveFor(m.variants, opts.Motion.FPS)
	if opts.Immediate {
		m.inView = true
		m.phase = PhaseEntering
		m.start = time.Now()
	}
	return m
}

func springCurveFor(v VariantSet, fps float64) *motion.Curve {
	if v.Item.Timing == nil {
		return nil
	}
	show, _ := v.Item.Timing(0, 0)
	if show.Spring == nil {
		return nil
	}
	return motion.SpringCurve(show.Spring.Stiffness, show.Spring.Damping, fps)
}

// Init schedules the first frame when the model was born animating.
func (m Model) Init() tea.Cmd {
	if m.phase == PhaseEntering || m.phase == PhaseExiting {
		return motion.Frame(m.id, m.tag, m.opts.Motion.FPS)
	}
	return nil
}

// Options returns the normalized configuration.
func (m Model) Options() Options {
	return m.opts
}

// Text returns the animated text.
func (m Model) Text() string {
	return m.text
}

// Segments returns the split segments in order.
func (m Model) Segments() []Segment {
	return m.segments
}

// Phase returns the current lifecycle phase.
func (m Model) Phase() Phase {
	return m.phase
}

// Done reports whether the exit animation has completed.
func (m Model) Done() bool {
	return m.phase == PhaseRemoved
}

// Quiescent reports whether no animation is in flight; quiescent
// phases schedule no frames.
func (m Model) Quiescent() bool {
	return m.phase != PhaseEntering && m.phase != PhaseExiting
}

// SetText replaces the text, re-splits it and restarts the animation
// if the component is in view.
func (m Model) SetText(text string) (Model, tea.Cmd) {
	m.text = text
	m.segments = Split(text, m.opts.By)
	m.played = false
	m.phase = PhaseHidden
	m.tag++
	if m.inView {
		return m.begin()
	}
	return m, nil
}

// SetOptions replaces the configuration, keeping the text, and
// restarts the animation if the component is in view.
func (m Model) SetOptions(opts Options) (Model, tea.Cmd) {
	opts = opts.normalize()
	m.opts = opts
	m.segments = Split(m.text, opts.By)
	m.variants = opts.variants()
	m.spring = springCurveFor(m.variants, opts.Motion.FPS)
	m.played = false
	m.phase = PhaseHidden
	m.tag++
	if m.inView {
		return m.begin()
	}
	return m, nil
}

// SetInView reports host-observed visibility. Entering view starts the
// entry animation; leaving view rearms it unless Once is set and the
// component has fully entered once before.
func (m Model) SetInView(inView bool) (Model, tea.Cmd) {
	if inView == m.inView {
		return m, nil
	}
	m.inView = inView
	if inView {
		if m.phase == PhaseHidden {
			return m.begin()
		}
		return m, nil
	}
	if m.opts.Once && m.played {
		return m, nil
	}
	if m.phase == PhaseEntering || m.phase == PhaseShown {
		m.phase = PhaseHidden
		m.tag++
	}
	return m, nil
}

// Restart replays the animation from the beginning regardless of the
// play-once flag.
func (m Model) Restart() (Model, tea.Cmd) {
	m.played = false
	return m.begin()
}

// Exit begins the exit sequence. The component renders until all
// segments have animated out, then reports Done.
func (m Model) Exit() (Model, tea.Cmd) {
	if m.phase == PhaseExiting || m.phase == PhaseRemoved {
		return m, nil
	}
	m.phase = PhaseExiting
	m.start = time.Now()
	m.tag++
	return m, motion.Frame(m.id, m.tag, m.opts.Motion.FPS)
}

func (m Model) begin() (Model, tea.Cmd) {
	m.phase = PhaseEntering
	m.start = time.Now()
	m.tag++
	return m, motion.Frame(m.id, m.tag, m.opts.Motion.FPS)
}

// Update advances the model on frame messages. Frames belonging to
// other components or to a superseded run are ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	frame, ok := msg.(motion.FrameMsg)
	if !ok {
		return m, nil
	}
	if frame.ID != m.id || frame.Tag != m.tag {
		return m, nil
	}
	m = m.Advance(frame.Time)
	if m.Quiescent() {
		return m, nil
	}
	return m, motion.Frame(m.id, m.tag, m.opts.Motion.FPS)
}

// Advance applies time-derived phase transitions. Hosts that do not
// route frame messages (such as dom apps with their own refresh loop)
// can call it directly.
func (m Model) Advance(now time.Time) Model {
	switch m.phase {
	case PhaseEntering:
		if now.Sub(m.start).Seconds() >= m.enterSpan() {
			m.phase = PhaseShown
			m.played = true
		}
	case PhaseExiting:
		if now.Sub(m.start).Seconds() >= m.exitSpan() {
			// container waits for children, then disappears
			m.phase = PhaseRemoved
		}
	}
	return m
}

// enterSpan is the total entry timeline length in seconds: entry delay
// plus the last segment's stagger offset plus its transition length.
func (m Model) enterSpan() float64 {
	return m.opts.Delay + m.lastOffset() + m.itemSpan()
}

func (m Model) exitSpan() float64 {
	return m.opts.ExitDelay + m.lastOffset() + m.itemSpan()
}

func (m Model) lastOffset() float64 {
	n := len(m.segments)
	if n == 0 {
		return 0
	}
	return float64(n-1) * m.opts.Stagger
}

// itemSpan is the longest single-segment transition, accounting for
// per-property durations and spring settle time.
func (m Model) itemSpan() float64 {
	if m.variants.Item.Timing == nil {
		return m.effectiveDuration(Transition{Duration: defaultDuration})
	}
	show, _ := m.variants.Item.Timing(0, 0)
	span := m.effectiveDuration(show)
	for _, d := range m.perPropertyDurations(show) {
		if d > span {
			span = d
		}
	}
	if m.spring != nil && m.spring.Duration() > span {
		span = m.spring.Duration()
	}
	return span
}

// effectiveDuration applies the caller's Duration override.
func (m Model) effectiveDuration(tr Transition) float64 {
	if m.opts.Duration > 0 {
		return m.opts.Duration
	}
	if tr.Duration > 0 {
		return tr.Duration
	}
	return defaultDuration
}

// perPropertyDurations scales per-property overrides when the overall
// duration is overridden, preserving their relative pacing.
func (m Model) perPropertyDurations(tr Transition) map[string]float64 {
	if len(tr.PerProperty) == 0 {
		return nil
	}
	base := tr.Duration
	if base <= 0 {
		base = defaultDuration
	}
	ratio := 1.0
	if m.opts.Duration > 0 {
		ratio = m.opts.Duration / base
	}
	scaled := make(map[string]float64, len(tr.PerProperty))
	for prop, d := range tr.PerProperty {
		scaled[prop] = d * ratio
	}
	return scaled
}
