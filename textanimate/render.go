package textanimate

import (
	"time"

	"github.com/xhd2015/text-animate/motion"
)

// ResolvedProps are concrete visual property values after easing and
// spring evaluation.
type ResolvedProps struct {
	Opacity float64
	X       float64
	Y       float64
	Scale   float64
	Blur    float64
}

func baseProps() ResolvedProps {
	return ResolvedProps{Opacity: 1, Scale: 1}
}

// SegmentFrame is one segment's evaluated draw state.
type SegmentFrame struct {
	Segment Segment
	Props   ResolvedProps
	Style   Style
}

// RenderFrame is the full evaluated draw list for one point in time.
type RenderFrame struct {
	Phase    Phase
	Segments []SegmentFrame
}

// Frame evaluates every segment's visual properties at the given time.
// It is pure: calling it does not advance the model.
func (m Model) Frame(now time.Time) RenderFrame {
	frame := RenderFrame{Phase: m.phase}
	if m.phase == PhaseHidden || m.phase == PhaseRemoved {
		return frame
	}

	n := len(m.segments)
	frame.Segments = make([]SegmentFrame, 0, n)
	for i, seg := range m.segments {
		entryOffset := float64(i) * m.opts.Stagger
		exitOffset := float64(n-1-i) * m.opts.Stagger

		show := Transition{Delay: entryOffset, Duration: defaultDuration}
		exit := Transition{Delay: exitOffset, Duration: defaultDuration}
		if m.variants.Item.Timing != nil {
			show, exit = m.variants.Item.Timing(entryOffset, exitOffset)
		}

		var props ResolvedProps
		switch m.phase {
		case PhaseEntering:
			props = m.resolve(now, m.opts.Delay, show, m.variants.Item.Hidden, m.variants.Item.Visible)
		case PhaseShown:
			props = applyProps(baseProps(), m.variants.Item.Visible)
		case PhaseExiting:
			props = m.resolve(now, m.opts.ExitDelay, exit, m.variants.Item.Visible, m.variants.Item.Exit)
		}

		frame.Segments = append(frame.Segments, SegmentFrame{
			Segment: seg,
			Props:   props,
			Style:   m.opts.SegmentStyleFunc(seg.Text, i).Merge(m.opts.Style),
		})
	}
	return frame
}

// resolve interpolates from one sparse state to another at the current
// transition position.
func (m Model) resolve(now time.Time, phaseDelay float64, tr Transition, from Props, to Props) ResolvedProps {
	easing := tr.Ease
	if easing == "" {
		easing = m.opts.Motion.Ease
	}
	duration := m.effectiveDuration(tr)
	perProp := m.perPropertyDurations(tr)
	delay := phaseDelay + tr.Delay

	eval := func(prop string, fromV *float64, toV *float64, base float64) float64 {
		if fromV == nil && toV == nil {
			return base
		}
		f, t := base, base
		if fromV != nil {
			f = *fromV
		}
		if toV != nil {
			t = *toV
		}
		if prop == "scale" && tr.Spring != nil && m.spring != nil {
			elapsed := now.Sub(m.start).Seconds() - delay
			if elapsed <= 0 {
				return f
			}
			return f + (t-f)*m.spring.At(elapsed)
		}
		d := duration
		if pd, ok := perProp[prop]; ok {
			d = pd
		}
		progress := motion.Progress(now, m.start, delay, d)
		return f + (t-f)*easing.Apply(progress)
	}

	return ResolvedProps{
		Opacity: eval("opacity", from.Opacity, to.Opacity, 1),
		X:       eval("x", from.X, to.X, 0),
		Y:       eval("y", from.Y, to.Y, 0),
		Scale:   eval("scale", from.Scale, to.Scale, 1),
		Blur:    eval("blur", from.Blur, to.Blur, 0),
	}
}

// applyProps overlays the set fields of a sparse state on base values.
func applyProps(base ResolvedProps, p Props) ResolvedProps {
	if p.Opacity != nil {
		base.Opacity = *p.Opacity
	}
	if p.X != nil {
		base.X = *p.X
	}
	if p.Y != nil {
		base.Y = *p.Y
	}
	if p.Scale != nil {
		base.Scale = *p.Scale
	}
	if p.Blur != nil {
		base.Blur = *p.Blur
	}
	return base
}
