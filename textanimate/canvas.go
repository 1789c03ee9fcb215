package textanimate

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/xhd2015/text-animate/motion"
)

// Terminal cells are roughly twice as tall as wide, so vertical motion
// converts at double the rate of horizontal motion.
const (
	unitsPerCol = 5.0
	unitsPerRow = 10.0
)

// Segments below this opacity are not drawn at all.
const minVisibleOpacity = 0.05

// Blur at or above this level additionally sets the faint attribute.
const faintBlurLevel = 5.0

type placement struct {
	row int
	col int
}

// flowPlacements lays out segments before animation offsets apply.
// Line granularity stacks segments as block lines; every other
// granularity flows inline, with embedded newlines advancing the flow
// line so word mode handles multi-line input.
func flowPlacements(segments []Segment, by By) ([]placement, int, int) {
	placements := make([]placement, len(segments))
	if by == ByLine {
		width := 0
		for i, seg := range segments {
			placements[i] = placement{row: i}
			if w := lipgloss.Width(seg.Text); w > width {
				width = w
			}
		}
		return placements, len(segments), width
	}

	row, col := 0, 0
	rows, cols := 1, 0
	for i, seg := range segments {
		placements[i] = placement{row: row, col: col}
		for _, r := range seg.Text {
			if r == '\n' {
				row++
				col = 0
				continue
			}
			col += lipgloss.Width(string(r))
		}
		if col > cols {
			cols = col
		}
		if row+1 > rows {
			rows = row + 1
		}
	}
	return placements, rows, cols
}

// slack computes the extra rows and columns the canvas reserves so
// segments displaced by the variant states stay on screen.
func (m Model) slack() (rows int, cols int) {
	maxAbs := func(vals ...*float64) float64 {
		max := 0.0
		for _, v := range vals {
			if v != nil && math.Abs(*v) > max {
				max = math.Abs(*v)
			}
		}
		return max
	}
	item := m.variants.Item
	x := maxAbs(item.Hidden.X, item.Visible.X, item.Exit.X)
	y := maxAbs(item.Hidden.Y, item.Visible.Y, item.Exit.Y)
	return int(math.Ceil(y / unitsPerRow)), int(math.Ceil(x / unitsPerCol))
}

// maxScaleGap is the widest inter-rune spacing any variant state can
// produce.
func (m Model) maxScaleGap() int {
	item := m.variants.Item
	max := 1.0
	for _, v := range []*float64{item.Hidden.Scale, item.Visible.Scale, item.Exit.Scale} {
		if v != nil && *v > max {
			max = *v
		}
	}
	return int(math.Round((max - 1) * 2))
}

type cell struct {
	r rune
	// style is shared by all runes of one segment; nil draws plain
	style *lipgloss.Style
	// wide marks the continuation cell of a double-width rune
	wide bool
}

type canvas struct {
	rows  int
	cols  int
	cells [][]cell
}

func newCanvas(rows int, cols int) *canvas {
	cells := make([][]cell, rows)
	for i := range cells {
		cells[i] = make([]cell, cols)
	}
	return &canvas{rows: rows, cols: cols, cells: cells}
}

// put draws a rune at (row, col), clipping out-of-bounds writes.
// Later writes overwrite earlier cells on collision.
func (c *canvas) put(row int, col int, r rune, style *lipgloss.Style) {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return
	}
	width := lipgloss.Width(string(r))
	c.cells[row][col] = cell{r: r, style: style}
	if width > 1 && col+1 < c.cols {
		c.cells[row][col+1] = cell{wide: true}
	}
}

// lines joins the grid into display rows, batching runs of identically
// styled cells into single style renders.
func (c *canvas) lines() []string {
	out := make([]string, c.rows)
	for i, row := range c.cells {
		var b strings.Builder
		var run strings.Builder
		var runStyle *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle != nil {
				b.WriteString(runStyle.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.wide {
				continue
			}
			r := cl.r
			if r == 0 {
				r = ' '
			}
			if cl.style != runStyle {
				flush()
				runStyle = cl.style
			}
			run.WriteRune(r)
		}
		flush()
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

// RenderLines composes the current frame into styled display lines.
// Hosts that lay out output themselves use this instead of View.
func (m Model) RenderLines(now time.Time) []string {
	return m.renderLines(now, true)
}

// PlainLines composes the current frame without any styling or color
// blending, for copying frames out of the terminal.
func (m Model) PlainLines(now time.Time) []string {
	return m.renderLines(now, false)
}

func (m Model) renderLines(now time.Time, styled bool) []string {
	frame := m.Frame(now)
	placements, flowRows, flowCols := flowPlacements(m.segments, m.opts.By)
	slackRows, slackCols := m.slack()
	cols := flowCols + 2*slackCols
	if gap := m.maxScaleGap(); gap > 0 {
		// segments spread by scale > 1 need room to the right
		cols += gap * flowCols
	}
	cv := newCanvas(flowRows+2*slackRows, cols)

	for i, sf := range frame.Segments {
		m.drawSegment(cv, placements[i], sf, slackRows, slackCols, styled)
	}

	lines := cv.lines()
	// trailing empty rows collapse; leading slack stays so the text
	// block does not jump while segments move vertically
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	return lines[:end]
}

func (m Model) drawSegment(cv *canvas, pl placement, sf SegmentFrame, slackRows int, slackCols int, styled bool) {
	if sf.Props.Opacity < minVisibleOpacity {
		return
	}

	var style *lipgloss.Style
	if styled {
		style = m.segmentLipgloss(sf)
	}

	row := pl.row + slackRows + int(math.Round(sf.Props.Y/unitsPerRow))
	col := pl.col + slackCols + int(math.Round(sf.Props.X/unitsPerCol))

	runes := make([]rune, 0, len(sf.Segment.Text))
	for _, r := range sf.Segment.Text {
		runes = append(runes, r)
	}

	gap := 0
	start, end := 0, len(runes)
	if sf.Props.Scale < 1 {
		// center-crop to the scaled width
		visible := int(math.Round(sf.Props.Scale * float64(len(runes))))
		if visible < 0 {
			visible = 0
		}
		start = (len(runes) - visible) / 2
		end = start + visible
	} else if sf.Props.Scale > 1 {
		// widen by spreading runes apart
		gap = int(math.Round((sf.Props.Scale - 1) * 2))
	}

	c := col + start
	for i := start; i < end; i++ {
		r := runes[i]
		if r == '\n' {
			row++
			c = slackCols
			continue
		}
		cv.put(row, c, r, style)
		c += lipgloss.Width(string(r)) + gap
	}
}

// segmentLipgloss builds the lipgloss style for one segment frame,
// blending the foreground toward the background for opacity and blur.
func (m Model) segmentLipgloss(sf SegmentFrame) *lipgloss.Style {
	color := sf.Style.Color
	if color == "" {
		color = m.opts.Color
	}

	alpha := sf.Props.Opacity
	if sf.Props.Blur > 0 {
		// blur has no terminal analog; approximate with extra fade
		alpha *= 1 - sf.Props.Blur/10*0.6
	}
	if alpha < 1 {
		color = motion.Blend(color, m.opts.Background, alpha)
	}

	st := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	if sf.Style.Bold {
		st = st.Bold(true)
	}
	if sf.Style.Italic {
		st = st.Italic(true)
	}
	if sf.Style.Underline {
		st = st.Underline(true)
	}
	if sf.Style.Strikethrough {
		st = st.Strikethrough(true)
	}
	if sf.Style.Faint || sf.Props.Blur >= faintBlurLevel {
		st = st.Faint(true)
	}
	return &st
}

// View renders the current frame as a single string.
func (m Model) View() string {
	if m.phase == PhaseHidden || m.phase == PhaseRemoved {
		return ""
	}
	return strings.Join(m.RenderLines(time.Now()), "\n")
}
