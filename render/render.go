// Package render provides RenderSink implementations: a lipgloss terminal
// renderer, an in-memory recorder and a fan-out.
package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/animate"
	"github.com/katalvlaran/gridpath/grid"
)

// Palette colors, one per cell state.
var (
	colorStart   = lipgloss.Color("#2CD7C7")
	colorEnd     = lipgloss.Color("#E74C3C")
	colorWall    = lipgloss.Color("#2C4A54")
	colorVisited = lipgloss.Color("#1D9EA3")
	colorPath    = lipgloss.Color("#F4D03F")
)

// glyphs is indexed by grid.CellState.
var glyphs = [...]string{"·", "S", "E", "█", "○", "●"}

// Text draws whole-grid frames with one styled glyph per cell.
type Text struct {
	styles [len(glyphs)]lipgloss.Style
}

// NewText builds a Text whose color profile is detected from w.
func NewText(w io.Writer) *Text {
	r := lipgloss.NewRenderer(w)
	t := &Text{}
	t.styles[grid.Empty] = r.NewStyle().Faint(true)
	t.styles[grid.Start] = r.NewStyle().Bold(true).Foreground(colorStart)
	t.styles[grid.End] = r.NewStyle().Bold(true).Foreground(colorEnd)
	t.styles[grid.Wall] = r.NewStyle().Foreground(colorWall)
	t.styles[grid.Visited] = r.NewStyle().Foreground(colorVisited)
	t.styles[grid.Path] = r.NewStyle().Bold(true).Foreground(colorPath)
	return t
}

// Frame renders cells row by row, one line per row.
func (t *Text) Frame(cells [][]grid.CellState) string {
	var b strings.Builder
	for _, row := range cells {
		for _, s := range row {
			b.WriteString(t.Cell(s))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Cell renders a single state.
func (t *Text) Cell(s grid.CellState) string {
	if s < 0 || int(s) >= len(glyphs) {
		return "?"
	}
	return t.styles[s].Render(glyphs[s])
}

// Terminal is a RenderSink that mirrors the grid and, when Frames is set,
// writes a full frame to its writer after every event.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	text   *Text
	cells  [][]grid.CellState
	frames bool
	events int
}

// NewTerminal mirrors initial and writes frames to w when frames is true.
func NewTerminal(w io.Writer, initial [][]grid.CellState, frames bool) *Terminal {
	cells := make([][]grid.CellState, len(initial))
	for r := range initial {
		cells[r] = append([]grid.CellState(nil), initial[r]...)
	}
	return &Terminal{w: w, text: NewText(w), cells: cells, frames: frames}
}

// OnCellStateChanged implements animate.RenderSink.
func (t *Terminal) OnCellStateChanged(c grid.Coord, s grid.CellState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c.Row < 0 || c.Row >= len(t.cells) || c.Col < 0 || c.Col >= len(t.cells[c.Row]) {
		return
	}
	t.cells[c.Row][c.Col] = s
	t.events++
	if t.frames {
		fmt.Fprintf(t.w, "step %d: %s → %s\n%s\n", t.events, c, s, t.text.Frame(t.cells))
	}
}

// Flush writes the current mirror as one frame.
func (t *Terminal) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprint(t.w, t.text.Frame(t.cells))
}

// Event is one recorded cell change.
type Event struct {
	Coord grid.Coord     `json:"coord"`
	State grid.CellState `json:"state"`
}

// Recorder is a RenderSink that keeps every event in order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// OnCellStateChanged implements animate.RenderSink.
func (r *Recorder) OnCellStateChanged(c grid.Coord, s grid.CellState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Coord: c, State: s})
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Count returns how many events carried state s.
func (r *Recorder) Count(s grid.CellState) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.State == s {
			n++
		}
	}
	return n
}

// Multi fans each event out to every sink in order.
func Multi(sinks ...animate.RenderSink) animate.RenderSink {
	return animate.SinkFunc(func(c grid.Coord, s grid.CellState) {
		for _, sink := range sinks {
			if sink != nil {
				sink.OnCellStateChanged(c, s)
			}
		}
	})
}
