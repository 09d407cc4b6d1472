package render_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/animate"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

func c(r, col int) grid.Coord { return grid.Coord{Row: r, Col: col} }

func TestText_Frame(t *testing.T) {
	var buf bytes.Buffer
	txt := render.NewText(&buf)
	frame := txt.Frame([][]grid.CellState{
		{grid.Start, grid.Wall, grid.End},
		{grid.Visited, grid.Path, grid.Empty},
	})
	assert.Equal(t, "S█E\n○●·\n", frame, "a non-terminal writer gets no escape codes")
	assert.Equal(t, "?", txt.Cell(grid.CellState(42)))
}

func TestTerminal_MirrorsRun(t *testing.T) {
	g, err := grid.New(grid.WithDimensions(3, 4))
	require.NoError(t, err)
	require.NoError(t, g.Load(c(0, 0), c(0, 3), []grid.Coord{c(0, 1), c(1, 1)}))

	var out bytes.Buffer
	term := render.NewTerminal(&out, g.Snapshot(), true)
	rec := &render.Recorder{}
	sched, err := animate.New(animate.WithClock(&animate.Instant{}))
	require.NoError(t, err)

	rep, err := sched.Run(context.Background(), g, search.AlgoBFS, render.Multi(term, rec, nil))
	require.NoError(t, err)
	require.Equal(t, search.PathFound, rep.Outcome)

	assert.Equal(t, rep.Visited, rec.Count(grid.Visited))
	assert.Equal(t, len(rep.Path)-2, rec.Count(grid.Path))
	assert.Len(t, rec.Events(), rep.Visited+len(rep.Path)-2)
	assert.Equal(t, len(rec.Events()), strings.Count(out.String(), "step "))

	out.Reset()
	term.Flush()
	assert.Equal(t, render.NewText(&out).Frame(g.Snapshot()), out.String())

	// out-of-range events are ignored
	term.OnCellStateChanged(c(9, 9), grid.Wall)
}
