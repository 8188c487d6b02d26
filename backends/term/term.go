// Package term draws bar frames as rows of terminal cells styled with
// lipgloss.
//
// One pixel of the bar layout is one terminal cell. Options configures a
// Bar for that grid: labels measure one column per rune and one row high,
// corners are square and the gap is a single column.
package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"

	"github.com/rands/exceedbar"
)

// Block is the rune drawn in filled cells.
const Block = '█'

// CellMeasurer measures text in cells.
type CellMeasurer struct{}

// MeasureText implements exceedbar.Measurer.
func (CellMeasurer) MeasureText(s string, _ float64, _ exceedbar.FontWeight) exceedbar.TextExtent {
	if s == "" {
		return exceedbar.TextExtent{}
	}
	return exceedbar.TextExtent{Advance: float64(lipgloss.Width(s)), InkHeight: 1}
}

// Options returns the options that lay a Bar out on a cell grid. Append
// them after any caller options.
func Options() []exceedbar.Option {
	return []exceedbar.Option{
		exceedbar.WithMeasurer(CellMeasurer{}),
		exceedbar.WithDensity(1),
		exceedbar.WithTextSizes(1, 1),
		exceedbar.WithRadius(0),
		exceedbar.WithTrackGap(1),
		exceedbar.WithTopTextBottomSpace(0),
	}
}

// Cell is one terminal cell.
type Cell struct {
	Rune  rune
	Color gg.RGBA
	Bold  bool
	// Set reports whether anything was drawn into the cell.
	Set bool
}

// Canvas implements exceedbar.Canvas on a cell grid.
type Canvas struct {
	width, height int
	cells         []Cell
}

var _ exceedbar.Canvas = (*Canvas)(nil)

// NewCanvas returns an empty width x height grid.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Cell returns the cell at column x, row y. Out-of-range cells are empty.
func (c *Canvas) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

func (c *Canvas) set(x, y int, cell Cell) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell
}

// FillPath implements exceedbar.Canvas. The path's bounds are snapped to
// whole cells; curves are ignored.
func (c *Canvas) FillPath(p *gg.Path, col gg.RGBA) error {
	if len(p.Elements()) == 0 {
		return nil
	}
	b := exceedbar.PathBounds(p)
	x0, x1 := snap(b.Left), snap(b.Right)
	y0, y1 := snap(b.Top), snap(b.Bottom)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y, Cell{Rune: Block, Color: col, Set: true})
		}
	}
	return nil
}

// DrawText implements exceedbar.Canvas. y is a baseline, so the text
// occupies the row above it.
func (c *Canvas) DrawText(s string, x, y float64, style exceedbar.TextStyle) error {
	col, row := snap(x), snap(y)-1
	for _, r := range s {
		c.set(col, row, Cell{
			Rune:  r,
			Color: style.Color,
			Bold:  style.Weight == exceedbar.FontBold,
			Set:   true,
		})
		col++
	}
	return nil
}

// String renders the grid, one line per row. Runs of equally styled cells
// share one lipgloss style.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := c.cells[y*c.width : (y+1)*c.width]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && sameStyle(row[start], row[end]) {
				end++
			}
			sb.WriteString(renderRun(row[start:end]))
			start = end
		}
	}
	return sb.String()
}

// Render lays bar out at width columns and returns the styled rows. The
// bar should be built with Options.
func Render(bar *exceedbar.Bar, width int) (string, error) {
	w, h := bar.Measure(exceedbar.ExactlySpec(width), exceedbar.MeasureSpec{})
	c := NewCanvas(w, h)
	if err := bar.Render(c, w, h); err != nil {
		return "", err
	}
	return c.String(), nil
}

func renderRun(run []Cell) string {
	var text strings.Builder
	for _, cell := range run {
		if cell.Set {
			text.WriteRune(cell.Rune)
		} else {
			text.WriteByte(' ')
		}
	}
	if !run[0].Set {
		return text.String()
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(exceedbar.HexString(run[0].Color))).
		Bold(run[0].Bold).
		Render(text.String())
}

func sameStyle(a, b Cell) bool {
	if a.Set != b.Set {
		return false
	}
	return !a.Set || (a.Color == b.Color && a.Bold == b.Bold)
}

func snap(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}
