package exceedbar

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Canvas is what a host implements to rasterize a frame.
type Canvas interface {
	// FillPath fills the closed path with a solid color.
	FillPath(p *gg.Path, c gg.RGBA) error
	// DrawText draws s with its baseline starting at (x, y).
	DrawText(s string, x, y float64, style TextStyle) error
}

// TextStyle describes how a text command is drawn.
type TextStyle struct {
	Size   float64
	Weight FontWeight
	Color  gg.RGBA
}

// Command is one draw instruction of a frame.
type Command interface {
	isCommand()
	// Draw sends the command to c.
	Draw(c Canvas) error
}

// Segment names the part of the bar a FillPathCommand draws.
type Segment int

const (
	SegmentTrack Segment = iota
	SegmentProgress
	SegmentExceeded
)

// String returns the segment name.
func (s Segment) String() string {
	switch s {
	case SegmentTrack:
		return "track"
	case SegmentProgress:
		return "progress"
	case SegmentExceeded:
		return "exceeded"
	default:
		return fmt.Sprintf("Segment(%d)", int(s))
	}
}

// FillPathCommand fills one bar segment.
type FillPathCommand struct {
	Segment Segment
	Rect    Rect
	Corners Corners
	Path    *gg.Path
	Color   gg.RGBA
}

func (FillPathCommand) isCommand() {}

// Draw implements Command.
func (cmd FillPathCommand) Draw(c Canvas) error {
	return c.FillPath(cmd.Path, cmd.Color)
}

// TextCommand draws one label.
type TextCommand struct {
	Text  string
	X, Y  float64
	Style TextStyle
}

func (TextCommand) isCommand() {}

// Draw implements Command.
func (cmd TextCommand) Draw(c Canvas) error {
	return c.DrawText(cmd.Text, cmd.X, cmd.Y, cmd.Style)
}

// Frame is the ordered output of one draw pass: track, progress segment,
// exceeded segment (when present), percentage text, top text.
type Frame struct {
	Width, Height int
	Geometry      ProgressGeometry
	Commands      []Command
}

// Draw replays every command on c, stopping at the first error.
func (f *Frame) Draw(c Canvas) error {
	for i, cmd := range f.Commands {
		if err := cmd.Draw(c); err != nil {
			return fmt.Errorf("exceedbar: command %d: %w", i, err)
		}
	}
	return nil
}

// Segments returns the fill commands in draw order.
func (f *Frame) Segments() []FillPathCommand {
	out := make([]FillPathCommand, 0, 3)
	for _, cmd := range f.Commands {
		if fc, ok := cmd.(FillPathCommand); ok {
			out = append(out, fc)
		}
	}
	return out
}

// Texts returns the text commands in draw order.
func (f *Frame) Texts() []TextCommand {
	out := make([]TextCommand, 0, 2)
	for _, cmd := range f.Commands {
		if tc, ok := cmd.(TextCommand); ok {
			out = append(out, tc)
		}
	}
	return out
}
