package exceedbar

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
)

// Style is the fixed set of colors and sizes the bar is drawn with.
// Sizes are in pixels.
type Style struct {
	TrackColor          gg.RGBA
	ProgressColor       gg.RGBA
	ExceededColor       gg.RGBA
	PercentageTextColor gg.RGBA
	TopTextColor        gg.RGBA

	TopTextSize        float64
	PercentageTextSize float64
}

// Default palette: light grey track, indigo progress, dark indigo overflow,
// grey labels.
var (
	DefaultTrackColor    = gg.Hex("#E0E0E0")
	DefaultProgressColor = gg.Hex("#3F51B5")
	DefaultExceededColor = gg.Hex("#303F9F")
	DefaultTextColor     = gg.Hex("#757575")
)

// ParseColor parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" (the '#' is
// optional). Unlike gg.Hex it rejects malformed input.
func ParseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	switch len(hex) {
	case 3, 4:
		// Expand shorthand so each nibble becomes a full byte.
		var sb strings.Builder
		for i := 0; i < len(hex); i++ {
			sb.WriteByte(hex[i])
			sb.WriteByte(hex[i])
		}
		hex = sb.String()
	case 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return gg.Hex(hex), nil
}

// HexString formats c as "#RRGGBB", dropping alpha. Terminal hosts use it
// to build lipgloss colors.
func HexString(c gg.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
