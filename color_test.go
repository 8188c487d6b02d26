package exceedbar

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gg.RGBA
	}{
		{"#3F51B5", gg.Hex("#3F51B5")},
		{"3f51b5", gg.Hex("#3F51B5")},
		{"#fff", gg.RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"#0000", gg.RGBA{}},
		{" #E0E0E0 ", gg.Hex("#E0E0E0")},
		{"#30303F80", gg.Hex("#30303F80")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#GGGGGG", "red", "#3F51B5FF00"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) err = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestHexString(t *testing.T) {
	tests := []struct {
		c    gg.RGBA
		want string
	}{
		{DefaultTrackColor, "#E0E0E0"},
		{DefaultProgressColor, "#3F51B5"},
		{DefaultExceededColor, "#303F9F"},
		{gg.RGBA{R: 2, G: -1, B: 0.5, A: 0.3}, "#FF0080"},
	}
	for _, tt := range tests {
		if got := HexString(tt.c); got != tt.want {
			t.Errorf("HexString(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}
