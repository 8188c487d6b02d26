package exceedbar

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormatter turns a label value into display text.
type NumberFormatter interface {
	FormatNumber(v float64) string
}

// TextFormatter post-processes the planned-max text, typically to append
// a unit ("1 500 kWh"). It receives the already formatted number.
type TextFormatter func(s string) string

// DecimalFormat formats numbers with fixed separators regardless of the
// process locale. Trailing fractional zeros are dropped.
type DecimalFormat struct {
	// Grouping separates thousands. Zero disables grouping.
	Grouping rune
	// Point separates the fraction. Zero means '.'.
	Point rune
	// MaxFractionDigits rounds the fraction; negative keeps the shortest
	// representation that round-trips.
	MaxFractionDigits int
}

// DefaultDecimalFormat groups with a space, uses '.' as the decimal point
// and keeps at most two fractional digits: 1234.5 -> "1 234.5".
func DefaultDecimalFormat() DecimalFormat {
	return DecimalFormat{Grouping: ' ', Point: '.', MaxFractionDigits: 2}
}

// FormatNumber implements NumberFormatter.
func (f DecimalFormat) FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(math.Abs(v), 'f', f.MaxFractionDigits, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	frac = strings.TrimRight(frac, "0")

	var sb strings.Builder
	if v < 0 && (intPart != "0" || frac != "") {
		sb.WriteByte('-')
	}
	for i, d := range intPart {
		if f.Grouping != 0 && i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteRune(f.Grouping)
		}
		sb.WriteRune(d)
	}
	if frac != "" {
		point := f.Point
		if point == 0 {
			point = '.'
		}
		sb.WriteRune(point)
		sb.WriteString(frac)
	}
	return sb.String()
}

// LocaleFormat formats numbers with the grouping and decimal symbols of a
// CLDR locale.
type LocaleFormat struct {
	printer *message.Printer
	digits  int
}

// NewLocaleFormat returns a formatter for tag keeping at most
// maxFractionDigits fractional digits.
func NewLocaleFormat(tag language.Tag, maxFractionDigits int) *LocaleFormat {
	return &LocaleFormat{
		printer: message.NewPrinter(tag),
		digits:  maxFractionDigits,
	}
}

// FormatNumber implements NumberFormatter.
func (f *LocaleFormat) FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(f.digits)))
}
