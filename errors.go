package exceedbar

import "errors"

// Sentinel errors for the exceedbar package.
var (
	// ErrInvalidColor is returned by ParseColor for malformed hex colors.
	ErrInvalidColor = errors.New("exceedbar: invalid color")
)
