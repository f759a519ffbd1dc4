package pixel

import "errors"

// Conversion errors are fail-fast: the offending call aborts with no
// partial result.  All errors returned by this repository wrap one of
// these sentinels so callers can classify failures with errors.Is.
var (
	// ErrIncompatibleDimensions is returned when explicitly given axis
	// sizes do not multiply to the length of the data.
	ErrIncompatibleDimensions = errors.New("dimensions incompatible with data length")

	// ErrDimensionsRequired is returned when no dimension guess fits a
	// flat length and no axis sizes were supplied.
	ErrDimensionsRequired = errors.New("dimensions required")

	// ErrUnsupportedRank is returned for input arrays that are not 2, 3,
	// or 4-axis.
	ErrUnsupportedRank = errors.New("unsupported array rank")

	// ErrCoordinateOutOfRange is returned when a 1-based coordinate is
	// non-positive or exceeds its axis size.
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")

	// ErrNonPositiveCoordinate is returned during tabular decode when a
	// coordinate column holds a value <= 0.
	ErrNonPositiveCoordinate = errors.New("non-positive coordinate")

	// ErrMissingValueColumn is returned during tabular decode when no
	// column matches the requested value column name.
	ErrMissingValueColumn = errors.New("missing value column")
)
