package leverage

import "errors"

var (
	// ErrFuturesDisabled is returned by futures mutations on a book that does not track futures.
	ErrFuturesDisabled = errors.New("futures are not tracked by this book")
	// ErrNegative is returned by a strict book when a count or a price is negative.
	ErrNegative = errors.New("negative value")
	// ErrUnknownDirection is returned when a futures direction cannot be parsed.
	ErrUnknownDirection = errors.New("unknown direction")
	// ErrNoSuchPosition is returned when a position index is out of range.
	ErrNoSuchPosition = errors.New("no such position")
)
