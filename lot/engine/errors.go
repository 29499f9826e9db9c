package engine

import "errors"

// Failure outcomes are ordinary states of a parking lot (full, unreachable,
// already taken) and are always returned, never raised fatally.
var (
	ErrInvalidCoordinate   = errors.New("coordinate out of lot bounds")
	ErrSpotUnavailable     = errors.New("spot occupied or already reserved")
	ErrNoPathFound         = errors.New("no path found")
	ErrLotFull             = errors.New("no free spot in the lot")
	ErrNoActiveReservation = errors.New("no active reservation")
)
