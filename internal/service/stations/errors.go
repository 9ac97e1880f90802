package stations

import "errors"

var (
	ErrStationNotFound = errors.New("station not found")
	ErrAccessDenied    = errors.New("access denied")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternal        = errors.New("internal error")
)
