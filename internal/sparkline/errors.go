package sparkline

import "errors"

// Sentinel causes wrapped into the configuration errors returned by New.
var (
	ErrInvalidGeometry = errors.New("sparkline width and height must be positive")
	ErrInvalidRange    = errors.New("sparkline range must be finite with min < max")
)
