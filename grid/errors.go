package grid

import "errors"

// ErrInvalidDimensions is returned by New for non-positive rows, columns or tile size
var ErrInvalidDimensions = errors.New("invalid grid dimensions")
