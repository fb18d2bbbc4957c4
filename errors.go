package imguidemo

import "errors"

// ErrInvalidWindowSize is returned when a window or display size is not
// positive.
var ErrInvalidWindowSize = errors.New("invalid window size")
