package scale

import "errors"

// ErrInvalidScale indicates a scale that cannot be inverted.
var ErrInvalidScale = errors.New("scale: invalid scale (factor must be finite and nonzero)")
