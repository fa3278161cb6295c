package interview

import "errors"

// ErrInvalidArgument indicates a skill level outside 0..100.
var ErrInvalidArgument = errors.New("invalid argument")
