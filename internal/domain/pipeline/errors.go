package pipeline

import "errors"

// ErrInvalidArgument indicates an out-of-domain count or stage.
var ErrInvalidArgument = errors.New("invalid argument")
