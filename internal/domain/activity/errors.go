package activity

import "errors"

// ErrInvalidArgument indicates an out-of-domain count, limit or kind.
var ErrInvalidArgument = errors.New("invalid argument")
