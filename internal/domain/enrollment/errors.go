package enrollment

import "errors"

// ErrInvalidInput indicates an event or list request that can't be served.
var ErrInvalidInput = errors.New("invalid enrollment input")
