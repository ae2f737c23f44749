package core

import "errors"

// ErrInvalidArgument is the error kind for every rejected input in this
// module. Package-level sentinels wrap it, so callers can match either the
// specific error or the kind with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
