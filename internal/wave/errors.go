package wave

import "errors"

// ErrUnknownKind indicates a pattern name that is not one of the built-in kinds.
var ErrUnknownKind = errors.New("wave: unknown pattern kind")
