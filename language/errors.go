package language

import "errors"

// ErrUnknownName indicates that a lookup by name found no matching atom or
// agent in the registry. Per the error-handling design, this propagates to
// the caller unchanged: it indicates a bug in the problem builder, not a
// recoverable planning outcome.
var ErrUnknownName = errors.New("language: unknown name")
