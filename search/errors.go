package search

import "errors"

// ErrNoPlanFound is returned by Search when no plan is found: either a
// bounded search exhausts its frontier with no deferred action left to
// retry, or the bound escalates past its configured maximum.
var ErrNoPlanFound = errors.New("search: no plan found within max bound")
