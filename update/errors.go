package update

import "errors"

// ErrNotApplicable is returned by Apply when the action cannot occur at
// the given state: some designated world admits no designated event
// whose precondition holds there.
var ErrNotApplicable = errors.New("update: action not applicable")
