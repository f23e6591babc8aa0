package tableau

import (
	"errors"
	"fmt"

	"github.com/nathoo/agecore/engine/action"
)

// ErrIllegalAction matches every *IllegalActionError via errors.Is.
var ErrIllegalAction = errors.New("illegal action")

// IllegalActionError reports an action that failed a legality check.
type IllegalActionError struct {
	Action action.Action
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %q: %s", e.Action, e.Reason)
}

// Is makes errors.Is(err, ErrIllegalAction) true.
func (e *IllegalActionError) Is(target error) bool {
	return target == ErrIllegalAction
}
