package scheduling

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInternalInconsistency flags a state the scheduling invariants should make
// unreachable, like a computed slot with end before start or overlapping emitted
// blocks; a run hitting it is aborted instead of returning an invalid plan
var ErrInternalInconsistency = errors.New("scheduling produced an inconsistent state")

// ValidationError rejects a whole scheduling run before any work begins
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid scheduling input: %s %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
