package chord

import (
	"errors"
	"fmt"
)

// CapacityError reports a press that was dropped because the pressed-key
// set was already full. It carries the dropped keycode and the configured
// capacity for diagnostics.
//
// Capacity errors are never fatal: the caller logs a warning and keeps
// processing with the set unchanged.
type CapacityError struct {
	Key      Keycode
	Capacity int
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("pressed-key capacity %d exceeded: keycode %d dropped", e.Capacity, e.Key)
}

// IsCapacityError returns true if the error is a capacity error.
// Uses errors.As to handle wrapped errors.
func IsCapacityError(err error) bool {
	var ce *CapacityError
	return errors.As(err, &ce)
}
