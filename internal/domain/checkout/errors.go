// internal/domain/checkout/errors.go
package checkout

import (
	"errors"
	"strings"
)

// ErrValidation matches any *ValidationError via errors.Is
var ErrValidation = errors.New("checkout validation failed")

// ValidationError lists the required fields that were left empty
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Status returns the user-visible status string for this failure
func (e *ValidationError) Status() string {
	return StatusIncomplete
}
