package gear

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfiguration is matched by every validation failure of the
// gear model. Use errors.Is to detect it through wrapping.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// CodeInvalidConfiguration is the ValidationError code for invariant violations.
const CodeInvalidConfiguration = "INVALID_CONFIGURATION"

// ValidationError contains details about a single invariant violation.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Is reports whether the error belongs to the invalid configuration kind.
func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidConfiguration && e.Code == CodeInvalidConfiguration
}

// ValidationErrors collects every violation found while validating one value.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Is reports whether any collected violation matches target.
func (errs ValidationErrors) Is(target error) bool {
	for _, e := range errs {
		if e.Is(target) {
			return true
		}
	}
	return false
}

// orNil returns nil for an empty set so callers can write `return errs.orNil()`.
func (errs ValidationErrors) orNil() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func invalid(field, format string, args ...any) ValidationError {
	return ValidationError{
		Code:    CodeInvalidConfiguration,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
