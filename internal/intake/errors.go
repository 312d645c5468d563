package intake

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingField  = errors.New("missing field")
	ErrNonNumeric    = errors.New("non-numeric value")
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidChoice = errors.New("invalid choice")
)

// Kind is the defect class of a FieldError.
type Kind int

const (
	KindMissing Kind = iota
	KindNonNumeric
	KindOutOfRange
	KindInvalidChoice
)

// FieldError describes the first defect found in a submission.
type FieldError struct {
	Field   Field
	Kind    Kind
	Value   string
	Allowed []string
}

func (e *FieldError) Error() string {
	switch e.Kind {
	case KindMissing:
		return fmt.Sprintf("please fill all the details (missing: %s)", e.Field)
	case KindNonNumeric:
		return fmt.Sprintf("height, weight and cycle length must be numeric (%s: %q)", e.Field, e.Value)
	case KindOutOfRange:
		return fmt.Sprintf("%s must be greater than zero (got %s)", e.Field, e.Value)
	case KindInvalidChoice:
		return fmt.Sprintf("%s must be one of %s (got %q)", e.Field, strings.Join(e.Allowed, ", "), e.Value)
	default:
		return fmt.Sprintf("%s: invalid", e.Field)
	}
}

// Unwrap lets callers match the defect class with errors.Is.
func (e *FieldError) Unwrap() error {
	switch e.Kind {
	case KindMissing:
		return ErrMissingField
	case KindNonNumeric:
		return ErrNonNumeric
	case KindOutOfRange:
		return ErrOutOfRange
	case KindInvalidChoice:
		return ErrInvalidChoice
	default:
		return nil
	}
}
