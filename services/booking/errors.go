package booking

import "fmt"

// InvalidInputError is returned by the field validators. Hint carries the
// corrective prompt shown to the user; the step does not advance.
type InvalidInputError struct {
	Field string
	Hint  string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Hint)
}

// UnparseableDateError is returned when a date phrase cannot be resolved to a
// calendar date today or later.
type UnparseableDateError struct {
	Phrase string
}

func (e *UnparseableDateError) Error() string {
	return fmt.Sprintf("unparseable date: %q", e.Phrase)
}

// UnparseableTimeError is returned when a time phrase cannot be resolved to a
// canonical HH:MM label.
type UnparseableTimeError struct {
	Phrase string
}

func (e *UnparseableTimeError) Error() string {
	return fmt.Sprintf("unparseable time: %q", e.Phrase)
}
