package models

import "fmt"

// UsageError is returned when the command was invoked incorrectly. It is
// always raised before any network activity.
type UsageError struct {
	message string
}

// NewUsageError returns a pointer to a new instance of UsageError.
func NewUsageError(message string, args ...interface{}) *UsageError {
	return &UsageError{
		message: fmt.Sprintf(message, args...),
	}
}

func (err *UsageError) Error() string {
	return err.message
}
