package conv

import (
	"fmt"

	"github.com/pkg/errors"
)

const recursionLimitMessage = "Recursion limit reached!"

// ConversionError represents entity conversion error
type ConversionError struct {
	// Object is the entity that failed to convert
	Object interface{}
	// TypeName is the entity type name
	TypeName string
	// Depth is the recursion budget in effect
	Depth   int
	Message string
	cause   error
}

// RecursionLimitError is returned when recursion budget is exhausted and ThrowOnLimitExceeded is set
type RecursionLimitError struct {
	ConversionError
}

// Error returns error message
func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("failed to convert %v at depth %v: %v", e.TypeName, e.Depth, e.Message)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Cause returns underlying error
func (e *ConversionError) Cause() error {
	return e.cause
}

// Unwrap returns underlying error
func (e *ConversionError) Unwrap() error {
	return e.cause
}

// Error returns error message
func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("%v %v at depth %v", recursionLimitMessage, e.TypeName, e.Depth)
}

// As matches *ConversionError target
func (e *RecursionLimitError) As(target interface{}) bool {
	if conversionError, ok := target.(**ConversionError); ok {
		*conversionError = &e.ConversionError
		return true
	}
	return false
}

// IsRecursionLimit returns true if err is or wraps RecursionLimitError
func IsRecursionLimit(err error) bool {
	var limitErr *RecursionLimitError
	return errors.As(err, &limitErr)
}

func newConversionError(object interface{}, typeName string, depth int, message string, cause error) *ConversionError {
	return &ConversionError{Object: object, TypeName: typeName, Depth: depth, Message: message, cause: cause}
}

func newRecursionLimitError(object interface{}, typeName string, depth int) *RecursionLimitError {
	return &RecursionLimitError{ConversionError: ConversionError{Object: object, TypeName: typeName, Depth: depth, Message: recursionLimitMessage}}
}
