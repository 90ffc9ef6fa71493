package errors

import "fmt"

// ErrorCode represents an ohm error code.
type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"  // malformed or missing parameters
	ErrDomainViolation ErrorCode = "DOMAIN_VIOLATION" // input outside a formula's valid domain
	ErrDivideByZero    ErrorCode = "DIVIDE_BY_ZERO"   // zero or near-zero denominator
	ErrInternal        ErrorCode = "INTERNAL"         // unexpected internal error
)

// CalcError represents a structured error with code and details.
type CalcError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *CalcError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates an error for invalid request parameters.
func NewInvalidRequest(msg string) *CalcError {
	return &CalcError{
		Code:    ErrInvalidRequest,
		Message: msg,
	}
}

// NewDomainViolation creates an error for an input outside a formula's domain.
// quantity names the offending value so callers can tell which input to fix;
// msg is the complete user-visible message.
func NewDomainViolation(quantity, msg string) *CalcError {
	return &CalcError{
		Code:    ErrDomainViolation,
		Message: msg,
		Details: map[string]any{"quantity": quantity},
	}
}

// NewDivideByZero creates an error for a zero or near-zero denominator.
// msg is the complete user-visible message naming the denominator.
func NewDivideByZero(msg string) *CalcError {
	return &CalcError{
		Code:    ErrDivideByZero,
		Message: msg,
	}
}

// NewInternal creates an error for unexpected internal failures.
func NewInternal(err error) *CalcError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &CalcError{
		Code:    ErrInternal,
		Message: msg,
	}
}

// Is checks if an error is a CalcError with the given code.
func Is(err error, code ErrorCode) bool {
	if cErr, ok := err.(*CalcError); ok {
		return cErr.Code == code
	}
	return false
}
