package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nfe, ok := err.(*NotFoundError); ok {
		return nfe, true
	}
	return nil, false
}

// AuthError carries one uniform message for every credential or session
// failure so responses never reveal which check rejected the caller.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

func IsAuthError(err error) (*AuthError, bool) {
	if ae, ok := err.(*AuthError); ok {
		return ae, true
	}
	return nil, false
}

// StoreError marks a persistence failure. Handlers map it to a 500 with a
// generic body; the cause stays server-side.
type StoreError struct {
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

func NewStoreError(message string, cause error) *StoreError {
	return &StoreError{
		Message: message,
		Cause:   cause,
	}
}

func IsStoreError(err error) (*StoreError, bool) {
	if se, ok := err.(*StoreError); ok {
		return se, true
	}
	return nil, false
}
