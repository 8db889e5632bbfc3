// Package validation checks user input before it reaches the store.
package validation

// Error is a rejected-input error. Handlers map it to a 400 response and
// surface Message to the caller.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func failed(field, message string) *Error {
	return &Error{Field: field, Message: message}
}
