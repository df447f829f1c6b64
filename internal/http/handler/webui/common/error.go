package common

// Error is an error the user can be told about, answered with its status
// code.
type Error struct {
	cause       error
	userMessage string
	statusCode  int
}

// StatusCode implements HTTPError.
func (e *Error) StatusCode() int {
	return e.statusCode
}

func (e *Error) Error() string {
	return e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// UserMessage implements UserFacingError.
func (e *Error) UserMessage() string {
	return e.userMessage
}

func NewError(cause error, userMessage string, statusCode int) *Error {
	return &Error{cause, userMessage, statusCode}
}

var _ UserFacingError = &Error{}
var _ HTTPError = &Error{}
