package response

import (
	"errors"
)

// Envelope is the uniform body every endpoint returns, success or failure.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Result  interface{} `json:"result"`
}

func Success(message string, result interface{}) Envelope {
	return Envelope{
		Success: true,
		Message: message,
		Result:  result,
	}
}

func Failure(message string) Envelope {
	return Envelope{
		Success: false,
		Message: message,
		Result:  nil,
	}
}

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}
