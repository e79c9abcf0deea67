package resource

import "errors"

// Kind classifies service failures. The HTTP layer maps kinds to status
// codes; the engine itself knows nothing about transports.
type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindNotFound
)

// Error is the engine's failure taxonomy: a kind, a human-readable message
// and optional structured details. Store failures that fit neither kind
// propagate unwrapped.
type Error struct {
	Kind    Kind
	Message string
	Details any
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

func IsBadRequest(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindBadRequest
}
