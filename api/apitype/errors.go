package apitype

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	UnknownError ErrorKind = iota
	EnumerationError
	DecodeError
	ActionError
)

func (s ErrorKind) String() string {
	switch s {
	case EnumerationError:
		return "enumeration error"
	case DecodeError:
		return "decode error"
	case ActionError:
		return "action error"
	}
	return "unknown error"
}

// Error carries the failure category so callers can tell the three
// failure paths apart with errors.Is.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

var (
	ErrEnumeration = &Error{Kind: EnumerationError}
	ErrDecode      = &Error{Kind: DecodeError}
	ErrAction      = &Error{Kind: ActionError}

	ErrIndexOutOfRange = errors.New("index out of range")
	ErrStaleIndex      = errors.New("image list has changed")
)

func NewEnumerationError(path string, err error) error {
	return &Error{Kind: EnumerationError, Path: path, Err: err}
}

func NewDecodeError(path string, err error) error {
	return &Error{Kind: DecodeError, Path: path, Err: err}
}

func NewActionError(path string, err error) error {
	return &Error{Kind: ActionError, Path: path, Err: err}
}

func (s *Error) Error() string {
	message := s.Kind.String()
	if s.Path != "" {
		message = fmt.Sprintf("%s: %s", message, s.Path)
	}
	if s.Err != nil {
		message = fmt.Sprintf("%s: %s", message, s.Err.Error())
	}
	return message
}

func (s *Error) Unwrap() error {
	return s.Err
}

// Is matches any *Error of the same kind, so the sentinels above can be
// used as targets.
func (s *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return other.Kind == s.Kind
	}
	return false
}

func ErrorKindOf(err error) ErrorKind {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind
	}
	return UnknownError
}
