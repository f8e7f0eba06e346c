package generator

import (
	"errors"
	"fmt"
)

// Kind classifies generator failures.
type Kind int

const (
	// InvalidName means a project or file name failed validation.
	InvalidName Kind = iota + 1
	// AlreadyExists means the target file or directory is already present.
	AlreadyExists
	// NotFound means a required project or template is missing.
	NotFound
)

func (k Kind) String() string {
	switch k {
	case InvalidName:
		return "invalid name"
	case AlreadyExists:
		return "already exists"
	case NotFound:
		return "not found"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinels for errors.Is checks against *Error.
var (
	ErrInvalidName   = errors.New("invalid name")
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
)

// Error is returned for validation and existence failures.
type Error struct {
	Kind   Kind
	Name   string // offending name or path
	Dir    string // directory checked (AlreadyExists and NotFound)
	Reason string // what to fix (InvalidName only)
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidName:
		return fmt.Sprintf("%s is not a valid file name. Please %s.", e.Name, e.Reason)
	case AlreadyExists:
		return fmt.Sprintf("%s already exists in %s", e.Name, e.Dir)
	case NotFound:
		return fmt.Sprintf("%s does not exist in %s", e.Name, e.Dir)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Name)
	}
}

// Is matches the sentinel errors by kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidName:
		return e.Kind == InvalidName
	case ErrAlreadyExists:
		return e.Kind == AlreadyExists
	case ErrNotFound:
		return e.Kind == NotFound
	}
	return false
}

// KindOf returns the Kind of a generator error, or 0 if err is not one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
