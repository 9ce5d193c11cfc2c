package core

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("video with given id not found")
	ErrConflict        = errors.New("video id taken")
	ErrInvalidArgument = errors.New("invalid argument")
)

// FieldError reports a missing or malformed request argument.
// It matches ErrInvalidArgument under errors.Is.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *FieldError) Is(target error) bool { return target == ErrInvalidArgument }

// IsNotFound reports whether err is a not-found condition.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err indicates a duplicate id.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsInvalidArgument reports whether err was caused by bad caller input.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }
