package io

import (
	"errors"

	"github.com/ezrec/hackasm/translate"
)

var f = translate.From

var (
	// Collaborator errors
	ErrUnreadableSource      = errors.New(f("unreadable source"))
	ErrUnwritableDestination = errors.New(f("unwritable destination"))
)

// ErrSource is a failure to read a source program.
type ErrSource struct {
	Name string
	Err  error
}

func (err *ErrSource) Error() string {
	return f("%v: %v: %v", ErrUnreadableSource, err.Name, err.Err)
}

func (err *ErrSource) Unwrap() error {
	return err.Err
}

func (err *ErrSource) Is(target error) bool {
	return target == ErrUnreadableSource
}

// ErrDestination is a failure to write an assembled program.
type ErrDestination struct {
	Name string
	Err  error
}

func (err *ErrDestination) Error() string {
	return f("%v: %v: %v", ErrUnwritableDestination, err.Name, err.Err)
}

func (err *ErrDestination) Unwrap() error {
	return err.Err
}

func (err *ErrDestination) Is(target error) bool {
	return target == ErrUnwritableDestination
}
