package ir

import (
	"errors"
	"fmt"
)

var (
	ErrBadPath        = errors.New("bad path")
	ErrInvalidSegment = errors.New("invalid segment")

	ErrSelfOrDescendant        = errors.New("destination is the source or inside it")
	ErrSourceNotFound          = errors.New("source not found")
	ErrDestinationNotFound     = errors.New("destination not found")
	ErrDestinationNotContainer = errors.New("destination is not an array or object")
)

// ResolveError reports the segment at which a path stopped resolving.
type ResolveError struct {
	Path Path
	At   int
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s: %s at segment %d of %q", e.Err, e.Path[e.At], e.At, e.Path)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// MoveError is a rejected move. The tree it was applied to is unchanged.
type MoveError struct {
	Src, Dst Path
	Reason   error
	Cause    error
}

func (e *MoveError) Error() string {
	msg := fmt.Sprintf("move %q to %q: %s", e.Src, e.Dst, e.Reason)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *MoveError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Reason, e.Cause}
	}
	return []error{e.Reason}
}

// Moved reports whether err, returned from Move, signals an applied move.
func Moved(err error) bool {
	return err == nil
}
