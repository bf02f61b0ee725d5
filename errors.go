package bincursor

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData is returned when a read would extend past the end of the buffer
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidOffset is returned when a seek or jump target lies outside the buffer
	ErrInvalidOffset = errors.New("invalid offset")
	// ErrCursorBusy is returned when a handle is used while a jump holds the cursor
	ErrCursorBusy = errors.New("cursor is leased to an active jump")
	// ErrJumpReleased is returned when a released jump is used
	ErrJumpReleased = errors.New("jump already released")
	// ErrJumpDepthExceeded is returned when nested jumps go past the configured limit
	ErrJumpDepthExceeded = errors.New("jump depth exceeded")
	// ErrNoSavedLocation is returned by RestoreLocation when the location stack is empty
	ErrNoSavedLocation = errors.New("no saved location")
)

// BoundsError describes a failed bounds check
type BoundsError struct {
	Op     string
	Offset int
	Width  int
	Len    int
	Err    error
}

func (e *BoundsError) Error() string {
	if e.Err == ErrInvalidOffset {
		return fmt.Sprintf("%s: %s: target %d, buffer length %d", e.Op, e.Err, e.Offset, e.Len)
	}
	return fmt.Sprintf("%s: %s: need %d bytes at offset %d, buffer length %d", e.Op, e.Err, e.Width, e.Offset, e.Len)
}

func (e *BoundsError) Unwrap() error {
	return e.Err
}
