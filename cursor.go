package bincursor

import (
	"io"
	"log/slog"
	"sync"
)

// state is shared by a Cursor and every Jump opened on it
type state struct {
	mu       sync.Mutex
	buffer   []byte
	cursor   int
	lease    *Jump
	maxDepth int
	logger   *slog.Logger
}

// handle is a view of the shared state. The cursor itself is the handle with
// a nil jump; each Jump is a handle pointing at itself.
type handle struct {
	s         *state
	jump      *Jump
	locations []int
}

// Cursor reads fixed-width values from a borrowed buffer without consuming it.
// The buffer is never modified and must not be modified by the caller while
// the cursor is in use.
type Cursor struct {
	handle
}

// CursorOptionFunc is a type that represents functions that modify the Cursor config
type CursorOptionFunc func(*Cursor)

// WithLogger specifies the logger to use. If none is provided, log output is discarded
func WithLogger(logger *slog.Logger) CursorOptionFunc {
	return func(c *Cursor) {
		c.s.logger = logger
	}
}

// WithMaxJumpDepth limits how deeply jumps may be nested. Zero means no limit
func WithMaxJumpDepth(depth int) CursorOptionFunc {
	return func(c *Cursor) {
		c.s.maxDepth = depth
	}
}

// NewCursor returns a cursor positioned at the start of buffer
func NewCursor(buffer []byte, opts ...CursorOptionFunc) *Cursor {
	c := &Cursor{
		handle: handle{
			s: &state{buffer: buffer},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.s.logger == nil {
		c.s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// check reports whether h currently holds the lease. Callers must hold s.mu.
func (h *handle) check() error {
	if h.jump != nil && h.jump.released {
		return ErrJumpReleased
	}
	if h.s.lease != h.jump {
		return ErrCursorBusy
	}
	return nil
}

// slice returns the next n bytes without moving. Callers must hold s.mu.
func (s *state) slice(op string, n int) ([]byte, error) {
	if n < 0 || n > len(s.buffer)-s.cursor {
		return nil, &BoundsError{
			Op:     op,
			Offset: s.cursor,
			Width:  n,
			Len:    len(s.buffer),
			Err:    ErrInsufficientData,
		}
	}
	end := s.cursor + n
	return s.buffer[s.cursor:end:end], nil
}

// relocate moves to an absolute offset. Callers must hold s.mu.
func (s *state) relocate(op string, target int) error {
	if target < 0 || target > len(s.buffer) {
		return &BoundsError{
			Op:     op,
			Offset: target,
			Len:    len(s.buffer),
			Err:    ErrInvalidOffset,
		}
	}
	s.cursor = target
	return nil
}

// nextBytes returns the next n bytes and advances past them
func (h *handle) nextBytes(op string, n int) ([]byte, error) {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if err := h.check(); err != nil {
		return nil, err
	}
	b, err := h.s.slice(op, n)
	if err != nil {
		return nil, err
	}
	h.s.cursor += n
	return b, nil
}

// Position returns the current offset as seen by this handle. While a jump
// is active, outer handles keep reporting the offset they had when the jump
// was opened.
func (h *handle) Position() int {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if h.jump != nil && h.jump.released {
		return h.jump.final
	}
	for j := h.s.lease; j != nil; j = j.parent {
		if j.parent == h.jump {
			return j.saved
		}
	}
	return h.s.cursor
}

// Len returns the length of the underlying buffer
func (h *handle) Len() int {
	return len(h.s.buffer)
}

// Remaining returns the number of bytes between the current position and the end of the buffer
func (h *handle) Remaining() int {
	return h.Len() - h.Position()
}

// Seek moves to an absolute offset. Seeking to Len() is allowed.
func (h *handle) Seek(target int) error {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if err := h.check(); err != nil {
		return err
	}
	return h.s.relocate("Seek", target)
}

// Skip advances n bytes without decoding them
func (h *handle) Skip(n int) error {
	_, err := h.nextBytes("Skip", n)
	return err
}

// ReadBytes returns the next n bytes and advances past them. The result is a
// view into the buffer with its capacity clipped, so appending to it never
// writes into the buffer.
func (h *handle) ReadBytes(n int) ([]byte, error) {
	return h.nextBytes("ReadBytes", n)
}

// Peek returns the next n bytes without advancing
func (h *handle) Peek(n int) ([]byte, error) {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if err := h.check(); err != nil {
		return nil, err
	}
	return h.s.slice("Peek", n)
}

// PushLocation saves the current position on this handle's location stack
func (h *handle) PushLocation() error {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if err := h.check(); err != nil {
		return err
	}
	h.locations = append(h.locations, h.s.cursor)
	return nil
}

// PopLocation removes the most recently saved position without moving to it
func (h *handle) PopLocation() (int, bool) {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if len(h.locations) == 0 {
		return 0, false
	}
	pos := h.locations[len(h.locations)-1]
	h.locations = h.locations[:len(h.locations)-1]
	return pos, true
}

// RestoreLocation pops the most recently saved position and moves back to it
func (h *handle) RestoreLocation() error {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if err := h.check(); err != nil {
		return err
	}
	if len(h.locations) == 0 {
		return ErrNoSavedLocation
	}
	h.s.cursor = h.locations[len(h.locations)-1]
	h.locations = h.locations[:len(h.locations)-1]
	return nil
}
