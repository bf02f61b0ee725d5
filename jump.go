package bincursor

import "log/slog"

// Jump temporarily relocates a cursor. While a Jump is active it holds the
// cursor's lease: reads must go through the Jump, and every other handle of
// the same cursor fails with ErrCursorBusy. Release moves the cursor back to
// where it was when the Jump was opened.
//
// The usual pattern is
//
//	j, err := c.JumpTo(offset)
//	if err != nil {
//		return err
//	}
//	defer j.Release()
type Jump struct {
	handle
	parent   *Jump
	saved    int
	depth    int
	released bool
	final    int
}

// JumpTo opens a Jump at an absolute offset. Called on a Jump, it opens a
// nested Jump that leases the outer one. If target is out of bounds no Jump
// is opened and the position is unchanged.
func (h *handle) JumpTo(target int) (*Jump, error) {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if err := h.check(); err != nil {
		if err == ErrCursorBusy {
			h.s.logger.Debug(
				"rejected jump on leased cursor",
				slog.Int("target", target),
				slog.Int("leaseDepth", h.s.lease.depth),
			)
		}
		return nil, err
	}
	depth := 1
	if h.jump != nil {
		depth = h.jump.depth + 1
	}
	if h.s.maxDepth > 0 && depth > h.s.maxDepth {
		return nil, ErrJumpDepthExceeded
	}
	saved := h.s.cursor
	if err := h.s.relocate("JumpTo", target); err != nil {
		return nil, err
	}
	j := &Jump{
		handle: handle{s: h.s},
		parent: h.jump,
		saved:  saved,
		depth:  depth,
	}
	j.handle.jump = j
	h.s.lease = j
	return j, nil
}

// Begin opens a Jump on r at an absolute offset
func Begin(r Reader, target int) (*Jump, error) {
	return r.JumpTo(target)
}

// At runs fn against a Jump opened on r at target. The Jump is released on
// every exit path, including a panic in fn.
func At(r Reader, target int, fn func(Reader) error) error {
	j, err := r.JumpTo(target)
	if err != nil {
		return err
	}
	defer j.Release()
	return fn(j)
}

// SavedPosition returns the position the cursor will return to on Release
func (j *Jump) SavedPosition() int {
	return j.saved
}

// Depth returns the nesting level of the Jump, starting at 1
func (j *Jump) Depth() int {
	return j.depth
}

// Released reports whether Release has been called on the Jump or on an
// outer Jump it was nested in
func (j *Jump) Released() bool {
	j.s.mu.Lock()
	defer j.s.mu.Unlock()
	return j.released
}

// Release restores the position saved when the Jump was opened and hands the
// lease back to the handle the Jump was opened from. Any Jumps still nested
// inside are released too. Calling Release more than once is a no-op.
func (j *Jump) Release() {
	j.s.mu.Lock()
	defer j.s.mu.Unlock()
	if j.released {
		return
	}
	pos := j.s.cursor
	for k := j.s.lease; k != nil; k = k.parent {
		k.released = true
		k.final = pos
		if k == j {
			break
		}
		j.s.logger.Debug(
			"released nested jump with its outer jump",
			slog.Int("depth", k.depth),
			slog.Int("outerDepth", j.depth),
		)
	}
	j.s.cursor = j.saved
	j.s.lease = j.parent
}
