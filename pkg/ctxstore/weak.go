package ctxstore

import "sync/atomic"

// controlBlock is the shared liveness record behind weak handles. Every
// handle issued for a Context points at the same block; Close clears it for
// all of them at once.
type controlBlock struct {
	ptr atomic.Pointer[Context]
}

func newControlBlock(c *Context) *controlBlock {
	cb := new(controlBlock)
	cb.ptr.Store(c)
	return cb
}

func (cb *controlBlock) invalidate() {
	cb.ptr.Store(nil)
}

// Handle is a weak reference to a Context. It does not keep the Context
// alive, can be copied freely and may be tested for liveness at any time.
// The zero Handle is dead.
type Handle struct {
	cb *controlBlock
}

// Weak returns a weak handle bound to this Context instance. Handles turn
// dead exactly when Close is called on the Context; moving entries in or out
// with MoveFrom does not affect them.
func (c *Context) Weak() Handle {
	return Handle{cb: c.weak}
}

// Get returns the Context behind the handle, if it is still alive.
func (h Handle) Get() (*Context, bool) {
	if h.cb == nil {
		return nil, false
	}

	c := h.cb.ptr.Load()
	return c, c != nil
}

// Alive reports whether the Context behind the handle was not closed yet.
func (h Handle) Alive() bool {
	_, ok := h.Get()
	return ok
}
