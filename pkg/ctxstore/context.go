package ctxstore

import (
	"sort"
	"sync"
	"sync/atomic"
)

// seq hands out a total order over all Context instances. MoveFrom locks two
// Contexts at once and uses this order to stay deadlock-free against a
// concurrent move in the opposite direction.
var seq atomic.Uint64

type key struct {
	name string
	typ  Type
}

// entry is immutable after insertion. Readers may therefore access its
// fields after dropping the lock, as long as they picked it up under one.
type entry struct {
	ops   TypeOps
	value any
	owned bool
	name  string
}

// Context is a concurrency-safe mapping from (optional name, value type) to
// a single value. See the package documentation for the full semantics. The
// zero value is not usable; create instances with New.
type Context struct {
	id uint64

	mu      sync.RWMutex
	entries map[key]*entry
	names   map[string]Type
	parent  *Context

	weak *controlBlock
	inst *instrumentation
}

// Option configures a Context on creation.
type Option func(*Context)

// WithParent chains the Context to a parent for read-only lookup fallback.
// Get and Exists consult the parent chain when a key is absent locally; all
// mutating operations act on the local Context only. The Context does not
// manage the parent's lifetime.
func WithParent(parent *Context) Option {
	return func(c *Context) {
		c.parent = parent
	}
}

// New creates an empty Context.
func New(opts ...Option) *Context {
	c := &Context{
		id:      seq.Add(1),
		entries: map[key]*entry{},
		names:   map[string]Type{},
	}
	c.weak = newControlBlock(c)

	for _, o := range opts {
		o(c)
	}

	return c
}

// Set stores, replaces or erases a value.
//
// With a non-nil value it inserts the value under (name, ops.Type). A
// non-empty name binds at most one value at a time: if the name is already
// bound, the previous entry is vacated first, regardless of its type.
// Re-setting the identical value under the same key is a no-op. Replaced
// owned values are destroyed exactly once.
//
// With a nil value it erases: an exact (name, ops.Type) match is removed;
// with a non-empty name and the AnyType wildcard, whatever the name is bound
// to is removed instead. Anything else is a no-op.
//
// With owned set, ownership of the value transfers to the store, which runs
// the destructor thunk exactly once when the entry is removed.
//
// Stored values must be pointer-shaped (*T, chan, func or another comparable
// reference); the idempotency check compares them with ==.
//
// Destructors triggered by Set run strictly after the internal lock is
// released, so they may call back into the same Context.
func (c *Context) Set(name string, ops TypeOps, value any, owned bool) {
	var (
		doomed  []*entry
		mutated bool
	)

	c.mu.Lock()
	if value == nil {
		doomed = c.eraseLocked(name, ops.Type)
		mutated = len(doomed) > 0
	} else {
		doomed, mutated = c.insertLocked(name, ops, value, owned)
	}
	count := len(c.entries)
	c.mu.Unlock()

	if mutated {
		if value == nil {
			c.inst.countErase()
		} else {
			c.inst.countSet()
		}
		c.inst.trackEntries(count)
	}

	c.destroyAll(doomed)
}

// eraseLocked detaches the entry addressed by (name, typ) and returns it for
// deferred destruction. An AnyType wildcard with a non-empty name redirects
// to whatever type the name is currently bound to.
func (c *Context) eraseLocked(name string, typ Type) []*entry {
	if typ.IsAny() {
		if name == "" {
			return nil
		}

		bound, ok := c.names[name]
		if !ok {
			return nil
		}
		typ = bound
	}

	e := c.detachLocked(key{name: name, typ: typ})
	if e == nil {
		return nil
	}

	return []*entry{e}
}

func (c *Context) insertLocked(name string, ops TypeOps, value any, owned bool) ([]*entry, bool) {
	var doomed []*entry

	if name != "" {
		// A bound name gets vacated first, no matter which type it is
		// currently bound to.
		if bound, ok := c.names[name]; ok {
			old := c.entries[key{name: name, typ: bound}]
			if bound == ops.Type && old != nil && old.value == value {
				return nil, false
			}

			doomed = append(doomed, c.detachLocked(key{name: name, typ: bound}))
		}
	} else {
		k := key{typ: ops.Type}
		if old, ok := c.entries[k]; ok {
			if old.value == value {
				return nil, false
			}

			doomed = append(doomed, c.detachLocked(k))
		}
	}

	c.entries[key{name: name, typ: ops.Type}] = &entry{
		ops:   ops,
		value: value,
		owned: owned,
		name:  name,
	}
	if name != "" {
		c.names[name] = ops.Type
	}

	return doomed, true
}

// detachLocked removes an entry from both maps without destroying its value.
// Detach and destroy are separate phases, so destructors never observe the
// lock held.
func (c *Context) detachLocked(k key) *entry {
	e, ok := c.entries[k]
	if !ok {
		return nil
	}

	delete(c.entries, k)
	if e.name != "" {
		delete(c.names, e.name)
	}

	return e
}

// destroyAll runs the destructor thunks for detached owned entries. Must be
// called without holding the lock.
func (c *Context) destroyAll(doomed []*entry) {
	for _, e := range doomed {
		if e == nil || !e.owned {
			continue
		}

		e.ops.destroy(e.value)
		c.inst.countDestroy()
	}
}

// Get returns the value stored under (name, typ). If the key is absent
// locally and a parent is configured, the parent chain is consulted. The
// returned value is shared; the store does not synchronize access to it.
func (c *Context) Get(name string, typ Type) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key{name: name, typ: typ}]
	var value any
	if ok {
		value = e.value
	}
	parent := c.parent
	c.mu.RUnlock()

	if ok {
		return value, true
	}
	if parent != nil {
		return parent.Get(name, typ)
	}

	return nil, false
}

// Exists reports whether a value is stored under (name, typ), locally or in
// the parent chain.
func (c *Context) Exists(name string, typ Type) bool {
	_, ok := c.Get(name, typ)
	return ok
}

// Release transfers ownership of an owned entry to the caller. The entry is
// removed from the store without running its destructor and its value is
// returned; the caller becomes solely responsible for the teardown. Borrowed
// and absent entries are left untouched and reported as not found.
func (c *Context) Release(name string, typ Type) (any, bool) {
	c.mu.Lock()
	k := key{name: name, typ: typ}

	e, ok := c.entries[k]
	if !ok || !e.owned {
		c.mu.Unlock()
		return nil, false
	}

	c.detachLocked(k)
	count := len(c.entries)
	c.mu.Unlock()

	c.inst.countRelease()
	c.inst.trackEntries(count)

	return e.value, true
}

// Reset atomically empties the store and destroys every owned value. The
// entry maps are detached under the lock and the destructors run afterwards,
// so a destructor may call back into the (now empty) Context.
func (c *Context) Reset() {
	c.mu.Lock()
	detached := c.entries
	c.entries = map[key]*entry{}
	c.names = map[string]Type{}
	c.mu.Unlock()

	c.inst.trackEntries(0)

	for _, e := range detached {
		if !e.owned {
			continue
		}

		e.ops.destroy(e.value)
		c.inst.countDestroy()
	}
}

// Close resets the store and invalidates all weak handles issued for it. It
// implements io.Closer and always returns nil. Using the Context after Close
// is allowed but weak handles stay dead.
func (c *Context) Close() error {
	c.weak.invalidate()
	c.Reset()
	return nil
}

// MoveFrom transfers all entries, the name index and the parent link from
// src into c. No destructor runs for the transferred entries, since only
// ownership moves. Entries previously held by c are destroyed the same way
// an overwrite would destroy them. src stays a valid, empty Context without
// a parent; weak handles on either side are unaffected.
func (c *Context) MoveFrom(src *Context) {
	if src == nil || src == c {
		return
	}

	// Both locks are needed at once. Taking them in creation order keeps
	// two concurrent moves in opposite directions from deadlocking.
	first, second := c, src
	if src.id < c.id {
		first, second = src, c
	}

	first.mu.Lock()
	second.mu.Lock()

	doomed := c.entries
	c.entries = src.entries
	c.names = src.names
	c.parent = src.parent

	src.entries = map[key]*entry{}
	src.names = map[string]Type{}
	src.parent = nil

	count := len(c.entries)

	second.mu.Unlock()
	first.mu.Unlock()

	c.inst.trackEntries(count)
	src.inst.trackEntries(0)

	for _, e := range doomed {
		if !e.owned {
			continue
		}

		e.ops.destroy(e.value)
		c.inst.countDestroy()
	}
}

// Len returns the number of local entries. Parents are not counted.
func (c *Context) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Parent returns the parent Context, or nil.
func (c *Context) Parent() *Context {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.parent
}

// EntryInfo describes a live entry for diagnostics. The stored values are
// deliberately left out.
type EntryInfo struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Owned bool   `json:"owned" yaml:"owned"`
}

// Entries returns a sorted snapshot of all local entries. It is meant for
// logging and tests, not for typed lookups.
func (c *Context) Entries() []EntryInfo {
	c.mu.RLock()
	infos := make([]EntryInfo, 0, len(c.entries))
	for _, e := range c.entries {
		infos = append(infos, EntryInfo{
			Name:  e.name,
			Type:  e.ops.Type.String(),
			Owned: e.owned,
		})
	}
	c.mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Name != infos[j].Name {
			return infos[i].Name < infos[j].Name
		}
		return infos[i].Type < infos[j].Type
	})

	return infos
}
