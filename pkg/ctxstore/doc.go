// Package ctxstore implements a concurrency-safe, heterogeneous property bag.
// Unrelated subsystems can exchange typed values through a shared Context
// without knowing about each other; every value is identified by its Go type
// plus an optional string name.
//
// Values are stored either borrowed (the store only records the pointer) or
// owned (the store runs a destructor thunk exactly once when the entry is
// overwritten, erased or the store gets reset). Destructors never run while
// the internal lock is held, so they may call back into the same Context.
//
// The usual entry points are the generic helpers:
//
//	store := ctxstore.New()
//	defer store.Close()
//
//	ctxstore.PutOwned(store, "db", conn, func(c *Conn) { c.Shutdown() })
//
//	conn, ok := ctxstore.From[Conn](store, "db")
//	if ok {
//	    conn.Query(...)
//	}
//
// A non-empty name binds at most one value at a time, regardless of its
// type. Storing a value under an already bound name vacates the previous
// entry first. Unnamed values are keyed purely by their type.
//
// Contexts can be chained via WithParent for read-only lookup fallback and
// observed through weak handles (see Weak), which can be tested for liveness
// without keeping the Context alive.
package ctxstore
