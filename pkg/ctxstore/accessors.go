package ctxstore

// Put stores v as a borrowed value under (name, T). The store records the
// pointer but never touches the pointee's lifetime. An empty name keys the
// value purely by its type.
func Put[T any](c *Context, name string, v *T) {
	c.Set(name, OpsOf[T](nil), v, false)
}

// PutOwned stores v and transfers its ownership to the store. The destroy
// function runs exactly once when the entry is overwritten, erased or the
// store gets reset. It may be nil; values implementing io.Closer then get
// Close called instead.
func PutOwned[T any](c *Context, name string, v *T, destroy func(*T)) {
	c.Set(name, OpsOf[T](destroy), v, true)
}

// From returns the value stored under (name, T), consulting the parent
// chain like Context.Get.
func From[T any](c *Context, name string) (*T, bool) {
	raw, ok := c.Get(name, TypeOf[T]())
	if !ok {
		return nil, false
	}

	typed, ok := raw.(*T)
	return typed, ok
}

// Take removes an owned entry and hands its value to the caller, which
// becomes responsible for the teardown. Borrowed and absent entries are left
// alone. See Context.Release.
func Take[T any](c *Context, name string) (*T, bool) {
	raw, ok := c.Release(name, TypeOf[T]())
	if !ok {
		return nil, false
	}

	typed, ok := raw.(*T)
	return typed, ok
}

// Erase removes the entry stored under (name, T). Owned values are
// destroyed. Erasing an absent entry is a no-op.
func Erase[T any](c *Context, name string) {
	c.Set(name, TypeOps{Type: TypeOf[T]()}, nil, false)
}

// EraseNamed removes whatever is bound to the given name, regardless of its
// type. It is a no-op for empty and unbound names.
func EraseNamed(c *Context, name string) {
	c.Set(name, TypeOps{Type: AnyType}, nil, false)
}

// Has reports whether a value is stored under (name, T).
func Has[T any](c *Context, name string) bool {
	return c.Exists(name, TypeOf[T]())
}
