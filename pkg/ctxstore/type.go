package ctxstore

import (
	"io"
	"reflect"
)

// Type is a process-stable identity token for a stored value type. It is
// comparable and usable as a map key. Two Types are equal exactly if they
// were derived from the same Go type; the displayed type name plays no part
// in the comparison.
type Type struct {
	rt reflect.Type
}

// AnyType is the wildcard Type. It is only meaningful for erasing by name
// (see Context.Set); it never identifies a stored value.
var AnyType = Type{}

// TypeOf derives the Type token for T without instantiating it. It also
// works for interface types.
func TypeOf[T any]() Type {
	return Type{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// IsAny reports whether t is the AnyType wildcard.
func (t Type) IsAny() bool {
	return t.rt == nil
}

// String returns a readable representation for logs and dumps. It must not
// be used for comparisons, since distinct types can share a display name.
func (t Type) String() string {
	if t.rt == nil {
		return "<any>"
	}
	return t.rt.String()
}

// TypeOps bundles a Type with the destructor thunk that the store runs when
// it destroys an owned value of that type.
type TypeOps struct {
	Type    Type
	Destroy func(value any)
}

// OpsOf builds the TypeOps for T. The destroy function may be nil; owned
// values without one only get Close called, if they implement io.Closer.
func OpsOf[T any](destroy func(*T)) TypeOps {
	ops := TypeOps{Type: TypeOf[T]()}

	if destroy != nil {
		ops.Destroy = func(value any) {
			typed, ok := value.(*T)
			if ok {
				destroy(typed)
			}
		}
	}

	return ops
}

func (ops TypeOps) destroy(value any) {
	if ops.Destroy != nil {
		ops.Destroy(value)
		return
	}

	if closer, ok := value.(io.Closer); ok {
		closer.Close()
	}
}
