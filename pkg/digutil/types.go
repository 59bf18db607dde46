package digutil

import "go.uber.org/dig"

// Optional is a parameter object for constructors that can live without a
// dependency. The Value stays nil when nothing was provided.
type Optional[T any] struct {
	dig.In
	Value *T `optional:"true"`
}

// ProvideValue registers an already constructed value on the container.
func ProvideValue[T any](c *dig.Container, v T) error {
	return c.Provide(func() T {
		return v
	})
}
