// Package options provides a small generic functional-option helper for
// configurable constructors.
package options

// Option configures a value of type T and may fail with an error.
// A plain function literal is a valid Option, so constructors can accept
// `opts ...Option[*Thing]` and callers can pass WithXxx helpers.
type Option[T any] func(T) error

// NoError adapts a configuration function that cannot fail into an Option.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply runs opts against target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}
