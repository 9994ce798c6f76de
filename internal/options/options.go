// Package options implements the generic functional option machinery shared
// by the public configuration surfaces (registry flag options, marshal
// options, encoder and decoder options).
//
// Public packages declare a type alias per configurable target, e.g.
//
//	type MarshalOption = options.Option[*marshalConfig]
//
// and build their WithXxx constructors on New (validating options) or
// NoError (options that cannot fail).
package options

// Option represents a functional option for configuring a target of type T.
type Option[T any] interface {
	apply(T) error
}

// funcOption adapts a plain function to the Option interface.
type funcOption[T any] struct {
	applyFunc func(T) error
}

func (f *funcOption[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) Option[T] {
	return &funcOption[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return &funcOption[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
