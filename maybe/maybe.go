/*
Package maybe provides an optional-value type in the tradition of Elm's and
Haskell's Maybe. Container accessors of this module return a Maybe where an
element may legitimately be absent, e.g. the last element of an empty array.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe holds either a value of type T ("Just") or no value at all
// ("Nothing"). The zero value is Nothing.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps a value.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Value unwraps m, returning the zero value for T and ok=false for Nothing.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.ok
}

// IsNothing reports whether m holds no value.
func (m Maybe[T]) IsNothing() bool {
	return !m.ok
}

// WithDefault unwraps m, replacing Nothing with def.
func (m Maybe[T]) WithDefault(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

// Map applies f to the wrapped value, if any. Nothing stays Nothing.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.ok {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may itself fail. Nothing is passed
// through without calling f.
func AndThen[T, S any](f func(T) Maybe[S], m Maybe[T]) Maybe[S] {
	if v, ok := m.Value(); ok {
		return f(v)
	}
	return Nothing[S]()
}
