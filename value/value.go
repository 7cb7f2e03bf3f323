/*
Package value provides a closed tagged-variant type for heterogeneous array
elements: a single container may hold integers, floats, strings, booleans
and an explicit "no value" marker side by side.

The None value is a first-class member visible to clients: storing None in
an array is different from an unused backing-store slot, which never escapes
through a container's public API. None participates in membership tests and
equality like any other value.

Use Equal as the equality option of a container holding V:

	arr, err := array.New[value.V](array.Equality[value.V](value.Equal))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package value

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Kind enumerates the closed set of kinds a V can hold.
type Kind int

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "string"
	}
	return "unknown"
}

// ErrTypeMismatch is returned by the checked accessors when a value holds a
// different kind than the one requested.
var ErrTypeMismatch = errors.New("value kind mismatch")

// V is a tagged variant over the kinds listed above. The zero value is None.
type V struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// None returns the explicit "no value" marker.
func None() V {
	return V{}
}

// Bool wraps a boolean.
func Bool(b bool) V {
	return V{kind: KindBool, b: b}
}

// Int wraps an integer.
func Int(n int64) V {
	return V{kind: KindInt, i: n}
}

// Float wraps a float. NaN is a legal member value; see Equal.
func Float(x float64) V {
	return V{kind: KindFloat, f: x}
}

// Str wraps a string.
func Str(s string) V {
	return V{kind: KindStr, s: s}
}

// Kind returns the kind tag of v.
func (v V) Kind() Kind {
	return v.kind
}

// IsNone reports whether v is the explicit "no value" marker.
func (v V) IsNone() bool {
	return v.kind == KindNone
}

// AsBool unwraps a boolean, or returns ErrTypeMismatch.
func (v V) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, fmt.Errorf("%w: have %s, want bool", ErrTypeMismatch, v.kind)
	}
	return v.b, nil
}

// AsInt unwraps an integer, or returns ErrTypeMismatch.
func (v V) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("%w: have %s, want int", ErrTypeMismatch, v.kind)
	}
	return v.i, nil
}

// AsFloat unwraps a float, or returns ErrTypeMismatch.
func (v V) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, fmt.Errorf("%w: have %s, want float", ErrTypeMismatch, v.kind)
	}
	return v.f, nil
}

// AsStr unwraps a string, or returns ErrTypeMismatch.
func (v V) AsStr() (string, error) {
	if v.kind != KindStr {
		return "", fmt.Errorf("%w: have %s, want string", ErrTypeMismatch, v.kind)
	}
	return v.s, nil
}

func (v V) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindStr:
		return strconv.Quote(v.s)
	}
	return "none"
}

// Equal compares two values. Values of different kinds are never equal:
// Int(0) and Float(0) differ, as do None and Bool(false). Float NaN values
// are treated as equal to each other, so a NaN stored in a container can be
// found and removed again.
func Equal(a, b V) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNone:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindFloat:
		if math.IsNaN(a.f) && math.IsNaN(b.f) {
			return true
		}
		return a.f == b.f
	case KindStr:
		return a.s == b.s
	}
	return false
}
