// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package openenum provides an open enumeration value for protocol buffer
// enum fields.
//
// A receiver decoding an enum field may see a number its copy of the schema
// does not declare, for example one added by a newer version of the sender.
// Value keeps such numbers as Unknown values instead of rejecting them,
// so decoding and re-encoding a message preserves them exactly.
//
// Value is generic over any type implementing Enum. Enum types generated
// by protoc-gen-go can be used through Generated.
package openenum

import (
	"fmt"
)

// Enum is the constraint on symbolic enum types held by a Value.
//
// EnumCode must be total. FromEnumCode is called on the zero value of E and
// reports false for codes that name no value. For every value v,
// FromEnumCode(v.EnumCode()) must return v.
type Enum[E any] interface {
	comparable

	// EnumCode returns the canonical wire number of the value.
	EnumCode() int32

	// FromEnumCode returns the value with the given wire number.
	FromEnumCode(code int32) (E, bool)
}

// Value is either a known value of E or an unknown wire number.
//
// The zero Value holds the zero value of E as a known value. That equals
// Default only if the zero value of E has wire number 0, as it does for
// generated enums. For other types the zero Value does not survive a
// Raw/FromRaw round trip; initialize such fields with Default instead.
// Values are comparable with ==.
type Value[E Enum[E]] struct {
	v       E
	raw     int32
	unknown bool
}

// Known returns a Value holding the known value v.
func Known[E Enum[E]](v E) Value[E] {
	return Value[E]{v: v}
}

// FromRaw returns the Value for the wire number raw: known if E has a value
// with that number, unknown otherwise.
func FromRaw[E Enum[E]](raw int32) Value[E] {
	var zero E
	if v, ok := zero.FromEnumCode(raw); ok {
		return Value[E]{v: v}
	}
	return Value[E]{raw: raw, unknown: true}
}

// Default returns the Value for wire number 0, the default of an enum field.
// It is unknown if E has no value numbered 0.
func Default[E Enum[E]]() Value[E] {
	return FromRaw[E](0)
}

// IsKnown reports whether x holds a known value.
func (x Value[E]) IsKnown() bool {
	return !x.unknown
}

// Raw returns the wire number of x.
func (x Value[E]) Raw() int32 {
	if x.unknown {
		return x.raw
	}
	return x.v.EnumCode()
}

// Must returns the known value of x.
// It panics if x is unknown.
func (x Value[E]) Must() E {
	if x.unknown {
		panic(fmt.Sprintf("openenum: unknown enum value %d", x.raw))
	}
	return x.v
}

// Or returns the known value of x, or def if x is unknown.
func (x Value[E]) Or(def E) E {
	if x.unknown {
		return def
	}
	return x.v
}

// OrElse returns the known value of x, or the result of calling fn with
// the wire number if x is unknown.
func (x Value[E]) OrElse(fn func(raw int32) E) E {
	if x.unknown {
		return fn(x.raw)
	}
	return x.v
}

// OrDefault returns the known value of x, or the zero value of E if x is unknown.
func (x Value[E]) OrDefault() E {
	if x.unknown {
		var zero E
		return zero
	}
	return x.v
}

// Get returns the known value of x and true,
// or the zero value of E and false if x is unknown.
func (x Value[E]) Get() (E, bool) {
	if x.unknown {
		var zero E
		return zero, false
	}
	return x.v, true
}

// KnownOr returns the known value of x, or err if x is unknown.
func (x Value[E]) KnownOr(err error) (E, error) {
	if x.unknown {
		var zero E
		return zero, err
	}
	return x.v, nil
}

// KnownOrElse returns the known value of x, or the error returned by fn
// for the wire number if x is unknown.
func (x Value[E]) KnownOrElse(fn func(raw int32) error) (E, error) {
	if x.unknown {
		var zero E
		return zero, fn(x.raw)
	}
	return x.v, nil
}

// Equal reports whether x and y hold the same variant and value.
func (x Value[E]) Equal(y Value[E]) bool {
	return x == y
}
