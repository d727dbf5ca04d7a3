// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package openenum

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// GeneratedEnum is satisfied by the enum types protoc-gen-go generates.
type GeneratedEnum interface {
	~int32
	protoreflect.Enum
	fmt.Stringer
}

// Generated adapts a generated enum type to Enum.
// Wire numbers are resolved against the enum's descriptor.
type Generated[E GeneratedEnum] struct {
	Enum E
}

// Of returns a Value holding the known generated enum value e.
func Of[E GeneratedEnum](e E) Value[Generated[E]] {
	return Known(Generated[E]{e})
}

// FromNumber returns the Value of a generated enum type for the wire number n.
func FromNumber[E GeneratedEnum](n protoreflect.EnumNumber) Value[Generated[E]] {
	return FromRaw[Generated[E]](int32(n))
}

func (g Generated[E]) EnumCode() int32 { return int32(g.Enum) }

func (Generated[E]) FromEnumCode(code int32) (Generated[E], bool) {
	var e E
	if e.Descriptor().Values().ByNumber(protoreflect.EnumNumber(code)) == nil {
		return Generated[E]{}, false
	}
	return Generated[E]{E(code)}, true
}

// FromEnumName returns the value with the given name in the .proto file.
func (Generated[E]) FromEnumName(name string) (Generated[E], bool) {
	var e E
	ev := e.Descriptor().Values().ByName(protoreflect.Name(name))
	if ev == nil {
		return Generated[E]{}, false
	}
	return Generated[E]{E(ev.Number())}, true
}

func (g Generated[E]) String() string { return g.Enum.String() }
