// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/mzabaluev/prost/internal/errors"
)

// The int32 kind is encoded as a varint of the value sign-extended to
// 64 bits, so negative values always occupy ten bytes.

// SizeInt32 returns the encoded size of an int32 field payload.
func SizeInt32(v int32) int {
	return protowire.SizeVarint(uint64(v))
}

// AppendInt32 appends the encoding of an int32 field payload to b.
func AppendInt32(b []byte, v int32) []byte {
	return protowire.AppendVarint(b, uint64(v))
}

// ConsumeInt32 parses an int32 field payload with wire type typ from the
// start of b and returns the value and the number of bytes consumed.
// The decoded varint is truncated to 32 bits.
func ConsumeInt32(num protowire.Number, typ protowire.Type, b []byte) (v int32, n int, err error) {
	if typ != protowire.VarintType {
		return 0, 0, errWireType(num, typ, protowire.VarintType)
	}
	x, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, errors.Wrap(protowire.ParseError(n), "field %v", num)
	}
	return int32(x), n, nil
}

func errWireType(num protowire.Number, got, want protowire.Type) error {
	return errors.New("field %v: invalid wire type %v (want %v)", num, got, want)
}

// Int32 is an int32 scalar field.
type Int32 int32

var _ Field = (*Int32)(nil)

func (*Int32) WireType() protowire.Type { return protowire.VarintType }

func (x *Int32) Size() int { return SizeInt32(int32(*x)) }

func (x *Int32) AppendWire(b []byte) []byte { return AppendInt32(b, int32(*x)) }

// MergeField replaces x with the decoded value. On error x is unchanged.
func (x *Int32) MergeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	v, n, err := ConsumeInt32(num, typ, b)
	if err != nil {
		return 0, err
	}
	*x = Int32(v)
	return n, nil
}

func (x *Int32) Reset() { *x = 0 }
