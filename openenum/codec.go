// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package openenum

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/mzabaluev/prost/proto"
)

// Enum fields are encoded exactly like int32 fields.

// WireType returns protowire.VarintType.
func (Value[E]) WireType() protowire.Type { return protowire.VarintType }

// Size returns the size of the wire number of x encoded as an int32 payload.
func (x Value[E]) Size() int {
	return proto.SizeInt32(x.Raw())
}

// AppendWire appends the wire number of x encoded as an int32 payload to b.
// The field tag is not included.
func (x Value[E]) AppendWire(b []byte) []byte {
	return proto.AppendInt32(b, x.Raw())
}

// MergeField decodes one occurrence of the field from the start of b and
// replaces x with the Value for the decoded number. Decoding errors are
// returned as is and leave x unchanged.
func (x *Value[E]) MergeField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	var raw proto.Int32
	n, err := raw.MergeField(num, typ, b)
	if err != nil {
		return 0, err
	}
	*x = FromRaw[E](int32(raw))
	return n, nil
}

// Reset sets x to Default.
func (x *Value[E]) Reset() {
	*x = FromRaw[E](0)
}
