// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proto frames single typed fields in the protocol buffer wire format.
//
// A Field knows how to size, append, and merge its own payload. The
// functions in this package add the field tag around that payload and walk
// the fields of an encoded message, dispatching every occurrence of one
// field number to the Field.
package proto

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/mzabaluev/prost/internal/errors"
)

// Error matches every error returned while decoding a field,
// as reported by errors.Is.
var Error = errors.Error

// Field is the serialization contract of a single message field value.
//
// The payload written by AppendWire excludes the field tag; Size reports
// exactly the number of bytes AppendWire appends.
type Field interface {
	// WireType reports the wire type the payload is framed with.
	WireType() protowire.Type

	// Size returns the length of the payload in bytes.
	Size() int

	// AppendWire appends the payload to b.
	AppendWire(b []byte) []byte

	// MergeField decodes one occurrence of the field with number num and
	// wire type typ from the start of b and merges it into the value.
	// It returns the number of bytes consumed.
	MergeField(num protowire.Number, typ protowire.Type, b []byte) (n int, err error)

	// Reset restores the value to its default.
	Reset()
}

// Size returns the size of f encoded as field num, including the tag.
func Size(num protowire.Number, f Field) int {
	return protowire.SizeTag(num) + f.Size()
}

// Append appends f encoded as field num to b.
func Append(b []byte, num protowire.Number, f Field) []byte {
	b = protowire.AppendTag(b, num, f.WireType())
	return f.AppendWire(b)
}

// Marshal returns the wire-format encoding of a message holding f as field num.
func Marshal(num protowire.Number, f Field) []byte {
	return Append(make([]byte, 0, Size(num, f)), num, f)
}

// Unmarshal resets f and then merges every occurrence of field num in the
// wire-format message b into it.
func Unmarshal(b []byte, num protowire.Number, f Field) error {
	f.Reset()
	return Merge(b, num, f)
}

// Merge merges every occurrence of field num in the wire-format message b
// into f, in order. Other fields are skipped.
//
// Scalar fields replace their value on each occurrence, so the last one
// seen wins.
func Merge(b []byte, num protowire.Number, f Field) error {
	for len(b) > 0 {
		// Parse the tag (field number and wire type).
		n, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return errors.Wrap(protowire.ParseError(tagLen), "invalid field tag")
		}
		b = b[tagLen:]

		var valLen int
		if n == num {
			var err error
			valLen, err = f.MergeField(n, typ, b)
			if err != nil {
				return err
			}
		} else {
			valLen = protowire.ConsumeFieldValue(n, typ, b)
			if valLen < 0 {
				return errors.Wrap(protowire.ParseError(valLen), "field %v", n)
			}
		}
		b = b[valLen:]
	}
	return nil
}
