// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package openenum_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/mzabaluev/prost/openenum"
	"github.com/mzabaluev/prost/proto"
)

var _ proto.Field = (*openenum.Value[color])(nil)

func TestSize(t *testing.T) {
	tests := []struct {
		in   openenum.Value[color]
		want int
	}{
		{openenum.Known(red), 1},
		{openenum.Known(blue), 1},
		{openenum.FromRaw[color](127), 1},
		{openenum.FromRaw[color](128), 2},
		{openenum.FromRaw[color](999), 2},
		{openenum.FromRaw[color](math.MaxInt32), 5},
		{openenum.FromRaw[color](-1), 10},
		{openenum.FromRaw[color](math.MinInt32), 10},
	}
	for _, tt := range tests {
		if got := tt.in.Size(); got != tt.want {
			t.Errorf("%v.Size() = %v, want %v", tt.in, got, tt.want)
		}
		if got := len(tt.in.AppendWire(nil)); got != tt.want {
			t.Errorf("len(%v.AppendWire(nil)) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAppendWire(t *testing.T) {
	tests := []struct {
		in   openenum.Value[color]
		want []byte
	}{
		{openenum.Known(blue), []byte{0x02}},
		{openenum.FromRaw[color](999), []byte{0xe7, 0x07}},
		{openenum.FromRaw[color](-1), []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}
	for _, tt := range tests {
		prefix := []byte{0xaa}
		got := tt.in.AppendWire(prefix)
		if !bytes.Equal(got, append([]byte{0xaa}, tt.want...)) {
			t.Errorf("%v.AppendWire(%x) = %x, want aa%x", tt.in, prefix, got, tt.want)
		}
	}

	// Codes need not equal the Go values of E.
	if got, want := openenum.Known(high).AppendWire(nil), []byte{0x1e}; !bytes.Equal(got, want) {
		t.Errorf("Known(high).AppendWire(nil) = %x, want %x", got, want)
	}
}

func TestWireRoundTrip(t *testing.T) {
	for _, in := range []openenum.Value[color]{
		openenum.Known(red),
		openenum.Known(blue),
		openenum.FromRaw[color](999),
		openenum.FromRaw[color](-7),
		openenum.FromRaw[color](math.MinInt32),
	} {
		b := proto.Marshal(7, &in)
		var got openenum.Value[color]
		if err := proto.Unmarshal(b, 7, &got); err != nil {
			t.Errorf("Unmarshal(%x) error: %v", b, err)
			continue
		}
		if got != in {
			t.Errorf("round trip of %v: got %v", in, got)
		}
	}
}

func TestMergeField(t *testing.T) {
	var x openenum.Value[color]
	b := protowire.AppendVarint(nil, 2)
	n, err := x.MergeField(1, protowire.VarintType, append(b, 0xff))
	if err != nil {
		t.Fatalf("MergeField error: %v", err)
	}
	if n != 1 {
		t.Errorf("MergeField consumed %d bytes, want 1", n)
	}
	if want := openenum.Known(blue); x != want {
		t.Errorf("after MergeField = %v, want %v", x, want)
	}
}

func TestMergeFieldLastWins(t *testing.T) {
	tests := []struct {
		desc string
		vals []uint64
		want openenum.Value[color]
	}{
		{"known then unknown", []uint64{1, 999}, openenum.FromRaw[color](999)},
		{"unknown then known", []uint64{999, 1}, openenum.Known(green)},
		{"known then known", []uint64{2, 0}, openenum.Known(red)},
		{"three occurrences", []uint64{1, 2, 5}, openenum.FromRaw[color](5)},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			var b []byte
			for _, v := range tt.vals {
				b = protowire.AppendTag(b, 3, protowire.VarintType)
				b = protowire.AppendVarint(b, v)
			}
			x := openenum.Known(blue)
			if err := proto.Merge(b, 3, &x); err != nil {
				t.Fatalf("Merge error: %v", err)
			}
			if x != tt.want {
				t.Errorf("got %v, want %v", x, tt.want)
			}
		})
	}
}

func TestMergeFieldTruncates(t *testing.T) {
	// int32 fields keep the low 32 bits of a wider varint.
	var x openenum.Value[color]
	b := protowire.AppendVarint(nil, 1<<32|2)
	if _, err := x.MergeField(1, protowire.VarintType, b); err != nil {
		t.Fatalf("MergeField error: %v", err)
	}
	if want := openenum.Known(blue); x != want {
		t.Errorf("got %v, want %v", x, want)
	}
}

func TestMergeFieldErrors(t *testing.T) {
	tests := []struct {
		desc string
		typ  protowire.Type
		in   []byte
	}{
		{"wrong wire type", protowire.BytesType, []byte{0x01, 0x02}},
		{"fixed32 wire type", protowire.Fixed32Type, []byte{0x02, 0x00, 0x00, 0x00}},
		{"empty", protowire.VarintType, nil},
		{"truncated varint", protowire.VarintType, []byte{0x80}},
		{"overlong varint", protowire.VarintType, bytes.Repeat([]byte{0xff}, 11)},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			x := openenum.FromRaw[color](999)
			before := x
			_, err := x.MergeField(4, tt.typ, tt.in)
			if err == nil {
				t.Fatalf("MergeField succeeded, want error")
			}
			if x != before {
				t.Errorf("MergeField error changed value from %v to %v", before, x)
			}
			if !errors.Is(err, proto.Error) {
				t.Errorf("errors.Is(%v, proto.Error) = false, want true", err)
			}

			// The error is the one of the int32 field, passed through.
			var raw proto.Int32
			_, want := raw.MergeField(4, tt.typ, tt.in)
			if err.Error() != want.Error() {
				t.Errorf("MergeField error = %q, want %q", err, want)
			}
		})
	}
}
