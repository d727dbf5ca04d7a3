// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// enumdump is a tool for decoding enum fields in the wire format of
// protocol buffer messages.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	_ "google.golang.org/genproto/googleapis/rpc/code"
	_ "google.golang.org/protobuf/types/descriptorpb"

	"github.com/mzabaluev/prost/internal/errors"
	"github.com/mzabaluev/prost/openenum"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	var nums fieldNums
	enumName := flag.String("enum", "google.rpc.Code", "Full name of the enum type")
	flag.Var(&nums, "fields", "List of top-level enum fields")
	flag.Usage = func() {
		log.Printf("Usage: %s [OPTIONS]... [INPUTS]...\n\n%s\n", filepath.Base(os.Args[0]), strings.Join([]string{
			"Print the enum fields of an encoded protocol buffer message.",
			"Each occurrence of a listed field is decoded as a value of the enum type",
			"and printed by name, or as unknown(N) if the type declares no value",
			"with that number. Packed repeated fields are decoded element by element.",
			"Other fields are printed with their wire type and length.",
			"",
			"For example, \"-enum google.rpc.Code -fields 1,4\" represents:",
			"",
			"	message M {",
			"		google.rpc.Code f1 = 1;          // -fields 1",
			"		repeated google.rpc.Code f4 = 4; // -fields 4",
			"	}",
			"",
			"The enum type must be linked into the tool; google.rpc.Code and the",
			"enums of google/protobuf/descriptor.proto are available.",
			"",
			"If no inputs are specified, the wire data is read in from stdin, otherwise",
			"the contents of each specified input file is concatenated and",
			"treated as one large message.",
			"",
			"Options:",
			"  -enum name     " + flag.Lookup("enum").Usage,
			"  -fields list   " + flag.Lookup("fields").Usage,
		}, "\n"))
	}
	flag.Parse()
	if len(nums) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	et, err := protoregistry.GlobalTypes.FindEnumByName(protoreflect.FullName(*enumName))
	if err != nil {
		log.Fatalf("FindEnumByName(%q) error: %v", *enumName, err)
	}
	enumDesc = et.Descriptor()

	buf, err := readInputs(flag.Args())
	if err != nil {
		log.Fatalf("read error: %v", err)
	}
	if err := dump(os.Stdout, buf, nums); err != nil {
		log.Fatalf("fatal input: %v", err)
	}
}

// readInputs returns the concatenated contents of the named files,
// or the contents of stdin if there are none.
func readInputs(files []string) ([]byte, error) {
	if len(files) == 0 {
		return io.ReadAll(os.Stdin)
	}
	bufs := make([][]byte, len(files))
	var g errgroup.Group
	g.SetLimit(8)
	for i, f := range files {
		i, f := i, f
		g.Go(func() (err error) {
			bufs[i], err = os.ReadFile(f)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bytes.Join(bufs, nil), nil
}

// enumDesc is the enum type enumValue resolves numbers against.
// It is set once by main before any input is decoded and only read after.
var enumDesc protoreflect.EnumDescriptor

// enumValue is a value of the enum type selected at run time.
type enumValue protoreflect.EnumNumber

func (v enumValue) EnumCode() int32 { return int32(v) }

func (enumValue) FromEnumCode(n int32) (enumValue, bool) {
	return enumValue(n), enumDesc.Values().ByNumber(protoreflect.EnumNumber(n)) != nil
}

func (v enumValue) String() string {
	return string(enumDesc.Values().ByNumber(protoreflect.EnumNumber(v)).Name())
}

func formatEnum(x openenum.Value[enumValue]) string {
	if !x.IsKnown() {
		return fmt.Sprintf("unknown(%d)", x.Raw())
	}
	return x.String()
}

// dump prints the fields of the message in buf to w, decoding the fields in
// nums as values of the enum enumDesc. It reports an error if buf is
// malformed or if re-encoding the decoded enum values does not reproduce buf.
func dump(w io.Writer, buf []byte, nums fieldNums) error {
	var out []byte
	for b := buf; len(b) > 0; {
		off := len(buf) - len(b)
		num, typ, tagLen := protowire.ConsumeTag(b)
		if tagLen < 0 {
			return errors.Wrap(protowire.ParseError(tagLen), "offset %d", off)
		}
		out = append(out, b[:tagLen]...)
		b = b[tagLen:]

		if !nums[num] {
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return errors.Wrap(protowire.ParseError(n), "offset %d: field %v", off, num)
			}
			fmt.Fprintf(w, "%v: %v (%d bytes)\n", num, wireTypeName(typ), n)
			out = append(out, b[:n]...)
			b = b[n:]
			continue
		}

		if typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return errors.Wrap(protowire.ParseError(n), "offset %d: field %v", off, num)
			}
			var names []string
			var packed []byte
			for len(v) > 0 {
				var x openenum.Value[enumValue]
				m, err := x.MergeField(num, protowire.VarintType, v)
				if err != nil {
					return errors.Wrap(err, "offset %d", off)
				}
				names = append(names, formatEnum(x))
				packed = x.AppendWire(packed)
				v = v[m:]
			}
			fmt.Fprintf(w, "%v: [%v]\n", num, strings.Join(names, ", "))
			out = protowire.AppendBytes(out, packed)
			b = b[n:]
			continue
		}

		var x openenum.Value[enumValue]
		n, err := x.MergeField(num, typ, b)
		if err != nil {
			return errors.Wrap(err, "offset %d", off)
		}
		fmt.Fprintf(w, "%v: %v\n", num, formatEnum(x))
		out = x.AppendWire(out)
		b = b[n:]
	}

	if !bytes.Equal(buf, out) {
		return errors.New("roundtrip mismatch:\n\tgot:  %d %x\n\twant: %d %x", len(out), out, len(buf), buf)
	}
	return nil
}

func wireTypeName(typ protowire.Type) string {
	switch typ {
	case protowire.VarintType:
		return "varint"
	case protowire.Fixed32Type:
		return "fixed32"
	case protowire.Fixed64Type:
		return "fixed64"
	case protowire.BytesType:
		return "bytes"
	case protowire.StartGroupType:
		return "group"
	default:
		return "wire type " + strconv.Itoa(int(typ))
	}
}

// fieldNums is a set of field numbers parsed from a comma-separated list.
type fieldNums map[protowire.Number]bool

// String and Set implement flag.Value.
func (fs fieldNums) String() string {
	var ns []int
	for n := range fs {
		ns = append(ns, int(n))
	}
	sort.Ints(ns)
	ss := make([]string, len(ns))
	for i, n := range ns {
		ss[i] = strconv.Itoa(n)
	}
	return strings.Join(ss, ",")
}

func (fs *fieldNums) Set(s string) error {
	if *fs == nil {
		*fs = make(fieldNums)
	}
	for _, s := range strings.Split(s, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 32)
		num := protowire.Number(n)
		if err != nil || !num.IsValid() {
			return errors.New("invalid field: %v", s)
		}
		(*fs)[num] = true
	}
	return nil
}
