// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package openenum

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/mzabaluev/prost/internal/errors"
)

// String returns the name of a known value if E implements fmt.Stringer
// and the value is one E declares, and the decimal wire number otherwise.
func (x Value[E]) String() string {
	if s, ok := x.stringer(); ok {
		return s.String()
	}
	return strconv.FormatInt(int64(x.Raw()), 10)
}

// stringer returns the value of x as a fmt.Stringer if it is a known value
// that maps back from its own wire number, so its name can be parsed again.
func (x Value[E]) stringer() (fmt.Stringer, bool) {
	if x.unknown || !FromRaw[E](x.Raw()).IsKnown() {
		return nil, false
	}
	s, ok := any(x.v).(fmt.Stringer)
	return s, ok
}

// MarshalJSON encodes a known value with a name as a JSON string and any
// other value, including a Known value E does not declare, as a JSON number,
// following the protobuf JSON mapping.
func (x Value[E]) MarshalJSON() ([]byte, error) {
	if s, ok := x.stringer(); ok {
		return json.Marshal(s.String())
	}
	return json.Marshal(x.Raw())
}

// UnmarshalJSON replaces x with the value encoded as a JSON number or name.
// Names are accepted only if E has a method FromEnumName(string) (E, bool).
// A JSON null leaves x unchanged.
func (x *Value[E]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		return nil
	case len(b) > 0 && b[0] == '"':
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return errors.Wrap(err, "invalid enum name %s", b)
		}
		named, ok := any(*new(E)).(interface{ FromEnumName(string) (E, bool) })
		if !ok {
			return errors.New("enum %T does not support names: %q", *new(E), name)
		}
		v, ok := named.FromEnumName(name)
		if !ok {
			return errors.New("invalid value for enum %T: %q", *new(E), name)
		}
		*x = Known(v)
		return nil
	default:
		var raw int32
		if err := json.Unmarshal(b, &raw); err != nil {
			return errors.Wrap(err, "invalid enum number %s", b)
		}
		*x = FromRaw[E](raw)
		return nil
	}
}
