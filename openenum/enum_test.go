// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package openenum_test

// color is a test enum whose zero value is numbered 0.
type color int32

const (
	red   color = 0
	green color = 1
	blue  color = 2
)

var colors = []color{red, green, blue}

func (c color) EnumCode() int32 { return int32(c) }

func (color) FromEnumCode(n int32) (color, bool) {
	switch c := color(n); c {
	case red, green, blue:
		return c, true
	}
	return 0, false
}

func (c color) String() string {
	switch c {
	case red:
		return "RED"
	case green:
		return "GREEN"
	case blue:
		return "BLUE"
	}
	return "color(?)"
}

// level is a test enum with no value numbered 0 and no String method.
// Its codes are stored offset from its Go values.
type level uint8

const (
	low    level = 1
	medium level = 2
	high   level = 3
)

var levels = []level{low, medium, high}

func (l level) EnumCode() int32 { return int32(l) * 10 }

func (level) FromEnumCode(n int32) (level, bool) {
	switch n {
	case 10, 20, 30:
		return level(n / 10), true
	}
	return 0, false
}
