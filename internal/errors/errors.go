// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors implements functions to manipulate errors.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error is the sentinel matched by every error created by this package.
var Error = errors.New("protobuf error")

// New formats a string according to the format specifier and arguments and
// returns an error that has a "proto" prefix.
func New(f string, x ...interface{}) error {
	return &prefixError{s: format(f, x...)}
}

// Wrap returns an error that has a "proto" prefix, formats like New,
// and unwraps to err.
func Wrap(err error, f string, x ...interface{}) error {
	return &wrapError{
		s:   format(f, x...),
		err: err,
	}
}

func format(f string, x ...interface{}) string {
	for i := 0; i < len(x); i++ {
		switch e := x[i].(type) {
		case *prefixError:
			x[i] = e.s // avoid "proto: " prefix when chaining
		case *wrapError:
			x[i] = e.s + ": " + strings.TrimPrefix(e.err.Error(), "proto: ")
		}
	}
	return fmt.Sprintf(f, x...)
}

type prefixError struct{ s string }

func (e *prefixError) Error() string { return "proto: " + e.s }

func (e *prefixError) Is(target error) bool { return target == Error }

type wrapError struct {
	s   string
	err error
}

func (e *wrapError) Error() string {
	return "proto: " + e.s + ": " + strings.TrimPrefix(e.err.Error(), "proto: ")
}

func (e *wrapError) Unwrap() error { return e.err }

func (e *wrapError) Is(target error) bool { return target == Error }
