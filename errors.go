// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors returned by Parse, Simulator and FindCycle.
//
var (
	ErrNoBroadcaster   = errors.New("no broadcaster module")
	ErrNoSink          = errors.New("sink is not fed by any module")
	ErrAmbiguousParent = errors.New("sink is fed by more than one module")
	ErrPrecondition    = errors.New("network does not have the expected structure")
	ErrPressLimit      = errors.New("press limit reached")
	ErrOverflow        = errors.New("cycle length overflows uint64")
	ErrNoQuiescence    = errors.New("press does not settle")
)

// A ParseError reports a malformed line in a network description.
//
type ParseError struct {
	Line int    // 1-based line number
	Col  int    // 1-based column of a syntax error, 0 otherwise
	Text string // offending line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: in %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
