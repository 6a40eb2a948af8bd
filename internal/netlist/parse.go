// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlist implements the line grammar of pulse network descriptions.
//
// A line declares one module and its outputs:
//
//	%a -> b, c
//
package netlist

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Module markers.
//
const (
	MarkerNone        = ""
	MarkerFlipFlop    = "%"
	MarkerConjunction = "&"
)

// Decl is a single module declaration.
//
type Decl struct {
	Marker string   `parser:"@Marker?"`
	Name   string   `parser:"@Ident Arrow"`
	Dests  []string `parser:"@Ident ( Comma @Ident )*"`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Arrow", Pattern: `->`},
	{Name: "Marker", Pattern: `[%&]`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Ident", Pattern: `[A-Za-z0-9_]+`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

var lineParser = participle.MustBuild[Decl](
	participle.Lexer(lineLexer),
	participle.Elide("whitespace"),
)

// Error is a syntax error within a single line.
//
type Error struct {
	Col int // 1-based column, 0 if unknown
	Msg string
}

func (e *Error) Error() string {
	if e.Col > 0 {
		return fmt.Sprintf("at col %d: %s", e.Col, e.Msg)
	}
	return e.Msg
}

// ParseLine parses a single declaration. The input must not contain line
// breaks.
//
func ParseLine(line string) (*Decl, error) {
	d, err := lineParser.ParseString("", line)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &Error{Col: perr.Position().Column, Msg: perr.Message()}
		}
		return nil, &Error{Msg: err.Error()}
	}
	return d, nil
}

// String returns the canonical text form of d.
//
func (d *Decl) String() string {
	s := d.Marker + d.Name + " ->"
	for i, dst := range d.Dests {
		if i > 0 {
			s += ","
		}
		s += " " + dst
	}
	return s
}
