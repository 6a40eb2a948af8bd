// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"bufio"
	"io"
	"strings"

	"github.com/db47h/pulsesim/internal/netlist"
	"github.com/pkg/errors"
)

const maxLineSize = 1 << 20

// Parse reads a network description, one module per line:
//
//	broadcaster -> a, b
//	%a -> inv
//	&inv -> b
//
// The broadcast module has no marker and must be named "broadcaster". Flip
// flops are marked with '%' and conjunctions with '&'. Destinations that are
// not declared are sinks. Blank lines are ignored.
//
// Parsing stops at the first malformed line, reported as a *ParseError.
//
func Parse(r io.Reader) (*Network, error) {
	n := newNetwork()
	s := bufio.NewScanner(r)
	s.Buffer(nil, maxLineSize)
	ln := 0
	for s.Scan() {
		ln++
		text := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		m, err := parseModule(text)
		if err != nil {
			pe := &ParseError{Line: ln, Text: text, Err: err}
			var serr *netlist.Error
			if errors.As(err, &serr) {
				pe.Col = serr.Col
			}
			return nil, pe
		}
		if !n.add(m) {
			return nil, &ParseError{Line: ln, Text: text, Err: errors.Errorf("module %q already declared", m.Name)}
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read network")
	}
	if _, ok := n.modules[Broadcaster]; !ok {
		return nil, ErrNoBroadcaster
	}
	n.wire()
	return n, nil
}

// ParseString is like Parse but reads from a string.
//
func ParseString(s string) (*Network, error) {
	return Parse(strings.NewReader(s))
}

func parseModule(line string) (*Module, error) {
	d, err := netlist.ParseLine(line)
	if err != nil {
		return nil, err
	}
	k, ok := kindOf(d.Marker)
	if !ok {
		return nil, errors.Errorf("unknown marker %q", d.Marker)
	}
	switch {
	case k == Broadcast && d.Name != Broadcaster:
		return nil, errors.Errorf("module %q has no type marker", d.Name)
	case k != Broadcast && d.Name == Broadcaster:
		return nil, errors.Errorf("module %q must not have a type marker", Broadcaster)
	case d.Name == Button:
		return nil, errors.Errorf("module name %q is reserved", Button)
	}
	return &Module{Name: d.Name, Kind: k, Dests: d.Dests}, nil
}
