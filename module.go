// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import "github.com/db47h/pulsesim/internal/netlist"

// Well known module names.
//
const (
	Button      = "button"
	Broadcaster = "broadcaster"
)

// Kind identifies the behavior of a module.
//
type Kind int

// Module kinds.
//
const (
	Broadcast Kind = iota
	FlipFlop
	Conjunction
)

func (k Kind) String() string {
	switch k {
	case Broadcast:
		return "broadcast"
	case FlipFlop:
		return "flip-flop"
	case Conjunction:
		return "conjunction"
	}
	return "unknown"
}

// Marker returns the declaration marker for k.
//
func (k Kind) Marker() string {
	switch k {
	case FlipFlop:
		return netlist.MarkerFlipFlop
	case Conjunction:
		return netlist.MarkerConjunction
	}
	return netlist.MarkerNone
}

func kindOf(marker string) (Kind, bool) {
	switch marker {
	case netlist.MarkerNone:
		return Broadcast, true
	case netlist.MarkerFlipFlop:
		return FlipFlop, true
	case netlist.MarkerConjunction:
		return Conjunction, true
	}
	return 0, false
}

// A Module is a node in a pulse network.
//
type Module struct {
	Name  string
	Kind  Kind
	Dests []string // destination module names, in send order
}

// String returns the declaration of m in the form accepted by Parse.
//
func (m *Module) String() string {
	d := netlist.Decl{Marker: m.Kind.Marker(), Name: m.Name, Dests: m.Dests}
	return d.String()
}

// moduleState is the per-simulation state of a module. receive is called for
// every pulse delivered to the module and returns the pulse to send to all
// destinations, if any.
//
type moduleState interface {
	receive(from string, p Pulse) (out Pulse, ok bool)
}

type broadcast struct{}

func (broadcast) receive(_ string, p Pulse) (Pulse, bool) { return p, true }

type flipFlop struct {
	on bool
}

func (f *flipFlop) receive(_ string, p Pulse) (Pulse, bool) {
	if p == High {
		return 0, false
	}
	f.on = !f.on
	if f.on {
		return High, true
	}
	return Low, true
}

// conjunction remembers the last pulse received from each input. high
// tracks how many of them are High.
//
type conjunction struct {
	last map[string]Pulse
	high int
}

func newConjunction(inputs []string) *conjunction {
	c := &conjunction{last: make(map[string]Pulse, len(inputs))}
	for _, in := range inputs {
		c.last[in] = Low
	}
	return c
}

func (c *conjunction) receive(from string, p Pulse) (Pulse, bool) {
	prev, ok := c.last[from]
	if !ok {
		panic("conjunction: pulse from unwired input " + from)
	}
	if prev != p {
		if p == High {
			c.high++
		} else {
			c.high--
		}
		c.last[from] = p
	}
	if c.high == len(c.last) {
		return Low, true
	}
	return High, true
}

func newState(m *Module, inputs []string) moduleState {
	switch m.Kind {
	case Broadcast:
		return broadcast{}
	case FlipFlop:
		return &flipFlop{}
	case Conjunction:
		return newConjunction(inputs)
	}
	panic("unknown module kind " + m.Kind.String())
}
