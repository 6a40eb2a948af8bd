// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pulsetest provides utility functions and fixtures for testing pulse
// networks.
//
package pulsetest

import (
	"testing"

	"github.com/db47h/pulsesim"
)

// Sample networks.
//
const (
	// Chain is a flip flop chain looped through an inverter.
	// 1000 presses yield 8000 low and 4000 high pulses.
	Chain = `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
`
	// Output feeds a conjunction into an undeclared "output" module.
	// 1000 presses yield 4250 low and 2750 high pulses.
	Output = `broadcaster -> a
%a -> inv, con
&inv -> b
%b -> con
&con -> output
`
	// Counter is a 3 bit counter watched by three conjunctions, inverted
	// into a single hub feeding "rx". The inverters first send a high pulse
	// on presses 3, 5 and 6.
	Counter = `broadcaster -> a1
%a1 -> a2, c3, c5
%a2 -> a3, c3, c6
%a3 -> c5, c6
&c3 -> i3
&c5 -> i5
&c6 -> i6
&i3 -> hub
&i5 -> hub
&i6 -> hub
&hub -> rx
`
)

// MustParse parses a network or fails the test.
//
func MustParse(t testing.TB, s string) *pulsesim.Network {
	t.Helper()
	n, err := pulsesim.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

// CompareNetworks checks that two networks declare the same modules, with the
// same kinds, destinations and inputs.
//
func CompareNetworks(t testing.TB, n1, n2 *pulsesim.Network) {
	t.Helper()

	names1, names2 := n1.Names(), n2.Names()
	if len(names1) != len(names2) {
		t.Fatalf("module count: %d != %d", len(names1), len(names2))
	}
	for i, name := range names1 {
		if names2[i] != name {
			t.Fatalf("module #%d: %q != %q", i, name, names2[i])
		}
		m1, _ := n1.Module(name)
		m2, ok := n2.Module(name)
		if !ok {
			t.Fatalf("module %q not found", name)
		}
		if m1.Kind != m2.Kind {
			t.Errorf("module %q: kind %s != %s", name, m1.Kind, m2.Kind)
		}
		if !equal(m1.Dests, m2.Dests) {
			t.Errorf("module %q: destinations %v != %v", name, m1.Dests, m2.Dests)
		}
		if in1, in2 := n1.Inputs(name), n2.Inputs(name); !equal(in1, in2) {
			t.Errorf("module %q: inputs %v != %v", name, in1, in2)
		}
	}
}

// CompareRuns runs two fresh simulators of n for the given number of presses
// and checks that they report the same counts after each press and the same
// first high presses at the end.
//
func CompareRuns(t testing.TB, n *pulsesim.Network, presses int) {
	t.Helper()

	s1, s2 := pulsesim.NewSimulator(n), pulsesim.NewSimulator(n)
	for i := 1; i <= presses; i++ {
		c1, c2 := s1.Press(), s2.Press()
		if c1 != c2 {
			t.Fatalf("press %d: counts %+v != %+v", i, c1, c2)
		}
	}
	h1, h2 := s1.FirstHighs(), s2.FirstHighs()
	if len(h1) != len(h2) {
		t.Fatalf("first high count: %d != %d", len(h1), len(h2))
	}
	for k, v := range h1 {
		if w, ok := h2[k]; !ok || v != w {
			t.Errorf("first high of %q: %d != %d", k, v, w)
		}
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
