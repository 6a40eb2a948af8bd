// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// Network is an immutable registry of modules and their wiring. It can be
// shared by any number of simulators.
//
type Network struct {
	modules map[string]*Module
	names   []string // declaration order
	// inputs maps every wire destination, declared or not, to the modules
	// sending to it, in declaration order.
	inputs map[string][]string
}

func newNetwork() *Network {
	return &Network{
		modules: make(map[string]*Module),
		inputs:  make(map[string][]string),
	}
}

func (n *Network) add(m *Module) bool {
	if _, ok := n.modules[m.Name]; ok {
		return false
	}
	n.modules[m.Name] = m
	n.names = append(n.names, m.Name)
	return true
}

// wire builds the fan-in of every destination. Must be called once, after all
// modules have been added.
//
func (n *Network) wire() {
	for _, name := range n.names {
		seen := make(map[string]struct{}, len(n.modules[name].Dests))
		for _, dst := range n.modules[name].Dests {
			if _, ok := seen[dst]; ok {
				continue
			}
			seen[dst] = struct{}{}
			n.inputs[dst] = append(n.inputs[dst], name)
		}
	}
}

// Module returns the module with the given name.
//
func (n *Network) Module(name string) (*Module, bool) {
	m, ok := n.modules[name]
	return m, ok
}

// Names returns the module names in declaration order.
//
func (n *Network) Names() []string {
	return append([]string(nil), n.names...)
}

// Inputs returns the names of the modules wired to name. name does not need to
// be a declared module.
//
func (n *Network) Inputs(name string) []string {
	return append([]string(nil), n.inputs[name]...)
}

// Len returns the number of declared modules.
//
func (n *Network) Len() int { return len(n.names) }

// states returns a fresh set of module states.
//
func (n *Network) states() map[string]moduleState {
	s := make(map[string]moduleState, len(n.modules))
	for name, m := range n.modules {
		s[name] = newState(m, n.inputs[name])
	}
	return s
}
