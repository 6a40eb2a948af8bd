// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// FindCycle defaults.
//
const (
	DefaultSink       = "rx"
	DefaultMaxPresses = 1000000
)

type cycleConfig struct {
	sink       string
	maxPresses uint64
	simOpts    []Option
}

// A CycleOption configures FindCycle.
//
type CycleOption func(*cycleConfig)

// WithSink sets the name of the module whose first low pulse is searched for.
//
func WithSink(name string) CycleOption {
	return func(c *cycleConfig) { c.sink = name }
}

// WithMaxPresses sets the maximum number of button presses before FindCycle
// gives up.
//
func WithMaxPresses(n uint64) CycleOption {
	return func(c *cycleConfig) { c.maxPresses = n }
}

// WithSimulatorOptions sets the options of the simulator used by FindCycle.
//
func WithSimulatorOptions(opts ...Option) CycleOption {
	return func(c *cycleConfig) { c.simOpts = append(c.simOpts, opts...) }
}

// Precursors checks that sink is fed by a single conjunction, the parent, which
// is itself fed only by conjunctions, the precursors. It returns the parent
// and precursor names.
//
func Precursors(n *Network, sink string) (parent string, precursors []string, err error) {
	in := n.Inputs(sink)
	switch len(in) {
	case 0:
		return "", nil, errors.Wrapf(ErrNoSink, "sink %q", sink)
	case 1:
	default:
		return "", nil, errors.Wrapf(ErrAmbiguousParent, "sink %q is fed by %s", sink, strings.Join(in, ", "))
	}
	parent = in[0]
	if m := n.modules[parent]; m.Kind != Conjunction {
		return "", nil, errors.Wrapf(ErrPrecondition, "parent %q of sink %q is a %s", parent, sink, m.Kind)
	}
	precursors = n.Inputs(parent)
	if len(precursors) == 0 {
		return "", nil, errors.Wrapf(ErrPrecondition, "parent %q has no inputs", parent)
	}
	for _, p := range precursors {
		if m := n.modules[p]; m.Kind != Conjunction {
			return "", nil, errors.Wrapf(ErrPrecondition, "input %q of %q is a %s", p, parent, m.Kind)
		}
	}
	return parent, precursors, nil
}

// FindCycle returns the number of button presses after which the sink first
// receives a low pulse.
//
// The network must have the shape checked by Precursors. The parent conjunction
// sends a low pulse to the sink once all precursors send a high pulse within
// the same press. Precursors are assumed to fire periodically, starting at
// their first high pulse, so the result is the least common multiple of their
// first high presses.
//
// FindCycle fails with ErrPressLimit if a precursor has not fired after the
// configured number of presses, and with ErrNoQuiescence if a press does not
// settle within the simulator's pulse budget (see WithMaxPulses).
//
func FindCycle(n *Network, opts ...CycleOption) (uint64, error) {
	cfg := cycleConfig{sink: DefaultSink, maxPresses: DefaultMaxPresses}
	for _, o := range opts {
		o(&cfg)
	}
	parent, pre, err := Precursors(n, cfg.sink)
	if err != nil {
		return 0, err
	}
	s := NewSimulator(n, cfg.simOpts...)
	s.log.Debug("searching cycle", "sink", cfg.sink, "parent", parent, "precursors", pre)

	periods := make([]uint64, len(pre))
	for s.Presses() < cfg.maxPresses {
		s.Press()
		if err := s.Err(); err != nil {
			return 0, err
		}
		if !s.collect(pre, periods) {
			continue
		}
		r, err := lcm(periods)
		if err != nil {
			return 0, errors.Wrapf(err, "periods %v", periods)
		}
		s.log.Info("cycle found", "sink", cfg.sink, "presses", s.Presses(), "periods", periods, "cycle", r)
		return r, nil
	}

	var missing []string
	for _, p := range pre {
		if _, ok := s.FirstHigh(p); !ok {
			missing = append(missing, p)
		}
	}
	return 0, errors.Wrapf(ErrPressLimit, "no high pulse from %s after %d presses", strings.Join(missing, ", "), cfg.maxPresses)
}

// collect stores the first high press of each named module in dst and reports
// whether all of them have fired.
//
func (s *Simulator) collect(names []string, dst []uint64) bool {
	for i, name := range names {
		p, ok := s.firstHigh[name]
		if !ok {
			return false
		}
		dst[i] = p
	}
	return true
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm returns the least common multiple of vs. vs must not contain 0.
//
func lcm(vs []uint64) (uint64, error) {
	r := uint64(1)
	for _, v := range vs {
		hi, lo := bits.Mul64(r/gcd(r, v), v)
		if hi != 0 {
			return 0, ErrOverflow
		}
		r = lo
	}
	return r, nil
}
