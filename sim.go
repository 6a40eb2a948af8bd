// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"log/slog"

	"github.com/db47h/pulsesim/internal/logging"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/pkg/errors"
)

// DefaultMaxPulses is the default number of pulses a single press may deliver.
//
const DefaultMaxPulses = 1 << 20

// An Observer is notified of simulation events. Observer methods are called
// synchronously from the simulation loop.
//
type Observer interface {
	// Pressed is called at the start of every button press with the new press
	// count.
	Pressed(press uint64)
	// Delivered is called for every pulse taken off the queue, whether or
	// not its destination is a declared module.
	Delivered(from, to string, p Pulse)
	// FirstHigh is called the first time a conjunction sends a high pulse.
	FirstHigh(module string, press uint64)
}

// An Option configures a Simulator.
//
type Option func(*Simulator)

// WithLogger sets the simulator's logger.
//
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulator) { s.log = l }
}

// WithObserver adds an observer to the simulator.
//
func WithObserver(o Observer) Option {
	return func(s *Simulator) { s.obs = append(s.obs, o) }
}

// WithMaxPulses sets the maximum number of pulses delivered during a single
// press. 0 means no limit.
//
func WithMaxPulses(n uint64) Option {
	return func(s *Simulator) { s.maxPulses = n }
}

// pending is a pulse waiting for delivery.
//
type pending struct {
	from, to string
	p        Pulse
}

// Simulator runs button presses on a network.
//
// Within a press, pulses are delivered in the order they were sent. A press
// returns once no pulse is in flight, or once it has delivered more pulses than
// allowed by WithMaxPulses. In the latter case the pending pulses are dropped,
// Err reports ErrNoQuiescence and further presses do nothing. A Simulator is
// not safe for concurrent use.
//
type Simulator struct {
	net       *Network
	states    map[string]moduleState
	queue     *linkedlistqueue.Queue
	presses   uint64
	sent      uint64
	firstHigh map[string]uint64
	maxPulses uint64
	err       error

	log *slog.Logger
	obs []Observer
}

// NewSimulator returns a new simulator for n with all flip flops off and all
// conjunction inputs low.
//
func NewSimulator(n *Network, opts ...Option) *Simulator {
	s := &Simulator{
		net:       n,
		states:    n.states(),
		queue:     linkedlistqueue.New(),
		firstHigh: make(map[string]uint64),
		maxPulses: DefaultMaxPulses,
		log:       logging.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Network returns the simulated network.
//
func (s *Simulator) Network() *Network { return s.net }

func (s *Simulator) send(from, to string, p Pulse) {
	s.queue.Enqueue(pending{from, to, p})
	s.sent++
}

// drain delivers the pulses queued at call time. Pulses sent as a result are
// queued behind them.
//
func (s *Simulator) drain() Counts {
	var c Counts
	for k := s.queue.Size(); k > 0; k-- {
		v, _ := s.queue.Dequeue()
		s.deliver(v.(pending), &c)
	}
	return c
}

func (s *Simulator) deliver(pp pending, c *Counts) {
	c.inc(pp.p)
	for _, o := range s.obs {
		o.Delivered(pp.from, pp.to, pp.p)
	}
	st, ok := s.states[pp.to]
	if !ok {
		// sink
		return
	}
	out, ok := st.receive(pp.from, pp.p)
	if !ok {
		return
	}
	m := s.net.modules[pp.to]
	if out == High && m.Kind == Conjunction {
		s.recordHigh(m.Name)
	}
	for _, dst := range m.Dests {
		s.send(m.Name, dst, out)
	}
}

// recordHigh keeps the first press at which a conjunction sent a high pulse.
//
func (s *Simulator) recordHigh(name string) {
	if _, ok := s.firstHigh[name]; ok {
		return
	}
	s.firstHigh[name] = s.presses
	s.log.Debug("conjunction sent first high pulse", "module", name, "press", s.presses)
	for _, o := range s.obs {
		o.FirstHigh(name, s.presses)
	}
}

// Press presses the button once: a low pulse is sent from the button to the
// broadcaster and the network runs until no pulse is in flight. It returns the
// pulses counted during that press, including the button's own pulse.
//
func (s *Simulator) Press() Counts {
	if s.err != nil {
		return Counts{}
	}
	s.presses++
	for _, o := range s.obs {
		o.Pressed(s.presses)
	}
	s.send(Button, Broadcaster, Low)
	var c Counts
	for !s.queue.Empty() {
		if s.maxPulses > 0 && c.Total() >= s.maxPulses {
			s.queue.Clear()
			s.err = errors.Wrapf(ErrNoQuiescence, "press %d: more than %d pulses", s.presses, s.maxPulses)
			s.log.Warn("press aborted", "press", s.presses, "pulses", c.Total())
			break
		}
		c = c.Add(s.drain())
	}
	return c
}

// Run presses the button n times and returns the accumulated counts. It stops
// early if a press does not settle, see Err.
//
func (s *Simulator) Run(n int) Counts {
	var c Counts
	for i := 0; i < n && s.err == nil; i++ {
		c = c.Add(s.Press())
	}
	return c
}

// Err returns the error that stopped the simulation, if any.
//
func (s *Simulator) Err() error { return s.err }

// Presses returns the number of button presses so far.
//
func (s *Simulator) Presses() uint64 { return s.presses }

// Sent returns the number of pulses sent so far, button pulses included.
//
func (s *Simulator) Sent() uint64 { return s.sent }

// FirstHigh returns the press at which the named conjunction first sent a high
// pulse.
//
func (s *Simulator) FirstHigh(name string) (uint64, bool) {
	p, ok := s.firstHigh[name]
	return p, ok
}

// FirstHighs returns a copy of all first high presses, by conjunction name.
//
func (s *Simulator) FirstHighs() map[string]uint64 {
	m := make(map[string]uint64, len(s.firstHigh))
	for k, v := range s.firstHigh {
		m[k] = v
	}
	return m
}
