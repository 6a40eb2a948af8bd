// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

// Pulse is a signal sent along a wire.
//
type Pulse uint8

// Pulse values.
//
const (
	Low Pulse = iota
	High
)

func (p Pulse) String() string {
	if p == High {
		return "high"
	}
	return "low"
}

// Counts holds pulse counts by level.
//
type Counts struct {
	Low  uint64
	High uint64
}

// Add returns the sum of c and o.
//
func (c Counts) Add(o Counts) Counts {
	return Counts{Low: c.Low + o.Low, High: c.High + o.High}
}

// Total returns the number of counted pulses.
//
func (c Counts) Total() uint64 { return c.Low + c.High }

// Product returns Low * High.
//
func (c Counts) Product() uint64 { return c.Low * c.High }

func (c *Counts) inc(p Pulse) {
	if p == Low {
		c.Low++
	} else {
		c.High++
	}
}
