package pulsesim_test

import (
	"testing"
	"time"

	ps "github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/pulsetest"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecursors(t *testing.T) {
	parent, pre, err := ps.Precursors(pulsetest.MustParse(t, pulsetest.Counter), "rx")
	require.NoError(t, err)
	assert.Equal(t, "hub", parent)
	assert.Equal(t, []string{"i3", "i5", "i6"}, pre)
}

func TestFindCycle(t *testing.T) {
	n := pulsetest.MustParse(t, pulsetest.Counter)
	r, err := ps.FindCycle(n, ps.WithSimulatorOptions(ps.WithLogger(slogt.New(t))))
	require.NoError(t, err)
	assert.Equal(t, uint64(30), r)

	r, err = ps.FindCycle(n, ps.WithMaxPresses(6))
	require.NoError(t, err)
	assert.Equal(t, uint64(30), r)
}

func TestFindCycle_pressLimit(t *testing.T) {
	r, err := ps.FindCycle(pulsetest.MustParse(t, pulsetest.Counter), ps.WithMaxPresses(5))
	assert.ErrorIs(t, err, ps.ErrPressLimit)
	assert.Contains(t, err.Error(), "i6")
	assert.Zero(t, r)
}

func TestFindCycle_preconditions(t *testing.T) {
	td := []struct {
		name string
		net  string
		sink string
		err  error
	}{
		{"no sink", pulsetest.Counter, "nowhere", ps.ErrNoSink},
		{"two parents", "broadcaster -> a, b\n%a -> rx\n%b -> rx\n", "rx", ps.ErrAmbiguousParent},
		{"flip flop parent", "broadcaster -> a\n%a -> rx\n", "rx", ps.ErrPrecondition},
		{"broadcast parent", "broadcaster -> rx\n", "rx", ps.ErrPrecondition},
		{"flip flop precursor", pulsetest.Output, "output", ps.ErrPrecondition},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			r, err := ps.FindCycle(pulsetest.MustParse(t, d.net), ps.WithSink(d.sink))
			assert.ErrorIs(t, err, d.err)
			assert.Zero(t, r)
		})
	}
}

// ring never settles: p and q keep exchanging pulses within the first press.
const ring = `broadcaster -> p
&p -> q
&q -> p, hub
&hub -> rx
`

func TestFindCycle_noQuiescence(t *testing.T) {
	n := pulsetest.MustParse(t, ring)
	_, _, err := ps.Precursors(n, "rx")
	require.NoError(t, err)

	r, err := ps.FindCycle(n, ps.WithSimulatorOptions(ps.WithMaxPulses(1000)))
	assert.ErrorIs(t, err, ps.ErrNoQuiescence)
	assert.Contains(t, err.Error(), "press 1")
	assert.Zero(t, r)

	done := make(chan error, 1)
	go func() {
		_, err := ps.FindCycle(n)
		done <- err
	}()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, ps.ErrNoQuiescence)
	case <-time.After(30 * time.Second):
		t.Fatal("FindCycle did not return with the default pulse budget")
	}
}
