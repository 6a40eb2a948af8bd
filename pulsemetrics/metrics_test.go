package pulsemetrics_test

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/db47h/pulsesim"
	"github.com/db47h/pulsesim/pulsemetrics"
	"github.com/db47h/pulsesim/pulsetest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := pulsemetrics.New(reg)
	require.NoError(t, err)

	s := pulsesim.NewSimulator(pulsetest.MustParse(t, pulsetest.Counter), pulsesim.WithObserver(m))
	c := s.Run(10)

	n, err := testutil.GatherAndCount(reg, "pulsesim_pulses_total", "pulsesim_presses_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	p, ok := s.FirstHigh("i6")
	require.True(t, ok)
	require.Equal(t, uint64(6), p)

	var b strings.Builder
	b.WriteString(`# HELP pulsesim_presses_total Button presses.
# TYPE pulsesim_presses_total counter
pulsesim_presses_total 10
# HELP pulsesim_pulses_total Pulses delivered, by level.
# TYPE pulsesim_pulses_total counter
`)
	fmt.Fprintf(&b, "pulsesim_pulses_total{level=\"high\"} %d\n", c.High)
	fmt.Fprintf(&b, "pulsesim_pulses_total{level=\"low\"} %d\n", c.Low)
	b.WriteString(`# HELP pulsesim_first_high_press Press at which a conjunction first sent a high pulse.
# TYPE pulsesim_first_high_press gauge
`)
	fh := s.FirstHighs()
	names := make([]string, 0, len(fh))
	for name := range fh {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "pulsesim_first_high_press{module=%q} %d\n", name, fh[name])
	}

	err = testutil.GatherAndCompare(reg, strings.NewReader(b.String()),
		"pulsesim_presses_total", "pulsesim_pulses_total", "pulsesim_first_high_press")
	assert.NoError(t, err)
}

func TestNew_duplicate(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := pulsemetrics.New(reg)
	require.NoError(t, err)
	_, err = pulsemetrics.New(reg)
	assert.Error(t, err)
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := pulsemetrics.New(reg)
	require.NoError(t, err)
	pulsesim.NewSimulator(pulsetest.MustParse(t, pulsetest.Chain), pulsesim.WithObserver(m)).Run(1000)

	var buf bytes.Buffer
	require.NoError(t, pulsemetrics.WriteText(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, "# TYPE pulsesim_presses_total counter\npulsesim_presses_total 1000\n")
	assert.Contains(t, out, "# HELP pulsesim_pulses_total Pulses delivered, by level.\n")
	assert.Contains(t, out, `pulsesim_pulses_total{level="low"} 8000`+"\n")
	assert.Contains(t, out, `pulsesim_pulses_total{level="high"} 4000`+"\n")
	assert.Contains(t, out, "# TYPE pulsesim_first_high_press gauge\n")
	assert.Contains(t, out, `pulsesim_first_high_press{module="inv"} 1`+"\n")

	// The output is valid exposition text.
	err = testutil.GatherAndCompare(reg, strings.NewReader(out), "pulsesim_presses_total")
	assert.NoError(t, err)
}
