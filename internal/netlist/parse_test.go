package netlist_test

import (
	"testing"

	"github.com/db47h/pulsesim/internal/netlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	td := []struct {
		in     string
		marker string
		name   string
		dests  []string
	}{
		{"broadcaster -> a, b, c", netlist.MarkerNone, "broadcaster", []string{"a", "b", "c"}},
		{"%a -> b", netlist.MarkerFlipFlop, "a", []string{"b"}},
		{"&inv -> a", netlist.MarkerConjunction, "inv", []string{"a"}},
		{"  &con->rx  ", netlist.MarkerConjunction, "con", []string{"rx"}},
		{"%x_1 -> y2,z3", netlist.MarkerFlipFlop, "x_1", []string{"y2", "z3"}},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			decl, err := netlist.ParseLine(d.in)
			require.NoError(t, err)
			assert.Equal(t, d.marker, decl.Marker)
			assert.Equal(t, d.name, decl.Name)
			assert.Equal(t, d.dests, decl.Dests)
		})
	}
}

func TestParseLine_errors(t *testing.T) {
	td := []struct {
		name string
		in   string
	}{
		{"missing arrow", "%a b"},
		{"missing dests", "%a ->"},
		{"bad marker", "#a -> b"},
		{"double marker", "%&a -> b"},
		{"trailing comma", "&a -> b,"},
		{"empty", ""},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := netlist.ParseLine(d.in)
			require.Error(t, err)
			var lerr *netlist.Error
			assert.ErrorAs(t, err, &lerr)
		})
	}
}

func TestDecl_String(t *testing.T) {
	decl, err := netlist.ParseLine("&b   ->c,d")
	require.NoError(t, err)
	assert.Equal(t, "&b -> c, d", decl.String())
}
