package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeHeading(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"inside range", math.Pi, math.Pi},
		{"full turn", 2 * math.Pi, 0},
		{"negative quarter", -math.Pi / 2, 3 * math.Pi / 2},
		{"over two turns", 5 * math.Pi, math.Pi},
		{"large negative", -7 * math.Pi / 2, math.Pi / 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, NormalizeHeading(tc.in), 1e-12)
		})
	}
}

func TestForwardFacesPositiveZAtZeroHeading(t *testing.T) {
	f := Pose{}.Forward()
	require.InDelta(t, 0, f.X, 1e-12)
	require.InDelta(t, 1, f.Z, 1e-12)
}

func TestAdvancedFollowsHeading(t *testing.T) {
	p := Pose{Heading: math.Pi / 2} // facing +X
	p = p.Advanced(2)
	require.InDelta(t, 2, p.Position.X, 1e-12)
	require.InDelta(t, 0, p.Position.Z, 1e-12)
}

func TestRotatedStaysNormalized(t *testing.T) {
	p := Pose{}
	for i := 0; i < 100; i++ {
		p = p.Rotated(-math.Pi / 3)
		require.GreaterOrEqual(t, p.Heading, 0.0)
		require.Less(t, p.Heading, 2*math.Pi)
	}
}
