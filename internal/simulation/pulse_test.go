package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relativity-sim/internal/common"
)

func TestPulseEmissionsAtRest(t *testing.T) {
	t.Parallel()

	pulse, err := NewPulse(common.Vector{}, 3, 5, common.Vector{}, 0)
	require.NoError(t, err)
	require.Len(t, pulse.emissions, 5)
	for k, e := range pulse.emissions {
		assert.InDelta(t, 3*float64(k), e.T, 1e-12)
		assert.InDelta(t, 0, e.X, 1e-12)
		assert.InDelta(t, 0, e.Y, 1e-12)
	}
}

func TestPulseEmissionsDilated(t *testing.T) {
	t.Parallel()

	// Proper period 3 at 0.8c: gamma is 5/3, so the home frame sees a flash
	// every 5 time units, 4 units of x apart.
	pulse, err := NewPulse(common.Vector{}, 3, 5, common.Vector{X: 0.8}, 0)
	require.NoError(t, err)
	require.Len(t, pulse.emissions, 5)
	for k, e := range pulse.emissions {
		assert.InDelta(t, 5*float64(k), e.T, 1e-9, "emission %d", k)
		assert.InDelta(t, 4*float64(k), e.X, 1e-9, "emission %d", k)
	}
}

func TestPulseEmissionsAcrossSegments(t *testing.T) {
	t.Parallel()

	// 0.8c until t=5 (one proper period elapses exactly there), then at rest.
	pulse, err := NewPulse(common.Vector{}, 3, 3, common.Vector{X: 0.8}, 0,
		VelocitySegment{Velocity: common.Vector{}, Start: 5})
	require.NoError(t, err)
	require.Len(t, pulse.emissions, 3)

	wantT := []float64{0, 5, 8}
	wantX := []float64{0, 4, 4}
	for k, e := range pulse.emissions {
		assert.InDelta(t, wantT[k], e.T, 1e-9, "emission %d", k)
		assert.InDelta(t, wantX[k], e.X, 1e-9, "emission %d", k)
	}
}

func TestPulseFlashWindow(t *testing.T) {
	t.Parallel()

	pulse, err := NewPulse(common.Vector{}, 3, 5, common.Vector{}, 0)
	require.NoError(t, err)

	cases := []struct {
		t       float64
		flashes int
	}{
		{0, 1},
		{1.4, 1},
		{1.6, 0},
		{3.0, 1},
		{4.6, 0},
	}
	for _, tc := range cases {
		shape, ok, err := pulse.TransformedGeometry(common.Vector{}, tc.t)
		require.NoError(t, err)
		require.True(t, ok)
		// First point is the emitter itself.
		assert.Len(t, shape.Points, 1+tc.flashes, "t=%g", tc.t)
	}
}

func TestPulseCoMovingObserverSeesProperPeriod(t *testing.T) {
	t.Parallel()

	velocity := common.Vector{X: 0.8}
	pulse, err := NewPulse(common.Vector{}, 3, 5, velocity, 0)
	require.NoError(t, err)

	// Riding along with the emitter the flashes land at the spatial origin
	// every 3 units of observer time, undilated.
	for _, tt := range []float64{0, 3, 6, 9, 12} {
		shape, ok, err := pulse.TransformedGeometry(velocity, tt)
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, shape.Points, 2, "t'=%g", tt)
		assert.InDelta(t, 0, shape.Points[1].X, 1e-9)
		assert.InDelta(t, 0, shape.Points[1].Y, 1e-9)
	}

	// Between flashes the emitter alone is visible.
	shape, ok, err := pulse.TransformedGeometry(velocity, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, shape.Points, 1)
}
