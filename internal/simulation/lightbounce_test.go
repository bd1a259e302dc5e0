package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relativity-sim/internal/common"
)

func TestNewLightBounceValidation(t *testing.T) {
	t.Parallel()

	_, err := NewLightBounce(common.Vector{}, 0, common.Vector{}, 0)
	assert.Error(t, err)
	_, err = NewLightBounce(common.Vector{}, -2, common.Vector{}, 0)
	assert.Error(t, err)
	_, err = NewLightBounce(common.Vector{}, 2, common.Vector{X: 1}, 0)
	assert.Error(t, err, "the structure itself must be subluminal")
}

func TestLightBounceEventSpacingAndLegVelocities(t *testing.T) {
	t.Parallel()

	lb, err := NewLightBounce(common.Vector{Y: -1}, 2, common.Vector{X: 0.8}, 0)
	require.NoError(t, err)

	// Transverse structure motion dilates every leg uniformly to gamma*d.
	gamma := 1 / math.Sqrt(1-0.64)
	for k := 0; k < 4; k++ {
		e, err := lb.bounceEvent(k)
		require.NoError(t, err)
		assert.InDelta(t, gamma*2*float64(k), e.T, 1e-9, "bounce %d", k)
	}

	// The upward leg composes (0,1) with the structure motion: (0.8, 0.6),
	// still exactly light speed.
	assert.InDelta(t, 0.8, lb.upVel.X, 1e-12)
	assert.InDelta(t, 0.6, lb.upVel.Y, 1e-12)
	assert.InDelta(t, 1.0, lb.upVel.Norm(), 1e-12)
	assert.InDelta(t, 0.8, lb.downVel.X, 1e-12)
	assert.InDelta(t, -0.6, lb.downVel.Y, 1e-12)
	assert.InDelta(t, 1.0, lb.downVel.Norm(), 1e-12)
}

func TestLightBounceStructureMovingAlongBounceAxis(t *testing.T) {
	t.Parallel()

	// Structure climbing at 0.5c along the photon's own axis: legs are not
	// uniform in home time. Chasing the receding upper reflector takes
	// gamma*d*(1+v); meeting the approaching lower one takes gamma*d*(1-v).
	lb, err := NewLightBounce(common.Vector{}, 2, common.Vector{Y: 0.5}, 0)
	require.NoError(t, err)
	gamma := 1 / math.Sqrt(1-0.25)

	e0, err := lb.bounceEvent(0)
	require.NoError(t, err)
	e1, err := lb.bounceEvent(1)
	require.NoError(t, err)
	e2, err := lb.bounceEvent(2)
	require.NoError(t, err)
	assert.InDelta(t, gamma*2*1.5, e1.T-e0.T, 1e-9)
	assert.InDelta(t, gamma*2*0.5, e2.T-e1.T, 1e-9)

	// Every reflection event coincides with its reflector.
	sep := 2 / gamma // home-frame reflector gap, contracted
	assert.InDelta(t, 0.5*e1.T+sep, e1.Y, 1e-9, "odd bounces on the upper reflector")
	assert.InDelta(t, 0.5*e2.T, e2.Y, 1e-9, "even bounces on the lower reflector")

	// And the photon actually arrives there along its leg velocity.
	arrive1 := e0.Pos().Add(lb.legVelocity(0).MultiplyByScalar(e1.T - e0.T))
	assert.InDelta(t, e1.X, arrive1.X, 1e-9)
	assert.InDelta(t, e1.Y, arrive1.Y, 1e-9)
	arrive2 := e1.Pos().Add(lb.legVelocity(1).MultiplyByScalar(e2.T - e1.T))
	assert.InDelta(t, e2.X, arrive2.X, 1e-9)
	assert.InDelta(t, e2.Y, arrive2.Y, 1e-9)

	// Mid-leg the home photon sits between the reflectors.
	events, ok := lb.HomeGeometry(1)
	require.True(t, ok)
	photon, lower, upper := events[0], events[1], events[2]
	assert.InDelta(t, 1.0, photon.Y, 1e-9, "the up leg composes to (0,1) here")
	assert.GreaterOrEqual(t, photon.Y, lower.Y)
	assert.LessOrEqual(t, photon.Y, upper.Y)
}

func TestLightBounceHomeGeometryAtRest(t *testing.T) {
	t.Parallel()

	lb, err := NewLightBounce(common.Vector{Y: -1}, 2, common.Vector{}, 0)
	require.NoError(t, err)

	_, ok := lb.HomeGeometry(-0.1)
	assert.False(t, ok)

	// Upward leg: photon at y = -1 + t.
	events, ok := lb.HomeGeometry(1)
	require.True(t, ok)
	require.Len(t, events, 3)
	assert.InDelta(t, 0, events[0].Y, 1e-12, "photon midway up")
	assert.InDelta(t, -1, events[1].Y, 1e-12, "lower reflector")
	assert.InDelta(t, 1, events[2].Y, 1e-12, "upper reflector")

	// Downward leg after the first reflection at t=2.
	events, ok = lb.HomeGeometry(3)
	require.True(t, ok)
	assert.InDelta(t, 0, events[0].Y, 1e-12)

	// Back at the lower reflector every full round trip.
	events, ok = lb.HomeGeometry(4)
	require.True(t, ok)
	assert.InDelta(t, -1, events[0].Y, 1e-12)
}

func TestLightBounceIdentityObserverMatchesHome(t *testing.T) {
	t.Parallel()

	lb, err := NewLightBounce(common.Vector{Y: -1}, 2, common.Vector{X: 0.6}, 0)
	require.NoError(t, err)

	for _, tt := range []float64{0.5, 2, 5, 9.5} {
		events, ok := lb.HomeGeometry(tt)
		require.True(t, ok)
		shape, ok, err := lb.TransformedGeometry(common.Vector{}, tt)
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, shape.Points, 3)
		for i := range events {
			assert.InDelta(t, events[i].X, shape.Points[i].X, 1e-9, "t=%g point %d", tt, i)
			assert.InDelta(t, events[i].Y, shape.Points[i].Y, 1e-9, "t=%g point %d", tt, i)
		}
	}
}

func TestLightClockSeenFromMovingFrame(t *testing.T) {
	t.Parallel()

	// A clock at rest watched from an observer at 0.8c: the photon path
	// becomes a zig-zag and one tick stretches from 2 to gamma*2 observer
	// time units.
	lb, err := NewLightBounce(common.Vector{Y: -1}, 2, common.Vector{}, 0)
	require.NoError(t, err)
	observer := common.Vector{X: 0.8}
	gamma := 1 / math.Sqrt(1-0.64)

	// Midway through the first upward leg: home event (0, 0, t=1) boosts to
	// x' = -gamma*0.8, t' = gamma.
	shape, ok, err := lb.TransformedGeometry(observer, gamma)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, shape.Points, 3)
	assert.InDelta(t, -gamma*0.8, shape.Points[0].X, 1e-9)
	assert.InDelta(t, 0, shape.Points[0].Y, 1e-9)

	// The reflectors drift backwards at 0.8 and keep their transverse gap.
	assert.InDelta(t, -0.8*gamma, shape.Points[1].X, 1e-9)
	assert.InDelta(t, -1, shape.Points[1].Y, 1e-9)
	assert.InDelta(t, -0.8*gamma, shape.Points[2].X, 1e-9)
	assert.InDelta(t, 1, shape.Points[2].Y, 1e-9)

	// One full reflection later the photon is back at the upper reflector:
	// home event (0, 1, t=2) boosts to t' = 2*gamma.
	shape, ok, err = lb.TransformedGeometry(observer, 2*gamma)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 1, shape.Points[0].Y, 1e-9)
	assert.InDelta(t, shape.Points[2].X, shape.Points[0].X, 1e-9)
	assert.InDelta(t, shape.Points[2].Y, shape.Points[0].Y, 1e-9)
}
