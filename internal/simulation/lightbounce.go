package simulation

import (
	"fmt"

	"relativity-sim/internal/common"
	"relativity-sim/internal/relativity"
)

// maxBounces bounds reflection enumeration for any single sample.
const maxBounces = 10000

// LightBounce is a photon bouncing at speed exactly 1 between two reflectors
// separated by a proper distance along the transverse (+y) axis of a
// structure moving at a constant velocity. Reflections are position
// triggered, not time triggered, so the general velocity-segment mechanism
// does not apply: in the structure's rest frame the photon meets a reflector
// every separation units of proper time, and those rest-frame events are
// boosted back into the home frame to form the piecewise-linear photon
// worldline feeding the same transform-and-reslice machinery as every other
// object.
type LightBounce struct {
	id         string
	structure  worldline     // lower reflector trajectory
	separation float64       // proper reflector separation
	upVel      common.Vector // photon home velocity on upward legs, |v| = 1
	downVel    common.Vector // photon home velocity on downward legs, |v| = 1
}

// NewLightBounce creates a photon starting at the lower reflector at the
// start time, heading toward the upper reflector.
func NewLightBounce(anchor common.Vector, separation float64, velocity common.Vector, start float64) (*LightBounce, error) {
	if separation <= 0 {
		return nil, fmt.Errorf("reflector separation must be positive, got %g", separation)
	}
	structure, err := newWorldline(anchor, velocity, start)
	if err != nil {
		return nil, err
	}
	// The photon moves at (0, +-1) in the structure's rest frame; its home
	// velocity is the relativistic composition with the structure velocity
	// and keeps magnitude exactly 1.
	reverse := velocity.MultiplyByScalar(-1)
	upVel, err := relativity.AddVelocities(common.Vector{Y: 1}, reverse)
	if err != nil {
		return nil, err
	}
	downVel, err := relativity.AddVelocities(common.Vector{Y: -1}, reverse)
	if err != nil {
		return nil, err
	}
	return &LightBounce{
		id:         shortID("light"),
		structure:  structure,
		separation: separation,
		upVel:      upVel,
		downVel:    downVel,
	}, nil
}

// ID returns the identity handle of the photon.
func (l *LightBounce) ID() string { return l.id }

// Kind returns KindPhoton.
func (l *LightBounce) Kind() ShapeKind { return KindPhoton }

// bounceEvent returns the k-th reflection event: the photon sits at the
// lower reflector on even k and at the upper reflector on odd k. In the
// structure's rest frame the k-th reflection happens at proper time
// k*separation; boosting that event back to the home frame places the
// reflection exactly where the reflector is, whatever the structure's
// motion. Legs are not uniform in home time once the structure moves along
// the bounce axis: up and down legs last gamma*separation*(1 +- v.y).
func (l *LightBounce) bounceEvent(k int) (relativity.SpacetimePoint, error) {
	rest := relativity.SpacetimePoint{
		Y: float64(k%2) * l.separation,
		T: float64(k) * l.separation,
	}
	home, err := relativity.Boost(rest, l.structure.segments[0].Velocity.MultiplyByScalar(-1))
	if err != nil {
		return relativity.SpacetimePoint{}, err
	}
	pos := l.structure.origin.Add(home.Pos())
	return relativity.NewSpacetimePoint(pos, l.structure.start+home.T), nil
}

// legVelocity returns the photon's home velocity after the k-th bounce.
func (l *LightBounce) legVelocity(k int) common.Vector {
	if k%2 == 0 {
		return l.upVel
	}
	return l.downVel
}

// HomeGeometry returns the photon's event at home time t together with both
// reflector events.
func (l *LightBounce) HomeGeometry(t float64) ([]relativity.SpacetimePoint, bool) {
	if t < l.structure.start {
		return nil, false
	}
	from, err := l.bounceEvent(0)
	if err != nil {
		return nil, false
	}
	k := 0
	for k+1 < maxBounces {
		next, err := l.bounceEvent(k + 1)
		if err != nil || next.T > t {
			break
		}
		from = next
		k++
	}
	photon := from.Pos().Add(l.legVelocity(k).MultiplyByScalar(t - from.T))
	lower := l.structure.positionAt(t)
	off, err := relativity.ContractOffset(common.Vector{Y: l.separation}, l.structure.segments[0].Velocity)
	if err != nil {
		return nil, false
	}
	return []relativity.SpacetimePoint{
		relativity.NewSpacetimePoint(photon, t),
		relativity.NewSpacetimePoint(lower, t),
		relativity.NewSpacetimePoint(lower.Add(off), t),
	}, true
}

// TransformedGeometry enumerates the bounce events covering the requested
// observer time, then re-slices the piecewise-linear photon worldline at it.
// A window spanning zero full bounces reduces to the single partial segment
// past the first event. Points are photon, lower reflector, upper reflector.
func (l *LightBounce) TransformedGeometry(observer common.Vector, t float64) (Shape, bool, error) {
	events := make([]relativity.SpacetimePoint, 0, 8)
	finalVel := l.upVel
	for k := 0; k < maxBounces; k++ {
		e, err := l.bounceEvent(k)
		if err != nil {
			return Shape{}, false, err
		}
		events = append(events, e)
		finalVel = l.legVelocity(k)
		b, err := relativity.Boost(e, observer)
		if err != nil {
			return Shape{}, false, err
		}
		if k >= 1 && b.T > t {
			break
		}
	}
	photon, ok, err := sampleTransformed(observer, t, events, finalVel)
	if err != nil || !ok {
		return Shape{}, false, err
	}
	lower, ok, err := l.structure.transformedVertex(observer, t, common.Vector{})
	if err != nil || !ok {
		return Shape{}, false, err
	}
	upper, ok, err := l.structure.transformedVertex(observer, t, common.Vector{Y: l.separation})
	if err != nil || !ok {
		return Shape{}, false, err
	}
	return Shape{ID: l.id, Kind: KindPhoton, Points: []common.Vector{photon, lower, upper}}, true, nil
}
