package simulation

import (
	"fmt"

	"relativity-sim/internal/common"
	"relativity-sim/internal/relativity"
)

// worldline is a piecewise-inertial trajectory in the home frame: a spatial
// origin at a start time plus an ordered sequence of velocity segments.
// It is immutable after construction.
type worldline struct {
	origin   common.Vector
	start    float64
	segments []VelocitySegment
}

// newWorldline builds a worldline starting at origin with the given initial
// velocity. Additional segments must be strictly ordered by activation time
// and follow the start time; every velocity must satisfy |v| < 1.
func newWorldline(origin, velocity common.Vector, start float64, more ...VelocitySegment) (worldline, error) {
	if err := validateSpeed(velocity); err != nil {
		return worldline{}, err
	}
	segments := make([]VelocitySegment, 0, 1+len(more))
	segments = append(segments, VelocitySegment{Velocity: velocity, Start: start})
	prev := start
	for _, seg := range more {
		if err := validateSpeed(seg.Velocity); err != nil {
			return worldline{}, err
		}
		if seg.Start <= prev {
			return worldline{}, fmt.Errorf("segment activation times must be strictly increasing: %.3f after %.3f", seg.Start, prev)
		}
		segments = append(segments, seg)
		prev = seg.Start
	}
	return worldline{origin: origin, start: start, segments: segments}, nil
}

// velocityAt returns the velocity of the segment in effect at home time t:
// the last segment with Start <= t, or the initial segment before any apply.
func (w worldline) velocityAt(t float64) common.Vector {
	v := w.segments[0].Velocity
	for _, seg := range w.segments {
		if seg.Start > t {
			break
		}
		v = seg.Velocity
	}
	return v
}

// positionAt integrates the segments to the home-frame position at time t.
// Times before the start extrapolate backwards along the initial segment;
// activation gating is the caller's concern.
func (w worldline) positionAt(t float64) common.Vector {
	if t <= w.start {
		return w.origin.Add(w.segments[0].Velocity.MultiplyByScalar(t - w.start))
	}
	pos := w.origin
	cur := w.start
	for i, seg := range w.segments {
		end := t
		if i+1 < len(w.segments) && w.segments[i+1].Start < t {
			end = w.segments[i+1].Start
		}
		if end > cur {
			pos = pos.Add(seg.Velocity.MultiplyByScalar(end - cur))
			cur = end
		}
	}
	return pos
}

// eventAt returns the spacetime event on the worldline at home time t.
func (w worldline) eventAt(t float64) relativity.SpacetimePoint {
	return relativity.NewSpacetimePoint(w.positionAt(t), t)
}

// knotEvents returns the worldline's knot events for a vertex riding at the
// given proper offset from the base trajectory, together with the velocity
// after the final knot. The offset is contracted along each segment's motion
// direction, so a rigid vertex shifts when the velocity changes; each switch
// contributes a pair of knots at the same home time, one carrying the
// outgoing contraction and one the incoming, keeping every leg between knots
// uniformly contracted.
func (w worldline) knotEvents(offset common.Vector) ([]relativity.SpacetimePoint, common.Vector, error) {
	events := make([]relativity.SpacetimePoint, 0, 2*len(w.segments)-1)
	for i, seg := range w.segments {
		base := w.positionAt(seg.Start)
		if i > 0 {
			prev, err := relativity.ContractOffset(offset, w.segments[i-1].Velocity)
			if err != nil {
				return nil, common.Vector{}, err
			}
			events = append(events, relativity.NewSpacetimePoint(base.Add(prev), seg.Start))
		}
		off, err := relativity.ContractOffset(offset, seg.Velocity)
		if err != nil {
			return nil, common.Vector{}, err
		}
		events = append(events, relativity.NewSpacetimePoint(base.Add(off), seg.Start))
	}
	return events, w.segments[len(w.segments)-1].Velocity, nil
}

// transformedVertex locates the vertex with the given proper offset at the
// requested observer-frame time: every knot event is boosted into the
// observer frame, the bracketing pair of boosted knots is found by
// transformed time, and the position is recovered by linear interpolation
// between them. The bool is false while the observer time precedes the
// boosted activation event.
func (w worldline) transformedVertex(observer common.Vector, t float64, offset common.Vector) (common.Vector, bool, error) {
	events, finalVel, err := w.knotEvents(offset)
	if err != nil {
		return common.Vector{}, false, err
	}
	return sampleTransformed(observer, t, events, finalVel)
}

// sampleTransformed re-slices a piecewise-linear home-frame worldline, given
// by its knot events and the velocity after the last knot, at one
// observer-frame time. dtau/dt = gamma * (1 - v.u) is positive for any
// subluminal observer, so transformed knot times increase along every leg
// and the bracket scan terminates. Between knots the motion is inertial, so
// the boosted leg is exactly straight and the interpolation is exact.
// Brackets are half-open: at a knot's own transformed time the following leg
// takes over.
func sampleTransformed(observer common.Vector, t float64, events []relativity.SpacetimePoint, finalVel common.Vector) (common.Vector, bool, error) {
	boosted := make([]relativity.SpacetimePoint, len(events))
	for i, e := range events {
		b, err := relativity.Boost(e, observer)
		if err != nil {
			return common.Vector{}, false, err
		}
		boosted[i] = b
	}
	if t < boosted[0].T {
		return common.Vector{}, false, nil
	}
	for i := 0; i+1 < len(boosted); i++ {
		lo, hi := boosted[i], boosted[i+1]
		if t < lo.T || t >= hi.T {
			continue
		}
		alpha := (t - lo.T) / (hi.T - lo.T)
		return lo.Pos().Add(hi.Pos().Subtract(lo.Pos()).MultiplyByScalar(alpha)), true, nil
	}
	last := boosted[len(boosted)-1]
	if t >= last.T {
		// Beyond the final knot the object coasts at the transformed
		// final velocity.
		u, err := relativity.AddVelocities(finalVel, observer)
		if err != nil {
			return common.Vector{}, false, err
		}
		return last.Pos().Add(u.MultiplyByScalar(t - last.T)), true, nil
	}
	// A rigid vertex jumps when its velocity segment switches, which can
	// open a gap between consecutive boosted knot times. Clamp to the last
	// knot already in the observer's past.
	pos := boosted[0].Pos()
	for _, b := range boosted {
		if b.T <= t {
			pos = b.Pos()
		}
	}
	return pos, true, nil
}
