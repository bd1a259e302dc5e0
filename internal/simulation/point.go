package simulation

import (
	"relativity-sim/internal/common"
	"relativity-sim/internal/relativity"
)

// Point is a structureless particle following a piecewise-inertial
// worldline.
type Point struct {
	id     string
	wl     worldline
	offset common.Vector // proper offset from the worldline origin
}

// NewPoint creates a point at the given home-frame position and start time,
// moving at the given velocity. Additional segments extend the worldline
// with later velocity changes.
func NewPoint(pos, velocity common.Vector, start float64, more ...VelocitySegment) (*Point, error) {
	return newPointWithOffset(pos, common.Vector{}, velocity, start, more...)
}

// newPointWithOffset creates a point riding at a proper offset from the
// worldline origin. Composite figures use it for joints away from the
// anchor, so the offset contracts along the motion like any rigid vertex.
func newPointWithOffset(origin, offset, velocity common.Vector, start float64, more ...VelocitySegment) (*Point, error) {
	wl, err := newWorldline(origin, velocity, start, more...)
	if err != nil {
		return nil, err
	}
	return &Point{id: shortID("point"), wl: wl, offset: offset}, nil
}

// ID returns the identity handle of the point.
func (p *Point) ID() string { return p.id }

// Kind returns KindPoint.
func (p *Point) Kind() ShapeKind { return KindPoint }

// HomeGeometry returns the point's event at home time t.
func (p *Point) HomeGeometry(t float64) ([]relativity.SpacetimePoint, bool) {
	if t < p.wl.start {
		return nil, false
	}
	off, err := relativity.ContractOffset(p.offset, p.wl.velocityAt(t))
	if err != nil {
		return nil, false
	}
	return []relativity.SpacetimePoint{relativity.NewSpacetimePoint(p.wl.positionAt(t).Add(off), t)}, true
}

// TransformedGeometry returns the point's position in the observer frame at
// observer time t.
func (p *Point) TransformedGeometry(observer common.Vector, t float64) (Shape, bool, error) {
	pos, ok, err := p.wl.transformedVertex(observer, t, p.offset)
	if err != nil || !ok {
		return Shape{}, false, err
	}
	return Shape{ID: p.id, Kind: KindPoint, Points: []common.Vector{pos}}, true, nil
}

// Event is a single fixed spacetime point: a flash that happens once and is
// rendered from its transformed time onward. Because its time coordinate
// shifts with the spatial position under a boost, a pair of Events at equal
// home times demonstrates loss of simultaneity directly.
type Event struct {
	id string
	at relativity.SpacetimePoint
}

// NewEvent creates an event at the given home-frame spacetime point.
func NewEvent(at relativity.SpacetimePoint) *Event {
	return &Event{id: shortID("event"), at: at}
}

// ID returns the identity handle of the event.
func (e *Event) ID() string { return e.id }

// Kind returns KindEvent.
func (e *Event) Kind() ShapeKind { return KindEvent }

// When returns the home-frame spacetime point of the event.
func (e *Event) When() relativity.SpacetimePoint { return e.at }

// HomeGeometry returns the event once home time has reached it.
func (e *Event) HomeGeometry(t float64) ([]relativity.SpacetimePoint, bool) {
	if t < e.at.T {
		return nil, false
	}
	return []relativity.SpacetimePoint{e.at}, true
}

// TransformedGeometry returns the boosted event position once the observer
// time has passed the boosted event time.
func (e *Event) TransformedGeometry(observer common.Vector, t float64) (Shape, bool, error) {
	b, err := relativity.Boost(e.at, observer)
	if err != nil {
		return Shape{}, false, err
	}
	if t < b.T {
		return Shape{}, false, nil
	}
	return Shape{ID: e.id, Kind: KindEvent, Points: []common.Vector{b.Pos()}}, true, nil
}
