package simulation

import (
	"fmt"

	"relativity-sim/internal/common"
	"relativity-sim/internal/relativity"
)

// Pulse is a periodic signal emitter: a clock riding a worldline that flashes
// every proper period, a fixed number of times, starting at its activation.
// Emission events are spaced by the proper period along the emitter's own
// worldline, so their home-frame spacing is gamma * period per segment; that
// is the entire content of time dilation as seen by other observers.
type Pulse struct {
	id        string
	wl        worldline
	period    float64
	emissions []relativity.SpacetimePoint
}

// NewPulse creates an emitter at the given position flashing count times,
// once every proper period, beginning at the start time.
func NewPulse(pos common.Vector, period float64, count int, velocity common.Vector, start float64, more ...VelocitySegment) (*Pulse, error) {
	if period <= 0 {
		return nil, fmt.Errorf("pulse period must be positive, got %g", period)
	}
	if count <= 0 {
		return nil, fmt.Errorf("pulse count must be positive, got %d", count)
	}
	wl, err := newWorldline(pos, velocity, start, more...)
	if err != nil {
		return nil, err
	}
	emissions, err := emissionEvents(wl, period, count)
	if err != nil {
		return nil, err
	}
	return &Pulse{id: shortID("pulse"), wl: wl, period: period, emissions: emissions}, nil
}

// emissionEvents walks the worldline accumulating proper time (at rate
// 1/gamma per segment) and records the event of every k*period crossing.
func emissionEvents(wl worldline, period float64, count int) ([]relativity.SpacetimePoint, error) {
	events := make([]relativity.SpacetimePoint, 0, count)
	t := wl.start
	proper := 0.0
	seg := 0
	gamma, err := relativity.Gamma(wl.segments[seg].Velocity)
	if err != nil {
		return nil, err
	}
	for k := 0; k < count; k++ {
		target := float64(k) * period
		for proper < target {
			if seg+1 < len(wl.segments) {
				segEnd := wl.segments[seg+1].Start
				properEnd := proper + (segEnd-t)/gamma
				if properEnd < target {
					t = segEnd
					proper = properEnd
					seg++
					if gamma, err = relativity.Gamma(wl.segments[seg].Velocity); err != nil {
						return nil, err
					}
					continue
				}
			}
			t += (target - proper) * gamma
			proper = target
		}
		events = append(events, wl.eventAt(t))
	}
	return events, nil
}

// ID returns the identity handle of the pulse.
func (p *Pulse) ID() string { return p.id }

// Kind returns KindPulse.
func (p *Pulse) Kind() ShapeKind { return KindPulse }

// Period returns the proper repetition interval.
func (p *Pulse) Period() float64 { return p.period }

// HomeGeometry returns the emitter's event at home time t followed by the
// emission events already in the home-frame past of t.
func (p *Pulse) HomeGeometry(t float64) ([]relativity.SpacetimePoint, bool) {
	if t < p.wl.start {
		return nil, false
	}
	events := []relativity.SpacetimePoint{p.wl.eventAt(t)}
	for _, e := range p.emissions {
		if e.T <= t {
			events = append(events, e)
		}
	}
	return events, true
}

// TransformedGeometry returns the emitter position followed by the flashes
// currently lit in the observer frame. A flash stays visible for half a
// period of observer time after its transformed emission time, pinned at the
// transformed emission position.
func (p *Pulse) TransformedGeometry(observer common.Vector, t float64) (Shape, bool, error) {
	emitter, ok, err := p.wl.transformedVertex(observer, t, common.Vector{})
	if err != nil || !ok {
		return Shape{}, false, err
	}
	points := []common.Vector{emitter}
	for _, e := range p.emissions {
		b, err := relativity.Boost(e, observer)
		if err != nil {
			return Shape{}, false, err
		}
		if t >= b.T && t < b.T+p.period/2 {
			points = append(points, b.Pos())
		}
	}
	return Shape{ID: p.id, Kind: KindPulse, Points: points}, true, nil
}
