package simulation

import (
	"fmt"

	"relativity-sim/internal/common"
	"relativity-sim/internal/relativity"
)

// Line is a rigid rod of a given proper length. Both endpoints ride the
// worldline at proper offsets, contracted in the home frame along the active
// segment's motion direction.
type Line struct {
	id   string
	wl   worldline
	near common.Vector // proper offset of the anchored endpoint
	far  common.Vector // proper offset of the far endpoint
}

// NewLine creates a rod anchored at the given position with the given proper
// length. A horizontal rod extends along +x, a vertical one along +y.
func NewLine(anchor common.Vector, length float64, horizontal bool, velocity common.Vector, start float64, more ...VelocitySegment) (*Line, error) {
	if length <= 0 {
		return nil, fmt.Errorf("line length must be positive, got %g", length)
	}
	far := common.Vector{X: length}
	if !horizontal {
		far = common.Vector{Y: length}
	}
	return newLineWithOffsets(anchor, common.Vector{}, far, velocity, start, more...)
}

// newLineWithOffsets creates a rod whose endpoints sit at arbitrary proper
// offsets from a shared worldline origin. Composite figures use it so every
// limb contracts around the one body worldline.
func newLineWithOffsets(origin, near, far, velocity common.Vector, start float64, more ...VelocitySegment) (*Line, error) {
	wl, err := newWorldline(origin, velocity, start, more...)
	if err != nil {
		return nil, err
	}
	return &Line{id: shortID("line"), wl: wl, near: near, far: far}, nil
}

// ID returns the identity handle of the line.
func (l *Line) ID() string { return l.id }

// Kind returns KindLine.
func (l *Line) Kind() ShapeKind { return KindLine }

// ProperLength returns the rod's rest-frame length.
func (l *Line) ProperLength() float64 { return l.far.Subtract(l.near).Norm() }

// HomeGeometry returns both endpoint events at home time t, simultaneous in
// the home frame and separated by the contracted proper offsets.
func (l *Line) HomeGeometry(t float64) ([]relativity.SpacetimePoint, bool) {
	if t < l.wl.start {
		return nil, false
	}
	base := l.wl.positionAt(t)
	v := l.wl.velocityAt(t)
	a, err := relativity.ContractOffset(l.near, v)
	if err != nil {
		return nil, false
	}
	b, err := relativity.ContractOffset(l.far, v)
	if err != nil {
		return nil, false
	}
	return []relativity.SpacetimePoint{
		relativity.NewSpacetimePoint(base.Add(a), t),
		relativity.NewSpacetimePoint(base.Add(b), t),
	}, true
}

// TransformedGeometry slices both endpoint worldlines at the same observer
// time. The endpoints correspond to different home times, which is exactly
// what produces length contraction and the pole-in-barn resolution.
func (l *Line) TransformedGeometry(observer common.Vector, t float64) (Shape, bool, error) {
	a, ok, err := l.wl.transformedVertex(observer, t, l.near)
	if err != nil || !ok {
		return Shape{}, false, err
	}
	b, ok, err := l.wl.transformedVertex(observer, t, l.far)
	if err != nil || !ok {
		return Shape{}, false, err
	}
	return Shape{ID: l.id, Kind: KindLine, Points: []common.Vector{a, b}}, true, nil
}
