package simulation

import (
	"fmt"

	"relativity-sim/internal/common"
	"relativity-sim/internal/relativity"
)

// Train is a rigid rectangle of proper width and height, anchored at its
// lower-left corner. All four corners ride the same worldline at their
// proper offsets.
type Train struct {
	id      string
	wl      worldline
	corners [4]common.Vector // proper corner offsets, counter-clockwise
}

// NewTrain creates a rectangle of the given proper dimensions.
func NewTrain(anchor common.Vector, width, height float64, velocity common.Vector, start float64, more ...VelocitySegment) (*Train, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("train dimensions must be positive, got %gx%g", width, height)
	}
	wl, err := newWorldline(anchor, velocity, start, more...)
	if err != nil {
		return nil, err
	}
	return &Train{
		id: shortID("train"),
		wl: wl,
		corners: [4]common.Vector{
			{},
			{X: width},
			{X: width, Y: height},
			{Y: height},
		},
	}, nil
}

// ID returns the identity handle of the train.
func (tr *Train) ID() string { return tr.id }

// Kind returns KindPolygon.
func (tr *Train) Kind() ShapeKind { return KindPolygon }

// HomeGeometry returns the four corner events at home time t.
func (tr *Train) HomeGeometry(t float64) ([]relativity.SpacetimePoint, bool) {
	if t < tr.wl.start {
		return nil, false
	}
	base := tr.wl.positionAt(t)
	v := tr.wl.velocityAt(t)
	events := make([]relativity.SpacetimePoint, 0, len(tr.corners))
	for _, corner := range tr.corners {
		off, err := relativity.ContractOffset(corner, v)
		if err != nil {
			return nil, false
		}
		events = append(events, relativity.NewSpacetimePoint(base.Add(off), t))
	}
	return events, true
}

// TransformedGeometry slices each corner worldline at the observer time.
func (tr *Train) TransformedGeometry(observer common.Vector, t float64) (Shape, bool, error) {
	points := make([]common.Vector, 0, len(tr.corners))
	for _, corner := range tr.corners {
		pos, ok, err := tr.wl.transformedVertex(observer, t, corner)
		if err != nil || !ok {
			return Shape{}, false, err
		}
		points = append(points, pos)
	}
	return Shape{ID: tr.id, Kind: KindPolygon, Points: points}, true, nil
}
