package simulation

import (
	"fmt"

	"relativity-sim/internal/common"
	"relativity-sim/internal/relativity"
)

// Person is a composite stick figure: a head point plus body, arm and leg
// rods sharing one worldline. It delegates all sampling to its children and
// composes their shapes.
type Person struct {
	id    string
	head  *Point
	limbs []*Line
}

// NewPerson creates a stick figure standing at the anchor (feet level) with
// the given proper height scale.
func NewPerson(anchor common.Vector, scale float64, velocity common.Vector, start float64, more ...VelocitySegment) (*Person, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("person scale must be positive, got %g", scale)
	}
	off := func(dx, dy float64) common.Vector {
		return common.Vector{X: dx * scale, Y: dy * scale}
	}
	head, err := newPointWithOffset(anchor, off(0, 2.2), velocity, start, more...)
	if err != nil {
		return nil, err
	}
	// Every joint is a proper offset (in units of scale) from the shared
	// body worldline anchored at the feet: hip at (0,1), neck at (0,2),
	// shoulders at (0,1.8), feet at (+-0.5,0), hands at (+-0.5,1.2).
	limbSpecs := []struct {
		near common.Vector
		far  common.Vector
	}{
		{off(0, 1), off(0, 2)},        // torso
		{off(0, 1), off(-0.5, 0)},     // left leg
		{off(0, 1), off(0.5, 0)},      // right leg
		{off(0, 1.8), off(-0.5, 1.2)}, // left arm
		{off(0, 1.8), off(0.5, 1.2)},  // right arm
	}
	limbs := make([]*Line, 0, len(limbSpecs))
	for _, spec := range limbSpecs {
		limb, err := newLineWithOffsets(anchor, spec.near, spec.far, velocity, start, more...)
		if err != nil {
			return nil, err
		}
		limbs = append(limbs, limb)
	}
	return &Person{id: shortID("person"), head: head, limbs: limbs}, nil
}

// ID returns the identity handle of the person.
func (p *Person) ID() string { return p.id }

// Kind returns KindFigure.
func (p *Person) Kind() ShapeKind { return KindFigure }

// HomeGeometry concatenates the children's events at home time t.
func (p *Person) HomeGeometry(t float64) ([]relativity.SpacetimePoint, bool) {
	events, ok := p.head.HomeGeometry(t)
	if !ok {
		return nil, false
	}
	for _, limb := range p.limbs {
		sub, ok := limb.HomeGeometry(t)
		if !ok {
			return nil, false
		}
		events = append(events, sub...)
	}
	return events, true
}

// TransformedGeometry composes the children's transformed shapes.
func (p *Person) TransformedGeometry(observer common.Vector, t float64) (Shape, bool, error) {
	parts := make([]Shape, 0, 1+len(p.limbs))
	headShape, ok, err := p.head.TransformedGeometry(observer, t)
	if err != nil || !ok {
		return Shape{}, false, err
	}
	parts = append(parts, headShape)
	for _, limb := range p.limbs {
		sub, ok, err := limb.TransformedGeometry(observer, t)
		if err != nil || !ok {
			return Shape{}, false, err
		}
		parts = append(parts, sub)
	}
	return Shape{ID: p.id, Kind: KindFigure, Parts: parts}, true, nil
}
