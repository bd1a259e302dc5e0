// Package simulation holds the world-object model and the simulation driver.
//
// All objects live in a single shared home frame. Geometry parameters
// (lengths, widths, periods, separations) are proper quantities measured in
// the object's own rest frame; the driver re-expresses worldlines in an
// arbitrary observer frame by transforming endpoint events, so contraction,
// dilation and loss of simultaneity fall out of the transform rather than
// being applied as precomputed scale factors.
package simulation

import (
	"fmt"

	"github.com/google/uuid"

	"relativity-sim/internal/common"
	"relativity-sim/internal/relativity"
)

// ShapeKind identifies how a transformed geometry should be drawn.
type ShapeKind int

const (
	KindPoint ShapeKind = iota
	KindEvent
	KindLine
	KindPolygon
	KindPulse
	KindPhoton
	KindFigure
)

// String returns the kind name for logging.
func (k ShapeKind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindEvent:
		return "event"
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	case KindPulse:
		return "pulse"
	case KindPhoton:
		return "photon"
	case KindFigure:
		return "figure"
	}
	return "unknown"
}

// Shape is the transformed geometry of one object at one observer time.
// It is a derived copy: it never aliases into the stored object.
// Composite objects populate Parts; leaf objects populate Points.
type Shape struct {
	ID     string
	Kind   ShapeKind
	Points []common.Vector
	Parts  []Shape
}

// FrameSnapshot is one output record of a run: the observer-frame time and
// the transformed geometry of every visible object at that time.
type FrameSnapshot struct {
	Time   float64
	Shapes map[string]Shape
}

// WorldObject is the capability interface shared by every simulated entity.
// Implementations are immutable after construction; all sampling methods are
// read-only and safe to call from concurrent runs.
type WorldObject interface {
	// ID returns the unique identity handle of the object.
	ID() string
	// Kind returns the drawing kind of the object's geometry.
	Kind() ShapeKind
	// HomeGeometry returns the endpoint events describing the object's
	// extent at home-frame time t. The bool is false while the object is
	// not yet activated at t.
	HomeGeometry(t float64) ([]relativity.SpacetimePoint, bool)
	// TransformedGeometry returns the object's geometry as measured in the
	// frame of an observer moving at the given velocity, sliced at the
	// requested observer-frame time. The bool is false while the object's
	// transformed activation time lies in the observer's future.
	TransformedGeometry(observer common.Vector, t float64) (Shape, bool, error)
}

// Condition decides whether an object is visible at a simulated instant.
// Custom predicates (light-cone visibility and the like) compose with the
// driver without modifying it.
type Condition func(obj WorldObject, t float64) bool

// TrueCondition accepts every object at every time. It is the default
// visibility predicate.
func TrueCondition(WorldObject, float64) bool {
	return true
}

// VelocitySegment is one piece of a piecewise-inertial worldline: the
// home-frame velocity in effect from Start onward. An object's worldline is
// the ordered sequence of its segments; at home time t the segment in effect
// is the last one with Start <= t, or the initial segment before any apply.
type VelocitySegment struct {
	Velocity common.Vector
	Start    float64
}

// validateSpeed rejects velocities at or beyond the speed of light.
func validateSpeed(v common.Vector) error {
	if _, err := relativity.Gamma(v); err != nil {
		return err
	}
	return nil
}

// shortID builds a readable identity handle like "line-3f2a9c1d".
func shortID(kind string) string {
	return fmt.Sprintf("%s-%s", kind, uuid.NewString()[:8])
}
