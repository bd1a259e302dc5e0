package simulation

import (
	"fmt"
	"math"

	"relativity-sim/internal/common"
	"relativity-sim/internal/relativity"
)

// Simulation owns a collection of world objects defined in one shared home
// frame and re-expresses their worldlines from arbitrary observer frames.
// Objects are added before a run and never mutated afterwards; runs are
// read-only over the collection, so runs from several observer frames may
// execute concurrently on one Simulation.
type Simulation struct {
	order   []WorldObject
	objects map[string]WorldObject
}

// NewSimulation creates an empty simulation.
func NewSimulation() *Simulation {
	return &Simulation{objects: make(map[string]WorldObject)}
}

// AddObject adds a prebuilt world object to the simulation. Output order of
// snapshots follows insertion order, which keeps runs deterministic.
func (s *Simulation) AddObject(obj WorldObject) error {
	id := obj.ID()
	if _, exists := s.objects[id]; exists {
		return fmt.Errorf("object with ID %s already exists", id)
	}
	s.objects[id] = obj
	s.order = append(s.order, obj)
	return nil
}

// GetObject returns an object by its ID.
func (s *Simulation) GetObject(id string) (WorldObject, bool) {
	obj, exists := s.objects[id]
	return obj, exists
}

// Objects returns the stored objects in insertion order.
func (s *Simulation) Objects() []WorldObject {
	out := make([]WorldObject, len(s.order))
	copy(out, s.order)
	return out
}

// AddPoint adds a structureless particle. It returns the new object's
// identity handle; on a validation error nothing is added.
func (s *Simulation) AddPoint(pos, velocity common.Vector, start float64, more ...VelocitySegment) (string, error) {
	obj, err := NewPoint(pos, velocity, start, more...)
	if err != nil {
		return "", fmt.Errorf("add point: %w", err)
	}
	return obj.ID(), s.AddObject(obj)
}

// AddEvent adds a single fixed spacetime event.
func (s *Simulation) AddEvent(at relativity.SpacetimePoint) (string, error) {
	obj := NewEvent(at)
	return obj.ID(), s.AddObject(obj)
}

// AddLine adds a rigid rod of the given proper length.
func (s *Simulation) AddLine(anchor common.Vector, length float64, horizontal bool, velocity common.Vector, start float64, more ...VelocitySegment) (string, error) {
	obj, err := NewLine(anchor, length, horizontal, velocity, start, more...)
	if err != nil {
		return "", fmt.Errorf("add line: %w", err)
	}
	return obj.ID(), s.AddObject(obj)
}

// AddTrain adds a rigid rectangle of the given proper dimensions.
func (s *Simulation) AddTrain(anchor common.Vector, width, height float64, velocity common.Vector, start float64, more ...VelocitySegment) (string, error) {
	obj, err := NewTrain(anchor, width, height, velocity, start, more...)
	if err != nil {
		return "", fmt.Errorf("add train: %w", err)
	}
	return obj.ID(), s.AddObject(obj)
}

// AddPulse adds a periodic signal emitter.
func (s *Simulation) AddPulse(pos common.Vector, period float64, count int, velocity common.Vector, start float64, more ...VelocitySegment) (string, error) {
	obj, err := NewPulse(pos, period, count, velocity, start, more...)
	if err != nil {
		return "", fmt.Errorf("add pulse: %w", err)
	}
	return obj.ID(), s.AddObject(obj)
}

// AddPerson adds a composite stick figure.
func (s *Simulation) AddPerson(anchor common.Vector, scale float64, velocity common.Vector, start float64, more ...VelocitySegment) (string, error) {
	obj, err := NewPerson(anchor, scale, velocity, start, more...)
	if err != nil {
		return "", fmt.Errorf("add person: %w", err)
	}
	return obj.ID(), s.AddObject(obj)
}

// AddLightBounce adds a photon bouncing between two reflectors.
func (s *Simulation) AddLightBounce(anchor common.Vector, separation float64, velocity common.Vector, start float64) (string, error) {
	obj, err := NewLightBounce(anchor, separation, velocity, start)
	if err != nil {
		return "", fmt.Errorf("add light bounce: %w", err)
	}
	return obj.ID(), s.AddObject(obj)
}

// RunSimulation produces evenly spaced observer-frame times from tStart to
// tEnd (inclusive) and one snapshot per time holding every visible object's
// transformed geometry, filtered through the visibility condition (nil means
// accept everything). Photon objects are excluded; RunSimulationLight
// includes them. Parameter errors are reported before any computation and
// no partial output is returned.
func (s *Simulation) RunSimulation(observer common.Vector, step, tStart, tEnd float64, cond Condition) ([]float64, []FrameSnapshot, error) {
	return s.run(observer, step, tStart, tEnd, cond, false)
}

// RunSimulationLight is the analog of RunSimulation for light-propagation
// worldlines: the same contract, with photon objects included.
func (s *Simulation) RunSimulationLight(observer common.Vector, step, tStart, tEnd float64, cond Condition) ([]float64, []FrameSnapshot, error) {
	return s.run(observer, step, tStart, tEnd, cond, true)
}

func (s *Simulation) run(observer common.Vector, step, tStart, tEnd float64, cond Condition, includeLight bool) ([]float64, []FrameSnapshot, error) {
	if step <= 0 {
		return nil, nil, fmt.Errorf("step must be positive, got %g", step)
	}
	if tEnd < tStart {
		return nil, nil, fmt.Errorf("time window is reversed: tEnd %g < tStart %g", tEnd, tStart)
	}
	if _, err := relativity.Gamma(observer); err != nil {
		return nil, nil, fmt.Errorf("observer frame: %w", err)
	}
	if cond == nil {
		cond = TrueCondition
	}
	// The tolerance keeps tEnd itself in the output when the window is an
	// exact multiple of step despite float rounding.
	steps := int(math.Floor((tEnd-tStart)/step+1e-9)) + 1
	times := make([]float64, 0, steps)
	snapshots := make([]FrameSnapshot, 0, steps)
	for i := 0; i < steps; i++ {
		t := tStart + float64(i)*step
		snapshot := FrameSnapshot{Time: t, Shapes: make(map[string]Shape)}
		for _, obj := range s.order {
			if _, isLight := obj.(*LightBounce); isLight && !includeLight {
				continue
			}
			shape, active, err := obj.TransformedGeometry(observer, t)
			if err != nil {
				return nil, nil, fmt.Errorf("object %s at t=%g: %w", obj.ID(), t, err)
			}
			if !active || !cond(obj, t) {
				continue
			}
			snapshot.Shapes[obj.ID()] = shape
		}
		times = append(times, t)
		snapshots = append(snapshots, snapshot)
	}
	return times, snapshots, nil
}
