// Package scenarios builds the canonical special-relativity demonstrations
// as ready-to-run simulations: length contraction, loss of simultaneity,
// time dilation, the light clock, the pole-in-barn paradox and the twin
// paradox. Each function returns one Result per observer frame the
// demonstration is meant to be watched from.
package scenarios

import (
	"relativity-sim/internal/common"
	"relativity-sim/internal/relativity"
	"relativity-sim/internal/simulation"
)

// Result is the output of one run plus the presentation hints the renderer
// needs: axis limits as [xmin, xmax, ymin, ymax] and a title.
type Result struct {
	Title     string
	Limits    [4]float64
	Times     []float64
	Snapshots []simulation.FrameSnapshot
}

// LengthContraction shows three rods of proper length 5 at 0.99c, 0.5c and
// -0.5c, watched from the ground frame and from a frame moving at 0.5c.
func LengthContraction() ([]Result, error) {
	sim := simulation.NewSimulation()
	properLength := 5.0
	rods := []common.Vector{
		{X: 0.99},
		{X: 0.5},
		{X: -0.5},
	}
	for i, v := range rods {
		anchor := common.Vector{X: 0, Y: float64(i)}
		if _, err := sim.AddLine(anchor, properLength, true, v, 0); err != nil {
			return nil, err
		}
	}
	return runFrames(sim, 0.1, 0, 10, []frameSpec{
		{"Length Contraction: Ground Frame", common.Vector{}, [4]float64{-5, 10, -2, 3}},
		{"Length Contraction: Frame Moving at 0.5c", common.Vector{X: 0.5}, [4]float64{-5, 10, -2, 3}},
	})
}

// TransverseLength shows that rods perpendicular to the motion keep their
// proper length in every frame.
func TransverseLength() ([]Result, error) {
	sim := simulation.NewSimulation()
	if _, err := sim.AddLine(common.Vector{}, 5, false, common.Vector{}, 0); err != nil {
		return nil, err
	}
	if _, err := sim.AddLine(common.Vector{X: 1}, 5, false, common.Vector{X: -0.5}, 0); err != nil {
		return nil, err
	}
	return runFrames(sim, 0.1, 0, 10, []frameSpec{
		{"No Transverse Length Contraction", common.Vector{}, [4]float64{-5, 10, -2, 7}},
	})
}

// Simultaneity places two events at the same home time but different x
// positions next to a train. In the ground frame they flash together; in
// moving frames the flash at larger x comes first.
func Simultaneity() ([]Result, error) {
	sim := simulation.NewSimulation()
	if _, err := sim.AddEvent(relativity.SpacetimePoint{X: 1, T: 1}); err != nil {
		return nil, err
	}
	if _, err := sim.AddEvent(relativity.SpacetimePoint{X: 5, T: 1}); err != nil {
		return nil, err
	}
	if _, err := sim.AddTrain(common.Vector{X: -1, Y: -1}, 7, 2, common.Vector{}, 0); err != nil {
		return nil, err
	}
	return runFrames(sim, 0.1, 0, 10, []frameSpec{
		{"Simultaneity: Ground Frame", common.Vector{}, [4]float64{-5, 10, -2, 2}},
		{"Simultaneity: Frame Moving at 0.5c in x", common.Vector{X: 0.5}, [4]float64{-5, 10, -2, 2}},
		{"Simultaneity: Frame Moving Diagonally at 0.5c", common.Vector{X: 0.5, Y: 0.5}, [4]float64{-5, 10, -5, 5}},
	})
}

// TimeDilation rides a clock pulsing every 3 proper time units on a train
// moving at 0.8c. In the train frame the clock is normal; from the ground
// it runs slow by gamma.
func TimeDilation() ([]Result, error) {
	sim := simulation.NewSimulation()
	velocity := common.Vector{X: 0.8}
	if _, err := sim.AddPulse(common.Vector{}, 3, 5, velocity, 0); err != nil {
		return nil, err
	}
	if _, err := sim.AddTrain(common.Vector{X: -1, Y: -1}, 2, 2, velocity, 0); err != nil {
		return nil, err
	}
	return runFrames(sim, 0.1, 0, 20, []frameSpec{
		{"Time Dilation: Train Frame", velocity, [4]float64{-20, 20, -5, 5}},
		{"Time Dilation: Ground Frame", common.Vector{}, [4]float64{-20, 20, -5, 5}},
	})
}

// LightClock bounces a photon between reflectors two units apart inside a
// stationary train, watched from the train frame and from a frame moving at
// 0.8c where the zig-zag path dilates the tick.
func LightClock() ([]Result, error) {
	build := func() (*simulation.Simulation, error) {
		sim := simulation.NewSimulation()
		if _, err := sim.AddLightBounce(common.Vector{Y: -1}, 2, common.Vector{}, 0); err != nil {
			return nil, err
		}
		if _, err := sim.AddTrain(common.Vector{X: -1, Y: -1}, 2, 2, common.Vector{}, 0); err != nil {
			return nil, err
		}
		return sim, nil
	}

	restSim, err := build()
	if err != nil {
		return nil, err
	}
	restTimes, restOut, err := restSim.RunSimulationLight(common.Vector{}, 0.1, 0, 12, nil)
	if err != nil {
		return nil, err
	}
	movingSim, err := build()
	if err != nil {
		return nil, err
	}
	movingTimes, movingOut, err := movingSim.RunSimulationLight(common.Vector{X: 0.8}, 0.1, 0, 20, nil)
	if err != nil {
		return nil, err
	}
	return []Result{
		{Title: "Light Clock: Train Frame", Limits: [4]float64{-20, 20, -5, 5}, Times: restTimes, Snapshots: restOut},
		{Title: "Light Clock: Moving Observer (Time Dilated)", Limits: [4]float64{-20, 20, -5, 5}, Times: movingTimes, Snapshots: movingOut},
	}, nil
}

// PoleInBarn runs a pole of proper length 6 at 0.85c through a barn of
// proper length 6 with both doors snapping shut at the same ground-frame
// moment. The ground frame sees the contracted pole fit; the pole frame
// sees a contracted barn whose doors do not close together.
func PoleInBarn() ([]Result, error) {
	sim := simulation.NewSimulation()
	poleVelocity := common.Vector{X: 0.85}
	if _, err := sim.AddPerson(common.Vector{X: -10}, 0.8, poleVelocity, 0); err != nil {
		return nil, err
	}
	if _, err := sim.AddLine(common.Vector{X: -13}, 6, true, poleVelocity, 0); err != nil {
		return nil, err
	}
	// Barn walls at rest, doors dropping at 0.95c.
	if _, err := sim.AddLine(common.Vector{X: -3, Y: -1}, 6, true, common.Vector{}, 0); err != nil {
		return nil, err
	}
	if _, err := sim.AddLine(common.Vector{X: -3, Y: 1}, 6, true, common.Vector{}, 0); err != nil {
		return nil, err
	}
	if _, err := sim.AddLine(common.Vector{X: -3, Y: 5}, 2, false, common.Vector{Y: -0.95}, 0); err != nil {
		return nil, err
	}
	if _, err := sim.AddLine(common.Vector{X: 3, Y: 5}, 2, false, common.Vector{Y: -0.95}, 0); err != nil {
		return nil, err
	}
	return runFrames(sim, 0.1, -10, 30, []frameSpec{
		{"Pole-in-Barn: Ground Frame (Pole fits)", common.Vector{}, [4]float64{-15, 15, -5, 5}},
		{"Pole-in-Barn: Pole Frame (Doors not simultaneous)", poleVelocity, [4]float64{-20, 15, -5, 5}},
	})
}

// TwinParadox sends one twin to a star 8 light-units away at 0.8c and back
// while the other stays home. Both carry clocks pulsing once per proper time
// unit; the traveller turns around halfway and comes home having pulsed
// fewer times.
func TwinParadox() ([]Result, error) {
	distance := 8.0
	speed := 0.8
	total := 2 * distance / speed // 20 ground-frame time units
	gamma, err := relativity.Gamma(common.Vector{X: speed})
	if err != nil {
		return nil, err
	}
	turnaround := simulation.VelocitySegment{Velocity: common.Vector{X: -speed}, Start: total / 2}

	sim := simulation.NewSimulation()
	if _, err := sim.AddPoint(common.Vector{}, common.Vector{}, 0); err != nil {
		return nil, err
	}
	if _, err := sim.AddPoint(common.Vector{X: distance}, common.Vector{}, 0); err != nil {
		return nil, err
	}
	if _, err := sim.AddPulse(common.Vector{}, 1, int(total), common.Vector{}, 0); err != nil {
		return nil, err
	}
	if _, err := sim.AddPulse(common.Vector{}, 1, int(total/gamma), common.Vector{X: speed}, 0, turnaround); err != nil {
		return nil, err
	}
	return runFrames(sim, 0.1, 0, total, []frameSpec{
		{"Twin Paradox: Ground Frame", common.Vector{}, [4]float64{-1, distance + 1, -3, 3}},
	})
}

type frameSpec struct {
	title    string
	observer common.Vector
	limits   [4]float64
}

func runFrames(sim *simulation.Simulation, step, tStart, tEnd float64, specs []frameSpec) ([]Result, error) {
	results := make([]Result, 0, len(specs))
	for _, spec := range specs {
		times, snapshots, err := sim.RunSimulation(spec.observer, step, tStart, tEnd, nil)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{
			Title:     spec.title,
			Limits:    spec.limits,
			Times:     times,
			Snapshots: snapshots,
		})
	}
	return results, nil
}
