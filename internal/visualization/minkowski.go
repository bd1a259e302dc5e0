package visualization

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"relativity-sim/internal/common"
	"relativity-sim/internal/simulation"
)

// Minkowski renders a worldline diagram of a run: the x coordinate of every
// object's leading vertex against the observer-frame time, one line per
// object, saved as a PNG. It reads nothing but the run output, so diagrams
// of the same object set from different observer frames can be compared
// directly.
func Minkowski(times []float64, snapshots []simulation.FrameSnapshot, title, path string) error {
	if len(times) != len(snapshots) {
		return fmt.Errorf("times and snapshots lengths differ: %d != %d", len(times), len(snapshots))
	}
	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "t"

	series := make(map[string]plotter.XYs)
	for i, snapshot := range snapshots {
		for id, shape := range snapshot.Shapes {
			pt := leadingVertex(shape)
			if pt == nil {
				continue
			}
			series[id] = append(series[id], plotter.XY{X: pt.X, Y: times[i]})
		}
	}

	// Deterministic legend and color assignment.
	ids := make([]string, 0, len(series))
	for id := range series {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for i, id := range ids {
		line, err := plotter.NewLine(series[id])
		if err != nil {
			return fmt.Errorf("worldline for %s: %w", id, err)
		}
		line.Color = plotter.DefaultLineStyle.Color
		line.Width = vg.Points(1.5)
		line.Dashes = plotutil.DefaultDashes[i%len(plotutil.DefaultDashes)]
		pl.Add(line)
		pl.Legend.Add(id, line)
	}
	pl.Legend.Top = true

	if err := pl.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save diagram: %w", err)
	}
	return nil
}

// leadingVertex picks the first drawable point of a shape, descending into
// composite parts.
func leadingVertex(shape simulation.Shape) *common.Vector {
	if len(shape.Points) > 0 {
		pt := shape.Points[0]
		return &pt
	}
	for _, part := range shape.Parts {
		if pt := leadingVertex(part); pt != nil {
			return pt
		}
	}
	return nil
}
