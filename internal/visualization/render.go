// Package visualization consumes run output: it plays snapshot sequences
// back as an animation and draws Minkowski-style worldline diagrams. It
// depends only on the (times, snapshots) contract, never on live object
// state.
package visualization

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"relativity-sim/internal/common"
	"relativity-sim/internal/simulation"
)

const (
	pointRadius   = 4.0
	eventRadius   = 6.0
	flashRadius   = 9.0
	strokeWidth   = 2.0
	padding       = 40.0
	ticksPerFrame = 3 // playback speed at 60 TPS
)

var (
	backgroundColor = color.RGBA{230, 230, 230, 255}
	shapeColor      = color.RGBA{30, 30, 120, 255}
	eventColor      = color.RGBA{220, 40, 40, 255}
	flashColor      = color.RGBA{240, 160, 0, 255}
	photonColor     = color.RGBA{200, 170, 0, 255}
)

// Player implements ebiten.Game and steps through a precomputed snapshot
// sequence, one simulation frame every few ticks, looping at the end.
type Player struct {
	title     string
	limits    [4]float64 // xmin, xmax, ymin, ymax in simulation coordinates
	times     []float64
	snapshots []simulation.FrameSnapshot

	frame int
	tick  int

	screenWidth  int
	screenHeight int
}

// NewPlayer creates a playback game over a run's output. The limits fix the
// visible region as [xmin, xmax, ymin, ymax].
func NewPlayer(title string, limits [4]float64, times []float64, snapshots []simulation.FrameSnapshot) *Player {
	return &Player{title: title, limits: limits, times: times, snapshots: snapshots}
}

// Update advances the playback position.
func (p *Player) Update() error {
	if len(p.snapshots) == 0 {
		return nil
	}
	p.tick++
	if p.tick >= ticksPerFrame {
		p.tick = 0
		p.frame = (p.frame + 1) % len(p.snapshots)
	}
	return nil
}

// worldToScreen maps simulation coordinates onto the screen, preserving the
// aspect ratio and centering the limit box.
func (p *Player) worldToScreen(pos common.Vector) (float32, float32) {
	worldWidth := p.limits[1] - p.limits[0]
	worldHeight := p.limits[3] - p.limits[2]
	if worldWidth <= 0 {
		worldWidth = 1
	}
	if worldHeight <= 0 {
		worldHeight = 1
	}
	scaleX := (float64(p.screenWidth) - 2*padding) / worldWidth
	scaleY := (float64(p.screenHeight) - 2*padding) / worldHeight
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	centerX := (p.limits[0] + p.limits[1]) / 2
	centerY := (p.limits[2] + p.limits[3]) / 2
	sx := (pos.X-centerX)*scale + float64(p.screenWidth)/2
	// Ebiten's y axis points down.
	sy := float64(p.screenHeight)/2 - (pos.Y-centerY)*scale
	return float32(sx), float32(sy)
}

// Draw renders the current snapshot.
func (p *Player) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if len(p.snapshots) == 0 {
		ebitenutil.DebugPrint(screen, "no snapshots")
		return
	}
	snapshot := p.snapshots[p.frame]
	for _, shape := range snapshot.Shapes {
		p.drawShape(screen, shape)
	}
	msg := fmt.Sprintf("%s\nt = %.2f (frame %d/%d)", p.title, snapshot.Time, p.frame+1, len(p.snapshots))
	ebitenutil.DebugPrint(screen, msg)
}

func (p *Player) drawShape(screen *ebiten.Image, shape simulation.Shape) {
	for _, part := range shape.Parts {
		p.drawShape(screen, part)
	}
	if len(shape.Points) == 0 {
		return
	}
	switch shape.Kind {
	case simulation.KindPoint:
		x, y := p.worldToScreen(shape.Points[0])
		vector.DrawFilledCircle(screen, x, y, pointRadius, shapeColor, true)
	case simulation.KindEvent:
		x, y := p.worldToScreen(shape.Points[0])
		vector.DrawFilledCircle(screen, x, y, eventRadius, eventColor, true)
	case simulation.KindLine:
		p.strokePath(screen, shape.Points, false)
	case simulation.KindPolygon:
		p.strokePath(screen, shape.Points, true)
	case simulation.KindPulse:
		x, y := p.worldToScreen(shape.Points[0])
		vector.DrawFilledCircle(screen, x, y, pointRadius, shapeColor, true)
		for _, flash := range shape.Points[1:] {
			fx, fy := p.worldToScreen(flash)
			vector.StrokeCircle(screen, fx, fy, flashRadius, strokeWidth, flashColor, true)
		}
	case simulation.KindPhoton:
		x, y := p.worldToScreen(shape.Points[0])
		vector.DrawFilledCircle(screen, x, y, eventRadius, photonColor, true)
		for _, reflector := range shape.Points[1:] {
			rx, ry := p.worldToScreen(reflector)
			vector.StrokeLine(screen, rx-6, ry, rx+6, ry, strokeWidth, shapeColor, true)
		}
	}
}

func (p *Player) strokePath(screen *ebiten.Image, points []common.Vector, closed bool) {
	if len(points) < 2 {
		return
	}
	for i := 0; i+1 < len(points); i++ {
		x0, y0 := p.worldToScreen(points[i])
		x1, y1 := p.worldToScreen(points[i+1])
		vector.StrokeLine(screen, x0, y0, x1, y1, strokeWidth, shapeColor, true)
	}
	if closed {
		x0, y0 := p.worldToScreen(points[len(points)-1])
		x1, y1 := p.worldToScreen(points[0])
		vector.StrokeLine(screen, x0, y0, x1, y1, strokeWidth, shapeColor, true)
	}
}

// Layout reports the logical screen size.
func (p *Player) Layout(outsideWidth, outsideHeight int) (int, int) {
	p.screenWidth = outsideWidth
	p.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}
