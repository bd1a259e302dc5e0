package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relativity-sim/internal/common"
)

func TestNewTrainValidation(t *testing.T) {
	t.Parallel()

	_, err := NewTrain(common.Vector{}, 0, 2, common.Vector{}, 0)
	assert.Error(t, err)
	_, err = NewTrain(common.Vector{}, 2, -1, common.Vector{}, 0)
	assert.Error(t, err)
}

func TestTrainContractsAlongMotionOnly(t *testing.T) {
	t.Parallel()

	// Proper 4x2 rectangle at 0.8c in x: the home frame sees width 4*0.6
	// with the height untouched.
	train, err := NewTrain(common.Vector{X: -2, Y: -1}, 4, 2, common.Vector{X: 0.8}, 0)
	require.NoError(t, err)

	events, ok := train.HomeGeometry(0)
	require.True(t, ok)
	require.Len(t, events, 4)
	assert.InDelta(t, 4*0.6, events[1].X-events[0].X, 1e-12)
	assert.InDelta(t, 2.0, events[3].Y-events[0].Y, 1e-12)

	shape, ok, err := train.TransformedGeometry(common.Vector{}, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, shape.Points, 4)
	assert.InDelta(t, 4*0.6, shape.Points[1].X-shape.Points[0].X, 1e-9)
	assert.InDelta(t, 2.0, shape.Points[3].Y-shape.Points[0].Y, 1e-9)
}

func TestTrainProperShapeInCoMovingFrame(t *testing.T) {
	t.Parallel()

	velocity := common.Vector{X: 0.8}
	train, err := NewTrain(common.Vector{}, 4, 2, velocity, 0)
	require.NoError(t, err)

	shape, ok, err := train.TransformedGeometry(velocity, 5)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 4.0, shape.Points[1].X-shape.Points[0].X, 1e-9)
	assert.InDelta(t, 2.0, shape.Points[2].Y-shape.Points[1].Y, 1e-9)
}

func TestPersonComposition(t *testing.T) {
	t.Parallel()

	person, err := NewPerson(common.Vector{X: 1}, 1, common.Vector{}, 0)
	require.NoError(t, err)

	_, err = NewPerson(common.Vector{}, 0, common.Vector{}, 0)
	assert.Error(t, err, "non-positive scale is a construction error")

	shape, ok, err := person.TransformedGeometry(common.Vector{}, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, KindFigure, shape.Kind)
	require.Len(t, shape.Parts, 6, "head plus five limbs")
	assert.Equal(t, KindPoint, shape.Parts[0].Kind)
	for _, limb := range shape.Parts[1:] {
		assert.Equal(t, KindLine, limb.Kind)
	}

	// The head sits above the anchor at rest.
	head := shape.Parts[0].Points[0]
	assert.InDelta(t, 1.0, head.X, 1e-12)
	assert.InDelta(t, 2.2, head.Y, 1e-12)
}

func TestPersonContractsAsOneBody(t *testing.T) {
	t.Parallel()

	velocity := common.Vector{X: 0.8}
	person, err := NewPerson(common.Vector{}, 1, velocity, 0)
	require.NoError(t, err)

	shape, ok, err := person.TransformedGeometry(common.Vector{}, 0)
	require.NoError(t, err)
	require.True(t, ok)

	// Left and right legs splay +-0.5 from the hip in the rest frame; in
	// the home frame the spread contracts to 0.6 of that.
	leftFoot := shape.Parts[2].Points[1]
	rightFoot := shape.Parts[3].Points[1]
	assert.InDelta(t, 2*0.5*0.6, rightFoot.X-leftFoot.X, 1e-9)
	assert.InDelta(t, leftFoot.Y, rightFoot.Y, 1e-9)

	coShape, ok, err := person.TransformedGeometry(velocity, 5)
	require.NoError(t, err)
	require.True(t, ok)
	coLeft := coShape.Parts[2].Points[1]
	coRight := coShape.Parts[3].Points[1]
	assert.InDelta(t, 1.0, coRight.X-coLeft.X, 1e-9, "proper splay recovered")
}

func TestPersonContractsAlongVerticalMotion(t *testing.T) {
	t.Parallel()

	velocity := common.Vector{Y: 0.8}
	person, err := NewPerson(common.Vector{}, 1, velocity, 0)
	require.NoError(t, err)

	shape, ok, err := person.TransformedGeometry(common.Vector{}, 0)
	require.NoError(t, err)
	require.True(t, ok)

	// Moving upward at 0.8c the whole figure squashes vertically by 0.6:
	// head, hip and shoulders included, not just the limb vectors.
	head := shape.Parts[0].Points[0]
	assert.InDelta(t, 2.2*0.6, head.Y, 1e-9)
	torso := shape.Parts[1]
	assert.InDelta(t, 1*0.6, torso.Points[0].Y, 1e-9)
	assert.InDelta(t, 2*0.6, torso.Points[1].Y, 1e-9)
	leftFoot := shape.Parts[2].Points[1]
	assert.InDelta(t, -0.5, leftFoot.X, 1e-9, "transverse spread keeps its proper size")
	assert.InDelta(t, 0, leftFoot.Y, 1e-9)

	coShape, ok, err := person.TransformedGeometry(velocity, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 2.2, coShape.Parts[0].Points[0].Y, 1e-9, "co-moving head at proper height")
	assert.InDelta(t, 1.0, coShape.Parts[1].Points[1].Y-coShape.Parts[1].Points[0].Y, 1e-9)
}

func TestShapeKindStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "point", KindPoint.String())
	assert.Equal(t, "figure", KindFigure.String())
	assert.Equal(t, "unknown", ShapeKind(99).String())
}
