// Package relativity implements the Lorentz transformation machinery for
// flat 2+1D spacetime: the Lorentz factor, the general (not axis-aligned)
// boost of a spacetime event, and relativistic velocity composition.
//
// All velocities are fractions of the speed of light, so c = 1 throughout
// and the speed of light is an unreachable upper bound.
package relativity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"relativity-sim/internal/common"
)

// SpacetimePoint is an event: a spatial position (X, Y) at time T, all
// measured in a single reference frame.
type SpacetimePoint struct {
	X float64
	Y float64
	T float64
}

// NewSpacetimePoint creates an event from a spatial position and a time.
func NewSpacetimePoint(pos common.Vector, t float64) SpacetimePoint {
	return SpacetimePoint{X: pos.X, Y: pos.Y, T: t}
}

// Pos returns the spatial part of the event.
func (p SpacetimePoint) Pos() common.Vector {
	return common.Vector{X: p.X, Y: p.Y}
}

// String returns a compact representation for logging.
func (p SpacetimePoint) String() string {
	return fmt.Sprintf("(x=%.3f, y=%.3f, t=%.3f)", p.X, p.Y, p.T)
}

// Gamma computes the Lorentz factor 1/sqrt(1 - |v|^2) for a velocity v.
// It returns a domain error when |v| >= 1: no massive frame reaches light speed.
// Gamma of the zero velocity is exactly 1.
func Gamma(v common.Vector) (float64, error) {
	betaSq := v.NormSq()
	if betaSq >= 1 {
		return 0, fmt.Errorf("superluminal velocity %s: |v| must be < 1", v)
	}
	return 1 / math.Sqrt(1-betaSq), nil
}

// BoostMatrix builds the 3x3 Lorentz boost acting on column events (x, y, t)
// for an observer moving at velocity v relative to the home frame. The spatial
// component parallel to v mixes with time through gamma; the perpendicular
// component is unchanged. For v = (0, 0) the result is the exact identity.
func BoostMatrix(v common.Vector) (*mat.Dense, error) {
	g, err := Gamma(v)
	if err != nil {
		return nil, err
	}
	betaSq := v.NormSq()
	if betaSq == 0 {
		return mat.NewDense(3, 3, []float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		}), nil
	}
	// Row-major entries of the symmetric boost:
	//   x' = (1 + (g-1) vx^2/b^2) x + ((g-1) vx vy/b^2) y - g vx t
	//   y' = ((g-1) vx vy/b^2) x + (1 + (g-1) vy^2/b^2) y - g vy t
	//   t' = -g vx x - g vy y + g t
	k := (g - 1) / betaSq
	data := []float64{
		1 + k*v.X*v.X, k * v.X * v.Y, -g * v.X,
		k * v.X * v.Y, 1 + k*v.Y*v.Y, -g * v.Y,
		-g * v.X, -g * v.Y, g,
	}
	return mat.NewDense(3, 3, data), nil
}

// Boost transforms the event p, given in the home frame, into the frame of an
// observer moving at velocity v relative to home.
func Boost(p SpacetimePoint, v common.Vector) (SpacetimePoint, error) {
	boost, err := BoostMatrix(v)
	if err != nil {
		return SpacetimePoint{}, err
	}
	var out mat.VecDense
	out.MulVec(boost, mat.NewVecDense(3, []float64{p.X, p.Y, p.T}))
	return SpacetimePoint{X: out.AtVec(0), Y: out.AtVec(1), T: out.AtVec(2)}, nil
}

// AddVelocities computes the velocity of an object moving at u in the home
// frame as measured by an observer moving at v, using the relativistic
// velocity-addition formula. The components of u parallel and perpendicular
// to v transform differently:
//
//	u'_par  = (u_par - v) / (1 - u.v)
//	u'_perp = u_perp / (gamma(v) * (1 - u.v))
//
// Naive vector subtraction is wrong at relativistic speeds and can exceed the
// light-speed bound; this composition keeps |result| < 1 whenever |u| < 1.
func AddVelocities(u, v common.Vector) (common.Vector, error) {
	g, err := Gamma(v)
	if err != nil {
		return common.Vector{}, err
	}
	if v.IsZero() {
		return u, nil
	}
	denom := 1 - u.Dot(v)
	par, perp := u.Decompose(v)
	outPar := par.Subtract(v).MultiplyByScalar(1 / denom)
	outPerp := perp.MultiplyByScalar(1 / (g * denom))
	return outPar.Add(outPerp), nil
}

// ContractOffset maps a proper (rest-frame) spatial offset onto the home
// frame for a structure moving at velocity v: the component of the offset
// along the motion contracts by 1/gamma, the transverse component is
// unaffected. It is used to lay out rigid geometry in the home frame at a
// fixed home time; observer-frame geometry is never produced this way but by
// transforming the endpoint events themselves.
func ContractOffset(offset, v common.Vector) (common.Vector, error) {
	g, err := Gamma(v)
	if err != nil {
		return common.Vector{}, err
	}
	if v.IsZero() {
		return offset, nil
	}
	par, perp := offset.Decompose(v)
	return par.MultiplyByScalar(1 / g).Add(perp), nil
}
