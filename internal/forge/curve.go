package forge

import (
	"fmt"

	"github.com/mesh-intelligence/lumen/pkg/types"
)

// Curve maps t in [0, 1] to a damage multiplier.
type Curve interface {
	Evaluate(t float64) float64
}

// Linear is a linear Bézier curve.
type Linear struct{ A, B float64 }

// Evaluate returns the curve at t.
func (c Linear) Evaluate(t float64) float64 {
	return (1-t)*c.A + t*c.B
}

// Quadratic is a quadratic Bézier curve.
type Quadratic struct{ A, B, C float64 }

// Evaluate returns the curve at t.
func (c Quadratic) Evaluate(t float64) float64 {
	u := 1 - t
	return u*u*c.A + 2*u*t*c.B + t*t*c.C
}

// Cubic is a cubic Bézier curve.
type Cubic struct{ A, B, C, D float64 }

// Evaluate returns the curve at t.
func (c Cubic) Evaluate(t float64) float64 {
	u := 1 - t
	return u*u*u*c.A + 3*u*u*t*c.B + 3*u*t*t*c.C + t*t*t*c.D
}

// NewCurve builds the Curve described by wc.
func NewCurve(wc types.WeaponCurve) (Curve, error) {
	switch wc.Kind {
	case types.CurveLinear:
		return Linear{A: wc.A, B: wc.B}, nil
	case types.CurveQuadratic:
		return Quadratic{A: wc.A, B: wc.B, C: wc.C}, nil
	case types.CurveCubic:
		return Cubic{A: wc.A, B: wc.B, C: wc.C, D: wc.D}, nil
	default:
		return nil, fmt.Errorf("%w: kind %q for %s", types.ErrInvalidCurve, wc.Kind, wc.Type)
	}
}

// Rescale maps value from [oldMin, oldMax] onto [newMin, newMax].
func Rescale(value, oldMin, oldMax, newMin, newMax float64) float64 {
	return (value-oldMin)*(newMax-newMin)/(oldMax-oldMin) + newMin
}

// curveFor returns the curve of the given weapon class.
func curveFor(curves []types.WeaponCurve, wt types.WeaponType) (Curve, error) {
	for _, wc := range curves {
		if wc.Type == wt {
			return NewCurve(wc)
		}
	}
	return nil, fmt.Errorf("%w: %s", types.ErrMissingCurve, wt)
}
