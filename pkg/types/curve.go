package types

import "fmt"

// CurveKind selects the Bézier degree of a damage curve.
type CurveKind string

// Curve kinds.
const (
	CurveLinear    CurveKind = "linear"
	CurveQuadratic CurveKind = "quadratic"
	CurveCubic     CurveKind = "cubic"
)

// ParseCurveKind returns the CurveKind for s.
// Returns ErrInvalidCurve if s is not a known kind.
func ParseCurveKind(s string) (CurveKind, error) {
	switch k := CurveKind(s); k {
	case CurveLinear, CurveQuadratic, CurveCubic:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCurve, s)
	}
}

// WeaponCurve maps a weapon class to the control points of its damage
// curve. Linear curves use A and B, quadratic curves A through C.
type WeaponCurve struct {
	Type WeaponType `json:"type"`
	Kind CurveKind  `json:"kind"`
	A    float64    `json:"a"`
	B    float64    `json:"b"`
	C    float64    `json:"c"`
	D    float64    `json:"d"`
}
