package drawpoint

import (
	"fmt"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer].
//
// This is 4 to support cubic Béziers.
const MaxExtrema = 4

// Extremer describes parametrized curves that report their extrema.
type Extremer interface {
	// Extrema computes the extrema of the curve.
	//
	// Only extrema within the interior of the curve count.
	// At most four extrema can be reported, which is sufficient for
	// cubic Béziers.
	//
	// The extrema should be reported in increasing parameter order.
	Extrema() ([MaxExtrema]float64, int)
}

// ExtremaRanges returns parameter ranges, each of which is monotonic within the
// range.
func ExtremaRanges(e Extremer) ([MaxExtrema + 1][2]float64, int) {
	var ret [5][2]float64
	var retN int
	var t0 float64

	ex, n := e.Extrema()
	for _, t := range ex[:n] {
		ret[retN] = [2]float64{t0, t}
		retN++
		t0 = t
	}
	ret[retN] = [2]float64{t0, 1}
	retN++
	return ret, retN
}

// BoundingBox returns the smallest (axis-aligned) rectangle that encloses the
// curve in the range [0, 1].
func BoundingBox(c interface {
	Extremer
	ParametricCurve
}) Rect {
	bbox := NewRectFromPoints(c.Eval(0), c.Eval(1))
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// ParametricCurve describes a curve parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) Point
	// Split the curve at the given parameter.
	SplitCurve(t float64) (ParametricCurve, ParametricCurve)
	// Get a subsegment of the curve for the given parameter range.
	SubsegmentCurve(t0, t1 float64) ParametricCurve
	Start() Point
	End() Point
}

// Curve is a curve segment in drawpoint form: a start point and the
// endpoint the segment arrives at, with the endpoint carrying the control
// points. This type acts as a sort of tagged union over the three degrees
// ([Line], [QuadBez], and [CubicBez]).
type Curve struct {
	// We don't use an interface for Curve because we want {Line, QuadBez,
	// CubicBez}.Split to return pairs of their respective types, not
	// interface values. But we cannot encode that in Go interfaces.
	//
	// This also avoids having to allocate for curves.

	P0 Point
	P1 Endpoint
}

var _ ParametricCurve = Curve{}
var _ Extremer = Curve{}

// Degree returns the curve's degree.
func (c Curve) Degree() Degree {
	return c.P1.Kind
}

// Line returns the line represented by this curve. This is only valid when
// Degree() == Linear.
func (c Curve) Line() Line { return Line{c.P0, c.P1.P} }

// Quad returns the quadratic Bézier represented by this curve. This is only
// valid when Degree() == Quadratic.
func (c Curve) Quad() QuadBez { return QuadBez{c.P0, c.P1.CP1, c.P1.P} }

// Cubic converts the curve to a cubic Bézier, raising the degree as needed.
// This is valid for any degree, and the result evaluates to the same points
// at the same parameters as the original.
func (c Curve) Cubic() CubicBez {
	switch c.P1.Kind {
	case Linear:
		return c.Line().Raise().Raise()
	case Quadratic:
		return c.Quad().Raise()
	case Cubic:
		return CubicBez{c.P0, c.P1.CP1, c.P1.CP2, c.P1.P}
	default:
		return CubicBez{}
	}
}

// Match invokes the callback matching the curve's degree, passing it the
// per-degree value. Exactly one callback is invoked per call.
func (c Curve) Match(linear func(Line), quadratic func(QuadBez), cubic func(CubicBez)) {
	switch c.P1.Kind {
	case Linear:
		linear(c.Line())
	case Quadratic:
		quadratic(c.Quad())
	case Cubic:
		cubic(c.Cubic())
	default:
		panic("drawpoint: invalid curve degree")
	}
}

func (c Curve) Eval(t float64) Point {
	switch c.P1.Kind {
	case Linear:
		return c.Line().Eval(t)
	case Quadratic:
		return c.Quad().Eval(t)
	case Cubic:
		return c.Cubic().Eval(t)
	default:
		return Point{}
	}
}

// Split subdivides the curve at parameter t into two curves of the same
// degree. The left curve ends at the split point and the right one starts
// at it; the two share that point exactly. Parameters outside [0, 1]
// extrapolate.
func (c Curve) Split(t float64) (Curve, Curve) {
	switch c.P1.Kind {
	case Linear:
		l, r := c.Line().Split(t)
		return l.Curve(), r.Curve()
	case Quadratic:
		l, r := c.Quad().Split(t)
		return l.Curve(), r.Curve()
	case Cubic:
		l, r := c.Cubic().Split(t)
		return l.Curve(), r.Curve()
	default:
		panic("drawpoint: invalid curve degree")
	}
}

func (c Curve) SplitCurve(t float64) (ParametricCurve, ParametricCurve) {
	return c.Split(t)
}

func (c Curve) Subdivide() (Curve, Curve) {
	return c.Split(0.5)
}

func (c Curve) Subsegment(t0, t1 float64) Curve {
	switch c.P1.Kind {
	case Linear:
		return c.Line().Subsegment(t0, t1).Curve()
	case Quadratic:
		return c.Quad().Subsegment(t0, t1).Curve()
	case Cubic:
		return c.Cubic().Subsegment(t0, t1).Curve()
	default:
		panic("drawpoint: invalid curve degree")
	}
}

func (c Curve) SubsegmentCurve(t0, t1 float64) ParametricCurve {
	return c.Subsegment(t0, t1)
}

// Raise returns the curve elevated by one degree. The result traces the
// same points at the same parameters. Raising a cubic is not representable
// and panics.
func (c Curve) Raise() Curve {
	switch c.P1.Kind {
	case Linear:
		return c.Line().Raise().Curve()
	case Quadratic:
		return c.Quad().Raise().Curve()
	case Cubic:
		panic("drawpoint: cannot raise a cubic curve")
	default:
		panic("drawpoint: invalid curve degree")
	}
}

// CubicControls returns the curve's two control points as if the curve were
// elevated to a cubic: identity for cubics, one raise for quadratics, two
// raises for lines.
func (c Curve) CubicControls() [2]Point {
	cb := c.Cubic()
	return [2]Point{cb.P1, cb.P2}
}

// Reverse returns a new Curve describing the same path as this one, but
// with the points reversed.
func (c Curve) Reverse() Curve {
	switch c.P1.Kind {
	case Linear:
		return Curve{c.P1.P, LineTo(c.P0)}
	case Quadratic:
		return Curve{c.P1.P, QuadTo(c.P1.CP1, c.P0)}
	case Cubic:
		return Curve{c.P1.P, CubicTo(c.P1.CP2, c.P1.CP1, c.P0)}
	default:
		return c
	}
}

// Translate returns the curve moved by v, control points included.
func (c Curve) Translate(v Vec2) Curve {
	return Curve{c.P0.Translate(v), c.P1.Translate(v)}
}

func (c Curve) Start() Point {
	return c.P0
}

func (c Curve) End() Point {
	return c.P1.P
}

func (c Curve) Extrema() ([MaxExtrema]float64, int) {
	switch c.P1.Kind {
	case Linear:
		return c.Line().Extrema()
	case Quadratic:
		return c.Quad().Extrema()
	case Cubic:
		return c.Cubic().Extrema()
	default:
		return [MaxExtrema]float64{}, 0
	}
}

func (c Curve) BoundingBox() Rect {
	switch c.P1.Kind {
	case Linear:
		return c.Line().BoundingBox()
	case Quadratic:
		return c.Quad().BoundingBox()
	case Cubic:
		return c.Cubic().BoundingBox()
	default:
		return Rect{}
	}
}

func (c Curve) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf()
}

func (c Curve) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN()
}

func (c Curve) String() string {
	return fmt.Sprintf("Curve(%s, %s)", c.P0, c.P1)
}
