package drawpoint

import (
	"fmt"
)

// Degree identifies the polynomial degree of a curve segment.
type Degree int

const (
	// A straight line segment.
	Linear Degree = iota + 1
	// A quadratic Bézier segment with one control point.
	Quadratic
	// A cubic Bézier segment with two control points.
	Cubic
)

func (d Degree) String() string {
	switch d {
	case Linear:
		return "Linear"
	case Quadratic:
		return "Quadratic"
	case Cubic:
		return "Cubic"
	default:
		return "InvalidDegree"
	}
}

// Endpoint is a drawpoint: the point a curve segment arrives at, together
// with the control points that shape the segment. The degree is fixed at
// construction by [LineTo], [QuadTo], or [CubicTo]; it is never inferred
// from which control points happen to be set.
//
// For quadratic endpoints only CP1 is meaningful. For cubic endpoints CP1
// is the control point nearer the segment's start and CP2 the one nearer
// its end. P is always the plain on-curve point.
type Endpoint struct {
	Kind Degree
	P    Point
	CP1  Point
	CP2  Point
}

// LineTo returns a linear endpoint at p.
func LineTo(p Point) Endpoint {
	return Endpoint{Kind: Linear, P: p}
}

// QuadTo returns a quadratic endpoint at p with control point cp1.
func QuadTo(cp1, p Point) Endpoint {
	return Endpoint{Kind: Quadratic, P: p, CP1: cp1}
}

// CubicTo returns a cubic endpoint at p with control points cp1 and cp2.
func CubicTo(cp1, cp2, p Point) Endpoint {
	return Endpoint{Kind: Cubic, P: p, CP1: cp1, CP2: cp2}
}

func (e Endpoint) String() string {
	switch e.Kind {
	case Linear:
		return fmt.Sprintf("LineTo(%s)", e.P)
	case Quadratic:
		return fmt.Sprintf("QuadTo(%s, %s)", e.CP1, e.P)
	case Cubic:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", e.CP1, e.CP2, e.P)
	default:
		return fmt.Sprintf("InvalidEndpoint(%s)", e.P)
	}
}

// Translate returns the endpoint moved by v, control points included.
func (e Endpoint) Translate(v Vec2) Endpoint {
	switch e.Kind {
	case Linear:
		return LineTo(e.P.Translate(v))
	case Quadratic:
		return QuadTo(e.CP1.Translate(v), e.P.Translate(v))
	case Cubic:
		return CubicTo(e.CP1.Translate(v), e.CP2.Translate(v), e.P.Translate(v))
	default:
		return e
	}
}

// SmoothControl returns the control point that continues the curve smoothly
// past its end: the reflection of the last control point about the end
// point, as used by the smooth curve-to commands in SVG. A linear endpoint
// carries no control point to reflect; asking for its smooth control is a
// caller error.
func (e Endpoint) SmoothControl() Point {
	switch e.Kind {
	case Linear:
		panic("drawpoint: linear endpoint has no control point")
	case Quadratic:
		return e.P.Translate(e.P.Sub(e.CP1))
	case Cubic:
		return e.P.Translate(e.P.Sub(e.CP2))
	default:
		panic("drawpoint: invalid endpoint")
	}
}

func (e Endpoint) IsInf() bool {
	return e.P.IsInf() || e.CP1.IsInf() || e.CP2.IsInf()
}

func (e Endpoint) IsNaN() bool {
	return e.P.IsNaN() || e.CP1.IsNaN() || e.CP2.IsNaN()
}
