package drawpoint

import (
	"math"
)

// Interpolation is a solution to a coordinate query on a curve: a point the
// curve passes through, together with the parameter at which it does.
type Interpolation struct {
	// The "time" on the curve.
	T float64
	// The point on the curve at time T.
	P Point
}

func (in Interpolation) IsInf() bool {
	return math.IsInf(in.T, 0) || in.P.IsInf()
}

func (in Interpolation) IsNaN() bool {
	return math.IsNaN(in.T) || in.P.IsNaN()
}

// SolveForX solves for the points on the segment that have the given X
// coordinate. Times outside of [0, 1] are included. A segment whose X
// coordinate is constant has no isolated solutions and yields none.
func (l Line) SolveForX(x float64) []Interpolation {
	return l.solveForCoord(x, l.P0.X, l.P1.X)
}

// SolveForY solves for the points on the segment that have the given Y
// coordinate. Times outside of [0, 1] are included. A segment whose Y
// coordinate is constant has no isolated solutions and yields none.
func (l Line) SolveForY(y float64) []Interpolation {
	return l.solveForCoord(y, l.P0.Y, l.P1.Y)
}

func (l Line) solveForCoord(v, x0, x1 float64) []Interpolation {
	d := x1 - x0
	if d == 0.0 {
		return nil
	}
	t := (v - x0) / d
	if math.IsNaN(t) {
		return nil
	}
	return []Interpolation{{t, l.Eval(t)}}
}

// SolveForX solves for the points on the quadratic that have the given X
// coordinate. Times outside of [0, 1] are included. A quadratic whose X
// coordinate is constant has no isolated solutions and yields none.
func (q QuadBez) SolveForX(x float64) []Interpolation {
	return q.solveForCoord(x, q.P0.X, q.P1.X, q.P2.X)
}

// SolveForY solves for the points on the quadratic that have the given Y
// coordinate. Times outside of [0, 1] are included. A quadratic whose Y
// coordinate is constant has no isolated solutions and yields none.
func (q QuadBez) SolveForY(y float64) []Interpolation {
	return q.solveForCoord(y, q.P0.Y, q.P1.Y, q.P2.Y)
}

func (q QuadBez) solveForCoord(v, x0, x1, x2 float64) []Interpolation {
	c0, c1, c2 := quadBezCoefficients(x0, x1, x2)
	if c1 == 0.0 && c2 == 0.0 {
		return nil
	}
	roots, n := SolveQuadratic(c0-v, c1, c2)
	out := make([]Interpolation, 0, n)
	for _, t := range roots[:n] {
		if math.IsNaN(t) {
			continue
		}
		out = append(out, Interpolation{t, q.Eval(t)})
	}
	return out
}

// SolveForX solves for the points on the cubic that have the given X
// coordinate. Times outside of [0, 1] are included. A cubic whose X
// coordinate is constant has no isolated solutions and yields none.
func (c CubicBez) SolveForX(x float64) []Interpolation {
	return c.solveForCoord(x, c.P0.X, c.P1.X, c.P2.X, c.P3.X)
}

// SolveForY solves for the points on the cubic that have the given Y
// coordinate. Times outside of [0, 1] are included. A cubic whose Y
// coordinate is constant has no isolated solutions and yields none.
func (c CubicBez) SolveForY(y float64) []Interpolation {
	return c.solveForCoord(y, c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
}

func (c CubicBez) solveForCoord(v, x0, x1, x2, x3 float64) []Interpolation {
	c0, c1, c2, c3 := cubicBezCoefficients(x0, x1, x2, x3)
	if c1 == 0.0 && c2 == 0.0 && c3 == 0.0 {
		return nil
	}
	// SolveCubic falls back to the quadratic solver when the cubic
	// coefficient vanishes, so degenerate cubics still resolve.
	roots, n := SolveCubic(c0-v, c1, c2, c3)
	out := make([]Interpolation, 0, n)
	for _, t := range roots[:n] {
		if math.IsNaN(t) {
			continue
		}
		out = append(out, Interpolation{t, c.Eval(t)})
	}
	return out
}

// SolveForX solves for the points on the curve that have the given X
// coordinate.
func (c Curve) SolveForX(x float64) []Interpolation {
	switch c.P1.Kind {
	case Linear:
		return c.Line().SolveForX(x)
	case Quadratic:
		return c.Quad().SolveForX(x)
	case Cubic:
		return c.Cubic().SolveForX(x)
	default:
		return nil
	}
}

// SolveForY solves for the points on the curve that have the given Y
// coordinate.
func (c Curve) SolveForY(y float64) []Interpolation {
	switch c.P1.Kind {
	case Linear:
		return c.Line().SolveForY(y)
	case Quadratic:
		return c.Quad().SolveForY(y)
	case Cubic:
		return c.Cubic().SolveForY(y)
	default:
		return nil
	}
}

// Interpolate completes a partially specified point on the curve. Exactly
// one coordinate of q must be known; the other is marked free by setting it
// to NaN. The result lists every point on the curve whose known coordinate
// matches the query, including ones at times outside [0, 1]. A query with
// no free coordinate, or with both coordinates free, has no well-defined
// completion and yields none.
func (c Curve) Interpolate(q Point) []Interpolation {
	xFree := math.IsNaN(q.X)
	yFree := math.IsNaN(q.Y)
	switch {
	case yFree && !xFree:
		return c.SolveForX(q.X)
	case xFree && !yFree:
		return c.SolveForY(q.Y)
	default:
		return nil
	}
}
