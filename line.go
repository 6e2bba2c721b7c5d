package drawpoint

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ ParametricCurve = Line{}
var _ Extremer = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Raise returns a quadratic Bézier segment that exactly represents this
// line. The control point is the midpoint, which preserves the
// parametrization and not merely the traced path.
func (l Line) Raise() QuadBez {
	return QuadBez{l.P0, l.P0.Midpoint(l.P1), l.P1}
}

// Split subdivides the line at parameter t. Both halves share the split
// point.
func (l Line) Split(t float64) (Line, Line) {
	p := l.Eval(t)
	return Line{l.P0, p}, Line{p, l.P1}
}

func (l Line) SplitCurve(t float64) (ParametricCurve, ParametricCurve) {
	return l.Split(t)
}

func (l Line) Subdivide() (Line, Line) {
	return l.Split(0.5)
}

func (l Line) Subsegment(t0, t1 float64) Line {
	return Line{l.Eval(t0), l.Eval(t1)}
}

func (l Line) SubsegmentCurve(t0, t1 float64) ParametricCurve {
	return l.Subsegment(t0, t1)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Extrema() ([MaxExtrema]float64, int) {
	return [MaxExtrema]float64{}, 0
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

// Curve returns the line as a drawpoint curve.
func (l Line) Curve() Curve {
	return Curve{l.P0, LineTo(l.P1)}
}
