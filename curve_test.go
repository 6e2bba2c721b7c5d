package drawpoint

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCurveAccessors(t *testing.T) {
	l := Curve{Pt(0.0, 0.0), LineTo(Pt(1.0, 2.0))}
	if l.Degree() != Linear {
		t.Errorf("got degree %s, want %s", l.Degree(), Linear)
	}
	diff(t, Line{Pt(0.0, 0.0), Pt(1.0, 2.0)}, l.Line())

	q := Curve{Pt(0.0, 0.0), QuadTo(Pt(5.0, 10.0), Pt(10.0, 0.0))}
	if q.Degree() != Quadratic {
		t.Errorf("got degree %s, want %s", q.Degree(), Quadratic)
	}
	diff(t, QuadBez{Pt(0.0, 0.0), Pt(5.0, 10.0), Pt(10.0, 0.0)}, q.Quad())

	cb := Curve{Pt(0.0, 0.0), CubicTo(Pt(1.0, 2.0), Pt(3.0, -1.0), Pt(4.0, 1.0))}
	if cb.Degree() != Cubic {
		t.Errorf("got degree %s, want %s", cb.Degree(), Cubic)
	}
	diff(t, CubicBez{Pt(0.0, 0.0), Pt(1.0, 2.0), Pt(3.0, -1.0), Pt(4.0, 1.0)}, cb.Cubic())

	// Round-tripping through the per-degree types preserves the curve.
	diff(t, l, l.Line().Curve())
	diff(t, q, q.Quad().Curve())
	diff(t, cb, cb.Cubic().Curve())
}

func TestCurveMatch(t *testing.T) {
	verify := func(c Curve, want Degree) {
		t.Helper()
		calls := 0
		c.Match(
			func(l Line) {
				calls++
				if want != Linear {
					t.Errorf("%s matched as a line", c)
				}
				diff(t, c.Eval(0.5), l.Eval(0.5), pointComparer)
			},
			func(q QuadBez) {
				calls++
				if want != Quadratic {
					t.Errorf("%s matched as a quadratic", c)
				}
				diff(t, c.Eval(0.5), q.Eval(0.5), pointComparer)
			},
			func(cb CubicBez) {
				calls++
				if want != Cubic {
					t.Errorf("%s matched as a cubic", c)
				}
				diff(t, c.Eval(0.5), cb.Eval(0.5), pointComparer)
			},
		)
		if calls != 1 {
			t.Errorf("got %d calls for %s, want exactly 1", calls, c)
		}
	}

	verify(Curve{Pt(0.0, 0.0), LineTo(Pt(1.0, 2.0))}, Linear)
	verify(Curve{Pt(0.0, 0.0), QuadTo(Pt(5.0, 10.0), Pt(10.0, 0.0))}, Quadratic)
	verify(Curve{Pt(0.0, 0.0), CubicTo(Pt(1.0, 2.0), Pt(3.0, -1.0), Pt(4.0, 1.0))}, Cubic)
}

func TestCurveEval(t *testing.T) {
	q := Curve{Pt(0.0, 0.0), QuadTo(Pt(5.0, 10.0), Pt(10.0, 0.0))}
	diff(t, Pt(0.0, 0.0), q.Eval(0.0))
	diff(t, Pt(5.0, 5.0), q.Eval(0.5))
	diff(t, Pt(10.0, 0.0), q.Eval(1.0))

	l := Curve{Pt(1.0, 2.0), LineTo(Pt(9.0, -6.0))}
	diff(t, Pt(5.0, -2.0), l.Eval(0.5))

	cb := Curve{Pt(0.1, 0.3), CubicTo(Pt(1.0, 2.0), Pt(3.0, -1.0), Pt(4.3, 0.7))}
	diff(t, Pt(0.1, 0.3), cb.Eval(0.0))
	diff(t, Pt(4.3, 0.7), cb.Eval(1.0))
}

func TestCurveSplit(t *testing.T) {
	q := Curve{Pt(0.0, 0.0), QuadTo(Pt(5.0, 10.0), Pt(10.0, 0.0))}
	left, right := q.Split(0.5)
	diff(t, Curve{Pt(0.0, 0.0), QuadTo(Pt(2.5, 5.0), Pt(5.0, 5.0))}, left)
	diff(t, Curve{Pt(5.0, 5.0), QuadTo(Pt(7.5, 5.0), Pt(10.0, 0.0))}, right)

	// The halves share the split point exactly.
	for _, c := range []Curve{
		{Pt(0.0, 0.0), LineTo(Pt(10.0, 4.0))},
		q,
		{Pt(0.0, 0.0), CubicTo(Pt(1.0, 2.0), Pt(3.0, -1.0), Pt(4.0, 1.0))},
	} {
		for _, s := range []float64{0.1, 1.0 / 3.0, 0.5, 0.9} {
			left, right := c.Split(s)
			diff(t, left.End(), right.Start())
			if left.Degree() != c.Degree() || right.Degree() != c.Degree() {
				t.Errorf("split of %s changed degree", c)
			}
		}
	}

	// Splitting at the ends collapses one half onto an end point,
	// control points included.
	left, right = q.Split(0.0)
	diff(t, Curve{Pt(0.0, 0.0), QuadTo(Pt(0.0, 0.0), Pt(0.0, 0.0))}, left)
	diff(t, q, right)
	left, right = q.Split(1.0)
	diff(t, q, left)
	diff(t, Curve{Pt(10.0, 0.0), QuadTo(Pt(10.0, 0.0), Pt(10.0, 0.0))}, right)
}

func TestCurveSubdivide(t *testing.T) {
	c := Curve{Pt(3.1, 4.1), CubicTo(Pt(5.9, 2.6), Pt(5.3, 5.8), Pt(7.2, 4.4))}
	left, right := c.Subdivide()
	wantLeft, wantRight := c.Split(0.5)
	diff(t, wantLeft, left)
	diff(t, wantRight, right)
}

func TestCurveRaise(t *testing.T) {
	c := Curve{Pt(0.0, 0.0), LineTo(Pt(9.0, 3.0))}
	const epsilon = 1e-9
	const n = 10
	raised := c
	for _, want := range []Degree{Quadratic, Cubic} {
		raised = raised.Raise()
		if raised.Degree() != want {
			t.Fatalf("got degree %s, want %s", raised.Degree(), want)
		}
		for i := 0; i < n+1; i++ {
			ts := float64(i) / float64(n)
			assertNear(t, c.Eval(ts), raised.Eval(ts), epsilon)
		}
	}
}

func TestCurveRaiseCubic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected raising a cubic to panic")
		}
	}()
	c := Curve{Pt(0.0, 0.0), CubicTo(Pt(1.0, 1.0), Pt(2.0, 2.0), Pt(3.0, 3.0))}
	c.Raise()
}

func TestCurveCubicControls(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)

	// A line's cubic controls sit at the thirds of the chord.
	l := Curve{Pt(0.0, 0.0), LineTo(Pt(9.0, 3.0))}
	diff(t, [2]Point{Pt(3.0, 1.0), Pt(6.0, 2.0)}, l.CubicControls(), approx)

	q := Curve{Pt(0.0, 0.0), QuadTo(Pt(5.0, 10.0), Pt(10.0, 0.0))}
	diff(t, [2]Point{Pt(10.0/3.0, 20.0/3.0), Pt(20.0/3.0, 20.0/3.0)}, q.CubicControls(), approx)

	// A cubic's controls are returned as they are.
	cb := Curve{Pt(0.0, 0.0), CubicTo(Pt(1.0, 2.0), Pt(3.0, -1.0), Pt(4.0, 1.0))}
	diff(t, [2]Point{Pt(1.0, 2.0), Pt(3.0, -1.0)}, cb.CubicControls())
}

func TestCurveReverse(t *testing.T) {
	curves := []Curve{
		{Pt(1.0, 2.0), LineTo(Pt(9.0, -6.0))},
		{Pt(0.0, 0.0), QuadTo(Pt(5.0, 10.0), Pt(10.0, 0.0))},
		{Pt(0.1, 0.3), CubicTo(Pt(1.0, 2.0), Pt(3.0, -1.0), Pt(4.3, 0.7))},
	}
	const epsilon = 1e-9
	const n = 10
	for _, c := range curves {
		r := c.Reverse()
		diff(t, c.End(), r.Start())
		diff(t, c.Start(), r.End())
		for i := 0; i < n+1; i++ {
			ts := float64(i) / float64(n)
			assertNear(t, c.Eval(ts), r.Eval(1.0-ts), epsilon)
		}
		diff(t, c, r.Reverse())
	}
}

func TestCurveBoundingBox(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)

	q := Curve{Pt(0.0, 0.0), QuadTo(Pt(5.0, 10.0), Pt(10.0, 0.0))}
	diff(t, Rect{0.0, 0.0, 10.0, 5.0}, q.BoundingBox(), approx)

	l := Curve{Pt(4.0, -1.0), LineTo(Pt(-2.0, 5.0))}
	diff(t, Rect{-2.0, -1.0, 4.0, 5.0}, l.BoundingBox())
}

func TestCurveTranslate(t *testing.T) {
	c := Curve{Pt(1.0, 1.0), CubicTo(Pt(2.0, 3.0), Pt(4.0, 0.0), Pt(5.0, 2.0))}
	v := Vec(-3.0, 7.0)
	moved := c.Translate(v)
	diff(t, Curve{Pt(-2.0, 8.0), CubicTo(Pt(-1.0, 10.0), Pt(1.0, 7.0), Pt(2.0, 9.0))}, moved)
	for i := 0; i < 5; i++ {
		ts := float64(i) / 4.0
		diff(t, c.Eval(ts).Translate(v), moved.Eval(ts), pointComparer)
	}
}

func TestExtremaRanges(t *testing.T) {
	q := Curve{Pt(0.0, 0.0), QuadTo(Pt(5.0, 10.0), Pt(10.0, 0.0))}
	ranges, n := ExtremaRanges(q)
	diff(t, [][2]float64{{0.0, 0.5}, {0.5, 1.0}}, ranges[:n], cmpopts.EquateApprox(0, 1e-9))

	// A line is monotonic throughout.
	l := Curve{Pt(0.0, 0.0), LineTo(Pt(1.0, 2.0))}
	ranges, n = ExtremaRanges(l)
	diff(t, [][2]float64{{0.0, 1.0}}, ranges[:n])
}

func TestCurveString(t *testing.T) {
	c := Curve{Pt(0.0, 0.0), QuadTo(Pt(5.0, 10.0), Pt(10.0, 0.0))}
	if got, want := c.String(), "Curve((0, 0), QuadTo((5, 10), (10, 0)))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
