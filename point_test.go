package drawpoint

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointLerp(t *testing.T) {
	p0 := Pt(1.0, 2.0)
	p1 := Pt(9.0, -6.0)

	// The ends reproduce the inputs exactly, even at awkward coordinates.
	diff(t, p0, p0.Lerp(p1, 0.0))
	diff(t, p1, p0.Lerp(p1, 1.0))
	diff(t, Pt(5.0, -2.0), p0.Lerp(p1, 0.5))

	q0 := Pt(0.1, 0.3)
	q1 := Pt(0.7, 0.9)
	diff(t, q0, q0.Lerp(q1, 0.0))
	diff(t, q1, q0.Lerp(q1, 1.0))
}

func TestPointMidpoint(t *testing.T) {
	diff(t, Pt(1, 5), Pt(0, 0).Midpoint(Pt(2, 10)))
	diff(t, Pt(-2, 0), Pt(-4, -4).Midpoint(Pt(0, 4)))
}
