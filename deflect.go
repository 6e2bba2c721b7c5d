package drawpoint

// Deflect constructs a point off the segment from p0 to p1: the point at
// parameter t along the segment, pushed sideways by d. Positive d pushes to
// the left of the direction of travel in a y-up coordinate system, negative
// d to the right, and a d of zero returns the point on the segment itself.
// If p0 and p1 coincide there is no direction to deflect in and the point
// is returned unmoved.
func Deflect(p0, p1 Point, t, d float64) Point {
	p := p0.Lerp(p1, t)
	if d == 0.0 {
		return p
	}
	chord := p1.Sub(p0)
	if chord.Hypot2() == 0.0 {
		return p
	}
	return p.Translate(chord.Normalize().Turn90().Mul(d))
}

// SimpleQuad constructs a quadratic curve from p0 to p1 whose control point
// is deflected off the chord, at parameter t along it and pushed sideways
// by d as in [Deflect]. With a d of zero the result traces the chord.
func SimpleQuad(p0, p1 Point, t, d float64) Curve {
	return Curve{p0, QuadTo(Deflect(p0, p1, t, d), p1)}
}
