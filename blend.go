package drawpoint

// Blend mixes two curve endpoints that share the start point p0. Every
// defining point of the result is the linear interpolation of the
// corresponding points of a and b: the end point, and each control point
// the degree carries. A t of 0 reproduces a and a t of 1 reproduces b,
// exactly; values outside [0, 1] extrapolate. Endpoints of unequal degree
// are raised to match first, and the result carries the higher degree.
func Blend(t float64, p0 Point, a, b Endpoint) Endpoint {
	for a.Kind < b.Kind {
		a = (Curve{p0, a}).Raise().P1
	}
	for b.Kind < a.Kind {
		b = (Curve{p0, b}).Raise().P1
	}
	return blendEndpoints(t, a, b)
}

func blendEndpoints(t float64, a, b Endpoint) Endpoint {
	return Endpoint{
		Kind: a.Kind,
		P:    a.P.Lerp(b.P, t),
		CP1:  a.CP1.Lerp(b.CP1, t),
		CP2:  a.CP2.Lerp(b.CP2, t),
	}
}

// Blend mixes two curves, linearly interpolating between their start points
// and between each pair of corresponding defining points. Curves of unequal
// degree are raised to match before mixing, as in [Blend].
func (c Curve) Blend(o Curve, t float64) Curve {
	for c.P1.Kind < o.P1.Kind {
		c = c.Raise()
	}
	for o.P1.Kind < c.P1.Kind {
		o = o.Raise()
	}
	return Curve{c.P0.Lerp(o.P0, t), blendEndpoints(t, c.P1, o.P1)}
}
