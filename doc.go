// Package drawpoint provides primitives and routines for Bézier curve
// segments of degree one through three, expressed in drawpoint form: a start
// point plus the endpoint the segment arrives at, with any control points
// riding along on the endpoint. It was designed to serve the needs of 2D
// drawing code, which naturally thinks in pen positions and drawing commands
// rather than in free-floating control polygons.
//
// # Drawpoints
//
// The drawpoint representation mirrors how paths are drawn: a pen sits at a
// current position, and each drawing command carries its destination along
// with the control points that shape the way there. [Endpoint] is such a
// command, constructed by [LineTo], [QuadTo], or [CubicTo]. Its degree is
// fixed at construction and never guessed from which control points happen
// to be set. [Curve] pairs an endpoint with the start position, forming a
// self-contained segment; it acts as a sort of tagged union over the three
// per-degree segment types, with [Curve.Match] as the corresponding pattern
// match.
//
// # Curves
//
// [Line], [QuadBez], and [CubicBez] are the per-degree segment types, with
// start, control, and end points as plain fields. [ParametricCurve]
// describes all of them: curves that can be evaluated at t ∈ [0, 1],
// returning points in a 2D Cartesian coordinate system. Evaluation at t = 0
// and t = 1 returns the start and end points exactly, not merely within
// rounding.
//
// # Operations
//
// Beyond evaluation, all degrees support:
//
//   - Splitting into two curves of the same degree that share the split
//     point (see [Curve.Split])
//   - Degree elevation, preserving the traced path and its parametrization
//     (see [Curve.Raise] and [Curve.CubicControls])
//   - Inverse interpolation, recovering parameters and full points from one
//     known coordinate (see [Curve.Interpolate], [Curve.SolveForX], and
//     [Curve.SolveForY])
//   - Blending two curves by a mix factor (see [Blend] and [Curve.Blend])
//   - Extrema and bounding boxes (see [Curve.Extrema] and [BoundingBox])
//
// [Deflect] and [SimpleQuad] synthesize a quadratic control point offset
// perpendicular from a chord, a convenient way of bowing a segment sideways
// by a signed distance.
//
// All values in this package are plain immutable values; operations return
// new values and never mutate their operands, so everything is safe for
// concurrent use without synchronization.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
package drawpoint
