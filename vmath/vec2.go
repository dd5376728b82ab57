package vmath

import "math"

// Vec2 is a float64 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns v·o
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns squared length without sqrt
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns Euclidean length
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// FromAngle returns the unit vector at angle rad scaled by length
func FromAngle(rad, length float64) Vec2 {
	return Vec2{math.Cos(rad) * length, math.Sin(rad) * length}
}

// Distance returns Euclidean distance between a and b
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Angle returns the direction from a to b in radians, atan2 convention.
// Coincident points yield 0
func Angle(a, b Vec2) float64 {
	d := b.Sub(a)
	return math.Atan2(d.Y, d.X)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates a→b by t, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec interpolates each axis of a→b by t
func LerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}

// PointSegmentDistance returns the distance from p to the closest point of segment a-b.
// ok is false for a zero-length segment, callers treat that as no match
func PointSegmentDistance(p, a, b Vec2) (dist float64, ok bool) {
	d := b.Sub(a)
	lenSq := d.LenSq()
	if lenSq == 0 {
		return 0, false
	}

	t := Clamp(p.Sub(a).Dot(d)/lenSq, 0, 1)
	proj := a.Add(d.Scale(t))
	return Distance(p, proj), true
}

// NearSegment reports whether p lies strictly within threshold of segment a-b.
// Degenerate segments never match
func NearSegment(p, a, b Vec2, threshold float64) bool {
	dist, ok := PointSegmentDistance(p, a, b)
	return ok && dist < threshold
}

// InCircle reports whether p lies strictly inside the circle at c with radius r
func InCircle(p, c Vec2, r float64) bool {
	return p.Sub(c).LenSq() < r*r
}
