package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// SquaredDistance returns the squared Euclidean distance between (x1,y1) and (x2,y2).
func SquaredDistance(x1, y1, x2, y2 float64) float64 {
	return r2.Norm2(r2.Sub(r2.Vec{X: x2, Y: y2}, r2.Vec{X: x1, Y: y1}))
}

// SquaredDistanceToSegment returns the squared distance from (px,py) to the
// closed segment (x1,y1)-(x2,y2). Points that project outside the segment are
// measured to the nearer endpoint.
func SquaredDistanceToSegment(px, py, x1, y1, x2, y2 float64) float64 {
	p := r2.Vec{X: px, Y: py}
	a := r2.Vec{X: x1, Y: y1}
	ab := r2.Sub(r2.Vec{X: x2, Y: y2}, a)

	length2 := r2.Norm2(ab)
	if length2 == 0 {
		return r2.Norm2(r2.Sub(p, a))
	}

	t := Clamp(r2.Dot(r2.Sub(p, a), ab)/length2, 0, 1)
	closest := r2.Add(a, r2.Scale(t, ab))
	return r2.Norm2(r2.Sub(p, closest))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
