package geom

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Point3 is a 3D point or vector with scalar type S.
type Point3[S constraints.Float] struct {
	X, Y, Z S
}

// Point3d is a double precision point.
type Point3d = Point3[float64]

// Point3f is a single precision point.
type Point3f = Point3[float32]

// P3 builds a point.
func P3[S constraints.Float](x, y, z S) Point3[S] {
	return Point3[S]{X: x, Y: y, Z: z}
}

// Add returns p + q.
func (p Point3[S]) Add(q Point3[S]) Point3[S] {
	return Point3[S]{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p - q.
func (p Point3[S]) Sub(q Point3[S]) Point3[S] {
	return Point3[S]{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p * s.
func (p Point3[S]) Scale(s S) Point3[S] {
	return Point3[S]{p.X * s, p.Y * s, p.Z * s}
}

// Dot returns the dot product.
func (p Point3[S]) Dot(q Point3[S]) S {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product.
func (p Point3[S]) Cross(q Point3[S]) Point3[S] {
	return Point3[S]{
		p.Y*q.Z - p.Z*q.Y,
		p.Z*q.X - p.X*q.Z,
		p.X*q.Y - p.Y*q.X,
	}
}

// SquaredNorm returns the squared length.
func (p Point3[S]) SquaredNorm() S { return p.Dot(p) }

// Norm returns the length. Single precision points use math32.
func (p Point3[S]) Norm() S {
	switch v := any(p).(type) {
	case Point3[float32]:
		return S(math32.Sqrt(v.SquaredNorm()))
	default:
		return S(math.Sqrt(float64(p.SquaredNorm())))
	}
}

// Normalized returns p scaled to unit length. The zero vector is returned as is.
func (p Point3[S]) Normalized() Point3[S] {
	n := p.Norm()
	if n == 0 {
		return p
	}
	return p.Scale(1 / n)
}

// Cast converts a point to another scalar type.
func Cast[D, S constraints.Float](p Point3[S]) Point3[D] {
	return Point3[D]{D(p.X), D(p.Y), D(p.Z)}
}
