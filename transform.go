package dragon

import "math"

// Affine is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// The bottom row of the homogeneous matrix is implicit.
type Affine [6]float64

// Identity is the identity affine matrix.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Translate returns a matrix that moves points by (dx, dy).
func Translate(dx, dy float64) Affine {
	return Affine{1, 0, 0, 1, dx, dy}
}

// Scale returns a matrix that scales uniformly by s around the origin.
func Scale(s float64) Affine {
	return Affine{s, 0, 0, s, 0, 0}
}

// Rotate returns a rotation by theta radians around the origin. Positive
// angles turn counter-clockwise on screen, where Y grows downward: Rotate
// by π/2 takes (1, 0) to (0, -1).
func Rotate(theta float64) Affine {
	sin, cos := math.Sincos(theta)
	return Affine{cos, -sin, sin, cos, 0, 0}
}

// RotateAbout returns the rotation by theta around pivot:
//
//	Translate(pivot) * Rotate(theta) * Translate(-pivot)
func RotateAbout(pivot Vec2, theta float64) Affine {
	return Mul(Translate(pivot.X, pivot.Y), Mul(Rotate(theta), Translate(-pivot.X, -pivot.Y)))
}

// Mul multiplies two affine matrices: result = p * c, i.e. c is applied
// first.
func Mul(p, c Affine) Affine {
	return Affine{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// Apply transforms the point v.
func (m Affine) Apply(v Vec2) Vec2 {
	return Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}
