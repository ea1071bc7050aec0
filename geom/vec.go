/*package geom contains small geometric primitives: three dimensional
vectors and a helper for reasoning over flat slices as 3D grids.
*/
package geom

import (
	"math"
)

// Vec is a three dimensional vector.
type Vec [3]float64

// AddSelf adds v to u in place and returns u to allow for chaining.
func (u *Vec) AddSelf(v *Vec) *Vec {
	for i := 0; i < 3; i++ {
		u[i] += v[i]
	}
	return u
}

// SubSelf subtracts v from u in place and returns u to allow for chaining.
func (u *Vec) SubSelf(v *Vec) *Vec {
	for i := 0; i < 3; i++ {
		u[i] -= v[i]
	}
	return u
}

// ScaleSelf multiplies every component of u by s in place and returns u
// to allow for chaining.
func (u *Vec) ScaleSelf(s float64) *Vec {
	for i := 0; i < 3; i++ {
		u[i] *= s
	}
	return u
}

// AddScaledSelf adds s*v to u in place and returns u to allow for
// chaining.
func (u *Vec) AddScaledSelf(v *Vec, s float64) *Vec {
	for i := 0; i < 3; i++ {
		u[i] += s * v[i]
	}
	return u
}

// SubAt stores u - v in out and returns out.
func (u *Vec) SubAt(v, out *Vec) *Vec {
	for i := 0; i < 3; i++ {
		out[i] = u[i] - v[i]
	}
	return out
}

// Dot computes the inner product of u and v.
func (u *Vec) Dot(v *Vec) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// Norm2 computes the squared length of u.
func (u *Vec) Norm2() float64 {
	return u.Dot(u)
}

// Norm computes the length of u.
func (u *Vec) Norm() float64 {
	return math.Sqrt(u.Norm2())
}
