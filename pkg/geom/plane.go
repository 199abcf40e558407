// Package geom provides planes, axis-aligned boxes and view frusta for
// visibility queries.
package geom

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// floatEpsilon is the float32 machine epsilon.
const floatEpsilon = 1.1920929e-07

// ErrNoSinglePoint is returned when three planes do not meet at exactly one point.
var ErrNoSinglePoint = errors.New("geom: planes do not intersect at a single point")

// Plane is the half-space ax + by + cz + d = 0 with a unit normal (a, b, c).
type Plane struct {
	constants mgl32.Vec4
}

// NewPlane creates a normalized plane from its four coefficients.
func NewPlane(a, b, c, d float32) Plane {
	var p Plane
	p.SetConstants(mgl32.Vec4{a, b, c, d})
	return p
}

// NewPlaneFromNormal creates a normalized plane from a normal and distance term.
func NewPlaneFromNormal(normal mgl32.Vec3, d float32) Plane {
	var p Plane
	p.SetNormalDistance(normal, d)
	return p
}

// SetConstants replaces the coefficients and renormalizes.
func (p *Plane) SetConstants(constants mgl32.Vec4) {
	p.constants = normalizePlane(constants)
}

// SetNormalDistance replaces the normal and distance term and renormalizes.
func (p *Plane) SetNormalDistance(normal mgl32.Vec3, d float32) {
	p.constants = normalizePlane(normal.Vec4(d))
}

// Constants returns (a, b, c, d).
func (p Plane) Constants() mgl32.Vec4 {
	return p.constants
}

// Normal returns the unit normal (a, b, c).
func (p Plane) Normal() mgl32.Vec3 {
	return p.constants.Vec3()
}

// D returns the distance term.
func (p Plane) D() float32 {
	return p.constants[3]
}

// Classify returns the signed distance of point from the plane.
// Positive values lie on the side the normal points to.
func (p Plane) Classify(point mgl32.Vec3) float32 {
	return p.constants.Dot(point.Vec4(1))
}

// normalizePlane scales the coefficients so the normal has unit length.
// A zero normal is returned unchanged.
func normalizePlane(c mgl32.Vec4) mgl32.Vec4 {
	l := c.Vec3().Len()
	if l == 0 {
		return c
	}
	return c.Mul(1 / l)
}

// Intersection returns the single point shared by three planes.
func Intersection(p1, p2, p3 Plane) (mgl32.Vec3, error) {
	n1, n2, n3 := p1.Normal(), p2.Normal(), p3.Normal()

	cross23 := n2.Cross(n3)
	cross31 := n3.Cross(n1)
	cross12 := n1.Cross(n2)

	// Scalar triple product; zero when any two normals are parallel
	// or all three are coplanar.
	det := n1.Dot(cross23)
	if math.Abs(float64(det)) < floatEpsilon {
		return mgl32.Vec3{}, ErrNoSinglePoint
	}

	point := cross23.Mul(-p1.D()).
		Sub(cross31.Mul(p2.D())).
		Sub(cross12.Mul(p3.D()))
	return point.Mul(1 / det), nil
}
