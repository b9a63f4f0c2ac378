package mathutil

import "math"

// Spherical is a point in spherical coordinates around the Y axis.
// Phi is the polar angle measured from +Y; Theta is the azimuth in the XZ plane, measured from +Z toward +X.
type Spherical struct {
	Radius float64
	Phi    float64
	Theta  float64
}

// SphericalFromVec3 converts a Cartesian offset. The zero vector maps to the zero Spherical.
func SphericalFromVec3(v Vec3) Spherical {
	r := v.Len()
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius: r,
		Theta:  math.Atan2(v[0], v[2]),
		Phi:    math.Acos(Clamp(v[1]/r, -1, 1)),
	}
}

// Vec3 converts back to a Cartesian offset.
func (s Spherical) Vec3() Vec3 {
	sinPhiR := math.Sin(s.Phi) * s.Radius
	return Vec3{
		sinPhiR * math.Sin(s.Theta),
		math.Cos(s.Phi) * s.Radius,
		sinPhiR * math.Cos(s.Theta),
	}
}
