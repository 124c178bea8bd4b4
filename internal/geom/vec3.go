package geom

import "math"

// Vec3 is a point or free vector in 3-space. Coordinates are stored as
// 32-bit floats per the data model; arithmetic promotes to float64
// internally and truncates back on return.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns a+b.
func Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns v scaled by k.
func Scale(v Vec3, k float64) Vec3 {
	return Vec3{
		float32(float64(v.X) * k),
		float32(float64(v.Y) * k),
		float32(float64(v.Z) * k),
	}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float64 {
	return float64(a.X)*float64(b.X) + float64(a.Y)*float64(b.Y) + float64(a.Z)*float64(b.Z)
}

// Cross returns the cross product a x b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the euclidean norm of v.
func Length(v Vec3) float64 {
	return math.Sqrt(Dot(v, v))
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged to avoid a division by zero; callers that place substituents
// from degenerate geometry are responsible for rejecting the branch.
func Normalize(v Vec3) Vec3 {
	l := Length(v)
	if l == 0 {
		return v
	}
	return Scale(v, 1/l)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec3) float64 {
	return Length(Sub(a, b))
}

// Manhattan returns the L1 (Manhattan) distance between a and b.
func Manhattan(a, b Vec3) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y)) + math.Abs(float64(a.Z-b.Z))
}

// AngleAtVertex returns, in degrees, the angle x1-vertex-x2 formed at
// vertex by the two rays toward x1 and x2.
func AngleAtVertex(vertex, x1, x2 Vec3) float64 {
	u := Sub(x1, vertex)
	v := Sub(x2, vertex)
	lu, lv := Length(u), Length(v)
	if lu == 0 || lv == 0 {
		return 0
	}
	cos := Dot(u, v) / (lu * lv)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}

// PlaneNormal returns the unit normal of the plane through a, b, c.
func PlaneNormal(a, b, c Vec3) Vec3 {
	return Normalize(Cross(Sub(b, a), Sub(c, a)))
}

// Rotate rotates point p by angleDeg degrees around the axis through the
// origin defined by unit vector axis, using Rodrigues' rotation formula.
// axis is normalized internally so callers need not pre-normalize it.
func Rotate(axis Vec3, angleDeg float64, p Vec3) Vec3 {
	k := Normalize(axis)
	theta := angleDeg * math.Pi / 180
	cosT, sinT := math.Cos(theta), math.Sin(theta)

	kxp := Cross(k, p)
	kDotP := Dot(k, p)

	term1 := Scale(p, cosT)
	term2 := Scale(kxp, sinT)
	term3 := Scale(k, kDotP*(1-cosT))

	return Add(Add(term1, term2), term3)
}

// RotateAbout rotates point p about the axis through center (direction
// axis) by angleDeg degrees: translate to the origin, rotate, translate
// back.
func RotateAbout(center, axis Vec3, angleDeg float64, p Vec3) Vec3 {
	return Add(center, Rotate(axis, angleDeg, Sub(p, center)))
}
