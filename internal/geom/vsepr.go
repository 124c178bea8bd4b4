package geom

import "math"

// tetrahedralHalfAngle is the 109.47 degree VSEPR half-angle used by the
// four/three-substituent operators.
const tetrahedralHalfAngle = 109.47

// AX1E1 places the single remaining substituent of a linear (steric 2)
// center a, opposite its one known neighbor x1, at distance length.
func AX1E1(a, x1 Vec3, length float64) Vec3 {
	dir := Normalize(Sub(a, x1))
	return Add(a, Scale(dir, length))
}

// AX2E1 places the third substituent of a trigonal (steric 3) center a
// given two known neighbors x1, x2, as the in-plane bisector on the side
// opposite both.
func AX2E1(a, x1, x2 Vec3, length float64) Vec3 {
	d1 := Normalize(Sub(a, x1))
	d2 := Normalize(Sub(a, x2))
	bis := Normalize(Add(d1, d2))
	return Add(a, Scale(bis, length))
}

// AX1E2 places the second substituent of a trigonal center a given one
// known neighbor x1 and the plane normal n, by rotating (x1-a) 120 degrees
// in-plane around n.
func AX1E2(a, x1, n Vec3, length float64) Vec3 {
	dir := Normalize(Sub(x1, a))
	rotated := Rotate(n, 120, dir)
	return Add(a, Scale(Normalize(rotated), length))
}

// AX3E1 places the unique fourth arm of a tetrahedral center a given three
// known neighbors x1, x2, x3: the direction opposite the sum of the three
// known bond directions.
func AX3E1(a, x1, x2, x3 Vec3, length float64) Vec3 {
	d1 := Normalize(Sub(x1, a))
	d2 := Normalize(Sub(x2, a))
	d3 := Normalize(Sub(x3, a))
	sum := Add(Add(d1, d2), d3)
	dir := Normalize(Scale(sum, -1))
	return Add(a, Scale(dir, length))
}

// AX2E2 places a tetrahedral out-of-plane arm of center a given two known
// neighbors x1, x2: the positive bisector of x1,x2 rotated out of their
// plane by half the tetrahedral half-angle (109.47/2 deg), about the axis
// perpendicular to both the plane normal and the bisector.
func AX2E2(a, x1, x2 Vec3, length float64) Vec3 {
	d1 := Normalize(Sub(x1, a))
	d2 := Normalize(Sub(x2, a))
	bis := Normalize(Add(d1, d2))
	n := PlaneNormal(a, x1, x2)

	perpAxis := Normalize(Cross(n, bis))
	rotated := Rotate(perpAxis, -tetrahedralHalfAngle/2, bis)
	return Add(a, Scale(Normalize(rotated), length))
}

// AX1E3 places a tetrahedral arm of center a given one known neighbor x1
// and the plane normal n, by rotating (x1-a) by the tetrahedral angle
// (109.47 deg) around n.
func AX1E3(a, x1, n Vec3, length float64) Vec3 {
	dir := Normalize(Sub(x1, a))
	rotated := Rotate(n, tetrahedralHalfAngle, dir)
	return Add(a, Scale(Normalize(rotated), length))
}

// RingClosurePoint places a new ring member outward from a given its two
// existing ring neighbors b and c: the direction 2a-b-c (the sum of the
// two outward bond vectors a-b and a-c) scaled to length.
func RingClosurePoint(a, b, c Vec3, length float64) Vec3 {
	dir := Vec3{X: 2*a.X - b.X - c.X, Y: 2*a.Y - b.Y - c.Y, Z: 2*a.Z - b.Z - c.Z}
	return Add(a, Scale(Normalize(dir), length))
}

// AX2E0Linear returns the four points around a linear AX2E0 bond axis
// (through a and x1), spaced 0, 90, 180, 270 degrees apart at the given
// radius from the axis — used for triple-bond-like atoms.
func AX2E0Linear(a, x1 Vec3, radius float64) [4]Vec3 {
	axis := Normalize(Sub(x1, a))

	// Build an arbitrary vector perpendicular to axis.
	ref := Vec3{1, 0, 0}
	if math.Abs(Dot(axis, ref)) > 0.9 {
		ref = Vec3{0, 1, 0}
	}
	perp := Normalize(Cross(axis, ref))

	var out [4]Vec3
	for i := 0; i < 4; i++ {
		angle := float64(i) * 90
		dir := Rotate(axis, angle, perp)
		out[i] = Add(a, Scale(Normalize(dir), radius))
	}
	return out
}
