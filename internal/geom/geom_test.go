package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAX1E1RoundTrip(t *testing.T) {
	a := Vec3{0, 0, 0}

	for _, length := range []float64{0.5, 1.8, 3.2} {
		// AX1E1 always lands at exactly length from a, so the round trip
		// recovers x1 only when x1 itself sits at that distance.
		x1 := Vec3{float32(length), 0, 0}
		p := AX1E1(a, x1, length)
		back := AX1E1(a, p, length)
		assert.InDelta(t, float64(x1.X), float64(back.X), 1e-5)
		assert.InDelta(t, float64(x1.Y), float64(back.Y), 1e-5)
		assert.InDelta(t, float64(x1.Z), float64(back.Z), 1e-5)
	}
}

func TestRotateFullTurnIsIdentity(t *testing.T) {
	axis := Vec3{0, 0, 1}
	p := Vec3{1, 2, 3}
	r := Rotate(axis, 360, p)
	assert.InDelta(t, float64(p.X), float64(r.X), 1e-4)
	assert.InDelta(t, float64(p.Y), float64(r.Y), 1e-4)
	assert.InDelta(t, float64(p.Z), float64(r.Z), 1e-4)
}

func TestRotate90AroundZ(t *testing.T) {
	axis := Vec3{0, 0, 1}
	p := Vec3{1, 0, 0}
	r := Rotate(axis, 90, p)
	assert.InDelta(t, 0, float64(r.X), 1e-4)
	assert.InDelta(t, 1, float64(r.Y), 1e-4)
}

func TestAX1E1Distance(t *testing.T) {
	a := Vec3{0, 0, 0}
	x1 := Vec3{1, 0, 0}
	p := AX1E1(a, x1, geom1_8())
	require.InDelta(t, geom1_8(), Distance(a, p), 1e-4)
	// Linear extension puts p opposite x1 across a.
	assert.Greater(t, Distance(x1, p), Distance(x1, a))
}

func geom1_8() float64 { return DistHydro }

func TestAX2E1Bisector(t *testing.T) {
	a := Vec3{0, 0, 0}
	x1 := Vec3{1, 0, 0}
	x2 := Vec3{0, 1, 0}
	p := AX2E1(a, x1, x2, 1.5)

	require.InDelta(t, 1.5, Distance(a, p), 1e-4)
	// The new point should sit roughly opposite both neighbors.
	assert.Greater(t, Distance(x1, p), Distance(x1, a))
	assert.Greater(t, Distance(x2, p), Distance(x2, a))
}

func TestAX3E1Tetrahedral(t *testing.T) {
	a := Vec3{0, 0, 0}
	x1 := Vec3{1, 1, 1}
	x2 := Vec3{-1, -1, 1}
	x3 := Vec3{-1, 1, -1}
	p := AX3E1(a, x1, x2, x3, 1.0)
	assert.InDelta(t, 1.0, Distance(a, p), 1e-4)
}

func TestPlaneNormalOrthogonal(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{1, 0, 0}
	c := Vec3{0, 1, 0}
	n := PlaneNormal(a, b, c)
	assert.InDelta(t, 0, Dot(n, Sub(b, a)), 1e-5)
	assert.InDelta(t, 0, Dot(n, Sub(c, a)), 1e-5)
	assert.InDelta(t, 1, Length(n), 1e-5)
}

func TestAngleAtVertexRightAngle(t *testing.T) {
	v := Vec3{0, 0, 0}
	x1 := Vec3{1, 0, 0}
	x2 := Vec3{0, 1, 0}
	assert.InDelta(t, 90, AngleAtVertex(v, x1, x2), 1e-4)
}

func TestAX2E0LinearFourPoints(t *testing.T) {
	a := Vec3{0, 0, 0}
	x1 := Vec3{0, 0, 1}
	pts := AX2E0Linear(a, x1, 1.0)
	require.Len(t, pts, 4)
	for _, p := range pts {
		assert.InDelta(t, 1.0, Distance(a, p), 1e-4)
	}
	// Opposite pair (0 and 180 deg) should be ~2x radius apart.
	assert.InDelta(t, 2.0, Distance(pts[0], pts[2]), 1e-3)
}
