package ioadapt

import (
	"math"

	"github.com/cagegen/cagegen/internal/geom"
)

// AlphaShaper computes the α-shape boundary of a 3-D point cloud: the set
// of edges that survive when every empty ball of radius alpha is allowed
// to roll across the surface. Point indices in the result are 1-based,
// matching the R `alphashape3d` convention the original pipeline called
// out to as a subprocess.
type AlphaShaper interface {
	AlphaShape(points []geom.Vec3, alpha float64) (AlphaResult, error)
}

// AlphaResult is the triangulation summary an AlphaShaper returns.
// Edge and Triang are back-to-back index pairs/triples: edge k connects
// Edge[k] to Edge[k+len(Edge)/2], matching the original's flat R vector
// layout (`as3d->edge[i]`, `as3d->edge[i+nb_edge/2]`).
type AlphaResult struct {
	Edge   []int32
	Triang []int32
	X      []float64
	Alpha  float64
}

// GiftWrapAlphaShape is the default, dependency-free AlphaShaper: a
// brute-force scan of the O(n^3) candidate triangles, each checked against
// every point (O(n^4) overall), suitable for the tens-to-low-hundreds of
// envelope points this domain produces. For each triple of
// points it finds the two ball centers of radius alpha passing through
// all three (the circumscribed-circle center offset along the triangle's
// normal); if either ball contains no other point, the triangle's three
// edges survive into the alpha shape. This is the textbook definition of
// an alpha-shape facet, not a performance-grade triangulator.
type GiftWrapAlphaShape struct{}

func (GiftWrapAlphaShape) AlphaShape(points []geom.Vec3, alpha float64) (AlphaResult, error) {
	if len(points) < 4 {
		return AlphaResult{}, ErrTooFewPoints
	}
	if alpha <= 0 {
		return AlphaResult{}, ErrNonPositiveAlpha
	}

	edgeSet := make(map[[2]int]bool)
	n := len(points)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				centers, ok := emptyBallCenters(points[i], points[j], points[k], alpha)
				if !ok {
					continue
				}
				if ballIsEmpty(points, i, j, k, centers, alpha) {
					edgeSet[orderedPair(i, j)] = true
					edgeSet[orderedPair(j, k)] = true
					edgeSet[orderedPair(i, k)] = true
				}
			}
		}
	}

	half := len(edgeSet)
	edge := make([]int32, 0, 2*half)
	lo := make([]int32, 0, half)
	hi := make([]int32, 0, half)
	for pair := range edgeSet {
		lo = append(lo, int32(pair[0]+1))
		hi = append(hi, int32(pair[1]+1))
	}
	edge = append(edge, lo...)
	edge = append(edge, hi...)

	x := make([]float64, 0, 3*n)
	for _, p := range points {
		x = append(x, float64(p.X), float64(p.Y), float64(p.Z))
	}

	return AlphaResult{Edge: edge, X: x, Alpha: alpha}, nil
}

func orderedPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// emptyBallCenters returns the two points equidistant (radius) from a, b,
// and c, lying on the line through the triangle's circumcenter along its
// normal. ok is false when the circumradius already exceeds radius (no
// such ball exists) or the three points are collinear.
func emptyBallCenters(a, b, c geom.Vec3, radius float64) (centers [2]geom.Vec3, ok bool) {
	ab := geom.Sub(b, a)
	ac := geom.Sub(c, a)
	normal := geom.Cross(ab, ac)
	normalLen := geom.Length(normal)
	if normalLen < 1e-9 {
		return centers, false
	}
	normal = geom.Scale(normal, 1.0/normalLen)

	// Circumcenter of triangle abc via the standard barycentric formula.
	abLenSq := geom.Dot(ab, ab)
	acLenSq := geom.Dot(ac, ac)

	// normal is already unit length, so one factor of |ab x ac| is left.
	u := geom.Cross(geom.Sub(geom.Scale(ac, abLenSq), geom.Scale(ab, acLenSq)), normal)
	circumcenter := geom.Add(a, geom.Scale(u, 1.0/(2.0*normalLen)))

	circumRadius := geom.Distance(circumcenter, a)
	halfChordSq := radius*radius - circumRadius*circumRadius
	if halfChordSq < 0 {
		return centers, false
	}
	offset := math.Sqrt(halfChordSq)
	centers[0] = geom.Add(circumcenter, geom.Scale(normal, offset))
	centers[1] = geom.Sub(circumcenter, geom.Scale(normal, offset))
	return centers, true
}

func ballIsEmpty(points []geom.Vec3, i, j, k int, centers [2]geom.Vec3, radius float64) bool {
	for _, center := range centers {
		empty := true
		for idx, p := range points {
			if idx == i || idx == j || idx == k {
				continue
			}
			if float64(geom.Distance(center, p)) < radius-1e-6 {
				empty = false
				break
			}
		}
		if empty {
			return true
		}
	}
	return false
}

