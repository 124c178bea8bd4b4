package synth

import (
	"math"

	"github.com/cagegen/cagegen/internal/envelope"
	"github.com/cagegen/cagegen/internal/geom"
	"github.com/cagegen/cagegen/internal/substrate"
)

// isHindered reports whether p sits too close to any already-placed,
// non-scaffold cage atom (< DistGapCage) or any substrate atom
// (< DistGapSubstrate). exclude names the atom p is being projected from,
// so its own position never self-blocks the check.
func isHindered(mol *substrate.Molecule, s *envelope.Shell, p geom.Vec3, exclude int) bool {
	for _, id := range s.Active() {
		if id == exclude {
			continue
		}
		f := s.Atoms[id].Flag
		if f == envelope.ShellFlag || f == envelope.NotDef {
			continue
		}
		if geom.Distance(s.Atoms[id].Coords, p) < geom.DistGapCage {
			return true
		}
	}
	for _, a := range mol.Atoms {
		if geom.Distance(a.Coords, p) < geom.DistGapSubstrate {
			return true
		}
	}
	return false
}

// arbitraryPerp returns a point near b, displaced off the a-b axis, used
// as a stand-in second reference direction when neither endpoint of a bond
// has a second neighbor to build a plane normal from.
func arbitraryPerp(a, b geom.Vec3) geom.Vec3 {
	axis := geom.Normalize(geom.Sub(b, a))
	ref := geom.Vec3{X: 1, Y: 0, Z: 0}
	if geom.Dot(axis, ref) > 0.9 || geom.Dot(axis, ref) < -0.9 {
		ref = geom.Vec3{X: 0, Y: 1, Z: 0}
	}
	return geom.Add(b, geom.Cross(axis, ref))
}

// secondNeighbor returns the coordinates of some neighbor of nbr other
// than self, or an arbitrary off-axis point if nbr has no other neighbor.
func secondNeighbor(s *envelope.Shell, self, nbr int) geom.Vec3 {
	for _, n := range s.Atoms[nbr].Neighbors.Active() {
		if n != self {
			return s.Atoms[n].Coords
		}
	}
	return arbitraryPerp(s.Atoms[self].Coords, s.Atoms[nbr].Coords)
}

// candidatePositions proposes the next atom position(s) for cursor,
// dispatched on its current ligand count and element flag exactly as
// spec.md's §4.S placement table describes.
func candidatePositions(s *envelope.Shell, cursor, end int) []geom.Vec3 {
	nbrs := s.Atoms[cursor].Neighbors.Active()
	c := s.Atoms[cursor].Coords

	switch len(nbrs) {
	case 1:
		return oneNeighborPositions(s, cursor, nbrs[0], end)
	case 2:
		x1, x2 := s.Atoms[nbrs[0]].Coords, s.Atoms[nbrs[1]].Coords
		if s.Atoms[cursor].Flag == envelope.NitrogenFlag {
			return []geom.Vec3{geom.AX2E2(c, x1, x2, geom.DistSimple)}
		}
		if s.Atoms[nbrs[0]].Flag == envelope.OxygenFlag || s.Atoms[nbrs[1]].Flag == envelope.OxygenFlag {
			return []geom.Vec3{geom.AX2E1(c, x1, x2, geom.DistSimple)}
		}
		p1 := geom.AX2E2(c, x1, x2, geom.DistSimple)
		p2 := geom.AX3E1(c, x1, x2, p1, geom.DistSimple)
		return []geom.Vec3{p1, p2}
	case 3:
		x1, x2, x3 := s.Atoms[nbrs[0]].Coords, s.Atoms[nbrs[1]].Coords, s.Atoms[nbrs[2]].Coords
		return []geom.Vec3{geom.AX3E1(c, x1, x2, x3, geom.DistSimple)}
	default:
		return nil
	}
}

// oneNeighborPositions samples 12 candidate positions by rotating the
// reference plane normal in 30-degree steps about the cursor-neighbor
// axis and returns all 12 unfiltered; the caller picks among them (see
// bestSingleNeighborPosition).
func oneNeighborPositions(s *envelope.Shell, cursor, nbr, end int) []geom.Vec3 {
	c := s.Atoms[cursor].Coords
	v1 := s.Atoms[nbr].Coords
	normal := geom.PlaneNormal(c, v1, secondNeighbor(s, cursor, nbr))
	axis := geom.Normalize(geom.Sub(v1, c))

	positions := make([]geom.Vec3, 0, 12)
	positions = append(positions, geom.AX1E3(c, v1, normal, geom.DistSimple))
	for i := 0; i < 11; i++ {
		normal = geom.Rotate(axis, 30, normal)
		positions = append(positions, geom.AX1E3(c, v1, normal, geom.DistSimple))
	}
	return positions
}

// closest returns the index of the position in positions nearest to
// target, or -1 if positions is empty.
func closest(positions []geom.Vec3, target geom.Vec3) int {
	best, bestDist := -1, math.Inf(1)
	for i, p := range positions {
		d := geom.Distance(p, target)
		if d < bestDist {
			bestDist, best = d, i
		}
	}
	return best
}
