package envelope

import (
	"github.com/cagegen/cagegen/internal/geom"
	"github.com/cagegen/cagegen/internal/ioadapt"
	"github.com/cagegen/cagegen/internal/substrate"
)

// Build runs the full SPEC_FULL.md §4.E pipeline over mol: per-atom VSEPR
// expansion, dependency-graph inheritance, α-shape triangulation via
// shaper, orphan removal, and edge-bridging along the substrate's own
// bonds.
func Build(mol *substrate.Molecule, shaper ioadapt.AlphaShaper, alpha float64) (*Shell, error) {
	s := NewShell()
	expand(mol, s)
	inheritDependency(mol, s)

	if err := triangulate(s, shaper, alpha); err != nil {
		return nil, err
	}
	bridgeEdges(mol, s)
	return s, nil
}

// expand walks every substrate atom and dispatches to the steric-class
// projector selected exactly as `expansion()` does in the original:
// AX1E1 for a lone hydrogen-bond donor/acceptor, steric 3/4 for trigonal/
// tetrahedral centers, and AX2E0 for a two-ligand, lone-pair-free (linear)
// center.
func expand(mol *substrate.Molecule, s *Shell) {
	for i, a := range mol.Atoms {
		switch {
		case a.Ligands == 0:
			// No bond to build a VSEPR frame from at all: fall back to a
			// canonical, bond-free arrangement of Steric() points (see
			// DESIGN.md's note on end-to-end scenario 1).
			expandIsolated(s, i, a.Coords, a.Steric())
		case a.Ligands == 1 && a.LonePairs == 1:
			expandAX1E1(mol, s, i)
		case a.Steric() == 3:
			expandSteric3(mol, s, i)
		case a.Steric() == 4:
			expandSteric4(mol, s, i)
		case a.Ligands == 2 && a.LonePairs == 0:
			expandLinear(mol, s, i)
		}
	}
}

func expandAX1E1(mol *substrate.Molecule, s *Shell, id int) {
	a := mol.Atoms[id]
	x1 := mol.Atoms[a.Neighbors.Active()[0]]
	p := geom.AX1E1(a.Coords, x1.Coords, geom.DistHydro)
	s.AddAtom(p, id)
}

// secondNeighborCoords mirrors the original's "add a point if the group
// has fewer than two lone-pair slots filled by real bonds" branch: it
// synthesizes a plausible second reference direction from the one known
// neighbor's own other neighbor when the center atom itself has fewer
// than two bonds, so the plane normal used by the trigonal/tetrahedral
// operators below is never degenerate.
func secondNeighborCoords(mol *substrate.Molecule, id int, x1id int) geom.Vec3 {
	x1 := mol.Atoms[x1id]
	nbrs := x1.Neighbors.Active()
	for _, n := range nbrs {
		if n != id {
			return mol.Atoms[n].Coords
		}
	}
	// x1 has no other neighbor either (a bare two-atom substrate): fall
	// back to an arbitrary direction orthogonal to the id-x1 axis.
	axis := geom.Normalize(geom.Sub(x1.Coords, mol.Atoms[id].Coords))
	ref := geom.Vec3{X: 1, Y: 0, Z: 0}
	if geom.Dot(axis, ref) > 0.9 || geom.Dot(axis, ref) < -0.9 {
		ref = geom.Vec3{X: 0, Y: 1, Z: 0}
	}
	return geom.Add(x1.Coords, geom.Cross(axis, ref))
}

func expandSteric3(mol *substrate.Molecule, s *Shell, id int) {
	a := mol.Atoms[id]
	nbrs := a.Neighbors.Active()
	center := a.Coords
	x1 := mol.Atoms[nbrs[0]].Coords

	var x2 geom.Vec3
	if a.Ligands < 2 {
		ref := secondNeighborCoords(mol, id, nbrs[0])
		normal := geom.PlaneNormal(center, x1, ref)
		x2 = geom.AX1E2(center, x1, normal, geom.DistHydro)
		s.AddAtom(x2, id)
	} else {
		x2 = mol.Atoms[nbrs[1]].Coords
	}

	var x3 geom.Vec3
	if a.Ligands < 3 {
		x3 = geom.AX2E1(center, x1, x2, geom.DistHydro)
		s.AddAtom(x3, id)
	} else {
		x3 = mol.Atoms[nbrs[2]].Coords
	}

	normal := geom.Scale(geom.PlaneNormal(x1, x2, x3), geom.DistHydro)
	cyclic := mol.Cycle[id]
	up := s.AddAtom(geom.Add(center, normal), id)
	down := s.AddAtom(geom.Sub(center, normal), id)
	if cyclic {
		s.AddCycle(up)
		s.AddCycle(down)
	}
}

func expandSteric4(mol *substrate.Molecule, s *Shell, id int) {
	a := mol.Atoms[id]
	nbrs := a.Neighbors.Active()
	center := a.Coords
	x1 := mol.Atoms[nbrs[0]].Coords

	var x2 geom.Vec3
	if a.Ligands < 2 {
		ref := secondNeighborCoords(mol, id, nbrs[0])
		normal := geom.PlaneNormal(center, x1, ref)
		x2 = geom.AX1E3(center, x1, normal, geom.DistHydro)
		s.AddAtom(x2, id)
	} else {
		x2 = mol.Atoms[nbrs[1]].Coords
	}

	var x3 geom.Vec3
	if a.Ligands < 3 {
		x3 = geom.AX2E2(center, x1, x2, geom.DistHydro)
		s.AddAtom(x3, id)
	} else {
		x3 = mol.Atoms[nbrs[2]].Coords
	}

	if a.Ligands < 4 {
		s.AddAtom(geom.AX3E1(center, x1, x2, x3, geom.DistHydro), id)
	}
}

// isolatedDirections returns n canonical, evenly-spread unit directions
// around a point with no bonds to build a real VSEPR frame from: the four
// tetrahedron vertices for n==4, three 120-degree-spread in-plane
// directions for n==3, and the single +X axis otherwise.
func isolatedDirections(n int) []geom.Vec3 {
	switch n {
	case 4:
		return []geom.Vec3{
			geom.Normalize(geom.Vec3{X: 1, Y: 1, Z: 1}),
			geom.Normalize(geom.Vec3{X: 1, Y: -1, Z: -1}),
			geom.Normalize(geom.Vec3{X: -1, Y: 1, Z: -1}),
			geom.Normalize(geom.Vec3{X: -1, Y: -1, Z: 1}),
		}
	case 3:
		return []geom.Vec3{
			{X: 1, Y: 0, Z: 0},
			{X: -0.5, Y: 0.8660254, Z: 0},
			{X: -0.5, Y: -0.8660254, Z: 0},
		}
	default:
		return []geom.Vec3{{X: 1, Y: 0, Z: 0}}
	}
}

// expandIsolated places n envelope points around center along
// isolatedDirections(n), used only for a substrate atom with zero bonds.
func expandIsolated(s *Shell, id int, center geom.Vec3, n int) {
	for _, d := range isolatedDirections(n) {
		p := geom.Add(center, geom.Scale(d, geom.DistHydro))
		s.AddAtom(p, id)
	}
}

func expandLinear(mol *substrate.Molecule, s *Shell, id int) {
	a := mol.Atoms[id]
	nbrs := a.Neighbors.Active()
	pts := geom.AX2E0Linear(a.Coords, mol.Atoms[nbrs[0]].Coords, geom.DistHydro)
	for _, p := range pts {
		s.AddAtom(p, id)
	}
}

// inheritDependency copies every substrate dependency-graph vertex (and
// its incident edges) into the envelope's own dependency graph, re-keyed
// to the envelope atom(s) whose Parent is that substrate atom.
func inheritDependency(mol *substrate.Molecule, s *Shell) {
	parentToEnvelope := make(map[int][]int)
	for i, a := range s.Atoms {
		if a != nil {
			parentToEnvelope[a.Parent] = append(parentToEnvelope[a.Parent], i)
		}
	}

	for _, substrateID := range mol.Dependency.Vertices() {
		for _, envID := range parentToEnvelope[substrateID] {
			s.Dependency.AddVertex(envID)
		}
	}
	for _, substrateID := range mol.Dependency.Vertices() {
		for _, nbr := range mol.Dependency.Neighbors(substrateID) {
			for _, envA := range parentToEnvelope[substrateID] {
				for _, envB := range parentToEnvelope[nbr] {
					s.Dependency.AddEdge(envA, envB)
				}
			}
		}
	}
}

// triangulate packs the shell's active points into a flat buffer, calls
// shaper, and wires back the returned one-based edges as zero-based
// envelope bonds; atoms left with no neighbor afterward (orphans) are
// removed, dependency vertex included.
func triangulate(s *Shell, shaper ioadapt.AlphaShaper, alpha float64) error {
	active := s.Active()
	if len(active) == 0 {
		return nil
	}
	if len(active) < 4 {
		return ErrDegenerateTriangulation
	}
	points := make([]geom.Vec3, len(active))
	for i, id := range active {
		points[i] = s.Atoms[id].Coords
	}

	result, err := shaper.AlphaShape(points, alpha)
	if err != nil {
		return err
	}

	half := len(result.Edge) / 2
	for k := 0; k < half; k++ {
		u := active[result.Edge[k]-1]
		v := active[result.Edge[k+half]-1]
		s.AddEdge(u, v)
	}

	for _, id := range active {
		if s.valid(id) && s.Degree(id) == 0 {
			s.RemoveAtom(id)
		}
	}
	return nil
}

// bridgeEdges connects every pair of envelope dependency-graph vertices
// whose substrate parents were themselves bonded (or identical), seeding
// the envelope's bond-exclusion structure before pattern insertion.
func bridgeEdges(mol *substrate.Molecule, s *Shell) {
	verts := s.Dependency.Vertices()
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			pi, pj := s.Atoms[verts[i]].Parent, s.Atoms[verts[j]].Parent
			if pi == pj || mol.Atoms[pi].Neighbors.Has(pj) {
				s.AddEdge(verts[i], verts[j])
			}
		}
	}
}
