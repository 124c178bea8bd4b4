package pattern

import (
	"github.com/cagegen/cagegen/internal/envelope"
	"github.com/cagegen/cagegen/internal/geom"
	"github.com/cagegen/cagegen/internal/substrate"
)

// InsertHydrogenPatterns decorates every envelope candidate point already
// inherited into s.Dependency (one per lone-pair arm on a heteroatom, one
// per the single donor arm on a hydrogen) with the donor or acceptor
// geometry it mediates: a donor site sprouts two ±120 degree linkable arms
// off the hydrogen's own envelope point, and an acceptor site first grows
// an H-bond partner atom at geom.DistAtomH and then sprouts its own
// linkable arms off that partner, triangular or tetrahedral depending on
// the heteroatom's steric number.
func InsertHydrogenPatterns(mol *substrate.Molecule, s *envelope.Shell) {
	for _, envID := range s.Dependency.Vertices() {
		a := s.Atoms[envID]
		if a == nil {
			continue
		}
		parent := mol.Atoms[a.Parent]
		switch {
		case parent.Symbol == "H":
			insertDonor(mol, s, envID)
		case parent.Steric() == 3:
			insertAcceptor(mol, s, envID, 2)
		default:
			insertAcceptor(mol, s, envID, 3)
		}
	}
}

// insertDonor turns the envelope point envID, inherited from a substrate
// hydrogen's own AX1E1 bond-axis extension, into a donor site: it flags
// the point itself HydroPattern, drops whatever triangulation/bridge edges
// it picked up (they describe envelope adjacency, not hydrogen-bond
// geometry), and grows two new Linkable arms at plus and minus 120 degrees
// around the plane normal seekNormal finds for the hydrogen.
func insertDonor(mol *substrate.Molecule, s *envelope.Shell, envID int) {
	a := s.Atoms[envID]
	h := mol.Atoms[a.Parent]
	nbrs := h.Neighbors.Active()
	if len(nbrs) == 0 {
		return
	}
	heavy := mol.Atoms[nbrs[0]]
	normal := seekNormal(mol, a.Parent, nbrs[0])

	for _, old := range a.Neighbors.Active() {
		s.RemoveEdge(envID, old)
	}
	a.Flag = envelope.HydroPattern

	plus := geom.AX1E2(a.Coords, heavy.Coords, normal, geom.DistAtomH)
	minus := geom.AX1E2(a.Coords, heavy.Coords, geom.Scale(normal, -1), geom.DistAtomH)

	for _, p := range []geom.Vec3{plus, minus} {
		armID := s.AddAtom(p, a.Parent)
		s.Atoms[armID].Flag = envelope.Linkable
		s.AddEdge(envID, armID)
	}
}

// insertAcceptor turns the envelope point envID, inherited from one lone
// pair arm of a heteroatom, into an acceptor site: it materializes the
// hydrogen-bond partner atom at geom.DistAtomH along that lone pair's own
// direction, flags it HydroPattern, wires it back to envID, then grows
// arms new Linkable arms off the partner — 2 for a trigonal (steric 3)
// heteroatom, 3 for a tetrahedral one — using the same VSEPR operators
// internal/envelope uses to build the original bond frame, now rooted at
// the partner atom instead of the heteroatom.
func insertAcceptor(mol *substrate.Molecule, s *envelope.Shell, envID int, arms int) {
	a := s.Atoms[envID]
	parent := mol.Atoms[a.Parent]
	nbrs := parent.Neighbors.Active()
	if len(nbrs) == 0 {
		return
	}

	dir := geom.Normalize(geom.Sub(a.Coords, parent.Coords))
	partnerCoords := geom.Add(parent.Coords, geom.Scale(dir, geom.DistAtomH))
	partnerID := s.AddAtom(partnerCoords, a.Parent)
	s.Atoms[partnerID].Flag = envelope.HydroPattern
	s.AddEdge(envID, partnerID)

	normal := seekNormal(mol, a.Parent, nbrs[0])
	x1 := parent.Coords

	var siblings []geom.Vec3
	if arms == 2 {
		p1 := geom.AX1E2(partnerCoords, x1, normal, geom.DistAtomH)
		p2 := geom.AX2E1(partnerCoords, x1, p1, geom.DistAtomH)
		siblings = []geom.Vec3{p1, p2}
	} else {
		p1 := geom.AX1E3(partnerCoords, x1, normal, geom.DistAtomH)
		p2 := geom.AX2E2(partnerCoords, x1, p1, geom.DistAtomH)
		p3 := geom.AX3E1(partnerCoords, x1, p1, p2, geom.DistAtomH)
		siblings = []geom.Vec3{p1, p2, p3}
	}

	for _, p := range siblings {
		armID := s.AddAtom(p, a.Parent)
		s.Atoms[armID].Flag = envelope.Linkable
		s.AddEdge(partnerID, armID)
	}
}
