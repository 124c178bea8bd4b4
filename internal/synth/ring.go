package synth

import (
	"github.com/cagegen/cagegen/internal/envelope"
	"github.com/cagegen/cagegen/internal/geom"
	"github.com/cagegen/cagegen/internal/substrate"
)

// placeAromaticRing grows a six-membered aromatic ring off cursor,
// oriented perpendicular to cursor's current bond plane, and returns the
// ring's para carbon (the new cursor for the chain to continue from) in a
// fresh clone of s. Returns (nil, 0) if any ring position is sterically
// blocked.
func placeAromaticRing(mol *substrate.Molecule, s *envelope.Shell, cursor int) (*envelope.Shell, int) {
	nbrs := s.Atoms[cursor].Neighbors.Active()
	if len(nbrs) == 0 {
		return nil, 0
	}
	dpt := s.Atoms[cursor].Coords
	v1 := s.Atoms[nbrs[0]].Coords

	normal := geom.PlaneNormal(dpt, v1, secondNeighbor(s, cursor, nbrs[0]))
	axis := geom.Normalize(geom.Sub(dpt, v1))
	normal = geom.Rotate(axis, 90, normal) // perpendicular to the bond plane

	child := s.Clone()

	first := geom.AX1E2(dpt, v1, normal, geom.DistSimple)
	if isHindered(mol, child, first, cursor) {
		return nil, 0
	}
	firstID := child.AddAtom(first, -1)
	child.Atoms[firstID].Flag = envelope.CycleFlag
	child.AddCycle(firstID)
	child.AddEdge(cursor, firstID)

	prevPos, curID, curPos := dpt, firstID, first
	var paraID int
	for i := 0; i < 5; i++ {
		next := geom.AX1E2(curPos, prevPos, normal, geom.DistSimple)
		if isHindered(mol, child, next, curID) {
			return nil, 0
		}
		nextID := child.AddAtom(next, -1)
		child.Atoms[nextID].Flag = envelope.CycleFlag
		child.AddCycle(nextID)
		child.AddEdge(curID, nextID)

		prevPos = curPos
		curID, curPos = nextID, next
		if i == 2 {
			paraID = nextID
		}
	}
	child.AddEdge(curID, firstID)

	child.Atoms[paraID].Flag = envelope.Linkable
	return child, paraID
}
