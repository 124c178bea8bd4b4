package synth

import (
	"github.com/cagegen/cagegen/internal/envelope"
	"github.com/cagegen/cagegen/internal/geom"
	"github.com/cagegen/cagegen/internal/substrate"
)

const (
	maxCarbonylRun = 4
	maxRingCount   = 2
)

// arrivalThreshold is the maximum distance between a newly placed cursor
// and the target endpoint at which a chain is considered closed.
const arrivalThreshold = geom.DistSimple + geom.DistError

// grow recursively extends a chain starting at cursor toward end, trying
// every pattern kind at each step, and returns every completed cage: a
// clone of s whose final atom landed within arrivalThreshold of end, with
// the closing edge to end already added.
func grow(mol *substrate.Molecule, s *envelope.Shell, cursor, end, carbonylRun, ringCount, chainLen int, opts Options) []*envelope.Shell {
	if chainLen > opts.SizeMax {
		return nil
	}

	positions := candidatePositions(s, cursor, end)
	if len(s.Atoms[cursor].Neighbors.Active()) == 1 {
		positions = bestSingleNeighborPosition(mol, s, cursor, end, positions)
	}

	var out []*envelope.Shell
	commit := func(child *envelope.Shell, newCursor, newCarbonylRun, newRingCount int) {
		if child == nil {
			return
		}
		if geom.Distance(child.Atoms[newCursor].Coords, child.Atoms[end].Coords) < arrivalThreshold {
			if opts.RequireAromaticInChain && newRingCount == 0 {
				return
			}
			child.AddEdge(newCursor, end)
			out = append(out, child)
			return
		}
		if newCarbonylRun <= maxCarbonylRun && newRingCount <= maxRingCount {
			out = append(out, grow(mol, child, newCursor, end, newCarbonylRun, newRingCount, chainLen+1, opts)...)
		}
	}

	// Single-atom carbon or nitrogen.
	for _, pos := range positions {
		if isHindered(mol, s, pos, cursor) {
			continue
		}
		for _, elem := range [2]envelope.Flag{envelope.CarbonFlag, envelope.NitrogenFlag} {
			child := s.Clone()
			id := child.AddAtom(pos, -1)
			child.Atoms[id].Flag = elem
			child.AddEdge(cursor, id)
			commit(child, id, 0, ringCount)
		}
	}

	// Carbonyl: a carbon bonded to cursor, with the oxygen in one of two
	// rotational positions in the carbon's bond plane.
	for _, pos := range positions {
		if isHindered(mol, s, pos, cursor) {
			continue
		}
		carbonBase := s.Clone()
		cID := carbonBase.AddAtom(pos, -1)
		carbonBase.Atoms[cID].Flag = envelope.CarbonFlag
		carbonBase.AddEdge(cursor, cID)

		for _, opos := range carbonylOxygenPositions(carbonBase, cursor, cID) {
			if isHindered(mol, carbonBase, opos, cID) {
				continue
			}
			child := carbonBase.Clone()
			oID := child.AddAtom(opos, -1)
			child.Atoms[oID].Flag = envelope.OxygenFlag
			child.AddEdge(cID, oID)
			commit(child, cID, carbonylRun+1, ringCount)
		}
	}

	// Aromatic ring.
	if ringCount < maxRingCount {
		if child, para := placeAromaticRing(mol, s, cursor); child != nil {
			commit(child, para, 0, ringCount+1)
		}
	}

	return out
}

// bestSingleNeighborPosition keeps only the single steric-clean candidate
// nearest to end, matching the original's "sample 12 rotations, select by
// distMin" behavior for a cursor with exactly one neighbor.
func bestSingleNeighborPosition(mol *substrate.Molecule, s *envelope.Shell, cursor, end int, positions []geom.Vec3) []geom.Vec3 {
	valid := make([]geom.Vec3, 0, len(positions))
	for _, p := range positions {
		if !isHindered(mol, s, p, cursor) {
			valid = append(valid, p)
		}
	}
	idx := closest(valid, s.Atoms[end].Coords)
	if idx == -1 {
		return nil
	}
	return []geom.Vec3{valid[idx]}
}

// carbonylOxygenPositions returns the two in-plane positions the
// carbonyl oxygen can take relative to the newly placed carbon cID and its
// parent cursor.
func carbonylOxygenPositions(s *envelope.Shell, parent, cID int) []geom.Vec3 {
	c := s.Atoms[cID].Coords
	p := s.Atoms[parent].Coords
	normal := geom.PlaneNormal(c, p, secondNeighbor(s, cID, parent))
	first := geom.AX1E2(c, p, normal, geom.DistSimple)
	second := geom.AX2E1(c, p, first, geom.DistSimple)
	return []geom.Vec3{first, second}
}
