package pattern

import (
	"sort"

	"github.com/cagegen/cagegen/internal/envelope"
	"github.com/cagegen/cagegen/internal/geom"
)

// InsertRingPatterns walks every cycle-flagged envelope atom and prunes its
// bonds down to the two nearest cycle neighbors, the shape an aromatic
// ring scaffold needs. An atom left with exactly two ring bonds after
// pruning is a genuine ring vertex; one with fewer than two close cycle
// neighbors to begin with is left untouched, since it isn't really part of
// a closed ring in this envelope.
func InsertRingPatterns(s *envelope.Shell) {
	for _, id := range s.Active() {
		if s.Cycle[id] {
			processCycleAtom(s, id)
		}
	}
}

func processCycleAtom(s *envelope.Shell, id int) {
	atom := s.Atoms[id]
	if atom == nil {
		return
	}

	var cycleNbrs []int
	for _, n := range atom.Neighbors.Active() {
		if s.Cycle[n] && geom.Distance(atom.Coords, s.Atoms[n].Coords) <= geom.MaxDisCycle {
			cycleNbrs = append(cycleNbrs, n)
		}
	}
	if len(cycleNbrs) < 2 {
		return
	}
	atom.Flag = envelope.CycleFlag

	sort.Slice(cycleNbrs, func(i, j int) bool {
		return geom.Distance(atom.Coords, s.Atoms[cycleNbrs[i]].Coords) <
			geom.Distance(atom.Coords, s.Atoms[cycleNbrs[j]].Coords)
	})
	keep := [2]int{cycleNbrs[0], cycleNbrs[1]}

	for _, n := range atom.Neighbors.Active() {
		if n != keep[0] && n != keep[1] {
			s.RemoveEdge(id, n)
		}
	}

	if s.Degree(id) != 2 {
		return
	}
	closeRing(s, id, keep[0], keep[1])
}

// closeRing inserts a new ring member outward from id given its two
// remaining ring neighbors, then folds any already-present atom that ends
// up coincident with the new point into it.
func closeRing(s *envelope.Shell, id, left, right int) {
	atom := s.Atoms[id]
	p := geom.RingClosurePoint(atom.Coords, s.Atoms[left].Coords, s.Atoms[right].Coords, geom.SimpleCycle)

	newID := s.AddAtom(p, atom.Parent)
	s.Atoms[newID].Flag = envelope.CycleFlag
	s.AddCycle(newID)
	s.AddEdge(id, newID)

	for _, other := range s.Active() {
		if other == newID || other == id {
			continue
		}
		if s.Atoms[other] == nil {
			continue
		}
		if geom.Distance(s.Atoms[other].Coords, p) <= geom.MinDisCycle {
			s.Merge(newID, other)
		}
	}
}
