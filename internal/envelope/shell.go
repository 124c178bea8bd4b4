package envelope

import (
	"github.com/cagegen/cagegen/internal/adjlist"
	"github.com/cagegen/cagegen/internal/geom"
)

// Flag marks the role an envelope (or, later, cage) atom plays. Order
// matters: merging two atoms keeps the higher-ranked flag, matching the
// original's "flag(eater) = max(flag(eater), flag(eaten))" rule, so the
// numeric order below (NotDef < Shell < Linkable < Cycle < HydroPattern)
// must be preserved.
type Flag int

const (
	NotDef       Flag = -1
	ShellFlag    Flag = 0
	Linkable     Flag = 1
	CycleFlag    Flag = 2
	HydroPattern Flag = 3
	OxygenFlag   Flag = 4
	NitrogenFlag Flag = 5
	CarbonFlag   Flag = 6
	HydrogenFlag Flag = 7
)

// Atom is one point of an envelope or, downstream, a partially assembled
// cage: a coordinate, a role flag, the substrate atom it was projected
// from (or -1 for a synthesized point with no substrate parent), and its
// neighborhood in the envelope's own bond graph.
type Atom struct {
	Coords    geom.Vec3
	Flag      Flag
	Parent    int
	Neighbors *adjlist.List
}

// Shell is the envelope point cloud: a sentinel-slot atom array (so
// removing one atom never renumbers another), its cyclic-membership set,
// and the dependency graph inherited from the substrate's hydrogen-bond
// mutual-exclusion sites, re-keyed to envelope atom indices.
type Shell struct {
	Atoms      []*Atom
	Cycle      map[int]bool
	Dependency *adjlist.Graph
}

// NewShell returns an empty Shell ready for expansion.
func NewShell() *Shell {
	return &Shell{
		Cycle:      make(map[int]bool),
		Dependency: adjlist.NewGraph(),
	}
}

// AddAtom appends a new SHELL-flagged atom with the given coordinates and
// substrate parent, reusing a tombstoned slot if one is free, and returns
// its index.
func (s *Shell) AddAtom(coords geom.Vec3, parent int) int {
	for i, a := range s.Atoms {
		if a == nil {
			s.Atoms[i] = &Atom{Coords: coords, Flag: ShellFlag, Parent: parent, Neighbors: adjlist.NewList()}
			return i
		}
	}
	s.Atoms = append(s.Atoms, &Atom{Coords: coords, Flag: ShellFlag, Parent: parent, Neighbors: adjlist.NewList()})
	return len(s.Atoms) - 1
}

// Active returns the indices of every non-tombstoned atom, in slot order.
func (s *Shell) Active() []int {
	out := make([]int, 0, len(s.Atoms))
	for i, a := range s.Atoms {
		if a != nil {
			out = append(out, i)
		}
	}
	return out
}

// AddEdge links i and j symmetrically. Self-loops and out-of-range
// indices are ignored.
func (s *Shell) AddEdge(i, j int) {
	if i == j || !s.valid(i) || !s.valid(j) {
		return
	}
	s.Atoms[i].Neighbors.Add(j)
	s.Atoms[j].Neighbors.Add(i)
}

// RemoveEdge unlinks i and j if linked.
func (s *Shell) RemoveEdge(i, j int) {
	if !s.valid(i) || !s.valid(j) {
		return
	}
	s.Atoms[i].Neighbors.Remove(j)
	s.Atoms[j].Neighbors.Remove(i)
}

func (s *Shell) valid(i int) bool {
	return i >= 0 && i < len(s.Atoms) && s.Atoms[i] != nil
}

// RemoveAtom tombstones atom id: every incident edge is cleared, its
// cycle membership dropped, and its dependency-graph vertex (if any)
// removed.
func (s *Shell) RemoveAtom(id int) {
	if !s.valid(id) {
		return
	}
	for _, n := range s.Atoms[id].Neighbors.Active() {
		s.Atoms[n].Neighbors.Remove(id)
	}
	delete(s.Cycle, id)
	s.Dependency.RemoveVertex(id)
	s.Atoms[id] = nil
}

// AddCycle marks atom id as belonging to an aromatic ring.
func (s *Shell) AddCycle(id int) {
	s.Cycle[id] = true
}

// Merge absorbs eaten into eater: eaten's edges are re-pointed to eater,
// eater's flag becomes the higher of the two, eater inherits cycle
// membership if eaten had it, and eaten is removed. Mirrors
// SHL_mergeAtom's "eater eats eaten" semantics.
func (s *Shell) Merge(eater, eaten int) {
	if eater == eaten || !s.valid(eater) || !s.valid(eaten) {
		return
	}
	for _, n := range s.Atoms[eaten].Neighbors.Active() {
		if n != eater {
			s.AddEdge(eater, n)
		}
	}
	if s.Atoms[eaten].Flag > s.Atoms[eater].Flag {
		s.Atoms[eater].Flag = s.Atoms[eaten].Flag
	}
	if s.Cycle[eaten] {
		s.AddCycle(eater)
	}
	s.RemoveAtom(eaten)
}

// Degree returns the number of non-tombstoned neighbors of atom id.
func (s *Shell) Degree(id int) int {
	if !s.valid(id) {
		return 0
	}
	return s.Atoms[id].Neighbors.Len()
}

// Clone returns a deep copy of s: every worklist branch in path synthesis
// grows its own independent shell from a shared parent, so mutating a
// child must never be visible to a sibling.
func (s *Shell) Clone() *Shell {
	c := &Shell{
		Atoms:      make([]*Atom, len(s.Atoms)),
		Cycle:      make(map[int]bool, len(s.Cycle)),
		Dependency: s.Dependency.Clone(),
	}
	for i, a := range s.Atoms {
		if a == nil {
			continue
		}
		c.Atoms[i] = &Atom{
			Coords:    a.Coords,
			Flag:      a.Flag,
			Parent:    a.Parent,
			Neighbors: a.Neighbors.Clone(),
		}
	}
	for id, v := range s.Cycle {
		c.Cycle[id] = v
	}
	return c
}
