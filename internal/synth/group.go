package synth

import (
	"sort"

	"github.com/cagegen/cagegen/internal/envelope"
	"github.com/cagegen/cagegen/internal/voxel"
)

// Pair is one candidate endpoint pair a chain can be grown between.
type Pair struct {
	Start, End int
}

// StripShell removes every ShellFlag-flagged atom from s: once pattern
// insertion is done, the scaffold that produced the candidate positions
// has no further role, and path synthesis only ever looks at LINKABLE,
// CYCLE and HYDRO_PATTERN atoms.
func StripShell(s *envelope.Shell) {
	for _, id := range s.Active() {
		if s.Atoms[id].Flag == envelope.ShellFlag {
			s.RemoveAtom(id)
		}
	}
}

// groups assigns every active atom of s a connected-component id, using
// only the atoms and edges that survived StripShell.
func groups(s *envelope.Shell) map[int]int {
	comp := make(map[int]int, len(s.Atoms))
	next := 0
	for _, start := range s.Active() {
		if _, seen := comp[start]; seen {
			continue
		}
		stack := []int{start}
		comp[start] = next
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, n := range s.Atoms[cur].Neighbors.Active() {
				if _, seen := comp[n]; !seen {
					comp[n] = next
					stack = append(stack, n)
				}
			}
		}
		next++
	}
	return comp
}

// CandidatePairs returns every LINKABLE atom pair belonging to different
// groups, ordered by increasing obstacle-aware distance so the search
// tries the most promising bridges first.
func CandidatePairs(s *envelope.Shell, grid *voxel.Grid) []Pair {
	comp := groups(s)

	var linkable []int
	for _, id := range s.Active() {
		if s.Atoms[id].Flag == envelope.Linkable {
			linkable = append(linkable, id)
		}
	}

	var pairs []Pair
	for i := 0; i < len(linkable); i++ {
		for j := i + 1; j < len(linkable); j++ {
			a, b := linkable[i], linkable[j]
			if comp[a] != comp[b] {
				pairs = append(pairs, Pair{Start: a, End: b})
			}
		}
	}

	if grid != nil {
		sort.SliceStable(pairs, func(i, j int) bool {
			di := grid.DistWithObstacles(s.Atoms[pairs[i].Start].Coords, s.Atoms[pairs[i].End].Coords)
			dj := grid.DistWithObstacles(s.Atoms[pairs[j].Start].Coords, s.Atoms[pairs[j].End].Coords)
			return di < dj
		})
	}
	return pairs
}

// Connected reports whether every LINKABLE atom of s belongs to a single
// group, i.e. no candidate pair remains to bridge.
func Connected(s *envelope.Shell) bool {
	return len(CandidatePairs(s, nil)) == 0
}
