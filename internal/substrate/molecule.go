package substrate

import (
	"fmt"
	"math"

	"github.com/cagegen/cagegen/internal/adjlist"
	"github.com/cagegen/cagegen/internal/geom"
)

// Molecule is the fully analyzed substrate: atoms, their cycle membership,
// and the dependency graph of mutually exclusive hydrogen-bond sites.
type Molecule struct {
	Atoms      []*Atom
	Cycle      map[int]bool
	Dependency *adjlist.Graph
}

// Build analyzes rawAtoms into a Molecule: bond detection, ligand counts,
// cycle detection, lone-pair inference, and dependency-graph construction,
// in that order (each stage consumes the previous stage's output).
func Build(rawAtoms []RawAtom, radiusTable map[string]int) (*Molecule, error) {
	if len(rawAtoms) == 0 {
		return nil, ErrEmptyMolecule
	}

	atoms := make([]*Atom, len(rawAtoms))
	for i, ra := range rawAtoms {
		radius, ok := radiusTable[ra.Symbol]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownElement, ra.Symbol)
		}
		atoms[i] = &Atom{
			Symbol:    ra.Symbol,
			Radius:    radius,
			Coords:    ra.Coords,
			LonePairs: lonePairsUnresolved,
			Neighbors: adjlist.NewList(),
		}
	}

	m := &Molecule{Atoms: atoms, Dependency: adjlist.NewGraph()}

	m.detectBonds()
	m.computeLigands()
	cycleGraph := m.bondGraph()
	m.Cycle = adjlist.SeekCycle(cycleGraph)
	m.inferLonePairs()
	m.buildDependencyGraph()

	return m, nil
}

// detectBonds marks a bond between i and j iff
// 100*dist(i,j) <= bondTolerance + radius(i) + radius(j), radii given in
// centi-Angstrom.
func (m *Molecule) detectBonds() {
	for i := 0; i < len(m.Atoms); i++ {
		for j := i + 1; j < len(m.Atoms); j++ {
			d := geom.Distance(m.Atoms[i].Coords, m.Atoms[j].Coords)
			if int(100*d) <= bondTolerance+m.Atoms[i].Radius+m.Atoms[j].Radius {
				m.Atoms[i].Neighbors.Add(j)
				m.Atoms[j].Neighbors.Add(i)
			}
		}
	}
}

// computeLigands sets each atom's Ligands to its bonded-neighbor count.
func (m *Molecule) computeLigands() {
	for _, a := range m.Atoms {
		a.Ligands = a.Neighbors.Len()
	}
}

// bondGraph materializes the atom-index bond graph for cycle detection.
func (m *Molecule) bondGraph() *adjlist.Graph {
	g := adjlist.NewGraph()
	for i, a := range m.Atoms {
		g.AddVertex(i)
		for _, n := range a.Neighbors.Active() {
			g.AddEdge(i, n)
		}
	}
	return g
}

// averageNeighborAngle returns the average pairwise angle, in degrees,
// formed at atom i by all pairs of its neighbors. An atom with fewer than
// two neighbors has no pair to measure, so this reports NaN rather than an
// arbitrary zero: every comparison against NaN is false, which is exactly
// what routes such atoms to the "no geometry, no lone pairs" branch of
// resolveLonePairs instead of spuriously matching the tightest angle band.
func (m *Molecule) averageNeighborAngle(i int) float64 {
	nbrs := m.Atoms[i].Neighbors.Active()
	if len(nbrs) < 2 {
		return math.NaN()
	}
	sum, count := 0.0, 0
	center := m.Atoms[i].Coords
	for a := 0; a < len(nbrs); a++ {
		for b := a + 1; b < len(nbrs); b++ {
			sum += geom.AngleAtVertex(center, m.Atoms[nbrs[a]].Coords, m.Atoms[nbrs[b]].Coords)
			count++
		}
	}
	return sum / float64(count)
}

// isHalogen reports whether symbol is one of the halogens with a
// three-lone-pair, single-ligand default (Cl, Br, F, I).
func isHalogen(symbol string) bool {
	switch symbol {
	case "Cl", "Br", "F", "I":
		return true
	}
	return false
}

// inferLonePairs runs the two-pass lone-pair inference described in
// SPEC_FULL §4.M: non-degree-1 atoms are resolved first (since their
// formula only needs their own ligand count, average angle, and cyclic
// membership, plus, in one branch, a cyclic neighbor's steric number);
// degree-1 atoms are resolved next, using their single neighbor's now-known
// steric number; any atom left unresolved because the referenced neighbor
// was itself still unresolved is retried in further rounds until a
// fixed point is reached.
func (m *Molecule) inferLonePairs() {
	for round := 0; round < len(m.Atoms)+1; round++ {
		progressed := false
		for i, a := range m.Atoms {
			if a.LonePairs != lonePairsUnresolved {
				continue
			}
			if m.resolveLonePairs(i) {
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	// Atoms whose only path to a value ran through a neighbor stuck in the
	// same deadlock (e.g. two singly-bonded atoms with no other context)
	// never reach a fixed point; treat them as carrying no extra lone pairs
	// rather than leaving them permanently unresolved.
	for _, a := range m.Atoms {
		if a.LonePairs == lonePairsUnresolved {
			a.LonePairs = 0
		}
	}
}

// resolveLonePairs attempts to compute atom i's lone-pair count. Returns
// true if it resolved the atom, and false if the atom must be retried
// because a neighbor it depends on is still unresolved: the single
// neighbor of a degree-1 atom, or, in the cyclic/unknown branch below,
// every cyclic neighbor.
func (m *Molecule) resolveLonePairs(i int) bool {
	a := m.Atoms[i]
	cyclic := m.Cycle[i]

	if a.Ligands == 1 {
		nbr := a.Neighbors.Active()[0]
		switch {
		case a.Symbol == "H":
			a.LonePairs = 1
		case isHalogen(a.Symbol):
			a.LonePairs = 3
		default:
			stericNeighbor := m.Atoms[nbr].Steric()
			if stericNeighbor == lonePairsUnresolved {
				return false // retry once the neighbor resolves.
			}
			a.LonePairs = stericNeighbor - 1
		}
		return true
	}

	if a.Ligands == 4 {
		a.LonePairs = 0
		return true
	}

	alpha := m.averageNeighborAngle(i)
	switch {
	case abs(120-alpha) < 4:
		a.LonePairs = 3 - a.Ligands
		return true
	case alpha-109 < 7:
		stericNeighbor, known := m.cyclicNeighborSteric(i)
		switch {
		case cyclic && known && stericNeighbor == 3:
			a.LonePairs = 3 - a.Ligands
		case cyclic && !known:
			return false // genuinely unresolved until a neighbor settles.
		default:
			a.LonePairs = 4 - a.Ligands
		}
		return true
	default:
		a.LonePairs = 0
		return true
	}
}

// cyclicNeighborSteric returns the steric number of the first cyclic
// neighbor of atom i whose lone pairs are already resolved, and whether
// any cyclic neighbor exists at all (known=false only when i has cyclic
// neighbors but all are still unresolved).
func (m *Molecule) cyclicNeighborSteric(i int) (steric int, known bool) {
	a := m.Atoms[i]
	sawCyclicNeighbor := false
	for _, n := range a.Neighbors.Active() {
		if !m.Cycle[n] {
			continue
		}
		sawCyclicNeighbor = true
		if s := m.Atoms[n].Steric(); s != lonePairsUnresolved {
			return s, true
		}
	}
	if !sawCyclicNeighbor {
		return 0, true // no cyclic neighbor: treat as "known, not 3".
	}
	return 0, false
}

// buildDependencyGraph implements SPEC_FULL §4.M.6: for every O/N/F atom,
// collect all of its H neighbors, plus the atom itself when it carries at
// least one lone pair, into a mutual-exclusion set, and connect every pair
// within that set.
func (m *Molecule) buildDependencyGraph() {
	for i, a := range m.Atoms {
		if a.Symbol != "O" && a.Symbol != "N" && a.Symbol != "F" {
			continue
		}

		var site []int
		if a.LonePairs > 0 {
			site = append(site, i)
			m.Dependency.AddVertex(i)
		}
		for _, n := range a.Neighbors.Active() {
			if m.Atoms[n].Symbol == "H" {
				site = append(site, n)
				m.Dependency.AddVertex(n)
			}
		}

		for x := 0; x < len(site); x++ {
			for y := x + 1; y < len(site); y++ {
				m.Dependency.AddEdge(site[x], site[y])
			}
		}
	}
}

// DependencyComponents groups the dependency graph's vertices into
// connected components, one per independent hydrogen-bond "choice" the
// substrate offers (SPEC_FULL §4.M.8).
func (m *Molecule) DependencyComponents() [][]int {
	return m.Dependency.Components()
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
