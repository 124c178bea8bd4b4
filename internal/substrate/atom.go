package substrate

import (
	"github.com/cagegen/cagegen/internal/adjlist"
	"github.com/cagegen/cagegen/internal/geom"
)

// lonePairsUnresolved marks an atom whose lone-pair count could not be
// determined in the first inference pass because it depends on a cyclic
// neighbor's steric number, itself not yet known.
const lonePairsUnresolved = -1

// Atom is one atom of the substrate: element identity, covalent radius,
// inferred VSEPR data, coordinates, and a sentinel-slot neighborhood.
type Atom struct {
	Symbol    string
	Radius    int // centi-Angstrom
	Ligands   int
	LonePairs int
	Coords    geom.Vec3
	Neighbors *adjlist.List
}

// defaultValence gives the steric number an isolated, bond-free atom is
// treated as carrying: there is no bond geometry to infer one from, so
// envelope expansion falls back to the element's ordinary valence instead
// of the degenerate ligands+lonePairs=0 sum.
var defaultValence = map[string]int{
	"H": 1, "C": 4, "N": 3, "O": 2, "F": 1, "Cl": 1, "Br": 1, "I": 1,
}

// Steric returns the atom's steric number (ligands + lone pairs), or -1 if
// lone pairs are still unresolved. An atom with no bonds at all has no
// geometry to derive a steric number from, so it reports its element's
// ordinary valence instead.
func (a *Atom) Steric() int {
	if a.LonePairs == lonePairsUnresolved {
		return lonePairsUnresolved
	}
	if a.Ligands == 0 {
		if v, ok := defaultValence[a.Symbol]; ok {
			return v
		}
		return 4
	}
	return a.Ligands + a.LonePairs
}

// RawAtom is the loader-facing input shape: an element symbol and
// coordinates, with no derived chemistry yet.
type RawAtom struct {
	Symbol string
	Coords geom.Vec3
}
