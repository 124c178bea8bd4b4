package pattern

import (
	"github.com/cagegen/cagegen/internal/geom"
	"github.com/cagegen/cagegen/internal/substrate"
)

// seekNormal finds a plane normal usable to orient a hydrogen-bond pattern
// at substrate atom id. An atom with only one neighbor, or exactly two
// neighbors in a linear (steric 2, lone-pair-free) arrangement, carries no
// real plane of its own, so the search walks outward away from dad through
// such atoms until it reaches one with a genuine branch, then returns the
// normal of the plane that branch atom forms with two of its own
// neighbors.
func seekNormal(mol *substrate.Molecule, id, dad int) geom.Vec3 {
	a := mol.Atoms[id]
	nbrs := a.Neighbors.Active()

	next := -1
	for _, n := range nbrs {
		if n != dad {
			next = n
			break
		}
	}

	if next == -1 {
		return fallbackNormal(mol, id, dad)
	}

	linear := len(nbrs) == 2 && a.Ligands == 2 && a.LonePairs == 0
	if len(nbrs) == 1 || linear {
		return seekNormal(mol, next, id)
	}

	other := -1
	for _, n := range nbrs {
		if n != dad && n != next {
			other = n
			break
		}
	}
	if other == -1 {
		if dad < 0 {
			return fallbackNormal(mol, id, next)
		}
		return geom.PlaneNormal(a.Coords, mol.Atoms[dad].Coords, mol.Atoms[next].Coords)
	}
	return geom.PlaneNormal(a.Coords, mol.Atoms[next].Coords, mol.Atoms[other].Coords)
}

// fallbackNormal returns an arbitrary unit vector orthogonal to the dad-id
// bond axis, used only when the walk in seekNormal runs off a dead end
// (an atom with no neighbor besides the one it was entered from).
func fallbackNormal(mol *substrate.Molecule, id, dad int) geom.Vec3 {
	axis := geom.Normalize(geom.Sub(mol.Atoms[id].Coords, mol.Atoms[dad].Coords))
	ref := geom.Vec3{X: 1, Y: 0, Z: 0}
	if geom.Dot(axis, ref) > 0.9 || geom.Dot(axis, ref) < -0.9 {
		ref = geom.Vec3{X: 0, Y: 1, Z: 0}
	}
	return geom.Normalize(geom.Cross(axis, ref))
}
