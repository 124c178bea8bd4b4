// Package substrate builds and analyzes the atomic model of the guest
// molecule: bond detection from covalent radii, ligand counts, cyclic
// membership, VSEPR steric-number and lone-pair inference, and the
// mutual-exclusion dependency graph over candidate hydrogen-bond sites.
//
// Substrate is read-only after Build returns (see the concurrency model in
// SPEC_FULL.md §5): every later pipeline stage treats *Molecule as an
// immutable value and only ever reads from it.
package substrate

import "errors"

// Sentinel errors for substrate construction.
var (
	// ErrUnknownElement indicates an atom symbol absent from the supplied
	// covalent-radius table.
	ErrUnknownElement = errors.New("substrate: unknown element symbol")
	// ErrEmptyMolecule indicates zero atoms were supplied.
	ErrEmptyMolecule = errors.New("substrate: molecule has no atoms")
)

// bondTolerance is the additive slack (centi-Angstrom) applied to the sum
// of two covalent radii when deciding whether a pair of atoms is bonded.
const bondTolerance = 20
