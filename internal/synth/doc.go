// Package synth turns a decorated envelope into connected cage candidates:
// it strips the envelope's own SHELL scaffold, finds the LINKABLE atoms
// still needing a bond partner, and grows covalent chains between pairs
// from different groups until every LINKABLE atom belongs to one
// connected component.
package synth

import "errors"

var (
	// ErrNoChainFound names the case where no rotational variant of any
	// pattern kind reaches the target within quota. No function returns it:
	// grow reports that case as an empty result, which callers treat as a
	// silent branch rejection, not a run failure.
	ErrNoChainFound = errors.New("synth: no chain variant reached the target")
)
