package synth

// Options tunes the path-synthesis search. SizeMax bounds chain length;
// the two booleans resolve the Open Questions the original's fixed loop
// bounds left implicit (see DESIGN.md).
type Options struct {
	// SizeMax is the maximum number of placement steps a single chain may
	// take between one endpoint pair, CLI `-s`, default 5. A step places one
	// pattern (a single atom, a carbonyl pair or a whole aromatic ring) and
	// counts as one, whatever its atom count.
	SizeMax int
	// AllowCarbonylStart additionally tries OXYGEN as a start-atom type
	// for a bridging chain (not just NITROGEN/CARBON).
	AllowCarbonylStart bool
	// RequireAromaticInChain rejects a completed chain that never placed
	// an aromatic ring pattern.
	RequireAromaticInChain bool
}

// DefaultOptions returns the CLI's documented defaults.
func DefaultOptions() Options {
	return Options{SizeMax: 5}
}
