package substrate

import (
	"fmt"
	"sort"
	"strings"
)

// atomicWeights is a compact table of standard atomic weights (g/mol) for
// the elements this domain expects to encounter, in the spirit of
// cx-luo-go-chem's periodic element table but trimmed to what
// GrossFormula/MolecularWeight need.
var atomicWeights = map[string]float64{
	"H": 1.008, "He": 4.0026, "Li": 6.94, "Be": 9.0122, "B": 10.81,
	"C": 12.011, "N": 14.007, "O": 15.999, "F": 18.998, "Ne": 20.180,
	"Na": 22.990, "Mg": 24.305, "Al": 26.982, "Si": 28.085, "P": 30.974,
	"S": 32.06, "Cl": 35.45, "Ar": 39.948, "K": 39.098, "Ca": 40.078,
	"Br": 79.904, "I": 126.90,
}

// GrossFormula returns the Hill-order gross formula string of the
// molecule: carbon first (if present), then hydrogen, then every other
// element alphabetically, each with its atom count ("" if count is 1).
func (m *Molecule) GrossFormula() string {
	counts := make(map[string]int)
	for _, a := range m.Atoms {
		counts[a.Symbol]++
	}

	var b strings.Builder
	appendElem := func(sym string) {
		n, ok := counts[sym]
		if !ok {
			return
		}
		b.WriteString(sym)
		if n > 1 {
			fmt.Fprintf(&b, "%d", n)
		}
		delete(counts, sym)
	}

	if _, hasCarbon := counts["C"]; hasCarbon {
		appendElem("C")
		appendElem("H")
	}

	rest := make([]string, 0, len(counts))
	for sym := range counts {
		rest = append(rest, sym)
	}
	sort.Strings(rest)
	for _, sym := range rest {
		appendElem(sym)
	}

	return b.String()
}

// MolecularWeight returns the sum of standard atomic weights over every
// atom in the molecule. Unknown symbols contribute zero.
func (m *Molecule) MolecularWeight() float64 {
	total := 0.0
	for _, a := range m.Atoms {
		total += atomicWeights[a.Symbol]
	}
	return total
}
