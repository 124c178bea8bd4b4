package ioadapt

import (
	"fmt"
	"io"

	"github.com/cagegen/cagegen/internal/envelope"
)

// SaveCageMOL2 writes one Tripos MOL2 record for s: a header giving atom
// and bond counts, an @<TRIPOS>ATOM block with element symbols derived
// from each atom's flag, and an @<TRIPOS>BOND block with single bonds.
// Tombstoned slots are skipped and the remaining atoms are renumbered
// 1-based in slot order, mirroring SHL_writeMol2's index remapping.
func SaveCageMOL2(w io.Writer, s *envelope.Shell) error {
	active := s.Active()
	index := make(map[int]int, len(active))
	for j, id := range active {
		index[id] = j + 1
	}

	bonds := countBonds(s, active)

	if _, err := fmt.Fprintf(w, "@<TRIPOS>MOLECULE\n*****\n %d %d 0 0 0\nSMALL\nGASTEIGER\n\n", len(active), bonds); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "@<TRIPOS>ATOM\n"); err != nil {
		return err
	}
	for _, id := range active {
		a := s.Atoms[id]
		sym := elementSymbol(s, id)
		if _, err := fmt.Fprintf(w, " %3d %s    %3.4f   %3.4f   %3.4f   %s\n",
			index[id], sym, a.Coords.X, a.Coords.Y, a.Coords.Z, sym); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "\n@<TRIPOS>BOND\n"); err != nil {
		return err
	}
	l := 1
	for _, id := range active {
		for _, n := range s.Atoms[id].Neighbors.Active() {
			if id < n {
				if _, err := fmt.Fprintf(w, " %3d %3d %3d %3d\n", l, index[id], index[n], 1); err != nil {
					return err
				}
				l++
			}
		}
	}
	return nil
}

func countBonds(s *envelope.Shell, active []int) int {
	n := 0
	for _, id := range active {
		for _, nb := range s.Atoms[id].Neighbors.Active() {
			if id < nb {
				n++
			}
		}
	}
	return n
}

// elementSymbol derives a MOL2 element symbol from an envelope atom's
// flag, matching SHL_writeMol2's CYCLE->S, HYDRO_PATTERN leaf->H/U,
// LINKABLE branch/leaf->C/P, path-chain flags as themselves, fallback Al.
func elementSymbol(s *envelope.Shell, id int) string {
	a := s.Atoms[id]
	switch a.Flag {
	case envelope.CycleFlag:
		return "S"
	case envelope.HydroPattern:
		nbrs := a.Neighbors.Active()
		if len(nbrs) == 1 && s.Atoms[nbrs[0]].Flag == envelope.HydroPattern {
			return "H"
		}
		return "U"
	case envelope.Linkable:
		if len(a.Neighbors.Active()) > 1 {
			return "C"
		}
		return "P"
	case envelope.OxygenFlag:
		return "O"
	case envelope.NitrogenFlag:
		return "N"
	case envelope.CarbonFlag:
		return "C"
	case envelope.HydrogenFlag:
		return "H"
	default:
		return "Al"
	}
}
