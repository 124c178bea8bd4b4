package synth

import (
	"github.com/cagegen/cagegen/internal/envelope"
	"github.com/cagegen/cagegen/internal/substrate"
	"github.com/cagegen/cagegen/internal/voxel"
)

// startElements lists the element types a new bridging chain may begin
// with; OXYGEN is added only when opts.AllowCarbonylStart is set.
func startElements(opts Options) []envelope.Flag {
	elems := []envelope.Flag{envelope.NitrogenFlag, envelope.CarbonFlag}
	if opts.AllowCarbonylStart {
		elems = append(elems, envelope.OxygenFlag)
	}
	return elems
}

// Enumerate drives the worklist state machine described in spec.md §4.S:
// strip the scaffold, then repeatedly pop a partial cage, pick the
// closest remaining endpoint pair (ordered by grid's obstacle-aware
// distance), and grow a bridging chain for every allowed start element.
// Every cage with no endpoint pairs left is connected and is passed to
// emit. emit takes ownership of the cage; Enumerate never reads it again.
func Enumerate(mol *substrate.Molecule, shell *envelope.Shell, grid *voxel.Grid, opts Options, emit func(*envelope.Shell)) {
	start := shell.Clone()
	StripShell(start)

	work := []*envelope.Shell{start}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]

		pairs := CandidatePairs(cur, grid)
		if len(pairs) == 0 {
			emit(cur)
			continue
		}

		pair := pairs[0]
		for _, elem := range startElements(opts) {
			branch := cur.Clone()
			branch.Atoms[pair.Start].Flag = elem

			for _, chain := range grow(mol, branch, pair.Start, pair.End, 0, 0, 1, opts) {
				work = append(work, chain)
			}
		}
	}
}
