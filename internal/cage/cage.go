// Package cage sequences the full generation pipeline — substrate
// analysis, envelope expansion, pattern insertion, and path synthesis —
// and streams the resulting cages to a caller-supplied channel.
package cage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cagegen/cagegen/internal/envelope"
	"github.com/cagegen/cagegen/internal/geom"
	"github.com/cagegen/cagegen/internal/ioadapt"
	"github.com/cagegen/cagegen/internal/pattern"
	"github.com/cagegen/cagegen/internal/substrate"
	"github.com/cagegen/cagegen/internal/synth"
	"github.com/cagegen/cagegen/internal/voxel"
)

var ErrNoResults = errors.New("cage: no candidate cage was produced")

// Options bundles the run parameters the enumerator needs: the resolution
// parameter α for the envelope pass, the chain-growth limits from
// internal/synth, and a cap on the number of cages streamed to the
// caller (spec.md §5's "callers may set an external cage-count cap").
type Options struct {
	Alpha      float64
	Synth      synth.Options
	MaxResults int
}

// Cage is one emitted candidate: the substrate the cage encloses and the
// decorated, fully bonded envelope forming the cage itself.
type Cage struct {
	Substrate *substrate.Molecule
	Shell     *envelope.Shell
}

// Run executes substrate analysis, envelope expansion, pattern insertion,
// and path synthesis in sequence, streaming at most opts.MaxResults cages
// on the returned channel. Both channels are closed when the run ends;
// the error channel carries at most one value. Canceling ctx, or reaching
// opts.MaxResults, stops further cages from being sent without treating
// it as an error; synth.Enumerate itself still runs until its worklist is
// empty before the channels are closed.
func Run(ctx context.Context, rawAtoms []substrate.RawAtom, radiusTable map[string]int, shaper ioadapt.AlphaShaper, opts Options) (<-chan Cage, <-chan error) {
	out := make(chan Cage)
	errc := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errc)

		mol, err := substrate.Build(rawAtoms, radiusTable)
		if err != nil {
			errc <- fmt.Errorf("cage: substrate analysis: %w", err)
			return
		}

		shell, err := envelope.Build(mol, shaper, opts.Alpha)
		if err != nil {
			errc <- fmt.Errorf("cage: envelope expansion: %w", err)
			return
		}

		pattern.InsertRingPatterns(shell)
		pattern.InsertHydrogenPatterns(mol, shell)

		grid := voxel.NewGrid()
		grid.MarkSubstrate(substrateCoords(mol))

		emitted := 0
		synth.Enumerate(mol, shell, grid, opts.Synth, func(result *envelope.Shell) {
			if ctx.Err() != nil {
				return
			}
			if opts.MaxResults > 0 && emitted >= opts.MaxResults {
				return
			}
			select {
			case out <- Cage{Substrate: mol, Shell: result}:
				emitted++
			case <-ctx.Done():
			}
		})

		if emitted == 0 && ctx.Err() == nil {
			errc <- ErrNoResults
		}
	}()

	return out, errc
}

func substrateCoords(mol *substrate.Molecule) []geom.Vec3 {
	out := make([]geom.Vec3, len(mol.Atoms))
	for i, a := range mol.Atoms {
		out[i] = a.Coords
	}
	return out
}
