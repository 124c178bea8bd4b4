// Package envelope builds the decorated point cloud that surrounds a
// substrate molecule: per-atom VSEPR outward projection, α-shape
// triangulation of the resulting cloud, orphan removal, and edge-bridging
// along the substrate's own bonds. The result is a Shell that
// internal/pattern decorates further and internal/synth consumes.
package envelope

import "errors"

// Sentinel errors for envelope construction.
var (
	// ErrDegenerateTriangulation indicates expansion produced one to three
	// candidate points, too few to hand to the α-shape collaborator. A
	// shell with no candidate point at all is left untriangulated and is
	// not an error.
	ErrDegenerateTriangulation = errors.New("envelope: too few candidate points for triangulation")
)
