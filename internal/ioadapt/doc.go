// Package ioadapt holds the external-facing adapters named in
// SPEC_FULL.md §6: the XYZ substrate loader, the covalent-radius table
// reader, the MOL2 cage writer, and the AlphaShaper collaborator boundary.
package ioadapt

import "errors"

// Sentinel errors for the adapters in this package.
var (
	ErrMalformedXYZ     = errors.New("ioadapt: malformed xyz input")
	ErrMalformedRadii   = errors.New("ioadapt: malformed radius table")
	ErrTooFewPoints     = errors.New("ioadapt: alpha shape needs at least four points")
	ErrNonPositiveAlpha = errors.New("ioadapt: alpha must be positive")
)
