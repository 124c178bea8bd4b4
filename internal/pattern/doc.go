// Package pattern runs the two decoration passes SPEC_FULL.md §4.P names
// over an already-triangulated envelope.Shell: aromatic-ring substitution
// (promoting cyclic envelope neighborhoods into a six-membered ring
// scaffold) and hydrogen-bond donor/acceptor pattern insertion (turning
// each dependency-graph site into a concrete H-bond geometry with
// LINKABLE leaves path synthesis can grow chains from).
package pattern
