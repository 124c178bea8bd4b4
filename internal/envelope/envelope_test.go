package envelope

import (
	"testing"

	"github.com/cagegen/cagegen/internal/geom"
	"github.com/cagegen/cagegen/internal/ioadapt"
	"github.com/cagegen/cagegen/internal/substrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRadii = map[string]int{
	"H": 31, "C": 77, "N": 70, "O": 66, "F": 57, "Cl": 99,
}

func TestShellAddAtomReusesTombstone(t *testing.T) {
	s := NewShell()
	a := s.AddAtom(geom.Vec3{}, 0)
	b := s.AddAtom(geom.Vec3{X: 1}, 0)
	s.RemoveAtom(a)
	c := s.AddAtom(geom.Vec3{X: 2}, 0)
	assert.Equal(t, a, c)
	assert.Len(t, s.Active(), 2)
	assert.Contains(t, s.Active(), b)
	assert.Contains(t, s.Active(), c)
}

func TestShellMergeKeepsHigherFlag(t *testing.T) {
	s := NewShell()
	eater := s.AddAtom(geom.Vec3{}, 0)
	eaten := s.AddAtom(geom.Vec3{X: 1}, 0)
	other := s.AddAtom(geom.Vec3{X: 2}, 0)
	s.AddEdge(eaten, other)
	s.Atoms[eaten].Flag = CycleFlag

	s.Merge(eater, eaten)

	assert.Equal(t, CycleFlag, s.Atoms[eater].Flag)
	assert.True(t, s.Atoms[eater].Neighbors.Has(other))
	assert.Nil(t, s.Atoms[eaten])
}

func TestBuildSingleCarbonYieldsFourPoints(t *testing.T) {
	// Scenario 1: a lone carbon gets a full steric-4 shell of 4 points.
	mol, err := substrate.Build([]substrate.RawAtom{{Symbol: "C", Coords: geom.Vec3{}}}, testRadii)
	require.NoError(t, err)

	s := NewShell()
	expand(mol, s)

	assert.Len(t, s.Active(), 4)
	for _, id := range s.Active() {
		assert.InDelta(t, geom.DistHydro, geom.Distance(s.Atoms[id].Coords, mol.Atoms[0].Coords), 1e-4)
	}
}

func TestBuildTwoCarbonsNoCandidatePoints(t *testing.T) {
	// Scenario 6: two singly-bonded carbons with no further substrate
	// context don't match any dispatch branch, so expansion adds nothing.
	mol, err := substrate.Build([]substrate.RawAtom{
		{Symbol: "C", Coords: geom.Vec3{X: 0, Y: 0, Z: 0}},
		{Symbol: "C", Coords: geom.Vec3{X: 1.4, Y: 0, Z: 0}},
	}, testRadii)
	require.NoError(t, err)

	s := NewShell()
	expand(mol, s)
	assert.Empty(t, s.Active())
}

func TestBuildWaterDependencyInherited(t *testing.T) {
	mol, err := substrate.Build([]substrate.RawAtom{
		{Symbol: "O", Coords: geom.Vec3{X: 0, Y: 0, Z: 0}},
		{Symbol: "H", Coords: geom.Vec3{X: 0.96, Y: 0, Z: 0}},
		{Symbol: "H", Coords: geom.Vec3{X: -0.24, Y: 0.93, Z: 0}},
	}, testRadii)
	require.NoError(t, err)

	s, err := Build(mol, ioadapt.GiftWrapAlphaShape{}, 3.0)
	require.NoError(t, err)

	// Every substrate dependency vertex (O, H1, H2) should have at least
	// one envelope counterpart in the inherited dependency graph.
	assert.NotEmpty(t, s.Dependency.Vertices())
}

func TestTriangulateRemovesOrphans(t *testing.T) {
	s := NewShell()
	// Four coplanar points plus one far outlier that no triangle's alpha
	// ball will ever include.
	s.AddAtom(geom.Vec3{X: 0, Y: 0, Z: 0}, 0)
	s.AddAtom(geom.Vec3{X: 1, Y: 0, Z: 0}, 0)
	s.AddAtom(geom.Vec3{X: 0, Y: 1, Z: 0}, 0)
	s.AddAtom(geom.Vec3{X: 1, Y: 1, Z: 0}, 0)
	outlier := s.AddAtom(geom.Vec3{X: 1000, Y: 1000, Z: 1000}, 0)

	err := triangulate(s, ioadapt.GiftWrapAlphaShape{}, 3.0)
	require.NoError(t, err)

	assert.Nil(t, s.Atoms[outlier])
}
