package substrate

import (
	"math"
	"testing"

	"github.com/cagegen/cagegen/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRadii = map[string]int{
	"H": 31, "C": 77, "N": 70, "O": 66, "F": 57, "Cl": 99,
}

func TestBuildRejectsEmpty(t *testing.T) {
	_, err := Build(nil, testRadii)
	assert.ErrorIs(t, err, ErrEmptyMolecule)
}

func TestBuildRejectsUnknownElement(t *testing.T) {
	_, err := Build([]RawAtom{{Symbol: "Xx", Coords: geom.Vec3{}}}, testRadii)
	assert.ErrorIs(t, err, ErrUnknownElement)
}

func TestSingleCarbonAtom(t *testing.T) {
	// Scenario 1: lone carbon, no hydrogens.
	mol, err := Build([]RawAtom{{Symbol: "C", Coords: geom.Vec3{}}}, testRadii)
	require.NoError(t, err)
	assert.Equal(t, 0, mol.Atoms[0].Ligands)
	assert.Equal(t, 0, mol.Atoms[0].LonePairs)
	assert.Equal(t, 4, mol.Atoms[0].Steric())
}

func TestWaterDependencyGraph(t *testing.T) {
	// Scenario 2: O at origin with two H at a bonded distance.
	mol, err := Build([]RawAtom{
		{Symbol: "O", Coords: geom.Vec3{X: 0, Y: 0, Z: 0}},
		{Symbol: "H", Coords: geom.Vec3{X: 0.96, Y: 0, Z: 0}},
		{Symbol: "H", Coords: geom.Vec3{X: -0.24, Y: 0.93, Z: 0}},
	}, testRadii)
	require.NoError(t, err)

	assert.Empty(t, mol.Cycle)
	assert.Equal(t, 2, mol.Atoms[0].Ligands)

	// O-H1, O-H2, H1-H2 should all be mutually exclusive pairs.
	assert.ElementsMatch(t, []int{1, 2}, mol.Dependency.Neighbors(0))
	assert.Contains(t, mol.Dependency.Neighbors(1), 2)
}

func TestTwoCarbonBond(t *testing.T) {
	// Scenario 6: two carbons at bonding distance, exactly one bond.
	// Each carbon's only neighbor is itself singly-bonded with no other
	// substrate context to resolve a steric number from, so lone-pair
	// inference bottoms out at zero for both (see DESIGN.md's note on this
	// scenario, which treats its "steric 3" wording as imprecise and keeps
	// "lonePairs 0").
	mol, err := Build([]RawAtom{
		{Symbol: "C", Coords: geom.Vec3{X: 0, Y: 0, Z: 0}},
		{Symbol: "C", Coords: geom.Vec3{X: 1.4, Y: 0, Z: 0}},
	}, testRadii)
	require.NoError(t, err)

	assert.Equal(t, 1, mol.Atoms[0].Ligands)
	assert.Equal(t, 1, mol.Atoms[1].Ligands)
	assert.Equal(t, 0, mol.Atoms[0].LonePairs)
	assert.Equal(t, 0, mol.Atoms[1].LonePairs)
}

func TestBenzeneCycleDetection(t *testing.T) {
	// Scenario 3: six cyclic carbons in a regular hexagon, C-C = 1.4 A.
	var raw []RawAtom
	const n = 6
	const r = 1.4 // a regular hexagon's side equals its circumradius
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / n
		raw = append(raw, RawAtom{
			Symbol: "C",
			Coords: geom.Vec3{X: float32(r * math.Cos(angle)), Y: float32(r * math.Sin(angle)), Z: 0},
		})
	}
	mol, err := Build(raw, testRadii)
	require.NoError(t, err)
	assert.Len(t, mol.Cycle, 6)
}

func TestGrossFormulaWater(t *testing.T) {
	mol, err := Build([]RawAtom{
		{Symbol: "O", Coords: geom.Vec3{X: 0, Y: 0, Z: 0}},
		{Symbol: "H", Coords: geom.Vec3{X: 0.96, Y: 0, Z: 0}},
		{Symbol: "H", Coords: geom.Vec3{X: -0.24, Y: 0.93, Z: 0}},
	}, testRadii)
	require.NoError(t, err)
	assert.Equal(t, "H2O", mol.GrossFormula())
}
