package pattern

import (
	"testing"

	"github.com/cagegen/cagegen/internal/envelope"
	"github.com/cagegen/cagegen/internal/geom"
	"github.com/cagegen/cagegen/internal/ioadapt"
	"github.com/cagegen/cagegen/internal/substrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRadii = map[string]int{
	"H": 31, "C": 77, "N": 70, "O": 66,
}

func TestInsertHydrogenPatternsWaterDecoratesBothSites(t *testing.T) {
	// Scenario 2: water's two O-H bonds each become a donor site, and the
	// oxygen's own lone-pair arms each become an acceptor site.
	mol, err := substrate.Build([]substrate.RawAtom{
		{Symbol: "O", Coords: geom.Vec3{X: 0, Y: 0, Z: 0}},
		{Symbol: "H", Coords: geom.Vec3{X: 0.96, Y: 0, Z: 0}},
		{Symbol: "H", Coords: geom.Vec3{X: -0.24, Y: 0.93, Z: 0}},
	}, testRadii)
	require.NoError(t, err)

	s, err := envelope.Build(mol, ioadapt.GiftWrapAlphaShape{}, 3.0)
	require.NoError(t, err)
	require.NotEmpty(t, s.Dependency.Vertices())

	before := len(s.Active())
	InsertHydrogenPatterns(mol, s)
	after := len(s.Active())
	assert.Greater(t, after, before)

	var linkable, hydro []int
	for _, id := range s.Active() {
		switch s.Atoms[id].Flag {
		case envelope.Linkable:
			linkable = append(linkable, id)
		case envelope.HydroPattern:
			hydro = append(hydro, id)
		}
	}
	assert.NotEmpty(t, hydro)
	// Water offers three independent hydrogen-bond sites (two O-H donors
	// and the oxygen's own lone pairs), so scenario 2 expects at least
	// three viable path-synthesis endpoints.
	assert.GreaterOrEqual(t, len(linkable), 3)

	for _, id := range linkable {
		nbrs := s.Atoms[id].Neighbors.Active()
		require.Len(t, nbrs, 1, "linkable arm %d should have exactly one bond, to its hydro-pattern root", id)
		assert.Equal(t, envelope.HydroPattern, s.Atoms[nbrs[0]].Flag)
	}
}

func TestInsertHydrogenPatternsSkipsAtomsWithNoLonePairs(t *testing.T) {
	// A lone lookup-table carbon (no dependency vertex at all) should
	// produce no hydro-pattern or linkable arms.
	mol, err := substrate.Build([]substrate.RawAtom{
		{Symbol: "C", Coords: geom.Vec3{}},
	}, testRadii)
	require.NoError(t, err)

	s, err := envelope.Build(mol, ioadapt.GiftWrapAlphaShape{}, 3.0)
	require.NoError(t, err)
	require.Empty(t, s.Dependency.Vertices())

	InsertHydrogenPatterns(mol, s)
	for _, id := range s.Active() {
		assert.NotEqual(t, envelope.HydroPattern, s.Atoms[id].Flag)
		assert.NotEqual(t, envelope.Linkable, s.Atoms[id].Flag)
	}
}

func TestInsertRingPatternsClosesDegreeTwoVertex(t *testing.T) {
	s := envelope.NewShell()
	center := s.AddAtom(geom.Vec3{X: 0, Y: 0, Z: 0}, 0)
	left := s.AddAtom(geom.Vec3{X: -1.4, Y: 0, Z: 0}, 0)
	right := s.AddAtom(geom.Vec3{X: 0.7, Y: 1.2, Z: 0}, 0)
	s.AddEdge(center, left)
	s.AddEdge(center, right)
	s.AddCycle(center)
	s.AddCycle(left)
	s.AddCycle(right)

	before := len(s.Active())
	InsertRingPatterns(s)
	after := len(s.Active())

	assert.Equal(t, envelope.CycleFlag, s.Atoms[center].Flag)
	// Its two kept ring bonds plus the bond to the inserted closure atom.
	assert.Equal(t, 3, s.Degree(center))
	assert.Greater(t, after, before)
}

func TestInsertRingPatternsIgnoresAtomWithOneCycleNeighbor(t *testing.T) {
	s := envelope.NewShell()
	a := s.AddAtom(geom.Vec3{X: 0, Y: 0, Z: 0}, 0)
	b := s.AddAtom(geom.Vec3{X: 1.4, Y: 0, Z: 0}, 0)
	s.AddEdge(a, b)
	s.AddCycle(a)
	s.AddCycle(b)
	// b is a's only neighbor, so a has exactly one qualifying cycle neighbor.

	before := len(s.Active())
	InsertRingPatterns(s)
	assert.Equal(t, before, len(s.Active()))
}

func TestInsertRingPatternsMergesCoincidentClosurePoint(t *testing.T) {
	s := envelope.NewShell()
	center := s.AddAtom(geom.Vec3{X: 0, Y: 0, Z: 0}, 0)
	left := s.AddAtom(geom.Vec3{X: -1.4, Y: 0, Z: 0}, 0)
	right := s.AddAtom(geom.Vec3{X: 0.7, Y: 1.2, Z: 0}, 0)
	s.AddEdge(center, left)
	s.AddEdge(center, right)
	s.AddCycle(center)
	s.AddCycle(left)
	s.AddCycle(right)

	closure := geom.RingClosurePoint(
		s.Atoms[center].Coords, s.Atoms[left].Coords, s.Atoms[right].Coords, geom.SimpleCycle)
	coincident := s.AddAtom(closure, 0)

	InsertRingPatterns(s)
	assert.Nil(t, s.Atoms[coincident])
}
