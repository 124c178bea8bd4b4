package ioadapt

import (
	"strings"
	"testing"

	"github.com/cagegen/cagegen/internal/envelope"
	"github.com/cagegen/cagegen/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveCageMOL2WritesHeaderAndBlocks(t *testing.T) {
	s := envelope.NewShell()
	c := s.AddAtom(geom.Vec3{}, -1)
	n := s.AddAtom(geom.Vec3{X: 1.5}, -1)
	s.Atoms[c].Flag = envelope.CarbonFlag
	s.Atoms[n].Flag = envelope.NitrogenFlag
	s.AddEdge(c, n)

	var buf strings.Builder
	require.NoError(t, SaveCageMOL2(&buf, s))

	out := buf.String()
	assert.Contains(t, out, "@<TRIPOS>MOLECULE")
	assert.Contains(t, out, " 2 1 0 0 0")
	assert.Contains(t, out, "@<TRIPOS>ATOM")
	assert.Contains(t, out, "@<TRIPOS>BOND")
	assert.Contains(t, out, " 1 C")
	assert.Contains(t, out, " 2 N")
}

func TestSaveCageMOL2SkipsTombstonedAtomsAndRenumbers(t *testing.T) {
	s := envelope.NewShell()
	dead := s.AddAtom(geom.Vec3{}, -1)
	alive := s.AddAtom(geom.Vec3{X: 1}, -1)
	s.Atoms[alive].Flag = envelope.Linkable
	s.RemoveAtom(dead)

	var buf strings.Builder
	require.NoError(t, SaveCageMOL2(&buf, s))
	assert.Contains(t, buf.String(), " 1 P")
}

func TestElementSymbolDistinguishesHydroPatternDonorFromAcceptor(t *testing.T) {
	s := envelope.NewShell()
	donor := s.AddAtom(geom.Vec3{}, -1)
	arm := s.AddAtom(geom.Vec3{X: 1}, -1)
	s.Atoms[donor].Flag = envelope.HydroPattern
	s.Atoms[arm].Flag = envelope.HydroPattern
	s.AddEdge(donor, arm)

	assert.Equal(t, "H", elementSymbol(s, donor))

	other := s.AddAtom(geom.Vec3{X: 2}, -1)
	s.Atoms[other].Flag = envelope.Linkable
	s.RemoveEdge(donor, arm)
	s.AddEdge(donor, other)
	assert.Equal(t, "U", elementSymbol(s, donor))
}
