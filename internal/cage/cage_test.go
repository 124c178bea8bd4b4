package cage

import (
	"context"
	"testing"

	"github.com/cagegen/cagegen/internal/geom"
	"github.com/cagegen/cagegen/internal/ioadapt"
	"github.com/cagegen/cagegen/internal/substrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWaterStreamsCagesOrReportsNoResults(t *testing.T) {
	raw := []substrate.RawAtom{
		{Symbol: "O", Coords: geom.Vec3{X: 0, Y: 0, Z: 0}},
		{Symbol: "H", Coords: geom.Vec3{X: 0.96, Y: 0, Z: 0}},
		{Symbol: "H", Coords: geom.Vec3{X: -0.24, Y: 0.93, Z: 0}},
	}
	radii := map[string]int{"O": 66, "H": 31}

	out, errc := Run(context.Background(), raw, radii, ioadapt.GiftWrapAlphaShape{}, Options{
		Alpha:      3.0,
		MaxResults: 3,
	})

	var cages []Cage
	for c := range out {
		cages = append(cages, c)
	}
	err := <-errc
	if err != nil {
		require.ErrorIs(t, err, ErrNoResults)
	} else {
		assert.NotEmpty(t, cages)
	}
}

func TestRunReturnsErrorOnUnknownElement(t *testing.T) {
	raw := []substrate.RawAtom{{Symbol: "Xx", Coords: geom.Vec3{}}}
	out, errc := Run(context.Background(), raw, map[string]int{}, ioadapt.GiftWrapAlphaShape{}, Options{Alpha: 3.0})

	for range out {
	}
	err := <-errc
	require.Error(t, err)
}

func TestRunRespectsContextCancellation(t *testing.T) {
	raw := []substrate.RawAtom{
		{Symbol: "O", Coords: geom.Vec3{X: 0, Y: 0, Z: 0}},
		{Symbol: "H", Coords: geom.Vec3{X: 0.96, Y: 0, Z: 0}},
		{Symbol: "H", Coords: geom.Vec3{X: -0.24, Y: 0.93, Z: 0}},
	}
	radii := map[string]int{"O": 66, "H": 31}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, errc := Run(ctx, raw, radii, ioadapt.GiftWrapAlphaShape{}, Options{Alpha: 3.0, MaxResults: 10})
	for range out {
	}
	<-errc
}
