package voxel

import (
	"testing"

	"github.com/cagegen/cagegen/internal/geom"
	"github.com/stretchr/testify/assert"
)

func TestAStarEmptyGridDiagonal(t *testing.T) {
	// Scenario: A* on an empty grid from cell (0,0,0) to cell (10,10,10),
	// cellSize 0.3 -> expected g = 10*cellSize*sqrt(3) ~= 5.196.
	g := NewGrid()
	got := g.AStar(0, 0, 0, 10, 10, 10)
	want := 10 * CellSize * 1.7320508
	assert.InDelta(t, want, got, 1e-3)
}

func TestAStarDijkstraAgree(t *testing.T) {
	g := NewGrid()
	// Scatter some obstacles.
	g.MarkOccupied(geom.Vec3{X: 1, Y: 0, Z: 0}, 0.5)
	g.MarkOccupied(geom.Vec3{X: -1, Y: 0.5, Z: 0}, 0.5)

	sx, sy, sz := CellOf(geom.Vec3{X: -3, Y: -3, Z: -3})
	gx, gy, gz := CellOf(geom.Vec3{X: 3, Y: 3, Z: 3})

	a := g.AStar(sx, sy, sz, gx, gy, gz)
	d := g.Dijkstra(sx, sy, sz, gx, gy, gz)
	assert.InDelta(t, d, a, 1e-6)
}

func TestNoPathWhenSealed(t *testing.T) {
	g := NewGrid()
	center := geom.Vec3{X: 0, Y: 0, Z: 0}
	// Seal the start cell inside a thick shell of occupied cells.
	for _, d := range offsets26 {
		p := geom.Vec3{
			X: center.X + float32(d[0])*float32(CellSize),
			Y: center.Y + float32(d[1])*float32(CellSize),
			Z: center.Z + float32(d[2])*float32(CellSize),
		}
		g.MarkOccupied(p, CellSize*0.4)
	}

	sx, sy, sz := CellOf(center)
	gx, gy, gz := CellOf(geom.Vec3{X: 10, Y: 10, Z: 10})
	got := g.AStar(sx, sy, sz, gx, gy, gz)
	assert.Equal(t, NoPath, got)
}

func TestGridReuseAcrossCalls(t *testing.T) {
	g := NewGrid()
	sx, sy, sz := CellOf(geom.Vec3{X: 0, Y: 0, Z: 0})
	gx, gy, gz := CellOf(geom.Vec3{X: 2, Y: 0, Z: 0})

	first := g.AStar(sx, sy, sz, gx, gy, gz)
	second := g.AStar(sx, sy, sz, gx, gy, gz)
	assert.Equal(t, first, second)
}

func TestDistWithObstaclesAddsCellOffsets(t *testing.T) {
	g := NewGrid()
	p := geom.Vec3{X: 0.05, Y: 0, Z: 0}
	q := geom.Vec3{X: 2.05, Y: 0, Z: 0}
	d := g.DistWithObstacles(p, q)
	assert.Greater(t, d, 0.0)
}
