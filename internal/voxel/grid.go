package voxel

import (
	"math"

	"github.com/cagegen/cagegen/internal/geom"
)

// Cell is a single occupancy cell: 1 (occupied) or 0 (free).
type Cell = uint8

// vcell is the VMap companion entry for one grid cell. gen ties the entry
// to a search generation so a fresh Dijkstra/AStar call can treat any
// stale entry as "never visited" without re-zeroing the whole grid.
type vcell struct {
	gen    uint32
	bestG  float64
	node   *vnode
	closed bool
}

// Grid is the 3-D occupancy grid plus its VMap, allocated once per
// enumeration and reused by every pathfinding call. It holds no search
// heap; each pathfinding call allocates its own.
type Grid struct {
	occupied []Cell
	vmap     []vcell
	gen      uint32
}

// NewGrid allocates an empty GridSize^3 occupancy grid.
func NewGrid() *Grid {
	n := GridSize * GridSize * GridSize
	return &Grid{
		occupied: make([]Cell, n),
		vmap:     make([]vcell, n),
	}
}

// idx flattens 3-D cell coordinates into the backing array index.
func idx(x, y, z int) int {
	return (x*GridSize+y)*GridSize + z
}

// InBounds reports whether (x,y,z) lies within the grid.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < GridSize && y >= 0 && y < GridSize && z >= 0 && z < GridSize
}

// CellOf returns the grid coordinate containing point p, clamped to the
// grid's bounds.
func CellOf(p geom.Vec3) (int, int, int) {
	clamp := func(v float32) int {
		c := int(math.Round((float64(v) - StartGrid) / CellSize))
		if c < 0 {
			return 0
		}
		if c >= GridSize {
			return GridSize - 1
		}
		return c
	}
	return clamp(p.X), clamp(p.Y), clamp(p.Z)
}

// CellCenter returns the real-space center of cell (x,y,z).
func CellCenter(x, y, z int) geom.Vec3 {
	f := func(i int) float32 {
		return float32(StartGrid + float64(i)*CellSize)
	}
	return geom.Vec3{X: f(x), Y: f(y), Z: f(z)}
}

// MarkOccupied marks every cell within radius of center as occupied.
func (g *Grid) MarkOccupied(center geom.Vec3, radius float64) {
	cx, cy, cz := CellOf(center)
	span := int(math.Ceil(radius/CellSize)) + 1

	for dx := -span; dx <= span; dx++ {
		for dy := -span; dy <= span; dy++ {
			for dz := -span; dz <= span; dz++ {
				x, y, z := cx+dx, cy+dy, cz+dz
				if !InBounds(x, y, z) {
					continue
				}
				c := CellCenter(x, y, z)
				if geom.Distance(c, center) <= radius {
					g.occupied[idx(x, y, z)] = 1
				}
			}
		}
	}
}

// Occupied reports whether cell (x,y,z) is occupied.
func (g *Grid) Occupied(x, y, z int) bool {
	return g.occupied[idx(x, y, z)] != 0
}

// MarkSubstrate marks occupancy for every substrate atom center at the
// standard substrate clearance radius.
func (g *Grid) MarkSubstrate(centers []geom.Vec3) {
	for _, c := range centers {
		g.MarkOccupied(c, DistGapSubstrate)
	}
}
