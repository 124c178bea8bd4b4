package voxel

import (
	"container/heap"
	"math"

	"github.com/cagegen/cagegen/internal/geom"
)

// offsets26 lists every 26-connected neighbor delta.
var offsets26 = func() [][3]int {
	var out [][3]int
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				out = append(out, [3]int{dx, dy, dz})
			}
		}
	}
	return out
}()

// NoPath is returned by Dijkstra and AStar when no path exists.
const NoPath = -1.0

// cellAt returns a fresh view of the VMap entry for (x,y,z) under the
// current generation, reinitializing stale entries on read.
func (g *Grid) cellAt(x, y, z int) *vcell {
	c := &g.vmap[idx(x, y, z)]
	if c.gen != g.gen {
		c.gen = g.gen
		c.bestG = math.Inf(1)
		c.node = nil
		c.closed = false
	}
	return c
}

func edgeCost(dx, dy, dz int) float64 {
	return math.Sqrt(math.Abs(float64(dx))+math.Abs(float64(dy))+math.Abs(float64(dz))) * CellSize
}

// voxelHeuristic implements the 26-connected admissible heuristic:
// h = (sqrt3-sqrt2)*dmin + (sqrt2-1)*dmid + dmax, over the real-space
// deltas between cells a and b.
func voxelHeuristic(ax, ay, az, bx, by, bz int) float64 {
	dx := math.Abs(float64(ax-bx)) * CellSize
	dy := math.Abs(float64(ay-by)) * CellSize
	dz := math.Abs(float64(az-bz)) * CellSize

	dmax := math.Max(dx, math.Max(dy, dz))
	dmin := math.Min(dx, math.Min(dy, dz))
	dmid := dx + dy + dz - dmax - dmin

	return (sqrt3-sqrt2)*dmin + (sqrt2-1)*dmid + dmax
}

// search runs the shared Dijkstra/A* loop. useHeuristic selects A* mode;
// otherwise it degenerates to plain Dijkstra (h always 0).
func (g *Grid) search(sx, sy, sz, gx, gy, gz int, useHeuristic bool) float64 {
	g.gen++

	pq := make(priorityQueue, 0, 64)
	heap.Init(&pq)

	startH := 0.0
	if useHeuristic {
		startH = voxelHeuristic(sx, sy, sz, gx, gy, gz)
	}
	start := &vnode{x: sx, y: sy, z: sz, g: 0, f: startH}
	sc := g.cellAt(sx, sy, sz)
	sc.bestG = 0
	sc.node = start
	heap.Push(&pq, start)

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*vnode)
		cc := g.cellAt(cur.x, cur.y, cur.z)
		if cc.closed {
			continue // stale duplicate
		}
		cc.closed = true

		if cur.x == gx && cur.y == gy && cur.z == gz {
			return cur.g
		}

		for _, o := range offsets26 {
			nx, ny, nz := cur.x+o[0], cur.y+o[1], cur.z+o[2]
			if !InBounds(nx, ny, nz) || g.Occupied(nx, ny, nz) {
				continue
			}
			nc := g.cellAt(nx, ny, nz)
			if nc.closed {
				continue
			}
			tentativeG := cur.g + edgeCost(o[0], o[1], o[2])
			if tentativeG < nc.bestG {
				nc.bestG = tentativeG
				h := 0.0
				if useHeuristic {
					h = voxelHeuristic(nx, ny, nz, gx, gy, gz)
				}
				if nc.node != nil && nc.node.index >= 0 {
					nc.node.g = tentativeG
					nc.node.f = tentativeG + h
					heap.Fix(&pq, nc.node.index)
				} else {
					nn := &vnode{x: nx, y: ny, z: nz, g: tentativeG, f: tentativeG + h}
					nc.node = nn
					heap.Push(&pq, nn)
				}
			}
		}
	}

	return NoPath
}

// Dijkstra returns the shortest-path cost between two grid cells, ignoring
// the heuristic (used for validation against AStar).
func (g *Grid) Dijkstra(sx, sy, sz, gx, gy, gz int) float64 {
	return g.search(sx, sy, sz, gx, gy, gz, false)
}

// AStar returns the shortest-path cost between two grid cells using the
// 26-connected voxel-distance heuristic.
func (g *Grid) AStar(sx, sy, sz, gx, gy, gz int) float64 {
	return g.search(sx, sy, sz, gx, gy, gz, true)
}

// DistWithObstacles snaps p and q to their enclosing cells, runs A* between
// them, and returns the grid cost plus the leftover euclidean distance from
// each point to its cell's center. Returns +Inf if no path exists.
func (g *Grid) DistWithObstacles(p, q geom.Vec3) float64 {
	px, py, pz := CellOf(p)
	qx, qy, qz := CellOf(q)

	cost := g.AStar(px, py, pz, qx, qy, qz)
	if cost == NoPath {
		return math.Inf(1)
	}

	return cost + geom.Distance(p, CellCenter(px, py, pz)) + geom.Distance(q, CellCenter(qx, qy, qz))
}
