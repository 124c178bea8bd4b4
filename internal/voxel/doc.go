// Package voxel implements the static 3-D occupancy grid and the
// A*/Dijkstra pathfinder used to estimate obstacle-aware distances between
// envelope candidates during path synthesis ordering.
//
// The grid and its VMap companion are allocated once per enumeration (see
// NewGrid) and reused across every Dijkstra/AStar call; the search heap is
// not reused and is allocated afresh by each call. Each call is O(1) to
// "reset" the VMap thanks to a generation counter rather than a
// full GRID^3 zero-fill, which is the practical way to honor the "reused,
// zeroed lazily" design note without paying an O(GRID^3) tax per query.
package voxel

import "math"

// GridSize is the edge length (in cells) of the cubic occupancy grid.
const GridSize = 201

// StartGrid is the minimum coordinate (Angstrom) of the cubic region the
// grid covers; the region spans [StartGrid, -StartGrid] on every axis.
const StartGrid = -30.0

// CellSize is the edge length of one voxel cell, derived so that GridSize
// cells exactly tile [StartGrid, -StartGrid].
const CellSize = (-StartGrid * 2) / (GridSize - 1)

// DistGapSubstrate is the clearance radius (Angstrom) used to mark cells
// occupied around each substrate atom.
const DistGapSubstrate = 1.8

var (
	sqrt3 = math.Sqrt(3)
	sqrt2 = math.Sqrt(2)
)
