// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package memgrid provides a small in-memory implementation of the
// ggvolume Grid interface.
//
// It stores voxels in a coordinate-keyed map with no hierarchy, which is
// plenty for tests, tools and procedurally built volumes. Production
// volumes loaded from VDB files should wrap the sparse-grid library that
// loaded them instead.
package memgrid

import (
	"errors"

	"github.com/gogpu/ggvolume"
	"golang.org/x/image/math/f32"
)

// ErrKindMismatch means a scalar accessor was used on a vector grid or
// vice versa.
var ErrKindMismatch = errors.New("memgrid: value kind mismatch")

// identityMat4 is the identity matrix in the grid row-vector convention.
var identityMat4 = f32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Grid is an in-memory volumetric grid. The zero value is not usable;
// create grids with NewFloat or NewVec3.
//
// Grid is not safe for concurrent mutation. Once built it is safe to
// read from multiple goroutines, matching what ggvolume loaders need.
type Grid struct {
	name   string
	kind   ggvolume.ValueKind
	matrix f32.Mat4

	scalars map[ggvolume.Coord]float32
	vectors map[ggvolume.Coord]f32.Vec3

	background f32.Vec3
}

// NewFloat creates an empty scalar grid with an identity transform.
func NewFloat(name string) *Grid {
	return &Grid{
		name:    name,
		kind:    ggvolume.ValueFloat,
		matrix:  identityMat4,
		scalars: make(map[ggvolume.Coord]float32),
	}
}

// NewVec3 creates an empty 3-vector grid with an identity transform.
func NewVec3(name string) *Grid {
	return &Grid{
		name:    name,
		kind:    ggvolume.ValueVec3,
		matrix:  identityMat4,
		vectors: make(map[ggvolume.Coord]f32.Vec3),
	}
}

// SetTransform sets the voxel-index-to-object matrix, in the grid
// row-vector convention (translation in the fourth row).
func (g *Grid) SetTransform(m f32.Mat4) {
	g.matrix = m
}

// SetVoxelSize sets a uniform scaling transform, the common case for
// volumes with cubic voxels placed at the object origin.
func (g *Grid) SetVoxelSize(size float32) {
	g.matrix = f32.Mat4{
		size, 0, 0, 0,
		0, size, 0, 0,
		0, 0, size, 0,
		0, 0, 0, 1,
	}
}

// SetBackground sets the value reported for inactive voxels inside the
// active bounds. Scalar grids use the first component.
func (g *Grid) SetBackground(v f32.Vec3) {
	g.background = v
}

// Set activates a voxel in a scalar grid.
func (g *Grid) Set(x, y, z int32, v float32) error {
	if g.kind != ggvolume.ValueFloat {
		return ErrKindMismatch
	}
	g.scalars[ggvolume.Coord{X: x, Y: y, Z: z}] = v
	return nil
}

// SetVec3 activates a voxel in a vector grid.
func (g *Grid) SetVec3(x, y, z int32, v f32.Vec3) error {
	if g.kind != ggvolume.ValueVec3 {
		return ErrKindMismatch
	}
	g.vectors[ggvolume.Coord{X: x, Y: y, Z: z}] = v
	return nil
}

// Len returns the number of active voxels.
func (g *Grid) Len() int {
	if g.kind == ggvolume.ValueFloat {
		return len(g.scalars)
	}
	return len(g.vectors)
}

// Name returns the grid name.
func (g *Grid) Name() string { return g.name }

// Kind returns the grid value kind.
func (g *Grid) Kind() ggvolume.ValueKind { return g.kind }

// IndexToObject returns the index-to-object matrix.
func (g *Grid) IndexToObject() f32.Mat4 { return g.matrix }

// ActiveBounds returns the minimal box enclosing all active voxels, or
// an empty box for a grid with none.
func (g *Grid) ActiveBounds() ggvolume.Bounds3 {
	empty := ggvolume.Bounds3{
		Min: ggvolume.Coord{X: 0, Y: 0, Z: 0},
		Max: ggvolume.Coord{X: -1, Y: -1, Z: -1},
	}
	b := empty
	first := true
	g.each(func(c ggvolume.Coord) {
		if first {
			b = ggvolume.Bounds3{Min: c, Max: c}
			first = false
			return
		}
		b.Min.X = min(b.Min.X, c.X)
		b.Min.Y = min(b.Min.Y, c.Y)
		b.Min.Z = min(b.Min.Z, c.Z)
		b.Max.X = max(b.Max.X, c.X)
		b.Max.Y = max(b.Max.Y, c.Y)
		b.Max.Z = max(b.Max.Z, c.Z)
	})
	return b
}

func (g *Grid) each(fn func(ggvolume.Coord)) {
	if g.kind == ggvolume.ValueFloat {
		for c := range g.scalars {
			fn(c)
		}
		return
	}
	for c := range g.vectors {
		fn(c)
	}
}

// CopyDense fills dst with the grid values over b, one or three float32
// components per voxel depending on the kind, x fastest and z slowest.
// Voxels without an active value produce the background.
func (g *Grid) CopyDense(b ggvolume.Bounds3, dst []float32) error {
	channels := 1
	if g.kind == ggvolume.ValueVec3 {
		channels = 3
	}
	if need := b.Voxels() * int64(channels); int64(len(dst)) < need {
		return errors.New("memgrid: destination buffer too small")
	}

	i := 0
	for z := b.Min.Z; z <= b.Max.Z; z++ {
		for y := b.Min.Y; y <= b.Max.Y; y++ {
			for x := b.Min.X; x <= b.Max.X; x++ {
				c := ggvolume.Coord{X: x, Y: y, Z: z}
				if g.kind == ggvolume.ValueFloat {
					v, ok := g.scalars[c]
					if !ok {
						v = g.background[0]
					}
					dst[i] = v
					i++
				} else {
					v, ok := g.vectors[c]
					if !ok {
						v = g.background
					}
					dst[i] = v[0]
					dst[i+1] = v[1]
					dst[i+2] = v[2]
					i += 3
				}
			}
		}
	}
	return nil
}

var _ ggvolume.Grid = (*Grid)(nil)
