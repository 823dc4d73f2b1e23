// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggvolume

import "golang.org/x/image/math/f32"

// ValueKind identifies the value type stored in a volumetric grid.
type ValueKind int

// Supported grid value kinds.
const (
	// ValueUnknown marks a grid whose value type this package does not
	// understand. Loading such a grid fails with ErrUnsupportedGridType.
	ValueUnknown ValueKind = iota

	// ValueFloat is a scalar float grid (density, temperature, ...).
	ValueFloat

	// ValueVec3 is a 3-component float vector grid (color, velocity, ...).
	ValueVec3
)

// String returns the kind name for diagnostics.
func (k ValueKind) String() string {
	switch k {
	case ValueFloat:
		return "float"
	case ValueVec3:
		return "vec3"
	default:
		return "unknown"
	}
}

// Channels returns the number of channels a grid of this kind produces,
// or false for kinds outside the supported set. There is deliberately no
// default channel count: an unrecognized kind must fail loading, not
// silently resolve to a scalar grid.
func (k ValueKind) Channels() (int, bool) {
	switch k {
	case ValueFloat:
		return 1, true
	case ValueVec3:
		return 3, true
	default:
		return 0, false
	}
}

// Coord is a 3D integer voxel coordinate.
type Coord struct {
	X, Y, Z int32
}

// Bounds3 is an axis-aligned integer bounding box in voxel index space.
// Both corners are inclusive, so a single voxel has Min == Max.
type Bounds3 struct {
	Min, Max Coord
}

// Dx returns the extent along the x axis.
func (b Bounds3) Dx() int32 { return b.Max.X - b.Min.X + 1 }

// Dy returns the extent along the y axis.
func (b Bounds3) Dy() int32 { return b.Max.Y - b.Min.Y + 1 }

// Dz returns the extent along the z axis.
func (b Bounds3) Dz() int32 { return b.Max.Z - b.Min.Z + 1 }

// IsEmpty returns true if the box contains no voxels.
func (b Bounds3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// Voxels returns the number of voxels in the box.
func (b Bounds3) Voxels() int64 {
	if b.IsEmpty() {
		return 0
	}
	return int64(b.Dx()) * int64(b.Dy()) * int64(b.Dz())
}

// Contains returns true if the coordinate is inside the box.
func (b Bounds3) Contains(c Coord) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X &&
		c.Y >= b.Min.Y && c.Y <= b.Max.Y &&
		c.Z >= b.Min.Z && c.Z <= b.Max.Z
}

// Grid is the read-only view of a sparse volumetric grid consumed by this
// package. Implementations wrap an external sparse-grid library (or an
// in-memory store, see the memgrid package); the tree structure behind
// the interface is opaque here.
//
// Grid lifetimes are managed by the caller that supplied the grid; this
// package only performs read-only queries.
type Grid interface {
	// Name returns the logical grid name (e.g. "density").
	Name() string

	// Kind returns the grid's value type tag.
	Kind() ValueKind

	// ActiveBounds returns the minimal box enclosing all active voxels.
	// An empty box is valid and means the grid holds no data.
	ActiveBounds() Bounds3

	// IndexToObject returns the grid's affine voxel-index-to-object
	// matrix in the grid library's row-vector convention: basis vectors
	// in the first three rows, translation in the fourth row
	// (elements 12..14 of the flat row-major array).
	IndexToObject() f32.Mat4

	// CopyDense fills dst with the grid values over b, writing
	// Kind().Channels() contiguous float32 components per voxel in
	// x-fastest, z-slowest order. Inactive voxels produce the grid's
	// background value. dst must hold at least b.Voxels()*channels
	// elements.
	CopyDense(b Bounds3, dst []float32) error
}
