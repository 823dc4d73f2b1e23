// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggvolume

import (
	"errors"
	"unsafe"
)

// Loader errors.
var (
	// ErrNoGrid means the loader was constructed without a grid, or
	// Cleanup already released it.
	ErrNoGrid = errors.New("ggvolume: no grid bound")

	// ErrEmptyGrid means the grid has no active voxels.
	ErrEmptyGrid = errors.New("ggvolume: grid has no active voxels")

	// ErrUnsupportedGridType means the grid's value type is outside the
	// supported {float, vec3} set.
	ErrUnsupportedGridType = errors.New("ggvolume: unsupported grid value type")

	// ErrMetadataNotLoaded means LoadPixels was called before a
	// successful LoadMetadata.
	ErrMetadataNotLoaded = errors.New("ggvolume: metadata not loaded")

	// ErrShortBuffer means the pixel buffer is smaller than the byte
	// size reported in the metadata.
	ErrShortBuffer = errors.New("ggvolume: pixel buffer too small")
)

// ImageLoader is the contract every image source in the rendering
// pipeline implements: file-backed textures, procedural generators and
// volumes all load through it, so the image cache can treat them
// uniformly.
type ImageLoader interface {
	// LoadMetadata fills meta from the source. On error meta is left
	// untouched. It may be called more than once.
	LoadMetadata(features Features, meta *ImageMetadata) error

	// LoadPixels fills pixels with the image data described by meta,
	// which must come from a previous LoadMetadata call on the same
	// loader. len(pixels) must be at least meta.ByteSize. On error the
	// buffer contents are unspecified but never partially meaningful.
	LoadPixels(meta *ImageMetadata, pixels []byte) error

	// Name returns a stable identifier used in cache dedup keys.
	Name() string

	// Equal reports whether two loaders produce the same image.
	Equal(other ImageLoader) bool

	// Cleanup releases source references and any cached buffers. The
	// loader stays valid for Name and Equal afterward. Idempotent.
	Cleanup()

	// IsVDBLoader tags volumetric loaders so callers can special-case
	// them without a full type check.
	IsVDBLoader() bool
}

// VDBLoader adapts one named volumetric grid to the ImageLoader contract.
//
// A loader is bound to a single grid at construction and owns no other
// state than the bounds and packed buffer it caches between LoadMetadata
// and LoadPixels. Loaders are not safe for concurrent use; the pipeline
// resolves each one from a single goroutine. Distinct loaders share
// nothing and may be resolved in parallel.
type VDBLoader struct {
	grid     Grid
	gridName string

	encoder   Encoder
	precision Precision

	// Resolved state, cached across LoadMetadata/LoadPixels.
	bounds *Bounds3
	nano   []byte
}

var _ ImageLoader = (*VDBLoader)(nil)

// VDBLoaderOption configures a VDBLoader during creation.
type VDBLoaderOption func(*VDBLoader)

// WithEncoder injects the NanoVDB encoder used for the packed
// representation. Without an encoder the loader always takes the dense
// path, regardless of device features.
func WithEncoder(e Encoder) VDBLoaderOption {
	return func(l *VDBLoader) {
		l.encoder = e
	}
}

// WithPrecision selects the numeric precision of the packed encoding.
// The default is PrecisionAuto. Only scalar grids honor it; vector grids
// always encode at full precision.
func WithPrecision(p Precision) VDBLoaderOption {
	return func(l *VDBLoader) {
		l.precision = p
	}
}

// NewVDBLoader creates a loader for the given grid. The grid may be nil,
// producing a loader usable only for naming and equality; every load on
// it fails with ErrNoGrid.
func NewVDBLoader(grid Grid, name string, opts ...VDBLoaderOption) *VDBLoader {
	l := &VDBLoader{
		grid:      grid,
		gridName:  name,
		precision: PrecisionAuto,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Grid returns the grid the loader was constructed with, or nil after
// Cleanup.
func (l *VDBLoader) Grid() Grid {
	return l.grid
}

// LoadMetadata inspects the grid and fills meta: dimensions from the
// active bounds, channels from the value type, the storage layout, and
// the texture-to-object transform. When the device features prefer it
// and an encoder is configured, the packed NanoVDB buffer is built here
// and cached for the following LoadPixels call; encoding failures are
// logged and downgrade to the dense path.
func (l *VDBLoader) LoadMetadata(features Features, meta *ImageMetadata) error {
	if l.grid == nil {
		return ErrNoGrid
	}

	kind := l.grid.Kind()
	channels, ok := kind.Channels()
	if !ok {
		return ErrUnsupportedGridType
	}

	bounds := l.grid.ActiveBounds()
	if bounds.IsEmpty() {
		return ErrEmptyGrid
	}

	// NanoVDB handles scalar and vec3 grids only; everything else
	// stays dense. The buffer is cached on the loader, so repeated
	// resolves reuse it instead of re-encoding. A resolve that does not
	// want the packed path drops the cache, keeping the following
	// LoadPixels consistent with the metadata reported here.
	if features.PreferNanoVDB && l.encoder != nil && (channels == 1 || channels == 3) {
		if l.nano == nil {
			buf, err := l.encoder.Encode(l.grid, l.precision)
			if err != nil {
				Logger().Warn("ggvolume: NanoVDB encode failed, falling back to dense",
					"grid", l.gridName, "error", err)
			} else {
				l.nano = buf
			}
		}
	} else {
		l.nano = nil
	}

	meta.Width = int(bounds.Dx())
	meta.Height = int(bounds.Dy())
	meta.Depth = int(bounds.Dz())
	meta.Channels = channels

	var texToIndex Transform
	if l.nano != nil {
		meta.ByteSize = len(l.nano)
		meta.Storage = nanoStorageType(channels, l.precision)
		// Packed buffers are self-indexing; the sampler applies the
		// voxel-center offset itself.
		texToIndex = Identity()
	} else {
		meta.Storage = denseStorageType(channels)
		meta.ByteSize = int(bounds.Voxels()) * densePaddedChannels(channels) * 4
		// Shift by half a voxel to sample at voxel centers.
		texToIndex = Translate(-0.5, -0.5, -0.5).
			Mul(Scale(1/float32(bounds.Dx()), 1/float32(bounds.Dy()), 1/float32(bounds.Dz()))).
			Mul(Translate(float32(bounds.Min.X), float32(bounds.Min.Y), float32(bounds.Min.Z)))
	}

	indexToObject := transformFromGridMatrix(l.grid.IndexToObject())
	meta.Transform = indexToObject.Mul(texToIndex)
	meta.UseTransform = true

	l.bounds = &bounds
	return nil
}

// LoadPixels materializes the image data into pixels. The packed buffer
// cached by LoadMetadata is copied verbatim when present; otherwise the
// grid's active region is densely copied, with vector grids expanded to
// the padded 4-channel layout.
func (l *VDBLoader) LoadPixels(meta *ImageMetadata, pixels []byte) error {
	if l.nano != nil {
		if len(pixels) < len(l.nano) {
			return ErrShortBuffer
		}
		copy(pixels, l.nano)
		return nil
	}

	if l.grid == nil {
		return ErrNoGrid
	}
	if l.bounds == nil {
		return ErrMetadataNotLoaded
	}

	// Must land in the same branch the resolver chose; a kind change
	// between the two calls would be a caller bug, but it still fails
	// cleanly here.
	channels, ok := l.grid.Kind().Channels()
	if !ok {
		return ErrUnsupportedGridType
	}

	bounds := *l.bounds
	voxels := int(bounds.Voxels())
	padded := densePaddedChannels(channels)
	if len(pixels) < voxels*padded*4 {
		return ErrShortBuffer
	}

	dst := unsafe.Slice((*float32)(unsafe.Pointer(&pixels[0])), voxels*padded)
	if err := l.grid.CopyDense(bounds, dst[:voxels*channels]); err != nil {
		clear(dst)
		return err
	}

	if channels == 3 {
		expandVec3(dst, voxels)
	}
	return nil
}

// expandVec3 rewrites voxels*3 contiguous components into the padded
// 4-wide layout, setting the pad channel to 1. Iterating backwards keeps
// every write at or past its read, so the expansion is safe in place.
func expandVec3(buf []float32, voxels int) {
	for i := voxels - 1; i >= 0; i-- {
		src := i * 3
		dst := i * 4
		buf[dst+3] = 1
		buf[dst+2] = buf[src+2]
		buf[dst+1] = buf[src+1]
		buf[dst+0] = buf[src+0]
	}
}

// densePaddedChannels returns the per-voxel component count of the dense
// buffer. Vector grids pad to 4 to satisfy the renderer's fixed-width
// pixel contract.
func densePaddedChannels(channels int) int {
	if channels == 1 {
		return 1
	}
	return 4
}

func denseStorageType(channels int) StorageType {
	if channels == 1 {
		return StorageDenseFloat
	}
	return StorageDenseFloat4
}

func nanoStorageType(channels int, p Precision) StorageType {
	if channels != 1 {
		return StorageNanoVDBFloat3
	}
	switch p {
	case PrecisionAuto:
		return StorageNanoVDBFpN
	case PrecisionFp16:
		return StorageNanoVDBFp16
	default:
		return StorageNanoVDBFloat
	}
}

// Name returns the grid name the loader was constructed with. The image
// cache uses it as part of the dedup key.
func (l *VDBLoader) Name() string {
	return l.gridName
}

// Equal reports whether other loads the same grid, judged by name alone.
// Grid names are unique per scene, so value-level comparison is never
// performed.
func (l *VDBLoader) Equal(other ImageLoader) bool {
	o, ok := other.(*VDBLoader)
	return ok && l.gridName == o.gridName
}

// Cleanup releases the grid reference and the cached packed buffer. The
// loader remains valid for Name and Equal. Safe to call multiple times.
func (l *VDBLoader) Cleanup() {
	l.grid = nil
	l.bounds = nil
	l.nano = nil
}

// IsVDBLoader always returns true for this loader family.
func (l *VDBLoader) IsVDBLoader() bool {
	return true
}
