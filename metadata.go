// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggvolume

import "github.com/gogpu/gputypes"

// StorageType identifies how the pixel data handed to the renderer is
// laid out: either a dense float buffer it can upload as a 3D texture, or
// a packed NanoVDB buffer it binds as raw storage and samples in-shader.
type StorageType uint32

// Storage types.
const (
	// StorageUndefined is the zero value; metadata never reports it.
	StorageUndefined StorageType = iota

	// StorageDenseFloat is one float32 per voxel.
	StorageDenseFloat

	// StorageDenseFloat4 is four float32 per voxel. Vector grids use it
	// too: three components plus a pad channel, satisfying renderers
	// with a fixed-width pixel contract.
	StorageDenseFloat4

	// StorageNanoVDBFpN is a packed scalar grid with variable bit depth.
	StorageNanoVDBFpN

	// StorageNanoVDBFp16 is a packed scalar grid with 16-bit values.
	StorageNanoVDBFp16

	// StorageNanoVDBFloat is a packed scalar grid with full float values.
	StorageNanoVDBFloat

	// StorageNanoVDBFloat3 is a packed 3-component vector grid.
	StorageNanoVDBFloat3
)

// String returns the storage type name for diagnostics.
func (s StorageType) String() string {
	switch s {
	case StorageDenseFloat:
		return "dense-float"
	case StorageDenseFloat4:
		return "dense-float4"
	case StorageNanoVDBFpN:
		return "nanovdb-fpn"
	case StorageNanoVDBFp16:
		return "nanovdb-fp16"
	case StorageNanoVDBFloat:
		return "nanovdb-float"
	case StorageNanoVDBFloat3:
		return "nanovdb-float3"
	default:
		return "undefined"
	}
}

// IsNanoVDB returns true for the packed storage types.
func (s StorageType) IsNanoVDB() bool {
	switch s {
	case StorageNanoVDBFpN, StorageNanoVDBFp16, StorageNanoVDBFloat, StorageNanoVDBFloat3:
		return true
	default:
		return false
	}
}

// TextureFormat returns the GPU texture format for uploading dense pixel
// data as a 3D texture. Packed NanoVDB buffers are not textures; they are
// bound as storage buffers instead, so their format is Undefined.
func (s StorageType) TextureFormat() gputypes.TextureFormat {
	switch s {
	case StorageDenseFloat:
		return gputypes.TextureFormatR32Float
	case StorageDenseFloat4:
		return gputypes.TextureFormatRGBA32Float
	default:
		return gputypes.TextureFormatUndefined
	}
}

// ImageMetadata describes an image produced by an ImageLoader: its
// dimensions, channel count, storage layout and the transform placing it
// in object space. The renderer's image pipeline owns the struct; loaders
// only fill it in.
type ImageMetadata struct {
	// Width, Height, Depth are the image dimensions in pixels. Depth is
	// 1 for 2D sources and the z extent for volumes.
	Width, Height, Depth int

	// Channels is the number of color channels per pixel.
	Channels int

	// Storage describes the pixel buffer layout.
	Storage StorageType

	// ByteSize is the exact size of the pixel buffer LoadPixels fills.
	ByteSize int

	// Transform maps normalized texture coordinates to object space.
	// Only meaningful when UseTransform is set.
	Transform Transform

	// UseTransform reports whether Transform is valid. Image sources
	// without spatial placement (plain texture files) leave it false.
	UseTransform bool
}

// Extent returns the image dimensions as a GPU texture extent, for
// allocating the 3D texture that receives dense pixel data.
func (m *ImageMetadata) Extent() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              uint32(m.Width),
		Height:             uint32(m.Height),
		DepthOrArrayLayers: uint32(m.Depth),
	}
}
