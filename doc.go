// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggvolume provides volumetric image sources for GoGPU renderers.
//
// # Overview
//
// ggvolume adapts sparse volumetric grids (VDB-style density, color or
// velocity volumes) into the uniform image abstraction a renderer's
// texturing pipeline consumes: metadata describing dimensions, channels,
// storage layout and a texture-to-object transform, plus a pixel buffer
// the renderer can upload and sample.
//
// The grid itself stays behind the [Grid] interface. Hosts wrap whatever
// sparse-grid library they load volumes with; the memgrid subpackage
// provides a small in-memory implementation for tests and tools.
//
// # Quick Start
//
//	import "github.com/gogpu/ggvolume"
//
//	loader := ggvolume.NewVDBLoader(grid, "density")
//	defer loader.Cleanup()
//
//	var meta ggvolume.ImageMetadata
//	if err := loader.LoadMetadata(ggvolume.Features{}, &meta); err != nil {
//	    // empty or unsupported grid
//	}
//
//	pixels := make([]byte, meta.ByteSize)
//	if err := loader.LoadPixels(&meta, pixels); err != nil {
//	    // ...
//	}
//
// # Representations
//
// Volumes load in one of two representations. The dense path copies the
// grid's active region into a rectangular float buffer suitable for a 3D
// texture. The packed path hands the renderer a NanoVDB buffer built by
// an injected [Encoder]; it is chosen when the device features prefer it
// and an encoder was configured with [WithEncoder]. Encoder failures
// downgrade to the dense path rather than failing the load.
//
// # Integration
//
// Loaders implement the [ImageLoader] contract shared by all image
// sources in the pipeline (file-backed, procedural, volumetric), so the
// renderer's image cache can dedup and manage volumes like any other
// texture.
package ggvolume
