// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggvolume

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestStorageTypeTextureFormat(t *testing.T) {
	tests := []struct {
		storage StorageType
		want    gputypes.TextureFormat
	}{
		{StorageDenseFloat, gputypes.TextureFormatR32Float},
		{StorageDenseFloat4, gputypes.TextureFormatRGBA32Float},
		{StorageNanoVDBFpN, gputypes.TextureFormatUndefined},
		{StorageNanoVDBFp16, gputypes.TextureFormatUndefined},
		{StorageNanoVDBFloat, gputypes.TextureFormatUndefined},
		{StorageNanoVDBFloat3, gputypes.TextureFormatUndefined},
		{StorageUndefined, gputypes.TextureFormatUndefined},
	}
	for _, tt := range tests {
		t.Run(tt.storage.String(), func(t *testing.T) {
			if got := tt.storage.TextureFormat(); got != tt.want {
				t.Errorf("TextureFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStorageTypeIsNanoVDB(t *testing.T) {
	tests := []struct {
		storage StorageType
		want    bool
	}{
		{StorageDenseFloat, false},
		{StorageDenseFloat4, false},
		{StorageNanoVDBFpN, true},
		{StorageNanoVDBFp16, true},
		{StorageNanoVDBFloat, true},
		{StorageNanoVDBFloat3, true},
	}
	for _, tt := range tests {
		t.Run(tt.storage.String(), func(t *testing.T) {
			if got := tt.storage.IsNanoVDB(); got != tt.want {
				t.Errorf("IsNanoVDB() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImageMetadataExtent(t *testing.T) {
	m := ImageMetadata{Width: 64, Height: 32, Depth: 16}
	want := gputypes.Extent3D{Width: 64, Height: 32, DepthOrArrayLayers: 16}
	if got := m.Extent(); got != want {
		t.Errorf("Extent() = %+v, want %+v", got, want)
	}
}

func TestValueKindChannels(t *testing.T) {
	tests := []struct {
		kind     ValueKind
		channels int
		ok       bool
	}{
		{ValueFloat, 1, true},
		{ValueVec3, 3, true},
		{ValueUnknown, 0, false},
		{ValueKind(42), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			channels, ok := tt.kind.Channels()
			if channels != tt.channels || ok != tt.ok {
				t.Errorf("Channels() = (%d, %v), want (%d, %v)", channels, ok, tt.channels, tt.ok)
			}
		})
	}
}

func TestBounds3(t *testing.T) {
	b := Bounds3{Min: Coord{X: -2, Y: 0, Z: 3}, Max: Coord{X: 1, Y: 0, Z: 5}}
	if got := b.Dx(); got != 4 {
		t.Errorf("Dx() = %d, want 4", got)
	}
	if got := b.Dy(); got != 1 {
		t.Errorf("Dy() = %d, want 1", got)
	}
	if got := b.Dz(); got != 3 {
		t.Errorf("Dz() = %d, want 3", got)
	}
	if got := b.Voxels(); got != 12 {
		t.Errorf("Voxels() = %d, want 12", got)
	}
	if b.IsEmpty() {
		t.Error("IsEmpty() = true for non-empty box")
	}
	if !b.Contains(Coord{X: 0, Y: 0, Z: 4}) {
		t.Error("Contains() = false for inner voxel")
	}
	if b.Contains(Coord{X: 2, Y: 0, Z: 4}) {
		t.Error("Contains() = true for outer voxel")
	}

	empty := Bounds3{Min: Coord{}, Max: Coord{X: -1, Y: -1, Z: -1}}
	if !empty.IsEmpty() {
		t.Error("IsEmpty() = false for empty box")
	}
	if got := empty.Voxels(); got != 0 {
		t.Errorf("empty Voxels() = %d, want 0", got)
	}
}
