// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package memgrid

import (
	"testing"

	"github.com/gogpu/ggvolume"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f32"
)

func TestEmptyGridBounds(t *testing.T) {
	g := NewFloat("density")
	b := g.ActiveBounds()
	if !b.IsEmpty() {
		t.Errorf("ActiveBounds() = %+v, want empty", b)
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d, want 0", g.Len())
	}
}

func TestActiveBounds(t *testing.T) {
	g := NewFloat("density")
	g.Set(0, 0, 0, 1)
	g.Set(-3, 5, 2, 1)
	g.Set(1, -1, 7, 1)

	want := ggvolume.Bounds3{
		Min: ggvolume.Coord{X: -3, Y: -1, Z: 0},
		Max: ggvolume.Coord{X: 1, Y: 5, Z: 7},
	}
	if got := g.ActiveBounds(); got != want {
		t.Errorf("ActiveBounds() = %+v, want %+v", got, want)
	}
}

func TestKindMismatch(t *testing.T) {
	if err := NewFloat("a").SetVec3(0, 0, 0, f32.Vec3{}); err != ErrKindMismatch {
		t.Errorf("SetVec3 on float grid = %v, want ErrKindMismatch", err)
	}
	if err := NewVec3("b").Set(0, 0, 0, 1); err != ErrKindMismatch {
		t.Errorf("Set on vec3 grid = %v, want ErrKindMismatch", err)
	}
}

func TestCopyDenseScalar(t *testing.T) {
	g := NewFloat("density")
	g.SetBackground(f32.Vec3{0.5, 0, 0})
	g.Set(0, 0, 0, 1)
	g.Set(1, 1, 0, 2)

	b := ggvolume.Bounds3{Max: ggvolume.Coord{X: 1, Y: 1, Z: 0}}
	dst := make([]float32, b.Voxels())
	if err := g.CopyDense(b, dst); err != nil {
		t.Fatalf("CopyDense failed: %v", err)
	}

	// x fastest; inactive voxels take the background value.
	want := []float32{1, 0.5, 0.5, 2}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("dense copy mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyDenseVec3(t *testing.T) {
	g := NewVec3("color")
	g.SetVec3(0, 0, 0, f32.Vec3{1, 2, 3})
	g.SetVec3(0, 0, 1, f32.Vec3{4, 5, 6})

	b := g.ActiveBounds()
	dst := make([]float32, b.Voxels()*3)
	if err := g.CopyDense(b, dst); err != nil {
		t.Fatalf("CopyDense failed: %v", err)
	}

	want := []float32{1, 2, 3, 4, 5, 6}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("dense copy mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyDenseShortBuffer(t *testing.T) {
	g := NewFloat("density")
	g.Set(0, 0, 0, 1)
	b := ggvolume.Bounds3{Max: ggvolume.Coord{X: 3, Y: 0, Z: 0}}
	if err := g.CopyDense(b, make([]float32, 3)); err == nil {
		t.Error("CopyDense succeeded with short buffer")
	}
}

func TestSetVoxelSize(t *testing.T) {
	g := NewFloat("density")
	g.SetVoxelSize(0.25)
	want := f32.Mat4{
		0.25, 0, 0, 0,
		0, 0.25, 0, 0,
		0, 0, 0.25, 0,
		0, 0, 0, 1,
	}
	if got := g.IndexToObject(); got != want {
		t.Errorf("IndexToObject() = %v, want %v", got, want)
	}
}
