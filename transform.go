// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggvolume

import "golang.org/x/image/math/f32"

// Transform represents a 3D affine transformation as a 3x4 matrix.
// Each row holds the coefficients for one output component; the fourth
// row is implicitly [0 0 0 1]:
//
//	| X[0]  X[1]  X[2]  X[3] |
//	| Y[0]  Y[1]  Y[2]  Y[3] |
//	| Z[0]  Z[1]  Z[2]  Z[3] |
//
// Points transform as column vectors, so for a point p:
//
//	p'.x = X[0]*p.x + X[1]*p.y + X[2]*p.z + X[3]
type Transform struct {
	X, Y, Z f32.Vec4
}

// Identity returns the identity transformation.
func Identity() Transform {
	return Transform{
		X: f32.Vec4{1, 0, 0, 0},
		Y: f32.Vec4{0, 1, 0, 0},
		Z: f32.Vec4{0, 0, 1, 0},
	}
}

// Translate creates a translation transform.
func Translate(x, y, z float32) Transform {
	return Transform{
		X: f32.Vec4{1, 0, 0, x},
		Y: f32.Vec4{0, 1, 0, y},
		Z: f32.Vec4{0, 0, 1, z},
	}
}

// Scale creates a scaling transform.
func Scale(x, y, z float32) Transform {
	return Transform{
		X: f32.Vec4{x, 0, 0, 0},
		Y: f32.Vec4{0, y, 0, 0},
		Z: f32.Vec4{0, 0, z, 0},
	}
}

// Mul composes two transforms (t * u). The result applies u first,
// then t, matching matrix multiplication with column vectors:
//
//	t.Mul(u).Apply(p) == t.Apply(u.Apply(p))
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		X: mulRow(t.X, u),
		Y: mulRow(t.Y, u),
		Z: mulRow(t.Z, u),
	}
}

func mulRow(r f32.Vec4, u Transform) f32.Vec4 {
	return f32.Vec4{
		r[0]*u.X[0] + r[1]*u.Y[0] + r[2]*u.Z[0],
		r[0]*u.X[1] + r[1]*u.Y[1] + r[2]*u.Z[1],
		r[0]*u.X[2] + r[1]*u.Y[2] + r[2]*u.Z[2],
		r[0]*u.X[3] + r[1]*u.Y[3] + r[2]*u.Z[3] + r[3],
	}
}

// Apply transforms a point.
func (t Transform) Apply(p f32.Vec3) f32.Vec3 {
	return f32.Vec3{
		t.X[0]*p[0] + t.X[1]*p[1] + t.X[2]*p[2] + t.X[3],
		t.Y[0]*p[0] + t.Y[1]*p[1] + t.Y[2]*p[2] + t.Y[3],
		t.Z[0]*p[0] + t.Z[1]*p[1] + t.Z[2]*p[2] + t.Z[3],
	}
}

// transformFromGridMatrix converts a grid library index-to-world matrix
// into a Transform. Grid libraries store the affine map in row-vector
// convention (basis vectors in rows, translation in the last row), so the
// element feeding output row r, column c is m[c*4+r]. This transpose is
// what makes grid translations land in the transform's fourth column.
func transformFromGridMatrix(m f32.Mat4) Transform {
	var t Transform
	rows := []*f32.Vec4{&t.X, &t.Y, &t.Z}
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			rows[r][c] = m[c*4+r]
		}
	}
	return t
}
