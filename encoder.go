// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggvolume

// Precision selects the numeric precision of a packed NanoVDB encoding.
// Scalar grids support all three modes; vector grids are always encoded
// at full precision.
type Precision int

// Precision modes. The numeric values match the legacy encoding used by
// renderer configs (0 = variable, 16 = half, anything else = full), so
// existing scene settings map over directly.
const (
	// PrecisionAuto lets the encoder pick a variable bit depth per leaf.
	PrecisionAuto Precision = 0

	// PrecisionFp16 packs values as 16-bit floats.
	PrecisionFp16 Precision = 16

	// PrecisionFp32 keeps full 32-bit float values.
	PrecisionFp32 Precision = 32
)

// String returns the precision name for diagnostics.
func (p Precision) String() string {
	switch p {
	case PrecisionAuto:
		return "auto"
	case PrecisionFp16:
		return "fp16"
	default:
		return "fp32"
	}
}

// Encoder converts a grid into a packed, device-friendly NanoVDB buffer.
// Implementations wrap an external codec; this package never inspects the
// produced bytes beyond their length.
//
// Encode may fail for grids the codec cannot represent. Loaders treat
// such failures as soft: they log a warning and fall back to the dense
// representation instead of failing the whole metadata call.
type Encoder interface {
	Encode(g Grid, p Precision) ([]byte, error)
}
