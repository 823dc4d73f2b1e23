// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package ggvolume

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// Features describes the capabilities of the device the renderer will
// sample images on. The image pipeline resolves them once per device and
// passes the same value to every loader's LoadMetadata call.
type Features struct {
	// PreferNanoVDB requests the packed NanoVDB representation for
	// volumes when an encoder is available. Renderers set it when the
	// sampling device can traverse NanoVDB buffers in-shader.
	PreferNanoVDB bool
}

// DeviceHandle provides GPU device access from the host application.
//
// ggvolume RECEIVES the device from the host, it does not create one.
// This is the same integration surface gg renderers use, so a host that
// already hands its device to gg can reuse the handle here.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with no device behind it. Used for
// CPU-only rendering; DetectFeatures resolves it to the dense-only
// feature set.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns unknown adapter metadata for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// DetectFeatures derives image features from a device handle. A handle
// with a live device prefers packed NanoVDB volumes, since storage-buffer
// sampling is available there; a nil handle or the NullDeviceHandle
// resolves to the dense-only feature set used for CPU rendering.
func DetectFeatures(h DeviceHandle) Features {
	if h == nil || h.Device() == nil {
		return Features{}
	}
	return Features{PreferNanoVDB: true}
}
