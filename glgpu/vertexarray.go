// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

// Float32Size is the size of a float32 in bytes.
const Float32Size = 4

// Layout describes how one vertex attribute is read from a [Buffer].
type Layout struct {
	// Attrib is the attribute location in the vertex shader.
	Attrib uint32

	// Components is the number of float32 values per vertex.
	Components int

	// Stride is the distance in bytes between consecutive vertices.
	// Zero means tightly packed (Components * Float32Size).
	Stride int

	// Offset is the byte offset of the first value in the buffer.
	Offset int
}

// PackedLayout returns a tightly packed layout of n floats for attrib,
// with stride equal to the vertex size and no offset.
func PackedLayout(attrib uint32, n int) Layout {
	return Layout{Attrib: attrib, Components: n, Stride: n * Float32Size}
}

// VertexSize returns the stride of the layout in bytes.
func (ly Layout) VertexSize() int {
	if ly.Stride == 0 {
		return ly.Components * Float32Size
	}
	return ly.Stride
}

// VertexArray records the vertex-fetch configuration of one or more
// buffers (a vertex array object). Once configured, activating the
// vertex array alone is sufficient for drawing: the buffer binding and
// attribute layouts are restored with it.
type VertexArray struct {
	init    bool
	handle  uint32
	layouts []Layout
	gl      Functions
}

// NewVertexArray returns a new VertexArray. No GPU resources are
// allocated until Activate.
func NewVertexArray(gl Functions) *VertexArray {
	return &VertexArray{gl: gl}
}

// Activate binds the vertex array, generating it if needed.
func (va *VertexArray) Activate() {
	if !va.init {
		va.handle = va.gl.GenVertexArray()
		va.init = true
	}
	va.gl.BindVertexArray(va.handle)
}

// Handle returns the unique handle for this vertex array -- only valid after Activate.
func (va *VertexArray) Handle() uint32 {
	return va.handle
}

// Layouts returns the attribute layouts configured so far.
func (va *VertexArray) Layouts() []Layout {
	return va.layouts
}

// SetLayout declares and enables the given attribute layout, sourcing it
// from the currently active buffer. This vertex array must be active.
func (va *VertexArray) SetLayout(ly Layout) {
	va.gl.VertexAttribFloats(ly.Attrib, ly.Components, ly.VertexSize(), ly.Offset)
	va.gl.EnableVertexAttrib(ly.Attrib)
	va.layouts = append(va.layouts, ly)
}

// Delete deletes the GPU resources associated with this vertex array
// (requires Activate to re-establish a new one).
func (va *VertexArray) Delete() {
	if !va.init {
		return
	}
	va.gl.DeleteVertexArray(va.handle)
	va.handle = 0
	va.init = false
	va.layouts = nil
}
