// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

// Buffer manages a buffer of float32 vertex data
// (i.e., GL_ARRAY_BUFFER in OpenGL).
type Buffer struct {
	init   bool
	handle uint32
	usage  BufferUsages
	data   []float32
	gl     Functions
}

// NewBuffer returns a new Buffer with the given usage hint.
// No GPU resources are allocated until Activate.
func NewBuffer(gl Functions, usage BufferUsages) *Buffer {
	return &Buffer{gl: gl, usage: usage}
}

// Set sets the data by copying the given values.
func (bf *Buffer) Set(data []float32) {
	bf.data = append(bf.data[:0], data...)
}

// Len returns the number of floats in the buffer.
func (bf *Buffer) Len() int {
	return len(bf.data)
}

// Activate binds buffer as active one, generating it if needed.
func (bf *Buffer) Activate() {
	if !bf.init {
		bf.handle = bf.gl.GenBuffer()
		bf.init = true
	}
	bf.gl.BindBuffer(bf.handle)
}

// Handle returns the unique handle for this buffer -- only valid after Activate.
func (bf *Buffer) Handle() uint32 {
	return bf.handle
}

// Transfer transfers data to GPU -- Activate must have been called with no other
// such buffers activated in between.
func (bf *Buffer) Transfer() {
	bf.gl.BufferData(bf.data, bf.usage)
}

// Contents reads the current buffer data back from the GPU.
// Activate must have been called with no other buffers activated in between.
func (bf *Buffer) Contents() []float32 {
	res := make([]float32, len(bf.data))
	bf.gl.GetBufferSubData(0, res)
	return res
}

// Delete deletes the GPU resources associated with this buffer
// (requires Activate to re-establish a new one).
func (bf *Buffer) Delete() {
	if !bf.init {
		return
	}
	bf.gl.DeleteBuffer(bf.handle)
	bf.handle = 0
	bf.init = false
}
