// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu provides owning handle types for the OpenGL objects
// used to draw simple geometry: shader stages, linked programs,
// vertex buffers and vertex arrays.
//
// All of the types operate through the [Functions] interface, which
// is the set of GL entry points resolved for the current context.
// The glos package provides the real implementation on top of go-gl,
// and glgputest provides a software one for tests.
//
// OpenGL is a large implicit state machine (current program, current
// vertex array, current buffer). The types here keep all binding behind
// their Activate methods so that the currently bound state is only
// changed at a small number of call sites.
package glgpu

// InfoLogSize is the size of the buffer used to fetch shader and program
// info logs, including the null terminator, so at most InfoLogSize-1
// characters of diagnostic text are ever returned.
const InfoLogSize = 512

// Functions is the set of OpenGL entry points used by this package.
// It must only be used on the thread that owns the current context.
type Functions interface {
	// CreateShader creates a new shader object of the given stage.
	CreateShader(typ ShaderTypes) uint32

	// ShaderSource replaces the source code of the given shader.
	ShaderSource(shader uint32, src string)

	// CompileShader compiles the current source of the given shader.
	CompileShader(shader uint32)

	// ShaderCompiled returns the compile status of the given shader.
	ShaderCompiled(shader uint32) bool

	// ShaderInfoLog returns the info log of the given shader,
	// fetched into a buffer of bufSize bytes (including the terminator).
	ShaderInfoLog(shader uint32, bufSize int) string

	// DeleteShader deletes the given shader.
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)

	// ProgramLinked returns the link status of the given program.
	ProgramLinked(program uint32) bool

	// ProgramInfoLog returns the info log of the given program,
	// fetched into a buffer of bufSize bytes (including the terminator).
	ProgramInfoLog(program uint32, bufSize int) string

	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindBuffer(buf uint32)

	// BufferData allocates storage for the currently bound array buffer
	// and copies data into it.
	BufferData(data []float32, usage BufferUsages)

	// GetBufferSubData reads len(data) floats back from the currently bound
	// array buffer, starting at the given float offset.
	GetBufferSubData(offset int, data []float32)

	DeleteBuffer(buf uint32)

	// VertexAttribFloats describes attribute index of the currently bound
	// vertex array as size floats per vertex, with stride and offset in bytes,
	// sourced from the currently bound array buffer.
	VertexAttribFloats(index uint32, size, stride, offset int)
	EnableVertexAttrib(index uint32)

	ClearColor(r, g, b, a float32)

	// Clear clears the color (and optionally depth) buffer of the
	// current render target.
	Clear(color, depth bool)

	// DrawArrays draws count vertices starting at first from the
	// currently bound vertex array.
	DrawArrays(mode Primitives, first, count int)

	Viewport(x, y, width, height int)

	// GetViewport returns the current viewport as x, y, width, height.
	GetViewport() (x, y, width, height int)
}

// ShaderTypes are the shader stages.
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

// String returns the name of the shader stage.
func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

// BufferUsages are hints for how buffer data will be used.
type BufferUsages int32

const (
	// StaticDraw is for data written once and drawn many times.
	StaticDraw BufferUsages = iota

	// DynamicDraw is for data rewritten repeatedly and drawn many times.
	DynamicDraw
)

// Primitives are the primitive modes for drawing.
type Primitives int32

const (
	Triangles Primitives = iota
	TriangleStrip
)

// String returns the name of the primitive mode.
func (pm Primitives) String() string {
	switch pm {
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle-strip"
	}
	return "unknown"
}
