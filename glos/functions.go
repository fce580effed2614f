// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glos

import (
	"fmt"

	"cogentcore.org/triangle/glgpu"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Functions implements [glgpu.Functions] with the OpenGL 3.3 core
// entry points of the current context. Use [Load] to get one.
type Functions struct{}

var _ glgpu.Functions = (*Functions)(nil)

// Load resolves the OpenGL entry points for the current context, using
// glfw to look up their addresses. The context of a window must be
// current. There is no partial mode: an error means nothing can be drawn.
func Load() (*Functions, error) {
	if err := gl.InitWithProcAddrFunc(glfw.GetProcAddress); err != nil {
		return nil, fmt.Errorf("glos: failed to load OpenGL functions: %w", err)
	}
	return &Functions{}, nil
}

// Version returns the version string of the current context.
func (f *Functions) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

var glShaders = map[glgpu.ShaderTypes]uint32{
	glgpu.VertexShader:   gl.VERTEX_SHADER,
	glgpu.FragmentShader: gl.FRAGMENT_SHADER,
}

var glUsages = map[glgpu.BufferUsages]uint32{
	glgpu.StaticDraw:  gl.STATIC_DRAW,
	glgpu.DynamicDraw: gl.DYNAMIC_DRAW,
}

var glPrimitives = map[glgpu.Primitives]uint32{
	glgpu.Triangles:     gl.TRIANGLES,
	glgpu.TriangleStrip: gl.TRIANGLE_STRIP,
}

func (f *Functions) CreateShader(typ glgpu.ShaderTypes) uint32 {
	return gl.CreateShader(glShaders[typ])
}

func (f *Functions) ShaderSource(shader uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
}

func (f *Functions) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (f *Functions) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (f *Functions) ShaderInfoLog(shader uint32, bufSize int) string {
	return infoLog(bufSize, func(n int32, length *int32, buf *uint8) {
		gl.GetShaderInfoLog(shader, n, length, buf)
	})
}

// infoLog fetches a log with get into a buffer of bufSize bytes.
func infoLog(bufSize int, get func(n int32, length *int32, buf *uint8)) string {
	if bufSize <= 0 {
		return ""
	}
	buf := make([]uint8, bufSize)
	var length int32
	get(int32(bufSize), &length, &buf[0])
	return string(buf[:length])
}

func (f *Functions) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (f *Functions) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (f *Functions) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (f *Functions) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (f *Functions) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (f *Functions) ProgramInfoLog(program uint32, bufSize int) string {
	return infoLog(bufSize, func(n int32, length *int32, buf *uint8) {
		gl.GetProgramInfoLog(program, n, length, buf)
	})
}

func (f *Functions) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (f *Functions) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (f *Functions) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (f *Functions) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (f *Functions) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (f *Functions) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (f *Functions) BindBuffer(buf uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
}

func (f *Functions) BufferData(data []float32, usage glgpu.BufferUsages) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, glUsages[usage])
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*glgpu.Float32Size, gl.Ptr(data), glUsages[usage])
}

func (f *Functions) GetBufferSubData(offset int, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.GetBufferSubData(gl.ARRAY_BUFFER, offset*glgpu.Float32Size, len(data)*glgpu.Float32Size, gl.Ptr(data))
}

func (f *Functions) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

func (f *Functions) VertexAttribFloats(index uint32, size, stride, offset int) {
	gl.VertexAttribPointer(index, int32(size), gl.FLOAT, false, int32(stride), gl.PtrOffset(offset))
}

func (f *Functions) EnableVertexAttrib(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (f *Functions) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (f *Functions) Clear(color, depth bool) {
	bits := uint32(0)
	if color {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (f *Functions) DrawArrays(mode glgpu.Primitives, first, count int) {
	gl.DrawArrays(glPrimitives[mode], int32(first), int32(count))
}

func (f *Functions) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (f *Functions) GetViewport() (x, y, width, height int) {
	var vp [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &vp[0])
	return int(vp[0]), int(vp[1]), int(vp[2]), int(vp[3])
}
