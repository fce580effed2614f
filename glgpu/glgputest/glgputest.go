// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgputest provides a software implementation of
// [glgpu.Functions] that tracks OpenGL object state in memory,
// for testing code that drives the GPU without needing a display.
package glgputest

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/triangle/glgpu"
)

// CompileFunc decides whether src compiles as the given stage,
// returning the full diagnostic log when it does not.
type CompileFunc func(typ glgpu.ShaderTypes, src string) (ok bool, log string)

// Attrib is the recorded state of one vertex attribute of a vertex array.
type Attrib struct {
	Buffer  uint32
	Size    int
	Stride  int
	Offset  int
	Enabled bool
}

// Draw is one recorded draw call, with the state it was issued under.
type Draw struct {
	Mode        glgpu.Primitives
	First       int
	Count       int
	Program     uint32
	VertexArray uint32

	// Vertices has the values fetched through attribute 0,
	// Size floats per vertex.
	Vertices []float32
}

type shader struct {
	typ      glgpu.ShaderTypes
	src      string
	compiled bool
	log      string
}

type program struct {
	attached []uint32
	linked   bool
	log      string
}

type buffer struct {
	data  []float32
	usage glgpu.BufferUsages
}

type vertexArray struct {
	attribs map[uint32]*Attrib
}

// Functions is a software [glgpu.Functions].
// The zero value is not usable: use [New].
type Functions struct {
	// Compiler is used by CompileShader. It defaults to [DefaultCompiler].
	Compiler CompileFunc

	// ClearColorValue is the current clear color.
	ClearColorValue [4]float32

	// Clears counts color buffer clears.
	Clears int

	// Draws has all draw calls in order.
	Draws []Draw

	// Errors has a message for each call made in an invalid state,
	// where a real driver would set a GL error.
	Errors []string

	// Calls has the name of every call in order.
	Calls []string

	next        uint32
	shaders     map[uint32]*shader
	programs    map[uint32]*program
	buffers     map[uint32]*buffer
	vaos        map[uint32]*vertexArray
	boundVAO    uint32
	boundBuffer uint32
	current     uint32
	viewport    [4]int
}

var _ glgpu.Functions = (*Functions)(nil)

// New returns a new software GL whose viewport covers width x height,
// as it does for a freshly created context.
func New(width, height int) *Functions {
	return &Functions{
		Compiler: DefaultCompiler,
		shaders:  map[uint32]*shader{},
		programs: map[uint32]*program{},
		buffers:  map[uint32]*buffer{},
		vaos:     map[uint32]*vertexArray{},
		viewport: [4]int{0, 0, width, height},
	}
}

func (f *Functions) call(name string) {
	f.Calls = append(f.Calls, name)
}

func (f *Functions) errorf(format string, a ...any) {
	f.Errors = append(f.Errors, fmt.Sprintf(format, a...))
}

func (f *Functions) newHandle() uint32 {
	f.next++
	return f.next
}

// DefaultCompiler accepts sources that declare a #version, define
// main and have balanced braces and parentheses. Everything else fails
// with a log in the style of a GLSL compiler.
func DefaultCompiler(typ glgpu.ShaderTypes, src string) (bool, string) {
	if strings.TrimSpace(src) == "" {
		return false, "0:1(1): error: syntax error, unexpected end of file\n"
	}
	if !strings.Contains(src, "#version") {
		return false, "0:1(1): error: #version directive is required\n"
	}
	depth := 0
	paren := 0
	line := 1
	for _, r := range src {
		switch r {
		case '\n':
			line++
		case '{':
			depth++
		case '}':
			depth--
		case '(':
			paren++
		case ')':
			paren--
		}
		if depth < 0 || paren < 0 {
			return false, fmt.Sprintf("0:%d(1): error: syntax error, unexpected '%c'\n", line, r)
		}
	}
	if depth != 0 || paren != 0 {
		return false, fmt.Sprintf("0:%d(1): error: syntax error, unexpected end of file\n", line)
	}
	if !strings.Contains(src, "void main") {
		return false, fmt.Sprintf("error: %s shader lacks `main'\n", typ)
	}
	return true, ""
}

// truncate returns s as a driver would write it into a buffer
// of bufSize bytes, including the null terminator.
func truncate(s string, bufSize int) string {
	if bufSize <= 0 {
		return ""
	}
	if len(s) > bufSize-1 {
		return s[:bufSize-1]
	}
	return s
}

func (f *Functions) CreateShader(typ glgpu.ShaderTypes) uint32 {
	f.call("CreateShader")
	h := f.newHandle()
	f.shaders[h] = &shader{typ: typ}
	return h
}

func (f *Functions) ShaderSource(sh uint32, src string) {
	f.call("ShaderSource")
	s, ok := f.shaders[sh]
	if !ok {
		f.errorf("ShaderSource: no shader %d", sh)
		return
	}
	s.src = src
}

func (f *Functions) CompileShader(sh uint32) {
	f.call("CompileShader")
	s, ok := f.shaders[sh]
	if !ok {
		f.errorf("CompileShader: no shader %d", sh)
		return
	}
	s.compiled, s.log = f.Compiler(s.typ, s.src)
}

func (f *Functions) ShaderCompiled(sh uint32) bool {
	s, ok := f.shaders[sh]
	return ok && s.compiled
}

func (f *Functions) ShaderInfoLog(sh uint32, bufSize int) string {
	s, ok := f.shaders[sh]
	if !ok {
		return ""
	}
	return truncate(s.log, bufSize)
}

func (f *Functions) DeleteShader(sh uint32) {
	f.call("DeleteShader")
	if _, ok := f.shaders[sh]; !ok {
		f.errorf("DeleteShader: no shader %d", sh)
		return
	}
	delete(f.shaders, sh)
}

func (f *Functions) CreateProgram() uint32 {
	f.call("CreateProgram")
	h := f.newHandle()
	f.programs[h] = &program{}
	return h
}

func (f *Functions) AttachShader(pr, sh uint32) {
	f.call("AttachShader")
	p, ok := f.programs[pr]
	if !ok {
		f.errorf("AttachShader: no program %d", pr)
		return
	}
	if _, ok := f.shaders[sh]; !ok {
		f.errorf("AttachShader: no shader %d", sh)
		return
	}
	p.attached = append(p.attached, sh)
}

func (f *Functions) LinkProgram(pr uint32) {
	f.call("LinkProgram")
	p, ok := f.programs[pr]
	if !ok {
		f.errorf("LinkProgram: no program %d", pr)
		return
	}
	p.linked, p.log = f.link(p)
}

func (f *Functions) link(p *program) (bool, string) {
	stages := map[glgpu.ShaderTypes]int{}
	for _, sh := range p.attached {
		s, ok := f.shaders[sh]
		if !ok {
			return false, "error: linking with deleted shader\n"
		}
		if !s.compiled {
			return false, "error: linking with uncompiled/unspecialized shader\n"
		}
		stages[s.typ]++
	}
	if stages[glgpu.VertexShader] != 1 || stages[glgpu.FragmentShader] != 1 {
		return false, "error: program needs exactly one vertex and one fragment shader\n"
	}
	return true, ""
}

func (f *Functions) ProgramLinked(pr uint32) bool {
	p, ok := f.programs[pr]
	return ok && p.linked
}

func (f *Functions) ProgramInfoLog(pr uint32, bufSize int) string {
	p, ok := f.programs[pr]
	if !ok {
		return ""
	}
	return truncate(p.log, bufSize)
}

func (f *Functions) UseProgram(pr uint32) {
	f.call("UseProgram")
	if pr == 0 {
		f.current = 0
		return
	}
	p, ok := f.programs[pr]
	if !ok {
		f.errorf("UseProgram: no program %d", pr)
		return
	}
	if !p.linked {
		f.errorf("UseProgram: program %d is not linked", pr)
		return
	}
	f.current = pr
}

func (f *Functions) DeleteProgram(pr uint32) {
	f.call("DeleteProgram")
	if _, ok := f.programs[pr]; !ok {
		f.errorf("DeleteProgram: no program %d", pr)
		return
	}
	delete(f.programs, pr)
	if f.current == pr {
		f.current = 0
	}
}

func (f *Functions) GenVertexArray() uint32 {
	f.call("GenVertexArray")
	h := f.newHandle()
	f.vaos[h] = &vertexArray{attribs: map[uint32]*Attrib{}}
	return h
}

func (f *Functions) BindVertexArray(vao uint32) {
	f.call("BindVertexArray")
	if _, ok := f.vaos[vao]; !ok && vao != 0 {
		f.errorf("BindVertexArray: no vertex array %d", vao)
		return
	}
	f.boundVAO = vao
}

func (f *Functions) DeleteVertexArray(vao uint32) {
	f.call("DeleteVertexArray")
	if _, ok := f.vaos[vao]; !ok {
		f.errorf("DeleteVertexArray: no vertex array %d", vao)
		return
	}
	delete(f.vaos, vao)
	if f.boundVAO == vao {
		f.boundVAO = 0
	}
}

func (f *Functions) GenBuffer() uint32 {
	f.call("GenBuffer")
	h := f.newHandle()
	f.buffers[h] = &buffer{}
	return h
}

func (f *Functions) BindBuffer(buf uint32) {
	f.call("BindBuffer")
	if _, ok := f.buffers[buf]; !ok && buf != 0 {
		f.errorf("BindBuffer: no buffer %d", buf)
		return
	}
	f.boundBuffer = buf
}

func (f *Functions) BufferData(data []float32, usage glgpu.BufferUsages) {
	f.call("BufferData")
	b, ok := f.buffers[f.boundBuffer]
	if !ok {
		f.errorf("BufferData: no buffer bound")
		return
	}
	b.data = slices.Clone(data)
	b.usage = usage
}

func (f *Functions) GetBufferSubData(offset int, data []float32) {
	f.call("GetBufferSubData")
	b, ok := f.buffers[f.boundBuffer]
	if !ok {
		f.errorf("GetBufferSubData: no buffer bound")
		return
	}
	if offset < 0 || offset+len(data) > len(b.data) {
		f.errorf("GetBufferSubData: range %d+%d out of bounds %d", offset, len(data), len(b.data))
		return
	}
	copy(data, b.data[offset:])
}

func (f *Functions) DeleteBuffer(buf uint32) {
	f.call("DeleteBuffer")
	if _, ok := f.buffers[buf]; !ok {
		f.errorf("DeleteBuffer: no buffer %d", buf)
		return
	}
	delete(f.buffers, buf)
	if f.boundBuffer == buf {
		f.boundBuffer = 0
	}
}

func (f *Functions) VertexAttribFloats(index uint32, size, stride, offset int) {
	f.call("VertexAttribFloats")
	va, ok := f.vaos[f.boundVAO]
	if !ok {
		f.errorf("VertexAttribFloats: no vertex array bound")
		return
	}
	if f.boundBuffer == 0 {
		f.errorf("VertexAttribFloats: no buffer bound")
		return
	}
	at, ok := va.attribs[index]
	if !ok {
		at = &Attrib{}
		va.attribs[index] = at
	}
	at.Buffer = f.boundBuffer
	at.Size = size
	at.Stride = stride
	at.Offset = offset
}

func (f *Functions) EnableVertexAttrib(index uint32) {
	f.call("EnableVertexAttrib")
	va, ok := f.vaos[f.boundVAO]
	if !ok {
		f.errorf("EnableVertexAttrib: no vertex array bound")
		return
	}
	at, ok := va.attribs[index]
	if !ok {
		at = &Attrib{}
		va.attribs[index] = at
	}
	at.Enabled = true
}

func (f *Functions) ClearColor(r, g, b, a float32) {
	f.call("ClearColor")
	f.ClearColorValue = [4]float32{r, g, b, a}
}

func (f *Functions) Clear(color, depth bool) {
	f.call("Clear")
	if color {
		f.Clears++
	}
}

func (f *Functions) DrawArrays(mode glgpu.Primitives, first, count int) {
	f.call("DrawArrays")
	if f.current == 0 {
		f.errorf("DrawArrays: no program in use")
	}
	va, ok := f.vaos[f.boundVAO]
	if !ok {
		f.errorf("DrawArrays: no vertex array bound")
		return
	}
	dr := Draw{Mode: mode, First: first, Count: count, Program: f.current, VertexArray: f.boundVAO}
	if at, ok := va.attribs[0]; ok && at.Enabled {
		dr.Vertices = f.fetch(at, first, count)
	}
	f.Draws = append(f.Draws, dr)
}

// fetch returns the floats read through at for count vertices from first.
func (f *Functions) fetch(at *Attrib, first, count int) []float32 {
	b, ok := f.buffers[at.Buffer]
	if !ok {
		f.errorf("DrawArrays: attribute buffer %d deleted", at.Buffer)
		return nil
	}
	var res []float32
	for i := first; i < first+count; i++ {
		st := (at.Offset + i*at.Stride) / glgpu.Float32Size
		if st+at.Size > len(b.data) {
			f.errorf("DrawArrays: vertex %d out of buffer bounds", i)
			return res
		}
		res = append(res, b.data[st:st+at.Size]...)
	}
	return res
}

func (f *Functions) Viewport(x, y, width, height int) {
	f.call("Viewport")
	f.viewport = [4]int{x, y, width, height}
}

func (f *Functions) GetViewport() (x, y, width, height int) {
	return f.viewport[0], f.viewport[1], f.viewport[2], f.viewport[3]
}

// CurrentProgram returns the program in use.
func (f *Functions) CurrentProgram() uint32 {
	return f.current
}

// BoundVertexArray returns the bound vertex array.
func (f *Functions) BoundVertexArray() uint32 {
	return f.boundVAO
}

// BoundBuffer returns the bound array buffer.
func (f *Functions) BoundBuffer() uint32 {
	return f.boundBuffer
}

// BufferContents returns a copy of the data of the given buffer,
// and false if it does not exist.
func (f *Functions) BufferContents(buf uint32) ([]float32, bool) {
	b, ok := f.buffers[buf]
	if !ok {
		return nil, false
	}
	return slices.Clone(b.data), true
}

// BufferUsage returns the usage hint the given buffer was filled with.
func (f *Functions) BufferUsage(buf uint32) glgpu.BufferUsages {
	if b, ok := f.buffers[buf]; ok {
		return b.usage
	}
	return 0
}

// VertexAttrib returns the state of attribute index of the given vertex array.
func (f *Functions) VertexAttrib(vao, index uint32) (Attrib, bool) {
	va, ok := f.vaos[vao]
	if !ok {
		return Attrib{}, false
	}
	at, ok := va.attribs[index]
	if !ok {
		return Attrib{}, false
	}
	return *at, true
}

// LiveShaders returns the number of shaders not yet deleted.
func (f *Functions) LiveShaders() int { return len(f.shaders) }

// LivePrograms returns the number of programs not yet deleted.
func (f *Functions) LivePrograms() int { return len(f.programs) }

// LiveBuffers returns the number of buffers not yet deleted.
func (f *Functions) LiveBuffers() int { return len(f.buffers) }

// LiveVertexArrays returns the number of vertex arrays not yet deleted.
func (f *Functions) LiveVertexArrays() int { return len(f.vaos) }

// CallCount returns how many times the named call was made.
func (f *Functions) CallCount(name string) int {
	n := 0
	for _, c := range f.Calls {
		if c == name {
			n++
		}
	}
	return n
}
