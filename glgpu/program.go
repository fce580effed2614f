// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"log/slog"
)

// Program is a linked combination of shader stages.
type Program struct {
	init   bool
	handle uint32
	name   string
	gl     Functions
}

// ProgramResult is the outcome of building a program from a vertex
// and a fragment stage.
type ProgramResult struct {
	Program *Program

	// OK is the link status reported by the driver.
	OK bool

	// Log is the driver link diagnostic text on failure, at most
	// InfoLogSize-1 characters.
	Log string

	// Stages has the compile results for the vertex and fragment stages,
	// in that order. Their shaders have already been deleted.
	Stages []ShaderResult
}

// Failed returns true if any stage failed to compile or the link failed.
func (pr *ProgramResult) Failed() bool {
	if !pr.OK {
		return true
	}
	for _, st := range pr.Stages {
		if !st.OK {
			return true
		}
	}
	return false
}

// BuildProgram compiles the given vertex and fragment sources, links them
// into a new program named name and deletes the intermediate stage objects.
// Compile and link failures are logged and reported in the result but the
// program handle is returned regardless.
func BuildProgram(gl Functions, name, vertexSrc, fragmentSrc string) ProgramResult {
	vs := CompileShader(gl, VertexShader, vertexSrc)
	fs := CompileShader(gl, FragmentShader, fragmentSrc)

	pr := &Program{gl: gl, name: name}
	pr.handle = gl.CreateProgram()
	pr.init = true
	gl.AttachShader(pr.handle, vs.Shader.handle)
	gl.AttachShader(pr.handle, fs.Shader.handle)
	gl.LinkProgram(pr.handle)

	res := ProgramResult{Program: pr, OK: gl.ProgramLinked(pr.handle), Stages: []ShaderResult{vs, fs}}
	if !res.OK {
		res.Log = gl.ProgramInfoLog(pr.handle, InfoLogSize)
		slog.Error("shader program linking error", "program", name, "log", res.Log)
	}

	vs.Shader.Delete()
	fs.Shader.Delete()
	return res
}

// Name returns the name of the program.
func (pr *Program) Name() string {
	return pr.name
}

// Handle returns the GPU handle for the program.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Activate makes this the current program.
func (pr *Program) Activate() {
	if !pr.init {
		return
	}
	pr.gl.UseProgram(pr.handle)
}

// Delete deletes the GPU resources associated with this program.
// It is safe to call more than once.
func (pr *Program) Delete() {
	if !pr.init {
		return
	}
	pr.gl.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.init = false
}
