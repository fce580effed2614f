// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"log/slog"
)

// Shader is a single compiled shader stage.
type Shader struct {
	init   bool
	handle uint32
	typ    ShaderTypes
	gl     Functions
}

// ShaderResult is the outcome of compiling one shader stage.
// The Shader is always valid to Delete, even when compilation failed.
type ShaderResult struct {
	Shader *Shader

	// OK is the compile status reported by the driver.
	OK bool

	// Log is the driver diagnostic text on failure, at most
	// InfoLogSize-1 characters.
	Log string
}

// CompileShader creates a shader of the given stage and compiles src
// into it. A failed compile is logged but does not stop anything:
// the returned Shader holds the handle regardless, and it is up to the
// caller to decide what to do with a false OK.
func CompileShader(gl Functions, typ ShaderTypes, src string) ShaderResult {
	sh := &Shader{gl: gl, typ: typ}
	sh.handle = gl.CreateShader(typ)
	sh.init = true
	gl.ShaderSource(sh.handle, src)
	gl.CompileShader(sh.handle)

	res := ShaderResult{Shader: sh, OK: gl.ShaderCompiled(sh.handle)}
	if !res.OK {
		res.Log = gl.ShaderInfoLog(sh.handle, InfoLogSize)
		slog.Error("shader compilation error", "stage", typ, "log", res.Log)
	}
	return res
}

// Handle returns the GPU handle for this shader.
func (sh *Shader) Handle() uint32 {
	return sh.handle
}

// Type returns the stage of the shader.
func (sh *Shader) Type() ShaderTypes {
	return sh.typ
}

// IsLive returns true until Delete is called.
func (sh *Shader) IsLive() bool {
	return sh.init
}

// Delete deletes the shader. It is safe to call more than once.
func (sh *Shader) Delete() {
	if !sh.init {
		return
	}
	sh.gl.DeleteShader(sh.handle)
	sh.handle = 0
	sh.init = false
}
