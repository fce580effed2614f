// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangle

import (
	"log/slog"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/math32"
	"cogentcore.org/triangle/glgpu"
	"cogentcore.org/triangle/shaders"
)

// ClearColor is the dark gray the screen is cleared to every frame.
var ClearColor = math32.Vec4(0.1, 0.1, 0.1, 1)

// BuildProgram loads the vertex and fragment shader sources at the given
// paths and builds a program from them. A missing file reads as an empty
// source, which then fails to compile. Failures are logged and reported
// in the result; the program is returned regardless.
func BuildProgram(gl glgpu.Functions, vertexPath, fragmentPath string) glgpu.ProgramResult {
	vs := shaders.LoadSource(vertexPath)
	fs := shaders.LoadSource(fragmentPath)
	return glgpu.BuildProgram(gl, "triangle", vs, fs)
}

// Scene has the GPU resources needed to draw the triangle.
type Scene struct {
	Geometry *Geometry
	Program  *glgpu.Program

	// VertexPath and FragmentPath are the shader sources
	// the program was built from.
	VertexPath   string
	FragmentPath string

	draw *glgpu.Drawing
	gl   glgpu.Functions
}

// NewScene uploads the triangle and builds the shader program
// named in cfg. The result of the build is returned so that the
// caller can decide whether a failure is fatal.
func NewScene(gl glgpu.Functions, cfg *Config) (*Scene, glgpu.ProgramResult) {
	sc := &Scene{
		VertexPath:   cfg.VertexShader,
		FragmentPath: cfg.FragmentShader,
		draw:         glgpu.NewDrawing(gl),
		gl:           gl,
	}
	sc.Geometry = Upload(gl, Vertices(Triangle))
	res := BuildProgram(gl, sc.VertexPath, sc.FragmentPath)
	sc.Program = res.Program
	return sc, res
}

// Render draws one frame: clear, activate the program and the
// vertex array and draw all of the vertices as triangles.
func (sc *Scene) Render() {
	sc.draw.Clear(ClearColor)
	sc.Program.Activate()
	sc.Geometry.Activate()
	sc.draw.Triangles(0, sc.Geometry.Count())
}

// Resize sets the viewport to the given framebuffer size.
// It is registered as the framebuffer resize callback of the window.
func (sc *Scene) Resize(width, height int) {
	logx.PrintfDebug("framebuffer resized to %dx%d\n", width, height)
	sc.draw.Viewport(width, height)
}

// Reload rebuilds the program from the shader files. The current
// program is only replaced if the new one builds without errors,
// so a bad edit keeps the last good program on screen.
func (sc *Scene) Reload() glgpu.ProgramResult {
	res := BuildProgram(sc.gl, sc.VertexPath, sc.FragmentPath)
	if res.Failed() {
		slog.Warn("shader reload failed, keeping current program")
		res.Program.Delete()
		return res
	}
	sc.Program.Delete()
	sc.Program = res.Program
	logx.PrintlnDebug("shader program reloaded")
	return res
}

// Delete releases all of the GPU resources of the scene.
func (sc *Scene) Delete() {
	sc.Geometry.Delete()
	sc.Program.Delete()
}
