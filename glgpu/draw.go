// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"cogentcore.org/core/math32"
)

// Drawing provides commonly-used GPU drawing functions.
// All operate on the current context with current program, vertex array, etc.
type Drawing struct {
	gl Functions
}

// NewDrawing returns a Drawing using the given functions.
func NewDrawing(gl Functions) *Drawing {
	return &Drawing{gl: gl}
}

// Clear sets the clear color and clears the color buffer
// of the current render target.
func (dr *Drawing) Clear(c math32.Vector4) {
	dr.gl.ClearColor(c.X, c.Y, c.Z, c.W)
	dr.gl.Clear(true, false)
}

// Triangles uses all existing settings to draw Triangles
// (non-indexed).
func (dr *Drawing) Triangles(start, count int) {
	dr.gl.DrawArrays(Triangles, start, count)
}

// TriangleStrips uses all existing settings to draw TriangleStrip
// (non-indexed).
func (dr *Drawing) TriangleStrips(start, count int) {
	dr.gl.DrawArrays(TriangleStrip, start, count)
}

// Viewport sets the viewport to cover (0, 0) to (width, height).
func (dr *Drawing) Viewport(width, height int) {
	dr.gl.Viewport(0, 0, width, height)
}
