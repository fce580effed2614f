// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangle

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/triangle/glgpu"
)

// VertexSize is the number of float32 components per vertex.
const VertexSize = 3

// Triangle is the triangle that is drawn, in normalized device coordinates.
var Triangle = math32.NewTriangle(
	math32.Vec3(0, 0.5, 0),
	math32.Vec3(-0.5, -0.5, 0),
	math32.Vec3(0.5, -0.5, 0),
)

// Vertices returns the positions of the vertices of tri,
// VertexSize floats per vertex.
func Vertices(tri math32.Triangle) []float32 {
	return []float32{
		tri.A.X, tri.A.Y, tri.A.Z,
		tri.B.X, tri.B.Y, tri.B.Z,
		tri.C.X, tri.C.Y, tri.C.Z,
	}
}

// VertexCount returns the number of vertices in data.
func VertexCount(data []float32) int {
	return len(data) / VertexSize
}

// Geometry is vertex data uploaded to the GPU, together with the
// vertex array that records how it is read.
type Geometry struct {
	VertexArray *glgpu.VertexArray
	Buffer      *glgpu.Buffer
}

// Upload allocates a vertex array and a buffer, copies data into the
// buffer as static data and declares attribute 0 as VertexSize
// contiguous floats per vertex. Afterwards activating the vertex array
// alone is enough to draw.
func Upload(gl glgpu.Functions, data []float32) *Geometry {
	gm := &Geometry{
		VertexArray: glgpu.NewVertexArray(gl),
		Buffer:      glgpu.NewBuffer(gl, glgpu.StaticDraw),
	}
	gm.VertexArray.Activate()
	gm.Buffer.Activate()
	gm.Buffer.Set(data)
	gm.Buffer.Transfer()
	gm.VertexArray.SetLayout(glgpu.PackedLayout(0, VertexSize))
	return gm
}

// Count returns the number of vertices to draw.
func (gm *Geometry) Count() int {
	return gm.Buffer.Len() / VertexSize
}

// Activate binds the vertex array, restoring the buffer and layout.
func (gm *Geometry) Activate() {
	gm.VertexArray.Activate()
}

// Delete deletes the vertex array and the buffer.
func (gm *Geometry) Delete() {
	gm.VertexArray.Delete()
	gm.Buffer.Delete()
}
