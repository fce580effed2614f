// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package triangle draws a single triangle with OpenGL. It uploads
// the triangle's vertices, builds the shader program from files on
// disk and runs the frame loop against any [Surface].
//
// Everything here goes through [glgpu.Functions], so the package does
// not depend on a particular window system or GL binding.
package triangle
