// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangle

import (
	"fmt"
)

// Config is the configuration for the triangle command. The defaults
// reproduce the reference behavior, so no flags are needed.
type Config struct {

	// Title is the title of the window.
	Title string `default:"OpenGL Triangle"`

	// Width is the initial width of the window in screen coordinates.
	Width int `default:"800"`

	// Height is the initial height of the window in screen coordinates.
	Height int `default:"600"`

	// GLMajor is the requested major OpenGL version (core profile).
	GLMajor int `default:"3"`

	// GLMinor is the requested minor OpenGL version (core profile).
	GLMinor int `default:"3"`

	// VertexShader is the path of the vertex shader source.
	VertexShader string `default:"../shaders/vertex.glsl"`

	// FragmentShader is the path of the fragment shader source.
	FragmentShader string `default:"../shaders/fragment.glsl"`

	// StrictShaders makes shader compile and link failures fatal.
	// By default they are logged and the program keeps running with
	// a program that may draw nothing.
	StrictShaders bool

	// Watch rebuilds the shader program whenever one of the
	// shader files changes.
	Watch bool

	// SwapInterval is the number of screen updates to wait
	// for before swapping buffers.
	SwapInterval int `default:"1"`
}

// Validate returns an error if the config cannot be used to open a window.
func (cfg *Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("triangle: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.GLMajor < 3 || (cfg.GLMajor == 3 && cfg.GLMinor < 3) {
		return fmt.Errorf("triangle: OpenGL %d.%d is not supported, need at least 3.3 core", cfg.GLMajor, cfg.GLMinor)
	}
	if cfg.SwapInterval < 0 {
		return fmt.Errorf("triangle: invalid swap interval %d", cfg.SwapInterval)
	}
	return nil
}
