// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glos opens windows with an OpenGL context using glfw,
// and provides the OpenGL implementation of [glgpu.Functions].
//
// All functions in this package must be called from the main
// thread, which must be locked with runtime.LockOSThread.
package glos

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Init initializes glfw. Must call before opening any window.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate destroys any remaining windows and releases all
// glfw resources -- call as last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// Options are the options for a new window.
type Options struct {
	// Size is the initial size of the window in screen coordinates.
	Size image.Point

	Title string

	// Major and Minor are the requested OpenGL version. The core
	// profile is always used.
	Major, Minor int

	Resizable bool

	// SwapInterval is the number of screen updates to wait for
	// before swapping buffers.
	SwapInterval int
}

// Window is a glfw window with a current OpenGL context.
type Window struct {
	glw    *glfw.Window
	resize func(width, height int)
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// NewWindow opens a new window with the given options and makes
// its context current.
func NewWindow(opts *Options) (*Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, boolHint(opts.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, opts.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glos: failed to create window: %w", err)
	}
	glw.MakeContextCurrent()
	glfw.SwapInterval(opts.SwapInterval)

	w := &Window{glw: glw}
	glw.SetFramebufferSizeCallback(w.fbResized)
	return w, nil
}

// SetResizeFunc sets the function called with the new framebuffer size
// whenever it changes. It is called synchronously from [Window.PollEvents].
func (w *Window) SetResizeFunc(fun func(width, height int)) {
	w.resize = fun
}

func (w *Window) fbResized(gw *glfw.Window, width, height int) {
	if w.resize != nil {
		w.resize(width, height)
	}
}

// FramebufferSize returns the size of the framebuffer in pixels,
// which differs from the window size on high-DPI displays.
func (w *Window) FramebufferSize() image.Point {
	width, height := w.glw.GetFramebufferSize()
	return image.Pt(width, height)
}

// ShouldClose returns whether the window has been asked to close.
func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

// SetShouldClose sets the close flag of the window.
func (w *Window) SetShouldClose(close bool) {
	w.glw.SetShouldClose(close)
}

// SwapBuffers presents the completed frame.
func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

// PollEvents processes pending events of all windows, calling
// any callbacks before returning.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// SetSize sets the size of the window in screen coordinates.
func (w *Window) SetSize(sz image.Point) {
	w.glw.SetSize(sz.X, sz.Y)
}

// Destroy destroys the window and its context.
func (w *Window) Destroy() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
}
