// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangle

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/core/cli"
	"cogentcore.org/triangle/glgpu"
	"cogentcore.org/triangle/glgpu/glgputest"
	"cogentcore.org/triangle/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// surface is a Surface that closes after a fixed number of frames
// and delivers framebuffer resizes from within PollEvents.
type surface struct {
	gl         *glgputest.Functions
	closeAfter int
	frames     int
	swaps      int

	// resizes are the framebuffer sizes reported during
	// the PollEvents of the given frame
	resizes map[int]image.Point
	resize  func(width, height int)

	// viewports has the viewport size right after each PollEvents
	viewports []image.Point
}

func (s *surface) ShouldClose() bool { return s.frames >= s.closeAfter }

func (s *surface) SwapBuffers() { s.swaps++ }

func (s *surface) PollEvents() {
	if sz, ok := s.resizes[s.frames]; ok && s.resize != nil {
		s.resize(sz.X, sz.Y)
	}
	_, _, w, h := s.gl.GetViewport()
	s.viewports = append(s.viewports, image.Pt(w, h))
	s.frames++
}

func defaultConfig(t *testing.T) *Config {
	cfg := &Config{}
	require.NoError(t, cli.SetFromDefaults(cfg))
	return cfg
}

func TestConfig(t *testing.T) {
	cfg := defaultConfig(t)
	assert.Equal(t, "OpenGL Triangle", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, 3, cfg.GLMajor)
	assert.Equal(t, 3, cfg.GLMinor)
	assert.Equal(t, "../shaders/vertex.glsl", cfg.VertexShader)
	assert.Equal(t, "../shaders/fragment.glsl", cfg.FragmentShader)
	assert.False(t, cfg.StrictShaders)
	assert.False(t, cfg.Watch)
	assert.NoError(t, cfg.Validate())

	bad := *cfg
	bad.Width = 0
	assert.Error(t, bad.Validate())
	bad = *cfg
	bad.GLMajor, bad.GLMinor = 3, 2
	assert.Error(t, bad.Validate())
	bad = *cfg
	bad.GLMajor, bad.GLMinor = 4, 1
	assert.NoError(t, bad.Validate())
	bad.SwapInterval = -1
	assert.Error(t, bad.Validate())
}

func TestVertices(t *testing.T) {
	data := Vertices(Triangle)
	assert.Equal(t, []float32{0, 0.5, 0, -0.5, -0.5, 0, 0.5, -0.5, 0}, data)
	assert.Equal(t, 3, VertexCount(data))
}

func bits(data []float32) []uint32 {
	res := make([]uint32, len(data))
	for i, v := range data {
		res[i] = math.Float32bits(v)
	}
	return res
}

func TestUpload(t *testing.T) {
	gl := glgputest.New(800, 600)
	gm := Upload(gl, Vertices(Triangle))
	assert.Equal(t, 3, gm.Count())
	assert.Equal(t, glgpu.StaticDraw, gl.BufferUsage(gm.Buffer.Handle()))

	at, ok := gl.VertexAttrib(gm.VertexArray.Handle(), 0)
	require.True(t, ok)
	assert.Equal(t, glgputest.Attrib{Buffer: gm.Buffer.Handle(), Size: 3, Stride: 12, Offset: 0, Enabled: true}, at)

	first := gm.Buffer.Contents()
	gm2 := Upload(gl, Vertices(Triangle))
	second := gm2.Buffer.Contents()
	assert.Equal(t, bits(first), bits(second))
	assert.Equal(t, bits([]float32{0, 0.5, 0, -0.5, -0.5, 0, 0.5, -0.5, 0}), bits(second))

	gm.Delete()
	gm2.Delete()
	assert.Equal(t, 0, gl.LiveBuffers())
	assert.Equal(t, 0, gl.LiveVertexArrays())
	assert.Empty(t, gl.Errors)
}

func TestBuildProgram(t *testing.T) {
	gl := glgputest.New(800, 600)
	res := BuildProgram(gl, "../shaders/vertex.glsl", "../shaders/fragment.glsl")
	assert.True(t, res.OK)
	assert.False(t, res.Failed())
	assert.Empty(t, res.Log)
	assert.True(t, gl.ProgramLinked(res.Program.Handle()))
	assert.Equal(t, 0, gl.LiveShaders())
}

func TestBuildProgramFragmentError(t *testing.T) {
	gl := glgputest.New(800, 600)
	res := BuildProgram(gl, "../shaders/testdata/vertex.glsl", "../shaders/testdata/fragment_error.glsl")
	require.NotNil(t, res.Program)
	assert.True(t, res.Stages[0].OK)
	assert.False(t, res.Stages[1].OK)
	assert.NotEmpty(t, res.Stages[1].Log)
	assert.LessOrEqual(t, len(res.Stages[1].Log), 511)
	assert.False(t, res.OK)
	assert.Equal(t, 0, gl.LiveShaders())
}

func TestRender(t *testing.T) {
	gl := glgputest.New(800, 600)
	sc, res := NewScene(gl, defaultConfig(t))
	require.True(t, res.OK)
	defer sc.Delete()

	gl.Calls = nil
	sc.Render()
	assert.Equal(t, []string{"ClearColor", "Clear", "UseProgram", "BindVertexArray", "DrawArrays"}, gl.Calls)
	assert.Equal(t, [4]float32{0.1, 0.1, 0.1, 1}, gl.ClearColorValue)
	require.Len(t, gl.Draws, 1)
	dr := gl.Draws[0]
	assert.Equal(t, glgpu.Triangles, dr.Mode)
	assert.Equal(t, 0, dr.First)
	assert.Equal(t, 3, dr.Count)
	assert.Equal(t, sc.Program.Handle(), dr.Program)
	assert.Equal(t, Vertices(Triangle), dr.Vertices)
	assert.Empty(t, gl.Errors)
}

func TestRun(t *testing.T) {
	gl := glgputest.New(800, 600)
	sc, res := NewScene(gl, defaultConfig(t))
	require.False(t, res.Failed())

	sf := &surface{gl: gl, closeAfter: 5}
	lp := &Loop{Surface: sf, Scene: sc, StatsInterval: time.Nanosecond}
	st := lp.Run()
	assert.Equal(t, 5, st.Frames)
	assert.Equal(t, 5, sf.swaps)
	assert.Equal(t, 5, gl.Clears)
	assert.Len(t, gl.Draws, 5)
	for _, dr := range gl.Draws {
		assert.Equal(t, 3, dr.Count)
	}

	sc.Delete()
	assert.Equal(t, 0, gl.LiveBuffers())
	assert.Equal(t, 0, gl.LiveVertexArrays())
	assert.Equal(t, 0, gl.LivePrograms())
	assert.Equal(t, 0, gl.LiveShaders())
	assert.Empty(t, gl.Errors)
}

func TestRunClosedImmediately(t *testing.T) {
	gl := glgputest.New(800, 600)
	sc, _ := NewScene(gl, defaultConfig(t))
	defer sc.Delete()
	st := (&Loop{Surface: &surface{gl: gl}, Scene: sc}).Run()
	assert.Zero(t, st.Frames)
	assert.Empty(t, gl.Draws)
}

func TestRunMissingVertexShader(t *testing.T) {
	gl := glgputest.New(800, 600)
	cfg := defaultConfig(t)
	cfg.VertexShader = filepath.Join(t.TempDir(), "missing.glsl")
	sc, res := NewScene(gl, cfg)
	defer sc.Delete()

	require.Len(t, res.Stages, 2)
	assert.False(t, res.Stages[0].OK)
	assert.NotEmpty(t, res.Stages[0].Log)
	assert.True(t, res.Stages[1].OK)
	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Log)
	require.NotNil(t, sc.Program)

	sf := &surface{gl: gl, closeAfter: 3}
	st := (&Loop{Surface: sf, Scene: sc}).Run()
	assert.Equal(t, 3, st.Frames)
	assert.Equal(t, 3, gl.Clears)
	assert.Len(t, gl.Draws, 3)
}

func TestResize(t *testing.T) {
	sizes := []image.Point{{1024, 768}, {1, 1}, {2560, 1440}, {0, 0}, {799, 601}}
	gl := glgputest.New(800, 600)
	sc, _ := NewScene(gl, defaultConfig(t))
	defer sc.Delete()

	sf := &surface{gl: gl, closeAfter: len(sizes) * 2, resize: sc.Resize, resizes: map[int]image.Point{}}
	for i, sz := range sizes {
		sf.resizes[i*2] = sz
	}
	(&Loop{Surface: sf, Scene: sc}).Run()

	require.Len(t, sf.viewports, len(sizes)*2)
	for i, sz := range sizes {
		// the viewport must already match right after the poll that resized,
		// not one frame later
		assert.Equal(t, sz, sf.viewports[i*2], "resize %d", i)
		assert.Equal(t, sz, sf.viewports[i*2+1], "frame after resize %d", i)
	}
}

func writeShaders(t *testing.T, dir, fragment string) (string, string) {
	vp := filepath.Join(dir, "vertex.glsl")
	fp := filepath.Join(dir, "fragment.glsl")
	require.NoError(t, os.WriteFile(vp, []byte(shaders.LoadSource("../shaders/vertex.glsl")), 0666))
	require.NoError(t, os.WriteFile(fp, []byte(shaders.LoadSource(fragment)), 0666))
	return vp, fp
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	cfg := defaultConfig(t)
	cfg.VertexShader, cfg.FragmentShader = writeShaders(t, dir, "../shaders/fragment.glsl")

	gl := glgputest.New(800, 600)
	sc, res := NewScene(gl, cfg)
	require.True(t, res.OK)
	defer sc.Delete()
	orig := sc.Program

	writeShaders(t, dir, "../shaders/testdata/fragment_error.glsl")
	res = sc.Reload()
	assert.True(t, res.Failed())
	assert.Same(t, orig, sc.Program)
	assert.Equal(t, 1, gl.LivePrograms())

	writeShaders(t, dir, "../shaders/fragment.glsl")
	res = sc.Reload()
	assert.False(t, res.Failed())
	assert.NotSame(t, orig, sc.Program)
	assert.Equal(t, 1, gl.LivePrograms())
	assert.True(t, gl.ProgramLinked(sc.Program.Handle()))
	assert.Equal(t, 0, gl.LiveShaders())
}

func TestLoopChanged(t *testing.T) {
	gl := glgputest.New(800, 600)
	sc, _ := NewScene(gl, defaultConfig(t))
	defer sc.Delete()
	orig := sc.Program.Handle()

	sf := &surface{gl: gl, closeAfter: 4}
	calls := 0
	lp := &Loop{Surface: sf, Scene: sc, Changed: func() bool {
		calls++
		return calls == 2
	}}
	lp.Run()
	assert.Equal(t, 4, calls)
	require.Len(t, gl.Draws, 4)
	assert.Equal(t, orig, gl.Draws[1].Program)
	assert.NotEqual(t, orig, gl.Draws[2].Program)
	assert.Equal(t, sc.Program.Handle(), gl.Draws[3].Program)
	assert.Equal(t, 1, gl.LivePrograms())
}

func TestStats(t *testing.T) {
	assert.Zero(t, Stats{Frames: 10}.FPS())
	assert.InDelta(t, 60.0, Stats{Frames: 120, Elapsed: 2 * time.Second}.FPS(), 1e-9)
}
