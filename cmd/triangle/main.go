// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command triangle opens a window and draws a triangle with OpenGL,
// using vertex and fragment shaders read from disk.
package main

import (
	"image"
	"log/slog"
	"os"
	"runtime"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/triangle/glos"
	"cogentcore.org/triangle/shaders"
	"cogentcore.org/triangle/triangle"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	opts := cli.DefaultOptions("triangle", "Triangle opens a window and draws a triangle with OpenGL.")
	opts.DefaultFiles = []string{"triangle.toml"}
	cli.Run(opts, &triangle.Config{}, run)
}

// run runs the command and exits with the resulting status code.
func run(cfg *triangle.Config) error {
	if code := start(cfg); code != 0 {
		os.Exit(code)
	}
	return nil
}

// start opens the window, draws until it is closed and releases
// everything again, returning the exit status: 0 on a normal close
// and -1 on a fatal setup failure.
func start(cfg *triangle.Config) int {
	logx.SetDefaultLogger()
	if errors.Log(cfg.Validate()) != nil {
		return -1
	}
	if glos.Init() != nil {
		return -1
	}
	defer glos.Terminate()

	win, err := glos.NewWindow(&glos.Options{
		Size:         image.Pt(cfg.Width, cfg.Height),
		Title:        cfg.Title,
		Major:        cfg.GLMajor,
		Minor:        cfg.GLMinor,
		Resizable:    true,
		SwapInterval: cfg.SwapInterval,
	})
	if errors.Log(err) != nil {
		return -1
	}
	defer win.Destroy()

	gl, err := glos.Load()
	if errors.Log(err) != nil {
		return -1
	}
	logx.PrintlnDebug("OpenGL version:", gl.Version())

	sc, res := triangle.NewScene(gl, cfg)
	defer sc.Delete()
	if res.Failed() && cfg.StrictShaders {
		slog.Error("shader program failed to build", "vertex", cfg.VertexShader, "fragment", cfg.FragmentShader)
		return -1
	}
	win.SetResizeFunc(sc.Resize)

	lp := &triangle.Loop{Surface: win, Scene: sc, StatsInterval: 10 * time.Second}
	if cfg.Watch {
		w, err := shaders.NewWatcher(cfg.VertexShader, cfg.FragmentShader)
		if errors.Log(err) == nil {
			defer w.Close()
			lp.Changed = w.Changed
		}
	}
	st := lp.Run()
	logx.PrintfDebug("rendered %d frames in %v (%.0f fps)\n", st.Frames, st.Elapsed, st.FPS())
	return 0
}
