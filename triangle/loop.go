// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triangle

import (
	"time"

	"cogentcore.org/core/base/logx"
)

// Surface is a window with a current GL context.
type Surface interface {
	// ShouldClose returns true once the window has been asked to close.
	ShouldClose() bool

	// SwapBuffers presents the completed frame.
	SwapBuffers()

	// PollEvents processes pending window events. Callbacks,
	// such as the framebuffer resize callback, are called
	// synchronously from within PollEvents.
	PollEvents()
}

// Stats are frame statistics.
type Stats struct {
	Frames  int
	Elapsed time.Duration
}

// FPS returns the average frames per second.
func (st Stats) FPS() float64 {
	if st.Elapsed <= 0 {
		return 0
	}
	return float64(st.Frames) / st.Elapsed.Seconds()
}

// Loop renders a Scene to a Surface until the surface is closed.
type Loop struct {
	Surface Surface
	Scene   *Scene

	// Changed, if set, is checked once per frame after polling events.
	// When it returns true the scene's shader program is reloaded.
	Changed func() bool

	// StatsInterval is how often the frame rate is logged at
	// debug level. Zero disables it.
	StatsInterval time.Duration
}

// Run runs the frame loop on the calling thread, which must own the
// GL context, until the surface reports that it should close.
// There is no other exit condition. It returns the total statistics.
func (lp *Loop) Run() Stats {
	start := time.Now()
	total := Stats{}
	period := Stats{}
	periodStart := start
	for !lp.Surface.ShouldClose() {
		lp.Scene.Render()
		lp.Surface.SwapBuffers()
		lp.Surface.PollEvents()
		if lp.Changed != nil && lp.Changed() {
			lp.Scene.Reload()
		}
		total.Frames++
		period.Frames++
		if lp.StatsInterval > 0 {
			now := time.Now()
			period.Elapsed = now.Sub(periodStart)
			if period.Elapsed >= lp.StatsInterval {
				logx.PrintfDebug("fps: %.0f\n", period.FPS())
				period = Stats{}
				periodStart = now
			}
		}
	}
	total.Elapsed = time.Since(start)
	return total
}
