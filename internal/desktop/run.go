//go:build !android

package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"

	"herd/internal/game"
)

// zoomRate is the field-of-view change per second while E or R is held.
const zoomRate = 0.8

// Run opens a window and drives scene until the window is closed or Escape
// is pressed. It must be called from the main goroutine.
func Run(scene *game.Scene, cfg game.WindowConfig, log logrus.FieldLogger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cfg)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.WithField("version", gl.GoStr(gl.GetString(gl.VERSION))).Info("opengl ready")

	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	bg := game.Palette.Background
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	input := NewInput()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - last)
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		for _, c := range input.Commands(window) {
			scene.Apply(c)
			if c == game.CmdWorldReset {
				rend.ResetZoom()
			}
		}
		if window.GetKey(glfw.KeyE) == glfw.Press {
			rend.Zoom(-zoomRate * dt)
		}
		if window.GetKey(glfw.KeyR) == glfw.Press {
			rend.Zoom(zoomRate * dt)
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		rend.BeginFrame(scene.WorldOrientation(), fbW, fbH)
		scene.Tick(rend)
		rend.EndFrame()

		window.SwapBuffers()
	}

	log.WithField("frames", scene.Frame()).Info("window closed")
	return nil
}
