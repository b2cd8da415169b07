//go:build !android

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"herd/internal/game"
)

// keyCommands are edge-triggered: one command per key press.
var keyCommands = []struct {
	key glfw.Key
	cmd game.Command
}{
	{glfw.KeyA, game.CmdLeft},
	{glfw.KeyD, game.CmdRight},
	{glfw.KeyU, game.CmdSpeedUp},
	{glfw.KeyJ, game.CmdSlowDown},
	{glfw.KeySpace, game.CmdStop},
	{glfw.KeyEnter, game.CmdToggleControl},
	{glfw.KeyM, game.CmdToggleDebugColors},
	{glfw.KeyH, game.CmdTogglePause},
	{glfw.KeyT, game.CmdRenderFilled},
	{glfw.KeyL, game.CmdRenderWireframe},
	{glfw.KeyP, game.CmdRenderPoints},
	{glfw.KeyLeft, game.CmdWorldPanLeft},
	{glfw.KeyRight, game.CmdWorldPanRight},
	{glfw.KeyUp, game.CmdWorldTiltUp},
	{glfw.KeyDown, game.CmdWorldTiltDown},
	{glfw.KeyHome, game.CmdWorldReset},
}

// heldCommands repeat every frame while the key is down.
var heldCommands = []struct {
	key glfw.Key
	cmd game.Command
}{
	{glfw.KeyW, game.CmdForward},
}

type Input struct {
	prevKeys map[glfw.Key]bool
	ctrlDown bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Commands returns the commands triggered since the last poll, in a fixed
// order. Holding either Ctrl key keeps the selection menu open.
func (in *Input) Commands(window *glfw.Window) []game.Command {
	var cmds []game.Command

	ctrl := window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		window.GetKey(glfw.KeyRightControl) == glfw.Press
	switch {
	case ctrl && !in.ctrlDown:
		cmds = append(cmds, game.CmdBeginSelect)
	case !ctrl && in.ctrlDown:
		cmds = append(cmds, game.CmdEndSelect)
	}
	in.ctrlDown = ctrl

	for _, kc := range keyCommands {
		if in.JustPressed(window, kc.key) {
			cmds = append(cmds, kc.cmd)
		}
	}
	for _, kc := range heldCommands {
		if window.GetKey(kc.key) == glfw.Press {
			cmds = append(cmds, kc.cmd)
		}
	}
	return cmds
}
