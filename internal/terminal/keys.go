package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"herd/internal/game"
)

// A terminal never reports a held modifier on its own, so selection is a
// toggle (s or Tab) instead of hold-Ctrl.
var runeCommands = map[rune]game.Command{
	'a': game.CmdLeft,
	'd': game.CmdRight,
	'w': game.CmdForward,
	'u': game.CmdSpeedUp,
	'j': game.CmdSlowDown,
	' ': game.CmdStop,
	's': game.CmdToggleSelect,
	'm': game.CmdToggleDebugColors,
	'h': game.CmdTogglePause,
	't': game.CmdRenderFilled,
	'l': game.CmdRenderWireframe,
	'p': game.CmdRenderPoints,
	'r': game.CmdCycleRender,
}

var keyCommands = map[tcell.Key]game.Command{
	tcell.KeyEnter: game.CmdToggleControl,
	tcell.KeyTab:   game.CmdToggleSelect,
	tcell.KeyLeft:  game.CmdWorldPanLeft,
	tcell.KeyRight: game.CmdWorldPanRight,
	tcell.KeyUp:    game.CmdWorldTiltUp,
	tcell.KeyDown:  game.CmdWorldTiltDown,
	tcell.KeyHome:  game.CmdWorldReset,
}

// commandFor decodes one key event. quit is set for Escape, Ctrl-C and q.
func commandFor(ev *tcell.EventKey) (cmd game.Command, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.CmdNone, true
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		if r == 'q' {
			return game.CmdNone, true
		}
		return runeCommands[r], false
	}
	return keyCommands[ev.Key()], false
}
