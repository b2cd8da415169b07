package game

// Command is one discrete user input, already decoded by a backend.
type Command int

const (
	CmdNone Command = iota
	CmdBeginSelect
	CmdEndSelect
	CmdToggleSelect
	CmdLeft  // previous horse while selecting, turn left while piloting
	CmdRight // next horse while selecting, turn right while piloting
	CmdForward
	CmdSpeedUp
	CmdSlowDown
	CmdStop
	CmdToggleControl
	CmdToggleDebugColors
	CmdTogglePause
	CmdRenderFilled
	CmdRenderWireframe
	CmdRenderPoints
	CmdCycleRender
	CmdWorldPanLeft
	CmdWorldPanRight
	CmdWorldTiltUp
	CmdWorldTiltDown
	CmdWorldReset
	commandCount
)

var commandNames = [commandCount]string{
	"none", "begin-select", "end-select", "toggle-select", "left", "right",
	"forward", "speed-up", "slow-down", "stop", "toggle-control",
	"toggle-debug-colors", "toggle-pause",
	"render-filled", "render-wireframe", "render-points", "cycle-render",
	"world-pan-left", "world-pan-right", "world-tilt-up", "world-tilt-down", "world-reset",
}

func (c Command) String() string {
	if c < 0 || c >= commandCount {
		return "unknown"
	}
	return commandNames[c]
}

// WorldStep is the world pan/tilt applied per orientation command.
const WorldStep = Pi * 2 / 180
