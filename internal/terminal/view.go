package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"herd/internal/game"
	"herd/internal/skeleton"
)

// hudRows are reserved at the bottom of the screen for the status lines.
const hudRows = 2

var glyphs = map[skeleton.Topology]rune{
	skeleton.Filled:    '█',
	skeleton.Wireframe: '▒',
	skeleton.Points:    '·',
}

// View renders the herd top-down onto a tcell screen. It implements
// skeleton.Submitter by plotting the centre of every submitted part.
type View struct {
	screen tcell.Screen
	width  int
	height int
	bg     tcell.Color
}

func NewView(screen tcell.Screen) *View {
	v := &View{screen: screen}
	bg := game.ToRGB(game.Palette.Background)
	v.bg = tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B))
	v.Resize()
	return v
}

func (v *View) Resize() {
	v.width, v.height = v.screen.Size()
}

// fieldRows is the number of rows available to the field.
func (v *View) fieldRows() int {
	if v.height <= hudRows {
		return 0
	}
	return v.height - hudRows
}

// Project maps a world x/z position to a screen cell. ok is false when the
// point falls outside the field or the screen is too small.
func (v *View) Project(x, z float32) (col, row int, ok bool) {
	rows := v.fieldRows()
	if v.width <= 0 || rows <= 0 {
		return 0, 0, false
	}
	span := 2 * game.FieldHalfSize
	fx := (x + game.FieldHalfSize) / span
	fz := (z + game.FieldHalfSize) / span
	if fx < 0 || fx > 1 || fz < 0 || fz > 1 {
		return 0, 0, false
	}
	col = int(fx * float32(v.width-1))
	row = int(fz * float32(rows-1))
	return col, row, true
}

func (v *View) Clear() {
	v.screen.Fill(' ', tcell.StyleDefault.Background(v.bg))
}

func (v *View) SubmitPart(color mgl32.Vec4, transform mgl32.Mat4, topology skeleton.Topology) {
	centre := transform.Col(3)
	col, row, ok := v.Project(centre.X(), centre.Z())
	if !ok {
		return
	}
	c := game.ToRGB(color)
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(v.bg)
	glyph, ok := glyphs[topology]
	if !ok {
		glyph = '?'
	}
	v.screen.SetContent(col, row, glyph, nil, style)
}

// DrawHUD writes the scene status and the selected horse on the bottom rows.
func (v *View) DrawHUD(s *game.Scene) {
	if v.height < hudRows {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	top := v.height - hudRows

	state := "running"
	if s.Paused() {
		state = "paused"
	}
	debug := "off"
	if s.DebugColors() {
		debug = "on"
	}
	v.drawLine(top, style, fmt.Sprintf(" herd %d  seed %d  frame %d  %s  render %s  debug %s",
		s.Len(), s.Seed(), s.Frame(), state, s.Topology(), debug))

	h := s.Horse(s.SelectedID())
	mode := ""
	switch {
	case s.Controlling():
		mode = "  [controlling]"
	case s.Selecting():
		mode = "  [selecting]"
	}
	v.drawLine(top+1, style, fmt.Sprintf(" #%d %s %s speed %.2f collisions %d%s",
		h.ID(), h.Status(), h.Gait(), h.Speed(), h.Collisions().Len(), mode))
}

func (v *View) drawLine(row int, style tcell.Style, text string) {
	col := 0
	for _, r := range text {
		if col >= v.width {
			return
		}
		v.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < v.width; col++ {
		v.screen.SetContent(col, row, ' ', nil, style)
	}
}
