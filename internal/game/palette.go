package game

import "github.com/go-gl/mathgl/mgl32"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// ToRGB quantises a float colour, ignoring alpha.
func ToRGB(c mgl32.Vec4) RGB {
	q := func(v float32) uint8 {
		return uint8(clampF(v, 0, 1)*255 + 0.5)
	}
	return RGB{R: q(c[0]), G: q(c[1]), B: q(c[2])}
}

var Palette = struct {
	Normal     mgl32.Vec4 // free horse, and "no collision" in debug view
	Avoiding   mgl32.Vec4 // debug view only
	Stopped    mgl32.Vec4 // debug view only
	Selected   mgl32.Vec4
	Controlled mgl32.Vec4

	Grid       mgl32.Vec4
	Background mgl32.Vec4
}{
	Normal:     mgl32.Vec4{1, 1, 1, 1},
	Avoiding:   mgl32.Vec4{0, 0, 1, 1},
	Stopped:    mgl32.Vec4{1, 1, 0, 1},
	Selected:   mgl32.Vec4{1, 0, 1, 1},
	Controlled: mgl32.Vec4{0.25, 0, 0.75, 1},

	Grid:       mgl32.Vec4{1, 1, 1, 1},
	Background: mgl32.Vec4{0.2, 0.3, 0.3, 1},
}
