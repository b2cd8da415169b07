//go:build !android

package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"herd/internal/game"
	"herd/internal/skeleton"
)

// Camera looks straight down at the field centre.
const (
	cameraHeight = 130.0
	defaultFov   = game.Pi / 4
	minFov       = 0.1
	maxFov       = 7 * game.Pi / 8
	nearPlane    = 0.1
	farPlane     = 400.0
)

// gridStep is the spacing of the ground grid lines.
const gridStep = 5

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Unit cube centred on the origin.
var cubeVerts = []float32{
	-0.5, -0.5, -0.5,
	0.5, -0.5, -0.5,
	0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5,
	-0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
	0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5,
}

var cubeTris = []uint32{
	0, 1, 2, 2, 3, 0, // back
	4, 5, 6, 6, 7, 4, // front
	0, 4, 7, 7, 3, 0, // left
	1, 5, 6, 6, 2, 1, // right
	3, 2, 6, 6, 7, 3, // top
	0, 1, 5, 5, 4, 0, // bottom
}

var cubeEdges = []uint32{
	0, 1, 1, 2, 2, 3, 3, 0,
	4, 5, 5, 6, 6, 7, 7, 4,
	0, 4, 1, 5, 2, 6, 3, 7,
}

// Renderer draws submitted horse parts as cubes over a ground grid. It
// implements skeleton.Submitter.
type Renderer struct {
	prog     uint32
	uModel   int32
	uView    int32
	uProj    int32
	uColor   int32
	uShade   int32
	fillVAO  uint32
	lineVAO  uint32
	cubeVBO  uint32
	triEBO   uint32
	edgeEBO  uint32
	gridVAO  uint32
	gridVBO  uint32
	gridVtxs int32

	fov float32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(partVertSrc, partFragSrc)
	if err != nil {
		return nil, fmt.Errorf("part program: %w", err)
	}
	r := &Renderer{prog: prog, fov: defaultFov}

	gl.UseProgram(prog)
	r.uModel = gl.GetUniformLocation(prog, gl.Str("uModel\x00"))
	r.uView = gl.GetUniformLocation(prog, gl.Str("uView\x00"))
	r.uProj = gl.GetUniformLocation(prog, gl.Str("uProjection\x00"))
	r.uColor = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))
	r.uShade = gl.GetUniformLocation(prog, gl.Str("uShade\x00"))

	// Cube: one vertex buffer, two index buffers (faces and edges), one VAO
	// per index buffer.
	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVerts)*4, gl.Ptr(&cubeVerts[0]), gl.STATIC_DRAW)

	r.fillVAO, r.triEBO = cubeVAO(r.cubeVBO, cubeTris)
	r.lineVAO, r.edgeEBO = cubeVAO(r.cubeVBO, cubeEdges)

	// Ground grid across the whole field.
	grid := gridLines(game.FieldHalfSize, gridStep)
	r.gridVtxs = int32(len(grid) / 3)
	gl.GenVertexArrays(1, &r.gridVAO)
	gl.GenBuffers(1, &r.gridVBO)
	gl.BindVertexArray(r.gridVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.gridVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(grid)*4, gl.Ptr(&grid[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, glOffset(0))

	gl.BindVertexArray(0)
	return r, nil
}

func cubeVAO(vbo uint32, indices []uint32) (vao, ebo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, glOffset(0))

	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(&indices[0]), gl.STATIC_DRAW)
	gl.BindVertexArray(0)
	return vao, ebo
}

// gridLines returns line-pair vertices on the y=0 plane covering
// [-half, half] on both axes.
func gridLines(half float32, step int) []float32 {
	var v []float32
	for x := -int(half); x <= int(half); x += step {
		f := float32(x)
		v = append(v, f, 0, -half, f, 0, half)
		v = append(v, -half, 0, f, half, 0, f)
	}
	return v
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.cubeVBO, r.triEBO, r.edgeEBO, r.gridVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.fillVAO, r.lineVAO, r.gridVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// Zoom widens (positive) or narrows the field of view.
func (r *Renderer) Zoom(delta float32) {
	r.fov += delta
	if r.fov < minFov {
		r.fov = minFov
	}
	if r.fov > maxFov {
		r.fov = maxFov
	}
}

func (r *Renderer) ResetZoom() { r.fov = defaultFov }

// BeginFrame clears the framebuffer, loads the camera and draws the ground
// grid under the scene's world orientation.
func (r *Renderer) BeginFrame(world mgl32.Mat4, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.prog)
	view := mgl32.LookAtV(
		mgl32.Vec3{0, cameraHeight, 0},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 0, -1},
	)
	proj := mgl32.Perspective(r.fov, float32(fbW)/float32(fbH), nearPlane, farPlane)
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])

	grid := game.Palette.Grid
	gl.UniformMatrix4fv(r.uModel, 1, false, &world[0])
	gl.Uniform4f(r.uColor, grid[0], grid[1], grid[2], grid[3])
	gl.Uniform1f(r.uShade, 0)
	gl.BindVertexArray(r.gridVAO)
	gl.DrawArrays(gl.LINES, 0, r.gridVtxs)
}

// SubmitPart draws one unit cube transformed into place.
func (r *Renderer) SubmitPart(color mgl32.Vec4, transform mgl32.Mat4, topology skeleton.Topology) {
	gl.UniformMatrix4fv(r.uModel, 1, false, &transform[0])
	gl.Uniform4f(r.uColor, color[0], color[1], color[2], color[3])

	switch topology {
	case skeleton.Wireframe:
		gl.Uniform1f(r.uShade, 0)
		gl.BindVertexArray(r.lineVAO)
		gl.DrawElements(gl.LINES, int32(len(cubeEdges)), gl.UNSIGNED_INT, nil)
	case skeleton.Points:
		gl.Uniform1f(r.uShade, 0)
		gl.BindVertexArray(r.fillVAO)
		gl.DrawArrays(gl.POINTS, 0, int32(len(cubeVerts)/3))
	default:
		gl.Uniform1f(r.uShade, 1)
		gl.BindVertexArray(r.fillVAO)
		gl.DrawElements(gl.TRIANGLES, int32(len(cubeTris)), gl.UNSIGNED_INT, nil)
	}
}

func (r *Renderer) EndFrame() {
	gl.BindVertexArray(0)
}
