package skeleton

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedPart struct {
	color     mgl32.Vec4
	transform mgl32.Mat4
	topology  Topology
}

type recorder struct {
	parts   []recordedPart
	panicAt int
}

func (r *recorder) SubmitPart(color mgl32.Vec4, transform mgl32.Mat4, topology Topology) {
	r.parts = append(r.parts, recordedPart{color: color, transform: transform, topology: topology})
	if r.panicAt > 0 && len(r.parts) == r.panicAt {
		panic("backend failure")
	}
}

func TestStackLIFO(t *testing.T) {
	s := NewStack()
	assert.Equal(t, mgl32.Ident4(), s.Top())

	a := mgl32.Translate3D(1, 0, 0)
	b := mgl32.Translate3D(0, 2, 0)
	s.Push(a)
	s.Push(b)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, b, s.Top())

	m, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, b, m)
	m, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, a, m)

	_, ok = s.Pop()
	assert.False(t, ok)
}

func buildTree() (*Tree, *Node, *Node, *Node) {
	red := mgl32.Vec4{1, 0, 0, 1}
	root := NewNode("torso", red)
	neck := NewNode("neck", red)
	head := NewNode("head", red)
	leg := NewNode("leg", red)
	root.AddChild(neck)
	root.AddChild(leg)
	neck.AddChild(head)
	return NewTree(root, Filled), root, neck, leg
}

func TestTreeDrawPreOrder(t *testing.T) {
	tree, root, neck, leg := buildTree()
	head := neck.Child(0)

	var names []string
	root.Walk(func(n *Node) { names = append(names, n.Name) })
	assert.Equal(t, []string{"torso", "neck", "head", "leg"}, names)

	root.SetColor(mgl32.Vec4{0, 1, 0, 1})
	rootRT := mgl32.Translate3D(5, 0, 0)
	root.SetMatrices(mgl32.Scale3D(4, 1, 1), rootRT)
	neckRT := rootRT.Mul4(mgl32.Translate3D(0, 1, 0)).Mul4(mgl32.HomogRotate3DZ(0.5))
	neck.SetMatrices(mgl32.Scale3D(1, 2, 1), neckRT)
	headRT := neckRT.Mul4(mgl32.Translate3D(0, 1, 0))
	head.SetMatrices(mgl32.Scale3D(0.5, 0.5, 0.5), headRT)
	leg.SetMatrices(mgl32.Scale3D(1, 3, 1), rootRT.Mul4(mgl32.Translate3D(0, -1, 0)))

	rec := &recorder{}
	scale, rt := NewStack(), NewStack()
	tree.Draw(rec, scale, rt)

	require.Len(t, rec.parts, 4)
	assert.Equal(t, mgl32.Vec4{0, 1, 0, 1}, rec.parts[0].color)
	assert.Equal(t, rootRT.Mul4(mgl32.Scale3D(4, 1, 1)), rec.parts[0].transform)
	// A child's own scale is applied last; the parent's scale never reaches it.
	assert.Equal(t, neckRT.Mul4(mgl32.Scale3D(1, 2, 1)), rec.parts[1].transform)
	assert.Equal(t, headRT.Mul4(mgl32.Scale3D(0.5, 0.5, 0.5)), rec.parts[2].transform)
	assert.Equal(t, 0, scale.Len())
	assert.Equal(t, 0, rt.Len())
}

func TestTreeTopologyForwarded(t *testing.T) {
	tree, _, _, _ := buildTree()
	tree.SetTopology(Points)
	rec := &recorder{}
	tree.Draw(rec, NewStack(), NewStack())
	for _, p := range rec.parts {
		assert.Equal(t, Points, p.topology)
	}
	assert.Equal(t, Filled, Points.Next())
	assert.Equal(t, "wireframe", Filled.Next().String())
}

func TestTreeDrawUnwindsStacksOnPanic(t *testing.T) {
	tree, _, _, _ := buildTree()
	rec := &recorder{panicAt: 3}
	scale, rt := NewStack(), NewStack()

	assert.Panics(t, func() { tree.Draw(rec, scale, rt) })
	assert.Equal(t, 0, scale.Len())
	assert.Equal(t, 0, rt.Len())
}
