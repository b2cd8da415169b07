package skeleton

import "github.com/go-gl/mathgl/mgl32"

// Topology selects how a backend rasterises a submitted part.
type Topology int

const (
	Filled Topology = iota
	Wireframe
	Points
)

func (t Topology) String() string {
	switch t {
	case Filled:
		return "filled"
	case Wireframe:
		return "wireframe"
	case Points:
		return "points"
	}
	return "unknown"
}

// Next cycles filled -> wireframe -> points -> filled.
func (t Topology) Next() Topology {
	return (t + 1) % 3
}

// Submitter receives one unit-cube part per call, in pre-order.
type Submitter interface {
	SubmitPart(color mgl32.Vec4, transform mgl32.Mat4, topology Topology)
}

// Tree wraps the root of a rigid-body hierarchy.
type Tree struct {
	root     *Node
	topology Topology
}

func NewTree(root *Node, topology Topology) *Tree {
	return &Tree{root: root, topology: topology}
}

func (t *Tree) Root() *Node             { return t.root }
func (t *Tree) Topology() Topology      { return t.topology }
func (t *Tree) SetTopology(tp Topology) { t.topology = tp }

// Draw submits every node of the tree starting at the root.
func (t *Tree) Draw(sub Submitter, scaleStack, rotTransStack *Stack) {
	if t.root == nil {
		return
	}
	t.draw(t.root, sub, scaleStack, rotTransStack)
}

// draw pushes the node's matrices, submits rotTrans*scale, recurses into the
// children and pops on the way out, even if the submitter panics.
func (t *Tree) draw(n *Node, sub Submitter, scaleStack, rotTransStack *Stack) {
	scaleStack.Push(n.Scale())
	rotTransStack.Push(n.RotTrans())
	defer func() {
		scaleStack.Pop()
		rotTransStack.Pop()
	}()

	sub.SubmitPart(n.Color(), rotTransStack.Top().Mul4(scaleStack.Top()), t.topology)
	for _, c := range n.children {
		t.draw(c, sub, scaleStack, rotTransStack)
	}
}
