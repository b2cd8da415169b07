package skeleton

import "github.com/go-gl/mathgl/mgl32"

// Node is one rigid body part. A parent owns its children; there are no
// back-references.
type Node struct {
	Name string

	color    mgl32.Vec4
	scale    mgl32.Mat4
	rotTrans mgl32.Mat4
	children []*Node
}

func NewNode(name string, color mgl32.Vec4) *Node {
	return &Node{
		Name:     name,
		color:    color,
		scale:    mgl32.Ident4(),
		rotTrans: mgl32.Ident4(),
	}
}

func (n *Node) AddChild(child *Node) {
	n.children = append(n.children, child)
}

// SetMatrices replaces both transforms. rotTrans is already expressed in the
// parent's rotation/translation frame; scale is never folded into it.
func (n *Node) SetMatrices(scale, rotTrans mgl32.Mat4) {
	n.scale = scale
	n.rotTrans = rotTrans
}

func (n *Node) SetColor(c mgl32.Vec4) { n.color = c }
func (n *Node) Color() mgl32.Vec4     { return n.color }
func (n *Node) Scale() mgl32.Mat4     { return n.scale }
func (n *Node) RotTrans() mgl32.Mat4  { return n.rotTrans }
func (n *Node) ChildCount() int       { return len(n.children) }
func (n *Node) Child(i int) *Node     { return n.children[i] }

// Walk visits n and every descendant in pre-order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}
