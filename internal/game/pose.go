package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"herd/internal/skeleton"
)

// Part indexes the rigid parts of a horse body.
type Part int

const (
	PartTorso Part = iota
	PartNeck
	PartHead
	PartLeftUpperArm
	PartRightUpperArm
	PartLeftUpperLeg
	PartRightUpperLeg
	PartLeftLowerArm
	PartRightLowerArm
	PartLeftLowerLeg
	PartRightLowerLeg
	PartCount
)

var partNames = [PartCount]string{
	"torso", "neck", "head",
	"left upper arm", "right upper arm", "left upper leg", "right upper leg",
	"left lower arm", "right lower arm", "left lower leg", "right lower leg",
}

func (p Part) String() string {
	if p < 0 || p >= PartCount {
		return "unknown"
	}
	return partNames[p]
}

// joint describes how a part hangs off its parent. Offsets are in units of
// the horse's scale offset.
type joint struct {
	part, parent Part
	angle        int        // index into Joints
	attach       mgl32.Vec3 // where the part sits on the parent
	pivot        mgl32.Vec3 // rotation centre relative to the part
	rest         float32    // added to the joint angle
}

// Parents come before their children.
var joints = [...]joint{
	{PartNeck, PartTorso, JointNeck, mgl32.Vec3{-0.75, 0, 0}, mgl32.Vec3{0.3, 0, 0}, -Pi / 6},
	{PartHead, PartNeck, JointHead, mgl32.Vec3{-0.4, 0, 0}, mgl32.Vec3{0.2, 0, 0}, Pi / 2},
	{PartLeftUpperArm, PartTorso, JointLeftUpperArm, mgl32.Vec3{-0.45, -0.3, 0.1}, mgl32.Vec3{0, 0.25, 0}, 0},
	{PartLeftLowerArm, PartLeftUpperArm, JointLeftLowerArm, mgl32.Vec3{0, -0.4, 0}, mgl32.Vec3{0, 0.2, 0}, 0},
	{PartRightUpperArm, PartTorso, JointRightUpperArm, mgl32.Vec3{-0.45, -0.3, -0.1}, mgl32.Vec3{0, 0.25, 0}, 0},
	{PartRightLowerArm, PartRightUpperArm, JointRightLowerArm, mgl32.Vec3{0, -0.4, 0}, mgl32.Vec3{0, 0.2, 0}, 0},
	{PartLeftUpperLeg, PartTorso, JointLeftUpperLeg, mgl32.Vec3{0.45, -0.3, 0.1}, mgl32.Vec3{0, 0.25, 0}, 0},
	{PartLeftLowerLeg, PartLeftUpperLeg, JointLeftLowerLeg, mgl32.Vec3{0, -0.4, 0}, mgl32.Vec3{0, 0.2, 0}, 0},
	{PartRightUpperLeg, PartTorso, JointRightUpperLeg, mgl32.Vec3{0.45, -0.3, -0.1}, mgl32.Vec3{0, 0.25, 0}, 0},
	{PartRightLowerLeg, PartRightUpperLeg, JointRightLowerLeg, mgl32.Vec3{0, -0.4, 0}, mgl32.Vec3{0, 0.2, 0}, 0},
}

type body struct {
	nodes [PartCount]*skeleton.Node
	tree  *skeleton.Tree
}

func newBody(color mgl32.Vec4) *body {
	b := &body{}
	for p := PartTorso; p < PartCount; p++ {
		b.nodes[p] = skeleton.NewNode(p.String(), color)
	}
	n := b.nodes
	n[PartTorso].AddChild(n[PartNeck])
	n[PartTorso].AddChild(n[PartLeftUpperArm])
	n[PartTorso].AddChild(n[PartRightUpperArm])
	n[PartTorso].AddChild(n[PartLeftUpperLeg])
	n[PartTorso].AddChild(n[PartRightUpperLeg])
	n[PartNeck].AddChild(n[PartHead])
	n[PartLeftUpperArm].AddChild(n[PartLeftLowerArm])
	n[PartRightUpperArm].AddChild(n[PartRightLowerArm])
	n[PartLeftUpperLeg].AddChild(n[PartLeftLowerLeg])
	n[PartRightUpperLeg].AddChild(n[PartRightLowerLeg])
	b.tree = skeleton.NewTree(n[PartTorso], skeleton.Filled)
	return b
}

func (b *body) setColor(c mgl32.Vec4) {
	for _, n := range b.nodes {
		n.SetColor(c)
	}
}

// Pose recomputes every part's matrices from the current position, heading
// and joint angles. world is the scene orientation applied before anything
// else.
func (h *Horse) Pose(world mgl32.Mat4) {
	h.world = world
	s, so := h.scale, h.scaleOffset

	torsoScale := mgl32.Scale3D(0.6+s*0.6, 0.2+s*0.2, 0.15+s*0.15)
	neckScale := torsoScale.Mul4(mgl32.Scale3D(0.5, 0.7, 0.75))
	headScale := neckScale.Mul4(mgl32.Scale3D(0.8, 0.8, 0.95))
	limbScale := torsoScale.Mul4(mgl32.Scale3D(0.1428, 1.5, 0.33))

	var rot [PartCount]mgl32.Mat4
	rot[PartTorso] = world.
		Mul4(mgl32.Translate3D(h.pos.X(), so, h.pos.Z())).
		Mul4(mgl32.HomogRotate3DY(h.pan))

	angles := &h.anim.Joints().Angle
	for _, j := range joints {
		at := j.attach.Mul(so)
		pv := j.pivot.Mul(so)
		rot[j.part] = rot[j.parent].
			Mul4(mgl32.Translate3D(at.X(), at.Y(), at.Z())).
			Mul4(mgl32.Translate3D(pv.X(), pv.Y(), pv.Z())).
			Mul4(mgl32.HomogRotate3DZ(j.rest + angles[j.angle])).
			Mul4(mgl32.Translate3D(-pv.X(), -pv.Y(), -pv.Z()))
	}

	for p := PartTorso; p < PartCount; p++ {
		sc := limbScale
		switch p {
		case PartTorso:
			sc = torsoScale
		case PartNeck:
			sc = neckScale
		case PartHead:
			sc = headScale
		}
		h.body.nodes[p].SetMatrices(sc, rot[p])
	}
}

// PartTransform returns the composed transform of one part as last posed.
func (h *Horse) PartTransform(p Part) mgl32.Mat4 {
	n := h.body.nodes[p]
	return n.RotTrans().Mul4(n.Scale())
}
