package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herd/internal/skeleton"
)

func TestPoseTorsoSitsAtPosition(t *testing.T) {
	h := placeHorse(t, 1, 12, -7, 0.4, 0.5)
	h.Pose(mgl32.Ident4())

	origin := h.PartTransform(PartTorso).Col(3)
	assert.InDelta(t, 12, origin.X(), 1e-5)
	assert.InDelta(t, h.scaleOffset, origin.Y(), 1e-5)
	assert.InDelta(t, -7, origin.Z(), 1e-5)
}

func TestPoseWorldAppliesToEveryPart(t *testing.T) {
	h := placeHorse(t, 1, 4, 9, 2.1, 0.8)
	for i := 0; i < 11; i++ {
		h.anim.Step()
	}
	h.Pose(mgl32.Ident4())
	var local [PartCount]mgl32.Mat4
	for p := PartTorso; p < PartCount; p++ {
		local[p] = h.PartTransform(p)
	}

	world := mgl32.HomogRotate3DY(0.3).Mul4(mgl32.HomogRotate3DX(-0.2))
	h.Pose(world)
	for p := PartTorso; p < PartCount; p++ {
		assert.True(t, world.Mul4(local[p]).ApproxEqualThreshold(h.PartTransform(p), 1e-4), p.String())
	}
}

func TestPoseMovesRigidly(t *testing.T) {
	h := placeHorse(t, 1, 0, 0, 1.3, 0.5)
	h.Pose(mgl32.Ident4())
	var before [PartCount]mgl32.Vec4
	for p := PartTorso; p < PartCount; p++ {
		before[p] = h.PartTransform(p).Col(3)
	}

	h.pos[0], h.pos[2] = 5, -3
	h.Pose(mgl32.Ident4())
	for p := PartTorso; p < PartCount; p++ {
		after := h.PartTransform(p).Col(3)
		assert.InDelta(t, before[p].X()+5, after.X(), 1e-4, p.String())
		assert.InDelta(t, before[p].Y(), after.Y(), 1e-4, p.String())
		assert.InDelta(t, before[p].Z()-3, after.Z(), 1e-4, p.String())
	}
}

func TestPoseLegsBelowTorso(t *testing.T) {
	h := placeHorse(t, 1, 0, 0, 0, 0.5)
	h.Pose(mgl32.Ident4())
	torso := h.PartTransform(PartTorso).Col(3)
	for _, p := range []Part{PartLeftLowerArm, PartRightLowerArm, PartLeftLowerLeg, PartRightLowerLeg} {
		assert.Less(t, h.PartTransform(p).Col(3).Y(), torso.Y(), p.String())
	}
	// the neck reaches forward, which is -x before any heading is applied
	assert.Less(t, h.PartTransform(PartNeck).Col(3).X(), torso.X())
}

func TestDrawSubmitsPartsInTreeOrder(t *testing.T) {
	h := placeHorse(t, 1, 2, 2, 0.5, 0.5)
	h.Pose(mgl32.Ident4())
	h.SetTopology(skeleton.Wireframe)
	var rec recorder

	h.Draw(&rec)

	order := []Part{
		PartTorso, PartNeck, PartHead,
		PartLeftUpperArm, PartLeftLowerArm,
		PartRightUpperArm, PartRightLowerArm,
		PartLeftUpperLeg, PartLeftLowerLeg,
		PartRightUpperLeg, PartRightLowerLeg,
	}
	require.Len(t, rec.parts, len(order))
	for i, p := range order {
		assert.Equal(t, h.PartTransform(p), rec.parts[i].transform, p.String())
		assert.Equal(t, h.Color(), rec.parts[i].color)
		assert.Equal(t, skeleton.Wireframe, rec.parts[i].topology)
	}
	assert.Zero(t, h.scaleStack.Len())
	assert.Zero(t, h.rotTransStack.Len())
}

func TestColorReachesEveryPart(t *testing.T) {
	h := placeHorse(t, 1, 0, 0, 0, 0.5)
	h.SetSelected(true)
	var rec recorder
	h.Draw(&rec)
	for _, s := range rec.parts {
		assert.Equal(t, Palette.Selected, s.color)
	}
}
