package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"herd/internal/skeleton"
)

// Status is a horse's role in collision negotiation.
type Status int

const (
	StatusNormal Status = iota
	StatusStopped
	StatusAvoiding
	StatusControlled
)

func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusStopped:
		return "stopped"
	case StatusAvoiding:
		return "avoiding"
	case StatusControlled:
		return "controlled"
	}
	return "unknown"
}

// Direction is an avoidance or steering direction.
type Direction int

const (
	DirLeft Direction = iota
	DirStraight
	DirRight
	DirNone
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirStraight:
		return "straight"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	}
	return "unknown"
}

// Horse is one articulated actor of the herd.
type Horse struct {
	id    int
	pos   mgl32.Vec3
	pan   float32
	speed float32

	// scale varies the body size; scaleOffset (1+scale) multiplies every
	// attachment offset and sets the ride height.
	scale       float32
	scaleOffset float32
	radius      float32

	anim Animator

	// Straight-line plan.
	steps         int
	currentSteps  int
	changeSpeedAt int
	stopAt        int
	changeSpeed   bool
	stop          bool
	turnSign      float32

	// Jump in place.
	jumping    bool
	stopFrame  int
	stopFrames int

	status      Status
	avoidDir    Direction
	dirAssigned bool
	turned      float32
	collisions  CollisionQueue

	selected    bool
	controlled  bool
	debugColors bool
	color       mgl32.Vec4

	body          *body
	world         mgl32.Mat4
	scaleStack    *skeleton.Stack
	rotTransStack *skeleton.Stack

	rng    *Rand
	events *EventBus
}

// NewHorse rolls a random heading, size, speed and position. events may be nil.
func NewHorse(id int, rng *Rand, events *EventBus) *Horse {
	h := &Horse{
		id:            id,
		rng:           rng,
		events:        events,
		world:         mgl32.Ident4(),
		color:         Palette.Normal,
		status:        StatusNormal,
		avoidDir:      DirNone,
		scaleStack:    skeleton.NewStack(),
		rotTransStack: skeleton.NewStack(),
	}
	h.pan = float32(rng.Range(0, 72)) * Pi / 5
	h.scale = 0.8 + float32(rng.Range(0, 22))*0.1
	h.speed = float32(rng.Range(5, 20)) * SpeedStep
	h.newPlan()
	h.turnSign = randomSign(rng)

	h.scaleOffset = 1 + h.scale
	h.radius = 2.5 * h.scaleOffset / 2

	h.anim = NewAnimator(GaitForSpeed(h.speed))
	h.RandomizePosition()
	h.body = newBody(h.color)
	h.Pose(h.world)
	return h
}

func randomSign(rng *Rand) float32 {
	if rng.Coin() {
		return 1
	}
	return -1
}

func (h *Horse) ID() int                         { return h.id }
func (h *Horse) Position() mgl32.Vec3            { return h.pos }
func (h *Horse) Pan() float32                    { return h.pan }
func (h *Horse) Speed() float32                  { return h.speed }
func (h *Horse) BodyScale() float32              { return h.scale }
func (h *Horse) Radius() float32                 { return h.radius }
func (h *Horse) Status() Status                  { return h.status }
func (h *Horse) AvoidDirection() Direction       { return h.avoidDir }
func (h *Horse) DirectionAssigned() bool         { return h.dirAssigned }
func (h *Horse) Jumping() bool                   { return h.jumping }
func (h *Horse) Gait() Gait                      { return h.anim.Gait() }
func (h *Horse) Joints() Joints                  { return *h.anim.Joints() }
func (h *Horse) Color() mgl32.Vec4               { return h.color }
func (h *Horse) Selected() bool                  { return h.selected }
func (h *Horse) Controlled() bool                { return h.controlled }
func (h *Horse) Collisions() *CollisionQueue     { return &h.collisions }
func (h *Horse) SetAvoidDirection(d Direction)   { h.avoidDir = d }
func (h *Horse) SetDirectionAssigned(a bool)     { h.dirAssigned = a }
func (h *Horse) SetTopology(t skeleton.Topology) { h.body.tree.SetTopology(t) }

// RandomizePosition drops the horse on a random integer grid point.
func (h *Horse) RandomizePosition() {
	h.pos = mgl32.Vec3{
		float32(h.rng.Range(-int(FieldHalfSize), int(FieldHalfSize))),
		h.scaleOffset,
		float32(h.rng.Range(-int(FieldHalfSize), int(FieldHalfSize))),
	}
}

// SetStatus ignores every status but StatusControlled while the horse is
// under user control.
func (h *Horse) SetStatus(s Status) {
	if s == StatusControlled || !h.controlled {
		h.status = s
	}
	if h.debugColors && !h.controlled && !h.selected {
		h.setColor(statusColor(s))
	}
}

func statusColor(s Status) mgl32.Vec4 {
	switch s {
	case StatusNormal:
		return Palette.Normal
	case StatusStopped:
		return Palette.Stopped
	}
	return Palette.Avoiding
}

func (h *Horse) SetSelected(sel bool) {
	if sel {
		h.setColor(Palette.Selected)
	} else if !h.controlled {
		h.setColor(Palette.Normal)
	}
	h.selected = sel
}

// SetControlled hands the horse to the user or releases it. A released horse
// rejoins the herd as a normal horse with an empty plan.
func (h *Horse) SetControlled(c bool) {
	if c {
		h.setColor(Palette.Controlled)
		h.controlled = true
		h.SetStatus(StatusControlled)
		return
	}
	h.setColor(Palette.Normal)
	h.controlled = false
	h.SetStatus(StatusNormal)
	h.avoidDir = DirNone
	h.newPlan()
}

func (h *Horse) SetDebugColors(on bool) {
	h.debugColors = on
	h.RefreshColor()
}

// RefreshColor recomputes the colour of a horse that is neither selected nor
// controlled.
func (h *Horse) RefreshColor() {
	if h.controlled || h.selected {
		return
	}
	if h.debugColors {
		h.setColor(statusColor(h.status))
		return
	}
	h.setColor(Palette.Normal)
}

func (h *Horse) setColor(c mgl32.Vec4) {
	h.color = c
	h.body.setColor(c)
}

// Forecast returns where the horse will be next frame if it goes straight.
// Turning does not move a horse, so every other direction yields the
// current position.
func (h *Horse) Forecast(d Direction) mgl32.Vec3 {
	if d != DirStraight {
		return h.pos
	}
	x, z := h.stepAhead()
	return mgl32.Vec3{x, h.pos.Y(), z}
}

func (h *Horse) stepAhead() (float32, float32) {
	return h.pos.X() + h.speed*math32.Cos(h.pan+Pi),
		h.pos.Z() + h.speed*-math32.Sin(h.pan+Pi)
}

func (h *Horse) advance() {
	x, z := h.stepAhead()
	h.pos[0], h.pos[2] = x, z
}

func (h *Horse) clampToField() {
	h.pos[0] = clampF(h.pos[0], -FieldHalfSize, FieldHalfSize)
	h.pos[2] = clampF(h.pos[2], -FieldHalfSize, FieldHalfSize)
}

// IsTrapped reports whether the horse has turned a full circle while
// avoiding, and resets the counter when it has.
func (h *Horse) IsTrapped() bool {
	if h.turned >= 2*Pi {
		h.turned = 0
		return true
	}
	return false
}

// Draw submits the body parts with the most recent pose.
func (h *Horse) Draw(sub skeleton.Submitter) {
	h.body.tree.Draw(sub, h.scaleStack, h.rotTransStack)
}
