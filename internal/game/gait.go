package game

// Joint indices into the animation arrays.
const (
	JointHead = iota
	JointNeck
	JointRightLowerArm
	JointRightUpperArm
	JointRightLowerLeg
	JointRightUpperLeg
	JointLeftLowerArm
	JointLeftUpperArm
	JointLeftLowerLeg
	JointLeftUpperLeg
	JointCount
)

type Gait int

const (
	GaitRun Gait = iota
	GaitWalk
	GaitJump
)

func (g Gait) String() string {
	switch g {
	case GaitRun:
		return "run"
	case GaitWalk:
		return "walk"
	case GaitJump:
		return "jump"
	}
	return "unknown"
}

// GaitForSpeed picks the locomotion gait for a ground speed.
func GaitForSpeed(speed float32) Gait {
	if speed >= RunThreshold {
		return GaitRun
	}
	return GaitWalk
}

// Joints is the per-joint oscillator state. Dir is always +1 or -1.
type Joints struct {
	Angle [JointCount]float32
	Speed [JointCount]float32
	Dir   [JointCount]float32
}

func (j *Joints) reset() {
	for i := 0; i < JointCount; i++ {
		j.Angle[i] = 0
		j.Speed[i] = 1
		j.Dir[i] = 1
	}
}

func (j *Joints) advance(i int, step float32) {
	j.Angle[i] += step * j.Speed[i] * j.Dir[i]
}

type limbFunc func(j *Joints, step float32, lower, upper int)

type gaitRules struct {
	multiplier float32
	setup      func(j *Joints)
	arm        limbFunc
	leg        limbFunc
	neck       neckRule
}

var gaitTable = [...]gaitRules{
	GaitRun: {
		multiplier: RunMultiplier,
		setup:      runSetup,
		arm:        runArm,
		leg:        runLeg,
		neck:       neckRule{top: Pi / 30, bottom: -Pi / 8, down: 0.25, up: 0.5},
	},
	GaitWalk: {
		multiplier: WalkMultiplier,
		setup:      walkSetup,
		arm:        walkArm,
		leg:        walkLeg,
		neck:       neckRule{top: Pi / 45, bottom: -Pi / 30, down: 0.25, up: 0.5},
	},
	GaitJump: {
		multiplier: JumpMultiplier,
		setup:      jumpSetup,
		arm:        jumpArm,
		leg:        jumpLeg,
		neck:       neckRule{top: Pi / 15, bottom: -Pi / 40, down: 0.125, up: 0.25},
	},
}

// neckRule bobs the neck between bottom and top and drags the head along
// with it. The head angle stays within [-Pi/6, 0].
type neckRule struct {
	top, bottom float32
	down, up    float32
}

func (r neckRule) apply(j *Joints, step float32, head, neck int) {
	if j.Angle[neck] > r.top {
		j.Dir[neck], j.Speed[neck] = -1, r.down
		j.Dir[head], j.Speed[head] = -1, r.down
	}
	if j.Angle[neck] < r.bottom {
		j.Dir[neck], j.Speed[neck] = 1, r.up
		j.Dir[head], j.Speed[head] = 1, r.up
	}
	if j.Angle[head] > 0 {
		j.Angle[head] = 0
	}
	if j.Angle[head] < -Pi/6 {
		j.Angle[head] = -Pi / 6
	}
	j.advance(neck, step)
	j.advance(head, step)
}

// Animator drives the joint oscillators of one horse.
type Animator struct {
	gait   Gait
	joints Joints
}

func NewAnimator(g Gait) Animator {
	var a Animator
	a.SetGait(g)
	return a
}

func (a *Animator) Gait() Gait      { return a.gait }
func (a *Animator) Joints() *Joints { return &a.joints }

// SetGait resets the oscillators to the gait's starting pose, even when the
// gait does not change.
func (a *Animator) SetGait(g Gait) {
	gaitTable[g].setup(&a.joints)
	a.gait = g
}

// Step advances every joint by one frame of the current gait.
func (a *Animator) Step() {
	r := gaitTable[a.gait]
	step := r.multiplier * Pi / 180
	j := &a.joints
	r.arm(j, step, JointRightLowerArm, JointRightUpperArm)
	r.arm(j, step, JointLeftLowerArm, JointLeftUpperArm)
	r.leg(j, step, JointRightLowerLeg, JointRightUpperLeg)
	r.leg(j, step, JointLeftLowerLeg, JointLeftUpperLeg)
	r.neck.apply(j, step, JointHead, JointNeck)
}
