package game

// newPlan rolls the next straight-line leg: its length, and whether and
// where the horse changes speed or stops along it.
func (h *Horse) newPlan() {
	h.currentSteps = 0
	h.steps = h.rng.Range(MinPathSteps, MaxPathSteps)
	h.changeSpeedAt = h.rng.Range(0, h.steps)
	h.stopAt = h.rng.Range(0, h.steps)
	h.changeSpeed = h.rng.Range(0, 9) < SpeedChangeChance
	h.stop = h.rng.Range(0, 9) < StopChance
}

// Update advances an autonomous horse by one frame. Stopped and controlled
// horses stay put unless they are in the middle of a jump.
func (h *Horse) Update() {
	if h.jumping {
		if h.stopFrame <= JumpFrames {
			h.anim.Step()
		}
		h.progressJump()
		return
	}
	if h.status == StatusStopped || h.status == StatusControlled {
		return
	}

	h.anim.Step()
	switch {
	case h.avoidDir == DirStraight || (h.avoidDir == DirNone && h.status != StatusAvoiding):
		h.followPlan()
	case h.avoidDir == DirLeft:
		h.pan += TurnAngle
		h.turned += TurnAngle
	default:
		h.pan -= TurnAngle
		h.turned += TurnAngle
	}
}

func (h *Horse) followPlan() {
	if h.currentSteps == h.changeSpeedAt && h.changeSpeed {
		h.randomSpeedChange()
	}
	if h.currentSteps == h.stopAt && h.stop {
		h.Stop()
	}
	if (h.currentSteps < h.steps || h.status != StatusNormal) && inField(h.pos.X(), h.pos.Z()) {
		h.turned = 0
		if h.status == StatusNormal {
			h.currentSteps++
		}
		h.advance()
		h.clampToField()
		return
	}
	h.clampToField()
	h.newPlan()
	h.pan += TurnAngle * h.turnSign
	h.turnSign = randomSign(h.rng)
}

// progressJump counts jump frames and resumes walking or running once the
// stop period is over.
func (h *Horse) progressJump() {
	if h.stopFrame == h.stopFrames {
		h.stopFrame = 0
		h.jumping = false
		h.anim.SetGait(GaitForSpeed(h.speed))
		return
	}
	h.stopFrame++
}

// Stop makes the horse jump in place. A controlled horse jumps exactly once;
// a free horse lingers up to one more jump length.
func (h *Horse) Stop() {
	if h.status == StatusControlled {
		h.stopFrames = JumpFrames
	} else {
		h.stopFrames = h.rng.Range(JumpFrames, JumpFrames*2)
	}
	h.anim.SetGait(GaitJump)
	h.jumping = true
	h.events.Emit(Event{Type: EventJump, Horse: h.id, X: h.pos.X(), Z: h.pos.Z()})
}

// randomSpeedChange nudges the speed by up to three steps either way and
// only swaps the gait when the run threshold is crossed.
func (h *Horse) randomSpeedChange() {
	before := h.speed
	h.speed = clampF(h.speed+float32(h.rng.Range(-3, 3))*SpeedStep, MinSpeed, MaxSpeed)
	if h.speed >= RunThreshold && before < RunThreshold {
		h.anim.SetGait(GaitRun)
	} else if h.speed < RunThreshold && before >= RunThreshold {
		h.anim.SetGait(GaitWalk)
	}
}

// Move steers a controlled horse. Nothing happens mid-jump.
func (h *Horse) Move(d Direction) {
	if h.jumping {
		return
	}
	switch d {
	case DirStraight:
		h.advance()
		h.clampToField()
		h.anim.Step()
	case DirLeft:
		h.pan += TurnAngle
	case DirRight:
		h.pan -= TurnAngle
	}
}

// IncrementSpeed restarts the run cycle whenever the new speed is at or
// above the threshold.
func (h *Horse) IncrementSpeed() {
	h.speed = clampF(h.speed+SpeedStep, MinSpeed, MaxSpeed)
	if h.speed >= RunThreshold {
		h.anim.SetGait(GaitRun)
	}
}

func (h *Horse) DecrementSpeed() {
	h.speed = clampF(h.speed-SpeedStep, MinSpeed, MaxSpeed)
	if h.speed < RunThreshold {
		h.anim.SetGait(GaitWalk)
	}
}
