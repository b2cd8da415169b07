package game

func walkSetup(j *Joints) {
	j.reset()
	j.Angle[JointRightLowerArm] = Pi / 36
	j.Dir[JointRightLowerArm] = -1
	j.Dir[JointRightUpperArm] = 1
	j.Speed[JointRightUpperArm] = 3
	j.Angle[JointLeftLowerArm] = -Pi / 6
	j.Dir[JointLeftLowerArm] = 1
	j.Dir[JointLeftUpperArm] = -1
	j.Speed[JointLeftUpperArm] = 1.5
	j.Angle[JointRightLowerLeg] = -Pi / 36
	j.Dir[JointRightLowerLeg] = 1
	j.Dir[JointRightUpperLeg] = -1
	j.Speed[JointRightUpperLeg] = 1.5
	j.Angle[JointLeftLowerLeg] = Pi / 6
	j.Dir[JointLeftLowerLeg] = -1
	j.Dir[JointLeftUpperLeg] = 1
	j.Speed[JointLeftUpperLeg] = 3
}

func walkArm(j *Joints, step float32, lower, upper int) {
	if j.Angle[upper] < -Pi/6 {
		j.Dir[upper] = 1
		j.Dir[lower] = -1
		j.Speed[lower] = 1.5
	}
	if j.Angle[upper] > Pi/36 {
		j.Dir[upper] = -1
		j.Dir[lower] = 1
		j.Speed[lower] = 3
	}

	if j.Angle[upper] < 0 {
		j.Speed[upper] = 1
	} else {
		j.Speed[upper] = 0.2
	}

	walkClampLower(j, lower)
	j.advance(upper, step)
	j.advance(lower, step)
}

func walkLeg(j *Joints, step float32, lower, upper int) {
	if j.Angle[upper] < -Pi/36 {
		j.Dir[upper] = 1
		j.Dir[lower] = -1
		j.Speed[lower] = 1.5
	}
	if j.Angle[upper] > Pi/6 {
		j.Dir[upper] = -1
		j.Dir[lower] = 1
		j.Speed[lower] = 3
	}

	if j.Angle[upper] > 0 {
		j.Speed[upper] = 1
	} else {
		j.Speed[upper] = 0.2
	}

	walkClampLower(j, lower)
	j.advance(upper, step)
	j.advance(lower, step)
}

// walkClampLower holds a lower limb in [0, Pi/4] and freezes it at either end.
func walkClampLower(j *Joints, lower int) {
	if j.Angle[lower] > Pi/4 {
		j.Angle[lower] = Pi / 4
		j.Speed[lower] = 0
	}
	if j.Angle[lower] < 0 {
		j.Angle[lower] = 0
		j.Speed[lower] = 0
	}
}
