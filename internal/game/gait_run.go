package game

func runSetup(j *Joints) {
	j.reset()
	j.Angle[JointHead] = -Pi / 6
	j.Angle[JointNeck] = -Pi / 8
	j.Angle[JointLeftUpperArm] = -Pi / 5
	j.Angle[JointRightUpperLeg] = Pi / 3
	j.Angle[JointLeftUpperLeg] = Pi/3 - Pi/5
	j.Speed[JointRightLowerLeg] = 2.5
	j.Speed[JointLeftLowerLeg] = 2.5
	j.Dir[JointRightLowerLeg] = -1
	j.Dir[JointLeftLowerLeg] = -1
}

// Forelimbs fold the lower arm on the back swing and snap it forward once
// the upper arm passes vertical.
func runArm(j *Joints, step float32, lower, upper int) {
	if j.Angle[upper] < -Pi/3 {
		j.Dir[upper] = 1
		j.Dir[lower] = 1
		j.Speed[lower] = 0
	}
	if j.Angle[upper] > Pi/18 {
		j.Dir[upper] = -1
		j.Dir[lower] = -1
		j.Angle[lower] = Pi / 2
		j.Speed[lower] = 1.1
	}

	if j.Angle[upper] < -Pi/36 {
		j.Speed[upper] = 1
	} else {
		j.Speed[upper] = 0.5
		if j.Dir[lower] == 1 {
			j.Speed[lower] = 5
		}
	}

	if j.Angle[lower] > Pi/2 {
		j.Angle[lower] = Pi / 2
		j.Speed[lower] = 0
	}

	j.advance(upper, step)
	j.advance(lower, step)
}

func runLeg(j *Joints, step float32, lower, upper int) {
	if j.Angle[upper] > Pi/3 {
		j.Dir[upper] = -1
		j.Dir[lower] = -1
		j.Speed[lower] = 2.5
	}
	if j.Angle[upper] < 0 {
		j.Dir[upper] = 1
		j.Dir[lower] = 1
		j.Speed[lower] = 2.5
	}

	if j.Angle[upper] < Pi/18 {
		j.Speed[upper] = 0.5
	} else {
		j.Speed[upper] = 1
	}

	if j.Angle[lower] < -Pi/2 {
		j.Angle[lower] = -Pi / 2
		j.Speed[lower] = 0
	}
	if j.Angle[lower] > 0 {
		j.Angle[lower] = 0
		j.Speed[lower] = 0
	}

	j.advance(upper, step)
	j.advance(lower, step)
}
