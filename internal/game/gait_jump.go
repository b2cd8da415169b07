package game

func jumpSetup(j *Joints) {
	j.reset()
	j.Speed[JointRightUpperLeg] = 0
	j.Dir[JointRightUpperLeg] = -1
	j.Speed[JointLeftUpperLeg] = 0
	j.Dir[JointLeftUpperLeg] = -1
}

func jumpArm(j *Joints, step float32, lower, upper int) {
	if j.Angle[upper] < -Pi/3 {
		j.Dir[upper] = 1
		j.Dir[lower] = -1
	}
	if j.Angle[upper] > 0 {
		j.Dir[upper] = -1
		j.Dir[lower] = 1
		j.Speed[lower] = 2
	}

	if j.Angle[upper] > -Pi/4 {
		j.Speed[upper] = 1.5
		if j.Dir[lower] == -1 && j.Angle[lower] > 0 {
			j.Speed[lower] = 5
		}
	} else {
		j.Speed[upper] = 0.2
	}

	if j.Angle[lower] > 5*Pi/8 {
		j.Angle[lower] = 5 * Pi / 8
		j.Speed[lower] = 0
	}
	if j.Angle[lower] < 0 {
		j.Angle[lower] = 0
		j.Speed[lower] = 0
	}

	j.advance(upper, step)
	j.advance(lower, step)
}

// The hind legs push off: the lower leg bounces back from full extension
// instead of freezing there.
func jumpLeg(j *Joints, step float32, lower, upper int) {
	if j.Angle[upper] < 0 {
		j.Dir[upper] = 1
		j.Dir[lower] = 1
	}
	if j.Angle[upper] > Pi/3 {
		j.Dir[upper] = -1
		j.Dir[lower] = -1
		j.Speed[lower] = 2.5
	}

	if j.Angle[upper] < Pi/4 {
		j.Speed[upper] = 1.5
		if j.Dir[upper] == 1 {
			j.Speed[lower] = 0
		}
	} else {
		j.Speed[upper] = 0.2
	}

	if j.Angle[lower] < -5*Pi/8 {
		j.Angle[lower] = -5 * Pi / 8
		j.Dir[lower] = 1
	}
	if j.Angle[lower] > 0 {
		j.Angle[lower] = 0
		j.Speed[lower] = 0
	}

	j.advance(upper, step)
	j.advance(lower, step)
}
