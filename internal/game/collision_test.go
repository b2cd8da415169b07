package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollidesIsSymmetric(t *testing.T) {
	rng := NewRand(9)
	for i := 0; i < 300; i++ {
		a := NewHorse(1, rng, nil)
		b := NewHorse(2, rng, nil)
		b.pos[0] = a.pos[0] + float32(rng.Range(-12, 12))
		b.pos[2] = a.pos[2] + float32(rng.Range(-12, 12))
		for _, d := range []Direction{DirLeft, DirStraight, DirRight, DirNone} {
			require.Equal(t, Collides(a, b, d), Collides(b, a, d), "pair %d dir %s", i, d)
		}
	}
}

func TestCollidesWhenTouching(t *testing.T) {
	a := placeHorse(t, 1, 0, 0, 0, 0.5)
	b := placeHorse(t, 2, 5, 0, 0, 0.5)
	a.radius, b.radius = 2, 3

	assert.True(t, Collides(a, b, DirNone))

	b.pos[0] = 5.01
	assert.False(t, Collides(a, b, DirNone))
}

func TestCollidesIgnoresHeight(t *testing.T) {
	a := placeHorse(t, 1, 0, 0, 0, 0.5)
	b := placeHorse(t, 2, 4, 0, 0, 0.5)
	a.radius, b.radius = 2, 2
	a.pos[1], b.pos[1] = 1.8, 4

	assert.True(t, Collides(a, b, DirNone))
}

// headOn puts two horses exactly one radius sum apart, facing each other.
func headOn(t *testing.T) (*Horse, *Horse) {
	a := placeHorse(t, 1, 0, 0, Pi, 0.5) // heading +x
	b := placeHorse(t, 2, 0, 0, 0, 0.5)  // heading -x
	b.pos[0] = a.radius + b.radius
	return a, b
}

func TestTwoNormalHorsesSplitRoles(t *testing.T) {
	a, b := headOn(t)
	s := testScene(3, a, b)
	events := recordEvents(s.events)

	s.Tick(nil)

	statuses := []Status{a.Status(), b.Status()}
	assert.ElementsMatch(t, []Status{StatusStopped, StatusAvoiding}, statuses)
	assert.True(t, a.Collisions().Contains(b.ID()))
	assert.True(t, b.Collisions().Contains(a.ID()))
	assert.Equal(t, 1, a.Collisions().Len())
	require.NotEmpty(t, *events)
	assert.Equal(t, EventCollision, (*events)[0].Type)
}

func TestSplitRolesIsRandomButComplementary(t *testing.T) {
	seen := map[Status]bool{}
	for seed := uint64(1); seed <= 40; seed++ {
		a, b := headOn(t)
		s := testScene(seed, a, b)
		s.resolveDuring(a, b)
		require.NotEqual(t, a.Status(), b.Status())
		seen[a.Status()] = true
	}
	assert.True(t, seen[StatusStopped])
	assert.True(t, seen[StatusAvoiding])
}

func TestNormalHorseJoiningStops(t *testing.T) {
	a, b := headOn(t)
	a.SetStatus(StatusAvoiding)
	s := testScene(1, a, b)

	s.resolveDuring(a, b)

	assert.Equal(t, StatusAvoiding, a.Status())
	assert.Equal(t, StatusStopped, b.Status())
}

func TestControlledHorseIsAvoided(t *testing.T) {
	pilot := placeHorse(t, 1, 0, 0, 0, 0.5)
	free := placeHorse(t, 2, 3, 0, Pi, 0.5) // heading away from the pilot
	pilot.SetControlled(true)
	free.SetStatus(StatusStopped)
	s := testScene(1, pilot, free)

	s.resolveDuring(pilot, free)

	assert.Equal(t, StatusControlled, pilot.Status())
	assert.Equal(t, StatusAvoiding, free.Status())
	assert.Equal(t, DirStraight, free.AvoidDirection())
	assert.True(t, free.DirectionAssigned())
}

func TestAvoiderTurnsWhenStraightCloses(t *testing.T) {
	stopped := placeHorse(t, 1, 0, 0, 0, 0.5)
	avoider := placeHorse(t, 2, 3, 0, 0, 0.5) // heading towards the stopped horse
	stopped.SetStatus(StatusStopped)
	avoider.SetStatus(StatusAvoiding)
	s := testScene(5, stopped, avoider)

	s.resolveDuring(stopped, avoider)
	d := avoider.AvoidDirection()
	require.Contains(t, []Direction{DirLeft, DirRight}, d)
	require.True(t, avoider.DirectionAssigned())

	// the side sticks for the rest of the encounter
	for i := 0; i < 10; i++ {
		s.releaseStuck()
		assert.False(t, avoider.DirectionAssigned())
		s.resolveDuring(stopped, avoider)
		assert.Equal(t, d, avoider.AvoidDirection())
	}
}

func TestAvoiderNeverLeavesField(t *testing.T) {
	stopped := placeHorse(t, 1, FieldHalfSize-3, 0, 0, 0.5)
	avoider := placeHorse(t, 2, FieldHalfSize, 0, Pi, 1) // heading out of the field
	stopped.SetStatus(StatusStopped)
	avoider.SetStatus(StatusAvoiding)
	s := testScene(2, stopped, avoider)

	s.resolveDuring(stopped, avoider)

	assert.NotEqual(t, DirStraight, avoider.AvoidDirection())
}

func TestTrappedAvoiderHandsOverRole(t *testing.T) {
	a := placeHorse(t, 1, 0, 0, 0, 0.5)
	b := placeHorse(t, 2, 3, 0, 0, 0.5)
	c := placeHorse(t, 3, 3, 3, 0, 0.5)
	a.SetStatus(StatusStopped)
	b.SetStatus(StatusAvoiding)
	c.SetStatus(StatusStopped)
	b.collisions.Add(c.ID())
	b.collisions.Add(a.ID())
	b.avoidDir = DirLeft
	b.turned = 2 * Pi
	s := testScene(1, a, b, c)
	events := recordEvents(s.events)

	s.resolveDuring(a, b)

	assert.Equal(t, StatusStopped, b.Status())
	assert.Equal(t, DirNone, b.AvoidDirection())
	assert.False(t, b.DirectionAssigned())
	assert.Zero(t, b.turned)
	assert.Equal(t, StatusAvoiding, c.Status())
	assert.Equal(t, StatusStopped, a.Status())
	require.Len(t, *events, 1)
	assert.Equal(t, Event{Type: EventTrapped, Horse: 2, Other: 3, X: 3, Z: 0}, (*events)[0])
}

func TestTrappedWithEmptyQueueFallsBackToPartner(t *testing.T) {
	a := placeHorse(t, 1, 0, 0, 0, 0.5)
	b := placeHorse(t, 2, 3, 0, 0, 0.5)
	a.SetStatus(StatusStopped)
	b.SetStatus(StatusAvoiding)
	b.turned = 2 * Pi
	s := testScene(1, a, b)

	s.resolveDuring(b, a)

	assert.Equal(t, StatusStopped, b.Status())
	assert.Equal(t, StatusAvoiding, a.Status())
	assert.True(t, a.Collisions().Contains(2))
	assert.True(t, b.Collisions().Contains(1))
}

func TestResolveEndReturnsToNormal(t *testing.T) {
	a, b := headOn(t)
	s := testScene(1, a, b)
	s.resolveDuring(a, b)
	events := recordEvents(s.events)

	s.resolveEnd(a, b)

	assert.Equal(t, StatusNormal, a.Status())
	assert.Equal(t, StatusNormal, b.Status())
	assert.Zero(t, a.Collisions().Len())
	assert.Zero(t, b.Collisions().Len())
	assert.Equal(t, DirNone, a.AvoidDirection())
	assert.Len(t, *events, 2)

	// nothing to end
	s.resolveEnd(a, b)
	assert.Len(t, *events, 2)
}

func TestResolveEndKeepsOtherEncounters(t *testing.T) {
	a := placeHorse(t, 1, 0, 0, 0, 0.5)
	b := placeHorse(t, 2, 3, 0, 0, 0.5)
	c := placeHorse(t, 3, 6, 0, 0, 0.5)
	s := testScene(1, a, b, c)
	s.resolveDuring(a, b)
	s.resolveDuring(b, c)
	status := b.Status()

	s.resolveEnd(a, b)

	assert.Equal(t, StatusNormal, a.Status())
	assert.Equal(t, status, b.Status())
	assert.Equal(t, []int{3}, b.Collisions().IDs())
}

func TestReleaseStuckPair(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		a := placeHorse(t, 1, 0, 0, 0, 0.5)
		b := placeHorse(t, 2, 3, 0, 0, 0.5)
		a.SetStatus(StatusStopped)
		b.SetStatus(StatusStopped)
		a.collisions.Add(2)
		b.collisions.Add(1)
		a.dirAssigned, b.dirAssigned = true, true
		s := testScene(seed, a, b)

		s.releaseStuck()

		assert.ElementsMatch(t, []Status{StatusStopped, StatusAvoiding}, []Status{a.Status(), b.Status()}, "seed %d", seed)
		assert.False(t, a.DirectionAssigned())
		assert.False(t, b.DirectionAssigned())
	}
}

func TestClassifyCoversEveryPair(t *testing.T) {
	all := []Status{StatusNormal, StatusStopped, StatusAvoiding, StatusControlled}
	for _, a := range all {
		for _, b := range all {
			assert.Equal(t, classify(a, b), classify(b, a), "%s/%s", a, b)
		}
	}
	assert.Equal(t, pairBothNormal, classify(StatusNormal, StatusNormal))
	assert.Equal(t, pairOneNormal, classify(StatusControlled, StatusNormal))
	assert.Equal(t, pairBothAvoiding, classify(StatusAvoiding, StatusAvoiding))
	assert.Equal(t, pairWithControlled, classify(StatusAvoiding, StatusControlled))
	assert.Equal(t, pairStoppedAvoiding, classify(StatusStopped, StatusStopped))
	assert.Equal(t, pairStoppedAvoiding, classify(StatusAvoiding, StatusStopped))
}
