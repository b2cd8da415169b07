package game

import (
	"io"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"herd/internal/skeleton"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// placeHorse builds a horse and pins its motion state so tests do not depend
// on the random roll.
func placeHorse(t *testing.T, id int, x, z, pan, speed float32) *Horse {
	t.Helper()
	h := NewHorse(id, NewRand(uint64(id)*7919), nil)
	h.pos[0], h.pos[2] = x, z
	h.pan = pan
	h.speed = speed
	h.anim.SetGait(GaitForSpeed(speed))
	h.steps, h.currentSteps = MaxPathSteps, 0
	h.changeSpeed, h.stop = false, false
	return h
}

func testScene(seed uint64, horses ...*Horse) *Scene {
	s := &Scene{
		rng:      NewRand(seed),
		horses:   horses,
		events:   NewEventBus(),
		log:      quietLogger(),
		selected: 1,
	}
	for _, h := range horses {
		h.events = s.events
	}
	return s
}

func recordEvents(bus *EventBus) *[]Event {
	var got []Event
	bus.SubscribeAll(func(e Event) { got = append(got, e) })
	return &got
}

type submission struct {
	color     mgl32.Vec4
	transform mgl32.Mat4
	topology  skeleton.Topology
}

type recorder struct {
	parts []submission
}

func (r *recorder) SubmitPart(color mgl32.Vec4, transform mgl32.Mat4, topology skeleton.Topology) {
	r.parts = append(r.parts, submission{color, transform, topology})
}
