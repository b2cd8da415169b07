package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"herd/internal/skeleton"
)

// ErrCrowded is returned when the herd cannot be placed without overlaps.
var ErrCrowded = errors.New("herd does not fit the field")

// maxPlacementRolls bounds the position re-rolls spent on a single horse.
const maxPlacementRolls = 10000

// Scene owns the herd and every piece of state shared between horses: the
// random source, selection and control, pause and render settings.
type Scene struct {
	rng    *Rand
	horses []*Horse
	events *EventBus
	log    logrus.FieldLogger
	seed   uint64

	selected    int
	selecting   bool
	controlling bool
	paused      bool
	debugColors bool
	topology    skeleton.Topology

	worldPan  float32
	worldTilt float32

	frame uint64
}

// NewScene builds a herd of cfg.Herd horses with ids 1..N, none of them
// overlapping. A zero seed is replaced by the clock. events and log may be nil.
func NewScene(cfg Config, events *EventBus, log logrus.FieldLogger) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene config: %w", err)
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if events == nil {
		events = NewEventBus()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s := &Scene{
		rng:      NewRand(seed),
		events:   events,
		log:      log,
		seed:     seed,
		selected: 1,
		paused:   cfg.Paused,
		topology: skeleton.Filled,
	}
	events.Subscribe(EventJump, func(e Event) {
		s.log.WithField("horse", e.Horse).Debug("jump")
	})
	if err := s.populate(cfg.Herd); err != nil {
		return nil, err
	}
	if cfg.DebugColors {
		s.setDebugColors(true)
	}

	s.log.WithFields(logrus.Fields{"herd": len(s.horses), "seed": seed, "paused": s.paused}).Info("scene created")
	return s, nil
}

func (s *Scene) populate(n int) error {
	for id := 1; id <= n; id++ {
		h := NewHorse(id, s.rng, s.events)
		rolls := 0
		for j := 0; j < len(s.horses); j++ {
			if !Collides(s.horses[j], h, DirNone) {
				continue
			}
			rolls++
			if rolls > maxPlacementRolls {
				return fmt.Errorf("placing horse %d of %d: %w", id, n, ErrCrowded)
			}
			h.RandomizePosition()
			j = -1
		}
		s.horses = append(s.horses, h)
	}
	return nil
}

func (s *Scene) Events() *EventBus           { return s.events }
func (s *Scene) Horses() []*Horse            { return s.horses }
func (s *Scene) Len() int                    { return len(s.horses) }
func (s *Scene) Seed() uint64                { return s.seed }
func (s *Scene) SelectedID() int             { return s.selected }
func (s *Scene) Selecting() bool             { return s.selecting }
func (s *Scene) Controlling() bool           { return s.controlling }
func (s *Scene) Paused() bool                { return s.paused }
func (s *Scene) DebugColors() bool           { return s.debugColors }
func (s *Scene) Topology() skeleton.Topology { return s.topology }
func (s *Scene) Frame() uint64               { return s.frame }

// Horse returns the horse with the given id. Ids run from 1 to Len().
func (s *Scene) Horse(id int) *Horse {
	return s.horses[id-1]
}

// WorldOrientation is the scene rotation applied to every horse and to the
// ground.
func (s *Scene) WorldOrientation() mgl32.Mat4 {
	return mgl32.HomogRotate3DY(s.worldPan).Mul4(mgl32.HomogRotate3DX(s.worldTilt))
}

// Tick runs one frame: pose and draw every horse, negotiate collisions,
// then move the herd unless paused. sub may be nil.
func (s *Scene) Tick(sub skeleton.Submitter) {
	world := s.WorldOrientation()
	for _, h := range s.horses {
		h.Pose(world)
		if sub != nil {
			h.Draw(sub)
		}
	}

	s.sweep()
	s.releaseStuck()

	if !s.paused {
		for _, h := range s.horses {
			h.Update()
		}
	}
	s.frame++
}

// Apply handles one user command. Piloting commands are ignored while the
// scene is paused.
func (s *Scene) Apply(c Command) {
	s.log.WithField("command", c).Debug("apply")
	switch c {
	case CmdBeginSelect:
		s.beginSelect()
	case CmdEndSelect:
		s.endSelect()
	case CmdToggleSelect:
		if s.selecting {
			s.endSelect()
		} else {
			s.beginSelect()
		}
	case CmdLeft:
		if s.selecting {
			s.cycle(-1)
		} else if s.piloting() {
			s.Horse(s.selected).Move(DirLeft)
		}
	case CmdRight:
		if s.selecting {
			s.cycle(1)
		} else if s.piloting() {
			s.Horse(s.selected).Move(DirRight)
		}
	case CmdForward:
		if s.piloting() && !s.blocked(s.Horse(s.selected)) {
			s.Horse(s.selected).Move(DirStraight)
		}
	case CmdSpeedUp:
		if s.piloting() {
			s.Horse(s.selected).IncrementSpeed()
		}
	case CmdSlowDown:
		if s.piloting() {
			s.Horse(s.selected).DecrementSpeed()
		}
	case CmdStop:
		if s.piloting() && !s.Horse(s.selected).Jumping() {
			s.Horse(s.selected).Stop()
		}
	case CmdToggleControl:
		s.toggleControl()
	case CmdToggleDebugColors:
		s.setDebugColors(!s.debugColors)
	case CmdTogglePause:
		s.paused = !s.paused
	case CmdRenderFilled:
		s.SetTopology(skeleton.Filled)
	case CmdRenderWireframe:
		s.SetTopology(skeleton.Wireframe)
	case CmdRenderPoints:
		s.SetTopology(skeleton.Points)
	case CmdCycleRender:
		s.SetTopology(s.topology.Next())
	case CmdWorldPanLeft:
		s.worldPan -= WorldStep
	case CmdWorldPanRight:
		s.worldPan += WorldStep
	case CmdWorldTiltUp:
		s.worldTilt += WorldStep
	case CmdWorldTiltDown:
		s.worldTilt -= WorldStep
	case CmdWorldReset:
		s.worldPan, s.worldTilt = 0, 0
	}
}

func (s *Scene) piloting() bool {
	return s.controlling && !s.paused
}

// blocked reports whether pilot's next step would run into any other horse.
func (s *Scene) blocked(pilot *Horse) bool {
	for _, h := range s.horses {
		if h != pilot && collidesAhead(pilot, h) {
			return true
		}
	}
	return false
}

func (s *Scene) beginSelect() {
	if s.controlling {
		return
	}
	s.Horse(s.selected).SetSelected(true)
	s.selecting = true
}

func (s *Scene) endSelect() {
	if s.controlling {
		return
	}
	s.Horse(s.selected).SetSelected(false)
	s.selecting = false
}

// cycle moves the selection by delta with wraparound over 1..N.
func (s *Scene) cycle(delta int) {
	s.Horse(s.selected).SetSelected(false)
	n := len(s.horses)
	s.selected = ((s.selected-1+delta)%n+n)%n + 1
	s.Horse(s.selected).SetSelected(true)
}

func (s *Scene) toggleControl() {
	h := s.Horse(s.selected)
	switch {
	case s.selecting:
		h.SetControlled(true)
		h.SetSelected(false)
		s.controlling = true
		s.selecting = false
		s.log.WithField("horse", h.id).Info("took control")
	case s.controlling:
		h.SetControlled(false)
		s.controlling = false
		s.log.WithField("horse", h.id).Info("released control")
	}
}

func (s *Scene) setDebugColors(on bool) {
	s.debugColors = on
	for _, h := range s.horses {
		h.SetDebugColors(on)
	}
}

func (s *Scene) SetTopology(t skeleton.Topology) {
	s.topology = t
	for _, h := range s.horses {
		h.SetTopology(t)
	}
}
