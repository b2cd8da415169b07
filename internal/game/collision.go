package game

import "github.com/sirupsen/logrus"

// Collides tests the two horses' forecasts on the ground plane. Touching
// circles count as a collision.
func Collides(a, b *Horse, d Direction) bool {
	pa, pb := a.Forecast(d), b.Forecast(d)
	return planarDistance(pa.X(), pa.Z(), pb.X(), pb.Z()) <= a.radius+b.radius
}

// collidesAhead tests a piloted horse's next straight step against where
// other stands now.
func collidesAhead(pilot, other *Horse) bool {
	pa, pb := pilot.Forecast(DirStraight), other.Forecast(DirNone)
	return planarDistance(pa.X(), pa.Z(), pb.X(), pb.Z()) <= pilot.radius+other.radius
}

// fartherFrom reports whether moving the avoider in d keeps it at least as
// far from ref as it is now.
func fartherFrom(ref, avoider *Horse, d Direction) bool {
	r := ref.Forecast(DirNone)
	now := avoider.Forecast(DirNone)
	next := avoider.Forecast(d)
	before := planarDistance(r.X(), r.Z(), now.X(), now.Z())
	after := planarDistance(r.X(), r.Z(), next.X(), next.Z())
	return before <= after
}

func leavesField(h *Horse) bool {
	p := h.Forecast(DirStraight)
	return !inField(p.X(), p.Z())
}

// chooseAvoidDirection keeps the avoider going straight while that opens the
// gap, stays in the field and no turn has been committed to this frame.
// Otherwise it commits to a side for the rest of the encounter.
func (s *Scene) chooseAvoidDirection(ref, avoider *Horse) {
	straightOK := !avoider.dirAssigned || avoider.avoidDir == DirStraight
	switch {
	case straightOK && fartherFrom(ref, avoider, DirStraight) && !leavesField(avoider):
		avoider.avoidDir = DirStraight
	case avoider.avoidDir != DirLeft && avoider.avoidDir != DirRight:
		first, second := DirLeft, DirRight
		if !s.rng.Coin() {
			first, second = DirRight, DirLeft
		}
		if fartherFrom(ref, avoider, first) {
			avoider.avoidDir = first
		} else {
			avoider.avoidDir = second
		}
	}
	avoider.dirAssigned = true
}

// splitRoles makes one of the pair stop and the other avoid, at random.
func (s *Scene) splitRoles(a, b *Horse) {
	if s.rng.Coin() {
		a.SetStatus(StatusStopped)
	} else {
		a.SetStatus(StatusAvoiding)
	}
	if a.Status() == StatusStopped {
		b.SetStatus(StatusAvoiding)
	} else {
		b.SetStatus(StatusStopped)
	}
}

type pairKind int

const (
	pairBothNormal pairKind = iota
	pairOneNormal
	pairBothAvoiding
	pairWithControlled
	pairStoppedAvoiding
)

// classify maps a status pair onto the branch of the negotiation protocol
// that handles it. The order of the cases is significant.
func classify(a, b Status) pairKind {
	switch {
	case a == StatusNormal && b == StatusNormal:
		return pairBothNormal
	case a == StatusNormal || b == StatusNormal:
		return pairOneNormal
	case a == StatusAvoiding && b == StatusAvoiding:
		return pairBothAvoiding
	case a == StatusControlled || b == StatusControlled:
		return pairWithControlled
	default:
		return pairStoppedAvoiding
	}
}

// resolveDuring advances the negotiation of a pair whose straight forecasts
// overlap, then records each horse in the other's queue.
func (s *Scene) resolveDuring(a, b *Horse) {
	switch classify(a.Status(), b.Status()) {
	case pairBothNormal:
		s.splitRoles(a, b)
		s.log.WithFields(logrus.Fields{"horse": a.id, "other": b.id, "status": a.Status()}).Debug("collision")
		s.events.Emit(Event{Type: EventCollision, Horse: a.id, Other: b.id, X: a.pos.X(), Z: a.pos.Z()})

	case pairOneNormal:
		if a.Status() == StatusNormal {
			a.SetStatus(StatusStopped)
		} else {
			b.SetStatus(StatusStopped)
		}

	case pairBothAvoiding:
		s.splitRoles(a, b)

	case pairWithControlled:
		pilot, free := a, b
		if b.Status() == StatusControlled {
			pilot, free = b, a
		}
		free.SetStatus(StatusAvoiding)
		s.chooseAvoidDirection(pilot, free)

	case pairStoppedAvoiding:
		stopped, avoider := a, b
		if a.Status() != StatusStopped {
			stopped, avoider = b, a
		}
		s.chooseAvoidDirection(stopped, avoider)
		if avoider.IsTrapped() {
			s.freeTrapped(avoider, stopped)
		}

	default:
		panic("game: unhandled collision pair kind")
	}

	a.collisions.Add(b.id)
	b.collisions.Add(a.id)
}

// freeTrapped stops a horse that has spun a full circle and hands the
// avoiding role to the first horse it collided with. fallback takes the
// role when the queue is still empty.
func (s *Scene) freeTrapped(trapped, fallback *Horse) {
	trapped.SetStatus(StatusStopped)
	trapped.dirAssigned = false
	trapped.avoidDir = DirNone

	next := fallback
	if id, ok := trapped.collisions.Front(); ok {
		next = s.Horse(id)
	}
	next.SetStatus(StatusAvoiding)

	s.log.WithFields(logrus.Fields{"horse": trapped.id, "other": next.id}).Debug("trapped")
	s.events.Emit(Event{Type: EventTrapped, Horse: trapped.id, Other: next.id, X: trapped.pos.X(), Z: trapped.pos.Z()})
}

// resolveEnd drops a pair that no longer overlaps from both queues. A horse
// with nothing left to negotiate goes back to normal.
func (s *Scene) resolveEnd(a, b *Horse) {
	s.forget(a, b.id)
	s.forget(b, a.id)
	s.settle(a)
	s.settle(b)
}

func (s *Scene) forget(h *Horse, id int) {
	if !h.collisions.Contains(id) {
		return
	}
	if err := h.collisions.Remove(id); err != nil {
		s.log.WithError(err).WithField("horse", h.id).Warn("collision queue out of sync")
	}
}

func (s *Scene) settle(h *Horse) {
	if h.collisions.Len() > 0 {
		return
	}
	was := h.Status()
	h.SetStatus(StatusNormal)
	h.avoidDir = DirNone
	if was != StatusNormal && h.Status() == StatusNormal {
		s.events.Emit(Event{Type: EventSeparated, Horse: h.id, X: h.pos.X(), Z: h.pos.Z()})
	}
}

// sweep tests every unordered pair once, lower id first.
func (s *Scene) sweep() {
	for i := 0; i < len(s.horses)-1; i++ {
		for j := i + 1; j < len(s.horses); j++ {
			a, b := s.horses[i], s.horses[j]
			if Collides(a, b, DirStraight) {
				s.resolveDuring(a, b)
			} else {
				s.resolveEnd(a, b)
			}
		}
	}
}

// releaseStuck lets one of two mutually stopped horses avoid so that the
// pair cannot freeze forever, then clears every sticky direction flag.
func (s *Scene) releaseStuck() {
	for _, h := range s.horses {
		if h.Status() != StatusNormal {
			if id, ok := h.collisions.Front(); ok {
				other := s.Horse(id)
				if h.Status() == StatusStopped && other.Status() == StatusStopped {
					released, held := other, h
					if s.rng.Coin() {
						released, held = h, other
					}
					released.SetStatus(StatusAvoiding)
					s.log.WithFields(logrus.Fields{"horse": released.id, "other": held.id}).Debug("released stuck pair")
					s.events.Emit(Event{Type: EventReleased, Horse: released.id, Other: held.id, X: released.pos.X(), Z: released.pos.Z()})
				}
			}
		}
		h.dirAssigned = false
	}
}
