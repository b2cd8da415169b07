package game

import (
	"errors"
	"fmt"
)

// ErrNotQueued is returned when removing an id the queue does not hold.
var ErrNotQueued = errors.New("horse not in collision queue")

// CollisionQueue holds the ids of the horses a horse is collided with, in
// the order the collisions started. The front is the oldest one.
type CollisionQueue struct {
	ids []int
}

func (q *CollisionQueue) Len() int { return len(q.ids) }

func (q *CollisionQueue) Contains(id int) bool {
	for _, v := range q.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Add appends id unless it is already queued. It reports whether id was added.
func (q *CollisionQueue) Add(id int) bool {
	if q.Contains(id) {
		return false
	}
	q.ids = append(q.ids, id)
	return true
}

// Remove deletes id, keeping the order of the others.
func (q *CollisionQueue) Remove(id int) error {
	for i, v := range q.ids {
		if v == id {
			q.ids = append(q.ids[:i], q.ids[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove %d: %w", id, ErrNotQueued)
}

func (q *CollisionQueue) Front() (int, bool) {
	if len(q.ids) == 0 {
		return 0, false
	}
	return q.ids[0], true
}

// Dequeue removes and returns the front id.
func (q *CollisionQueue) Dequeue() (int, bool) {
	id, ok := q.Front()
	if ok {
		q.ids = q.ids[1:]
	}
	return id, ok
}

// IDs returns a copy of the queued ids, front first.
func (q *CollisionQueue) IDs() []int {
	out := make([]int, len(q.ids))
	copy(out, q.ids)
	return out
}
