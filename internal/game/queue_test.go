package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollisionQueueAddIsIdempotent(t *testing.T) {
	var q CollisionQueue
	assert.False(t, q.Contains(4))

	assert.True(t, q.Add(4))
	assert.False(t, q.Add(4))
	assert.Equal(t, 1, q.Len())
	assert.True(t, q.Contains(4))
}

func TestCollisionQueueOrder(t *testing.T) {
	var q CollisionQueue
	_, ok := q.Front()
	assert.False(t, ok)

	q.Add(3)
	q.Add(1)
	q.Add(7)
	require.NoError(t, q.Remove(1))
	assert.Equal(t, []int{3, 7}, q.IDs())

	id, ok := q.Front()
	require.True(t, ok)
	assert.Equal(t, 3, id)

	id, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 3, id)
	assert.Equal(t, []int{7}, q.IDs())
}

func TestCollisionQueueRemoveMissing(t *testing.T) {
	var q CollisionQueue
	q.Add(2)

	err := q.Remove(5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotQueued)
	assert.Equal(t, 1, q.Len())
}
