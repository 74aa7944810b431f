package session_test

import (
	"sync"
	"testing"

	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_CreateAndGet(t *testing.T) {
	m := session.NewManager()

	sess := m.Create("Blue", "Red", nil, nil)
	assert.NotEqual(t, uuid.Nil, sess.ID)
	assert.Equal(t, 1, m.Count())

	got, err := m.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestManager_GetUnknown(t *testing.T) {
	m := session.NewManager()

	_, err := m.Get(uuid.New())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestManager_Delete(t *testing.T) {
	m := session.NewManager()
	sess := m.Create("Blue", "Red", nil, nil)

	m.Delete(sess.ID)
	assert.Equal(t, 0, m.Count())

	_, err := m.Get(sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSession_ApplyAndSnapshot(t *testing.T) {
	m := session.NewManager()
	sess := m.Create("Blue", "Red", nil, nil)

	require.NoError(t, sess.Apply("Ahri"))

	snap := sess.Snapshot()
	assert.Equal(t, 1, snap.Cursor)
	assert.Equal(t, "Ahri", snap.Blue.Bans[0])

	// The snapshot is detached: mutating it never reaches the session.
	snap.Blue.Bans[0] = "tampered"
	assert.Equal(t, "Ahri", sess.Snapshot().Blue.Bans[0])
}

func TestSession_UndoAndReset(t *testing.T) {
	m := session.NewManager()
	sess := m.Create("Blue", "Red", nil, nil)

	require.NoError(t, sess.Apply("Ahri"))
	require.NoError(t, sess.Apply("Zed"))

	require.NoError(t, sess.Undo())
	assert.Equal(t, 1, sess.Snapshot().Cursor)

	sess.Reset()
	snap := sess.Snapshot()
	assert.Equal(t, 0, snap.Cursor)
	assert.Empty(t, snap.Actions)
}

func TestSession_ConcurrentAppliesStayConsistent(t *testing.T) {
	m := session.NewManager()
	sess := m.Create("Blue", "Red", nil, nil)

	// Twenty goroutines race distinct champions at the same draft; the lock
	// must keep the cursor and the log in lockstep regardless of who wins.
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sess.Apply(string(rune('a' + n)))
		}(i)
	}
	wg.Wait()

	snap := sess.Snapshot()
	assert.Equal(t, 20, snap.Cursor)
	assert.Len(t, snap.Actions, 20)
	assert.True(t, snap.IsComplete())
}
