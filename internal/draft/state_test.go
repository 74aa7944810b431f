package draft_test

import (
	"fmt"
	"testing"

	"github.com/coachkit/draft-coach/internal/domain"
	"github.com/coachkit/draft-coach/internal/draft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState() *draft.State {
	return draft.New("Blue", "Red", nil, nil)
}

// championFor returns a unique champion id for a step index.
func championFor(step int) string {
	return fmt.Sprintf("champ-%02d", step)
}

func TestDraftSequence_Shape(t *testing.T) {
	require.Equal(t, 20, domain.TotalSteps())

	var blueBans, redBans, bluePicks, redPicks int
	for i, step := range domain.DraftSequence {
		assert.Equal(t, i, step.Index, "step index must match position")
		switch {
		case step.Team == domain.SideBlue && step.ActionType == domain.ActionTypeBan:
			blueBans++
		case step.Team == domain.SideRed && step.ActionType == domain.ActionTypeBan:
			redBans++
		case step.Team == domain.SideBlue && step.ActionType == domain.ActionTypePick:
			bluePicks++
		case step.Team == domain.SideRed && step.ActionType == domain.ActionTypePick:
			redPicks++
		}
	}
	assert.Equal(t, 5, blueBans)
	assert.Equal(t, 5, redBans)
	assert.Equal(t, 5, bluePicks)
	assert.Equal(t, 5, redPicks)
}

func TestDraftSequence_Order(t *testing.T) {
	expected := []struct {
		team   domain.Side
		action domain.ActionType
	}{
		{domain.SideBlue, domain.ActionTypeBan},
		{domain.SideRed, domain.ActionTypeBan},
		{domain.SideRed, domain.ActionTypeBan},
		{domain.SideBlue, domain.ActionTypeBan},
		{domain.SideBlue, domain.ActionTypeBan},
		{domain.SideRed, domain.ActionTypeBan},
		{domain.SideBlue, domain.ActionTypePick},
		{domain.SideRed, domain.ActionTypePick},
		{domain.SideRed, domain.ActionTypePick},
		{domain.SideBlue, domain.ActionTypePick},
		{domain.SideBlue, domain.ActionTypePick},
		{domain.SideRed, domain.ActionTypePick},
		{domain.SideRed, domain.ActionTypeBan},
		{domain.SideBlue, domain.ActionTypeBan},
		{domain.SideBlue, domain.ActionTypeBan},
		{domain.SideRed, domain.ActionTypeBan},
		{domain.SideRed, domain.ActionTypePick},
		{domain.SideBlue, domain.ActionTypePick},
		{domain.SideBlue, domain.ActionTypePick},
		{domain.SideRed, domain.ActionTypePick},
	}

	require.Len(t, domain.DraftSequence, len(expected))
	for i, want := range expected {
		assert.Equal(t, want.team, domain.DraftSequence[i].Team, "team at step %d", i)
		assert.Equal(t, want.action, domain.DraftSequence[i].ActionType, "action at step %d", i)
	}
}

func TestState_FullDraft(t *testing.T) {
	s := newState()

	for i := 0; i < domain.TotalSteps(); i++ {
		step := s.CurrentStep()
		require.NotNil(t, step, "step %d should exist", i)
		assert.Equal(t, i, step.Index)

		require.NoError(t, s.Apply(championFor(i)))

		// Cursor and log advance in lockstep
		assert.Equal(t, i+1, s.Cursor)
		assert.Len(t, s.Actions, s.Cursor)
	}

	assert.True(t, s.IsComplete())
	assert.Nil(t, s.CurrentStep())

	// Every slot filled
	for i := 0; i < draft.TeamSize; i++ {
		assert.NotEmpty(t, s.Blue.Bans[i])
		assert.NotEmpty(t, s.Blue.Picks[i])
		assert.NotEmpty(t, s.Red.Bans[i])
		assert.NotEmpty(t, s.Red.Picks[i])
	}

	// Applying past the end fails without touching state
	err := s.Apply("one-more")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
	assert.ErrorIs(t, err, domain.ErrDraftComplete)
	assert.Equal(t, domain.TotalSteps(), s.Cursor)
	assert.Len(t, s.Actions, domain.TotalSteps())
}

func TestState_ActionLogRecordsSteps(t *testing.T) {
	s := newState()

	for i := 0; i < domain.TotalSteps(); i++ {
		require.NoError(t, s.Apply(championFor(i)))
	}

	for i, action := range s.Actions {
		step := domain.DraftSequence[i]
		assert.Equal(t, step.Index, action.StepIndex)
		assert.Equal(t, step.Team, action.Team)
		assert.Equal(t, step.ActionType, action.ActionType)
		assert.Equal(t, championFor(i), action.ChampionID)
	}
}

func TestState_ApplyRejectsEmptyID(t *testing.T) {
	s := newState()

	err := s.Apply("")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
	assert.Equal(t, 0, s.Cursor)
	assert.Empty(t, s.Actions)
}

func TestState_ApplyRejectsTakenChampion(t *testing.T) {
	s := newState()
	require.NoError(t, s.Apply("Aatrox"))

	// Banned by blue, so nobody can touch it again
	err := s.Apply("Aatrox")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
	assert.ErrorIs(t, err, domain.ErrChampionUnavailable)

	// Failed apply leaves the state untouched
	assert.Equal(t, 1, s.Cursor)
	assert.Len(t, s.Actions, 1)
}

func TestState_UndoIsExactInverse(t *testing.T) {
	for steps := 1; steps <= domain.TotalSteps(); steps++ {
		s := newState()
		for i := 0; i < steps-1; i++ {
			require.NoError(t, s.Apply(championFor(i)))
		}

		before := *s
		before.Actions = append([]domain.DraftAction(nil), s.Actions...)

		require.NoError(t, s.Apply(championFor(steps-1)))
		s.Undo()

		assert.Equal(t, before.Blue, s.Blue, "after undoing step %d", steps-1)
		assert.Equal(t, before.Red, s.Red, "after undoing step %d", steps-1)
		assert.Equal(t, before.Cursor, s.Cursor)
		assert.Equal(t, before.Actions, s.Actions)
	}
}

func TestState_UndoOnEmptyDraftIsNoop(t *testing.T) {
	s := newState()
	s.Undo()

	assert.Equal(t, 0, s.Cursor)
	assert.Empty(t, s.Actions)
}

func TestState_UndoAllReturnsToEmpty(t *testing.T) {
	s := newState()
	for i := 0; i < domain.TotalSteps(); i++ {
		require.NoError(t, s.Apply(championFor(i)))
	}
	for i := 0; i < domain.TotalSteps(); i++ {
		s.Undo()
	}

	assert.Equal(t, 0, s.Cursor)
	assert.Empty(t, s.Actions)
	assert.Equal(t, [draft.TeamSize]string{}, s.Blue.Bans)
	assert.Equal(t, [draft.TeamSize]string{}, s.Blue.Picks)
	assert.Equal(t, [draft.TeamSize]string{}, s.Red.Bans)
	assert.Equal(t, [draft.TeamSize]string{}, s.Red.Picks)
}

func TestState_ResetKeepsRosters(t *testing.T) {
	bluePlayers := []domain.DraftPlayer{{ID: "p1", Name: "Stone", Role: domain.RoleTop}}
	s := draft.New("Blue", "Red", bluePlayers, nil)

	for i := 0; i < 8; i++ {
		require.NoError(t, s.Apply(championFor(i)))
	}

	s.Reset()

	assert.Equal(t, 0, s.Cursor)
	assert.Empty(t, s.Actions)
	assert.Equal(t, "Blue", s.Blue.Name)
	assert.Equal(t, "Red", s.Red.Name)
	assert.Equal(t, bluePlayers, s.Blue.Players)
	assert.Equal(t, [draft.TeamSize]string{}, s.Blue.Bans)
	assert.Equal(t, [draft.TeamSize]string{}, s.Red.Bans)
}

func TestState_ExcludedSet(t *testing.T) {
	s := newState()
	assert.Empty(t, s.ExcludedSet())
	assert.True(t, s.IsAvailable("Aatrox"))

	// One ban from each side, then blue's first pick
	require.NoError(t, s.Apply("Zed"))
	require.NoError(t, s.Apply("Ahri"))
	require.NoError(t, s.Apply("Camille"))
	require.NoError(t, s.Apply("Gnar"))
	require.NoError(t, s.Apply("Varus"))
	require.NoError(t, s.Apply("Janna"))
	require.NoError(t, s.Apply("Aatrox"))

	excluded := s.ExcludedSet()
	assert.Len(t, excluded, 7)
	for _, id := range []string{"Zed", "Ahri", "Camille", "Gnar", "Varus", "Janna", "Aatrox"} {
		assert.Contains(t, excluded, id)
		assert.False(t, s.IsAvailable(id))
	}
	assert.True(t, s.IsAvailable("Jinx"))
}

func TestTeamState_NextPickSlot(t *testing.T) {
	s := newState()
	assert.Equal(t, 0, s.Blue.NextPickSlot())

	for i := 0; i < domain.TotalSteps(); i++ {
		require.NoError(t, s.Apply(championFor(i)))
	}
	assert.Equal(t, -1, s.Blue.NextPickSlot())
	assert.Equal(t, -1, s.Red.NextPickSlot())
	assert.Len(t, s.Blue.PickedIDs(), draft.TeamSize)
}
