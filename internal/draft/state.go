// Package draft implements the 20-step ban/pick state machine. All state
// lives in memory and is mutated exclusively through Apply, Undo and Reset;
// callers are responsible for serialising mutating calls per draft.
package draft

import (
	"fmt"

	"github.com/coachkit/draft-coach/internal/domain"
)

// TeamSize is the number of ban slots, pick slots and players per team.
const TeamSize = 5

// TeamState holds one team's side of the draft. Bans and picks are fixed
// slot arrays holding champion ids; an empty string is an unfilled slot.
// Slots fill strictly in the order the draft sequence assigns them.
type TeamState struct {
	Name    string               `json:"name"`
	Bans    [TeamSize]string     `json:"bans"`
	Picks   [TeamSize]string     `json:"picks"`
	Players []domain.DraftPlayer `json:"players"`
}

// NextEmptySlot returns the index of the first unfilled slot in the given
// array, or -1 when every slot is taken.
func nextEmptySlot(slots *[TeamSize]string) int {
	for i, id := range slots {
		if id == "" {
			return i
		}
	}
	return -1
}

// NextPickSlot returns the index of the team's next unfilled pick slot, or
// -1 when the roster is full. The slot index maps 1:1 to the role drafted
// there (top, jungle, mid, adc, support).
func (t *TeamState) NextPickSlot() int {
	return nextEmptySlot(&t.Picks)
}

// PickedIDs returns the champion ids committed to the team's roster so far,
// in slot order.
func (t *TeamState) PickedIDs() []string {
	ids := make([]string, 0, TeamSize)
	for _, id := range t.Picks {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// PlayerForSlot returns the player who owns the given pick slot, or nil when
// roster data is missing for that slot.
func (t *TeamState) PlayerForSlot(index int) *domain.DraftPlayer {
	if index < 0 || index >= len(t.Players) {
		return nil
	}
	return &t.Players[index]
}

// State is a single draft's aggregate: both team states, the cursor into the
// fixed sequence, and the append-only action log that drives undo.
// Invariant: len(Actions) == Cursor after every operation.
type State struct {
	Blue    TeamState            `json:"blue"`
	Red     TeamState            `json:"red"`
	Cursor  int                  `json:"cursor"`
	Actions []domain.DraftAction `json:"actions"`
}

// New creates an empty draft between the two named rosters. Player slices
// may be nil or partial; comfort scoring degrades gracefully without them.
func New(blueName, redName string, bluePlayers, redPlayers []domain.DraftPlayer) *State {
	return &State{
		Blue: TeamState{Name: blueName, Players: bluePlayers},
		Red:  TeamState{Name: redName, Players: redPlayers},
	}
}

// Team returns the mutable team state for a side.
func (s *State) Team(side domain.Side) *TeamState {
	if side == domain.SideBlue {
		return &s.Blue
	}
	return &s.Red
}

// CurrentStep returns the step at the cursor, or nil when the draft is
// complete.
func (s *State) CurrentStep() *domain.DraftStep {
	return domain.StepAt(s.Cursor)
}

// IsComplete reports whether all 20 steps have been applied.
func (s *State) IsComplete() bool {
	return s.Cursor >= domain.TotalSteps()
}

// Apply validates and applies the champion to the step on the clock: it
// fills the acting team's first empty slot in the relevant array, appends a
// log entry and advances the cursor. On any validation failure the state is
// left untouched and an error wrapping domain.ErrInvalidAction is returned.
// A full target array despite an unfinished sequence returns
// domain.ErrSequenceDesync instead; that state must not be trusted further.
func (s *State) Apply(championID string) error {
	step := s.CurrentStep()
	if step == nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidAction, domain.ErrDraftComplete)
	}
	if championID == "" {
		return fmt.Errorf("%w: empty champion id", domain.ErrInvalidAction)
	}
	if !s.IsAvailable(championID) {
		return fmt.Errorf("%w: %w: %s", domain.ErrInvalidAction, domain.ErrChampionUnavailable, championID)
	}

	team := s.Team(step.Team)
	slots := &team.Bans
	if step.ActionType == domain.ActionTypePick {
		slots = &team.Picks
	}

	slot := nextEmptySlot(slots)
	if slot < 0 {
		return fmt.Errorf("%w: step %d expects a %s %s but all slots are full",
			domain.ErrSequenceDesync, step.Index, step.Team, step.ActionType)
	}

	slots[slot] = championID
	s.Actions = append(s.Actions, domain.DraftAction{
		StepIndex:  step.Index,
		Team:       step.Team,
		ActionType: step.ActionType,
		ChampionID: championID,
	})
	s.Cursor++
	return nil
}

// Undo pops the last action, clears the slot it filled and rewinds the
// cursor. Undoing an empty log is a no-op, so UI undo spam is safe.
func (s *State) Undo() {
	if len(s.Actions) == 0 {
		return
	}

	last := s.Actions[len(s.Actions)-1]
	team := s.Team(last.Team)
	slots := &team.Bans
	if last.ActionType == domain.ActionTypePick {
		slots = &team.Picks
	}

	// Scan from the end: the matching slot is the most recently filled one
	// for that team and action type.
	for i := len(slots) - 1; i >= 0; i-- {
		if slots[i] == last.ChampionID {
			slots[i] = ""
			break
		}
	}

	s.Actions = s.Actions[:len(s.Actions)-1]
	s.Cursor--
}

// Reset clears both teams' slots and the action log. Rosters and team names
// survive a reset.
func (s *State) Reset() {
	s.Blue.Bans = [TeamSize]string{}
	s.Blue.Picks = [TeamSize]string{}
	s.Red.Bans = [TeamSize]string{}
	s.Red.Picks = [TeamSize]string{}
	s.Cursor = 0
	s.Actions = nil
}
